// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/tripcrew/internal/adapters/http/handlers"
)

// Handlers groups the HTTP handlers mounted by NewRouter.
type Handlers struct {
	Group  *handlers.GroupHandler
	Member *handlers.MemberHandler
	Budget *handlers.BudgetHandler
	Replan *handlers.ReplanHandler
	Health *handlers.HealthHandler
}

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given.
func NewRouter(h Handlers, middlewares ...func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	// Health endpoints (outside /api/v1 prefix).
	r.Get("/health/live", h.Health.Liveness)
	r.Get("/health/ready", h.Health.Readiness)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/groups", h.Group.CreateGroup)
		r.Get("/budgets", h.Budget.GetSummaries)

		r.Route("/groups/{groupId}", func(r chi.Router) {
			r.Get("/", h.Group.GetGroup)

			r.Get("/members", h.Member.ListMembers)
			r.Post("/members", h.Member.AdmitMember)
			r.Delete("/members/{memberId}", h.Member.RemoveMember)
			r.Patch("/members/{memberId}/status", h.Member.ChangeStatus)

			r.Get("/budget", h.Budget.GetSummary)
			r.Put("/budget/target", h.Budget.SetTargetTotal)
			r.Put("/budget/contributions/{memberId}", h.Budget.SetContribution)
			r.Put("/budget/auto-adjust", h.Budget.SetAutoAdjust)
			r.Post("/budget/equal-split", h.Budget.AutoAdjustEqual)

			r.Post("/replan", h.Replan.TriggerReplan)
			r.Get("/replan", h.Replan.GetReplanStatus)
			r.Post("/replan/cancel", h.Replan.CancelReplan)
			r.Post("/replan/accept", h.Replan.AcceptChanges)
		})
	})

	return r
}
