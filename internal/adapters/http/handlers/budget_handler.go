package handlers

import (
	"context"
	"net/http"

	"github.com/jsamuelsen11/tripcrew/internal/adapters/http/dto"
	"github.com/jsamuelsen11/tripcrew/internal/domain/ledger"
	"github.com/jsamuelsen11/tripcrew/internal/ports"
)

// BudgetHandler handles HTTP requests for the contribution ledger.
type BudgetHandler struct {
	svc ports.BudgetService
}

// NewBudgetHandler creates a new BudgetHandler with the given service port.
func NewBudgetHandler(svc ports.BudgetService) *BudgetHandler {
	return &BudgetHandler{svc: svc}
}

// GetSummary handles GET /api/v1/groups/{groupId}/budget.
func (h *BudgetHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, func(ctx context.Context, groupID string) (*ledger.Summary, error) {
		return h.svc.GetSummary(ctx, groupID)
	})
}

// GetSummaries handles GET /api/v1/budgets?group_id=a&group_id=b. Groups
// that fail are reported per item and do not fail the request.
func (h *BudgetHandler) GetSummaries(w http.ResponseWriter, r *http.Request) {
	results, err := h.svc.GetSummaries(r.Context(), r.URL.Query()["group_id"])
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToSummariesResponse(results))
}

// SetTargetTotal handles PUT /api/v1/groups/{groupId}/budget/target.
func (h *BudgetHandler) SetTargetTotal(w http.ResponseWriter, r *http.Request) {
	var req dto.AmountRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	h.respond(w, r, func(ctx context.Context, groupID string) (*ledger.Summary, error) {
		return h.svc.SetTargetTotal(ctx, groupID, *req.Amount)
	})
}

// SetContribution handles PUT /api/v1/groups/{groupId}/budget/contributions/{memberId}.
func (h *BudgetHandler) SetContribution(w http.ResponseWriter, r *http.Request) {
	memberID, err := pathParam(r, "memberId")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.AmountRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	h.respond(w, r, func(ctx context.Context, groupID string) (*ledger.Summary, error) {
		return h.svc.SetContribution(ctx, groupID, memberID, *req.Amount)
	})
}

// SetAutoAdjust handles PUT /api/v1/groups/{groupId}/budget/auto-adjust.
func (h *BudgetHandler) SetAutoAdjust(w http.ResponseWriter, r *http.Request) {
	var req dto.AutoAdjustRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	h.respond(w, r, func(ctx context.Context, groupID string) (*ledger.Summary, error) {
		return h.svc.SetAutoAdjust(ctx, groupID, *req.Enabled)
	})
}

// AutoAdjustEqual handles POST /api/v1/groups/{groupId}/budget/equal-split.
func (h *BudgetHandler) AutoAdjustEqual(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, h.svc.AutoAdjustEqual)
}

// respond resolves the group ID, runs op and writes the resulting summary.
func (h *BudgetHandler) respond(
	w http.ResponseWriter,
	r *http.Request,
	op func(ctx context.Context, groupID string) (*ledger.Summary, error),
) {
	groupID, err := pathParam(r, "groupId")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	summary, err := op(r.Context(), groupID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToSummaryResponse(groupID, *summary))
}
