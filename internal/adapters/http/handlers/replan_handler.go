package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/tripcrew/internal/adapters/http/dto"
	"github.com/jsamuelsen11/tripcrew/internal/ports"
)

// ReplanHandler handles HTTP requests that drive a group's replan job.
type ReplanHandler struct {
	svc ports.ReplanService
}

// NewReplanHandler creates a new ReplanHandler with the given service port.
func NewReplanHandler(svc ports.ReplanService) *ReplanHandler {
	return &ReplanHandler{svc: svc}
}

// TriggerReplan handles POST /api/v1/groups/{groupId}/replan. It answers
// 201 when a job was started and 200 with the running job otherwise.
func (h *ReplanHandler) TriggerReplan(w http.ResponseWriter, r *http.Request) {
	groupID, err := pathParam(r, "groupId")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	status, started, err := h.svc.TriggerReplan(r.Context(), groupID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	code := http.StatusOK
	if started {
		code = http.StatusCreated
	}
	writeJSON(w, code, dto.ToReplanStatusResponse(status))
}

// GetReplanStatus handles GET /api/v1/groups/{groupId}/replan.
func (h *ReplanHandler) GetReplanStatus(w http.ResponseWriter, r *http.Request) {
	groupID, err := pathParam(r, "groupId")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	status, err := h.svc.GetReplanStatus(r.Context(), groupID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToReplanStatusResponse(status))
}

// CancelReplan handles POST /api/v1/groups/{groupId}/replan/cancel.
func (h *ReplanHandler) CancelReplan(w http.ResponseWriter, r *http.Request) {
	groupID, err := pathParam(r, "groupId")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	status, err := h.svc.CancelReplan(r.Context(), groupID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToReplanStatusResponse(status))
}

// AcceptChanges handles POST /api/v1/groups/{groupId}/replan/accept and
// returns the committed trip plan.
func (h *ReplanHandler) AcceptChanges(w http.ResponseWriter, r *http.Request) {
	groupID, err := pathParam(r, "groupId")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	plan, err := h.svc.AcceptChanges(r.Context(), groupID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToPlanResponse(plan))
}
