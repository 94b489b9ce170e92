package handlers

import (
	"net/http"
	"strings"

	"github.com/jsamuelsen11/tripcrew/internal/adapters/http/dto"
	"github.com/jsamuelsen11/tripcrew/internal/domain"
	"github.com/jsamuelsen11/tripcrew/internal/domain/member"
	"github.com/jsamuelsen11/tripcrew/internal/ports"
)

// MemberHandler handles HTTP requests for group membership.
type MemberHandler struct {
	svc ports.MemberService
}

// NewMemberHandler creates a new MemberHandler with the given service port.
func NewMemberHandler(svc ports.MemberService) *MemberHandler {
	return &MemberHandler{svc: svc}
}

// ListMembers handles GET /api/v1/groups/{groupId}/members.
func (h *MemberHandler) ListMembers(w http.ResponseWriter, r *http.Request) {
	groupID, err := pathParam(r, "groupId")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	members, err := h.svc.ListMembers(r.Context(), groupID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToMemberListResponse(members))
}

// AdmitMember handles POST /api/v1/groups/{groupId}/members.
func (h *MemberHandler) AdmitMember(w http.ResponseWriter, r *http.Request) {
	groupID, err := pathParam(r, "groupId")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.AdmitMemberRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	admitted, err := h.svc.AdmitMember(r.Context(), groupID, ports.NewMember{
		ID:          strings.TrimSpace(req.ID),
		DisplayName: req.DisplayName,
		Status:      member.Status(req.Status),
		Role:        member.Role(req.Role),
	})
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToMemberResponse(admitted))
}

// ChangeStatus handles PATCH /api/v1/groups/{groupId}/members/{memberId}/status.
func (h *MemberHandler) ChangeStatus(w http.ResponseWriter, r *http.Request) {
	groupID, memberID, err := groupAndMember(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.ChangeStatusRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	updated, err := h.svc.ChangeStatus(r.Context(), groupID, memberID, member.Status(req.Status), req.Reason)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToMemberResponse(updated))
}

// RemoveMember handles DELETE /api/v1/groups/{groupId}/members/{memberId}.
// The acting admin is identified by the X-Actor-ID header.
func (h *MemberHandler) RemoveMember(w http.ResponseWriter, r *http.Request) {
	groupID, memberID, err := groupAndMember(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	actorID := strings.TrimSpace(r.Header.Get(ActorHeader))
	if actorID == "" {
		dto.WriteErrorResponse(w, r, domain.NewValidationError("actor_id", ActorHeader+" header "+domain.MsgRequired))
		return
	}

	if err := h.svc.RemoveMember(r.Context(), groupID, actorID, memberID); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
