// Package handlers provides HTTP request handlers for the service's API endpoints.
package handlers

import (
	"net/http"
	"strings"

	"github.com/jsamuelsen11/tripcrew/internal/adapters/http/dto"
	"github.com/jsamuelsen11/tripcrew/internal/ports"
)

// GroupHandler handles HTTP requests for creating and reading trip groups.
type GroupHandler struct {
	svc ports.GroupService
}

// NewGroupHandler creates a new GroupHandler with the given service port.
func NewGroupHandler(svc ports.GroupService) *GroupHandler {
	return &GroupHandler{svc: svc}
}

// CreateGroup handles POST /api/v1/groups.
func (h *GroupHandler) CreateGroup(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateGroupRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.svc.CreateGroup(r.Context(), ports.NewGroup{
		Name:        req.Name,
		TargetTotal: req.TargetTotal,
		AutoAdjust:  req.AutoAdjust,
		Founder: ports.NewMember{
			ID:          strings.TrimSpace(req.Founder.ID),
			DisplayName: req.Founder.DisplayName,
		},
	})
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.Header().Set("Location", "/api/v1/groups/"+created.ID)
	writeJSON(w, http.StatusCreated, dto.ToGroupResponse(created))
}

// GetGroup handles GET /api/v1/groups/{groupId}.
func (h *GroupHandler) GetGroup(w http.ResponseWriter, r *http.Request) {
	groupID, err := pathParam(r, "groupId")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	g, err := h.svc.GetGroup(r.Context(), groupID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToGroupResponse(g))
}
