// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"time"

	"github.com/jsamuelsen11/tripcrew/internal/domain/group"
	"github.com/jsamuelsen11/tripcrew/internal/domain/ledger"
	"github.com/jsamuelsen11/tripcrew/internal/domain/member"
	"github.com/jsamuelsen11/tripcrew/internal/domain/replan"
	"github.com/jsamuelsen11/tripcrew/internal/ports"
)

// GroupResponse represents a trip group with its members, budget and
// committed plan.
type GroupResponse struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	CreatedAt string           `json:"created_at"`
	Members   []MemberResponse `json:"members"`
	Budget    SummaryResponse  `json:"budget"`
	Plan      *PlanResponse    `json:"plan,omitempty"`
}

// ToGroupResponse converts a group snapshot to an HTTP response DTO. The
// plan is omitted until the group has been replanned.
func ToGroupResponse(g *group.Group) GroupResponse {
	resp := GroupResponse{
		ID:        g.ID,
		Name:      g.Name,
		CreatedAt: g.CreatedAt.Format(time.RFC3339),
		Members:   ToMemberListResponse(g.Members.List()).Members,
		Budget:    ToSummaryResponse(g.ID, g.Summary()),
	}
	if g.Plan.Version > 0 {
		plan := ToPlanResponse(&g.Plan)
		resp.Plan = &plan
	}
	return resp
}

// MemberResponse represents a single member in HTTP responses.
type MemberResponse struct {
	ID            string `json:"id"`
	DisplayName   string `json:"display_name"`
	Status        string `json:"status"`
	Role          string `json:"role"`
	DropoutReason string `json:"dropout_reason,omitempty"`
	JoinedAt      string `json:"joined_at"`
}

// MemberListResponse represents the members of a group in join order.
type MemberListResponse struct {
	Members []MemberResponse `json:"members"`
	Count   int              `json:"count"`
}

// ToMemberResponse converts a domain Member to an HTTP response DTO.
func ToMemberResponse(m *member.Member) MemberResponse {
	return MemberResponse{
		ID:            m.ID,
		DisplayName:   m.DisplayName,
		Status:        m.Status.String(),
		Role:          m.Role.String(),
		DropoutReason: m.DropoutReason,
		JoinedAt:      m.JoinedAt.Format(time.RFC3339),
	}
}

// ToMemberListResponse converts members to a list response DTO.
func ToMemberListResponse(members []member.Member) MemberListResponse {
	items := make([]MemberResponse, len(members))
	for i := range members {
		items[i] = ToMemberResponse(&members[i])
	}
	return MemberListResponse{
		Members: items,
		Count:   len(items),
	}
}

// SummaryResponse represents a budget summary. Amounts are minor currency
// units; percentages are whole numbers of the target.
type SummaryResponse struct {
	GroupID      string          `json:"group_id"`
	TargetTotal  int64           `json:"target_total"`
	CurrentTotal int64           `json:"current_total"`
	Remaining    int64           `json:"remaining"`
	OverBudget   bool            `json:"over_budget"`
	AutoAdjust   bool            `json:"auto_adjust"`
	Breakdown    []ShareResponse `json:"breakdown"`
}

// ShareResponse is one member's line in a budget summary.
type ShareResponse struct {
	MemberID    string `json:"member_id"`
	DisplayName string `json:"display_name"`
	Amount      int64  `json:"amount"`
	Percentage  int64  `json:"percentage"`
}

// ToSummaryResponse converts a ledger summary to an HTTP response DTO.
func ToSummaryResponse(groupID string, s ledger.Summary) SummaryResponse {
	shares := make([]ShareResponse, len(s.Breakdown))
	for i, sh := range s.Breakdown {
		shares[i] = ShareResponse{
			MemberID:    sh.MemberID,
			DisplayName: sh.DisplayName,
			Amount:      sh.Amount,
			Percentage:  sh.Percentage,
		}
	}
	return SummaryResponse{
		GroupID:      groupID,
		TargetTotal:  s.TargetTotal,
		CurrentTotal: s.CurrentTotal,
		Remaining:    s.Remaining,
		OverBudget:   s.OverBudget,
		AutoAdjust:   s.AutoAdjust,
		Breakdown:    shares,
	}
}

// SummariesResponse reports a multi-group summary fetch. It includes both
// the summaries that succeeded and per-group errors.
type SummariesResponse struct {
	Summaries []SummaryResponse  `json:"summaries"`
	Errors    []SummaryErrorItem `json:"errors"`
	Total     int                `json:"total"`
	Succeeded int                `json:"succeeded"`
	Failed    int                `json:"failed"`
}

// SummaryErrorItem represents one group whose summary could not be fetched.
type SummaryErrorItem struct {
	GroupID string `json:"group_id"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ToSummariesResponse converts GetSummaries results to an HTTP response DTO,
// preserving request order within each list.
func ToSummariesResponse(results []ports.SummaryResult) SummariesResponse {
	resp := SummariesResponse{
		Summaries: make([]SummaryResponse, 0, len(results)),
		Errors:    make([]SummaryErrorItem, 0),
		Total:     len(results),
	}
	for _, r := range results {
		if r.Err != nil {
			_, code := classify(r.Err)
			resp.Errors = append(resp.Errors, SummaryErrorItem{
				GroupID: r.GroupID,
				Code:    code,
				Message: r.Err.Error(),
			})
			continue
		}
		resp.Summaries = append(resp.Summaries, ToSummaryResponse(r.GroupID, *r.Summary))
	}
	resp.Succeeded = len(resp.Summaries)
	resp.Failed = len(resp.Errors)
	return resp
}

// ChangeResponse is one step's entry in a replan change-set.
type ChangeResponse struct {
	Step          string           `json:"step"`
	Description   string           `json:"description"`
	Contributions map[string]int64 `json:"contributions,omitempty"`
}

// ReplanStatusResponse represents the state of a replan job.
type ReplanStatusResponse struct {
	JobID                string           `json:"job_id"`
	GroupID              string           `json:"group_id"`
	Trigger              string           `json:"trigger"`
	Status               string           `json:"status"`
	ProgressPercent      int              `json:"progress_percent"`
	CurrentStep          string           `json:"current_step,omitempty"`
	CurrentStepIndex     int              `json:"current_step_index"`
	TotalSteps           int              `json:"total_steps"`
	EstimatedSecondsLeft int64            `json:"estimated_seconds_remaining"`
	Changes              []ChangeResponse `json:"changes"`
	StartedAt            string           `json:"started_at"`
	AwaitingCommit       bool             `json:"awaiting_commit"`
}

// ToReplanStatusResponse converts a job snapshot to an HTTP response DTO.
func ToReplanStatusResponse(s *ports.ReplanStatus) ReplanStatusResponse {
	changes := make([]ChangeResponse, len(s.Changes))
	for i, c := range s.Changes {
		changes[i] = ChangeResponse{
			Step:          c.Step,
			Description:   c.Description,
			Contributions: c.Contributions,
		}
	}
	return ReplanStatusResponse{
		JobID:                s.JobID,
		GroupID:              s.GroupID,
		Trigger:              s.Trigger.String(),
		Status:               s.Status.String(),
		ProgressPercent:      s.ProgressPercent,
		CurrentStep:          s.CurrentStep,
		CurrentStepIndex:     s.CurrentStepIndex,
		TotalSteps:           s.TotalSteps,
		EstimatedSecondsLeft: int64(s.EstimatedTimeRemaining.Seconds()),
		Changes:              changes,
		StartedAt:            s.StartedAt.Format(time.RFC3339),
		AwaitingCommit:       s.AwaitingCommit,
	}
}

// PlanResponse represents a committed trip plan.
type PlanResponse struct {
	Version     int                  `json:"version"`
	JobID       string               `json:"job_id"`
	Trigger     string               `json:"trigger"`
	CommittedAt string               `json:"committed_at"`
	Changes     []PlanChangeResponse `json:"changes"`
}

// PlanChangeResponse is one committed change descriptor.
type PlanChangeResponse struct {
	Step        string `json:"step"`
	Description string `json:"description"`
}

// ToPlanResponse converts a committed plan to an HTTP response DTO.
func ToPlanResponse(p *replan.Plan) PlanResponse {
	changes := make([]PlanChangeResponse, len(p.Changes))
	for i, c := range p.Changes {
		changes[i] = PlanChangeResponse{Step: c.Step, Description: c.Description}
	}
	return PlanResponse{
		Version:     p.Version,
		JobID:       p.JobID,
		Trigger:     p.Trigger.String(),
		CommittedAt: p.CommittedAt.Format(time.RFC3339),
		Changes:     changes,
	}
}
