package dto_test

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jsamuelsen11/tripcrew/internal/adapters/http/dto"
	"github.com/jsamuelsen11/tripcrew/internal/domain"
	"github.com/jsamuelsen11/tripcrew/internal/domain/group"
	"github.com/jsamuelsen11/tripcrew/internal/domain/ledger"
	"github.com/jsamuelsen11/tripcrew/internal/domain/member"
	"github.com/jsamuelsen11/tripcrew/internal/domain/replan"
	"github.com/jsamuelsen11/tripcrew/internal/ports"
)

var testTime = time.Date(2026, time.March, 1, 9, 0, 0, 0, time.UTC)

func TestToGroupResponse(t *testing.T) {
	t.Parallel()

	founder := member.Member{ID: "ana", DisplayName: "Ana", Status: member.StatusActive, Role: member.RoleAdmin, JoinedAt: testTime}
	g, err := group.New("g1", "Porto weekend", 1000, true, founder, testTime)
	if err != nil {
		t.Fatalf("group.New() error = %v", err)
	}

	got := dto.ToGroupResponse(g)

	if got.ID != "g1" || got.Name != "Porto weekend" {
		t.Errorf("ID/Name = %q/%q, want g1/Porto weekend", got.ID, got.Name)
	}
	if got.CreatedAt != "2026-03-01T09:00:00Z" {
		t.Errorf("CreatedAt = %q, want RFC3339", got.CreatedAt)
	}
	if len(got.Members) != 1 || got.Members[0].Role != "admin" {
		t.Errorf("Members = %+v, want the founding admin", got.Members)
	}
	if got.Budget.GroupID != "g1" || got.Budget.TargetTotal != 1000 || !got.Budget.AutoAdjust {
		t.Errorf("Budget = %+v, want target 1000 with auto-adjust", got.Budget)
	}
	if got.Plan != nil {
		t.Errorf("Plan = %+v, want nil before the first replan", got.Plan)
	}

	if err := g.ApplyReplan("job-1", replan.TriggerManual, []replan.Change{{Step: "review_membership", Description: "1 member travelling"}}, testTime); err != nil {
		t.Fatalf("ApplyReplan() error = %v", err)
	}
	got = dto.ToGroupResponse(g)
	if got.Plan == nil || got.Plan.Version != 1 || got.Plan.JobID != "job-1" {
		t.Errorf("Plan = %+v, want version 1 from job-1", got.Plan)
	}
}

func TestToMemberResponse(t *testing.T) {
	t.Parallel()

	m := member.Member{
		ID:            "ben",
		DisplayName:   "Ben",
		Status:        member.StatusDroppedOut,
		Role:          member.RoleMember,
		DropoutReason: "visa denied",
		JoinedAt:      testTime,
	}

	got := dto.ToMemberResponse(&m)

	want := dto.MemberResponse{
		ID:            "ben",
		DisplayName:   "Ben",
		Status:        "dropped_out",
		Role:          "member",
		DropoutReason: "visa denied",
		JoinedAt:      "2026-03-01T09:00:00Z",
	}
	if got != want {
		t.Errorf("ToMemberResponse() = %+v, want %+v", got, want)
	}
}

func TestToMemberListResponse_Empty(t *testing.T) {
	t.Parallel()

	got := dto.ToMemberListResponse(nil)

	if got.Members == nil || got.Count != 0 {
		t.Errorf("ToMemberListResponse(nil) = %+v, want empty non-nil list", got)
	}
}

func TestToSummariesResponse(t *testing.T) {
	t.Parallel()

	summary := &ledger.Summary{TargetTotal: 1000, CurrentTotal: 400, Remaining: 600}
	results := []ports.SummaryResult{
		{GroupID: "g1", Summary: summary},
		{GroupID: "g2", Err: fmt.Errorf("group g2: %w", domain.ErrNotFound)},
		{GroupID: "g3", Summary: summary},
		{GroupID: "g4", Err: errors.New("boom")},
	}

	got := dto.ToSummariesResponse(results)

	if got.Total != 4 || got.Succeeded != 2 || got.Failed != 2 {
		t.Errorf("Total/Succeeded/Failed = %d/%d/%d, want 4/2/2", got.Total, got.Succeeded, got.Failed)
	}
	if got.Summaries[0].GroupID != "g1" || got.Summaries[1].GroupID != "g3" {
		t.Errorf("summaries out of request order: %+v", got.Summaries)
	}
	if got.Errors[0].GroupID != "g2" || got.Errors[0].Code != dto.CodeNotFound {
		t.Errorf("Errors[0] = %+v, want g2/not_found", got.Errors[0])
	}
	if got.Errors[1].Code != dto.CodeInternal {
		t.Errorf("Errors[1].Code = %q, want %q", got.Errors[1].Code, dto.CodeInternal)
	}
}

func TestToReplanStatusResponse(t *testing.T) {
	t.Parallel()

	status := &ports.ReplanStatus{
		JobID:                  "job-1",
		GroupID:                "g1",
		Trigger:                replan.TriggerDropout,
		Status:                 replan.StatusRunning,
		ProgressPercent:        65,
		CurrentStep:            "adjust_transport",
		CurrentStepIndex:       3,
		TotalSteps:             5,
		EstimatedTimeRemaining: 7 * time.Second,
		Changes: []replan.Change{
			{Step: "rebalance_budget", Description: "split", Contributions: map[string]int64{"ana": 500}},
		},
		StartedAt: testTime,
	}

	got := dto.ToReplanStatusResponse(status)

	if got.Trigger != "dropout" || got.Status != "running" {
		t.Errorf("Trigger/Status = %q/%q, want dropout/running", got.Trigger, got.Status)
	}
	if got.EstimatedSecondsLeft != 7 {
		t.Errorf("EstimatedSecondsLeft = %d, want 7", got.EstimatedSecondsLeft)
	}
	if len(got.Changes) != 1 || got.Changes[0].Contributions["ana"] != 500 {
		t.Errorf("Changes = %+v, want the rebalance proposal", got.Changes)
	}
}
