package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/tripcrew/internal/adapters/http/dto"
	"github.com/jsamuelsen11/tripcrew/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/tripcrew/internal/domain"
	"github.com/jsamuelsen11/tripcrew/internal/domain/ledger"
	"github.com/jsamuelsen11/tripcrew/internal/ports"
	"github.com/jsamuelsen11/tripcrew/mocks"
)

func newBudgetHandler(t *testing.T) (*handlers.BudgetHandler, *mocks.MockBudgetService) {
	t.Helper()
	svc := mocks.NewMockBudgetService(t)
	return handlers.NewBudgetHandler(svc), svc
}

func overBudgetSummary() *ledger.Summary {
	return &ledger.Summary{
		TargetTotal:  100000,
		CurrentTotal: 120000,
		Remaining:    -20000,
		OverBudget:   true,
		Breakdown: []ledger.Share{
			{MemberID: "ana", DisplayName: "Ana", Amount: 60000, Percentage: 60},
			{MemberID: "ben", DisplayName: "Ben", Amount: 60000, Percentage: 60},
		},
	}
}

func TestGetSummary_Success(t *testing.T) {
	t.Parallel()
	h, svc := newBudgetHandler(t)

	svc.EXPECT().GetSummary(mock.Anything, "g1").Return(overBudgetSummary(), nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/groups/g1/budget", nil)
	req = withChiParams(req, map[string]string{"groupId": "g1"})
	h.GetSummary(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.SummaryResponse](t, rec)
	if !resp.OverBudget || resp.Remaining != -20000 {
		t.Errorf("OverBudget/Remaining = %v/%d, want true/-20000", resp.OverBudget, resp.Remaining)
	}
	if len(resp.Breakdown) != 2 || resp.Breakdown[0].Percentage != 60 {
		t.Errorf("Breakdown = %+v, want two shares of 60%%", resp.Breakdown)
	}
}

func TestGetSummaries_PartialSuccess(t *testing.T) {
	t.Parallel()
	h, svc := newBudgetHandler(t)

	svc.EXPECT().GetSummaries(mock.Anything, []string{"g1", "missing"}).Return([]ports.SummaryResult{
		{GroupID: "g1", Summary: overBudgetSummary()},
		{GroupID: "missing", Err: domain.ErrNotFound},
	}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/budgets?group_id=g1&group_id=missing", nil)
	h.GetSummaries(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.SummariesResponse](t, rec)
	if resp.Succeeded != 1 || resp.Failed != 1 {
		t.Errorf("Succeeded/Failed = %d/%d, want 1/1", resp.Succeeded, resp.Failed)
	}
}

func TestGetSummaries_RequestError(t *testing.T) {
	t.Parallel()
	h, svc := newBudgetHandler(t)

	svc.EXPECT().GetSummaries(mock.Anything, []string(nil)).
		Return(nil, domain.NewValidationError("group_id", domain.MsgRequired))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/budgets", nil)
	h.GetSummaries(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

func TestSetTargetTotal(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		h, svc := newBudgetHandler(t)
		svc.EXPECT().SetTargetTotal(mock.Anything, "g1", int64(100000)).Return(overBudgetSummary(), nil)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/api/v1/groups/g1/budget/target", jsonBody(t, map[string]int64{"amount": 100000}))
		req = withChiParams(req, map[string]string{"groupId": "g1"})
		h.SetTargetTotal(rec, req)

		requireStatus(t, rec, http.StatusOK)
	})

	t.Run("missing amount", func(t *testing.T) {
		t.Parallel()
		h, _ := newBudgetHandler(t)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/api/v1/groups/g1/budget/target", jsonBody(t, map[string]any{}))
		req = withChiParams(req, map[string]string{"groupId": "g1"})
		h.SetTargetTotal(rec, req)

		requireStatus(t, rec, http.StatusBadRequest)
	})

	t.Run("ledger rejects zero", func(t *testing.T) {
		t.Parallel()
		h, svc := newBudgetHandler(t)
		svc.EXPECT().SetTargetTotal(mock.Anything, "g1", int64(0)).
			Return(nil, domain.NewValidationError("target_total", "must be > 0, got 0"))

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/api/v1/groups/g1/budget/target", jsonBody(t, map[string]int64{"amount": 0}))
		req = withChiParams(req, map[string]string{"groupId": "g1"})
		h.SetTargetTotal(rec, req)

		requireStatus(t, rec, http.StatusBadRequest)
	})
}

func TestSetContribution_Success(t *testing.T) {
	t.Parallel()
	h, svc := newBudgetHandler(t)

	svc.EXPECT().SetContribution(mock.Anything, "g1", "ben", int64(60000)).Return(overBudgetSummary(), nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/v1/groups/g1/budget/contributions/ben", jsonBody(t, map[string]int64{"amount": 60000}))
	req = withChiParams(req, map[string]string{"groupId": "g1", "memberId": "ben"})
	h.SetContribution(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.SummaryResponse](t, rec)
	if resp.GroupID != "g1" {
		t.Errorf("GroupID = %q, want g1", resp.GroupID)
	}
}

func TestSetAutoAdjust_Success(t *testing.T) {
	t.Parallel()
	h, svc := newBudgetHandler(t)

	summary := overBudgetSummary()
	summary.AutoAdjust = true
	svc.EXPECT().SetAutoAdjust(mock.Anything, "g1", true).Return(summary, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/v1/groups/g1/budget/auto-adjust", jsonBody(t, map[string]bool{"enabled": true}))
	req = withChiParams(req, map[string]string{"groupId": "g1"})
	h.SetAutoAdjust(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.SummaryResponse](t, rec)
	if !resp.AutoAdjust {
		t.Error("AutoAdjust = false, want true")
	}
}

func TestAutoAdjustEqual_NobodyActive(t *testing.T) {
	t.Parallel()
	h, svc := newBudgetHandler(t)

	svc.EXPECT().AutoAdjustEqual(mock.Anything, "g1").
		Return(nil, domain.NewValidationError("members", "no active members to split across"))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/groups/g1/budget/equal-split", nil)
	req = withChiParams(req, map[string]string{"groupId": "g1"})
	h.AutoAdjustEqual(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}
