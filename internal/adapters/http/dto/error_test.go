package dto_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jsamuelsen11/tripcrew/internal/adapters/http/dto"
	"github.com/jsamuelsen11/tripcrew/internal/domain"
)

func TestNewErrorResponse_StatusMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"validation", domain.NewValidationError("amount", "must be >= 0"), http.StatusBadRequest, dto.CodeValidation},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden, dto.CodeForbidden},
		{"not found", domain.ErrNotFound, http.StatusNotFound, dto.CodeNotFound},
		{"conflict", domain.ErrConflict, http.StatusConflict, dto.CodeConflict},
		{"invalid state is a conflict", domain.ErrInvalidState, http.StatusConflict, dto.CodeConflict},
		{"already terminal is a conflict", domain.ErrAlreadyTerminal, http.StatusConflict, dto.CodeConflict},
		{"last admin", domain.ErrLastAdmin, http.StatusConflict, dto.CodeLastAdmin},
		{"invalid transition", domain.ErrInvalidTransition, http.StatusConflict, dto.CodeInvalidTransition},
		{"persist failed", domain.ErrPersistFailed, http.StatusServiceUnavailable, dto.CodePersistFailed},
		{"unavailable", domain.ErrUnavailable, http.StatusServiceUnavailable, dto.CodeUnavailable},
		{"invariant violation", domain.ErrInvariantViolation, http.StatusInternalServerError, dto.CodeInvariantViolation},
		{"unknown error", errors.New("oops"), http.StatusInternalServerError, dto.CodeInternal},
		{
			"wrapped last admin keeps its code",
			fmt.Errorf("removing member m1: %w", domain.ErrLastAdmin),
			http.StatusConflict,
			dto.CodeLastAdmin,
		},
		{
			"persist failure wrapping a store error",
			fmt.Errorf("saving group g1: %w: %w", domain.ErrPersistFailed, errors.New("disk full")),
			http.StatusServiceUnavailable,
			dto.CodePersistFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := httptest.NewRequest(http.MethodGet, "/api/v1/groups/g1", nil)
			got := dto.NewErrorResponse(r, tt.err)

			if got.Status != tt.wantStatus {
				t.Errorf("Status = %d, want %d", got.Status, tt.wantStatus)
			}
			if got.Code != tt.wantCode {
				t.Errorf("Code = %q, want %q", got.Code, tt.wantCode)
			}
			if got.Title != http.StatusText(tt.wantStatus) {
				t.Errorf("Title = %q, want %q", got.Title, http.StatusText(tt.wantStatus))
			}
		})
	}
}

func TestNewErrorResponse_Fields(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodPost, "/api/v1/groups/g1/replan/accept", nil)
	err := fmt.Errorf("replan job for group g1: %w", domain.ErrNotFound)

	got := dto.NewErrorResponse(r, err)

	if got.Type != "about:blank" {
		t.Errorf("Type = %q, want %q", got.Type, "about:blank")
	}
	if got.Instance != "/api/v1/groups/g1/replan/accept" {
		t.Errorf("Instance = %q, want %q", got.Instance, "/api/v1/groups/g1/replan/accept")
	}
	if got.Detail != err.Error() {
		t.Errorf("Detail = %q, want %q", got.Detail, err.Error())
	}
}

func TestNewErrorResponse_HidesUnexpectedErrors(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/api/v1/groups/g1", nil)
	got := dto.NewErrorResponse(r, errors.New("sql: connection refused at 10.0.0.4"))

	if got.Detail != "an unexpected error occurred" {
		t.Errorf("Detail = %q, want generic message", got.Detail)
	}
}

func TestNewErrorResponse_ValidationErrors(t *testing.T) {
	t.Parallel()

	verr := &domain.ValidationError{Fields: map[string]string{
		"name":         "is required",
		"target_total": "must be > 0, got 0",
		"display_name": "is required",
	}}

	r := httptest.NewRequest(http.MethodPost, "/api/v1/groups", nil)
	got := dto.NewErrorResponse(r, verr)

	if len(got.Errors) != 3 {
		t.Fatalf("len(Errors) = %d, want 3", len(got.Errors))
	}
	for i := 1; i < len(got.Errors); i++ {
		if got.Errors[i-1].Location >= got.Errors[i].Location {
			t.Errorf("Errors not sorted: %q >= %q", got.Errors[i-1].Location, got.Errors[i].Location)
		}
	}
	if got.Errors[0].Location != "body.display_name" {
		t.Errorf("Errors[0].Location = %q, want %q", got.Errors[0].Location, "body.display_name")
	}
}

func TestNewErrorResponse_NoValidationErrorsForNonValidation(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/api/v1/groups/g1", nil)
	got := dto.NewErrorResponse(r, domain.ErrNotFound)

	if got.Errors != nil {
		t.Errorf("Errors = %v, want nil for non-validation error", got.Errors)
	}
}

func TestWriteErrorResponse(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPut, "/api/v1/groups/g1/budget/target", nil)

	dto.WriteErrorResponse(w, r, domain.NewValidationError("amount", "must be > 0, got 0"))

	if ct := w.Header().Get("Content-Type"); ct != "application/problem+json" {
		t.Errorf("Content-Type = %q, want %q", ct, "application/problem+json")
	}
	if w.Code != http.StatusBadRequest {
		t.Errorf("status code = %d, want %d", w.Code, http.StatusBadRequest)
	}

	var resp dto.ErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
	if resp.Code != dto.CodeValidation {
		t.Errorf("Code = %q, want %q", resp.Code, dto.CodeValidation)
	}
	if len(resp.Errors) != 1 || resp.Errors[0].Location != "body.amount" {
		t.Errorf("Errors = %+v, want one entry for body.amount", resp.Errors)
	}
}
