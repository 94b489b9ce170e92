package handlers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/tripcrew/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/tripcrew/internal/ports"
	"github.com/jsamuelsen11/tripcrew/mocks"
)

type readinessBody struct {
	Status string `json:"status"`
	Checks []struct {
		Name      string `json:"name"`
		Status    string `json:"status"`
		Error     string `json:"error"`
		ElapsedMS int64  `json:"elapsed_ms"`
	} `json:"checks"`
}

func readiness(t *testing.T, h *handlers.HealthHandler) (*httptest.ResponseRecorder, readinessBody) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.Readiness(rec, httptest.NewRequest(http.MethodGet, "/health/ready", http.NoBody))
	return rec, decodeJSON[readinessBody](t, rec)
}

func TestLiveness_AlwaysOK(t *testing.T) {
	t.Parallel()

	h := handlers.NewHealthHandler(mocks.NewMockHealthRegistry(t))
	h.Drain()

	rec := httptest.NewRecorder()
	h.Liveness(rec, httptest.NewRequest(http.MethodGet, "/health/live", http.NoBody))

	requireStatus(t, rec, http.StatusOK)
	if resp := decodeJSON[map[string]string](t, rec); resp["status"] != "ok" {
		t.Errorf("status = %q, want %q", resp["status"], "ok")
	}
}

func TestReadiness(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		results    []ports.CheckResult
		wantCode   int
		wantStatus string
		wantChecks []string
	}{
		{
			name:       "no dependencies",
			results:    nil,
			wantCode:   http.StatusOK,
			wantStatus: "ready",
		},
		{
			name: "store healthy",
			results: []ports.CheckResult{
				{Name: "sqlite", Elapsed: 3 * time.Millisecond},
			},
			wantCode:   http.StatusOK,
			wantStatus: "ready",
			wantChecks: []string{"ok"},
		},
		{
			name: "breaker open",
			results: []ports.CheckResult{
				{Name: "group-store", Err: errors.New("circuit breaker is open")},
				{Name: "sqlite", Elapsed: time.Millisecond},
			},
			wantCode:   http.StatusServiceUnavailable,
			wantStatus: "not_ready",
			wantChecks: []string{"failing", "ok"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			registry := mocks.NewMockHealthRegistry(t)
			registry.EXPECT().CheckAll(mock.Anything).Return(tt.results)

			rec, resp := readiness(t, handlers.NewHealthHandler(registry))

			requireStatus(t, rec, tt.wantCode)
			if resp.Status != tt.wantStatus {
				t.Errorf("status = %q, want %q", resp.Status, tt.wantStatus)
			}
			if len(resp.Checks) != len(tt.wantChecks) {
				t.Fatalf("len(checks) = %d, want %d", len(resp.Checks), len(tt.wantChecks))
			}
			for i, want := range tt.wantChecks {
				got := resp.Checks[i]
				if got.Name != tt.results[i].Name || got.Status != want {
					t.Errorf("checks[%d] = %s/%s, want %s/%s", i, got.Name, got.Status, tt.results[i].Name, want)
				}
				if got.ElapsedMS != tt.results[i].Elapsed.Milliseconds() {
					t.Errorf("checks[%d].elapsed_ms = %d, want %d", i, got.ElapsedMS, tt.results[i].Elapsed.Milliseconds())
				}
			}
		})
	}
}

func TestReadiness_ReportsCheckError(t *testing.T) {
	t.Parallel()

	registry := mocks.NewMockHealthRegistry(t)
	registry.EXPECT().CheckAll(mock.Anything).Return([]ports.CheckResult{
		{Name: "sqlite", Err: errors.New("database is locked")},
	})

	_, resp := readiness(t, handlers.NewHealthHandler(registry))

	if len(resp.Checks) != 1 || resp.Checks[0].Error != "database is locked" {
		t.Errorf("checks = %+v, want the sqlite error reported", resp.Checks)
	}
}

func TestReadiness_DrainingSkipsChecks(t *testing.T) {
	t.Parallel()

	// No CheckAll expectation: a drained handler must not call the registry.
	h := handlers.NewHealthHandler(mocks.NewMockHealthRegistry(t))
	h.Drain()

	rec, resp := readiness(t, h)

	requireStatus(t, rec, http.StatusServiceUnavailable)
	if resp.Status != "draining" {
		t.Errorf("status = %q, want %q", resp.Status, "draining")
	}
	if len(resp.Checks) != 0 {
		t.Errorf("checks = %+v, want none", resp.Checks)
	}
}
