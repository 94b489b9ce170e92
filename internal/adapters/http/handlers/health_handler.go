package handlers

import (
	"net/http"
	"sync/atomic"

	"github.com/jsamuelsen11/tripcrew/internal/ports"
)

// Readiness states.
const (
	readyStatus    = "ready"
	notReadyStatus = "not_ready"
	drainingStatus = "draining"

	checkOK      = "ok"
	checkFailing = "failing"
)

type dependencyCheck struct {
	Name      string `json:"name"`
	Status    string `json:"status"`
	Error     string `json:"error,omitempty"`
	ElapsedMS int64  `json:"elapsed_ms"`
}

type readinessResponse struct {
	Status string            `json:"status"`
	Checks []dependencyCheck `json:"checks"`
}

// HealthHandler serves the liveness and readiness endpoints. Once drained,
// readiness reports 503 without running any dependency check, so load
// balancers stop routing trip traffic before the server shuts down.
type HealthHandler struct {
	registry ports.HealthRegistry
	draining atomic.Bool
}

// NewHealthHandler creates a HealthHandler backed by registry.
func NewHealthHandler(registry ports.HealthRegistry) *HealthHandler {
	return &HealthHandler{registry: registry}
}

// Drain marks the service as shutting down.
func (h *HealthHandler) Drain() {
	h.draining.Store(true)
}

// Liveness handles GET /health/live.
func (h *HealthHandler) Liveness(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": checkOK})
}

// Readiness handles GET /health/ready: 200 when every dependency check
// passes, 503 when one fails or the service is draining.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	if h.draining.Load() {
		writeJSON(w, http.StatusServiceUnavailable, readinessResponse{Status: drainingStatus, Checks: []dependencyCheck{}})
		return
	}

	results := h.registry.CheckAll(r.Context())
	resp := readinessResponse{Status: readyStatus, Checks: make([]dependencyCheck, len(results))}
	for i, res := range results {
		c := dependencyCheck{Name: res.Name, Status: checkOK, ElapsedMS: res.Elapsed.Milliseconds()}
		if res.Err != nil {
			c.Status = checkFailing
			c.Error = res.Err.Error()
			resp.Status = notReadyStatus
		}
		resp.Checks[i] = c
	}

	code := http.StatusOK
	if resp.Status != readyStatus {
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, code, resp)
}
