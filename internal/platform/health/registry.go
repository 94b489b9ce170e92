// Package health tracks the readiness of the stores and other dependencies the
// service needs before it can take trip-group traffic.
package health

import (
	"context"
	"maps"
	"slices"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jsamuelsen11/tripcrew/internal/ports"
)

// Compile-time interface check.
var _ ports.HealthRegistry = (*Registry)(nil)

// DefaultCheckTimeout bounds a single dependency check.
const DefaultCheckTimeout = 2 * time.Second

// Registry runs registered [ports.HealthChecker]s concurrently on each
// readiness probe. Checkers sharing a name overwrite each other in the
// result, the one registered last wins.
type Registry struct {
	timeout time.Duration

	mu       sync.RWMutex
	checkers []ports.HealthChecker
}

// New creates an empty registry. A timeout of zero or less selects
// DefaultCheckTimeout.
func New(timeout time.Duration) *Registry {
	if timeout <= 0 {
		timeout = DefaultCheckTimeout
	}
	return &Registry{timeout: timeout}
}

// Register adds a checker. Safe for concurrent use.
func (r *Registry) Register(checker ports.HealthChecker) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checkers = append(r.checkers, checker)
}

// CheckAll runs every checker with its own timeout. Results are sorted by
// name; when names collide the checker registered last wins.
func (r *Registry) CheckAll(ctx context.Context) []ports.CheckResult {
	r.mu.RLock()
	checkers := make([]ports.HealthChecker, len(r.checkers))
	copy(checkers, r.checkers)
	r.mu.RUnlock()

	results := make([]ports.CheckResult, len(checkers))
	var g errgroup.Group
	for i, c := range checkers {
		g.Go(func() error {
			checkCtx, cancel := context.WithTimeout(ctx, r.timeout)
			defer cancel()
			started := time.Now()
			err := c.HealthCheck(checkCtx)
			results[i] = ports.CheckResult{Name: c.Name(), Err: err, Elapsed: time.Since(started)}
			return nil
		})
	}
	_ = g.Wait()

	byName := make(map[string]ports.CheckResult, len(results))
	for _, res := range results {
		byName[res.Name] = res
	}
	out := slices.Collect(maps.Values(byName))
	slices.SortFunc(out, func(a, b ports.CheckResult) int {
		return strings.Compare(a.Name, b.Name)
	})
	return out
}
