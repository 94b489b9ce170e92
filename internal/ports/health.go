package ports

import (
	"context"
	"time"
)

// HealthChecker is a dependency the service needs before it can take trip
// group traffic, such as the group store behind its circuit breaker.
type HealthChecker interface {
	// Name identifies the dependency in readiness output, e.g. "sqlite".
	Name() string

	// HealthCheck returns nil when the dependency is usable. It must honor
	// ctx deadlines.
	HealthCheck(ctx context.Context) error
}

// CheckResult is the outcome of one dependency check. Err is nil when the
// dependency is healthy.
type CheckResult struct {
	Name    string
	Err     error
	Elapsed time.Duration
}

// HealthRegistry runs the registered checkers for the readiness endpoint.
type HealthRegistry interface {
	Register(checker HealthChecker)

	// CheckAll returns one result per checker name, sorted by name.
	CheckAll(ctx context.Context) []CheckResult
}
