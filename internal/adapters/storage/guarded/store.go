// Package guarded wraps a group store with a circuit breaker and tracing.
//
// Construction:
//
//	store := guarded.New(sqliteStore, &cfg.Storage.Breaker, logger)
//
// While the breaker is open every call fails fast with domain.ErrUnavailable
// instead of waiting on a failing database. Not-found and conflict results
// are answers from a healthy store and never trip the breaker.
package guarded

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/tripcrew/internal/domain"
	"github.com/jsamuelsen11/tripcrew/internal/domain/group"
	"github.com/jsamuelsen11/tripcrew/internal/platform/config"
	"github.com/jsamuelsen11/tripcrew/internal/ports"
)

// Name identifies the guarded store in health results and breaker logs.
const Name = "group-store"

// Compile-time interface checks.
var (
	_ ports.GroupStore    = (*Store)(nil)
	_ ports.HealthChecker = (*Store)(nil)
)

// Store decorates a ports.GroupStore.
type Store struct {
	inner   ports.GroupStore
	breaker *gobreaker.CircuitBreaker[*group.Group]
	tracer  trace.Tracer
}

// New wraps inner. The breaker opens after cfg.MaxFailures consecutive
// failures and lets cfg.HalfOpenLimit probes through after cfg.Timeout.
func New(inner ports.GroupStore, cfg *config.BreakerConfig, logger *slog.Logger) *Store {
	cb := gobreaker.NewCircuitBreaker[*group.Group](gobreaker.Settings{
		Name:        Name,
		MaxRequests: toUint32(cfg.HalfOpenLimit),
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= cfg.MaxFailures
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrConflict)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})

	return &Store{
		inner:   inner,
		breaker: cb,
		tracer:  otel.GetTracerProvider().Tracer("storage"),
	}
}

// CreateGroup implements ports.GroupStore.
func (s *Store) CreateGroup(ctx context.Context, g *group.Group) error {
	_, err := s.execute(ctx, "CreateGroup", g.ID, func(ctx context.Context) (*group.Group, error) {
		return nil, s.inner.CreateGroup(ctx, g)
	})
	return err
}

// LoadGroup implements ports.GroupStore.
func (s *Store) LoadGroup(ctx context.Context, id string) (*group.Group, error) {
	return s.execute(ctx, "LoadGroup", id, func(ctx context.Context) (*group.Group, error) {
		return s.inner.LoadGroup(ctx, id)
	})
}

// SaveGroup implements ports.GroupStore.
func (s *Store) SaveGroup(ctx context.Context, g *group.Group) error {
	_, err := s.execute(ctx, "SaveGroup", g.ID, func(ctx context.Context) (*group.Group, error) {
		return nil, s.inner.SaveGroup(ctx, g)
	})
	return err
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string { return Name }

// HealthCheck reports the breaker state and, when the wrapped store can
// check itself, its own health.
//
//   - closed: delegates to the wrapped store.
//   - half-open: degraded, probes are being let through.
//   - open: failing, calls are rejected.
func (s *Store) HealthCheck(ctx context.Context) error {
	switch state := s.breaker.State(); state {
	case gobreaker.StateClosed:
	case gobreaker.StateHalfOpen:
		return fmt.Errorf("%s: degraded (circuit breaker half-open)", Name)
	case gobreaker.StateOpen:
		return fmt.Errorf("%s: failing (circuit breaker open)", Name)
	default:
		return fmt.Errorf("%s: unknown circuit breaker state %v", Name, state)
	}

	if hc, ok := s.inner.(ports.HealthChecker); ok {
		return hc.HealthCheck(ctx)
	}
	return nil
}

// execute runs fn through the breaker inside a span.
func (s *Store) execute(
	ctx context.Context,
	op, groupID string,
	fn func(ctx context.Context) (*group.Group, error),
) (*group.Group, error) {
	ctx, span := s.tracer.Start(ctx, "GroupStore."+op,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("db.operation", op),
			attribute.String("tripcrew.group_id", groupID),
		),
	)
	defer span.End()

	g, err := s.breaker.Execute(func() (*group.Group, error) {
		return fn(ctx)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		err = fmt.Errorf("%s %s: %w: %w", Name, op, domain.ErrUnavailable, err)
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return g, nil
}

// toUint32 clamps a non-negative int into uint32 range for gobreaker.
func toUint32(n int) uint32 {
	if n <= 0 {
		return 0
	}
	if n > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(n)
}
