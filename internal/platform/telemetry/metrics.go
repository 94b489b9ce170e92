package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Attribute keys for metric labels.
var (
	AttrHTTPMethod = attribute.Key("http.method")
	AttrHTTPStatus = attribute.Key("http.status_code")
	AttrHTTPRoute  = attribute.Key("http.route")
	AttrResult     = attribute.Key("result")
	AttrTrigger    = attribute.Key("trigger")
	AttrStatus     = attribute.Key("status")
)

// Replan outcome values recorded under AttrResult.
const (
	ResultCompleted     = "completed"
	ResultCancelled     = "cancelled"
	ResultCommitted     = "committed"
	ResultPersistFailed = "persist_failed"
)

// Metrics holds pre-registered OpenTelemetry instruments. A nil *Metrics is
// valid and records nothing.
type Metrics struct {
	ServerRequestDuration metric.Float64Histogram
	ServerRequestTotal    metric.Int64Counter
	ReplanJobsStarted     metric.Int64Counter
	ReplanJobsFinished    metric.Int64Counter
	ReplanCommitAttempts  metric.Int64Counter
	MembershipTransitions metric.Int64Counter
}

// NewMetrics registers every instrument on a meter named scope.
func NewMetrics(mp metric.MeterProvider, scope string) (*Metrics, error) {
	meter := mp.Meter(scope)

	serverDuration, err := meter.Float64Histogram(
		"http.server.request.duration",
		metric.WithDescription("Duration of incoming HTTP requests"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating http.server.request.duration: %w", err)
	}

	serverTotal, err := meter.Int64Counter(
		"http.server.request.total",
		metric.WithDescription("Total number of incoming HTTP requests"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating http.server.request.total: %w", err)
	}

	jobsStarted, err := meter.Int64Counter(
		"replan.jobs.started",
		metric.WithDescription("Replan jobs started, by trigger"),
		metric.WithUnit("{job}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating replan.jobs.started: %w", err)
	}

	jobsFinished, err := meter.Int64Counter(
		"replan.jobs.finished",
		metric.WithDescription("Replan jobs that left the running state, by result"),
		metric.WithUnit("{job}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating replan.jobs.finished: %w", err)
	}

	commitAttempts, err := meter.Int64Counter(
		"replan.commit.attempts",
		metric.WithDescription("Attempts to persist an accepted replan change-set, by result"),
		metric.WithUnit("{attempt}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating replan.commit.attempts: %w", err)
	}

	transitions, err := meter.Int64Counter(
		"membership.transitions",
		metric.WithDescription("Member status transitions, by target status"),
		metric.WithUnit("{transition}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating membership.transitions: %w", err)
	}

	return &Metrics{
		ServerRequestDuration: serverDuration,
		ServerRequestTotal:    serverTotal,
		ReplanJobsStarted:     jobsStarted,
		ReplanJobsFinished:    jobsFinished,
		ReplanCommitAttempts:  commitAttempts,
		MembershipTransitions: transitions,
	}, nil
}

// RecordReplanStarted counts a started job.
func (m *Metrics) RecordReplanStarted(ctx context.Context, trigger string) {
	if m == nil {
		return
	}
	m.ReplanJobsStarted.Add(ctx, 1, metric.WithAttributes(AttrTrigger.String(trigger)))
}

// RecordReplanFinished counts a job that completed or was cancelled.
func (m *Metrics) RecordReplanFinished(ctx context.Context, result string) {
	if m == nil {
		return
	}
	m.ReplanJobsFinished.Add(ctx, 1, metric.WithAttributes(AttrResult.String(result)))
}

// RecordCommitAttempt counts one attempt to persist an accepted change-set.
func (m *Metrics) RecordCommitAttempt(ctx context.Context, result string) {
	if m == nil {
		return
	}
	m.ReplanCommitAttempts.Add(ctx, 1, metric.WithAttributes(AttrResult.String(result)))
}

// RecordTransition counts a member status change.
func (m *Metrics) RecordTransition(ctx context.Context, status string) {
	if m == nil {
		return
	}
	m.MembershipTransitions.Add(ctx, 1, metric.WithAttributes(AttrStatus.String(status)))
}
