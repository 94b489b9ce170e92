package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/tripcrew/internal/app/events"
	"github.com/jsamuelsen11/tripcrew/internal/domain"
	"github.com/jsamuelsen11/tripcrew/internal/domain/group"
	"github.com/jsamuelsen11/tripcrew/internal/domain/member"
	"github.com/jsamuelsen11/tripcrew/internal/domain/replan"
	"github.com/jsamuelsen11/tripcrew/internal/platform/telemetry"
	"github.com/jsamuelsen11/tripcrew/internal/ports"
)

// Compile-time check that Orchestrator implements ports.ReplanService.
var _ ports.ReplanService = (*Orchestrator)(nil)

// OrchestratorConfig tunes replan progress.
type OrchestratorConfig struct {
	// TickInterval is the time between two progress ticks.
	TickInterval time.Duration
	// ProgressPerTick is the percentage added on every tick.
	ProgressPerTick int
}

// replanRun is the replan state of one group, owned by its scope. pending
// holds an accepted change-set whose commit has not succeeded yet.
type replanRun struct {
	job     *replan.Job
	stop    context.CancelFunc
	pending []replan.Change
}

// Orchestrator starts, advances and commits replan jobs. It keeps at most
// one running job per group and applies every tick inside the group scope.
type Orchestrator struct {
	groups  *Groups
	ticks   ports.TickSource
	clock   ports.Clock
	cfg     OrchestratorConfig
	metrics *telemetry.Metrics
	logger  *slog.Logger

	// ctx outlives requests; tick loops derive from it so Close stops them.
	ctx    context.Context
	cancel context.CancelFunc
}

// NewOrchestrator creates an Orchestrator. metrics may be nil.
func NewOrchestrator(
	groups *Groups,
	ticks ports.TickSource,
	clock ports.Clock,
	cfg OrchestratorConfig,
	metrics *telemetry.Metrics,
	logger *slog.Logger,
) *Orchestrator {
	ctx, cancel := context.WithCancel(context.Background())
	return &Orchestrator{
		groups:  groups,
		ticks:   ticks,
		clock:   clock,
		cfg:     cfg,
		metrics: metrics,
		logger:  logger,
		ctx:     ctx,
		cancel:  cancel,
	}
}

// Close stops every tick loop started by the orchestrator.
func (o *Orchestrator) Close() {
	o.cancel()
}

// HandleMembershipChanged starts a dropout replan. Subscribe it to the
// membership event bus.
func (o *Orchestrator) HandleMembershipChanged(ctx context.Context, evt events.MembershipChanged) {
	if evt.Status != member.StatusDroppedOut {
		return
	}
	if _, _, err := o.start(ctx, evt.GroupID, replan.TriggerDropout); err != nil {
		o.logger.ErrorContext(ctx, "failed to start dropout replan",
			slog.String("operation", "HandleMembershipChanged"),
			slog.String("group_id", evt.GroupID),
			slog.String("member_id", evt.MemberID),
			slog.Any("error", err),
		)
	}
}

// TriggerReplan starts a manual replan.
func (o *Orchestrator) TriggerReplan(ctx context.Context, groupID string) (*ports.ReplanStatus, bool, error) {
	return o.start(ctx, groupID, replan.TriggerManual)
}

func (o *Orchestrator) start(ctx context.Context, groupID string, trigger replan.Trigger) (*ports.ReplanStatus, bool, error) {
	var (
		status  *ports.ReplanStatus
		started bool
		tickCtx context.Context
		jobID   string
	)

	err := o.groups.Within(ctx, groupID, func(sc *Scope) error {
		g, err := sc.Group()
		if err != nil {
			return err
		}

		if prev := sc.s.run; prev != nil {
			switch {
			case prev.job.Status() == replan.StatusRunning:
				status = o.status(prev)
				return nil
			case prev.pending != nil && trigger == replan.TriggerManual:
				return fmt.Errorf("group %s has accepted changes awaiting commit: %w", groupID, domain.ErrConflict)
			case prev.pending != nil:
				status = o.status(prev)
				return nil
			}
			prev.stop()
		}

		job := replan.NewJob(uuid.NewString(), groupID)
		if err := job.Start(trigger, DefaultSteps(g), o.clock.Now()); err != nil {
			return err
		}

		var stop context.CancelFunc
		tickCtx, stop = context.WithCancel(o.ctx)
		sc.s.run = &replanRun{job: job, stop: stop}
		status = o.status(sc.s.run)
		started = true
		jobID = job.ID()
		return nil
	})
	if err != nil {
		o.logger.ErrorContext(ctx, "failed to start replan",
			slog.String("operation", "TriggerReplan"),
			slog.String("group_id", groupID),
			slog.String("trigger", string(trigger)),
			slog.Any("error", err),
		)
		return nil, false, err
	}

	if !started {
		o.logger.InfoContext(ctx, "replan not started",
			slog.String("group_id", groupID),
			slog.String("trigger", string(trigger)),
			slog.String("job_id", status.JobID),
			slog.String("job_status", string(status.Status)),
			slog.Bool("awaiting_commit", status.AwaitingCommit),
		)
		return status, false, nil
	}

	o.metrics.RecordReplanStarted(ctx, string(trigger))
	o.logger.InfoContext(ctx, "replan started",
		slog.String("group_id", groupID),
		slog.String("job_id", jobID),
		slog.String("trigger", string(trigger)),
	)

	o.ticks.Every(tickCtx, o.cfg.TickInterval, func(ctx context.Context) bool {
		return o.tick(ctx, groupID, jobID)
	})
	return status, true, nil
}

// tick advances jobID and reports whether it wants further ticks.
func (o *Orchestrator) tick(ctx context.Context, groupID, jobID string) bool {
	var more, completed bool

	err := o.groups.Within(ctx, groupID, func(sc *Scope) error {
		run := sc.s.run
		if run == nil || run.job.ID() != jobID || run.job.Status() != replan.StatusRunning {
			return nil
		}
		if err := run.job.Advance(o.cfg.ProgressPerTick); err != nil {
			return err
		}
		if run.job.Status() == replan.StatusCompleted {
			completed = true
			return nil
		}
		more = true
		return nil
	})
	if err != nil {
		o.logger.ErrorContext(ctx, "failed to advance replan",
			slog.String("operation", "tick"),
			slog.String("group_id", groupID),
			slog.String("job_id", jobID),
			slog.Any("error", err),
		)
		return false
	}

	if completed {
		o.metrics.RecordReplanFinished(ctx, telemetry.ResultCompleted)
		o.logger.InfoContext(ctx, "replan completed",
			slog.String("group_id", groupID),
			slog.String("job_id", jobID),
		)
	}
	return more
}

// GetReplanStatus reports the group's current job.
func (o *Orchestrator) GetReplanStatus(ctx context.Context, groupID string) (*ports.ReplanStatus, error) {
	var status *ports.ReplanStatus
	err := o.groups.Within(ctx, groupID, func(sc *Scope) error {
		run, err := currentRun(sc, groupID)
		if err != nil {
			return err
		}
		status = o.status(run)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return status, nil
}

// CancelReplan cancels the running job. Its tick loop ends on the next tick.
func (o *Orchestrator) CancelReplan(ctx context.Context, groupID string) (*ports.ReplanStatus, error) {
	o.logger.InfoContext(ctx, "cancelling replan", slog.String("group_id", groupID))

	var status *ports.ReplanStatus
	err := o.groups.Within(ctx, groupID, func(sc *Scope) error {
		run, err := currentRun(sc, groupID)
		if err != nil {
			return err
		}
		if err := run.job.Cancel(); err != nil {
			return err
		}
		run.stop()
		status = o.status(run)
		return nil
	})
	if err != nil {
		o.logger.ErrorContext(ctx, "failed to cancel replan",
			slog.String("operation", "CancelReplan"),
			slog.String("group_id", groupID),
			slog.Any("error", err),
		)
		return nil, err
	}

	o.metrics.RecordReplanFinished(ctx, telemetry.ResultCancelled)
	return status, nil
}

// AcceptChanges freezes the job and commits its change-set as one save of
// the group. A failed save is retried once. If that fails too the accepted
// change-set is kept and a later call retries the commit.
func (o *Orchestrator) AcceptChanges(ctx context.Context, groupID string) (*replan.Plan, error) {
	o.logger.InfoContext(ctx, "accepting replan changes", slog.String("group_id", groupID))

	var (
		plan     replan.Plan
		frozen   bool
		attempts []string
	)

	err := o.groups.Within(ctx, groupID, func(sc *Scope) error {
		run, err := currentRun(sc, groupID)
		if err != nil {
			return err
		}

		if run.pending == nil {
			wasRunning := run.job.Status() == replan.StatusRunning
			changes, err := run.job.Accept()
			if err != nil {
				return err
			}
			run.pending = changes
			run.stop()
			frozen = wasRunning
		}

		job := run.job
		commit := func() error {
			return sc.Mutate(func(g *group.Group) error {
				return g.ApplyReplan(job.ID(), job.Trigger(), run.pending, o.clock.Now())
			})
		}

		err = commit()
		if errors.Is(err, domain.ErrPersistFailed) {
			attempts = append(attempts, telemetry.ResultPersistFailed)
			o.logger.WarnContext(ctx, "replan commit failed, retrying",
				slog.String("group_id", groupID),
				slog.String("job_id", job.ID()),
				slog.Any("error", err),
			)
			err = commit()
			if errors.Is(err, domain.ErrPersistFailed) {
				attempts = append(attempts, telemetry.ResultPersistFailed)
			}
		}
		if err != nil {
			return err
		}
		attempts = append(attempts, telemetry.ResultCommitted)

		g, err := sc.Group()
		if err != nil {
			return err
		}
		plan = g.Plan.Clone()
		sc.s.run = nil
		return nil
	})

	if frozen {
		o.metrics.RecordReplanFinished(ctx, telemetry.ResultCompleted)
	}
	for _, result := range attempts {
		o.metrics.RecordCommitAttempt(ctx, result)
	}

	if err != nil {
		o.logger.ErrorContext(ctx, "failed to accept replan changes",
			slog.String("operation", "AcceptChanges"),
			slog.String("group_id", groupID),
			slog.Any("error", err),
		)
		return nil, err
	}

	o.logger.InfoContext(ctx, "replan committed",
		slog.String("group_id", groupID),
		slog.String("job_id", plan.JobID),
		slog.Int("plan_version", plan.Version),
	)
	return &plan, nil
}

func currentRun(sc *Scope, groupID string) (*replanRun, error) {
	if sc.s.run == nil {
		return nil, fmt.Errorf("replan job for group %s: %w", groupID, domain.ErrNotFound)
	}
	return sc.s.run, nil
}

func (o *Orchestrator) status(run *replanRun) *ports.ReplanStatus {
	j := run.job

	var eta time.Duration
	if j.Status() == replan.StatusRunning && o.cfg.ProgressPerTick > 0 {
		remaining := 100 - j.Progress()
		ticks := (remaining + o.cfg.ProgressPerTick - 1) / o.cfg.ProgressPerTick
		eta = time.Duration(ticks) * o.cfg.TickInterval
	}

	return &ports.ReplanStatus{
		JobID:                  j.ID(),
		GroupID:                j.GroupID(),
		Trigger:                j.Trigger(),
		Status:                 j.Status(),
		ProgressPercent:        j.Progress(),
		CurrentStep:            j.CurrentStep(),
		CurrentStepIndex:       j.StepIndex(),
		TotalSteps:             j.TotalSteps(),
		EstimatedTimeRemaining: eta,
		Changes:                j.Changes(),
		StartedAt:              j.StartedAt(),
		AwaitingCommit:         run.pending != nil,
	}
}
