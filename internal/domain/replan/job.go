// Package replan models the replanning workflow that runs after a group's
// composition changes, and the trip plan that its accepted results produce.
package replan

import (
	"fmt"
	"maps"
	"slices"
	"time"

	"github.com/jsamuelsen11/tripcrew/internal/domain"
)

// Status is the lifecycle state of a replan job.
type Status string

// Job statuses. Completed and Cancelled are terminal.
const (
	StatusIdle      Status = "idle"
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// IsTerminal reports whether no further transition is possible.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// String implements fmt.Stringer.
func (s Status) String() string { return string(s) }

// Trigger records why a job was started.
type Trigger string

// Known triggers.
const (
	TriggerDropout Trigger = "dropout"
	TriggerManual  Trigger = "manual"
)

// IsValid reports whether t is a known trigger.
func (t Trigger) IsValid() bool {
	return t == TriggerDropout || t == TriggerManual
}

// String implements fmt.Stringer.
func (t Trigger) String() string { return string(t) }

// EarlyAcceptThreshold is the progress a running job must exceed before its
// partial change-set may be accepted.
const EarlyAcceptThreshold = 50

// Change is one plan-change descriptor produced by a step. Contributions is
// set only by steps that propose a new ledger split.
type Change struct {
	Step          string
	Description   string
	Contributions map[string]int64
}

func (c Change) clone() Change {
	c.Contributions = maps.Clone(c.Contributions)
	return c
}

// Step is a named unit of work with a fixed share of the total progress.
// Its Change is appended to the job once progress crosses the step boundary.
type Step struct {
	Name   string
	Weight int
	Change Change
}

// Job is a single replanning run for one group. It is not safe for
// concurrent use; the orchestrator drives it from inside the group scope.
type Job struct {
	id        string
	groupID   string
	trigger   Trigger
	status    Status
	steps     []Step
	bounds    []int
	progress  int
	stepIndex int
	changes   []Change
	startedAt time.Time
}

// NewJob returns an idle job.
func NewJob(id, groupID string) *Job {
	return &Job{id: id, groupID: groupID, status: StatusIdle}
}

// ID returns the job identifier.
func (j *Job) ID() string { return j.id }

// GroupID returns the group the job belongs to.
func (j *Job) GroupID() string { return j.groupID }

// Trigger returns the reason the job was started.
func (j *Job) Trigger() Trigger { return j.trigger }

// Status returns the current lifecycle state.
func (j *Job) Status() Status { return j.status }

// Progress returns the progress percentage in [0,100].
func (j *Job) Progress() int { return j.progress }

// StepIndex returns the number of steps whose boundary has been crossed.
func (j *Job) StepIndex() int { return j.stepIndex }

// TotalSteps returns the number of steps in the run.
func (j *Job) TotalSteps() int { return len(j.steps) }

// StartedAt returns the time Start was called.
func (j *Job) StartedAt() time.Time { return j.startedAt }

// CurrentStep returns the name of the step in progress, or "" once every
// step has finished.
func (j *Job) CurrentStep() string {
	if j.stepIndex >= len(j.steps) {
		return ""
	}
	return j.steps[j.stepIndex].Name
}

// Changes returns a copy of the change-set accumulated so far.
func (j *Job) Changes() []Change {
	out := make([]Change, len(j.changes))
	for i, c := range j.changes {
		out[i] = c.clone()
	}
	return out
}

// Start moves an idle job to Running with progress reset to zero.
func (j *Job) Start(trigger Trigger, steps []Step, now time.Time) error {
	if j.status != StatusIdle {
		return fmt.Errorf("job %s is %s: %w", j.id, j.status, domain.ErrAlreadyTerminal)
	}
	if !trigger.IsValid() {
		return domain.NewValidationError("trigger", fmt.Sprintf("invalid: %q", trigger))
	}
	bounds, err := stepBounds(steps)
	if err != nil {
		return err
	}

	j.trigger = trigger
	j.steps = slices.Clone(steps)
	j.bounds = bounds
	j.progress = 0
	j.stepIndex = 0
	j.changes = nil
	j.startedAt = now
	j.status = StatusRunning
	return nil
}

// Advance adds delta to the progress, clamped to 100. Every step boundary
// that is crossed appends that step's change. Reaching 100 completes the job.
func (j *Job) Advance(delta int) error {
	if j.status != StatusRunning {
		return fmt.Errorf("advance job %s while %s: %w", j.id, j.status, domain.ErrInvalidState)
	}
	if delta <= 0 {
		return domain.NewValidationError("delta", fmt.Sprintf("must be positive, got %d", delta))
	}

	j.progress = min(j.progress+delta, 100)
	for j.stepIndex < len(j.steps) && j.progress >= j.bounds[j.stepIndex] {
		j.changes = append(j.changes, j.steps[j.stepIndex].Change.clone())
		j.stepIndex++
	}
	if j.progress == 100 {
		j.status = StatusCompleted
	}
	return nil
}

// Cancel stops a running job. The change-set stays readable but can never
// be accepted.
func (j *Job) Cancel() error {
	if j.status != StatusRunning {
		return fmt.Errorf("cancel job %s while %s: %w", j.id, j.status, domain.ErrInvalidState)
	}
	j.status = StatusCancelled
	return nil
}

// Accept freezes the job and returns the change-set to commit. A running
// job past the early-accept threshold is completed with what it has so far.
func (j *Job) Accept() ([]Change, error) {
	switch {
	case j.status == StatusCompleted:
	case j.status == StatusRunning && j.progress > EarlyAcceptThreshold:
		j.status = StatusCompleted
	default:
		return nil, fmt.Errorf("accept job %s while %s at %d%%: %w", j.id, j.status, j.progress, domain.ErrConflict)
	}
	return j.Changes(), nil
}

func stepBounds(steps []Step) ([]int, error) {
	if len(steps) == 0 {
		return nil, domain.NewValidationError("steps", domain.MsgRequired)
	}
	bounds := make([]int, len(steps))
	total := 0
	for i, s := range steps {
		if s.Name == "" {
			return nil, domain.NewValidationError(fmt.Sprintf("steps[%d].name", i), domain.MsgRequired)
		}
		if s.Weight <= 0 {
			return nil, domain.NewValidationError(fmt.Sprintf("steps[%d].weight", i), "must be positive")
		}
		total += s.Weight
		bounds[i] = total
	}
	if total != 100 {
		return nil, domain.NewValidationError("steps", fmt.Sprintf("weights must sum to 100, got %d", total))
	}
	return bounds, nil
}
