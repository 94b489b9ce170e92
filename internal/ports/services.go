package ports

import (
	"context"
	"time"

	"github.com/jsamuelsen11/tripcrew/internal/domain/group"
	"github.com/jsamuelsen11/tripcrew/internal/domain/ledger"
	"github.com/jsamuelsen11/tripcrew/internal/domain/member"
	"github.com/jsamuelsen11/tripcrew/internal/domain/replan"
)

// GroupService creates and reads trip groups.
type GroupService interface {
	// CreateGroup creates a group with its founding admin and returns it
	// with server-assigned fields (IDs, timestamps).
	// Returns domain.ErrValidation if the input fails validation.
	CreateGroup(ctx context.Context, input NewGroup) (*group.Group, error)

	// GetGroup returns a snapshot of the group.
	// Returns domain.ErrNotFound if the group does not exist.
	GetGroup(ctx context.Context, groupID string) (*group.Group, error)
}

// NewGroup is the input for GroupService.CreateGroup.
type NewGroup struct {
	Name        string
	TargetTotal int64
	AutoAdjust  bool
	Founder     NewMember
}

// NewMember is the input for admitting a member. ID, Status and Role are
// optional and default to a generated ID, active and member.
type NewMember struct {
	ID          string
	DisplayName string
	Status      member.Status
	Role        member.Role
}

// MemberService manages the members of a group.
type MemberService interface {
	// ListMembers returns the members ordered by join time.
	// Returns domain.ErrNotFound if the group does not exist.
	ListMembers(ctx context.Context, groupID string) ([]member.Member, error)

	// AdmitMember adds a member who accepted an invite.
	// Returns domain.ErrValidation for bad input, including a dropped_out
	// status, and domain.ErrConflict for a duplicate ID.
	AdmitMember(ctx context.Context, groupID string, input NewMember) (*member.Member, error)

	// ChangeStatus moves a member along the lifecycle. A move to dropped_out
	// publishes a membership event that starts a replan.
	// Returns domain.ErrInvalidTransition, domain.ErrLastAdmin,
	// domain.ErrNotFound or domain.ErrValidation.
	ChangeStatus(ctx context.Context, groupID, memberID string, to member.Status, reason string) (*member.Member, error)

	// RemoveMember deletes a member on behalf of actorID and removes their
	// ledger entry.
	// Returns domain.ErrForbidden if the actor is not an admin and
	// domain.ErrLastAdmin if the target is the only admin.
	RemoveMember(ctx context.Context, groupID, actorID, memberID string) error
}

// BudgetService manages the contribution ledger of a group. Every mutating
// method returns the summary after the change.
type BudgetService interface {
	// GetSummary returns totals and the per-member breakdown.
	GetSummary(ctx context.Context, groupID string) (*ledger.Summary, error)

	// GetSummaries fetches several summaries concurrently. Uses partial
	// success semantics: a hard error is returned only for request-level
	// failures; per-group failures are reported in the results.
	GetSummaries(ctx context.Context, groupIDs []string) ([]SummaryResult, error)

	// SetTargetTotal changes the budget target.
	// Returns domain.ErrValidation if amount <= 0.
	SetTargetTotal(ctx context.Context, groupID string, amount int64) (*ledger.Summary, error)

	// SetContribution records one member's commitment.
	// Returns domain.ErrValidation if amount < 0 or the member is unknown.
	SetContribution(ctx context.Context, groupID, memberID string, amount int64) (*ledger.Summary, error)

	// SetAutoAdjust toggles equal-split maintenance; enabling it splits now.
	SetAutoAdjust(ctx context.Context, groupID string, enabled bool) (*ledger.Summary, error)

	// AutoAdjustEqual splits the target equally across active members.
	// Returns domain.ErrValidation if nobody is active.
	AutoAdjustEqual(ctx context.Context, groupID string) (*ledger.Summary, error)
}

// SummaryResult is one entry of BudgetService.GetSummaries.
type SummaryResult struct {
	GroupID string
	Summary *ledger.Summary
	Err     error
}

// ReplanService drives the replanning workflow of a group.
type ReplanService interface {
	// TriggerReplan starts a manual replan. started is false when a job
	// was already running, in which case the running job is reported.
	// Returns domain.ErrConflict while an accepted change-set awaits commit.
	TriggerReplan(ctx context.Context, groupID string) (status *ReplanStatus, started bool, err error)

	// GetReplanStatus reports the current job.
	// Returns domain.ErrNotFound if the group has no job.
	GetReplanStatus(ctx context.Context, groupID string) (*ReplanStatus, error)

	// CancelReplan cancels the running job.
	// Returns domain.ErrConflict if the job is not running.
	CancelReplan(ctx context.Context, groupID string) (*ReplanStatus, error)

	// AcceptChanges freezes the job and commits its change-set to the group.
	// Returns domain.ErrConflict if the job cannot be accepted yet and
	// domain.ErrPersistFailed if the commit failed twice; calling again
	// retries the commit.
	AcceptChanges(ctx context.Context, groupID string) (*replan.Plan, error)
}

// ReplanStatus is a snapshot of a replan job.
type ReplanStatus struct {
	JobID                  string
	GroupID                string
	Trigger                replan.Trigger
	Status                 replan.Status
	ProgressPercent        int
	CurrentStep            string
	CurrentStepIndex       int
	TotalSteps             int
	EstimatedTimeRemaining time.Duration
	Changes                []replan.Change
	StartedAt              time.Time
	AwaitingCommit         bool
}
