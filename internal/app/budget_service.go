package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/tripcrew/internal/app/fanout"
	"github.com/jsamuelsen11/tripcrew/internal/domain"
	"github.com/jsamuelsen11/tripcrew/internal/domain/group"
	"github.com/jsamuelsen11/tripcrew/internal/domain/ledger"
	"github.com/jsamuelsen11/tripcrew/internal/ports"
)

// Compile-time check that BudgetService implements ports.BudgetService.
var _ ports.BudgetService = (*BudgetService)(nil)

// maxSummaryWorkers bounds GetSummaries fan-out.
const maxSummaryWorkers = 8

// maxSummaryGroups caps the number of groups per GetSummaries call.
const maxSummaryGroups = 50

// BudgetService implements ports.BudgetService.
type BudgetService struct {
	groups *Groups
	logger *slog.Logger
}

// NewBudgetService creates a BudgetService.
func NewBudgetService(groups *Groups, logger *slog.Logger) *BudgetService {
	return &BudgetService{
		groups: groups,
		logger: logger,
	}
}

// GetSummary returns the ledger summary of one group.
func (s *BudgetService) GetSummary(ctx context.Context, groupID string) (*ledger.Summary, error) {
	var summary ledger.Summary
	err := s.groups.View(ctx, groupID, func(g *group.Group) error {
		summary = g.Summary()
		return nil
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch budget summary",
			slog.String("operation", "GetSummary"),
			slog.String("group_id", groupID),
			slog.Any("error", err),
		)
		return nil, err
	}
	return &summary, nil
}

// GetSummaries fetches the summaries of several groups concurrently.
func (s *BudgetService) GetSummaries(ctx context.Context, groupIDs []string) ([]ports.SummaryResult, error) {
	s.logger.InfoContext(ctx, "fetching budget summaries", slog.Int("count", len(groupIDs)))

	if len(groupIDs) == 0 {
		return nil, domain.NewValidationError("group_id", domain.MsgRequired)
	}
	if len(groupIDs) > maxSummaryGroups {
		return nil, domain.NewValidationError("group_id", fmt.Sprintf("at most %d groups per request", maxSummaryGroups))
	}

	results := fanout.Run(ctx, maxSummaryWorkers, groupIDs, s.GetSummary)

	out := make([]ports.SummaryResult, len(groupIDs))
	for i, r := range results {
		out[i] = ports.SummaryResult{GroupID: groupIDs[i], Summary: r.Value, Err: r.Err}
	}
	return out, nil
}

// SetTargetTotal changes the budget target of a group.
func (s *BudgetService) SetTargetTotal(ctx context.Context, groupID string, amount int64) (*ledger.Summary, error) {
	s.logger.InfoContext(ctx, "setting target total",
		slog.String("group_id", groupID),
		slog.Int64("amount", amount),
	)
	return s.update(ctx, "SetTargetTotal", groupID, func(g *group.Group) error {
		return g.SetTargetTotal(amount)
	})
}

// SetContribution records one member's commitment.
func (s *BudgetService) SetContribution(ctx context.Context, groupID, memberID string, amount int64) (*ledger.Summary, error) {
	s.logger.InfoContext(ctx, "setting contribution",
		slog.String("group_id", groupID),
		slog.String("member_id", memberID),
		slog.Int64("amount", amount),
	)
	return s.update(ctx, "SetContribution", groupID, func(g *group.Group) error {
		return g.SetContribution(memberID, amount)
	})
}

// SetAutoAdjust toggles equal-split maintenance.
func (s *BudgetService) SetAutoAdjust(ctx context.Context, groupID string, enabled bool) (*ledger.Summary, error) {
	s.logger.InfoContext(ctx, "setting auto-adjust",
		slog.String("group_id", groupID),
		slog.Bool("enabled", enabled),
	)
	return s.update(ctx, "SetAutoAdjust", groupID, func(g *group.Group) error {
		return g.SetAutoAdjust(enabled)
	})
}

// AutoAdjustEqual splits the target equally across active members.
func (s *BudgetService) AutoAdjustEqual(ctx context.Context, groupID string) (*ledger.Summary, error) {
	s.logger.InfoContext(ctx, "splitting budget equally", slog.String("group_id", groupID))
	return s.update(ctx, "AutoAdjustEqual", groupID, func(g *group.Group) error {
		return g.AutoAdjustEqual()
	})
}

// update applies fn and returns the summary of the state that was saved.
func (s *BudgetService) update(ctx context.Context, op, groupID string, fn func(g *group.Group) error) (*ledger.Summary, error) {
	var summary ledger.Summary
	err := s.groups.Update(ctx, groupID, func(g *group.Group) error {
		if err := fn(g); err != nil {
			return err
		}
		summary = g.Summary()
		return nil
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to update budget",
			slog.String("operation", op),
			slog.String("group_id", groupID),
			slog.Any("error", err),
		)
		return nil, err
	}
	return &summary, nil
}
