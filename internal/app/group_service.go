// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/tripcrew/internal/domain/group"
	"github.com/jsamuelsen11/tripcrew/internal/domain/member"
	"github.com/jsamuelsen11/tripcrew/internal/ports"
)

// Compile-time check that GroupService implements ports.GroupService.
var _ ports.GroupService = (*GroupService)(nil)

// GroupService implements ports.GroupService on top of the group scopes.
type GroupService struct {
	groups *Groups
	clock  ports.Clock
	logger *slog.Logger
}

// NewGroupService creates a GroupService.
func NewGroupService(groups *Groups, clock ports.Clock, logger *slog.Logger) *GroupService {
	return &GroupService{
		groups: groups,
		clock:  clock,
		logger: logger,
	}
}

// CreateGroup creates a group with its founding admin.
func (s *GroupService) CreateGroup(ctx context.Context, input ports.NewGroup) (*group.Group, error) {
	s.logger.InfoContext(ctx, "creating group", slog.String("name", input.Name))

	now := s.clock.Now()
	founder := newMember(input.Founder, now)
	founder.Role = member.RoleAdmin

	g, err := group.New(uuid.NewString(), input.Name, input.TargetTotal, input.AutoAdjust, founder, now)
	if err != nil {
		return nil, err
	}

	if err := s.groups.Create(ctx, g); err != nil {
		s.logger.ErrorContext(ctx, "failed to create group",
			slog.String("operation", "CreateGroup"),
			slog.String("group_id", g.ID),
			slog.Any("error", err),
		)
		return nil, err
	}

	return g, nil
}

// GetGroup returns a snapshot of the group.
func (s *GroupService) GetGroup(ctx context.Context, groupID string) (*group.Group, error) {
	var snapshot *group.Group
	err := s.groups.View(ctx, groupID, func(g *group.Group) error {
		snapshot = g.Clone()
		return nil
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch group",
			slog.String("operation", "GetGroup"),
			slog.String("group_id", groupID),
			slog.Any("error", err),
		)
		return nil, err
	}
	return snapshot, nil
}

// newMember fills in the optional fields of an admission request.
func newMember(input ports.NewMember, now time.Time) member.Member {
	m := member.Member{
		ID:          input.ID,
		DisplayName: input.DisplayName,
		Status:      input.Status,
		Role:        input.Role,
		JoinedAt:    now,
	}
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	if m.Status == "" {
		m.Status = member.StatusActive
	}
	if m.Role == "" {
		m.Role = member.RoleMember
	}
	return m
}
