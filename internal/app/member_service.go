package app

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen11/tripcrew/internal/app/events"
	"github.com/jsamuelsen11/tripcrew/internal/domain/group"
	"github.com/jsamuelsen11/tripcrew/internal/domain/member"
	"github.com/jsamuelsen11/tripcrew/internal/platform/telemetry"
	"github.com/jsamuelsen11/tripcrew/internal/ports"
)

// Compile-time check that MemberService implements ports.MemberService.
var _ ports.MemberService = (*MemberService)(nil)

// MemberService implements ports.MemberService. Status changes are published
// on the event bus after the group scope has been released.
type MemberService struct {
	groups  *Groups
	bus     *events.Bus
	clock   ports.Clock
	metrics *telemetry.Metrics
	logger  *slog.Logger
}

// NewMemberService creates a MemberService. metrics may be nil.
func NewMemberService(groups *Groups, bus *events.Bus, clock ports.Clock, metrics *telemetry.Metrics, logger *slog.Logger) *MemberService {
	return &MemberService{
		groups:  groups,
		bus:     bus,
		clock:   clock,
		metrics: metrics,
		logger:  logger,
	}
}

// ListMembers returns the members of a group in join order.
func (s *MemberService) ListMembers(ctx context.Context, groupID string) ([]member.Member, error) {
	var members []member.Member
	err := s.groups.View(ctx, groupID, func(g *group.Group) error {
		members = g.Members.List()
		return nil
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list members",
			slog.String("operation", "ListMembers"),
			slog.String("group_id", groupID),
			slog.Any("error", err),
		)
		return nil, err
	}
	return members, nil
}

// AdmitMember adds a member who accepted an invite.
func (s *MemberService) AdmitMember(ctx context.Context, groupID string, input ports.NewMember) (*member.Member, error) {
	m := newMember(input, s.clock.Now())
	s.logger.InfoContext(ctx, "admitting member",
		slog.String("group_id", groupID),
		slog.String("member_id", m.ID),
	)

	err := s.groups.Update(ctx, groupID, func(g *group.Group) error {
		return g.Admit(m)
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to admit member",
			slog.String("operation", "AdmitMember"),
			slog.String("group_id", groupID),
			slog.String("member_id", m.ID),
			slog.Any("error", err),
		)
		return nil, err
	}
	return &m, nil
}

// ChangeStatus moves a member along the lifecycle and announces the change.
func (s *MemberService) ChangeStatus(ctx context.Context, groupID, memberID string, to member.Status, reason string) (*member.Member, error) {
	s.logger.InfoContext(ctx, "changing member status",
		slog.String("group_id", groupID),
		slog.String("member_id", memberID),
		slog.String("status", string(to)),
	)

	var updated member.Member
	err := s.groups.Update(ctx, groupID, func(g *group.Group) error {
		m, err := g.ChangeStatus(memberID, to, reason)
		if err != nil {
			return err
		}
		updated = m
		return nil
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to change member status",
			slog.String("operation", "ChangeStatus"),
			slog.String("group_id", groupID),
			slog.String("member_id", memberID),
			slog.Any("error", err),
		)
		return nil, err
	}

	s.metrics.RecordTransition(ctx, string(updated.Status))
	s.bus.Publish(ctx, events.MembershipChanged{
		GroupID:    groupID,
		MemberID:   updated.ID,
		Status:     updated.Status,
		Reason:     updated.DropoutReason,
		OccurredAt: s.clock.Now(),
	})
	return &updated, nil
}

// RemoveMember deletes a member on behalf of an admin.
func (s *MemberService) RemoveMember(ctx context.Context, groupID, actorID, memberID string) error {
	s.logger.InfoContext(ctx, "removing member",
		slog.String("group_id", groupID),
		slog.String("actor_id", actorID),
		slog.String("member_id", memberID),
	)

	err := s.groups.Update(ctx, groupID, func(g *group.Group) error {
		_, err := g.RemoveMember(actorID, memberID)
		return err
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to remove member",
			slog.String("operation", "RemoveMember"),
			slog.String("group_id", groupID),
			slog.String("member_id", memberID),
			slog.Any("error", err),
		)
		return err
	}
	return nil
}
