package member

import (
	"fmt"
	"slices"
	"strings"

	"github.com/jsamuelsen11/tripcrew/internal/domain"
)

// Registry holds the members of one group ordered by join time and enforces
// the lifecycle and admin rules. It is not safe for concurrent use; callers
// serialize access per group.
type Registry struct {
	members []Member
}

// NewRegistry builds a registry from stored members. The input slice is
// copied and sorted by JoinedAt, with ties broken by ID.
func NewRegistry(members []Member) *Registry {
	r := &Registry{members: slices.Clone(members)}
	r.sort()
	return r
}

// Clone returns an independent copy of the registry.
func (r *Registry) Clone() *Registry {
	return &Registry{members: slices.Clone(r.members)}
}

// List returns a copy of all members in join order.
func (r *Registry) List() []Member {
	return slices.Clone(r.members)
}

// Active returns the active members in join order.
func (r *Registry) Active() []Member {
	active := make([]Member, 0, len(r.members))
	for _, m := range r.members {
		if m.Status == StatusActive {
			active = append(active, m)
		}
	}
	return active
}

// Len returns the number of members.
func (r *Registry) Len() int {
	return len(r.members)
}

// Get returns the member with the given ID.
func (r *Registry) Get(id string) (Member, bool) {
	i := r.index(id)
	if i < 0 {
		return Member{}, false
	}
	return r.members[i], true
}

// AdminCount returns the number of members that currently count as admins.
func (r *Registry) AdminCount() int {
	n := 0
	for i := range r.members {
		if r.members[i].IsAdmin() {
			n++
		}
	}
	return n
}

// Admit adds a member accepted through an invite.
func (r *Registry) Admit(m Member) error {
	if err := m.Validate(); err != nil {
		return err
	}
	if r.index(m.ID) >= 0 {
		return fmt.Errorf("member %q already in group: %w", m.ID, domain.ErrConflict)
	}
	if r.AdminCount() == 0 && !m.IsAdmin() {
		return fmt.Errorf("first member must be an admin: %w", domain.ErrLastAdmin)
	}
	r.members = append(r.members, m)
	r.sort()
	return nil
}

// ChangeStatus moves a member along the lifecycle. The reason is recorded
// only when the new status is dropped_out.
func (r *Registry) ChangeStatus(id string, to Status, reason string) (Member, error) {
	if !to.IsValid() {
		return Member{}, domain.NewValidationError("status", fmt.Sprintf("invalid: %q", to))
	}
	i := r.index(id)
	if i < 0 {
		return Member{}, fmt.Errorf("member %q: %w", id, domain.ErrNotFound)
	}

	m := r.members[i]
	if !CanTransition(m.Status, to) {
		return Member{}, fmt.Errorf("member %q %s -> %s: %w", id, m.Status, to, domain.ErrInvalidTransition)
	}
	if m.IsAdmin() && to == StatusDroppedOut && r.AdminCount() == 1 {
		return Member{}, fmt.Errorf("member %q is the only admin: %w", id, domain.ErrLastAdmin)
	}

	m.Status = to
	if to == StatusDroppedOut {
		m.DropoutReason = strings.TrimSpace(reason)
	}
	r.members[i] = m
	return m, nil
}

// Remove deletes a member on behalf of an admin actor.
func (r *Registry) Remove(actorID, targetID string) (Member, error) {
	actor, ok := r.Get(actorID)
	if !ok || !actor.IsAdmin() {
		return Member{}, fmt.Errorf("actor %q cannot remove members: %w", actorID, domain.ErrForbidden)
	}
	i := r.index(targetID)
	if i < 0 {
		return Member{}, fmt.Errorf("member %q: %w", targetID, domain.ErrNotFound)
	}

	target := r.members[i]
	if target.IsAdmin() && r.AdminCount() == 1 {
		return Member{}, fmt.Errorf("member %q is the only admin: %w", targetID, domain.ErrLastAdmin)
	}

	r.members = slices.Delete(r.members, i, i+1)
	return target, nil
}

func (r *Registry) index(id string) int {
	return slices.IndexFunc(r.members, func(m Member) bool { return m.ID == id })
}

func (r *Registry) sort() {
	slices.SortStableFunc(r.members, func(a, b Member) int {
		if c := a.JoinedAt.Compare(b.JoinedAt); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
}
