// Package group defines the trip group aggregate: the member registry, the
// contribution ledger, and the last committed trip plan, mutated together.
package group

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/jsamuelsen11/tripcrew/internal/domain"
	"github.com/jsamuelsen11/tripcrew/internal/domain/ledger"
	"github.com/jsamuelsen11/tripcrew/internal/domain/member"
	"github.com/jsamuelsen11/tripcrew/internal/domain/replan"
)

// Group is one trip-planning group. Methods are not safe for concurrent use;
// the application layer owns one serialized scope per group.
type Group struct {
	ID        string
	Name      string
	CreatedAt time.Time
	Members   *member.Registry
	Ledger    *ledger.Ledger
	Plan      replan.Plan
}

// New creates a group whose first member is its founding admin.
func New(id, name string, targetTotal int64, autoAdjust bool, founder member.Member, now time.Time) (*Group, error) {
	fields := make(map[string]string)
	if strings.TrimSpace(id) == "" {
		fields["id"] = domain.MsgRequired
	}
	if strings.TrimSpace(name) == "" {
		fields["name"] = domain.MsgRequired
	}
	if founder.Role != member.RoleAdmin {
		fields["founder.role"] = "must be admin"
	}
	if len(fields) > 0 {
		return nil, &domain.ValidationError{Fields: fields}
	}

	l, err := ledger.New(targetTotal, autoAdjust)
	if err != nil {
		return nil, err
	}
	g := &Group{
		ID:        id,
		Name:      strings.TrimSpace(name),
		CreatedAt: now,
		Members:   member.NewRegistry(nil),
		Ledger:    l,
	}
	if err := g.Admit(founder); err != nil {
		return nil, err
	}
	return g, nil
}

// Clone returns a deep copy that can be mutated without touching g.
func (g *Group) Clone() *Group {
	return &Group{
		ID:        g.ID,
		Name:      g.Name,
		CreatedAt: g.CreatedAt,
		Members:   g.Members.Clone(),
		Ledger:    g.Ledger.Clone(),
		Plan:      g.Plan.Clone(),
	}
}

// ActiveIDs returns the ids of active members in join order.
func (g *Group) ActiveIDs() []string {
	active := g.Members.Active()
	ids := make([]string, len(active))
	for i, m := range active {
		ids[i] = m.ID
	}
	return ids
}

func (g *Group) memberIDs() []string {
	all := g.Members.List()
	ids := make([]string, len(all))
	for i, m := range all {
		ids[i] = m.ID
	}
	return ids
}

// Admit adds a member who accepted an invite and opens a ledger entry for
// them.
func (g *Group) Admit(m member.Member) error {
	if err := g.Members.Admit(m); err != nil {
		return err
	}
	if err := g.Ledger.SetContribution(m.ID, 0); err != nil {
		return err
	}
	if g.Ledger.AutoAdjust() {
		return g.AutoAdjustEqual()
	}
	return nil
}

// ChangeStatus moves a member along its lifecycle.
func (g *Group) ChangeStatus(memberID string, to member.Status, reason string) (member.Member, error) {
	return g.Members.ChangeStatus(memberID, to, reason)
}

// RemoveMember deletes targetID on behalf of actorID and drops the member's
// ledger entry. With auto-adjust on, the split is recomputed over whoever is
// still active.
func (g *Group) RemoveMember(actorID, targetID string) (member.Member, error) {
	removed, err := g.Members.Remove(actorID, targetID)
	if err != nil {
		return member.Member{}, err
	}
	g.Ledger.Remove(targetID)
	if g.Ledger.AutoAdjust() && len(g.Members.Active()) > 0 {
		if err := g.AutoAdjustEqual(); err != nil {
			return member.Member{}, err
		}
	}
	return removed, nil
}

// SetTargetTotal changes the budget target, re-splitting when auto-adjust is
// on and someone is active.
func (g *Group) SetTargetTotal(amount int64) error {
	if err := g.Ledger.SetTargetTotal(amount); err != nil {
		return err
	}
	if g.Ledger.AutoAdjust() && len(g.Members.Active()) > 0 {
		return g.AutoAdjustEqual()
	}
	return nil
}

// SetContribution records what a member of this group commits.
func (g *Group) SetContribution(memberID string, amount int64) error {
	if _, ok := g.Members.Get(memberID); !ok {
		return domain.NewValidationError("member_id", fmt.Sprintf("unknown member %q", memberID))
	}
	return g.Ledger.SetContribution(memberID, amount)
}

// SetAutoAdjust toggles equal-split maintenance. Enabling it splits
// immediately.
func (g *Group) SetAutoAdjust(enabled bool) error {
	g.Ledger.SetAutoAdjust(enabled)
	if enabled {
		return g.AutoAdjustEqual()
	}
	return nil
}

// AutoAdjustEqual splits the target equally over active members.
func (g *Group) AutoAdjustEqual() error {
	return g.Ledger.SplitEqual(g.ActiveIDs())
}

// Summary reports the ledger with one line per member in join order.
func (g *Group) Summary() ledger.Summary {
	all := g.Members.List()
	participants := make([]ledger.Participant, len(all))
	for i, m := range all {
		participants[i] = ledger.Participant{ID: m.ID, DisplayName: m.DisplayName}
	}
	return g.Ledger.Summary(participants)
}

// ApplyReplan commits the accepted change-set of a replan job. The last
// change carrying contributions is the rebalance proposal. It was computed
// when the job started, so it is checked against the current active members
// and target; a proposal that no longer matches is replaced by the equal split
// of the current target, and the committed description says so.
func (g *Group) ApplyReplan(jobID string, trigger replan.Trigger, changes []replan.Change, now time.Time) error {
	committed := slices.Clone(changes)
	at := -1
	for i, c := range committed {
		if c.Contributions != nil {
			at = i
		}
	}

	if at >= 0 {
		c, err := g.rebalance(committed[at])
		if err != nil {
			return err
		}
		committed[at] = c
	}
	g.Plan = g.Plan.Next(jobID, trigger, committed, now)
	return nil
}

func (g *Group) rebalance(c replan.Change) (replan.Change, error) {
	active := g.ActiveIDs()
	target := g.Ledger.TargetTotal()
	if len(active) == 0 {
		c.Contributions = nil
		c.Description = "no active travellers at commit; contributions left unchanged"
		return c, nil
	}

	shares, err := ledger.EqualSplit(target, active)
	if err != nil {
		return replan.Change{}, err
	}
	if !maps.Equal(shares, c.Contributions) {
		c.Contributions = shares
		c.Description = fmt.Sprintf("recomputed at commit: split %d equally across %d active members", target, len(active))
	}
	if err := g.Ledger.ApplyProposal(c.Contributions, g.memberIDs()); err != nil {
		return replan.Change{}, err
	}
	return c, nil
}
