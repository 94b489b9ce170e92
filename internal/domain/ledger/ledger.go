// Package ledger implements the contribution ledger that funds a group trip.
// All amounts are integers in minor currency units; nothing in this package
// uses floating point.
package ledger

import (
	"fmt"
	"maps"

	"github.com/jsamuelsen11/tripcrew/internal/domain"
)

// Ledger tracks the target budget of a group and what each member has
// committed toward it. It is not safe for concurrent use.
type Ledger struct {
	targetTotal   int64
	contributions map[string]int64
	autoAdjust    bool
}

// New creates an empty ledger with the given target.
func New(targetTotal int64, autoAdjust bool) (*Ledger, error) {
	if err := validateTarget(targetTotal); err != nil {
		return nil, err
	}
	return &Ledger{
		targetTotal:   targetTotal,
		contributions: make(map[string]int64),
		autoAdjust:    autoAdjust,
	}, nil
}

// Restore rebuilds a ledger from persisted state.
func Restore(targetTotal int64, autoAdjust bool, contributions map[string]int64) (*Ledger, error) {
	l, err := New(targetTotal, autoAdjust)
	if err != nil {
		return nil, err
	}
	for id, amount := range contributions {
		if err := l.SetContribution(id, amount); err != nil {
			return nil, err
		}
	}
	return l, nil
}

// Clone returns an independent copy of the ledger.
func (l *Ledger) Clone() *Ledger {
	return &Ledger{
		targetTotal:   l.targetTotal,
		contributions: maps.Clone(l.contributions),
		autoAdjust:    l.autoAdjust,
	}
}

// TargetTotal returns the budget the group is saving toward.
func (l *Ledger) TargetTotal() int64 { return l.targetTotal }

// AutoAdjust reports whether contributions are kept as an equal split.
func (l *Ledger) AutoAdjust() bool { return l.autoAdjust }

// Contribution returns the amount recorded for a member.
func (l *Ledger) Contribution(memberID string) (int64, bool) {
	v, ok := l.contributions[memberID]
	return v, ok
}

// Contributions returns a copy of all recorded contributions.
func (l *Ledger) Contributions() map[string]int64 {
	return maps.Clone(l.contributions)
}

// CurrentTotal is the sum of all contributions.
func (l *Ledger) CurrentTotal() int64 {
	var sum int64
	for _, v := range l.contributions {
		sum += v
	}
	return sum
}

// Remaining is the target minus the current total. Negative when over budget.
func (l *Ledger) Remaining() int64 {
	return l.targetTotal - l.CurrentTotal()
}

// OverBudget reports whether contributions exceed the target.
func (l *Ledger) OverBudget() bool {
	return l.CurrentTotal() > l.targetTotal
}

// SetTargetTotal changes the budget target. The amount must be positive.
func (l *Ledger) SetTargetTotal(amount int64) error {
	if err := validateTarget(amount); err != nil {
		return err
	}
	l.targetTotal = amount
	return nil
}

// SetContribution records the amount a member commits. Callers check that
// the member belongs to the group.
func (l *Ledger) SetContribution(memberID string, amount int64) error {
	if memberID == "" {
		return domain.NewValidationError("member_id", domain.MsgRequired)
	}
	if amount < 0 {
		return domain.NewValidationError("amount", fmt.Sprintf("must be >= 0, got %d", amount))
	}
	l.contributions[memberID] = amount
	return nil
}

// SetAutoAdjust toggles equal-split maintenance.
func (l *Ledger) SetAutoAdjust(enabled bool) {
	l.autoAdjust = enabled
}

// Remove deletes a member's entry.
func (l *Ledger) Remove(memberID string) {
	delete(l.contributions, memberID)
}

// SplitEqual assigns the equal split of the target over activeIDs, given in
// join order, and zeroes every other entry. The ledger is left untouched if
// the resulting sum does not match the target.
func (l *Ledger) SplitEqual(activeIDs []string) error {
	shares, err := EqualSplit(l.targetTotal, activeIDs)
	if err != nil {
		return err
	}

	next := make(map[string]int64, len(l.contributions)+len(shares))
	for id := range l.contributions {
		next[id] = 0
	}
	maps.Copy(next, shares)

	if err := checkSum(next, l.targetTotal); err != nil {
		return err
	}
	l.contributions = next
	return nil
}

// ApplyProposal replaces contributions with a proposed split. Entries for
// members outside keep are dropped from the proposal, and members in keep
// without a proposed amount are set to zero. The ledger is left untouched if
// the result does not sum to the target.
func (l *Ledger) ApplyProposal(proposal map[string]int64, keep []string) error {
	next := make(map[string]int64, len(keep))
	for _, id := range keep {
		amount := proposal[id]
		if amount < 0 {
			return fmt.Errorf("proposed amount %d for %q: %w", amount, id, domain.ErrInvariantViolation)
		}
		next[id] = amount
	}

	if err := checkSum(next, l.targetTotal); err != nil {
		return err
	}
	l.contributions = next
	return nil
}

// EqualSplit divides total across ids using integer division. The remainder
// is handed out one unit at a time in the order of ids, so the shares always
// sum to total exactly.
func EqualSplit(total int64, ids []string) (map[string]int64, error) {
	if len(ids) == 0 {
		return nil, domain.NewValidationError("members", "no active members to split across")
	}
	if total < 0 {
		return nil, domain.NewValidationError("target_total", fmt.Sprintf("must be >= 0, got %d", total))
	}

	n := int64(len(ids))
	base, remainder := total/n, total%n

	shares := make(map[string]int64, len(ids))
	for i, id := range ids {
		if _, dup := shares[id]; dup {
			return nil, fmt.Errorf("duplicate member %q in split: %w", id, domain.ErrInvariantViolation)
		}
		share := base
		if int64(i) < remainder {
			share++
		}
		shares[id] = share
	}
	return shares, nil
}

func checkSum(contributions map[string]int64, want int64) error {
	var sum int64
	for _, v := range contributions {
		sum += v
	}
	if sum != want {
		return fmt.Errorf("ledger sum %d != target %d: %w", sum, want, domain.ErrInvariantViolation)
	}
	return nil
}

func validateTarget(amount int64) error {
	if amount <= 0 {
		return domain.NewValidationError("target_total", fmt.Sprintf("must be positive, got %d", amount))
	}
	return nil
}
