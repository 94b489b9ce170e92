package app

import (
	"fmt"
	"slices"
	"strings"

	"github.com/jsamuelsen11/tripcrew/internal/domain/group"
	"github.com/jsamuelsen11/tripcrew/internal/domain/ledger"
	"github.com/jsamuelsen11/tripcrew/internal/domain/member"
	"github.com/jsamuelsen11/tripcrew/internal/domain/replan"
)

// Default replan step names.
const (
	StepReviewMembership    = "review_membership"
	StepRebalanceBudget     = "rebalance_budget"
	StepResizeAccommodation = "resize_accommodation"
	StepAdjustTransport     = "adjust_transport"
	StepRefreshItinerary    = "refresh_itinerary"
)

// DefaultSteps builds the five equally weighted replan steps from the group
// as it is when the job starts.
func DefaultSteps(g *group.Group) []replan.Step {
	all := g.Members.List()
	active := g.Members.Active()
	travellers := len(active)

	return []replan.Step{
		step(StepReviewMembership, reviewMembership(all, travellers), nil),
		rebalanceStep(g, active),
		step(StepResizeAccommodation,
			fmt.Sprintf("resize accommodation for %s", plural(travellers, "traveller")), nil),
		step(StepAdjustTransport,
			fmt.Sprintf("adjust transport bookings for %s", plural(travellers, "traveller")), nil),
		step(StepRefreshItinerary,
			fmt.Sprintf("refresh itinerary for %s", plural(travellers, "traveller")), nil),
	}
}

func step(name, description string, contributions map[string]int64) replan.Step {
	return replan.Step{
		Name:   name,
		Weight: 20,
		Change: replan.Change{Step: name, Description: description, Contributions: contributions},
	}
}

func reviewMembership(all []member.Member, travellers int) string {
	var dropped []string
	inactive := 0
	for _, m := range all {
		switch m.Status {
		case member.StatusDroppedOut:
			label := m.DisplayName
			if m.DropoutReason != "" {
				label += " (" + m.DropoutReason + ")"
			}
			dropped = append(dropped, label)
		case member.StatusInactive:
			inactive++
		}
	}

	desc := fmt.Sprintf("%s travelling, %d inactive", plural(travellers, "member"), inactive)
	if len(dropped) > 0 {
		desc += "; dropped out: " + strings.Join(dropped, ", ")
	}
	return desc
}

func rebalanceStep(g *group.Group, active []member.Member) replan.Step {
	target := g.Ledger.TargetTotal()
	if len(active) == 0 {
		return step(StepRebalanceBudget, "no active travellers; contributions left unchanged", nil)
	}

	ids := make([]string, len(active))
	for i, m := range active {
		ids[i] = m.ID
	}
	shares, err := ledger.EqualSplit(target, ids)
	if err != nil {
		return step(StepRebalanceBudget, "could not compute an equal split; contributions left unchanged", nil)
	}

	amounts := make([]int64, 0, len(shares))
	for _, v := range shares {
		amounts = append(amounts, v)
	}
	lo, hi := slices.Min(amounts), slices.Max(amounts)
	each := fmt.Sprintf("%d each", lo)
	if lo != hi {
		each = fmt.Sprintf("%d to %d each", lo, hi)
	}
	return step(StepRebalanceBudget,
		fmt.Sprintf("split %d equally across %s: %s", target, plural(len(active), "traveller"), each),
		shares)
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
