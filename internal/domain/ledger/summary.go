package ledger

import "github.com/shopspring/decimal"

// Participant names a member for the summary breakdown.
type Participant struct {
	ID          string
	DisplayName string
}

// Share is one member's line in a ledger summary.
type Share struct {
	MemberID    string
	DisplayName string
	Amount      int64
	Percentage  int64
}

// Summary is a read-only view of the ledger.
type Summary struct {
	TargetTotal  int64
	CurrentTotal int64
	Remaining    int64
	OverBudget   bool
	AutoAdjust   bool
	Breakdown    []Share
}

var hundred = decimal.NewFromInt(100)

// Summary reports totals and a per-member breakdown in the order of
// participants. Members without an entry are listed with zero.
func (l *Ledger) Summary(participants []Participant) Summary {
	current := l.CurrentTotal()

	breakdown := make([]Share, 0, len(participants))
	for _, p := range participants {
		amount := l.contributions[p.ID]
		breakdown = append(breakdown, Share{
			MemberID:    p.ID,
			DisplayName: p.DisplayName,
			Amount:      amount,
			Percentage:  Percentage(amount, current),
		})
	}

	return Summary{
		TargetTotal:  l.targetTotal,
		CurrentTotal: current,
		Remaining:    l.targetTotal - current,
		OverBudget:   current > l.targetTotal,
		AutoAdjust:   l.autoAdjust,
		Breakdown:    breakdown,
	}
}

// Percentage returns round(part*100/total), rounding halves up. A zero
// total yields zero.
func Percentage(part, total int64) int64 {
	if total == 0 {
		return 0
	}
	return decimal.NewFromInt(part).
		Mul(hundred).
		Div(decimal.NewFromInt(total)).
		Round(0).
		IntPart()
}
