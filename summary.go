package betpro

import "github.com/shopspring/decimal"

// Summary aggregates the headline statistics of a filtered set of bets.
type Summary struct {
	TotalProfit   decimal.Decimal // sum of profit, pending bets contribute 0
	TotalStake    decimal.Decimal // sum of stake over all bets, pending included
	WinRate       Percent         // wins over resolved bets
	ROI           Percent         // total profit over total stake
	ActiveCount   int             // bets still pending
	ResolvedCount int             // bets in any terminal state
	WinCount      int
}

// Summarize computes the summary metrics over the given bets.
//
// Void bets count toward the resolved denominator of the win rate but not
// toward wins: they are finished but non-winning. This deliberately lowers
// the win rate relative to excluding them; it is observable user-facing
// behavior, not a bug. Both ratios guard against a zero denominator.
func Summarize(bets []Bet) Summary {
	var s Summary
	for _, b := range bets {
		s.TotalProfit = s.TotalProfit.Add(b.Profit)
		s.TotalStake = s.TotalStake.Add(b.Stake)
		if b.Status.Resolved() {
			s.ResolvedCount++
		} else {
			s.ActiveCount++
		}
		if b.Status == Win {
			s.WinCount++
		}
	}
	if s.ResolvedCount > 0 {
		s.WinRate = Percent(100 * float64(s.WinCount) / float64(s.ResolvedCount))
	}
	if s.TotalStake.IsPositive() {
		roi, _ := s.TotalProfit.Div(s.TotalStake).Mul(decimal.NewFromInt(100)).Float64()
		s.ROI = Percent(roi)
	}
	return s
}
