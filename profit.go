package betpro

import "github.com/shopspring/decimal"

// ComputeProfit derives the realized profit of a bet from its stake, odds and
// status. It is pure and total over all valid inputs:
//
//	Pending -> 0
//	Win     -> stake*odds - stake
//	Loss    -> -stake
//	Void    -> 0
//
// A cashout (manual profit override) bypasses this function entirely, see
// [Ledger.Cashout].
func ComputeProfit(stake, odds decimal.Decimal, status Status) decimal.Decimal {
	switch status {
	case Win:
		return stake.Mul(odds).Sub(stake)
	case Loss:
		return stake.Neg()
	default: // Pending and Void settle at zero.
		return decimal.Zero
	}
}
