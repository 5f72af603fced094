// Package betpro implements a personal sports-betting ledger: bets are
// recorded, resolved, filtered by reporting period, and aggregated into
// time-bucketed profit series and summary statistics.
package betpro

import (
	"fmt"
	"strings"

	"betpro/date"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Status is the lifecycle state of a bet. Pending is the only non-terminal
// state; all others are resolved.
type Status string

const (
	Pending Status = "PENDING"
	Win     Status = "WIN"
	Loss    Status = "LOSS"
	Void    Status = "VOID"
)

// Resolved reports whether the bet has reached a terminal state.
func (s Status) Resolved() bool { return s != Pending }

// ParseStatus parses a status string, case-insensitively.
func ParseStatus(s string) (Status, error) {
	switch Status(strings.ToUpper(strings.TrimSpace(s))) {
	case Pending:
		return Pending, nil
	case Win:
		return Win, nil
	case Loss:
		return Loss, nil
	case Void:
		return Void, nil
	default:
		return Pending, fmt.Errorf("unknown status %q", s)
	}
}

// SubGame is one constituent selection (leg) of a combination bet.
type SubGame struct {
	Event string          `json:"event"`
	Odd   decimal.Decimal `json:"odd"`
}

// Bet is a single wagered outcome or combination.
//
// Profit is derived, never independently authored: it is always a function of
// stake, odds and status (see ComputeProfit), except through the explicit
// cashout path which overrides the numeric value without touching the status.
type Bet struct {
	ID       string          `json:"id"`
	Date     date.Date       `json:"date"`
	Match    string          `json:"match"`
	Type     string          `json:"type"`
	Odds     decimal.Decimal `json:"odds"`
	Stake    decimal.Decimal `json:"stake"`
	Status   Status          `json:"status"`
	Profit   decimal.Decimal `json:"profit"`
	SubGames []SubGame       `json:"subGames,omitempty"`
}

// CombinedOdds returns the product of all leg odds.
func CombinedOdds(legs []SubGame) decimal.Decimal {
	odds := decimal.NewFromInt(1)
	for _, leg := range legs {
		odds = odds.Mul(leg.Odd)
	}
	return odds
}

// MultiLabel synthesizes the label of a combination bet, e.g. "Multiple (3)".
// The word comes from the active display language.
func MultiLabel(word string, n int) string { return fmt.Sprintf("%s (%d)", word, n) }

// NewBet validates the user's input and creates a bet with a fresh id.
//
// A single leg makes a simple bet carrying the leg's event and odd. Two or
// more legs make a combination: the odds are the product of all leg odds, the
// match label is synthesized with multiWord, and the legs are kept.
// The caller must re-prompt on error; no partial bet is ever created.
func NewBet(on date.Date, betType string, stake decimal.Decimal, status Status, legs []SubGame, multiWord string) (Bet, error) {
	if strings.TrimSpace(betType) == "" {
		return Bet{}, fmt.Errorf("bet type is required")
	}
	if !stake.IsPositive() {
		return Bet{}, fmt.Errorf("stake must be positive, got %s", stake)
	}
	if len(legs) == 0 {
		return Bet{}, fmt.Errorf("at least one game is required")
	}
	for i, leg := range legs {
		if strings.TrimSpace(leg.Event) == "" {
			return Bet{}, fmt.Errorf("game %d: event is required", i+1)
		}
		if !leg.Odd.IsPositive() {
			return Bet{}, fmt.Errorf("game %d: odd must be positive, got %s", i+1, leg.Odd)
		}
	}

	b := Bet{
		ID:     uuid.NewString(),
		Date:   on,
		Type:   betType,
		Stake:  stake,
		Status: status,
		Odds:   CombinedOdds(legs),
	}
	if len(legs) == 1 {
		b.Match = legs[0].Event
	} else {
		b.Match = MultiLabel(multiWord, len(legs))
		b.SubGames = legs
	}
	b.Profit = ComputeProfit(b.Stake, b.Odds, b.Status)
	return b, nil
}
