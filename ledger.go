package betpro

import (
	"fmt"
	"iter"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Ledger is the in-memory ordered collection of bets, the single source of
// truth for every derived view. The most recently recorded bet comes first.
//
// Every mutation goes through a method that re-derives profit with
// [ComputeProfit]; the only exception is the explicit [Ledger.Cashout]
// override. Operating on an unknown id is a no-op, not an error.
type Ledger struct {
	bets []Bet
}

// NewLedger creates an empty ledger.
func NewLedger(bets ...Bet) *Ledger {
	return &Ledger{bets: bets}
}

// Len returns the number of bets in the ledger.
func (l *Ledger) Len() int { return len(l.bets) }

// Bets returns an iterator over all bets that pass every given filter, in
// their recorded order (most recent first).
func (l *Ledger) Bets(filters ...func(Bet) bool) iter.Seq[Bet] {
	return func(yield func(Bet) bool) {
		for _, b := range l.bets {
			accept := true
			for _, filter := range filters {
				if !filter(b) {
					accept = false
					break
				}
			}
			if !accept {
				continue
			}
			if !yield(b) {
				return
			}
		}
	}
}

// Get returns the bet with the given id.
func (l *Ledger) Get(id string) (Bet, bool) {
	for _, b := range l.bets {
		if b.ID == id {
			return b, true
		}
	}
	return Bet{}, false
}

// Add records a new bet at the head of the collection. A missing id is
// assigned; a duplicate id is rejected to keep identifiers unique.
func (l *Ledger) Add(b Bet) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	if _, exists := l.Get(b.ID); exists {
		return fmt.Errorf("duplicate bet id %q", b.ID)
	}
	l.bets = append([]Bet{b}, l.bets...)
	return nil
}

// Prepend inserts bets at the head of the collection, preserving their
// relative order. It is the import path: ids are assigned when missing.
func (l *Ledger) Prepend(bets ...Bet) {
	for i := range bets {
		if bets[i].ID == "" {
			bets[i].ID = uuid.NewString()
		}
	}
	l.bets = append(bets, l.bets...)
}

// Update replaces every field of the stored bet (except the id) and
// re-derives profit from the updated stake, odds and status. Any previous
// cashout override is discarded. Unknown ids are a no-op.
func (l *Ledger) Update(b Bet) bool {
	for i := range l.bets {
		if l.bets[i].ID == b.ID {
			b.Profit = ComputeProfit(b.Stake, b.Odds, b.Status)
			l.bets[i] = b
			return true
		}
	}
	return false
}

// SetStatus transitions the bet's status and re-derives its profit.
// Resetting to Pending brings profit back to the zero baseline.
func (l *Ledger) SetStatus(id string, status Status) bool {
	for i := range l.bets {
		if l.bets[i].ID == id {
			l.bets[i].Status = status
			l.bets[i].Profit = ComputeProfit(l.bets[i].Stake, l.bets[i].Odds, status)
			return true
		}
	}
	return false
}

// Cashout manually overrides the bet's profit without re-deriving it and
// without changing the status. This is the only mutation allowed to author
// the profit field directly.
func (l *Ledger) Cashout(id string, profit decimal.Decimal) bool {
	for i := range l.bets {
		if l.bets[i].ID == id {
			l.bets[i].Profit = profit
			return true
		}
	}
	return false
}

// Delete removes the bet from the collection. Unknown ids are a no-op.
func (l *Ledger) Delete(id string) bool {
	for i := range l.bets {
		if l.bets[i].ID == id {
			l.bets = append(l.bets[:i], l.bets[i+1:]...)
			return true
		}
	}
	return false
}

// ConsolidatedProfit is the all-time profit over the entire unfiltered
// collection, displayed alongside the filtered period's balance.
func (l *Ledger) ConsolidatedProfit() decimal.Decimal {
	total := decimal.Zero
	for _, b := range l.bets {
		total = total.Add(b.Profit)
	}
	return total
}
