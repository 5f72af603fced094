package betpro

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"betpro/date"
)

// View selects how the reporting window is expressed.
type View int

const (
	// Annual keeps bets whose date falls in a calendar year.
	Annual View = iota
	// Monthly keeps bets whose date falls in a calendar year and month.
	Monthly
	// Custom keeps bets inside an arbitrary [From, To] range, inclusive.
	Custom
	// All keeps every bet regardless of date.
	All
)

func (v View) String() string {
	switch v {
	case Annual:
		return "annual"
	case Monthly:
		return "monthly"
	case Custom:
		return "custom"
	case All:
		return "all"
	default:
		panic(fmt.Sprintf("unknown view %d", v))
	}
}

// ParseView parses a view name.
func ParseView(s string) (View, error) {
	switch strings.ToLower(s) {
	case "annual", "year":
		return Annual, nil
	case "monthly", "month":
		return Monthly, nil
	case "custom":
		return Custom, nil
	case "all":
		return All, nil
	default:
		return Annual, fmt.Errorf("unknown view %q", s)
	}
}

// Filter describes the requested reporting window.
type Filter struct {
	View  View
	Year  int        // Annual and Monthly
	Month time.Month // Monthly only
	From  date.Date  // Custom only
	To    date.Date  // Custom only
}

// Match reports whether the bet's date falls inside the filter's window.
// Dates are compared as plain calendar days, never shifted by a timezone.
func (f Filter) Match(b Bet) bool {
	switch f.View {
	case Annual:
		return b.Date.Year() == f.Year
	case Monthly:
		return b.Date.Year() == f.Year && b.Date.Month() == f.Month
	case Custom:
		return date.Range{From: f.From, To: f.To}.Contains(b.Date)
	default: // All
		return true
	}
}

// FilterBets selects the bets relevant to the filter's window and returns
// them sorted by date descending (most recent first), independent of input
// order. Bets on the same day keep their recorded relative order.
func FilterBets(l *Ledger, f Filter) []Bet {
	var out []Bet
	for b := range l.Bets(f.Match) {
		out = append(out, b)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out
}
