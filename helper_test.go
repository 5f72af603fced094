package betpro

import (
	"testing"
	"time"

	"betpro/date"

	"github.com/shopspring/decimal"
)

// dec parses a decimal literal, failing the test on bad input.
func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("NewFromString(%q) error = %v", s, err)
	}
	return d
}

// bet builds a bet for table tests, with the profit derived the same way the
// mutation paths derive it.
func bet(t *testing.T, id string, on date.Date, odds, stake string, status Status) Bet {
	t.Helper()
	b := Bet{
		ID:     id,
		Date:   on,
		Match:  "Event " + id,
		Type:   "Result",
		Odds:   dec(t, odds),
		Stake:  dec(t, stake),
		Status: status,
	}
	b.Profit = ComputeProfit(b.Stake, b.Odds, b.Status)
	return b
}

func day(y int, m time.Month, d int) date.Date { return date.New(y, m, d) }
