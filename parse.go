package betpro

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount parses a user-entered decimal, accepting a comma as the decimal
// separator ("2,5" means 2.5). It is total: invalid text is rejected at the
// boundary instead of propagating into computations.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	if s == "" {
		return decimal.Zero, fmt.Errorf("empty amount")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return d, nil
}

// parseAmountOr parses like ParseAmount but substitutes a default for
// missing or malformed text. Import rows recover this way instead of failing.
func parseAmountOr(s string, def decimal.Decimal) decimal.Decimal {
	d, err := ParseAmount(s)
	if err != nil {
		return def
	}
	return d
}
