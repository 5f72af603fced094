// Package renderer turns the core's report values into markdown for the
// terminal. It is a pure presentation layer: it never mutates the ledger and
// formats amounts in the display currency chosen in the settings.
package renderer

import (
	"fmt"

	"betpro"
	"betpro/i18n"

	"github.com/shopspring/decimal"
)

// money formats a bare decimal in the display currency.
func money(v decimal.Decimal, currency string) string {
	return betpro.M(v, currency).String()
}

// signedMoney is like money but with an explicit sign, zero shown as "-".
func signedMoney(v decimal.Decimal, currency string) string {
	return betpro.M(v, currency).SignedString()
}

// displayDate formats a date the way the display language expects:
// day-first for Portuguese, month-first otherwise.
func displayDate(d string, lang i18n.Lang) string {
	var y, m, day string
	if _, err := fmt.Sscanf(d, "%4s-%2s-%2s", &y, &m, &day); err != nil {
		return d
	}
	if lang == i18n.PT {
		return fmt.Sprintf("%s/%s/%s", day, m, y)
	}
	return fmt.Sprintf("%s/%s/%s", m, day, y)
}
