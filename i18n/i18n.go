// Package i18n holds the display languages, localized labels and month names
// used by the reports. It is a pure lookup service: the core calls it with a
// language and gets strings back, keeping all locale concerns out of the
// aggregation logic.
package i18n

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
)

// Lang is a supported display language code.
type Lang string

const (
	EN Lang = "en"
	PT Lang = "pt"
	ES Lang = "es"
	FR Lang = "fr"
	IT Lang = "it"
	DE Lang = "de"
	AR Lang = "ar"
)

// Default is the language used when nothing is stored.
const Default = PT

var supported = []Lang{EN, PT, ES, FR, IT, DE, AR}

var matcher = language.NewMatcher([]language.Tag{
	language.English,
	language.Portuguese,
	language.Spanish,
	language.French,
	language.Italian,
	language.German,
	language.Arabic,
})

// Parse matches a language code against the supported set, so "pt-BR" and
// "pt" both resolve to PT.
func Parse(code string) (Lang, error) {
	tag, err := language.Parse(code)
	if err != nil {
		return Default, fmt.Errorf("invalid language %q: %w", code, err)
	}
	_, i, conf := matcher.Match(tag)
	if conf == language.No {
		return Default, fmt.Errorf("unsupported language %q", code)
	}
	return supported[i], nil
}

// RTL reports whether the language is written right-to-left.
func (l Lang) RTL() bool { return l == AR }

// ShortMonth returns the localized short name of the month.
func (l Lang) ShortMonth(m time.Month) string { return l.ShortMonths()[m-1] }

// ShortMonths returns the localized short month names, January first.
func (l Lang) ShortMonths() [12]string {
	if months, ok := shortMonths[l]; ok {
		return months
	}
	return shortMonths[EN]
}

var shortMonths = map[Lang][12]string{
	EN: {"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
	PT: {"jan", "fev", "mar", "abr", "mai", "jun", "jul", "ago", "set", "out", "nov", "dez"},
	ES: {"ene", "feb", "mar", "abr", "may", "jun", "jul", "ago", "sep", "oct", "nov", "dic"},
	FR: {"janv", "févr", "mars", "avr", "mai", "juin", "juil", "août", "sept", "oct", "nov", "déc"},
	IT: {"gen", "feb", "mar", "apr", "mag", "giu", "lug", "ago", "set", "ott", "nov", "dic"},
	DE: {"Jan", "Feb", "Mär", "Apr", "Mai", "Jun", "Jul", "Aug", "Sep", "Okt", "Nov", "Dez"},
	AR: {"يناير", "فبراير", "مارس", "أبريل", "مايو", "يونيو", "يوليو", "أغسطس", "سبتمبر", "أكتوبر", "نوفمبر", "ديسمبر"},
}
