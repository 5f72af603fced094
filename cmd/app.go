// Package cmd implements the CLI application to manage a personal
// sports-betting ledger.
package cmd

import (
	"flag"
	"fmt"
	"strings"

	"betpro"
	"betpro/i18n"
	"betpro/store"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package calls Register() and then Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&addCmd{}, "bets")
	c.Register(&editCmd{}, "bets")
	c.Register(newStatusCmd(betpro.Win, "mark a bet as won"), "bets")
	c.Register(newStatusCmd(betpro.Loss, "mark a bet as lost"), "bets")
	c.Register(newStatusCmd(betpro.Void, "void a bet"), "bets")
	c.Register(newStatusCmd(betpro.Pending, "reset a bet to pending"), "bets")
	c.Register(&cashoutCmd{}, "bets")
	c.Register(&rmCmd{}, "bets")

	c.Register(&listCmd{}, "reports")
	c.Register(&reportCmd{}, "reports")
	c.Register(&insightsCmd{}, "reports")

	c.Register(&importCmd{}, "data")
	c.Register(&exportCmd{}, "data")

	c.Register(&configCmd{}, "settings")
	c.Register(&registerCmd{}, "settings")
	c.Register(&loginCmd{}, "settings")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var storePath = flag.String("store", ".betpro", "Path to the local store (a directory, or a .db file for SQLite)")

// openStore opens the configured key-value store.
func openStore() (store.Store, error) { return store.Open(*storePath) }

// loadLedger reads the bet collection from the store. A missing or corrupt
// value yields an empty ledger, never an error.
func loadLedger(s store.Store) *betpro.Ledger {
	data, err := s.Get(store.KeyBets)
	if err != nil {
		return betpro.NewLedger()
	}
	return betpro.DecodeBets(data)
}

// saveLedger persists the whole collection after a mutation.
func saveLedger(s store.Store, l *betpro.Ledger) error {
	data, err := betpro.EncodeBets(l)
	if err != nil {
		return fmt.Errorf("cannot encode bets: %w", err)
	}
	return s.Put(store.KeyBets, data)
}

// settings are the persisted display preferences.
type settings struct {
	Lang     i18n.Lang
	Currency string
	Theme    string
}

var currencies = []string{"USD", "BRL", "EUR"}

func loadSettings(s store.Store) settings {
	cfg := settings{Lang: i18n.Default, Currency: "BRL", Theme: "light"}
	if data, err := s.Get(store.KeyLang); err == nil {
		if lang, err := i18n.Parse(string(data)); err == nil {
			cfg.Lang = lang
		}
	}
	if data, err := s.Get(store.KeyCurrency); err == nil {
		if cur := strings.ToUpper(string(data)); validCurrency(cur) {
			cfg.Currency = cur
		}
	}
	if data, err := s.Get(store.KeyTheme); err == nil {
		if theme := string(data); theme == "light" || theme == "dark" {
			cfg.Theme = theme
		}
	}
	return cfg
}

func validCurrency(cur string) bool {
	for _, c := range currencies {
		if c == cur {
			return true
		}
	}
	return false
}

// printMarkdown renders markdown for the terminal, falling back to the raw
// source when the renderer is unavailable.
func printMarkdown(src string, theme string) {
	style := glamour.WithAutoStyle()
	if theme == "light" {
		style = glamour.WithStandardStyle("light")
	}
	r, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(100))
	if err != nil {
		fmt.Print(src)
		return
	}
	out, err := r.Render(src)
	if err != nil {
		fmt.Print(src)
		return
	}
	fmt.Print(out)
}
