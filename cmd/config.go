package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"betpro/i18n"
	"betpro/store"

	"github.com/google/subcommands"
)

type configCmd struct {
	lang     string
	currency string
	theme    string
}

func (*configCmd) Name() string     { return "config" }
func (*configCmd) Synopsis() string { return "show or change the display settings" }
func (*configCmd) Usage() string {
	return `bp config [-lang <code>] [-currency <code>] [-theme <light|dark>]

  Without flags, prints the current settings. Each flag persists the given
  value: language (en, pt, es, fr, it, de, ar), currency (USD, BRL, EUR) and
  theme.
`
}

func (c *configCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.lang, "lang", "", "Display language")
	f.StringVar(&c.currency, "currency", "", "Display currency")
	f.StringVar(&c.theme, "theme", "", "Terminal theme")
}

func (c *configCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer s.Close()

	if c.lang != "" {
		lang, err := i18n.Parse(c.lang)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		if err := s.Put(store.KeyLang, []byte(lang)); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
	}
	if c.currency != "" {
		cur := strings.ToUpper(c.currency)
		if !validCurrency(cur) {
			fmt.Fprintf(os.Stderr, "Error: unsupported currency %q, want one of %s\n", c.currency, strings.Join(currencies, ", "))
			return subcommands.ExitUsageError
		}
		if err := s.Put(store.KeyCurrency, []byte(cur)); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
	}
	if c.theme != "" {
		if c.theme != "light" && c.theme != "dark" {
			fmt.Fprintf(os.Stderr, "Error: unsupported theme %q, want light or dark\n", c.theme)
			return subcommands.ExitUsageError
		}
		if err := s.Put(store.KeyTheme, []byte(c.theme)); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	cfg := loadSettings(s)
	fmt.Printf("language: %s\ncurrency: %s\ntheme: %s\n", cfg.Lang, cfg.Currency, cfg.Theme)
	return subcommands.ExitSuccess
}
