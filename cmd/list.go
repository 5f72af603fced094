package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"betpro"
	"betpro/renderer"

	"github.com/google/subcommands"
)

type listCmd struct {
	filter filterFlags
	ids    bool
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "display the bet history for a period" }
func (*listCmd) Usage() string {
	return `bp list [-view <view>] [-year <year>] [-month <month>] [-from <date>] [-to <date>] [-ids]

  Displays the bets of the selected period, most recent first.
`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {
	c.filter.SetFlags(f)
	f.BoolVar(&c.ids, "ids", false, "Also print the raw bet ids, for use with edit/win/loss/rm")
}

func (c *listCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	filter, err := c.filter.Filter()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	s, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer s.Close()
	cfg := loadSettings(s)

	bets := betpro.FilterBets(loadLedger(s), filter)
	printMarkdown(renderer.HistoryMarkdown(bets, cfg.Currency, cfg.Lang), cfg.Theme)

	if c.ids {
		for _, b := range bets {
			fmt.Printf("%s  %s  %s\n", b.ID, b.Date, b.Match)
		}
	}
	return subcommands.ExitSuccess
}
