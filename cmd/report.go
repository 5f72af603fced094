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

type reportCmd struct {
	filter filterFlags
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "display the profit chart and summary for a period" }
func (*reportCmd) Usage() string {
	return `bp report [-view <view>] [-year <year>] [-month <month>] [-from <date>] [-to <date>]

  Displays the period's summary statistics (total profit, ROI, win rate,
  active bets), the consolidated all-time balance, and the time-bucketed
  profit series with the cumulative bankroll curve.

Usage Examples:
# This year, one bucket per month.
$ bp report

# March 2024, one bucket per day.
$ bp report -view monthly -year 2024 -month 3

# An arbitrary window.
$ bp report -view custom -from 2024-03-01 -to 2024-04-15
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) { c.filter.SetFlags(f) }

func (c *reportCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	ledger := loadLedger(s)
	bets := betpro.FilterBets(ledger, filter)
	summary := betpro.Summarize(bets)
	series := betpro.BuildSeries(bets, filter, cfg.Lang.ShortMonths())

	printMarkdown(renderer.SummaryMarkdown(summary, ledger.ConsolidatedProfit(), cfg.Currency, cfg.Lang), cfg.Theme)
	printMarkdown(renderer.SeriesMarkdown(series, cfg.Currency, cfg.Lang), cfg.Theme)
	return subcommands.ExitSuccess
}
