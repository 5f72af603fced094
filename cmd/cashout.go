package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"betpro"

	"github.com/google/subcommands"
)

type cashoutCmd struct {
	id     string
	profit string
}

func (*cashoutCmd) Name() string     { return "cashout" }
func (*cashoutCmd) Synopsis() string { return "manually override a bet's profit" }
func (*cashoutCmd) Usage() string {
	return `bp cashout -id <id> -p <profit>

  Overrides the bet's profit with the cashed-out amount, without changing its
  status and without re-deriving from stake and odds. This is the only way to
  author the profit field directly; any later status change recomputes it.
`
}

func (c *cashoutCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Id of the bet to cash out")
	f.StringVar(&c.profit, "p", "", "Cashed-out profit (negative for a partial loss)")
}

func (c *cashoutCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		fmt.Fprintln(os.Stderr, "Error: -id is required")
		return subcommands.ExitUsageError
	}
	profit, err := betpro.ParseAmount(c.profit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid profit: %v\n", err)
		return subcommands.ExitUsageError
	}
	s, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer s.Close()

	ledger := loadLedger(s)
	if !ledger.Cashout(c.id, profit) {
		fmt.Printf("No bet with id %s, nothing to do.\n", c.id)
		return subcommands.ExitSuccess
	}
	if err := saveLedger(s, ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Bet %s profit overridden to %s\n", c.id, profit)
	return subcommands.ExitSuccess
}
