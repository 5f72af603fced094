package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"betpro"

	"github.com/google/subcommands"
)

type importCmd struct {
	file string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import bets from a CSV file" }
func (*importCmd) Usage() string {
	return `bp import -f <file.csv>

  Imports bets from a tabular file with the columns
  Date, Event, Type, Odds, Stake, Status, Profit. Each row becomes one bet
  with a fresh id, prepended to the existing collection. Malformed cells get
  defaults (Odds 1, Stake 0, Status pending, Profit 0); a file with zero
  valid rows fails.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "", "File to import")
}

func (c *importCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.file == "" {
		fmt.Fprintln(os.Stderr, "Error: -f is required")
		return subcommands.ExitUsageError
	}
	s, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer s.Close()
	tr := loadSettings(s).Lang.For()

	in, err := os.Open(c.file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer in.Close()

	bets, err := betpro.ImportBets(in)
	if err != nil {
		if errors.Is(err, betpro.ErrEmptyImport) {
			fmt.Fprintln(os.Stderr, tr.ImportError)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return subcommands.ExitFailure
	}

	ledger := loadLedger(s)
	ledger.Prepend(bets...)
	if err := saveLedger(s, ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("%s (%d)\n", tr.ImportSuccess, len(bets))
	return subcommands.ExitSuccess
}

type exportCmd struct {
	file string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export all bets to a CSV file" }
func (*exportCmd) Usage() string {
	return `bp export [-f <file.csv>]

  Exports the full bet collection in the import schema, one row per bet.
  Combination legs are not expanded. Writes to stdout without -f.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "", "File to write (stdout by default)")
}

func (c *exportCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer s.Close()

	out := os.Stdout
	if c.file != "" {
		f, err := os.Create(c.file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		defer f.Close()
		out = f
	}

	if err := betpro.ExportBets(out, loadLedger(s)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.file != "" {
		fmt.Printf("Exported to %s\n", c.file)
	}
	return subcommands.ExitSuccess
}
