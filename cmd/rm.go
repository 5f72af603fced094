package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type rmCmd struct{}

func (*rmCmd) Name() string     { return "rm" }
func (*rmCmd) Synopsis() string { return "delete bets" }
func (*rmCmd) Usage() string {
	return `bp rm <id> [<id> ...]

  Deletes bets from the ledger. Unknown ids are skipped.
`
}

func (*rmCmd) SetFlags(*flag.FlagSet) {}

func (c *rmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: at least one bet id is required")
		return subcommands.ExitUsageError
	}
	s, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer s.Close()

	ledger := loadLedger(s)
	for _, id := range f.Args() {
		if ledger.Delete(id) {
			fmt.Printf("Deleted bet %s\n", id)
		} else {
			fmt.Printf("No bet with id %s, nothing to do.\n", id)
		}
	}
	if err := saveLedger(s, ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
