package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"betpro"

	"github.com/google/subcommands"
)

// statusCmd resolves (or resets) a bet: win, loss, void and pending are the
// same command parameterized by the target status.
type statusCmd struct {
	status   betpro.Status
	synopsis string
}

func newStatusCmd(status betpro.Status, synopsis string) *statusCmd {
	return &statusCmd{status: status, synopsis: synopsis}
}

func (c *statusCmd) Name() string     { return strings.ToLower(string(c.status)) }
func (c *statusCmd) Synopsis() string { return c.synopsis }
func (c *statusCmd) Usage() string {
	name := c.Name()
	return fmt.Sprintf(`bp %s <id> [<id> ...]

  %s. The profit is re-derived from the bet's stake and odds; resetting to
  pending brings it back to zero.
`, name, strings.ToUpper(c.synopsis[:1])+c.synopsis[1:])
}

func (c *statusCmd) SetFlags(*flag.FlagSet) {}

func (c *statusCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
		if ledger.SetStatus(id, c.status) {
			fmt.Printf("Bet %s is now %s\n", id, c.status)
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
