package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"betpro"
	"betpro/date"

	"github.com/google/subcommands"
)

type editCmd struct {
	id     string
	date   string
	typ    string
	stake  string
	status string
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "edit an existing bet" }
func (*editCmd) Usage() string {
	return `bp edit -id <id> [-d <date>] [-t <type>] [-s <stake>] [-status <status>] [<event>@<odds> ...]

  Edits an existing bet. Flags left empty keep their current value; giving
  games replaces all of them. The profit is re-derived from the edited stake,
  odds and status, discarding any earlier cashout.
`
}

func (c *editCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Id of the bet to edit")
	f.StringVar(&c.date, "d", "", "New date")
	f.StringVar(&c.typ, "t", "", "New bet type")
	f.StringVar(&c.stake, "s", "", "New stake")
	f.StringVar(&c.status, "status", "", "New status (pending, win, loss, void)")
}

func (c *editCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		fmt.Fprintln(os.Stderr, "Error: -id is required")
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
	bet, ok := ledger.Get(c.id)
	if !ok {
		// Unknown ids are a no-op, not a failure.
		fmt.Printf("No bet with id %s, nothing to do.\n", c.id)
		return subcommands.ExitSuccess
	}

	if err := c.apply(&bet, f.Args(), cfg.Lang.For().Multiple); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	ledger.Update(bet)
	if err := saveLedger(s, ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Updated bet %s\n", bet.ID)
	return subcommands.ExitSuccess
}

// apply overlays the given flags on the stored bet, validating each one.
func (c *editCmd) apply(bet *betpro.Bet, args []string, multiWord string) error {
	if c.date != "" {
		on, err := date.Parse(c.date)
		if err != nil {
			return err
		}
		bet.Date = on
	}
	if c.typ != "" {
		bet.Type = c.typ
	}
	if c.stake != "" {
		stake, err := betpro.ParseAmount(c.stake)
		if err != nil {
			return fmt.Errorf("invalid stake: %w", err)
		}
		if !stake.IsPositive() {
			return fmt.Errorf("stake must be positive, got %s", stake)
		}
		bet.Stake = stake
	}
	if c.status != "" {
		status, err := betpro.ParseStatus(c.status)
		if err != nil {
			return err
		}
		bet.Status = status
	}
	if len(args) > 0 {
		legs, err := parseLegs(args)
		if err != nil {
			return err
		}
		for i, leg := range legs {
			if !leg.Odd.IsPositive() {
				return fmt.Errorf("game %d: odd must be positive, got %s", i+1, leg.Odd)
			}
		}
		bet.Odds = betpro.CombinedOdds(legs)
		if len(legs) == 1 {
			bet.Match = legs[0].Event
			bet.SubGames = nil
		} else {
			bet.Match = betpro.MultiLabel(multiWord, len(legs))
			bet.SubGames = legs
		}
	}
	return nil
}
