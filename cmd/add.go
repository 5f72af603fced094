package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"betpro"
	"betpro/date"

	"github.com/google/subcommands"
)

type addCmd struct {
	date   string
	typ    string
	stake  string
	status string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record a new bet" }
func (*addCmd) Usage() string {
	return `bp add -t <type> -s <stake> [-d <date>] [-status <status>] <event>@<odds> [<event>@<odds> ...]

  Records a new bet. Each argument is one game in the form "event@odds".
  Two or more games make a combination bet: the odds multiply and the label
  becomes "Multiple (N)" in the active language.

Usage Examples:
# A simple bet.
$ bp add -t "Premier League" -s 10 "Arsenal vs Chelsea@2.35"

# A combination of two legs, stake with a comma decimal.
$ bp add -t Multiple -s "12,50" "Lyon@1.8" "Porto@2.1"
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", date.Today().String(), "Date of the bet")
	f.StringVar(&c.typ, "t", "", "Bet type (free text)")
	f.StringVar(&c.stake, "s", "", "Amount wagered")
	f.StringVar(&c.status, "status", string(betpro.Pending), "Initial status (pending, win, loss, void)")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer s.Close()
	cfg := loadSettings(s)

	bet, err := c.newBet(f.Args(), cfg.Lang.For().Multiple)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	ledger := loadLedger(s)
	if err := ledger.Add(bet); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := saveLedger(s, ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Recorded bet %s: %s @%s\n", bet.ID, bet.Match, bet.Odds.StringFixed(2))
	return subcommands.ExitSuccess
}

func (c *addCmd) newBet(args []string, multiWord string) (betpro.Bet, error) {
	on, err := date.Parse(c.date)
	if err != nil {
		return betpro.Bet{}, err
	}
	stake, err := betpro.ParseAmount(c.stake)
	if err != nil {
		return betpro.Bet{}, fmt.Errorf("invalid stake: %w", err)
	}
	status, err := betpro.ParseStatus(c.status)
	if err != nil {
		return betpro.Bet{}, err
	}
	legs, err := parseLegs(args)
	if err != nil {
		return betpro.Bet{}, err
	}
	return betpro.NewBet(on, c.typ, stake, status, legs, multiWord)
}

// parseLegs converts "event@odds" arguments into sub-games. The odds come
// after the last '@' so event names may contain the character.
func parseLegs(args []string) ([]betpro.SubGame, error) {
	var legs []betpro.SubGame
	for _, arg := range args {
		i := strings.LastIndex(arg, "@")
		if i < 0 {
			return nil, fmt.Errorf("game %q: want the form event@odds", arg)
		}
		odd, err := betpro.ParseAmount(arg[i+1:])
		if err != nil {
			return nil, fmt.Errorf("game %q: invalid odds: %w", arg, err)
		}
		legs = append(legs, betpro.SubGame{Event: strings.TrimSpace(arg[:i]), Odd: odd})
	}
	return legs, nil
}
