package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"betpro"
	"betpro/insights"

	money "github.com/Rhymond/go-money"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"google.golang.org/genai"
)

type insightsCmd struct {
	filter filterFlags
	model  string
}

func (*insightsCmd) Name() string     { return "insights" }
func (*insightsCmd) Synopsis() string { return "generate an AI analysis of the period's bets" }
func (*insightsCmd) Usage() string {
	return `bp insights [-view <view>] [-year <year>] [-month <month>] [-from <date>] [-to <date>] [-model <model>]

  Sends the filtered bets to Gemini and prints a short analysis with
  practical tips. Requires GEMINI_API_KEY in the environment or a .env file.
  A failed call prints a fixed fallback message; bet data is never affected.
`
}

func (c *insightsCmd) SetFlags(f *flag.FlagSet) {
	c.filter.SetFlags(f)
	f.StringVar(&c.model, "model", insights.DefaultModel, "Gemini model to use")
}

func (c *insightsCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	tr := cfg.Lang.For()

	bets := betpro.FilterBets(loadLedger(s), filter)
	if len(bets) == 0 {
		fmt.Println(tr.NoBets)
		return subcommands.ExitSuccess
	}

	// The API key may live in a .env file next to the store.
	_ = godotenv.Load()

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	symbol := money.GetCurrency(cfg.Currency).Grapheme
	prompt := insights.Prompt(tr.IAPrompt, symbol, bets)
	text, err := insights.Analyze(ctx, client, c.model, prompt)
	if err != nil {
		// The fallback message replaces the analysis; this is not a failure.
		text = tr.IAError
	}

	printMarkdown("# "+tr.IAAnalysisTitle+"\n\n"+text+"\n", cfg.Theme)
	return subcommands.ExitSuccess
}
