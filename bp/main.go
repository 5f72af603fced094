package main

import (
	"context"
	"flag"
	"os"
	"path"

	"betpro/cmd"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// completion describes the command tree for shell completion. Install with
// `COMP_INSTALL=1 bp`.
var completion = &complete.Command{
	Flags: map[string]complete.Predictor{
		"store": predict.Dirs("*"),
	},
	Sub: map[string]*complete.Command{
		"add":      {Flags: map[string]complete.Predictor{"d": predict.Nothing, "t": predict.Nothing, "s": predict.Nothing, "status": predict.Set{"pending", "win", "loss", "void"}}},
		"edit":     {Flags: map[string]complete.Predictor{"id": predict.Nothing, "d": predict.Nothing, "t": predict.Nothing, "s": predict.Nothing, "status": predict.Set{"pending", "win", "loss", "void"}}},
		"win":      {},
		"loss":     {},
		"void":     {},
		"pending":  {},
		"cashout":  {Flags: map[string]complete.Predictor{"id": predict.Nothing, "p": predict.Nothing}},
		"rm":       {},
		"list":     {Flags: filterPredictors()},
		"report":   {Flags: filterPredictors()},
		"insights": {Flags: filterPredictors()},
		"import":   {Flags: map[string]complete.Predictor{"f": predict.Files("*.csv")}},
		"export":   {Flags: map[string]complete.Predictor{"f": predict.Files("*.csv")}},
		"config": {Flags: map[string]complete.Predictor{
			"lang":     predict.Set{"en", "pt", "es", "fr", "it", "de", "ar"},
			"currency": predict.Set{"USD", "BRL", "EUR"},
			"theme":    predict.Set{"light", "dark"},
		}},
		"register": {},
		"login":    {},
	},
}

func filterPredictors() map[string]complete.Predictor {
	return map[string]complete.Predictor{
		"view":  predict.Set{"annual", "monthly", "custom", "all"},
		"year":  predict.Nothing,
		"month": predict.Nothing,
		"from":  predict.Nothing,
		"to":    predict.Nothing,
	}
}

func main() {
	completion.Complete("bp")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
