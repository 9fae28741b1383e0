// Command ffo tracks a fund portfolio from a plain-text ledger: record
// transactions and prices, derive holdings, gains, equity and drawdowns.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
	"github.com/tmllr/fundfolio/cmd"
)

func main() {
	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion handles shell completion requests and returns immediately when
// the process is a regular invocation.
func completion() {
	periods := predict.Set{"30d", "90d", "365d", "all"}
	currencies := predict.Set{"EUR", "USD", "GBP", "CHF"}

	report := func() *complete.Command {
		return &complete.Command{Flags: map[string]complete.Predictor{
			"period": periods,
			"c":      currencies,
		}}
	}

	ffo := &complete.Command{
		Sub: map[string]*complete.Command{
			"buy":     {},
			"sell":    {},
			"price":   {},
			"fmt":     {},
			"log":     {},
			"holding": {Flags: map[string]complete.Predictor{"c": currencies}},
			"gains":   report(),
			"equity":  report(),
			"summary": {Flags: map[string]complete.Predictor{"c": currencies}},
			"import":  {Args: predict.Files("*.csv")},
			"export":  {Flags: map[string]complete.Predictor{"o": predict.Files("*.csv")}},
			"import-prices": {Args: predict.Files("*.json")},
			"topic": {Args: predict.Set{"readme", "ledger", "pricing", "reports", "csv", "*"}},
		},
		Flags: map[string]complete.Predictor{
			"ledger-file": predict.Files("*.jsonl"),
			"prices-file": predict.Files("*.json"),
		},
	}
	ffo.Complete("ffo")
}
