package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/tmllr/fundfolio"
	"github.com/tmllr/fundfolio/renderer"
)

// holdingCmd holds the flags for the 'holding' subcommand.
type holdingCmd struct {
	date     string
	currency string
}

func (*holdingCmd) Name() string     { return "holding" }
func (*holdingCmd) Synopsis() string { return "display positions and their valuation" }
func (*holdingCmd) Usage() string {
	return `ffo holding [-d <date>] [-c <currency>]

  Displays each instrument's position on the given date, valued at the
  current prices. Instruments without a current price show "-".
`
}

func (c *holdingCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "0d", "Cutoff date for the positions, defaults to today")
	f.StringVar(&c.currency, "c", "EUR", "Display currency for monetary values")
}

func (c *holdingCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := fundfolio.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	prices, err := DecodePrices()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	report := fundfolio.Valuate(ledger.Positions(on), prices)
	printMarkdown(renderer.HoldingMarkdown(report, c.currency))

	return subcommands.ExitSuccess
}
