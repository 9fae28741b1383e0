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

// equityCmd holds the flags for the 'equity' subcommand.
type equityCmd struct {
	period   string
	currency string
}

func (*equityCmd) Name() string     { return "equity" }
func (*equityCmd) Synopsis() string { return "equity curve and drawdowns at current prices" }
func (*equityCmd) Usage() string {
	return `ffo equity [-period <period>] [-c <currency>]

  Reconstructs the portfolio value at every transaction date, valued at the
  current prices, together with the drawdown from the running peak.
`
}

func (c *equityCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.period, "period", "all", "Reporting period: 30d, 90d, 365d or all")
	f.StringVar(&c.currency, "c", "EUR", "Display currency for monetary values")
}

func (c *equityCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	window, err := fundfolio.ParsePeriod(c.period)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
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

	curve := fundfolio.EquityCurve(ledger, prices, window)
	dd := fundfolio.Drawdowns(curve)
	printMarkdown(renderer.EquityMarkdown(curve, dd, c.currency))

	return subcommands.ExitSuccess
}
