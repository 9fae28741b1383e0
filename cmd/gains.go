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

// gainsCmd holds the flags for the 'gains' subcommand.
type gainsCmd struct {
	period   string
	monthly  bool
	currency string
}

func (*gainsCmd) Name() string     { return "gains" }
func (*gainsCmd) Synopsis() string { return "realized gains per sale date or per month" }
func (*gainsCmd) Usage() string {
	return `ffo gains [-period <period>] [-monthly] [-c <currency>]

  Displays the realized gain or loss of every sale, attributed to the sale
  date. With -monthly, gains are grouped by calendar month instead.
`
}

func (c *gainsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.period, "period", "all", "Reporting period: 30d, 90d, 365d or all")
	f.BoolVar(&c.monthly, "monthly", false, "Group realized gains by calendar month")
	f.StringVar(&c.currency, "c", "EUR", "Display currency for monetary values")
}

func (c *gainsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	if c.monthly {
		months, err := fundfolio.PeriodMonths(c.period)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitUsageError
		}
		series := fundfolio.RealizedByMonth(ledger, months)
		printMarkdown(renderer.MonthlyGainsMarkdown(series, c.currency))
		return subcommands.ExitSuccess
	}

	window, err := fundfolio.ParsePeriod(c.period)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	series := fundfolio.RealizedByDay(ledger, window)
	printMarkdown(renderer.DailyGainsMarkdown(series, c.currency))

	return subcommands.ExitSuccess
}
