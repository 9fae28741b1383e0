package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/tmllr/fundfolio"
)

type priceCmd struct {
	instrument string
	remove     bool
}

func (*priceCmd) Name() string     { return "price" }
func (*priceCmd) Synopsis() string { return "set or remove the current price of an instrument" }
func (*priceCmd) Usage() string {
	return `ffo price -i <instrument> <value>
ffo price -i <instrument> -rm

  Records the current per-unit price used by all valuations, or removes it,
  which turns the instrument's valuation unknown again.
`
}

func (c *priceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.instrument, "i", "", "Instrument code")
	f.BoolVar(&c.remove, "rm", false, "Remove the instrument's price instead of setting it")
}

func (c *priceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	prices, err := DecodePrices()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	if c.remove {
		prices.Delete(c.instrument)
	} else {
		if f.NArg() != 1 {
			fmt.Fprintln(os.Stderr, "Error: expected exactly one price value")
			return subcommands.ExitUsageError
		}
		value, err := fundfolio.ParseAmount(fundfolio.FilterAmountInput(f.Arg(0)))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid price %q: %v\n", f.Arg(0), err)
			return subcommands.ExitUsageError
		}
		if err := prices.Set(c.instrument, value); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitUsageError
		}
	}

	if err := SavePrices(prices); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
