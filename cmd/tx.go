package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
	"github.com/tmllr/fundfolio"
)

// txFlags are the flags shared by the buy and sell subcommands.
type txFlags struct {
	date       string
	instrument string
	units      string
	price      string
}

func (c *txFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "0d", "Transaction date (YYYY-MM-DD or a relative offset like -30d)")
	f.StringVar(&c.instrument, "i", "", "Instrument code")
	f.StringVar(&c.units, "u", "", "Number of units, comma or dot decimals accepted")
	f.StringVar(&c.price, "p", "", "Per-unit price, comma or dot decimals accepted")
}

// parse resolves the flags into validated transaction fields.
func (c *txFlags) parse() (on fundfolio.Date, units, price decimal.Decimal, err error) {
	on, err = fundfolio.ParseDate(c.date)
	if err != nil {
		return
	}
	units, err = fundfolio.ParseAmount(fundfolio.FilterAmountInput(c.units))
	if err != nil {
		err = fmt.Errorf("invalid units %q: %w", c.units, err)
		return
	}
	price, err = fundfolio.ParseAmount(fundfolio.FilterAmountInput(c.price))
	if err != nil {
		err = fmt.Errorf("invalid price %q: %w", c.price, err)
	}
	return
}

func (c *txFlags) record(kind fundfolio.Kind) subcommands.ExitStatus {
	on, units, price, err := c.parse()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	tx := fundfolio.NewTransaction(on, c.instrument, kind, units, price)
	if err := tx.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	if kind == fundfolio.Sell {
		// the engine caps an oversell silently; warn here where a human can act
		ledger, err := DecodeLedger()
		if err == nil {
			held := ledger.Position(tx.Instrument, tx.Date).Units
			if held.LessThan(tx.Units) {
				fmt.Fprintf(os.Stderr, "Warning: selling %s units of %s but only %s held on %s; the sale will be capped.\n",
					tx.Units, tx.Instrument, held, tx.Date)
			}
		}
	}

	return AppendTransaction(tx)
}

type buyCmd struct{ txFlags }

func (*buyCmd) Name() string     { return "buy" }
func (*buyCmd) Synopsis() string { return "record a purchase in the ledger" }
func (*buyCmd) Usage() string {
	return `ffo buy -i <instrument> -u <units> -p <price> [-d <date>]

  Appends a BUY transaction to the ledger.
`
}

func (c *buyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return c.record(fundfolio.Buy)
}

type sellCmd struct{ txFlags }

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "record a sale in the ledger" }
func (*sellCmd) Usage() string {
	return `ffo sell -i <instrument> -u <units> -p <price> [-d <date>]

  Appends a SELL transaction to the ledger. Selling more units than held is
  capped at the position size when reports are computed.
`
}

func (c *sellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return c.record(fundfolio.Sell)
}
