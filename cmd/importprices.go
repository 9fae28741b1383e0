package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/tmllr/fundfolio"
)

type importPricesCmd struct {
	path string
}

func (*importPricesCmd) Name() string     { return "import-prices" }
func (*importPricesCmd) Synopsis() string { return "bulk-load current prices from a JSON document" }
func (*importPricesCmd) Usage() string {
	return `ffo import-prices [-path <jsonpath>] [<file>]

  Extracts current prices from an arbitrary JSON document, such as a broker
  export, and merges them into the prices file. The JSONPath expression must
  select an object mapping instrument codes to prices; it defaults to the
  whole document.

Usage Example:
$ ffo import-prices -path '$.quotes' positions.json
`
}

func (c *importPricesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.path, "path", "$", "JSONPath of the instrument-to-price object")
}

func (c *importPricesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	in, closeIn, status := openInput(f)
	if status != subcommands.ExitSuccess {
		return status
	}
	defer closeIn()

	incoming, err := fundfolio.ImportPrices(in, c.path)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	prices, err := DecodePrices()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	for _, code := range incoming.Instruments() {
		price, _ := incoming.Get(code)
		if err := prices.Set(code, price); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitFailure
		}
	}

	if err := SavePrices(prices); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Imported %d prices into %s\n", len(incoming), *pricesFile)
	return subcommands.ExitSuccess
}
