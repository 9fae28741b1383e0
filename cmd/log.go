package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/tmllr/fundfolio/renderer"
)

type logCmd struct {
	currency string
}

func (*logCmd) Name() string     { return "log" }
func (*logCmd) Synopsis() string { return "display the chronological transaction log" }
func (*logCmd) Usage() string {
	return `ffo log [-c <currency>]

  Prints every transaction in the ledger in chronological order.
`
}

func (c *logCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.currency, "c", "EUR", "Display currency for monetary values")
}

func (c *logCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.TransactionsMarkdown(ledger, c.currency))
	return subcommands.ExitSuccess
}
