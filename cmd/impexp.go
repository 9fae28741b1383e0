package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"
	"github.com/tmllr/fundfolio"
)

type importCmd struct{}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import transactions from a CSV file" }
func (*importCmd) Usage() string {
	return `ffo import [<file>]

  Reads comma- or semicolon-delimited CSV from the file (or stdin) and
  appends the parseable rows to the ledger. Rows that fail to parse are
  dropped; the command reports how many rows were accepted.
`
}

func (*importCmd) SetFlags(f *flag.FlagSet) {}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	in, closeIn, status := openInput(f)
	if status != subcommands.ExitSuccess {
		return status
	}
	defer closeIn()

	batch, accepted, err := fundfolio.ImportCSV(in)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	for tx := range batch.Transactions() {
		ledger.Append(tx)
	}
	if err := SaveLedger(ledger); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Imported %d transactions into %s\n", accepted, *ledgerFile)
	return subcommands.ExitSuccess
}

type exportCmd struct {
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the ledger as CSV" }
func (*exportCmd) Usage() string {
	return `ffo export [-o <file>]

  Writes the ledger as CSV with the header date,instrument,kind,units,price,
  sorted by date, to the file or stdout.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Output file, stdout by default")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	var out io.Writer = os.Stdout
	if c.output != "" {
		file, err := os.Create(c.output)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitFailure
		}
		defer file.Close()
		out = file
	}

	if err := fundfolio.ExportCSV(out, ledger); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// openInput resolves the command's single optional file argument to a reader,
// defaulting to stdin.
func openInput(f *flag.FlagSet) (io.Reader, func(), subcommands.ExitStatus) {
	if f.NArg() == 0 {
		return os.Stdin, func() {}, subcommands.ExitSuccess
	}
	if f.NArg() > 1 {
		fmt.Fprintln(os.Stderr, "Error: at most one input file expected")
		return nil, nil, subcommands.ExitUsageError
	}
	file, err := os.Open(f.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return nil, nil, subcommands.ExitFailure
	}
	return file, func() { file.Close() }, subcommands.ExitSuccess
}
