// Package cmd implements the ffo command-line application.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/google/subcommands"
	"github.com/tmllr/fundfolio"
)

// Register registers every ffo subcommand on the commander.
func Register(c *subcommands.Commander) {
	c.Register(&buyCmd{}, "ledger")
	c.Register(&sellCmd{}, "ledger")
	c.Register(&fmtCmd{}, "ledger")
	c.Register(&logCmd{}, "ledger")

	c.Register(&priceCmd{}, "prices")
	c.Register(&importPricesCmd{}, "prices")

	c.Register(&holdingCmd{}, "reports")
	c.Register(&gainsCmd{}, "reports")
	c.Register(&equityCmd{}, "reports")
	c.Register(&summaryCmd{}, "reports")

	c.Register(&importCmd{}, "exchange")
	c.Register(&exportCmd{}, "exchange")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application with a very short lifecycle, globals are fine here.

var ledgerFile = flag.String("ledger-file", "ledger.jsonl", "Path to the ledger file (JSONL format)")
var pricesFile = flag.String("prices-file", "prices.json", "Path to the current prices file (JSON format)")

// DecodeLedger loads the app ledger. A missing file is an empty ledger, so
// every command works out of the box in a fresh directory.
func DecodeLedger() (*fundfolio.Ledger, error) {
	f, err := os.Open(*ledgerFile)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("warning, ledger %q does not exist, starting empty", *ledgerFile)
		return fundfolio.NewLedger(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot open ledger %q: %w", *ledgerFile, err)
	}
	defer f.Close()
	return fundfolio.DecodeLedger(f)
}

// SaveLedger rewrites the app ledger file in canonical form.
func SaveLedger(l *fundfolio.Ledger) error {
	f, err := os.Create(*ledgerFile)
	if err != nil {
		return fmt.Errorf("cannot write ledger %q: %w", *ledgerFile, err)
	}
	defer f.Close()
	return fundfolio.EncodeLedger(f, l)
}

// AppendTransaction appends a single transaction to the app ledger file,
// creating it if needed. Appending keeps hand edits elsewhere in the file
// untouched; `ffo fmt` restores canonical order.
func AppendTransaction(tx fundfolio.Transaction) subcommands.ExitStatus {
	f, err := os.OpenFile(*ledgerFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening ledger %q: %v\n", *ledgerFile, err)
		return subcommands.ExitFailure
	}
	defer f.Close()

	if err := fundfolio.EncodeTransaction(f, tx); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing ledger %q: %v\n", *ledgerFile, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Recorded %s %s %s @ %s in %s\n", tx.Kind, tx.Units, tx.Instrument, tx.Price, *ledgerFile)
	return subcommands.ExitSuccess
}

// DecodePrices loads the app price map. A missing file means no price is
// known yet.
func DecodePrices() (fundfolio.PriceMap, error) {
	f, err := os.Open(*pricesFile)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("warning, prices %q do not exist, valuations will be unknown", *pricesFile)
		return fundfolio.NewPriceMap(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot open prices %q: %w", *pricesFile, err)
	}
	defer f.Close()
	return fundfolio.DecodePrices(f)
}

// SavePrices rewrites the app prices file.
func SavePrices(p fundfolio.PriceMap) error {
	f, err := os.Create(*pricesFile)
	if err != nil {
		return fmt.Errorf("cannot write prices %q: %w", *pricesFile, err)
	}
	defer f.Close()
	return fundfolio.EncodePrices(f, p)
}
