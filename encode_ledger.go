package fundfolio

// The ledger is persisted as JSONL: one transaction object per line, sorted
// by date. The format is human readable, diffs well and merges trivially.

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// EncodeTransaction marshals a single transaction and writes it as one JSONL
// line.
func EncodeTransaction(w io.Writer, tx Transaction) error {
	data, err := json.Marshal(tx)
	if err != nil {
		return fmt.Errorf("cannot marshal transaction %s: %w", tx.ID, err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("cannot write transaction %s: %w", tx.ID, err)
	}
	return nil
}

// EncodeLedger writes the whole ledger in canonical JSONL form, one
// transaction per line in chronological order.
func EncodeLedger(w io.Writer, l *Ledger) error {
	for tx := range l.Transactions() {
		if err := EncodeTransaction(w, tx); err != nil {
			return err
		}
	}
	return nil
}

// DecodeLedger reads a JSONL stream of transactions and returns a sorted
// ledger. Unlike CSV import, this is the trusted persistence format: a
// malformed line is an error, not a skip.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	var txs []Transaction
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var tx Transaction
		if err := json.Unmarshal(line, &tx); err != nil {
			return nil, fmt.Errorf("cannot parse ledger line %q: %w", string(line), err)
		}
		if tx.ID == "" {
			// hand-added lines may omit the id; assign one on load
			tx.ID = newID()
		}
		tx.Instrument = NormalizeInstrument(tx.Instrument)
		if err := tx.Validate(); err != nil {
			return nil, fmt.Errorf("invalid transaction in ledger: %w", err)
		}
		txs = append(txs, tx)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading ledger: %w", err)
	}
	return NewLedger(txs...), nil
}
