package fundfolio

// This file implements the transaction log import/export format: a small
// delimited text format meant to survive spreadsheets, other trackers and
// hand editing.

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// csvHeader is the canonical export header.
var csvHeader = []string{"date", "instrument", "kind", "units", "price"}

// ExportCSV writes the ledger as comma-delimited text: a header line followed
// by one line per transaction, sorted ascending by date. Numeric fields use a
// fixed, non-locale decimal form.
func ExportCSV(w io.Writer, l *Ledger) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("cannot write csv header: %w", err)
	}
	for tx := range l.Transactions() {
		record := []string{
			tx.Date.String(),
			tx.Instrument,
			string(tx.Kind),
			tx.Units.String(),
			tx.Price.String(),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("cannot write transaction %s: %w", tx.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ImportCSV parses delimited text back into a validated ledger. It accepts
// either comma- or semicolon-delimited input (sniffed from the first line),
// skips an optional header line, and tolerates hand-entered data: dates are
// truncated to 10 characters, instruments normalized, any kind token
// containing a sale marker becomes SELL, and numerics go through the
// locale-tolerant parser.
//
// Lines that do not form a valid transaction are discarded whole; there is
// no partial-record recovery. It returns the resulting ledger and the number
// of accepted rows, but not which rows were rejected.
func ImportCSV(r io.Reader) (*Ledger, int, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, 0, fmt.Errorf("cannot read import data: %w", err)
	}

	text := string(data)
	firstLine, _, _ := strings.Cut(text, "\n")

	cr := csv.NewReader(strings.NewReader(text))
	cr.Comma = ','
	if strings.Contains(firstLine, ";") {
		cr.Comma = ';'
	}
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.TrimLeadingSpace = true

	var txs []Transaction
	first := true
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue // malformed line, discard whole
		}
		if first {
			first = false
			if looksLikeHeader(record) {
				continue
			}
		}
		tx, ok := parseCSVRecord(record)
		if !ok {
			continue
		}
		txs = append(txs, tx)
	}
	return NewLedger(txs...), len(txs), nil
}

// headerTokens are the field names an exported or foreign header line may
// contain.
var headerTokens = []string{"date", "instrument", "kind", "units", "price", "fund", "type"}

// looksLikeHeader heuristically detects a header line by the presence of any
// known field name.
func looksLikeHeader(record []string) bool {
	line := strings.ToLower(strings.Join(record, ","))
	for _, token := range headerTokens {
		if strings.Contains(line, token) {
			return true
		}
	}
	return false
}

// parseCSVRecord turns one record into a transaction, reporting whether the
// record was acceptable.
func parseCSVRecord(record []string) (Transaction, bool) {
	if len(record) < 5 {
		return Transaction{}, false
	}

	dateField := strings.TrimSpace(record[0])
	if len(dateField) > 10 {
		dateField = dateField[:10] // drop a time suffix if any
	}
	if dateField == "" {
		return Transaction{}, false
	}
	day, err := ParseDate(dateField)
	if err != nil {
		return Transaction{}, false
	}

	instrument := NormalizeInstrument(record[1])
	if instrument == "" {
		return Transaction{}, false
	}

	units, err := ParseAmount(FilterAmountInput(record[3]))
	if err != nil {
		return Transaction{}, false
	}
	price, err := ParseAmount(FilterAmountInput(record[4]))
	if err != nil {
		return Transaction{}, false
	}

	tx := NewTransaction(day, instrument, ParseKind(record[2]), units, price)
	if tx.Validate() != nil {
		return Transaction{}, false
	}
	return tx, true
}
