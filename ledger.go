package fundfolio

import (
	"iter"
	"slices"
	"sort"
)

// Ledger is the ordered list of all buy/sell transactions.
//
// Transactions are kept in chronological order; transactions sharing a date
// keep their insertion order (the sort is stable). The ledger is the single
// source of truth: every derived structure is recomputed from it on demand.
type Ledger struct {
	transactions []Transaction
}

// NewLedger creates an empty ledger.
func NewLedger(txs ...Transaction) *Ledger {
	l := &Ledger{transactions: slices.Clone(txs)}
	l.stableSort()
	return l
}

// Append adds transactions to the ledger and restores chronological order.
func (l *Ledger) Append(txs ...Transaction) {
	l.transactions = append(l.transactions, txs...)
	l.stableSort()
}

// Delete removes the transaction with the given ID. It reports whether a
// record was removed. Removing and re-adding is the only way to change a
// transaction.
func (l *Ledger) Delete(id string) bool {
	for i, tx := range l.transactions {
		if tx.ID == id {
			l.transactions = slices.Delete(l.transactions, i, i+1)
			return true
		}
	}
	return false
}

// Len returns the number of transactions.
func (l *Ledger) Len() int { return len(l.transactions) }

// stableSort sorts transactions ascending by date, preserving insertion
// order among equal dates.
func (l *Ledger) stableSort() {
	sort.SliceStable(l.transactions, func(i, j int) bool {
		return l.transactions[i].Date.Before(l.transactions[j].Date)
	})
}

// Transactions returns an iterator over the transactions in chronological
// order.
func (l *Ledger) Transactions() iter.Seq[Transaction] {
	return func(yield func(Transaction) bool) {
		for _, tx := range l.transactions {
			if !yield(tx) {
				return
			}
		}
	}
}

// TransactionsUpTo returns an iterator over transactions dated on or before
// cutoff. A zero cutoff means no cutoff.
func (l *Ledger) TransactionsUpTo(cutoff Date) iter.Seq[Transaction] {
	return func(yield func(Transaction) bool) {
		for _, tx := range l.transactions {
			if !cutoff.IsZero() && tx.Date.After(cutoff) {
				return // sorted, nothing later can match
			}
			if !yield(tx) {
				return
			}
		}
	}
}

// Instruments returns the sorted set of instrument codes present in the
// ledger.
func (l *Ledger) Instruments() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, tx := range l.transactions {
		if _, ok := seen[tx.Instrument]; !ok {
			seen[tx.Instrument] = struct{}{}
			out = append(out, tx.Instrument)
		}
	}
	slices.Sort(out)
	return out
}

// Dates returns the distinct transaction dates in chronological order.
func (l *Ledger) Dates() []Date {
	var out []Date
	previous := Date{}
	for _, tx := range l.transactions {
		if tx.Date == previous {
			continue // already collected for that day
		}
		previous = tx.Date
		out = append(out, tx.Date)
	}
	return out
}
