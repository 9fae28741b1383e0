package renderer

import (
	"fmt"
	"strings"

	"github.com/tmllr/fundfolio"
)

// TransactionsMarkdown renders the ledger as a chronological log.
func TransactionsMarkdown(l *fundfolio.Ledger, cur string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Transactions\n\n")
	if l.Len() == 0 {
		fmt.Fprintln(&b, "The ledger is empty.")
		return b.String()
	}

	fmt.Fprintln(&b, "| Date | Kind | Instrument | Units | Price | Cost |")
	fmt.Fprintln(&b, "|:---|:---|:---|---:|---:|---:|")
	for tx := range l.Transactions() {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s |\n",
			tx.Date,
			tx.Kind,
			tx.Instrument,
			tx.Units.String(),
			fundfolio.M(tx.Price, cur).String(),
			fundfolio.M(tx.Cost(), cur).String(),
		)
	}

	return b.String()
}
