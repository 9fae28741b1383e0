package renderer

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/tmllr/fundfolio"
)

// DailyGainsMarkdown renders the realized gains per sale date.
func DailyGainsMarkdown(series []fundfolio.DailyPnL, cur string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Realized Gains by Day\n\n")
	if len(series) == 0 {
		fmt.Fprintln(&b, "No sales in the selected period.")
		return b.String()
	}

	fmt.Fprintln(&b, "| Date | Realized |")
	fmt.Fprintln(&b, "|:---|---:|")
	total := decimal.Zero
	for _, p := range series {
		fmt.Fprintf(&b, "| %s | %s |\n", p.Date, fundfolio.M(p.Amount, cur).SignedString())
		total = total.Add(p.Amount)
	}
	fmt.Fprintf(&b, "| **Total** | **%s** |\n", fundfolio.M(total, cur).SignedString())

	return b.String()
}

// MonthlyGainsMarkdown renders the realized gains per calendar month.
func MonthlyGainsMarkdown(series []fundfolio.MonthlyPnL, cur string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Realized Gains by Month\n\n")
	if len(series) == 0 {
		fmt.Fprintln(&b, "No sales in the selected period.")
		return b.String()
	}

	fmt.Fprintln(&b, "| Month | Realized |")
	fmt.Fprintln(&b, "|:---|---:|")
	for _, p := range series {
		fmt.Fprintf(&b, "| %s | %s |\n", p.Month, fundfolio.M(p.Amount, cur).SignedString())
	}

	return b.String()
}
