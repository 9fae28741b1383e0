// Package renderer turns engine reports into markdown documents. It never
// computes financial quantities itself: unknown valuation fields arrive as
// unknown and are rendered as "-", a distinct state from zero.
package renderer

import (
	"fmt"
	"strings"

	"github.com/tmllr/fundfolio"
)

// amount renders an optional amount in the display currency, "-" when unknown.
func amount(a fundfolio.Amount, cur string) string {
	v, ok := a.Value()
	if !ok {
		return "-"
	}
	return fundfolio.M(v, cur).String()
}

// signedAmount is like amount with an explicit sign for non-zero values.
func signedAmount(a fundfolio.Amount, cur string) string {
	v, ok := a.Value()
	if !ok {
		return "-"
	}
	return fundfolio.M(v, cur).SignedString()
}

// HoldingMarkdown renders the per-instrument valuation table with portfolio
// totals. cur is the display currency code.
func HoldingMarkdown(r *fundfolio.ValuationReport, cur string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Holdings\n\n")
	fmt.Fprintln(&b, "| Instrument | Units | Avg Cost | Cost Basis | Value | Unrealized | Realized | Total | Return |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|---:|---:|---:|---:|---:|")

	for _, row := range r.Rows {
		ret := "-"
		if pct, ok := row.ReturnPct(); ok {
			ret = pct.SignedString()
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s | %s | %s |\n",
			row.Instrument,
			row.Units.String(),
			fundfolio.M(row.AvgCost, cur).String(),
			fundfolio.M(row.CostBasis, cur).String(),
			amount(row.CurrentValue, cur),
			signedAmount(row.UnrealizedPnL, cur),
			fundfolio.M(row.RealizedPnL, cur).SignedString(),
			signedAmount(row.TotalPnL, cur),
			ret,
		)
	}

	ret := "-"
	if pct, ok := r.ReturnPct(); ok {
		ret = pct.SignedString()
	}
	fmt.Fprintf(&b, "| **Total** | | | **%s** | **%s** | | **%s** | **%s** | **%s** |\n",
		fundfolio.M(r.TotalCost, cur).String(),
		fundfolio.M(r.TotalValue, cur).String(),
		fundfolio.M(r.TotalRealized, cur).SignedString(),
		signedAmount(r.TotalPnL, cur),
		ret,
	)

	return b.String()
}
