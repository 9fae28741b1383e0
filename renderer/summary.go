package renderer

import (
	"fmt"
	"strings"

	"github.com/tmllr/fundfolio"
)

// SummaryMarkdown renders the at-a-glance portfolio overview.
func SummaryMarkdown(s *fundfolio.Summary, cur string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Portfolio Summary on %s\n\n", s.Date)

	v := s.Valuation
	fmt.Fprintln(&b, "| | |")
	fmt.Fprintln(&b, "|:---|---:|")
	fmt.Fprintf(&b, "| Total Cost | %s |\n", fundfolio.M(v.TotalCost, cur).String())
	fmt.Fprintf(&b, "| Market Value | %s |\n", fundfolio.M(v.TotalValue, cur).String())
	fmt.Fprintf(&b, "| Realized | %s |\n", fundfolio.M(v.TotalRealized, cur).SignedString())
	fmt.Fprintf(&b, "| Total PnL | %s |\n", signedAmount(v.TotalPnL, cur))
	ret := "-"
	if pct, ok := v.ReturnPct(); ok {
		ret = pct.SignedString()
	}
	fmt.Fprintf(&b, "| Return | %s |\n", ret)
	fmt.Fprintf(&b, "| Max Drawdown | %s |\n", s.MaxDrawdown.SignedString())

	fmt.Fprintf(&b, "\nInstruments held: %d, equity points: %d.\n", len(v.Rows), len(s.Equity))

	return b.String()
}
