package renderer

import (
	"fmt"
	"strings"

	"github.com/tmllr/fundfolio"
)

// EquityMarkdown renders the equity curve with its aligned drawdown series.
// Both slices come from the same curve, so they share dates 1:1.
func EquityMarkdown(curve []fundfolio.EquityPoint, dd []fundfolio.DrawdownPoint, cur string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Equity Curve\n\n")
	if len(curve) == 0 {
		fmt.Fprintln(&b, "No valued dates: enter at least one current price.")
		return b.String()
	}

	fmt.Fprintln(&b, "Valued at current prices, not historical marks.")
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, "| Date | Value | Drawdown |")
	fmt.Fprintln(&b, "|:---|---:|---:|")
	for i, p := range curve {
		fmt.Fprintf(&b, "| %s | %s | %s |\n",
			p.Date,
			fundfolio.M(p.Value, cur).String(),
			dd[i].Decline.SignedString(),
		)
	}
	fmt.Fprintf(&b, "\nMax drawdown: %s\n", fundfolio.MaxDrawdown(dd).SignedString())

	return b.String()
}
