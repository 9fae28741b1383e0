package fundfolio

import (
	"slices"

	"github.com/shopspring/decimal"
)

// EquityPoint is one sample of the reconstructed equity curve: the total
// mark-to-market value of all open positions after the given date's
// transactions.
type EquityPoint struct {
	Date  Date
	Value decimal.Decimal
}

// maxEquityPoints caps the curve length for display; longer series are
// uniformly subsampled.
const maxEquityPoints = 220

// EquityCurve replays the ledger chronologically and values the open
// positions at each distinct transaction date, using the *current* price map
// throughout. The curve therefore shows what today's prices say each date's
// position would have been worth, not a true historical mark (no price
// history is retained, see PriceMap).
//
// Dates where no held instrument has a known price are skipped entirely:
// emitting zero there would fake a worthless portfolio early in history,
// before any price has been entered. If the window filters out every
// transaction date, the full date set is used instead, so a mis-aimed filter
// never yields an empty curve for a non-empty ledger.
func EquityCurve(l *Ledger, prices PriceMap, window Range) []EquityPoint {
	all := l.Dates()
	dates := all
	if !window.IsZero() {
		filtered := make([]Date, 0, len(all))
		for _, d := range all {
			if window.Contains(d) {
				filtered = append(filtered, d)
			}
		}
		if len(filtered) > 0 {
			dates = filtered
		}
	}

	txs := slices.Collect(l.Transactions())
	holdings := make(map[string]decimal.Decimal)
	next := 0

	var curve []EquityPoint
	for _, on := range dates {
		// advance the replay pointer through every transaction dated on or
		// before this date, applying signed unit deltas
		for next < len(txs) && !txs[next].Date.After(on) {
			tx := txs[next]
			delta := tx.Units
			if tx.Kind == Sell {
				delta = delta.Neg()
			}
			holdings[tx.Instrument] = holdings[tx.Instrument].Add(delta)
			next++
		}

		total := decimal.Zero
		priced := false
		for instrument, units := range holdings {
			price, ok := prices.Get(instrument)
			if !ok {
				continue
			}
			priced = true
			total = total.Add(units.Mul(price))
		}
		if !priced {
			continue
		}
		curve = append(curve, EquityPoint{Date: on, Value: total})
	}

	return downsample(curve, maxEquityPoints)
}

// downsample uniformly subsamples a series above the display cap with a
// fixed stride, keeping the first point and re-anchoring the last one.
func downsample[T any](series []T, cap int) []T {
	n := len(series)
	if cap <= 0 || n <= cap {
		return series
	}
	stride := (n + cap - 1) / cap
	out := make([]T, 0, cap)
	for i := 0; i < n; i += stride {
		out = append(out, series[i])
	}
	if (n-1)%stride != 0 {
		out[len(out)-1] = series[n-1]
	}
	return out
}
