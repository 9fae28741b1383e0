package fundfolio

import (
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

// DailyPnL is the realized profit/loss attributed to a single calendar date.
type DailyPnL struct {
	Date   Date
	Amount decimal.Decimal
}

// MonthlyPnL is the realized profit/loss summed over one calendar month
// (YYYY-MM).
type MonthlyPnL struct {
	Month  string
	Amount decimal.Decimal
}

// maxDailyPoints caps the daily series for display; monthly series are
// truncated to the most recent months instead.
const maxDailyPoints = 60

// realizedByDate replays the whole ledger with the weighted-average-cost
// method and attributes each sale's realized amount to the sale's own date.
// The replay is never windowed: a sale's average cost depends on the full
// history before it.
func realizedByDate(l *Ledger) map[Date]decimal.Decimal {
	positions := make(map[string]*Position)
	out := make(map[Date]decimal.Decimal)
	for tx := range l.Transactions() {
		p, ok := positions[tx.Instrument]
		if !ok {
			p = &Position{Instrument: tx.Instrument}
			positions[tx.Instrument] = p
		}
		realized := p.apply(tx)
		if tx.Kind == Sell {
			out[tx.Date] = out[tx.Date].Add(realized)
		}
	}
	return out
}

// RealizedByDay returns the realized PnL per sale date, sorted
// chronologically, filtered to the window and downsampled above the display
// cap. A zero window keeps all dates.
func RealizedByDay(l *Ledger, window Range) []DailyPnL {
	byDate := realizedByDate(l)
	out := make([]DailyPnL, 0, len(byDate))
	for on, amount := range byDate {
		if !window.Contains(on) {
			continue
		}
		out = append(out, DailyPnL{Date: on, Amount: amount})
	}
	slices.SortFunc(out, func(a, b DailyPnL) int { return a.Date.Compare(b.Date) })
	return downsample(out, maxDailyPoints)
}

// RealizedByMonth aggregates realized PnL by calendar month (YYYY-MM),
// sorted chronologically. When months > 0, only the most recent that many
// months are returned.
func RealizedByMonth(l *Ledger, months int) []MonthlyPnL {
	byMonth := make(map[string]decimal.Decimal)
	for on, amount := range realizedByDate(l) {
		key := on.MonthKey()
		byMonth[key] = byMonth[key].Add(amount)
	}
	out := make([]MonthlyPnL, 0, len(byMonth))
	for month, amount := range byMonth {
		out = append(out, MonthlyPnL{Month: month, Amount: amount})
	}
	slices.SortFunc(out, func(a, b MonthlyPnL) int { return strings.Compare(a.Month, b.Month) })
	if months > 0 && len(out) > months {
		out = out[len(out)-months:]
	}
	return out
}
