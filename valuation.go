package fundfolio

import (
	"github.com/shopspring/decimal"
)

// ValuationRow extends a position with its mark-to-market state. When the
// instrument has no current price, CurrentValue, UnrealizedPnL and TotalPnL
// are unknown Amounts: an unpriced position is not a worthless one.
type ValuationRow struct {
	Position
	CurrentValue  Amount
	UnrealizedPnL Amount
	TotalPnL      Amount
}

// ReturnPct returns the percentage return of the row (total PnL over cost
// basis). It is unknown when the total PnL is unknown or the cost basis is
// not positive.
func (r ValuationRow) ReturnPct() (Percent, bool) {
	pnl, ok := r.TotalPnL.Value()
	if !ok || !r.CostBasis.IsPositive() {
		return 0, false
	}
	pct, _ := pnl.Div(r.CostBasis).Mul(decimal.NewFromInt(100)).Float64()
	return Percent(pct), true
}

// ValuationReport is the per-instrument valuation plus portfolio aggregates.
type ValuationReport struct {
	Rows []ValuationRow

	// Aggregates. TotalCost and TotalRealized are always known; TotalValue
	// sums only priced instruments. TotalPnL is unknown unless at least one
	// instrument has a known price.
	TotalCost     decimal.Decimal
	TotalValue    decimal.Decimal
	TotalRealized decimal.Decimal
	TotalPnL      Amount
}

// ReturnPct returns the aggregate percentage return, unknown when no
// instrument is priced or nothing was ever bought.
func (v *ValuationReport) ReturnPct() (Percent, bool) {
	pnl, ok := v.TotalPnL.Value()
	if !ok || !v.TotalCost.IsPositive() {
		return 0, false
	}
	pct, _ := pnl.Div(v.TotalCost).Mul(decimal.NewFromInt(100)).Float64()
	return Percent(pct), true
}

// Valuate combines position snapshots with the current price map. Rows are
// ordered by instrument code. Every instrument that ever traded appears,
// priced or not.
func Valuate(positions map[string]*Position, prices PriceMap) *ValuationReport {
	report := &ValuationReport{
		TotalCost:     decimal.Zero,
		TotalValue:    decimal.Zero,
		TotalRealized: decimal.Zero,
	}

	anyPriced := false
	pnlSum := decimal.Zero

	for _, p := range sortedPositions(positions) {
		row := ValuationRow{Position: *p}

		if price, ok := prices.Get(p.Instrument); ok {
			value := p.Units.Mul(price)
			unrealized := value.Sub(p.CostBasis)
			total := unrealized.Add(p.RealizedPnL)
			row.CurrentValue = KnownAmount(value)
			row.UnrealizedPnL = KnownAmount(unrealized)
			row.TotalPnL = KnownAmount(total)

			anyPriced = true
			report.TotalValue = report.TotalValue.Add(value)
			pnlSum = pnlSum.Add(total)
		}

		report.TotalCost = report.TotalCost.Add(p.CostBasis)
		report.TotalRealized = report.TotalRealized.Add(p.RealizedPnL)
		report.Rows = append(report.Rows, row)
	}

	if anyPriced {
		report.TotalPnL = KnownAmount(pnlSum)
	}
	return report
}
