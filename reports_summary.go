package fundfolio

// Summary is the at-a-glance overview of the portfolio: valuation aggregates
// plus the depth of the current drawdown, all derived from a single
// consistent snapshot of ledger and prices.
type Summary struct {
	Date        Date
	Valuation   *ValuationReport
	Equity      []EquityPoint
	Drawdown    []DrawdownPoint
	MaxDrawdown Percent
}

// NewSummary computes the summary for the full ledger history.
func NewSummary(l *Ledger, prices PriceMap) *Summary {
	curve := EquityCurve(l, prices, Range{})
	dd := Drawdowns(curve)
	return &Summary{
		Date:        Today(),
		Valuation:   Valuate(l.Positions(Date{}), prices),
		Equity:      curve,
		Drawdown:    dd,
		MaxDrawdown: MaxDrawdown(dd),
	}
}
