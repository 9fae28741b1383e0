package fundfolio

import "github.com/shopspring/decimal"

// DrawdownPoint is the percentage decline of portfolio value from its running
// peak at one equity curve date. Values are never positive.
type DrawdownPoint struct {
	Date    Date
	Decline Percent
}

// Drawdowns derives the drawdown series from an equity curve, aligned 1:1 by
// date. The first point always defines the initial peak, so it carries a
// drawdown of zero.
func Drawdowns(curve []EquityPoint) []DrawdownPoint {
	if len(curve) == 0 {
		return nil
	}
	out := make([]DrawdownPoint, 0, len(curve))
	peak := curve[0].Value
	for _, p := range curve {
		if p.Value.GreaterThan(peak) {
			peak = p.Value
		}
		var decline Percent
		if peak.IsPositive() {
			pct, _ := p.Value.Sub(peak).Div(peak).Mul(decimal.NewFromInt(100)).Float64()
			decline = Percent(pct)
		}
		out = append(out, DrawdownPoint{Date: p.Date, Decline: decline})
	}
	return out
}

// MaxDrawdown returns the deepest decline in the series, 0 when empty.
func MaxDrawdown(series []DrawdownPoint) Percent {
	var worst Percent
	for _, p := range series {
		if p.Decline < worst {
			worst = p.Decline
		}
	}
	return worst
}
