package fundfolio

import (
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

// Position is the running state of a single instrument after replaying the
// ledger: open units, their total cost, the blended average cost per unit and
// the cumulative realized profit/loss. It is derived data, recomputed on
// every query.
type Position struct {
	Instrument  string
	Units       decimal.Decimal
	CostBasis   decimal.Decimal
	AvgCost     decimal.Decimal
	RealizedPnL decimal.Decimal
}

// apply folds one transaction into the position using the weighted-average
// cost method. Sells are clamped to the available position: an oversell
// realizes only what is held and silently drops the rest, so the engine stays
// robust to hand-entered data. It returns the amount realized by this
// transaction (zero for buys).
func (p *Position) apply(tx Transaction) decimal.Decimal {
	switch tx.Kind {
	case Buy:
		p.Units = p.Units.Add(tx.Units)
		p.CostBasis = p.CostBasis.Add(tx.Cost())
	case Sell:
		sellQty := decimal.Min(tx.Units, p.Units)
		if !sellQty.IsPositive() {
			return decimal.Zero
		}
		// average cost of all units held at this instant, re-derived from
		// the running totals rather than accumulated independently
		avgBefore := p.CostBasis.Div(p.Units)
		realized := sellQty.Mul(tx.Price.Sub(avgBefore))
		p.RealizedPnL = p.RealizedPnL.Add(realized)
		p.Units = p.Units.Sub(sellQty)
		p.CostBasis = p.CostBasis.Sub(sellQty.Mul(avgBefore))
		p.refreshAvgCost()
		return realized
	}
	p.refreshAvgCost()
	return decimal.Zero
}

func (p *Position) refreshAvgCost() {
	if p.Units.IsPositive() {
		p.AvgCost = p.CostBasis.Div(p.Units)
	} else {
		p.AvgCost = decimal.Zero
	}
}

// Positions replays the ledger in chronological order and returns the
// position of every instrument seen on or before cutoff. A zero cutoff
// replays the whole ledger. Instruments whose position went back to zero are
// still present, carrying their realized profit/loss.
func (l *Ledger) Positions(cutoff Date) map[string]*Position {
	positions := make(map[string]*Position)
	for tx := range l.TransactionsUpTo(cutoff) {
		p, ok := positions[tx.Instrument]
		if !ok {
			p = &Position{Instrument: tx.Instrument}
			positions[tx.Instrument] = p
		}
		p.apply(tx)
	}
	return positions
}

// Position replays the ledger for a single instrument. It returns a zero
// position when the instrument never traded.
func (l *Ledger) Position(instrument string, cutoff Date) Position {
	instrument = NormalizeInstrument(instrument)
	p := Position{Instrument: instrument}
	for tx := range l.TransactionsUpTo(cutoff) {
		if tx.Instrument == instrument {
			p.apply(tx)
		}
	}
	return p
}

// sortedPositions flattens a position map into instrument order, for stable
// reports.
func sortedPositions(m map[string]*Position) []*Position {
	out := make([]*Position, 0, len(m))
	for _, p := range m {
		out = append(out, p)
	}
	slices.SortFunc(out, func(a, b *Position) int {
		return strings.Compare(a.Instrument, b.Instrument)
	})
	return out
}
