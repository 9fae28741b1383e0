package fundfolio

import (
	"fmt"
	"slices"

	"github.com/shopspring/decimal"
)

// PriceMap holds the current per-unit price of each instrument. Prices are
// point-in-time manual overrides: no history is retained, and an absent
// entry means "no current valuation available", which propagates as unknown
// rather than zero.
type PriceMap map[string]decimal.Decimal

// NewPriceMap creates an empty price map.
func NewPriceMap() PriceMap { return make(PriceMap) }

// Get returns the current price of an instrument and whether one is known.
func (p PriceMap) Get(instrument string) (decimal.Decimal, bool) {
	price, ok := p[NormalizeInstrument(instrument)]
	return price, ok
}

// Set records the current price of an instrument, normalizing the code.
// Negative prices are rejected.
func (p PriceMap) Set(instrument string, price decimal.Decimal) error {
	code := NormalizeInstrument(instrument)
	if code == "" {
		return fmt.Errorf("instrument is missing")
	}
	if price.IsNegative() {
		return fmt.Errorf("price for %s must not be negative, got %s", code, price)
	}
	p[code] = price
	return nil
}

// Delete removes an instrument's price, turning its valuation unknown again.
func (p PriceMap) Delete(instrument string) {
	delete(p, NormalizeInstrument(instrument))
}

// Instruments returns the sorted instrument codes with a known price.
func (p PriceMap) Instruments() []string {
	out := make([]string, 0, len(p))
	for code := range p {
		out = append(out, code)
	}
	slices.Sort(out)
	return out
}
