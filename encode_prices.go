package fundfolio

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

// EncodePrices writes the price map as a single JSON object mapping
// instrument code to current price.
func EncodePrices(w io.Writer, p PriceMap) error {
	// marshal through a plain map for stable decimal encoding
	obj := make(map[string]decimal.Decimal, len(p))
	for code, price := range p {
		obj[code] = price
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(obj); err != nil {
		return fmt.Errorf("cannot write prices: %w", err)
	}
	return nil
}

// DecodePrices reads a price map written by EncodePrices. Instrument codes
// are normalized and negative prices rejected.
func DecodePrices(r io.Reader) (PriceMap, error) {
	var obj map[string]decimal.Decimal
	if err := json.NewDecoder(r).Decode(&obj); err != nil {
		return nil, fmt.Errorf("cannot parse prices: %w", err)
	}
	prices := NewPriceMap()
	for code, price := range obj {
		if err := prices.Set(code, price); err != nil {
			return nil, fmt.Errorf("invalid price entry: %w", err)
		}
	}
	return prices, nil
}
