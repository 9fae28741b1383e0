package fundfolio

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

// ImportPrices extracts current prices from an arbitrary JSON document, such
// as a broker or bank export. The JSONPath expression must select an object
// mapping instrument codes to prices; "$" selects the whole document. Price
// values may be JSON numbers or locale-formatted strings ("1.049,50").
//
// This is still manual price entry, just in bulk: nothing is fetched and no
// history is kept.
func ImportPrices(r io.Reader, path string) (PriceMap, error) {
	if path == "" {
		path = "$"
	}

	var jobj any
	if err := json.NewDecoder(r).Decode(&jobj); err != nil {
		return nil, fmt.Errorf("cannot parse price document: %w", err)
	}

	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("cannot evaluate %q: %w", path, err)
	}
	// jsonpath is never clear about whether it returns a list of one answer
	// or a single answer; keep the first one if any
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}

	entries, ok := jval.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%q does not select an instrument-to-price object, got %T", path, jval)
	}

	prices := NewPriceMap()
	for code, raw := range entries {
		price, err := jsonNumber(raw)
		if err != nil {
			return nil, fmt.Errorf("price for %q: %w", code, err)
		}
		if err := prices.Set(code, price); err != nil {
			return nil, err
		}
	}
	return prices, nil
}

// jsonNumber reads a price value that this weird kind of API may return as a
// number or as a locale-formatted string.
func jsonNumber(v any) (decimal.Decimal, error) {
	switch n := v.(type) {
	case float64:
		return decimal.NewFromFloat(n), nil
	case string:
		return ParseAmount(n)
	default:
		return decimal.Decimal{}, fmt.Errorf("neither a number nor a string: %v", v)
	}
}
