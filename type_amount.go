package fundfolio

import "github.com/shopspring/decimal"

// Amount is a monetary value that may be unknown. An instrument without a
// current price has unknown valuation fields, and that state must stay
// distinct from zero all the way to rendering. The zero Amount is unknown.
type Amount struct {
	value decimal.Decimal
	known bool
}

// KnownAmount wraps a decimal into a known Amount.
func KnownAmount(v decimal.Decimal) Amount { return Amount{value: v, known: true} }

// UnknownAmount returns the unknown Amount.
func UnknownAmount() Amount { return Amount{} }

// IsKnown reports whether the amount carries a value.
func (a Amount) IsKnown() bool { return a.known }

// Value returns the underlying decimal and whether it is known.
func (a Amount) Value() (decimal.Decimal, bool) { return a.value, a.known }

// Decimal returns the underlying decimal; zero when unknown. Callers that
// care about the distinction must check IsKnown first.
func (a Amount) Decimal() decimal.Decimal { return a.value }

// Add returns a+b; unknown if either operand is unknown.
func (a Amount) Add(b Amount) Amount {
	if !a.known || !b.known {
		return Amount{}
	}
	return KnownAmount(a.value.Add(b.value))
}

// Sub returns a-b; unknown if either operand is unknown.
func (a Amount) Sub(b Amount) Amount {
	if !a.known || !b.known {
		return Amount{}
	}
	return KnownAmount(a.value.Sub(b.value))
}

// AddDecimal returns a+v, preserving unknown-ness of a.
func (a Amount) AddDecimal(v decimal.Decimal) Amount {
	if !a.known {
		return Amount{}
	}
	return KnownAmount(a.value.Add(v))
}

// String renders the amount, or "-" when unknown.
func (a Amount) String() string {
	if !a.known {
		return "-"
	}
	return a.value.String()
}
