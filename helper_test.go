package fundfolio

import (
	"github.com/shopspring/decimal"
)

// dec is a test shorthand for decimal literals.
func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// day is a test shorthand for date literals.
func day(s string) Date { return MustParseDate(s) }
