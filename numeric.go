package fundfolio

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

// ErrNotANumber is the sentinel returned by ParseAmount when the cleaned text
// does not form a valid number.
var ErrNotANumber = errors.New("not a number")

// ParseAmount converts free-form, locale-ambiguous decimal text into a
// decimal value. Whitespace is stripped, a comma is treated as the decimal
// separator, and any character that is not a digit, a dot or a leading minus
// sign is discarded before conversion. Errors wrap ErrNotANumber; the
// function never panics.
//
// This is the commit-time half of input handling; FilterAmountInput is the
// keystroke-time half.
func ParseAmount(s string) (decimal.Decimal, error) {
	cleaned := cleanAmount(s)
	switch cleaned {
	case "", "-", ".", "-.":
		return decimal.Decimal{}, fmt.Errorf("cannot parse %q: %w", s, ErrNotANumber)
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		// multiple separators or a stray minus survive cleaning
		return decimal.Decimal{}, fmt.Errorf("cannot parse %q: %w", s, ErrNotANumber)
	}
	return d, nil
}

// MustParseAmount is like ParseAmount but panics on error. For tests and
// literals.
func MustParseAmount(s string) decimal.Decimal {
	d, err := ParseAmount(s)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// cleanAmount reduces raw text to the character set decimal.NewFromString
// understands, without deciding validity.
func cleanAmount(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case unicode.IsSpace(r):
			// skip
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ',' || r == '.':
			b.WriteByte('.')
		case r == '-' && b.Len() == 0:
			b.WriteByte('-')
		}
	}
	return b.String()
}

// FilterAmountInput restricts interactively typed text to the characters an
// amount may contain (digits, comma, dot, minus) without validating it. It
// keeps a draft like "1," or "-" displayable while not yet parseable.
func FilterAmountInput(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= '0' && r <= '9':
			return r
		case r == ',' || r == '.' || r == '-':
			return r
		}
		return -1
	}, s)
}
