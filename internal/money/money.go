// Package money handles the decimal-string amounts used on the wire.
//
// Amounts are stored and transmitted as non-negative decimal strings with
// exactly two fractional digits ("187.50"); the sign of a movement is
// carried by the transaction type, never by the number. All arithmetic is
// done on shopspring decimals so aggregate results are exact.
package money

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrInvalidAmount reports an amount string that is not a non-negative
// decimal with two fractional digits.
var ErrInvalidAmount = errors.New("invalid amount")

// Parse validates and parses an amount string.
//
// Examples:
//
//	Parse("187.50") -> 187.50, nil
//	Parse("0.00")   -> 0, nil
//	Parse("-1.00")  -> ErrInvalidAmount
//	Parse("12.5")   -> ErrInvalidAmount
func Parse(s string) (decimal.Decimal, error) {
	if !Valid(s) {
		return decimal.Zero, ErrInvalidAmount
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}
	return d, nil
}

// Valid reports whether s is a well-formed amount string: digits, a dot,
// and exactly two fractional digits, with no sign.
func Valid(s string) bool {
	intPart, fracPart, ok := strings.Cut(s, ".")
	if !ok || len(intPart) == 0 || len(fracPart) != 2 {
		return false
	}
	return digits(intPart) && digits(fracPart)
}

// MustParse parses a known-valid amount. Stored amounts have already been
// validated at the boundary, so a failure here is a programming error and
// the value is treated as zero.
func MustParse(s string) decimal.Decimal {
	d, err := Parse(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// Sum adds the given amount strings exactly.
func Sum(amounts []string) decimal.Decimal {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(MustParse(a))
	}
	return total
}

func digits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
