package money

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// interestScale is the number of fractional digits kept when scaling a
// balance by a percentage rate. Matches the precision used for interest
// postings elsewhere in the bank.
const interestScale = 10

// Money is an exact decimal amount. It wraps a decimal value so arithmetic
// never goes through binary floats.
type Money struct {
	dec decimal.Decimal
}

// Zero returns a zero amount.
func Zero() Money {
	return Money{}
}

// FromString parses a decimal string such as "2500.00".
func FromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("parse amount %q: %w", s, err)
	}
	return Money{dec: d}, nil
}

// MustFromString parses a decimal string and panics on failure. Intended for
// constants and tests.
func MustFromString(s string) Money {
	m, err := FromString(s)
	if err != nil {
		panic(err)
	}
	return m
}

// FromInt builds an amount from whole units.
func FromInt(n int64) Money {
	return Money{dec: decimal.NewFromInt(n)}
}

// Add returns m + other.
func (m Money) Add(other Money) Money {
	return Money{dec: m.dec.Add(other.dec)}
}

// Sub returns m - other.
func (m Money) Sub(other Money) Money {
	return Money{dec: m.dec.Sub(other.dec)}
}

// Cmp compares two amounts: -1 if m < other, 0 if equal, 1 if m > other.
func (m Money) Cmp(other Money) int {
	return m.dec.Cmp(other.dec)
}

// Equal reports whether the two amounts are numerically equal.
func (m Money) Equal(other Money) bool {
	return m.dec.Equal(other.dec)
}

// LessThan reports whether m < other.
func (m Money) LessThan(other Money) bool {
	return m.dec.LessThan(other.dec)
}

// IsPositive reports whether the amount is strictly greater than zero.
func (m Money) IsPositive() bool {
	return m.dec.IsPositive()
}

// IsNegative reports whether the amount is strictly less than zero.
func (m Money) IsNegative() bool {
	return m.dec.IsNegative()
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.dec.IsZero()
}

// Percent returns m * rate / 100 rounded half-up at ten fractional digits.
func (m Money) Percent(rate Money) Money {
	return Money{dec: m.dec.Mul(rate.dec).DivRound(decimal.NewFromInt(100), interestScale)}
}

// String renders the amount in plain decimal notation.
func (m Money) String() string {
	return m.dec.String()
}

// StringFixed renders the amount with exactly two fractional digits.
func (m Money) StringFixed() string {
	return m.dec.StringFixed(2)
}

// MarshalJSON encodes the amount as a JSON number string.
func (m Money) MarshalJSON() ([]byte, error) {
	return m.dec.MarshalJSON()
}

// UnmarshalJSON decodes a JSON number or string into the amount.
func (m *Money) UnmarshalJSON(data []byte) error {
	return m.dec.UnmarshalJSON(data)
}
