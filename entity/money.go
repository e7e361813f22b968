package entity

import (
	"github.com/shopspring/decimal"
)

// Money is a monetary amount with fixed 2-decimal precision. It always
// marshals as a "0.00" style JSON string and accepts either a quoted
// string or a bare number on input.
type Money struct {
	decimal.Decimal
}

func NewMoney(d decimal.Decimal) Money {
	return Money{d.Round(2)}
}

// MustMoney parses a decimal literal, panicking on malformed input.
// Intended for seeds and tests.
func MustMoney(s string) Money {
	return Money{decimal.RequireFromString(s)}
}

func (m Money) Add(o Money) Money {
	return Money{m.Decimal.Add(o.Decimal)}
}

func (m Money) MulInt(n int) Money {
	return Money{m.Decimal.Mul(decimal.NewFromInt(int64(n))).Round(2)}
}

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(`"` + m.StringFixed(2) + `"`), nil
}
