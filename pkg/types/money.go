package types

import (
	"github.com/shopspring/decimal"
)

// CurrencyPrecision is the number of decimals every ledger amount is rounded to.
const CurrencyPrecision int32 = 2

// Money is a decimal amount in the storefront currency.
type Money struct {
	d decimal.Decimal
}

var Zero = Money{}

func NewMoney(value string) (Money, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Zero, err
	}
	return Money{d: d}, nil
}

// MustMoney is NewMoney for constants, it panics on malformed input.
func MustMoney(value string) Money {
	m, err := NewMoney(value)
	if err != nil {
		panic(err)
	}
	return m
}

func MoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d: d}
}

func MoneyFromCents(cents int64) Money {
	return Money{d: decimal.New(cents, -CurrencyPrecision)}
}

func (m Money) Decimal() decimal.Decimal {
	return m.d
}

func (m Money) Add(other Money) Money {
	return Money{d: m.d.Add(other.d)}
}

func (m Money) Sub(other Money) Money {
	return Money{d: m.d.Sub(other.d)}
}

func (m Money) Mul(factor decimal.Decimal) Money {
	return Money{d: m.d.Mul(factor)}
}

func (m Money) MulInt(n int64) Money {
	return Money{d: m.d.Mul(decimal.NewFromInt(n))}
}

// Percent returns pct percent of m without rounding.
func (m Money) Percent(pct decimal.Decimal) Money {
	return Money{d: m.d.Mul(pct).Shift(-2)}
}

// Round rounds to currency precision, halves away from zero. Ledger amounts
// are never negative so this is half-up.
func (m Money) Round() Money {
	return Money{d: m.d.Round(CurrencyPrecision)}
}

func (m Money) Min(other Money) Money {
	if m.d.GreaterThan(other.d) {
		return other
	}
	return m
}

func (m Money) Cmp(other Money) int {
	return m.d.Cmp(other.d)
}

func (m Money) Equal(other Money) bool {
	return m.d.Equal(other.d)
}

func (m Money) GreaterThan(other Money) bool {
	return m.d.GreaterThan(other.d)
}

func (m Money) IsZero() bool {
	return m.d.IsZero()
}

func (m Money) IsNegative() bool {
	return m.d.IsNegative()
}

// MinorUnits returns the rounded amount in cents.
func (m Money) MinorUnits() int64 {
	return m.d.Round(CurrencyPrecision).Shift(CurrencyPrecision).IntPart()
}

func (m Money) String() string {
	return m.d.StringFixed(CurrencyPrecision)
}

func (m Money) MarshalJSON() ([]byte, error) {
	return m.d.MarshalJSON()
}

func (m *Money) UnmarshalJSON(data []byte) error {
	return m.d.UnmarshalJSON(data)
}

func SumMoney(amounts ...Money) Money {
	total := Zero
	for _, a := range amounts {
		total = total.Add(a)
	}
	return total
}
