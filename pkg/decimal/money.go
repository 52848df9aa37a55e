package decimal

import (
	"github.com/shopspring/decimal"
)

var twelve = decimal.NewFromInt(12)

// Money is a dollar amount. Rounding is explicit: calculations keep full
// precision and round only where a published figure is produced.
type Money struct {
	decimal.Decimal
}

// NewMoney creates Money from a float64
func NewMoney(value float64) Money {
	return Money{decimal.NewFromFloat(value)}
}

// NewMoneyFromInt creates Money from a whole-dollar amount
func NewMoneyFromInt(value int64) Money {
	return Money{decimal.NewFromInt(value)}
}

// NewMoneyFromDecimal wraps a decimal.Decimal
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// Round rounds to cents, half away from zero
func (m Money) Round() Money {
	return Money{m.Decimal.Round(2)}
}

// RoundDollars rounds to whole dollars, half away from zero. Annuities and
// locality-adjusted salaries are published in whole dollars.
func (m Money) RoundDollars() Money {
	return Money{m.Decimal.Round(0)}
}

// Annual converts a monthly amount to annual
func (m Money) Annual() Money {
	return Money{m.Decimal.Mul(twelve)}
}

// Monthly converts an annual amount to monthly without rounding
func (m Money) Monthly() Money {
	return Money{m.Decimal.Div(twelve)}
}

// PaidMonthly is the monthly payment for an annual amount, in cents.
// Twelve payments need not add back up to the annual figure.
func (m Money) PaidMonthly() Money {
	return m.Monthly().Round()
}

// Installment is one of n equal payments, in cents. A non-positive n
// yields the whole amount.
func (m Money) Installment(n int) Money {
	if n <= 1 {
		return m.Round()
	}
	return Money{m.Decimal.Div(decimal.NewFromInt(int64(n)))}.Round()
}

// Add adds another Money amount
func (m Money) Add(other Money) Money {
	return Money{m.Decimal.Add(other.Decimal)}
}

// Sub subtracts another Money amount
func (m Money) Sub(other Money) Money {
	return Money{m.Decimal.Sub(other.Decimal)}
}

// Mul multiplies by a factor
func (m Money) Mul(factor decimal.Decimal) Money {
	return Money{m.Decimal.Mul(factor)}
}

// Div divides by a factor
func (m Money) Div(factor decimal.Decimal) Money {
	return Money{m.Decimal.Div(factor)}
}

func (m Money) GreaterThan(other Money) bool {
	return m.Decimal.GreaterThan(other.Decimal)
}

func (m Money) GreaterThanOrEqual(other Money) bool {
	return m.Decimal.GreaterThanOrEqual(other.Decimal)
}

func (m Money) LessThan(other Money) bool {
	return m.Decimal.LessThan(other.Decimal)
}

func (m Money) LessThanOrEqual(other Money) bool {
	return m.Decimal.LessThanOrEqual(other.Decimal)
}

func (m Money) Equal(other Money) bool {
	return m.Decimal.Equal(other.Decimal)
}

// Min returns the smaller amount; used for capped benefits
func Min(a, b Money) Money {
	if a.LessThan(b) {
		return a
	}
	return b
}

// Zero returns a zero amount
func Zero() Money {
	return Money{decimal.Zero}
}

// String renders the amount with exactly two decimals and no currency symbol.
// Display formatting with grouping lives in the output package.
func (m Money) String() string {
	return m.Decimal.StringFixed(2)
}
