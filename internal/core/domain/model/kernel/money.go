package kernel

import (
	"fmt"
	"math"

	"parcelmarket/internal/pkg/errs"
)

// Money is a value object representing a non-negative monetary amount in the
// platform currency. Amounts are stored as integer cents so that arithmetic and
// persistence never accumulate floating-point drift; the two-decimal rounding
// required by the pricing rules happens exactly once, at construction.
//
// The zero value is a valid amount of 0.00. Money is immutable: arithmetic methods
// return new values.
type Money struct {
	cents int64
}

// NewMoney creates a Money from an amount of integer cents.
// Negative amounts are rejected.
func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"money",
			fmt.Errorf("%d cents is negative", cents),
		)
	}
	return Money{cents: cents}, nil
}

// NewMoneyFromFloat creates a Money from a float amount of currency units,
// rounding half away from zero to two decimal places. This is the single place
// where prices computed with float arithmetic enter the domain.
func NewMoneyFromFloat(amount float64) (Money, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"money",
			fmt.Errorf("%v is not a finite amount", amount),
		)
	}
	if amount < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"money",
			fmt.Errorf("%v is negative", amount),
		)
	}
	return Money{cents: int64(math.Round(amount * 100))}, nil
}

// Cents returns the amount as integer cents.
func (m Money) Cents() int64 {
	return m.cents
}

// Float64 returns the amount in currency units. Intended for serialization at the
// adapter boundary, not for further arithmetic.
func (m Money) Float64() float64 {
	return float64(m.cents) / 100
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

// IsZero reports whether the amount is exactly 0.00.
func (m Money) IsZero() bool {
	return m.cents == 0
}

// IsEqual compares two amounts for equality.
func (m Money) IsEqual(other Money) bool {
	return m.cents == other.cents
}

// LessThan reports whether m is strictly smaller than other.
func (m Money) LessThan(other Money) bool {
	return m.cents < other.cents
}

// String formats the amount with two decimal places, e.g. "90.00".
func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.cents/100, m.cents%100)
}
