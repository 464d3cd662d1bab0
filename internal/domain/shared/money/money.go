package money

import "errors"

var ErrNegativeAmount = errors.New("money: amount cannot be negative")

// Money is an exact amount in cents. All rate arithmetic stays in integer
// cents so identical inputs always produce identical totals.
type Money struct {
	cents int64
}

func New(cents int64) Money {
	return Money{cents: cents}
}

func NewNonNegative(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativeAmount
	}
	return Money{cents: cents}, nil
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

func (m Money) Mul(n int64) Money {
	return Money{cents: m.cents * n}
}

func (m Money) IsZero() bool {
	return m.cents == 0
}
