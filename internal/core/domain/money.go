package domain

import (
	"fmt"

	"revenue-distribution-engine/pkg/apperror"
)

// Currency is the closed set of settlement currencies.
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyGBP Currency = "GBP"
	CurrencyJPY Currency = "JPY"
)

// IsValid reports whether the currency is a known one.
func (c Currency) IsValid() bool {
	switch c {
	case CurrencyUSD, CurrencyEUR, CurrencyGBP, CurrencyJPY:
		return true
	}
	return false
}

// MaxAmountValue bounds a single amount, in smallest currency units.
const MaxAmountValue int64 = 1_000_000_000

// Amount is an immutable monetary value in smallest currency units
// (e.g. cents). All arithmetic is currency-checked.
type Amount struct {
	Value    int64    `json:"value"`
	Currency Currency `json:"currency"`
}

// NewAmount validates and builds an Amount.
func NewAmount(value int64, currency Currency) (Amount, error) {
	if value < 0 {
		return Amount{}, apperror.ErrInvalidInput("amount cannot be negative")
	}
	if value > MaxAmountValue {
		return Amount{}, apperror.ErrInvalidInput(fmt.Sprintf("amount exceeds maximum of %d", MaxAmountValue))
	}
	if !currency.IsValid() {
		return Amount{}, apperror.ErrInvalidInput(fmt.Sprintf("unknown currency %q", currency))
	}
	return Amount{Value: value, Currency: currency}, nil
}

// MustAmount builds an Amount and panics on invalid input. Test helper and
// constant-construction only.
func MustAmount(value int64, currency Currency) Amount {
	a, err := NewAmount(value, currency)
	if err != nil {
		panic(err)
	}
	return a
}

// Add returns a + b. Fails if currencies differ or the result overflows the bound.
func (a Amount) Add(b Amount) (Amount, error) {
	if a.Currency != b.Currency {
		return Amount{}, apperror.ErrInvalidInput(
			fmt.Sprintf("currency mismatch: %s vs %s", a.Currency, b.Currency))
	}
	return NewAmount(a.Value+b.Value, a.Currency)
}

// Subtract returns a - b. Fails if currencies differ or the result is negative.
func (a Amount) Subtract(b Amount) (Amount, error) {
	if a.Currency != b.Currency {
		return Amount{}, apperror.ErrInvalidInput(
			fmt.Sprintf("currency mismatch: %s vs %s", a.Currency, b.Currency))
	}
	return NewAmount(a.Value-b.Value, a.Currency)
}

// PercentageOf returns percent% of the amount, rounded down so that a set
// of allocations can never sum past their source. Fails if percent is
// outside [0,100].
func (a Amount) PercentageOf(percent float64) (Amount, error) {
	p, err := NewFeePercentage(percent)
	if err != nil {
		return Amount{}, err
	}
	return Amount{Value: a.Value * p.BasisPoints / 10000, Currency: a.Currency}, nil
}

// IsZero reports whether the amount is zero.
func (a Amount) IsZero() bool { return a.Value == 0 }

// Equals reports value-and-currency equality.
func (a Amount) Equals(b Amount) bool { return a == b }

// GreaterThan reports a > b for same-currency amounts; false across currencies.
func (a Amount) GreaterThan(b Amount) bool {
	return a.Currency == b.Currency && a.Value > b.Value
}

func (a Amount) String() string {
	return fmt.Sprintf("%d %s", a.Value, a.Currency)
}

// FeePercentage is a percentage in [0,100], held as basis points so that
// derived fees are exact integers.
type FeePercentage struct {
	BasisPoints int64 `json:"basis_points"`
}

// NewFeePercentage validates and builds a FeePercentage from a percent value.
func NewFeePercentage(percent float64) (FeePercentage, error) {
	if percent < 0 || percent > 100 {
		return FeePercentage{}, apperror.ErrInvalidInput(
			fmt.Sprintf("percentage must be within [0,100], got %v", percent))
	}
	// Round to the nearest basis point; finer precision is not representable.
	bps := int64(percent*100 + 0.5)
	return FeePercentage{BasisPoints: bps}, nil
}

// MustFeePercentage builds a FeePercentage and panics on invalid input.
func MustFeePercentage(percent float64) FeePercentage {
	p, err := NewFeePercentage(percent)
	if err != nil {
		panic(err)
	}
	return p
}

// Percent returns the percentage as a float.
func (p FeePercentage) Percent() float64 {
	return float64(p.BasisPoints) / 100
}

// apply computes bps of value, rounded half-up.
func (p FeePercentage) apply(value int64) int64 {
	return (value*p.BasisPoints + 5000) / 10000
}

// CalculateFee derives the fee portion of a gross amount.
func (p FeePercentage) CalculateFee(gross Amount) Amount {
	return Amount{Value: p.apply(gross.Value), Currency: gross.Currency}
}

// CalculateNetAmount derives the net portion of a gross amount.
// fee + net == gross holds by construction, so net is never negative.
func (p FeePercentage) CalculateNetAmount(gross Amount) Amount {
	fee := p.apply(gross.Value)
	return Amount{Value: gross.Value - fee, Currency: gross.Currency}
}

func (p FeePercentage) String() string {
	return fmt.Sprintf("%.2f%%", p.Percent())
}
