package money

import (
	"course-checkout/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Scale is the number of fraction digits stored for every amount.
const Scale int32 = 2

var (
	ErrInvalidMultiplier = errs.Validation("minor unit multiplier must be positive")
	ErrNegativeAmount    = errs.Validation("amount must not be negative")
)

var hundred = decimal.NewFromInt(100)

// ToMinorUnits converts an amount to the provider's integer representation.
// Rounding is half away from zero at the integer boundary.
func ToMinorUnits(amount decimal.Decimal, multiplier int64) (int64, error) {
	if multiplier <= 0 {
		return 0, ErrInvalidMultiplier
	}
	if amount.IsNegative() {
		return 0, ErrNegativeAmount
	}
	return amount.Mul(decimal.NewFromInt(multiplier)).Round(0).IntPart(), nil
}

// Percent returns pct percent of amount rounded half away from zero to Scale.
func Percent(amount, pct decimal.Decimal) decimal.Decimal {
	return amount.Mul(pct).Div(hundred).Round(Scale)
}

// HasScale reports whether amount fits in Scale fraction digits.
func HasScale(amount decimal.Decimal) bool {
	return amount.Equal(amount.Round(Scale))
}
