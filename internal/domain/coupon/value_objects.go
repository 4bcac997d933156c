package coupon

import (
	"regexp"
	"strings"

	"course-checkout/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidCouponCode      = errs.Validation("invalid coupon code format")
	ErrInvalidDiscountPercent = errs.Validation("percentage discount must be greater than 0 and at most 100")
	ErrInvalidMaxUseTimes     = errs.Validation("max use times must be at least 1")
	ErrInvalidValidityWindow  = errs.Validation("start date must be before expiry date")
)

var (
	codeRegex = regexp.MustCompile(`^[A-Z0-9_-]{3,32}$`)
	hundred   = decimal.NewFromInt(100)
)

type Code string

// NewCode normalizes to upper case so lookups are case-insensitive.
func NewCode(code string) (Code, error) {
	code = NormalizeCode(code)
	if !codeRegex.MatchString(code) {
		return Code(""), ErrInvalidCouponCode
	}
	return Code(code), nil
}

func NormalizeCode(code string) string {
	return strings.TrimSpace(strings.ToUpper(code))
}

func (c Code) String() string {
	return string(c)
}

type Percentage struct {
	value decimal.Decimal
}

func NewPercentage(v decimal.Decimal) (Percentage, error) {
	if !v.IsPositive() || v.GreaterThan(hundred) {
		return Percentage{}, ErrInvalidDiscountPercent
	}
	return Percentage{value: v}, nil
}

func (p Percentage) Decimal() decimal.Decimal { return p.value }
