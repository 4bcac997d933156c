package checkout

import (
	"time"

	"course-checkout/internal/pkg/errs"
)

// WindowPolicy decides whether a coupon or affiliate code is outside its
// validity window.
type WindowPolicy string

const (
	// WindowStrict rejects when now is before the start or after the expiry.
	WindowStrict WindowPolicy = "strict"
	// WindowLegacy rejects only when now is both after the expiry and before
	// the start, which can never hold for a well-formed window. It exists to
	// reproduce historic pricing when reconciling old orders.
	WindowLegacy WindowPolicy = "legacy"
)

func ParseWindowPolicy(s string) (WindowPolicy, error) {
	switch WindowPolicy(s) {
	case "", WindowStrict:
		return WindowStrict, nil
	case WindowLegacy:
		return WindowLegacy, nil
	default:
		return "", errs.Wrapf(ErrInvalidWindowPolicy, "policy %q", s)
	}
}

func (p WindowPolicy) Outside(start, expiry, now time.Time) bool {
	if p == WindowLegacy {
		return expiry.Before(now) && start.After(now)
	}
	return now.Before(start) || now.After(expiry)
}
