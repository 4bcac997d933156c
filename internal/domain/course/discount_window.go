package course

import (
	"time"

	"course-checkout/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidDiscountAmount = errs.Validation("discount amount must be positive")
	ErrInvalidDiscountWindow = errs.Validation("discount start must be before discount end")
	ErrDiscountExceedsPrice  = errs.Validation("discount cannot exceed course price")
)

// Discount is a time-boxed price reduction. While Applied is true the course
// price already has Amount subtracted.
type Discount struct {
	Amount   decimal.Decimal
	StartsAt *time.Time
	EndsAt   *time.Time
	Applied  bool
}

func (d *Discount) validate() error {
	if !d.Amount.IsPositive() {
		return ErrInvalidDiscountAmount
	}
	if d.StartsAt != nil && d.EndsAt != nil && !d.StartsAt.Before(*d.EndsAt) {
		return ErrInvalidDiscountWindow
	}
	return nil
}

type ToggleOutcome string

const (
	ToggleNone        ToggleOutcome = "none"
	ToggleActivated   ToggleOutcome = "activated"
	ToggleDeactivated ToggleOutcome = "deactivated"
	ToggleExpired     ToggleOutcome = "expired"
)

// ToggleDiscount moves the discount window forward to now:
//   - an applied discount whose end has passed is folded back into the price and cleared;
//   - a pending discount whose start has passed (and whose end has not) is subtracted from the price;
//   - a pending discount whose end has already passed is cleared without touching the price.
func (c *Course) ToggleDiscount(now time.Time) (ToggleOutcome, error) {
	d := c.discount
	if d == nil {
		return ToggleNone, nil
	}

	ended := d.EndsAt != nil && !d.EndsAt.After(now)
	started := d.StartsAt == nil || !d.StartsAt.After(now)

	switch {
	case d.Applied && ended:
		c.price = c.price.Add(d.Amount)
		c.discount = nil
		c.updatedAt = now
		return ToggleDeactivated, nil
	case !d.Applied && ended:
		c.discount = nil
		c.updatedAt = now
		return ToggleExpired, nil
	case !d.Applied && started:
		if d.Amount.GreaterThan(c.price) {
			return ToggleNone, ErrDiscountExceedsPrice
		}
		c.price = c.price.Sub(d.Amount)
		d.Applied = true
		c.updatedAt = now
		return ToggleActivated, nil
	default:
		return ToggleNone, nil
	}
}

// ListPrice is the price without an active discount.
func (c *Course) ListPrice() decimal.Decimal {
	if c.discount != nil && c.discount.Applied {
		return c.price.Add(c.discount.Amount)
	}
	return c.price
}
