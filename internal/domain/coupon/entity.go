package coupon

import (
	"time"

	"course-checkout/internal/pkg/money"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Coupon struct {
	id          uuid.UUID
	code        Code
	percentage  Percentage
	maxUseTimes int
	timesUsed   int
	startsAt    time.Time
	expiresAt   time.Time
	active      bool
	createdAt   time.Time
	updatedAt   time.Time
}

type Params struct {
	Code        string
	Percentage  decimal.Decimal
	MaxUseTimes int
	StartsAt    time.Time
	ExpiresAt   time.Time
}

func NewCoupon(p Params, now time.Time) (*Coupon, error) {
	c := &Coupon{
		id:        uuid.New(),
		active:    true,
		createdAt: now,
		updatedAt: now,
	}
	if err := c.apply(p); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Coupon) Update(p Params, now time.Time) error {
	if err := c.apply(p); err != nil {
		return err
	}
	c.updatedAt = now
	return nil
}

func (c *Coupon) apply(p Params) error {
	code, err := NewCode(p.Code)
	if err != nil {
		return err
	}
	pct, err := NewPercentage(p.Percentage)
	if err != nil {
		return err
	}
	if p.MaxUseTimes < 1 {
		return ErrInvalidMaxUseTimes
	}
	if !p.StartsAt.Before(p.ExpiresAt) {
		return ErrInvalidValidityWindow
	}
	c.code = code
	c.percentage = pct
	c.maxUseTimes = p.MaxUseTimes
	c.startsAt = p.StartsAt
	c.expiresAt = p.ExpiresAt
	return nil
}

func (c *Coupon) Deactivate(now time.Time) {
	c.active = false
	c.updatedAt = now
}

func (c *Coupon) IsExhausted() bool {
	return c.timesUsed >= c.maxUseTimes
}

// DiscountOn returns the percentage of the given running price at the stored
// currency scale.
func (c *Coupon) DiscountOn(price decimal.Decimal) decimal.Decimal {
	return money.Percent(price, c.percentage.Decimal())
}

type Snapshot struct {
	ID          uuid.UUID
	Code        string
	Percentage  decimal.Decimal
	MaxUseTimes int
	TimesUsed   int
	StartsAt    time.Time
	ExpiresAt   time.Time
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func Reconstruct(s Snapshot) *Coupon {
	return &Coupon{
		id:          s.ID,
		code:        Code(s.Code),
		percentage:  Percentage{value: s.Percentage},
		maxUseTimes: s.MaxUseTimes,
		timesUsed:   s.TimesUsed,
		startsAt:    s.StartsAt,
		expiresAt:   s.ExpiresAt,
		active:      s.Active,
		createdAt:   s.CreatedAt,
		updatedAt:   s.UpdatedAt,
	}
}

func (c *Coupon) ID() uuid.UUID          { return c.id }
func (c *Coupon) Code() Code             { return c.code }
func (c *Coupon) Percentage() Percentage { return c.percentage }
func (c *Coupon) MaxUseTimes() int       { return c.maxUseTimes }
func (c *Coupon) TimesUsed() int         { return c.timesUsed }
func (c *Coupon) StartsAt() time.Time    { return c.startsAt }
func (c *Coupon) ExpiresAt() time.Time   { return c.expiresAt }
func (c *Coupon) IsActive() bool         { return c.active }
func (c *Coupon) CreatedAt() time.Time   { return c.createdAt }
func (c *Coupon) UpdatedAt() time.Time   { return c.updatedAt }
