package affiliate

import (
	"time"

	"course-checkout/internal/domain/coupon"
	"course-checkout/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidDiscountAmount = errs.Validation("affiliate discount amount must be positive")
	ErrInvalidMaxUseTimes    = errs.Validation("max use times must be at least 1")
	ErrInvalidValidityWindow = errs.Validation("start date must be before expiry date")
)

// Code is a flat-amount discount owned by an affiliate partner. Codes share
// the coupon code format.
type Code struct {
	id             uuid.UUID
	code           coupon.Code
	discountAmount decimal.Decimal
	maxUseTimes    int
	timesUsed      int
	startsAt       time.Time
	expiresAt      time.Time
	ownerID        *uuid.UUID
	active         bool
	createdAt      time.Time
	updatedAt      time.Time
}

type Params struct {
	Code           string
	DiscountAmount decimal.Decimal
	MaxUseTimes    int
	StartsAt       time.Time
	ExpiresAt      time.Time
	OwnerID        *uuid.UUID
}

func NewCode(p Params, now time.Time) (*Code, error) {
	a := &Code{
		id:        uuid.New(),
		active:    true,
		createdAt: now,
		updatedAt: now,
	}
	if err := a.apply(p); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *Code) Update(p Params, now time.Time) error {
	if err := a.apply(p); err != nil {
		return err
	}
	a.updatedAt = now
	return nil
}

func (a *Code) apply(p Params) error {
	code, err := coupon.NewCode(p.Code)
	if err != nil {
		return err
	}
	if !p.DiscountAmount.IsPositive() {
		return ErrInvalidDiscountAmount
	}
	if p.MaxUseTimes < 1 {
		return ErrInvalidMaxUseTimes
	}
	if !p.StartsAt.Before(p.ExpiresAt) {
		return ErrInvalidValidityWindow
	}
	a.code = code
	a.discountAmount = p.DiscountAmount
	a.maxUseTimes = p.MaxUseTimes
	a.startsAt = p.StartsAt
	a.expiresAt = p.ExpiresAt
	a.ownerID = p.OwnerID
	return nil
}

func (a *Code) Deactivate(now time.Time) {
	a.active = false
	a.updatedAt = now
}

func (a *Code) IsExhausted() bool {
	return a.timesUsed >= a.maxUseTimes
}

type Snapshot struct {
	ID             uuid.UUID
	Code           string
	DiscountAmount decimal.Decimal
	MaxUseTimes    int
	TimesUsed      int
	StartsAt       time.Time
	ExpiresAt      time.Time
	OwnerID        *uuid.UUID
	Active         bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func Reconstruct(s Snapshot) *Code {
	return &Code{
		id:             s.ID,
		code:           coupon.Code(s.Code),
		discountAmount: s.DiscountAmount,
		maxUseTimes:    s.MaxUseTimes,
		timesUsed:      s.TimesUsed,
		startsAt:       s.StartsAt,
		expiresAt:      s.ExpiresAt,
		ownerID:        s.OwnerID,
		active:         s.Active,
		createdAt:      s.CreatedAt,
		updatedAt:      s.UpdatedAt,
	}
}

func (a *Code) ID() uuid.UUID                   { return a.id }
func (a *Code) Code() coupon.Code               { return a.code }
func (a *Code) DiscountAmount() decimal.Decimal { return a.discountAmount }
func (a *Code) MaxUseTimes() int                { return a.maxUseTimes }
func (a *Code) TimesUsed() int                  { return a.timesUsed }
func (a *Code) StartsAt() time.Time             { return a.startsAt }
func (a *Code) ExpiresAt() time.Time            { return a.expiresAt }
func (a *Code) OwnerID() *uuid.UUID             { return a.ownerID }
func (a *Code) IsActive() bool                  { return a.active }
func (a *Code) CreatedAt() time.Time            { return a.createdAt }
func (a *Code) UpdatedAt() time.Time            { return a.updatedAt }
