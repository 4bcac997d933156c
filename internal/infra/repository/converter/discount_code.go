package converter

import (
	"time"

	"course-checkout/internal/domain/affiliate"
	"course-checkout/internal/domain/coupon"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const CouponColumns = `id, code, discount_percentage, max_use_times, times_used,
	starts_at, expires_at, active, created_at, updated_at`

type CouponRow struct {
	ID                 uuid.UUID       `db:"id"`
	Code               string          `db:"code"`
	DiscountPercentage decimal.Decimal `db:"discount_percentage"`
	MaxUseTimes        int             `db:"max_use_times"`
	TimesUsed          int             `db:"times_used"`
	StartsAt           time.Time       `db:"starts_at"`
	ExpiresAt          time.Time       `db:"expires_at"`
	Active             bool            `db:"active"`
	CreatedAt          time.Time       `db:"created_at"`
	UpdatedAt          time.Time       `db:"updated_at"`
}

func CouponFromRow(r CouponRow) *coupon.Coupon {
	return coupon.Reconstruct(coupon.Snapshot{
		ID:          r.ID,
		Code:        r.Code,
		Percentage:  r.DiscountPercentage,
		MaxUseTimes: r.MaxUseTimes,
		TimesUsed:   r.TimesUsed,
		StartsAt:    r.StartsAt,
		ExpiresAt:   r.ExpiresAt,
		Active:      r.Active,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	})
}

func CouponArgs(c *coupon.Coupon) []any {
	return []any{
		c.ID(), c.Code().String(), c.Percentage().Decimal(), c.MaxUseTimes(), c.TimesUsed(),
		c.StartsAt(), c.ExpiresAt(), c.IsActive(), c.CreatedAt(), c.UpdatedAt(),
	}
}

const AffiliateColumns = `id, code, discount_amount, max_use_times, times_used,
	starts_at, expires_at, owner_id, active, created_at, updated_at`

type AffiliateRow struct {
	ID             uuid.UUID       `db:"id"`
	Code           string          `db:"code"`
	DiscountAmount decimal.Decimal `db:"discount_amount"`
	MaxUseTimes    int             `db:"max_use_times"`
	TimesUsed      int             `db:"times_used"`
	StartsAt       time.Time       `db:"starts_at"`
	ExpiresAt      time.Time       `db:"expires_at"`
	OwnerID        *uuid.UUID      `db:"owner_id"`
	Active         bool            `db:"active"`
	CreatedAt      time.Time       `db:"created_at"`
	UpdatedAt      time.Time       `db:"updated_at"`
}

func AffiliateFromRow(r AffiliateRow) *affiliate.Code {
	return affiliate.Reconstruct(affiliate.Snapshot{
		ID:             r.ID,
		Code:           r.Code,
		DiscountAmount: r.DiscountAmount,
		MaxUseTimes:    r.MaxUseTimes,
		TimesUsed:      r.TimesUsed,
		StartsAt:       r.StartsAt,
		ExpiresAt:      r.ExpiresAt,
		OwnerID:        r.OwnerID,
		Active:         r.Active,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	})
}

func AffiliateArgs(a *affiliate.Code) []any {
	return []any{
		a.ID(), a.Code().String(), a.DiscountAmount(), a.MaxUseTimes(), a.TimesUsed(),
		a.StartsAt(), a.ExpiresAt(), a.OwnerID(), a.IsActive(), a.CreatedAt(), a.UpdatedAt(),
	}
}
