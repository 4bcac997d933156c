//go:build unit || e2e

package builder

import (
	"time"

	"course-checkout/internal/domain/affiliate"
	"course-checkout/internal/domain/coupon"
	"course-checkout/internal/domain/credit"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CouponBuilder defaults to a coupon valid around 2024-06-01.
type CouponBuilder struct {
	ID          uuid.UUID
	Code        string
	Percentage  decimal.Decimal
	MaxUseTimes int
	TimesUsed   int
	StartsAt    time.Time
	ExpiresAt   time.Time
	Active      bool
}

func NewCouponBuilder() *CouponBuilder {
	return &CouponBuilder{
		ID:          uuid.New(),
		Code:        "SUMMER10",
		Percentage:  decimal.NewFromInt(10),
		MaxUseTimes: 100,
		StartsAt:    time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		ExpiresAt:   time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
		Active:      true,
	}
}

func (b *CouponBuilder) With(mutate func(*CouponBuilder)) *CouponBuilder {
	mutate(b)
	return b
}

func (b *CouponBuilder) Params() coupon.Params {
	return coupon.Params{
		Code:        b.Code,
		Percentage:  b.Percentage,
		MaxUseTimes: b.MaxUseTimes,
		StartsAt:    b.StartsAt,
		ExpiresAt:   b.ExpiresAt,
	}
}

func (b *CouponBuilder) BuildDomain() (*coupon.Coupon, error) {
	return coupon.NewCoupon(b.Params(), b.StartsAt)
}

func (b *CouponBuilder) BuildPersisted() *coupon.Coupon {
	return coupon.Reconstruct(coupon.Snapshot{
		ID:          b.ID,
		Code:        b.Code,
		Percentage:  b.Percentage,
		MaxUseTimes: b.MaxUseTimes,
		TimesUsed:   b.TimesUsed,
		StartsAt:    b.StartsAt,
		ExpiresAt:   b.ExpiresAt,
		Active:      b.Active,
		CreatedAt:   b.StartsAt,
		UpdatedAt:   b.StartsAt,
	})
}

func (b *CouponBuilder) WithPercentage(p int64) *CouponBuilder {
	b.Percentage = decimal.NewFromInt(p)
	return b
}

func (b *CouponBuilder) WithUsage(used, max int) *CouponBuilder {
	b.TimesUsed = used
	b.MaxUseTimes = max
	return b
}

func (b *CouponBuilder) WithWindow(start, expiry time.Time) *CouponBuilder {
	b.StartsAt = start
	b.ExpiresAt = expiry
	return b
}

type AffiliateBuilder struct {
	ID          uuid.UUID
	Code        string
	Amount      decimal.Decimal
	MaxUseTimes int
	TimesUsed   int
	StartsAt    time.Time
	ExpiresAt   time.Time
	Active      bool
}

func NewAffiliateBuilder() *AffiliateBuilder {
	return &AffiliateBuilder{
		ID:          uuid.New(),
		Code:        "PARTNER50",
		Amount:      decimal.NewFromInt(50),
		MaxUseTimes: 100,
		StartsAt:    time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		ExpiresAt:   time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
		Active:      true,
	}
}

func (b *AffiliateBuilder) With(mutate func(*AffiliateBuilder)) *AffiliateBuilder {
	mutate(b)
	return b
}

func (b *AffiliateBuilder) Params() affiliate.Params {
	return affiliate.Params{
		Code:           b.Code,
		DiscountAmount: b.Amount,
		MaxUseTimes:    b.MaxUseTimes,
		StartsAt:       b.StartsAt,
		ExpiresAt:      b.ExpiresAt,
	}
}

func (b *AffiliateBuilder) BuildDomain() (*affiliate.Code, error) {
	return affiliate.NewCode(b.Params(), b.StartsAt)
}

func (b *AffiliateBuilder) BuildPersisted() *affiliate.Code {
	return affiliate.Reconstruct(affiliate.Snapshot{
		ID:             b.ID,
		Code:           b.Code,
		DiscountAmount: b.Amount,
		MaxUseTimes:    b.MaxUseTimes,
		TimesUsed:      b.TimesUsed,
		StartsAt:       b.StartsAt,
		ExpiresAt:      b.ExpiresAt,
		Active:         b.Active,
		CreatedAt:      b.StartsAt,
		UpdatedAt:      b.StartsAt,
	})
}

func (b *AffiliateBuilder) WithAmount(amount int64) *AffiliateBuilder {
	b.Amount = decimal.NewFromInt(amount)
	return b
}

func (b *AffiliateBuilder) WithUsage(used, max int) *AffiliateBuilder {
	b.TimesUsed = used
	b.MaxUseTimes = max
	return b
}

type CreditBuilder struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Amount    decimal.Decimal
	StartsAt  time.Time
	ExpiresAt time.Time
}

func NewCreditBuilder() *CreditBuilder {
	return &CreditBuilder{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		Amount:    decimal.NewFromInt(500),
		StartsAt:  time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		ExpiresAt: time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (b *CreditBuilder) With(mutate func(*CreditBuilder)) *CreditBuilder {
	mutate(b)
	return b
}

func (b *CreditBuilder) BuildPersisted() *credit.StoredCredit {
	return credit.Reconstruct(credit.Snapshot{
		ID:        b.ID,
		UserID:    b.UserID,
		Amount:    b.Amount,
		StartsAt:  b.StartsAt,
		ExpiresAt: b.ExpiresAt,
		CreatedAt: b.StartsAt,
		UpdatedAt: b.StartsAt,
	})
}

func (b *CreditBuilder) WithUserID(id uuid.UUID) *CreditBuilder {
	b.UserID = id
	return b
}

func (b *CreditBuilder) WithAmount(amount int64) *CreditBuilder {
	b.Amount = decimal.NewFromInt(amount)
	return b
}

func (b *CreditBuilder) WithExpiry(t time.Time) *CreditBuilder {
	b.ExpiresAt = t
	return b
}
