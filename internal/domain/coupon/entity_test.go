//go:build unit

package coupon_test

import (
	"testing"
	"time"

	"course-checkout/internal/domain/coupon"
	"course-checkout/tests/common/builder"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCoupon(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(*builder.CouponBuilder)
		errIs  error
	}{
		{name: "valid coupon"},
		{name: "lowercase code is normalized", mutate: func(b *builder.CouponBuilder) { b.Code = " summer10 " }},
		{name: "code too short", mutate: func(b *builder.CouponBuilder) { b.Code = "AB" }, errIs: coupon.ErrInvalidCouponCode},
		{name: "code with spaces", mutate: func(b *builder.CouponBuilder) { b.Code = "SUM MER" }, errIs: coupon.ErrInvalidCouponCode},
		{name: "zero percentage", mutate: func(b *builder.CouponBuilder) { b.WithPercentage(0) }, errIs: coupon.ErrInvalidDiscountPercent},
		{name: "full percentage", mutate: func(b *builder.CouponBuilder) { b.WithPercentage(100) }},
		{name: "over hundred percent", mutate: func(b *builder.CouponBuilder) { b.WithPercentage(101) }, errIs: coupon.ErrInvalidDiscountPercent},
		{name: "zero max use", mutate: func(b *builder.CouponBuilder) { b.WithUsage(0, 0) }, errIs: coupon.ErrInvalidMaxUseTimes},
		{
			name: "inverted window",
			mutate: func(b *builder.CouponBuilder) {
				b.WithWindow(b.ExpiresAt, b.StartsAt)
			},
			errIs: coupon.ErrInvalidValidityWindow,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewCouponBuilder()
			if tc.mutate != nil {
				b.With(tc.mutate)
			}
			c, err := b.BuildDomain()
			if tc.errIs == nil {
				require.NoError(t, err)
				assert.Equal(t, "SUMMER10", c.Code().String())
				return
			}
			require.Nil(t, c)
			require.ErrorIs(t, err, tc.errIs)
		})
	}
}

func TestCouponDiscountOn(t *testing.T) {
	c := builder.NewCouponBuilder().WithPercentage(15).BuildPersisted()
	got := c.DiscountOn(decimal.RequireFromString("199.99"))
	assert.True(t, got.Equal(decimal.RequireFromString("30")), "got %s", got)
}

func TestCouponIsExhausted(t *testing.T) {
	assert.False(t, builder.NewCouponBuilder().WithUsage(4, 5).BuildPersisted().IsExhausted())
	assert.True(t, builder.NewCouponBuilder().WithUsage(5, 5).BuildPersisted().IsExhausted())
}

func TestCouponDeactivate(t *testing.T) {
	c := builder.NewCouponBuilder().BuildPersisted()
	now := time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC)
	c.Deactivate(now)
	assert.False(t, c.IsActive())
	assert.Equal(t, now, c.UpdatedAt())
}
