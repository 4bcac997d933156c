//go:build unit

package affiliate_test

import (
	"testing"

	"course-checkout/internal/domain/affiliate"
	"course-checkout/internal/domain/coupon"
	"course-checkout/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCode(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(*builder.AffiliateBuilder)
		errIs  error
	}{
		{name: "valid code", mutate: func(b *builder.AffiliateBuilder) {}},
		{name: "invalid code format", mutate: func(b *builder.AffiliateBuilder) { b.Code = "!" }, errIs: coupon.ErrInvalidCouponCode},
		{name: "zero amount", mutate: func(b *builder.AffiliateBuilder) { b.WithAmount(0) }, errIs: affiliate.ErrInvalidDiscountAmount},
		{name: "negative amount", mutate: func(b *builder.AffiliateBuilder) { b.WithAmount(-5) }, errIs: affiliate.ErrInvalidDiscountAmount},
		{name: "zero max use", mutate: func(b *builder.AffiliateBuilder) { b.WithUsage(0, 0) }, errIs: affiliate.ErrInvalidMaxUseTimes},
		{
			name:   "empty window",
			mutate: func(b *builder.AffiliateBuilder) { b.ExpiresAt = b.StartsAt },
			errIs:  affiliate.ErrInvalidValidityWindow,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			a, err := builder.NewAffiliateBuilder().With(tc.mutate).BuildDomain()
			if tc.errIs == nil {
				require.NoError(t, err)
				assert.Equal(t, "PARTNER50", a.Code().String())
				assert.Equal(t, 0, a.TimesUsed())
				return
			}
			require.Nil(t, a)
			require.ErrorIs(t, err, tc.errIs)
		})
	}
}

func TestAffiliateIsExhausted(t *testing.T) {
	assert.False(t, builder.NewAffiliateBuilder().WithUsage(0, 1).BuildPersisted().IsExhausted())
	assert.True(t, builder.NewAffiliateBuilder().WithUsage(1, 1).BuildPersisted().IsExhausted())
}
