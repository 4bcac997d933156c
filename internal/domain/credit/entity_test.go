//go:build unit

package credit_test

import (
	"testing"
	"time"

	"course-checkout/internal/domain/credit"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrant(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	userID := uuid.New()

	c, err := credit.Grant(userID, decimal.NewFromInt(500), 90*24*time.Hour, now)
	require.NoError(t, err)
	assert.Equal(t, userID, c.UserID())
	assert.True(t, c.Amount().Equal(decimal.NewFromInt(500)))
	assert.Equal(t, now, c.StartsAt())
	assert.Equal(t, now.AddDate(0, 0, 90), c.ExpiresAt())
	assert.False(t, c.IsExpiredAt(c.ExpiresAt()))
	assert.True(t, c.IsExpiredAt(c.ExpiresAt().Add(time.Nanosecond)))

	_, err = credit.Grant(userID, decimal.Zero, time.Hour, now)
	require.ErrorIs(t, err, credit.ErrInvalidGrantAmount)

	_, err = credit.Grant(userID, decimal.NewFromInt(1), 0, now)
	require.ErrorIs(t, err, credit.ErrInvalidValidity)
}
