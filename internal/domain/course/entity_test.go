//go:build unit

package course_test

import (
	"testing"
	"time"

	"course-checkout/internal/domain/course"
	"course-checkout/tests/common/builder"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCourse(t *testing.T) {
	t.Run("derives slug from name", func(t *testing.T) {
		c, err := builder.NewCourseBuilder().BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, "go-concurrency-in-practice", c.Slug())
		assert.True(t, c.IsActive())
		assert.Equal(t, 0, c.TotalSold())
		assert.True(t, c.Rating().IsZero())
	})

	testCases := []struct {
		name   string
		mutate func(*builder.CourseBuilder)
		errIs  error
	}{
		{name: "free course is allowed", mutate: func(b *builder.CourseBuilder) { b.WithPrice(0) }},
		{name: "negative price", mutate: func(b *builder.CourseBuilder) { b.WithPrice(-1) }, errIs: course.ErrNegativePrice},
		{name: "blank name", mutate: func(b *builder.CourseBuilder) { b.Name = "  " }, errIs: course.ErrInvalidName},
		{
			name:   "zero discount",
			mutate: func(b *builder.CourseBuilder) { b.WithDiscount(0, nil, nil, false) },
			errIs:  course.ErrInvalidDiscountAmount,
		},
		{
			name: "inverted discount window",
			mutate: func(b *builder.CourseBuilder) {
				start := b.Now.Add(time.Hour)
				b.WithDiscount(100, &start, &b.Now, false)
			},
			errIs: course.ErrInvalidDiscountWindow,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c, err := builder.NewCourseBuilder().With(tc.mutate).BuildDomain()
			if tc.errIs == nil {
				require.NoError(t, err)
				require.NotNil(t, c)
				return
			}
			require.Nil(t, c)
			require.ErrorIs(t, err, tc.errIs)
		})
	}
}

func TestCheckPurchasable(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	c := builder.NewCourseBuilder().BuildPersisted()
	require.NoError(t, c.CheckPurchasable())

	draft := builder.NewCourseBuilder().AsUnpublished().BuildPersisted()
	require.ErrorIs(t, draft.CheckPurchasable(), course.ErrNotPurchasable)

	c.Deactivate(now)
	require.ErrorIs(t, c.CheckPurchasable(), course.ErrNotPurchasable)
}

func TestSetRating(t *testing.T) {
	c := builder.NewCourseBuilder().BuildPersisted()
	require.NoError(t, c.SetRating(decimal.RequireFromString("4.5")))
	assert.Equal(t, "4.5", c.Rating().String())
	require.ErrorIs(t, c.SetRating(decimal.NewFromInt(6)), course.ErrInvalidRating)
	require.ErrorIs(t, c.SetRating(decimal.NewFromInt(-1)), course.ErrInvalidRating)
}
