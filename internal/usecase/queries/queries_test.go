//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"course-checkout/internal/domain/course"
	"course-checkout/internal/infra"
	"course-checkout/internal/pkg/clock"
	"course-checkout/internal/usecase/queries"
	"course-checkout/internal/usecase/shared"
	queriesmock "course-checkout/tests/mock/queries"
	sharedmock "course-checkout/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var now = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func notFound() error {
	return infra.WrapRepoErr("row missing", nil, infra.KindNotFound)
}

func TestExchangeRateQueries(t *testing.T) {
	ctx := context.Background()
	table := &shared.RateTable{Base: "INR", Rates: map[string]decimal.Decimal{"USD": decimal.RequireFromString("0.012")}, FetchedAt: now}

	t.Run("cache hit skips the store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockExchangeRateReadStore(ctrl)
		cache := sharedmock.NewMockRateCache(ctrl)
		cache.EXPECT().Get(gomock.Any()).Return(table, nil)

		got, err := queries.NewExchangeRateQueries(store, cache).Get(ctx)

		require.NoError(t, err)
		assert.Same(t, table, got)
	})

	t.Run("miss reads the store and repopulates the cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockExchangeRateReadStore(ctrl)
		cache := sharedmock.NewMockRateCache(ctrl)
		gomock.InOrder(
			cache.EXPECT().Get(gomock.Any()).Return(nil, shared.ErrCacheMiss),
			store.EXPECT().Get(gomock.Any()).Return(table, nil),
			cache.EXPECT().Set(gomock.Any(), *table).Return(nil),
		)

		got, err := queries.NewExchangeRateQueries(store, cache).Get(ctx)

		require.NoError(t, err)
		assert.Equal(t, "INR", got.Base)
	})

	t.Run("broken cache falls back to the store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockExchangeRateReadStore(ctrl)
		cache := sharedmock.NewMockRateCache(ctrl)
		cache.EXPECT().Get(gomock.Any()).Return(nil, errors.New("connection refused"))
		store.EXPECT().Get(gomock.Any()).Return(table, nil)
		cache.EXPECT().Set(gomock.Any(), gomock.Any()).Return(errors.New("connection refused"))

		_, err := queries.NewExchangeRateQueries(store, cache).Get(ctx)

		assert.NoError(t, err)
	})

	t.Run("nothing stored yet", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockExchangeRateReadStore(ctrl)
		cache := sharedmock.NewMockRateCache(ctrl)
		cache.EXPECT().Get(gomock.Any()).Return(nil, shared.ErrCacheMiss)
		store.EXPECT().Get(gomock.Any()).Return(nil, notFound())

		_, err := queries.NewExchangeRateQueries(store, cache).Get(ctx)

		assert.ErrorIs(t, err, queries.ErrRatesUnavailable)
	})
}

func TestUserQueries(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	newQueries := func(t *testing.T) (queries.UserQueries, *queriesmock.MockUserReadStore, *queriesmock.MockCreditReadStore) {
		ctrl := gomock.NewController(t)
		users := queriesmock.NewMockUserReadStore(ctrl)
		credits := queriesmock.NewMockCreditReadStore(ctrl)
		return queries.NewUserQueries(users, credits, clock.NewMockClock(now)), users, credits
	}

	t.Run("credit expiry is computed against the clock", func(t *testing.T) {
		q, _, credits := newQueries(t)
		credits.EXPECT().FindByUserID(gomock.Any(), userID).Return(&queries.CreditView{
			UserID: userID, Amount: decimal.NewFromInt(500), ExpiryDate: now.Add(-time.Minute),
		}, nil)

		got, err := q.GetMyCredit(ctx, userID)

		require.NoError(t, err)
		assert.True(t, got.Expired)
	})

	t.Run("missing credit", func(t *testing.T) {
		q, _, credits := newQueries(t)
		credits.EXPECT().FindByID(gomock.Any(), gomock.Any()).Return(nil, notFound())

		_, err := q.GetCredit(ctx, uuid.New())

		assert.ErrorIs(t, err, queries.ErrCreditNotFound)
	})

	t.Run("inactive user", func(t *testing.T) {
		q, users, _ := newQueries(t)
		users.EXPECT().FindByID(gomock.Any(), userID).Return(&queries.UserView{ID: userID, IsActive: false}, nil)

		_, err := q.GetCurrentUser(ctx, userID)

		assert.ErrorIs(t, err, queries.ErrUserInactive)
	})
}

func TestCourseQueries(t *testing.T) {
	ctx := context.Background()

	t.Run("list wraps store results in a page", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockCourseReadStore(ctrl)
		p := queries.ListParams{Page: 2, Limit: 6, Fields: []string{"id", "name"}}
		views := []*queries.CourseView{{ID: uuid.New(), Name: "Go"}}
		store.EXPECT().List(gomock.Any(), p, false).Return(views, int64(7), nil)

		page, err := queries.NewCourseQueries(store).List(ctx, p, false)

		require.NoError(t, err)
		assert.Equal(t, 2, page.Page)
		assert.Equal(t, int64(7), page.Total)
		assert.Equal(t, []string{"id", "name"}, page.Fields)
		assert.Len(t, page.Items, 1)
	})

	t.Run("missing course", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockCourseReadStore(ctrl)
		store.EXPECT().FindByID(gomock.Any(), gomock.Any(), false).Return(nil, notFound())

		_, err := queries.NewCourseQueries(store).Get(ctx, uuid.New(), false)

		assert.ErrorIs(t, err, course.ErrCourseNotFound)
	})
}
