//go:build unit

package queries_test

import (
	"math"
	"net/url"
	"strconv"
	"testing"
	"time"

	"course-checkout/internal/pkg/errs"
	"course-checkout/internal/usecase/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseListParams(t *testing.T) {
	decimalCmp := cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) })

	tests := []struct {
		name  string
		query string
		want  queries.ListParams
	}{
		{
			name:  "defaults",
			query: "",
			want: queries.ListParams{
				Page: 1, Limit: 6,
				Sort: []queries.SortField{{Column: "created_at", Desc: true}},
			},
		},
		{
			name:  "paging is clamped",
			query: "page=0&limit=1000",
			want: queries.ListParams{
				Page: 1, Limit: 100,
				Sort: []queries.SortField{{Column: "created_at", Desc: true}},
			},
		},
		{
			name:  "sort keeps whitelisted keys in order",
			query: "sort=-price,secret,name",
			want: queries.ListParams{
				Page: 1, Limit: 6,
				Sort: []queries.SortField{{Column: "price", Desc: true}, {Column: "name"}},
			},
		},
		{
			name:  "fields always include id",
			query: "fields=name,price,name,password",
			want: queries.ListParams{
				Page: 1, Limit: 6,
				Fields: []string{"id", "name", "price"},
				Sort:   []queries.SortField{{Column: "created_at", Desc: true}},
			},
		},
		{
			name:  "range and equality filters",
			query: "price[gte]=100&price[lt]=500&category=backend&isPublished=true",
			want: queries.ListParams{
				Page: 1, Limit: 6,
				Sort: []queries.SortField{{Column: "created_at", Desc: true}},
				Filters: []queries.Filter{
					{Column: "category", Op: queries.OpEq, Value: "backend"},
					{Column: "is_published", Op: queries.OpEq, Value: true},
					{Column: "price", Op: queries.OpGte, Value: decimal.NewFromInt(100)},
					{Column: "price", Op: queries.OpLt, Value: decimal.NewFromInt(500)},
				},
			},
		},
		{
			name:  "unknown fields, operators and reserved params are ignored",
			query: "password=x&price[ne]=3&description=go&currency=USD&includeInactive=true",
			want: queries.ListParams{
				Page: 1, Limit: 6,
				Sort: []queries.SortField{{Column: "created_at", Desc: true}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := url.ParseQuery(tt.query)
			require.NoError(t, err)

			got, err := queries.ParseListParams(values, queries.CourseResource)

			require.NoError(t, err)
			assert.Empty(t, cmp.Diff(tt.want, got, decimalCmp))
		})
	}
}

func TestParseListParamsTypedValues(t *testing.T) {
	values := url.Values{
		"createdAt[gte]": {"2024-06-01"},
		"totalSold[gt]":  {"3"},
	}

	got, err := queries.ParseListParams(values, queries.CourseResource)

	require.NoError(t, err)
	require.Len(t, got.Filters, 2)
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), got.Filters[0].Value)
	assert.Equal(t, int64(3), got.Filters[1].Value)
}

func TestParseListParamsInvalidValue(t *testing.T) {
	for _, q := range []string{"price[gte]=cheap", "isPublished=maybe", "createdAt=yesterday", "totalSold=1.5"} {
		t.Run(q, func(t *testing.T) {
			values, err := url.ParseQuery(q)
			require.NoError(t, err)

			_, err = queries.ParseListParams(values, queries.CourseResource)

			assert.ErrorIs(t, err, queries.ErrInvalidFilterValue)
			assert.True(t, errs.Is(err, errs.ErrValidation))
		})
	}
}

func TestParseListParamsPageOutOfRange(t *testing.T) {
	testCases := []struct {
		name    string
		query   string
		wantErr bool
	}{
		{name: "last page within bound", query: "limit=1&page=" + strconv.Itoa(queries.MaxOffset+1)},
		{name: "one past the bound", query: "limit=1&page=" + strconv.Itoa(queries.MaxOffset+2), wantErr: true},
		{name: "huge page", query: "limit=100&page=" + strconv.Itoa(math.MaxInt), wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			values, err := url.ParseQuery(tc.query)
			require.NoError(t, err)

			got, err := queries.ParseListParams(values, queries.CourseResource)

			if tc.wantErr {
				assert.ErrorIs(t, err, queries.ErrPageOutOfRange)
				assert.True(t, errs.Is(err, errs.ErrValidation))
				return
			}
			require.NoError(t, err)
			assert.GreaterOrEqual(t, got.Offset(), 0)
		})
	}
}

func TestListParamsOffset(t *testing.T) {
	assert.Equal(t, 0, queries.ListParams{Page: 1, Limit: 6}.Offset())
	assert.Equal(t, 12, queries.ListParams{Page: 3, Limit: 6}.Offset())
}

func TestProject(t *testing.T) {
	id := uuid.New()
	items := []*queries.CourseView{{ID: id, Name: "Go", Price: decimal.NewFromInt(10), Category: "backend"}}

	t.Run("no projection returns items as is", func(t *testing.T) {
		got, err := queries.Project(items, nil)

		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Same(t, items[0], got[0])
	})

	t.Run("projection keeps only requested keys", func(t *testing.T) {
		got, err := queries.Project(items, []string{"id", "name"})

		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, map[string]any{"id": id.String(), "name": "Go"}, got[0])
	})
}
