//go:build e2e

package catalog_test

import (
	"context"
	"net/http"
	nethttptest "net/http/httptest"
	"testing"

	"course-checkout/internal/domain/user"
	"course-checkout/internal/handler/middleware"
	"course-checkout/tests/common/authtest"
	"course-checkout/tests/common/dbtest"
	"course-checkout/tests/common/httptest"
	"course-checkout/tests/e2e"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type catalogSuite struct {
	e2e.SharedSuite
}

func TestCatalogSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(catalogSuite))
}

type courseList struct {
	Status            string `json:"status"`
	Page              int    `json:"page"`
	ResultsInThisPage int    `json:"resultsInThisPage"`
	TotalDocuments    int64  `json:"totalDocuments"`
	Data              struct {
		Courses []map[string]any `json:"courses"`
	} `json:"data"`
}

func (s *catalogSuite) TestListCourses() {
	seed := func(t *testing.T) {
		for i, price := range []int64{100, 200, 300, 400, 500, 600, 700} {
			dbtest.CreateTestCourse(t, s.DB, "Course "+string(rune('A'+i)), decimal.NewFromInt(price))
		}
	}

	tests := []struct {
		name      string
		query     string
		wantCount int
		wantTotal int64
		check     func(t *testing.T, res courseList)
	}{
		{name: "default page size", query: "", wantCount: 6, wantTotal: 7},
		{name: "second page", query: "?page=2", wantCount: 1, wantTotal: 7},
		{name: "price range", query: "?price[gte]=300&price[lt]=600", wantCount: 3, wantTotal: 3},
		{
			name:      "sorted ascending with projection",
			query:     "?sort=price&fields=name,price&limit=2",
			wantCount: 2,
			wantTotal: 7,
			check: func(t *testing.T, res courseList) {
				first := res.Data.Courses[0]
				assert.Equal(t, "Course A", first["name"])
				assert.Contains(t, first, "id")
				assert.NotContains(t, first, "slug")
			},
		},
		{name: "unknown filter is ignored", query: "?secret=1", wantCount: 6, wantTotal: 7},
		{name: "empty result is still success", query: "?price[gt]=10000", wantCount: 0, wantTotal: 0},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()
			seed(t)

			w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/courses"+tt.query, nil, "")
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())

			var res courseList
			require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
			assert.Equal(t, "success", res.Status)
			assert.Equal(t, tt.wantCount, res.ResultsInThisPage)
			assert.Len(t, res.Data.Courses, tt.wantCount)
			assert.Equal(t, tt.wantTotal, res.TotalDocuments)
			if tt.check != nil {
				tt.check(t, res)
			}
		})
	}

	s.Run("invalid filter value", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/courses?price[gte]=cheap", nil, "")
		assert.Equal(s.T(), http.StatusBadRequest, w.Code, w.Body.String())
	})
}

func (s *catalogSuite) TestManageCourses() {
	s.Run("admin creates and soft deletes", func() {
		t := s.T()
		_, token := authtest.CreateAndLogin(t, s.DB, s.Router, "admin@example.com", string(user.RoleAdmin))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/courses", map[string]any{
			"name":        "Distributed Systems",
			"price":       "1500",
			"isPublished": true,
		}, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created struct {
			Data struct {
				Course struct {
					ID string `json:"id"`
				} `json:"course"`
			} `json:"data"`
		}
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
		courseID := created.Data.Course.ID
		assert.Equal(t, "/api/courses/"+courseID, w.Header().Get("Location"))

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, "/api/courses/"+courseID, nil, token)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/courses/"+courseID, nil, "")
		assert.Equal(t, http.StatusNotFound, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/admin/courses/"+courseID+"?includeInactive=true", nil, token)
		assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
	})

	s.Run("regular users cannot create", func() {
		t := s.T()
		_, token := authtest.CreateAndLogin(t, s.DB, s.Router, "user@example.com", string(user.RoleUser))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/courses", map[string]any{
			"name":  "Nope",
			"price": "10",
		}, token)
		assert.Equal(t, http.StatusForbidden, w.Code, w.Body.String())
	})
}

func (s *catalogSuite) TestCoupons() {
	s.Run("duplicate code", func() {
		t := s.T()
		_, token := authtest.CreateAndLogin(t, s.DB, s.Router, "admin@example.com", string(user.RoleAdmin))
		body := map[string]any{
			"code":               "WELCOME",
			"discountPercentage": "15",
			"maxUseTimes":        10,
			"startDate":          "2026-01-01T00:00:00Z",
			"expiryDate":         "2030-01-01T00:00:00Z",
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/coupons", body, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/coupons", body, token)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Duplicate Entry Found")
	})
}

func (s *catalogSuite) TestReviews() {
	s.Run("approval recomputes the rating", func() {
		t := s.T()
		ctx := context.Background()
		courseID := dbtest.CreateTestCourse(t, s.DB, "Testing in Go", decimal.NewFromInt(300))
		_, adminToken := authtest.CreateAndLogin(t, s.DB, s.Router, "admin@example.com", string(user.RoleAdmin))

		var reviewIDs []string
		for _, r := range []struct {
			email  string
			rating int
		}{{"a@example.com", 5}, {"b@example.com", 4}} {
			userID, token := authtest.CreateAndLogin(t, s.DB, s.Router, r.email, string(user.RoleUser))
			dbtest.CreateTestEnrollment(t, s.DB, userID, courseID)

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/reviews", map[string]any{
				"courseId": courseID,
				"rating":   r.rating,
				"comment":  "solid material",
			}, token)
			require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
			var created struct {
				ID string `json:"id"`
			}
			require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
			reviewIDs = append(reviewIDs, created.ID)
		}

		for _, id := range reviewIDs {
			w := httptest.PerformRequest(t, s.Router, http.MethodPatch, "/api/reviews/"+id+"/approve",
				map[string]any{"approved": true}, adminToken)
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		}

		var rating decimal.Decimal
		require.NoError(t, s.DB.QueryRow(ctx, "SELECT rating FROM courses WHERE id = $1", courseID).Scan(&rating))
		assert.True(t, decimal.RequireFromString("4.5").Equal(rating), rating.String())

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/courses/"+courseID.String()+"/reviews", nil, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Contains(t, w.Body.String(), `"totalDocuments":2`)
	})

	s.Run("not enrolled", func() {
		t := s.T()
		courseID := dbtest.CreateTestCourse(t, s.DB, "Unbought", decimal.NewFromInt(300))
		_, token := authtest.CreateAndLogin(t, s.DB, s.Router, "c@example.com", string(user.RoleUser))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/reviews", map[string]any{
			"courseId": courseID,
			"rating":   3,
			"comment":  "never took it",
		}, token)
		assert.Equal(t, http.StatusForbidden, w.Code, w.Body.String())
	})
}

func (s *catalogSuite) TestJobs() {
	s.Run("job token is required", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/jobs/discount-window", nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Invalid Token")
	})

	s.Run("discount window applies open discounts", func() {
		t := s.T()
		courseID := dbtest.CreateTestCourse(t, s.DB, "Discounted", decimal.NewFromInt(1000))
		_, err := s.DB.Exec(context.Background(), `UPDATE courses SET discount_amount = 200,
			discount_starts_at = now() - interval '1 hour', discount_ends_at = now() + interval '1 day' WHERE id = $1`, courseID)
		require.NoError(t, err)

		w := s.postJob(t, "/api/jobs/discount-window")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Contains(t, w.Body.String(), `"updatedCoursesCount":1`)

		var price decimal.Decimal
		var applied bool
		require.NoError(t, s.DB.QueryRow(context.Background(),
			"SELECT price, discount_applied FROM courses WHERE id = $1", courseID).Scan(&price, &applied))
		assert.True(t, applied)
		assert.True(t, decimal.NewFromInt(800).Equal(price), price.String())

		// a second run finds nothing to do
		w = s.postJob(t, "/api/jobs/discount-window")
		assert.Contains(t, w.Body.String(), `"updatedCoursesCount":0`)
	})

	s.Run("exchange rates are unavailable before the first refresh", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/exchange-rates", nil, "")
		assert.Equal(s.T(), http.StatusNotFound, w.Code, w.Body.String())
	})
}

func (s *catalogSuite) postJob(t *testing.T, path string) *nethttptest.ResponseRecorder {
	t.Helper()
	return httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, path, nil,
		map[string]string{middleware.JobTokenHeader: s.Config.Jobs.Token})
}
