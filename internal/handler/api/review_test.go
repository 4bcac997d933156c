//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"course-checkout/internal/domain/review"
	"course-checkout/internal/domain/user"
	"course-checkout/internal/handler/api"
	"course-checkout/internal/usecase/commands"
	"course-checkout/tests/common/httptest"
	"course-checkout/tests/common/testutil"
	commandsmock "course-checkout/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// fakeAuth stands in for the JWT middleware: any bearer header authenticates as userID.
func fakeAuth(userID uuid.UUID, role user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Invalid Token"}})
			return
		}
		c.Set("user_id", userID)
		c.Set("user_role", role)
		c.Next()
	}
}

type ReviewHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReviewCommands
	handler      *api.ReviewHandler
	userID       uuid.UUID
}

func (s *ReviewHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReviewCommands(s.mockCtrl)
	s.handler = api.NewReviewHandler(s.mockCommands)
	s.userID = uuid.New()

	auth := fakeAuth(s.userID, user.RoleUser)
	s.router.POST("/reviews", auth, s.handler.Create)
	s.router.PATCH("/reviews/:id/approve", auth, s.handler.Approve)
}

func (s *ReviewHandlerTestSuite) SetupSubTest() {
	s.SetupTest()
}

func (s *ReviewHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReviewHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReviewHandlerTestSuite))
}

type testCaseReview struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

func (s *ReviewHandlerTestSuite) TestCreate() {
	url := "/reviews"
	courseID := uuid.New()
	reviewID := uuid.New()
	reqBody := map[string]any{
		"courseId": courseID.String(),
		"rating":   4,
		"comment":  "Clear explanations and good exercises",
	}

	s.Run("success: returns 201 with the new id", func() {
		s.mockCommands.EXPECT().
			Create(gomock.Any(), commands.CreateReviewRequest{
				CourseID: courseID,
				Rating:   4,
				Comment:  "Clear explanations and good exercises",
			}, s.userID).
			Return(reviewID, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body map[string]string
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal("success", body["status"])
		s.Equal(reviewID.String(), body["id"])
	})

	bound := []testCaseReview{
		{name: "rating boundary OK (1)", mutate: testutil.Field("rating", 1), expectCode: http.StatusCreated},
		{name: "rating boundary OK (5)", mutate: testutil.Field("rating", 5), expectCode: http.StatusCreated},
		{name: "rating boundary invalid (0)", mutate: testutil.Field("rating", 0), expectCode: http.StatusBadRequest},
		{name: "rating boundary invalid (6)", mutate: testutil.Field("rating", 6), expectCode: http.StatusBadRequest},
		{name: "comment length OK (1000 chars)", mutate: testutil.Field("comment", strings.Repeat("a", 1000)), expectCode: http.StatusCreated},
		{name: "comment length invalid (1001 chars)", mutate: testutil.Field("comment", strings.Repeat("a", 1001)), expectCode: http.StatusBadRequest},
	}
	missing := []testCaseReview{
		{name: "missing field: courseId", mutate: testutil.Field("courseId", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: rating", mutate: testutil.Field("rating", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: comment", mutate: testutil.Field("comment", nil), expectCode: http.StatusBadRequest},
		{name: "malformed courseId", mutate: testutil.Field("courseId", "not-a-uuid"), expectCode: http.StatusBadRequest},
	}

	for _, group := range [][]testCaseReview{bound, missing} {
		for _, tc := range group {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				if tc.expectCode == http.StatusCreated {
					s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), s.userID).Return(reviewID, nil)
				}

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				if tc.expectCode == http.StatusCreated {
					httptest.AssertSuccessResponse(s.T(), rec, tc.expectCode, nil)
				} else {
					httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "Invalid request")
				}
			})
		}
	}

	s.Run("error: 401 when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid Token")
	})

	s.Run("error: maps usecase errors to statuses", func() {
		testCases := []struct {
			name           string
			err            error
			expectedStatus int
			expectedMsg    string
		}{
			{name: "not enrolled", err: review.ErrNotEnrolled, expectedStatus: http.StatusForbidden, expectedMsg: "only enrolled users"},
			{name: "already reviewed", err: review.ErrAlreadyReviewed, expectedStatus: http.StatusConflict, expectedMsg: "already reviewed"},
			{name: "invalid rating", err: review.ErrInvalidRating, expectedStatus: http.StatusBadRequest, expectedMsg: "rating must be"},
			{name: "unexpected failure", err: errors.New("database error"), expectedStatus: http.StatusInternalServerError, expectedMsg: "Something went wrong"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), s.userID).Return(uuid.Nil, tc.err)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *ReviewHandlerTestSuite) TestApprove() {
	reviewID := uuid.New()
	url := "/reviews/" + reviewID.String() + "/approve"

	s.Run("success: approves the review", func() {
		s.mockCommands.EXPECT().SetApproval(gomock.Any(), reviewID, true).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"approved": true}, "bearer-token")

		var body map[string]string
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("Review updated", body["message"])
	})

	s.Run("success: false is a valid value", func() {
		s.mockCommands.EXPECT().SetApproval(gomock.Any(), reviewID, false).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"approved": false}, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 when approved is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/reviews/abc/approve", map[string]any{"approved": true}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: 404 for an unknown review", func() {
		s.mockCommands.EXPECT().SetApproval(gomock.Any(), reviewID, true).Return(review.ErrReviewNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"approved": true}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "review not found")
	})
}
