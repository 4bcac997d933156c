//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"course-checkout/internal/domain/course"
	"course-checkout/internal/domain/user"
	"course-checkout/internal/handler/api"
	"course-checkout/internal/usecase/commands"
	"course-checkout/internal/usecase/queries"
	"course-checkout/tests/common/httptest"
	commandsmock "course-checkout/tests/mock/commands"
	queriesmock "course-checkout/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CartHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCartCommands
	mockQueries  *queriesmock.MockCartQueries
	userID       uuid.UUID
}

func (s *CartHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCartCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockCartQueries(s.mockCtrl)
	h := api.NewCartHandler(s.mockCommands, s.mockQueries)
	s.userID = uuid.New()

	auth := fakeAuth(s.userID, user.RoleUser)
	s.router.GET("/users/me/cart", auth, h.Get)
	s.router.POST("/users/me/cart", auth, h.Add)
	s.router.DELETE("/users/me/cart", auth, h.Remove)
}

func (s *CartHandlerTestSuite) SetupSubTest() {
	s.SetupTest()
}

func (s *CartHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCartHandlerSuite(t *testing.T) {
	suite.Run(t, new(CartHandlerTestSuite))
}

func (s *CartHandlerTestSuite) TestGet() {
	s.Run("success: lists the caller's items", func() {
		items := []*queries.CartItemView{{
			CourseID:   uuid.New(),
			CourseName: "Go Fundamentals",
			Slug:       "go-fundamentals",
			Price:      decimal.RequireFromString("49.99"),
			AddedAt:    time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		}}
		s.mockQueries.EXPECT().GetMyCart(gomock.Any(), s.userID).Return(items, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/users/me/cart", nil, "bearer-token")

		var body struct {
			Data struct {
				Cart []map[string]any `json:"cart"`
			} `json:"data"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body.Data.Cart, 1)
		s.Equal("go-fundamentals", body.Data.Cart[0]["slug"])
	})

	s.Run("error: 401 without a token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/users/me/cart", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid Token")
	})
}

func (s *CartHandlerTestSuite) TestAdd() {
	courseID := uuid.New()
	reqBody := map[string]any{"courseId": courseID.String()}

	testCases := []struct {
		name    string
		added   bool
		message string
	}{
		{name: "new item", added: true, message: "course - " + courseID.String() + " added to cart"},
		{name: "item already present", added: false, message: "course already in cart"},
	}
	for _, tc := range testCases {
		s.Run("success: "+tc.name, func() {
			s.mockCommands.EXPECT().Add(gomock.Any(), s.userID, courseID).Return(tc.added, nil)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/users/me/cart", reqBody, "bearer-token")

			var body map[string]string
			httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
			s.Equal(tc.message, body["message"])
		})
	}

	s.Run("error: 404 for an unknown course", func() {
		s.mockCommands.EXPECT().Add(gomock.Any(), s.userID, courseID).Return(false, course.ErrCourseNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/users/me/cart", reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "course not found")
	})

	s.Run("error: 400 on malformed courseId", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/users/me/cart", map[string]any{"courseId": "abc"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}

func (s *CartHandlerTestSuite) TestRemove() {
	courseID := uuid.New()
	reqBody := map[string]any{"courseId": courseID.String()}

	s.Run("success: removes the item", func() {
		s.mockCommands.EXPECT().Remove(gomock.Any(), s.userID, courseID).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/users/me/cart", reqBody, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 404 when the course is not in the cart", func() {
		s.mockCommands.EXPECT().Remove(gomock.Any(), s.userID, courseID).Return(commands.ErrNotInCart)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/users/me/cart", reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "course not in cart")
	})
}
