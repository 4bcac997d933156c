//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	nethttptest "net/http/httptest"
	"testing"

	"course-checkout/internal/domain/user"
	"course-checkout/internal/handler/middleware"
	"course-checkout/tests/common/httptest"
	usecasemock "course-checkout/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthMiddlewareTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockCtrl      *gomock.Controller
	mockValidator *usecasemock.MockTokenValidator
}

func (s *AuthMiddlewareTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockValidator = usecasemock.NewMockTokenValidator(s.mockCtrl)

	auth := middleware.NewAuthMiddleware(s.mockValidator)
	whoami := func(c *gin.Context) {
		id, _ := middleware.GetUserID(c)
		role, _ := middleware.GetUserRole(c)
		c.JSON(http.StatusOK, gin.H{"id": id.String(), "role": string(role)})
	}
	s.router.GET("/me", auth.RequireAuth(), whoami)
	s.router.GET("/admin", auth.RequireAuth(), auth.RequireRoleAtLeast(user.RoleAdmin), whoami)
	s.router.POST("/jobs/run", middleware.RequireJobToken("job-secret"), func(c *gin.Context) { c.Status(http.StatusNoContent) })
	s.router.POST("/jobs/unset", middleware.RequireJobToken(""), func(c *gin.Context) { c.Status(http.StatusNoContent) })
}

func (s *AuthMiddlewareTestSuite) SetupSubTest() {
	s.SetupTest()
}

func (s *AuthMiddlewareTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareTestSuite))
}

func (s *AuthMiddlewareTestSuite) TestRequireAuth() {
	userID := uuid.New()

	s.Run("success: sets user id and role", func() {
		s.mockValidator.EXPECT().ValidateToken(gomock.Any(), "good-token").Return(userID, user.RoleManager, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/me", nil, "good-token")

		var body map[string]string
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(userID.String(), body["id"])
		s.Equal("manager", body["role"])
	})

	s.Run("success: token from the cookie", func() {
		s.mockValidator.EXPECT().ValidateToken(gomock.Any(), "cookie-token").Return(userID, user.RoleUser, nil)

		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodGet, "/me", nil,
			[]*http.Cookie{{Name: "jwt", Value: "cookie-token"}}, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 401 without a token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/me", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid Token")
	})

	s.Run("error: 401 when validation fails", func() {
		s.mockValidator.EXPECT().ValidateToken(gomock.Any(), "stale-token").
			Return(uuid.Nil, user.Role(""), errors.New("token issued before password change"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/me", nil, "stale-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid Token")
	})
}

func (s *AuthMiddlewareTestSuite) TestRequireRoleAtLeast() {
	testCases := []struct {
		role       user.Role
		expectCode int
	}{
		{role: user.RoleUser, expectCode: http.StatusForbidden},
		{role: user.RoleManager, expectCode: http.StatusForbidden},
		{role: user.RoleAdmin, expectCode: http.StatusOK},
		{role: user.RoleSuperAdmin, expectCode: http.StatusOK},
	}

	for _, tc := range testCases {
		s.Run(string(tc.role), func() {
			s.mockValidator.EXPECT().ValidateToken(gomock.Any(), "token").Return(uuid.New(), tc.role, nil)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin", nil, "token")
			if tc.expectCode == http.StatusOK {
				httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
			} else {
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "permission")
			}
		})
	}
}

func (s *AuthMiddlewareTestSuite) TestRequireJobToken() {
	post := func(path, token string) int {
		req := nethttptest.NewRequest(http.MethodPost, path, nil)
		if token != "" {
			req.Header.Set(middleware.JobTokenHeader, token)
		}
		rec := nethttptest.NewRecorder()
		s.router.ServeHTTP(rec, req)
		return rec.Code
	}

	s.Equal(http.StatusNoContent, post("/jobs/run", "job-secret"))
	s.Equal(http.StatusUnauthorized, post("/jobs/run", "wrong"))
	s.Equal(http.StatusUnauthorized, post("/jobs/run", ""))
	s.Equal(http.StatusUnauthorized, post("/jobs/unset", ""))
}
