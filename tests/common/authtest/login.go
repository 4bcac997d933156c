//go:build unit || e2e

package authtest

import (
	"encoding/json"
	"net/http"
	"testing"

	"course-checkout/internal/handler/dto/request"
	"course-checkout/internal/handler/dto/response"
	"course-checkout/internal/pkg/cookie"
	"course-checkout/tests/common/dbtest"
	"course-checkout/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// LoginUser logs in through the API and returns the access token. The token
// in the body must match the one set as a cookie.
func LoginUser(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login",
		request.LoginRequest{Email: email, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var res response.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	require.NotEmpty(t, res.Token)

	jwtCookie := httptest.ExtractCookie(w, cookie.AccessTokenCookieName)
	require.NotNil(t, jwtCookie, "login did not set the %s cookie", cookie.AccessTokenCookieName)
	require.Equal(t, res.Token, jwtCookie.Value)

	return res.Token
}

// CreateAndLogin seeds a verified user with dbtest.DefaultPassword and logs in.
func CreateAndLogin(t *testing.T, db dbtest.DBLike, router *gin.Engine, email, role string) (uuid.UUID, string) {
	t.Helper()
	id := dbtest.CreateTestUser(t, db, email, role)
	return id, LoginUser(t, router, email, dbtest.DefaultPassword)
}
