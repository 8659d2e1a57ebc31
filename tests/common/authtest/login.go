//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"lendly/internal/handler/dto/request"
	"lendly/internal/handler/dto/response"
	"lendly/tests/common/dbtest"
	"lendly/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func LoginUser(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login",
		request.LoginRequest{Email: email, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var res response.LoginResponse
	err := httptest.DecodeResponseBody(t, w.Body, &res)
	require.NoError(t, err)
	require.NotEmpty(t, res.AccessToken, "Access token missing in login response")

	return res.AccessToken
}

func CreateAndLogin(t *testing.T, db dbtest.DBLike, router *gin.Engine, name, email string) (uuid.UUID, string) {
	t.Helper()
	userID := dbtest.CreateTestUser(t, db, name, email)
	return userID, LoginUser(t, router, email, "password123")
}
