//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"lendly/internal/handler/dto/request"
	"lendly/internal/handler/dto/response"
	"lendly/tests/common/authtest"
	"lendly/tests/common/dbtest"
	"lendly/tests/common/httptest"
	"lendly/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	loginURL    = "/api/auth/login"
	refreshURL  = "/api/auth/refresh"
	meURL       = "/api/auth/me"
	registerURL = "/api/users"
)

type AuthSuite struct {
	e2e.SharedSuite
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(AuthSuite))
}

func (s *AuthSuite) TestRegister() {
	s.Run("Normal case: a new account can be created", func() {
		t := s.T()

		reqBody := request.RegisterUserRequest{
			Name:     "Taro Yamada",
			Email:    "taro@example.com",
			Password: "password123",
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL, reqBody, "")
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var res response.UserResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
		require.Equal(t, "Taro Yamada", res.Name)
		require.Equal(t, "taro@example.com", res.Email)
		require.NotContains(t, w.Body.String(), "password")

		// The fresh account can log in right away
		token := authtest.LoginUser(t, s.Router, "taro@example.com", "password123")
		require.NotEmpty(t, token)
	})

	s.Run("A taken email address is rejected", func() {
		t := s.T()

		dbtest.CreateTestUser(t, s.DB, "Taro Yamada", "taken@example.com")

		reqBody := request.RegisterUserRequest{
			Name:     "Somebody Else",
			Email:    "taken@example.com",
			Password: "password123",
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL, reqBody, "")
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())
	})

	s.Run("A short password is rejected", func() {
		t := s.T()

		reqBody := request.RegisterUserRequest{
			Name:     "Taro Yamada",
			Email:    "short@example.com",
			Password: "pw",
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL, reqBody, "")
		require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	})
}

func (s *AuthSuite) TestLogin() {
	tests := []struct {
		name           string
		email          string
		password       string
		expectedStatus int
	}{
		{
			name:           "Normal case: valid credentials",
			email:          "taro@example.com",
			password:       "password123",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Unknown user",
			email:          "nobody@example.com",
			password:       "password123",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Wrong password",
			email:          "taro@example.com",
			password:       "wrongpassword",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Empty email",
			email:          "",
			password:       "password123",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Empty password",
			email:          "taro@example.com",
			password:       "",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			dbtest.CreateTestUser(t, s.DB, "Taro Yamada", "taro@example.com")

			reqBody := request.LoginRequest{Email: tt.email, Password: tt.password}
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, reqBody, "")
			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())

			if tt.expectedStatus == http.StatusOK {
				var res response.LoginResponse
				require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
				require.NotEmpty(t, res.AccessToken)
				require.NotEmpty(t, res.RefreshToken)
				require.Greater(t, res.ExpiresIn, int64(0))
			}
		})
	}
}

func (s *AuthSuite) TestRefresh() {
	s.Run("Normal case: a refresh token yields a new pair", func() {
		t := s.T()

		dbtest.CreateTestUser(t, s.DB, "Taro Yamada", "taro@example.com")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "taro@example.com", Password: "password123"}, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var login response.LoginResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &login))

		rw := httptest.PerformRequest(t, s.Router, http.MethodPost, refreshURL,
			request.RefreshTokenRequest{RefreshToken: login.RefreshToken}, "")
		require.Equal(t, http.StatusOK, rw.Code, rw.Body.String())

		var refreshed response.LoginResponse
		require.NoError(t, httptest.DecodeResponseBody(t, rw.Body, &refreshed))
		require.NotEmpty(t, refreshed.AccessToken)
		require.NotEmpty(t, refreshed.RefreshToken)
		require.Equal(t, login.UserID, refreshed.UserID)
	})

	s.Run("A garbage refresh token is rejected", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, refreshURL,
			request.RefreshTokenRequest{RefreshToken: "not-a-token"}, "")
		require.Equal(t, http.StatusUnauthorized, w.Code, w.Body.String())
	})

	s.Run("An empty refresh token is rejected", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, refreshURL,
			request.RefreshTokenRequest{}, "")
		require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	})
}

func (s *AuthSuite) TestMe() {
	s.Run("Normal case: the profile of the token holder is returned", func() {
		t := s.T()

		_, token := authtest.CreateAndLogin(t, s.DB, s.Router, "Hanako Suzuki", "hanako@example.com")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var res response.UserResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
		require.Equal(t, "Hanako Suzuki", res.Name)
		require.Equal(t, "hanako@example.com", res.Email)
		require.NotContains(t, w.Body.String(), "password")
	})

	s.Run("An invalid token is rejected", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, "invalid-token")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	s.Run("A missing token is rejected", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func (s *AuthSuite) TestProfileLifecycle() {
	s.Run("Normal case: update then delete the account", func() {
		t := s.T()

		_, token := authtest.CreateAndLogin(t, s.DB, s.Router, "Hanako Suzuki", "hanako@example.com")

		newName := "Hanako Tanaka"
		uw := httptest.PerformRequest(t, s.Router, http.MethodPatch, "/api/users/me",
			request.UpdateUserRequest{Name: &newName}, token)
		require.Equal(t, http.StatusOK, uw.Code, uw.Body.String())

		var updated response.UserResponse
		require.NoError(t, httptest.DecodeResponseBody(t, uw.Body, &updated))
		require.Equal(t, newName, updated.Name)
		require.Equal(t, "hanako@example.com", updated.Email)

		dw := httptest.PerformRequest(t, s.Router, http.MethodDelete, "/api/users/me", nil, token)
		require.Equal(t, http.StatusNoContent, dw.Code, dw.Body.String())

		// The token is still well-formed but the account is gone
		mw := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
		require.Equal(t, http.StatusNotFound, mw.Code, mw.Body.String())
	})

	s.Run("Changing email to a taken address is rejected", func() {
		t := s.T()

		dbtest.CreateTestUser(t, s.DB, "Taro Yamada", "taro@example.com")
		_, token := authtest.CreateAndLogin(t, s.DB, s.Router, "Hanako Suzuki", "hanako@example.com")

		takenEmail := "taro@example.com"
		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, "/api/users/me",
			request.UpdateUserRequest{Email: &takenEmail}, token)
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())
	})
}
