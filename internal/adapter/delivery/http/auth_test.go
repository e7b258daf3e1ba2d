package http

import (
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/vadimbarashkov/utmka/internal/session"
)

func (suite *HandlersTestSuite) TestBearerToken() {
	tests := map[string]string{
		"":                 "",
		"Basic abc":        "",
		"Bearer":           "",
		"Bearer abc":       "abc",
		"bearer  abc ":     "abc",
		"BEARER token.x.y": "token.x.y",
	}

	for header, want := range tests {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		if header != "" {
			r.Header.Set("Authorization", header)
		}
		suite.Equal(want, bearerToken(r), header)
	}
}

func (suite *HandlersTestSuite) TestLogin() {
	const path = "/api/v1/auth/login"

	suite.Run("validation error", func() {
		suite.e.POST(path).
			WithJSON(map[string]any{"email": "nope"}).
			Expect().
			Status(http.StatusBadRequest).
			JSON().Object().
			Value("errors").Array().Value(0).Object().
			HasValue("field", "email")
	})

	suite.Run("success", func() {
		expiresAt := time.Date(2024, time.March, 2, 12, 0, 0, 0, time.UTC)
		suite.sessionManagerMock.
			On("Login", "user@example.com").
			Once().
			Return("signed-token", &session.Session{Email: "user@example.com", ExpiresAt: expiresAt}, nil)

		resp := suite.e.POST(path).
			WithJSON(map[string]any{"email": "user@example.com"}).
			Expect().
			Status(http.StatusOK).
			JSON().Object()

		resp.HasValue("token", "signed-token")
		resp.HasValue("expires_at", "2024-03-02T12:00:00Z")
	})
}

func (suite *HandlersTestSuite) TestLogout() {
	const path = "/api/v1/auth/logout"

	suite.Run("unauthorized", func() {
		suite.sessionManagerMock.
			On("Authenticate", "").
			Once().
			Return(nil, session.ErrUnauthorized)

		suite.e.POST(path).
			Expect().
			Status(http.StatusUnauthorized)
	})

	suite.Run("success", func() {
		suite.authorize()
		suite.sessionManagerMock.
			On("Logout", validToken).
			Once().
			Return(nil)

		suite.e.POST(path).
			WithHeader("Authorization", "Bearer "+validToken).
			Expect().
			Status(http.StatusNoContent)
	})
}

func (suite *HandlersTestSuite) TestCurrentSession() {
	const path = "/api/v1/auth/session"

	suite.Run("anonymous", func() {
		resp := suite.e.GET(path).
			Expect().
			Status(http.StatusOK).
			JSON().Object()

		resp.HasValue("logged_in", false)
		resp.NotContainsKey("email")
	})

	suite.Run("invalid token", func() {
		suite.sessionManagerMock.
			On("Authenticate", "stale").
			Once().
			Return(nil, session.ErrUnauthorized)

		suite.e.GET(path).
			WithHeader("Authorization", "Bearer stale").
			Expect().
			Status(http.StatusOK).
			JSON().Object().
			HasValue("logged_in", false)
	})

	suite.Run("logged in", func() {
		suite.authorize()

		suite.e.GET(path).
			WithHeader("Authorization", "Bearer "+validToken).
			Expect().
			Status(http.StatusOK).
			JSON().Object().
			HasValue("logged_in", true).
			HasValue("email", "user@example.com")
	})
}
