package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doGated(t *testing.T, gate *Gate, required Permission, authHeader string) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/movies", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	h := gate.Require(required)(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, h(c))
	return rec, called
}

func TestRequire_AllowsAndExposesSubject(t *testing.T) {
	gate, key := newTestGate(t)
	token := signToken(t, key, validClaims([]string{"get:movies"}))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/movies", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := gate.Require(PermGetMovies)(func(c echo.Context) error {
		assert.Equal(t, "user-1", c.Get("user_id"))
		require.NotNil(t, ClaimsFrom(c))
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, h(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequire_RejectsBeforeHandler(t *testing.T) {
	gate, key := newTestGate(t)

	expired := validClaims([]string{"get:movies"})
	expired["exp"] = time.Now().Add(-time.Minute).Unix()

	cases := []struct {
		name   string
		header string
		status int
	}{
		{"missing credential", "", http.StatusUnauthorized},
		{"malformed credential", "Bearer nope", http.StatusUnauthorized},
		{"expired", "Bearer " + signToken(t, key, expired), http.StatusUnauthorized},
		{"insufficient scope", "Bearer " + signToken(t, key, validClaims([]string{"get:actors"})), http.StatusForbidden},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec, called := doGated(t, gate, PermGetMovies, tc.header)
			assert.False(t, called, "handler must not run on %s", tc.name)
			assert.Equal(t, tc.status, rec.Code)
		})
	}
}
