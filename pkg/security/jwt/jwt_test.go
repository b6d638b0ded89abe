package jwt

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/scholarship/pkg/auth"
)

const (
	testSecret = "test-secret"
	testIssuer = "scholarship-service"
)

func adminToken(t *testing.T, ttl time.Duration, isAdmin bool) string {
	t.Helper()
	gen := NewGenerator(testSecret, testIssuer, ttl)
	tok, err := gen.Generate(context.Background(), auth.User{ID: uuid.New(), Email: "a@b.c", IsAdmin: isAdmin})
	require.NoError(t, err)
	return tok
}

func TestGenerateAndParse(t *testing.T) {
	tok := adminToken(t, time.Hour, true)
	claims, err := Parse(tok, []byte(testSecret))
	require.NoError(t, err)
	assert.True(t, claims.IsAdmin)
	assert.Equal(t, testIssuer, claims.Issuer)
	assert.Equal(t, "a@b.c", claims.Email)

	_, err = Parse(tok, []byte("other-secret"))
	assert.Error(t, err)
}

func TestParseRejectsExpired(t *testing.T) {
	tok := adminToken(t, -time.Minute, true)
	_, err := Parse(tok, []byte(testSecret))
	assert.Error(t, err)
}

func TestVerifyChecksIssuer(t *testing.T) {
	tok := adminToken(t, time.Hour, true)

	claims, err := NewGenerator(testSecret, testIssuer, 0).Verify(tok)
	require.NoError(t, err)
	assert.True(t, claims.IsAdmin)

	_, err = NewGenerator(testSecret, "someone-else", 0).Verify(tok)
	assert.ErrorIs(t, err, ErrWrongIssuer)

	_, err = NewGenerator(testSecret, "", 0).Verify(tok)
	assert.NoError(t, err, "empty issuer accepts any")

	_, err = NewGenerator("other-secret", testIssuer, 0).Verify(tok)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrWrongIssuer)
}

func newGuardedApp() *fiber.App {
	app := fiber.New()
	app.Get("/admin", NewAuthMiddleware(testSecret, testIssuer), RequireAdmin(), func(c *fiber.Ctx) error {
		return c.SendStatus(http.StatusNoContent)
	})
	return app
}

func TestMiddleware(t *testing.T) {
	app := newGuardedApp()
	cases := []struct {
		name   string
		header string
		want   int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"garbage", "Bearer nope", http.StatusUnauthorized},
		{"not admin", "Bearer " + adminToken(t, time.Hour, false), http.StatusForbidden},
		{"admin", "Bearer " + adminToken(t, time.Hour, true), http.StatusNoContent},
		{"admin without scheme", adminToken(t, time.Hour, true), http.StatusNoContent},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/admin", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tc.want, resp.StatusCode)
		})
	}
}

func TestMiddlewareChecksIssuer(t *testing.T) {
	gen := NewGenerator(testSecret, "someone-else", time.Hour)
	tok, err := gen.Generate(context.Background(), auth.User{ID: uuid.New(), IsAdmin: true})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	resp, err := newGuardedApp().Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
