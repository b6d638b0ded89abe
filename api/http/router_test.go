package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	nethttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apihttp "github.com/artem13815/scholarship/api/http"
	"github.com/artem13815/scholarship/api/http/handlers"
	"github.com/artem13815/scholarship/api/http/presenter"
	"github.com/artem13815/scholarship/pkg/auth"
	"github.com/artem13815/scholarship/pkg/catalog"
	"github.com/artem13815/scholarship/pkg/health"
	"github.com/artem13815/scholarship/pkg/matching"
	"github.com/artem13815/scholarship/pkg/recommend"
	"github.com/artem13815/scholarship/pkg/scholarship"
	"github.com/artem13815/scholarship/pkg/security/jwt"
)

const (
	secret = "router-test-secret"
	issuer = "scholarship-service"
)

type brokenRepo struct{ err error }

func (b brokenRepo) ListAll(context.Context) ([]scholarship.Scholarship, error) { return nil, b.err }
func (b brokenRepo) ReplaceAll(context.Context, []scholarship.Scholarship) error { return b.err }

type downChecker struct{}

func (downChecker) Name() string                { return "postgres" }
func (downChecker) Check(context.Context) error { return errors.New("connection refused") }

func newApp(repo scholarship.Repository, checkers ...health.Checker) *fiber.App {
	uc := recommend.NewService(repo, matching.NewScorer(matching.NewSeededSource(3)), catalog.MustLoad())
	gen := jwt.NewGenerator(secret, issuer, time.Hour)
	app := fiber.New()
	apihttp.Register(app, apihttp.Routes{
		Auth:        handlers.NewAuthHandler(auth.NewAuthService(auth.NewStaticAdmin("", ""), gen)),
		Health:      handlers.NewHealthHandler(health.NewService(checkers...), nil, 0),
		Scholarship: handlers.NewScholarshipHandler(uc, nil),
		AuthMW:      jwt.NewAuthMiddleware(secret, issuer),
		AdminMW:     jwt.RequireAdmin(),
	})
	return app
}

func do(t *testing.T, app *fiber.App, req *nethttp.Request) (int, []byte) {
	t.Helper()
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, body
}

func TestListScholarships(t *testing.T) {
	app := newApp(catalog.NewStatic(catalog.MustLoad()))

	code, body := do(t, app, httptest.NewRequest(nethttp.MethodGet, "/api/scholarships", nil))
	require.Equal(t, nethttp.StatusOK, code)
	var items []scholarship.Scholarship
	require.NoError(t, json.Unmarshal(body, &items))
	assert.Len(t, items, len(catalog.MustLoad()))
}

func TestListEmptyCatalogIsEmptyArray(t *testing.T) {
	app := newApp(catalog.NewStatic(nil))
	code, body := do(t, app, httptest.NewRequest(nethttp.MethodGet, "/api/scholarships", nil))
	require.Equal(t, nethttp.StatusOK, code)
	assert.JSONEq(t, `[]`, string(body))
}

func TestListRejectsUnknownFilter(t *testing.T) {
	app := newApp(catalog.NewStatic(nil))
	code, _ := do(t, app, httptest.NewRequest(nethttp.MethodGet, "/api/scholarships?amount=huge", nil))
	assert.Equal(t, nethttp.StatusBadRequest, code)
}

func TestListStoreFailure(t *testing.T) {
	app := newApp(brokenRepo{err: errors.New("db down")})
	code, body := do(t, app, httptest.NewRequest(nethttp.MethodGet, "/api/scholarships", nil))
	require.Equal(t, nethttp.StatusInternalServerError, code)

	var e presenter.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &e))
	assert.Equal(t, "Server error", e.Message)
	assert.Contains(t, e.Error, "db down")
}

func TestMatch(t *testing.T) {
	app := newApp(catalog.NewStatic(catalog.MustLoad()))
	payload, _ := json.Marshal(scholarship.Profile{
		FieldOfStudy:  "engineering",
		DesiredAmount: "large",
		Interests:     []string{"stem"},
	})
	req := httptest.NewRequest(nethttp.MethodPost, "/api/match", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	code, body := do(t, app, req)
	require.Equal(t, nethttp.StatusOK, code)
	var got []scholarship.Scored
	require.NoError(t, json.Unmarshal(body, &got))
	require.NotEmpty(t, got)
	for i, s := range got {
		assert.GreaterOrEqual(t, s.RelevanceScore, matching.MinRelevance)
		if i > 0 {
			assert.GreaterOrEqual(t, got[i-1].RelevanceScore, s.RelevanceScore)
		}
	}
}

func TestMatchBadJSON(t *testing.T) {
	app := newApp(catalog.NewStatic(nil))
	req := httptest.NewRequest(nethttp.MethodPost, "/api/match", bytes.NewReader([]byte("{")))
	req.Header.Set("Content-Type", "application/json")
	code, _ := do(t, app, req)
	assert.Equal(t, nethttp.StatusBadRequest, code)
}

func TestMatchStoreFailure(t *testing.T) {
	app := newApp(brokenRepo{err: errors.New("timeout")})
	req := httptest.NewRequest(nethttp.MethodPost, "/api/match", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	code, body := do(t, app, req)
	require.Equal(t, nethttp.StatusInternalServerError, code)
	assert.Contains(t, string(body), "Matching error")
}

func TestSeedRequiresAdmin(t *testing.T) {
	repo := catalog.NewStatic(nil)
	app := newApp(repo)

	code, _ := do(t, app, httptest.NewRequest(nethttp.MethodPost, "/api/admin/seed", nil))
	assert.Equal(t, nethttp.StatusUnauthorized, code)

	tok, err := jwt.NewGenerator(secret, issuer, time.Hour).
		Generate(context.Background(), auth.User{ID: uuid.New(), IsAdmin: true})
	require.NoError(t, err)
	req := httptest.NewRequest(nethttp.MethodPost, "/api/admin/seed", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	code, body := do(t, app, req)
	require.Equal(t, nethttp.StatusOK, code)
	assert.Contains(t, string(body), `"count"`)

	items, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, items, len(catalog.MustLoad()))
}

func TestHealthAndReady(t *testing.T) {
	code, _ := do(t, newApp(catalog.NewStatic(nil)), httptest.NewRequest(nethttp.MethodGet, "/api/health", nil))
	assert.Equal(t, nethttp.StatusOK, code)

	code, _ = do(t, newApp(catalog.NewStatic(nil)), httptest.NewRequest(nethttp.MethodGet, "/api/ready", nil))
	assert.Equal(t, nethttp.StatusOK, code)

	code, body := do(t, newApp(catalog.NewStatic(nil), downChecker{}), httptest.NewRequest(nethttp.MethodGet, "/api/ready", nil))
	assert.Equal(t, nethttp.StatusServiceUnavailable, code)
	assert.Contains(t, string(body), "postgres")
}
