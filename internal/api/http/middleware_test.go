package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/employee-service/internal/auth"
	"github.com/spec-kit/employee-service/internal/domain"
	"github.com/spec-kit/employee-service/internal/observability"
	apperrors "github.com/spec-kit/employee-service/pkg/util"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	app := fiber.New()
	RegisterMiddlewares(app, zap.NewNop(), observability.NewMetrics(), 0)

	app.Get("/conflict", func(*fiber.Ctx) error {
		return apperrors.NewConflict("username already taken", map[string]any{"username": "alice"})
	})
	app.Get("/invalid-credentials", func(*fiber.Ctx) error {
		return apperrors.NewInvalidCredentials()
	})
	app.Get("/not-found", func(*fiber.Ctx) error {
		return apperrors.NewNotFound("employee", nil)
	})
	app.Get("/invalid-variant", func(*fiber.Ctx) error {
		return apperrors.NewInvalidEmployeeType("intern")
	})
	app.Get("/fiber-error", func(*fiber.Ctx) error {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	})
	app.Get("/panic", func(*fiber.Ctx) error {
		panic("boom")
	})
	return app
}

func doRequest(t *testing.T, app *fiber.App, path string) (*http.Response, map[string]any) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil))
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp, body
}

func errorCode(t *testing.T, body map[string]any) string {
	t.Helper()
	errObj, ok := body["error"].(map[string]any)
	require.True(t, ok, "missing error object: %v", body)
	code, _ := errObj["code"].(string)
	return code
}

func TestErrorMiddleware_StatusMapping(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)

	cases := []struct {
		path   string
		status int
		code   string
	}{
		{"/conflict", http.StatusConflict, "CONFLICT"},
		{"/invalid-credentials", http.StatusUnauthorized, "INVALID_CREDENTIALS"},
		{"/not-found", http.StatusNotFound, "NOT_FOUND"},
		{"/invalid-variant", http.StatusBadRequest, "INVALID_EMPLOYEE_TYPE"},
		{"/fiber-error", http.StatusBadRequest, "BAD_REQUEST"},
	}

	for _, tc := range cases {
		resp, body := doRequest(t, app, tc.path)
		require.Equal(t, tc.status, resp.StatusCode, tc.path)
		require.Equal(t, tc.code, errorCode(t, body), tc.path)
	}
}

func TestErrorMiddleware_PanicRecovery(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)

	resp, body := doRequest(t, app, "/panic")
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	require.Equal(t, "INTERNAL_ERROR", errorCode(t, body))
}

type deadlineCapturingResolver struct {
	hadDeadline bool
}

func (r *deadlineCapturingResolver) ResolveIdentity(ctx context.Context, _ string) (*domain.User, error) {
	_, r.hadDeadline = ctx.Deadline()
	return &domain.User{Username: "alice"}, nil
}

func TestRequestTimeout_ReachesProtectedHandlers(t *testing.T) {
	t.Parallel()

	resolver := &deadlineCapturingResolver{}

	app := fiber.New()
	RegisterMiddlewares(app, zap.NewNop(), observability.NewMetrics(), 5*time.Second)

	protected := app.Group("/protected", auth.NewMiddleware(resolver).Handle)
	protected.Get("/", func(c *fiber.Ctx) error {
		if _, ok := c.UserContext().Deadline(); !ok {
			return apperrors.NewInternalError(nil)
		}
		return c.JSON(fiber.Map{"data": fiber.Map{"status": "ok"}})
	})

	req := httptest.NewRequest(http.MethodGet, "/protected/", nil)
	req.Header.Set("Authorization", "Bearer some-token")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.True(t, resolver.hadDeadline, "configured timeout did not reach the identity resolver")
}

func TestErrorMiddleware_ConflictDetailsIncluded(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)

	_, body := doRequest(t, app, "/conflict")
	errObj := body["error"].(map[string]any)
	details, ok := errObj["details"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "alice", details["username"])
}
