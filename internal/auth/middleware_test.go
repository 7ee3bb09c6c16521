package auth_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/distribution-api/internal/api/http"
	"github.com/spec-kit/distribution-api/internal/auth"
	"github.com/spec-kit/distribution-api/internal/observability"
)

func newGuardedApp(t *testing.T) (*fiber.App, *auth.TokenManager) {
	t.Helper()
	tokens, err := auth.NewTokenManager("guard-test-secret", time.Hour)
	require.NoError(t, err)
	guard := auth.NewGuard(tokens)

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, zap.NewNop(), observability.NewMetrics(), 0)

	app.Get("/protegido", guard.Handle, func(c *fiber.Ctx) error {
		principal, ok := auth.PrincipalFromContext(c)
		if !ok {
			return fiber.ErrInternalServerError
		}
		return c.JSON(fiber.Map{
			"dni":              principal.DNI,
			"cod_empleado":     principal.EmployeeCode,
			"es_administrador": principal.IsAdmin,
		})
	})
	app.Get("/admin", guard.Handle, auth.RequireAdmin(), func(c *fiber.Ctx) error {
		return c.SendStatus(http.StatusOK)
	})
	return app, tokens
}

func doGet(t *testing.T, app *fiber.App, path, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestGuardMissingHeader(t *testing.T) {
	app, _ := newGuardedApp(t)
	resp := doGet(t, app, "/protegido", "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestGuardMalformedHeader(t *testing.T) {
	app, _ := newGuardedApp(t)
	for _, header := range []string{"Bearer", "Token abc", "abc"} {
		resp := doGet(t, app, "/protegido", header)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "header %q", header)
	}
}

func TestGuardInvalidToken(t *testing.T) {
	app, _ := newGuardedApp(t)
	resp := doGet(t, app, "/protegido", "Bearer not.a.token")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestGuardValidToken(t *testing.T) {
	app, tokens := newGuardedApp(t)
	token, _, err := tokens.Generate(auth.Identity{DNI: "12345678", EmployeeCode: 42, IsAdmin: false})
	require.NoError(t, err)

	resp := doGet(t, app, "/protegido", "Bearer "+token)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "12345678", body["dni"])
	assert.Equal(t, float64(42), body["cod_empleado"])
	assert.Equal(t, false, body["es_administrador"])
}

func TestGuardCollapsesFailureKinds(t *testing.T) {
	// Tampered and malformed tokens must be indistinguishable at the boundary.
	app, tokens := newGuardedApp(t)
	token, _, err := tokens.Generate(auth.Identity{DNI: "12345678"})
	require.NoError(t, err)

	tampered := token[:len(token)-1] + "A"
	if token[len(token)-1] == 'A' {
		tampered = token[:len(token)-1] + "B"
	}
	respTampered := doGet(t, app, "/protegido", "Bearer "+tampered)
	respMalformed := doGet(t, app, "/protegido", "Bearer garbage")

	assert.Equal(t, http.StatusUnauthorized, respTampered.StatusCode)
	assert.Equal(t, http.StatusUnauthorized, respMalformed.StatusCode)

	var bodyTampered, bodyMalformed map[string]any
	require.NoError(t, json.NewDecoder(respTampered.Body).Decode(&bodyTampered))
	require.NoError(t, json.NewDecoder(respMalformed.Body).Decode(&bodyMalformed))
	assert.Equal(t, bodyTampered, bodyMalformed)
}

func TestRequireAdmin(t *testing.T) {
	app, tokens := newGuardedApp(t)

	plain, _, err := tokens.Generate(auth.Identity{DNI: "12345678", IsAdmin: false})
	require.NoError(t, err)
	resp := doGet(t, app, "/admin", "Bearer "+plain)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	admin, _, err := tokens.Generate(auth.Identity{DNI: "12345678", IsAdmin: true})
	require.NoError(t, err)
	resp = doGet(t, app, "/admin", "Bearer "+admin)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
