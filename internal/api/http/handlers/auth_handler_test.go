package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/distribution-api/internal/api/http"
	"github.com/spec-kit/distribution-api/internal/api/http/handlers"
	"github.com/spec-kit/distribution-api/internal/auth"
	"github.com/spec-kit/distribution-api/internal/config"
	"github.com/spec-kit/distribution-api/internal/domain"
	"github.com/spec-kit/distribution-api/internal/observability"
	"github.com/spec-kit/distribution-api/internal/service"
)

const testJWTSecret = "login-test-secret"

type stubEmployees struct {
	records map[string]*domain.Employee
	err     error
}

func (s *stubEmployees) FindByDNI(_ context.Context, dni string) (*domain.Employee, error) {
	if s.err != nil {
		return nil, s.err
	}
	emp, ok := s.records[dni]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return emp, nil
}

func newLoginApp(t *testing.T, store auth.CredentialStore) *fiber.App {
	t.Helper()
	authService, err := service.NewAuthService(config.AuthConfig{
		JWTSecret:     testJWTSecret,
		TokenTTLHours: 5,
	}, store)
	require.NoError(t, err)

	guard := auth.NewGuard(authService.TokenManager())

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, zap.NewNop(), observability.NewMetrics(), 0)
	app.Post("/login", handlers.NewAuthHandler(authService).Login)
	app.Get("/productos", guard.Handle, func(c *fiber.Ctx) error {
		return c.JSON([]string{})
	})
	return app
}

func activeRecord() *domain.Employee {
	return &domain.Employee{
		EmployeeCode: 42,
		DNI:          "12345678",
		Name:         "Maria",
		Secret:       "password123",
		Status:       domain.EmployeeStatusActive,
		IsAdmin:      false,
	}
}

func postLogin(t *testing.T, app *fiber.App, payload string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestLoginSuccessIssuesToken(t *testing.T) {
	app := newLoginApp(t, &stubEmployees{records: map[string]*domain.Employee{"12345678": activeRecord()}})

	resp := postLogin(t, app, `{"dni":"12345678","contraseña":"password123"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.NotEmpty(t, body["token"])
	assert.Len(t, body, 1, "claims must not be echoed in the body")

	// The issued token is accepted on a protected route.
	req := httptest.NewRequest(http.MethodGet, "/productos", nil)
	req.Header.Set("Authorization", "Bearer "+body["token"])
	protected, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, protected.StatusCode)
}

func TestLoginMissingFields(t *testing.T) {
	app := newLoginApp(t, &stubEmployees{records: map[string]*domain.Employee{"12345678": activeRecord()}})

	for _, payload := range []string{`{}`, `{"dni":"12345678"}`, `{"contraseña":"password123"}`} {
		resp := postLogin(t, app, payload)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "payload %s", payload)
	}
}

func TestLoginUnknownAndWrongSecretAreIndistinguishable(t *testing.T) {
	app := newLoginApp(t, &stubEmployees{records: map[string]*domain.Employee{"12345678": activeRecord()}})

	respUnknown := postLogin(t, app, `{"dni":"00000000","contraseña":"password123"}`)
	respWrong := postLogin(t, app, `{"dni":"12345678","contraseña":"wrong"}`)

	require.Equal(t, http.StatusUnauthorized, respUnknown.StatusCode)
	require.Equal(t, http.StatusUnauthorized, respWrong.StatusCode)

	bodyUnknown, err := io.ReadAll(respUnknown.Body)
	require.NoError(t, err)
	bodyWrong, err := io.ReadAll(respWrong.Body)
	require.NoError(t, err)
	assert.Equal(t, string(bodyUnknown), string(bodyWrong))
}

func TestLoginWrongSecretOnInactiveAccountHidesStatus(t *testing.T) {
	inactive := activeRecord()
	inactive.Status = domain.EmployeeStatusInactive
	app := newLoginApp(t, &stubEmployees{records: map[string]*domain.Employee{"12345678": inactive}})

	resp := postLogin(t, app, `{"dni":"12345678","contraseña":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestLoginInactiveAccount(t *testing.T) {
	inactive := activeRecord()
	inactive.Status = "inactivo"
	app := newLoginApp(t, &stubEmployees{records: map[string]*domain.Employee{"12345678": inactive}})

	resp := postLogin(t, app, `{"dni":"12345678","contraseña":"password123"}`)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestLoginStoreUnavailable(t *testing.T) {
	app := newLoginApp(t, &stubEmployees{err: errors.New("dial tcp: connection refused")})

	resp := postLogin(t, app, `{"dni":"12345678","contraseña":"password123"}`)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

func TestExpiredTokenRejectedOnProtectedRoute(t *testing.T) {
	app := newLoginApp(t, &stubEmployees{records: map[string]*domain.Employee{"12345678": activeRecord()}})

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, &auth.Claims{
		DNI:          "12345678",
		EmployeeCode: 42,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-6 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	})
	tokenStr, err := expired.SignedString([]byte(testJWTSecret))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/productos", nil)
	req.Header.Set("Authorization", "Bearer "+tokenStr)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
