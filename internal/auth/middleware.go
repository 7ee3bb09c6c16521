package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	apperrors "github.com/spec-kit/distribution-api/pkg/util"
)

const principalKey = "auth_principal"

// Principal represents the authenticated caller, decoded from token claims.
// The guard never consults the store; the claims are the identity.
type Principal struct {
	DNI          string
	EmployeeCode int
	IsAdmin      bool
}

// Guard validates bearer tokens on protected routes.
type Guard struct {
	tokens *TokenManager
}

// NewGuard constructs the middleware.
func NewGuard(tokens *TokenManager) *Guard {
	return &Guard{tokens: tokens}
}

// Handle enforces authentication for protected routes. Every token failure
// (missing, malformed, bad signature, expired) yields the same 401.
func (g *Guard) Handle(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return apperrors.NewUnauthorized(ErrUnauthenticated.Error())
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return apperrors.NewUnauthorized(ErrUnauthenticated.Error())
	}

	claims, err := g.tokens.Parse(parts[1])
	if err != nil {
		return apperrors.NewUnauthorized(ErrUnauthenticated.Error())
	}

	c.Locals(principalKey, &Principal{
		DNI:          claims.DNI,
		EmployeeCode: claims.EmployeeCode,
		IsAdmin:      claims.IsAdmin,
	})
	return c.Next()
}

// PrincipalFromContext retrieves the authenticated caller.
func PrincipalFromContext(c *fiber.Ctx) (*Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*Principal)
	return principal, ok
}

// RequireAdmin gates a route on the es_administrador claim. Role checks are a
// downstream concern; the guard itself only proves authentication.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok {
			return apperrors.NewUnauthorized(ErrUnauthenticated.Error())
		}
		if !principal.IsAdmin {
			return apperrors.NewForbidden("administrator required")
		}
		return c.Next()
	}
}
