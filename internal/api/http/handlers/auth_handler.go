package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/distribution-api/internal/api/dto"
	"github.com/spec-kit/distribution-api/internal/auth"
	"github.com/spec-kit/distribution-api/internal/service"
	apperrors "github.com/spec-kit/distribution-api/pkg/util"
)

// AuthHandler exposes the login endpoint.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// Login handles POST /login. Unknown dni and wrong password produce the same
// response so callers cannot probe which accounts exist.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	token, _, err := h.auth.Login(c.Context(), req.DNI, req.Password)
	if err != nil {
		return mapLoginError(err)
	}

	return c.JSON(dto.LoginResponse{Token: token})
}

func mapLoginError(err error) error {
	switch {
	case errors.Is(err, auth.ErrMissingCredentials):
		return apperrors.NewValidationError("dni and password required", nil)
	case errors.Is(err, auth.ErrUnknownIdentity), errors.Is(err, auth.ErrInvalidSecret):
		return apperrors.NewUnauthorized("invalid credentials")
	case errors.Is(err, auth.ErrInactiveAccount):
		return apperrors.NewForbidden("account inactive")
	case errors.Is(err, auth.ErrStoreUnavailable):
		return apperrors.NewUnavailable("credential store unavailable")
	default:
		return apperrors.NewInternalError(err)
	}
}
