package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/distribution-api/internal/api/dto"
	"github.com/spec-kit/distribution-api/internal/domain"
	"github.com/spec-kit/distribution-api/internal/repository"
	apperrors "github.com/spec-kit/distribution-api/pkg/util"
)

// AdvisorsHandler exposes the asesor routes.
type AdvisorsHandler struct {
	advisors repository.AdvisorRepository
}

// NewAdvisorsHandler constructs handler.
func NewAdvisorsHandler(advisors repository.AdvisorRepository) *AdvisorsHandler {
	return &AdvisorsHandler{advisors: advisors}
}

// Create handles POST /asesores.
func (h *AdvisorsHandler) Create(c *fiber.Ctx) error {
	var req dto.AdvisorRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Name == "" || req.DNI == "" {
		return apperrors.NewValidationError("nombre and dni required", nil)
	}

	advisor := advisorFromRequest(&req)
	if err := h.advisors.Create(c.Context(), advisor); err != nil {
		return apperrors.NewValidationError(err.Error(), nil)
	}
	return c.Status(http.StatusCreated).JSON(advisor)
}

// List handles GET /asesores.
func (h *AdvisorsHandler) List(c *fiber.Ctx) error {
	advisors, err := h.advisors.List(c.Context())
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(advisors)
}

// Get handles GET /asesores/:cod_asesor.
func (h *AdvisorsHandler) Get(c *fiber.Ctx) error {
	code, err := c.ParamsInt("cod_asesor")
	if err != nil {
		return apperrors.NewValidationError("cod_asesor must be numeric", nil)
	}
	advisor, err := h.advisors.GetByID(c.Context(), code)
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(advisor)
}

// Update handles PUT /asesores/:cod_asesor.
func (h *AdvisorsHandler) Update(c *fiber.Ctx) error {
	code, err := c.ParamsInt("cod_asesor")
	if err != nil {
		return apperrors.NewValidationError("cod_asesor must be numeric", nil)
	}
	var req dto.AdvisorRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	advisor := advisorFromRequest(&req)
	advisor.AdvisorCode = code
	if err := h.advisors.Update(c.Context(), advisor); err != nil {
		return apperrors.NewValidationError(err.Error(), nil)
	}
	return c.JSON(fiber.Map{"mensaje": "asesor actualizado"})
}

// ListSpecialties handles GET /asesores/:cod_asesor/especialidades.
func (h *AdvisorsHandler) ListSpecialties(c *fiber.Ctx) error {
	code, err := c.ParamsInt("cod_asesor")
	if err != nil {
		return apperrors.NewValidationError("cod_asesor must be numeric", nil)
	}
	specialties, err := h.advisors.ListSpecialties(c.Context(), code)
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(specialties)
}

func advisorFromRequest(req *dto.AdvisorRequest) *domain.Advisor {
	return &domain.Advisor{
		EmployeeCode: req.EmployeeCode,
		Name:         req.Name,
		LastName:     req.LastName,
		DNI:          req.DNI,
		Status:       req.Status,
	}
}
