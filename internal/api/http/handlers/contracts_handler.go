package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/distribution-api/internal/api/dto"
	"github.com/spec-kit/distribution-api/internal/domain"
	"github.com/spec-kit/distribution-api/internal/repository"
	apperrors "github.com/spec-kit/distribution-api/pkg/util"
)

// ContractsHandler exposes the contrato routes. Status changes are
// admin-gated at the router.
type ContractsHandler struct {
	contracts repository.ContractRepository
}

// NewContractsHandler constructs handler.
func NewContractsHandler(contracts repository.ContractRepository) *ContractsHandler {
	return &ContractsHandler{contracts: contracts}
}

// Create handles POST /contratos.
func (h *ContractsHandler) Create(c *fiber.Ctx) error {
	var req dto.ContractRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.SupplierCode == 0 || req.AdvisorCode == 0 {
		return apperrors.NewValidationError("cod_proveedor and cod_asesor required", nil)
	}

	contract := &domain.Contract{
		SupplierCode: req.SupplierCode,
		AdvisorCode:  req.AdvisorCode,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		Amount:       req.Amount,
		Status:       req.Status,
	}
	if err := h.contracts.Create(c.Context(), contract); err != nil {
		return apperrors.NewValidationError(err.Error(), nil)
	}
	return c.Status(http.StatusCreated).JSON(contract)
}

// List handles GET /contratos.
func (h *ContractsHandler) List(c *fiber.Ctx) error {
	contracts, err := h.contracts.List(c.Context())
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(contracts)
}

// Get handles GET /contratos/:cod_contrato.
func (h *ContractsHandler) Get(c *fiber.Ctx) error {
	code, err := c.ParamsInt("cod_contrato")
	if err != nil {
		return apperrors.NewValidationError("cod_contrato must be numeric", nil)
	}
	contract, err := h.contracts.GetByID(c.Context(), code)
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(contract)
}

// UpdateStatus handles PUT /contratos/:cod_contrato/estado.
func (h *ContractsHandler) UpdateStatus(c *fiber.Ctx) error {
	code, err := c.ParamsInt("cod_contrato")
	if err != nil {
		return apperrors.NewValidationError("cod_contrato must be numeric", nil)
	}
	var req dto.ContractStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Status == "" {
		return apperrors.NewValidationError("estado required", nil)
	}
	if err := h.contracts.UpdateStatus(c.Context(), code, req.Status); err != nil {
		return apperrors.NewValidationError(err.Error(), nil)
	}
	return c.JSON(fiber.Map{"mensaje": "estado de contrato actualizado"})
}
