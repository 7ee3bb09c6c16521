package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/distribution-api/internal/api/dto"
	"github.com/spec-kit/distribution-api/internal/domain"
	"github.com/spec-kit/distribution-api/internal/repository"
	apperrors "github.com/spec-kit/distribution-api/pkg/util"
)

// SuppliersHandler exposes the proveedor routes.
type SuppliersHandler struct {
	suppliers repository.SupplierRepository
}

// NewSuppliersHandler constructs handler.
func NewSuppliersHandler(suppliers repository.SupplierRepository) *SuppliersHandler {
	return &SuppliersHandler{suppliers: suppliers}
}

// Create handles POST /proveedores.
func (h *SuppliersHandler) Create(c *fiber.Ctx) error {
	var req dto.SupplierRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.CompanyName == "" || req.RUC == "" {
		return apperrors.NewValidationError("razon_social and ruc required", nil)
	}

	supplier := &domain.Supplier{
		CompanyName: req.CompanyName,
		RUC:         req.RUC,
		Phone:       req.Phone,
		Address:     req.Address,
		Status:      req.Status,
	}
	if err := h.suppliers.Create(c.Context(), supplier); err != nil {
		return apperrors.NewValidationError(err.Error(), nil)
	}
	return c.Status(http.StatusCreated).JSON(supplier)
}

// List handles GET /proveedores.
func (h *SuppliersHandler) List(c *fiber.Ctx) error {
	suppliers, err := h.suppliers.List(c.Context())
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(suppliers)
}

// Get handles GET /proveedores/:cod_proveedor.
func (h *SuppliersHandler) Get(c *fiber.Ctx) error {
	code, err := c.ParamsInt("cod_proveedor")
	if err != nil {
		return apperrors.NewValidationError("cod_proveedor must be numeric", nil)
	}
	supplier, err := h.suppliers.GetByID(c.Context(), code)
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(supplier)
}

// Update handles PUT /proveedores/:cod_proveedor.
func (h *SuppliersHandler) Update(c *fiber.Ctx) error {
	code, err := c.ParamsInt("cod_proveedor")
	if err != nil {
		return apperrors.NewValidationError("cod_proveedor must be numeric", nil)
	}
	var req dto.SupplierRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	supplier := &domain.Supplier{
		SupplierCode: code,
		CompanyName:  req.CompanyName,
		RUC:          req.RUC,
		Phone:        req.Phone,
		Address:      req.Address,
		Status:       req.Status,
	}
	if err := h.suppliers.Update(c.Context(), supplier); err != nil {
		return apperrors.NewValidationError(err.Error(), nil)
	}
	return c.JSON(fiber.Map{"mensaje": "proveedor actualizado"})
}

// Deactivate handles PUT /proveedores/:cod_proveedor/desactivar.
func (h *SuppliersHandler) Deactivate(c *fiber.Ctx) error {
	code, err := c.ParamsInt("cod_proveedor")
	if err != nil {
		return apperrors.NewValidationError("cod_proveedor must be numeric", nil)
	}
	if err := h.suppliers.Deactivate(c.Context(), code); err != nil {
		return apperrors.NewValidationError(err.Error(), nil)
	}
	return c.JSON(fiber.Map{"mensaje": "proveedor desactivado"})
}
