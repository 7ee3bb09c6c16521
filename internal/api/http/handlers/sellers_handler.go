package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/distribution-api/internal/api/dto"
	"github.com/spec-kit/distribution-api/internal/domain"
	"github.com/spec-kit/distribution-api/internal/repository"
	apperrors "github.com/spec-kit/distribution-api/pkg/util"
)

// SellersHandler exposes the vendedor routes.
type SellersHandler struct {
	sellers repository.SellerRepository
}

// NewSellersHandler constructs handler.
func NewSellersHandler(sellers repository.SellerRepository) *SellersHandler {
	return &SellersHandler{sellers: sellers}
}

// Create handles POST /vendedores.
func (h *SellersHandler) Create(c *fiber.Ctx) error {
	var req dto.SellerRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Name == "" || req.DNI == "" {
		return apperrors.NewValidationError("nombre and dni required", nil)
	}

	seller := sellerFromRequest(&req)
	if err := h.sellers.Create(c.Context(), seller); err != nil {
		return apperrors.NewValidationError(err.Error(), nil)
	}
	return c.Status(http.StatusCreated).JSON(seller)
}

// List handles GET /vendedores.
func (h *SellersHandler) List(c *fiber.Ctx) error {
	sellers, err := h.sellers.List(c.Context())
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(sellers)
}

// Get handles GET /vendedores/:cod_vendedor.
func (h *SellersHandler) Get(c *fiber.Ctx) error {
	code, err := c.ParamsInt("cod_vendedor")
	if err != nil {
		return apperrors.NewValidationError("cod_vendedor must be numeric", nil)
	}
	seller, err := h.sellers.GetByID(c.Context(), code)
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(seller)
}

// Update handles PUT /vendedores/:cod_vendedor.
func (h *SellersHandler) Update(c *fiber.Ctx) error {
	code, err := c.ParamsInt("cod_vendedor")
	if err != nil {
		return apperrors.NewValidationError("cod_vendedor must be numeric", nil)
	}
	var req dto.SellerRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	seller := sellerFromRequest(&req)
	seller.SellerCode = code
	if err := h.sellers.Update(c.Context(), seller); err != nil {
		return apperrors.NewValidationError(err.Error(), nil)
	}
	return c.JSON(fiber.Map{"mensaje": "vendedor actualizado"})
}

func sellerFromRequest(req *dto.SellerRequest) *domain.Seller {
	return &domain.Seller{
		EmployeeCode: req.EmployeeCode,
		Name:         req.Name,
		LastName:     req.LastName,
		DNI:          req.DNI,
		CommissionPc: req.CommissionPc,
		Status:       req.Status,
	}
}
