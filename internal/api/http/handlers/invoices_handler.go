package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/distribution-api/internal/api/dto"
	"github.com/spec-kit/distribution-api/internal/domain"
	"github.com/spec-kit/distribution-api/internal/repository"
	apperrors "github.com/spec-kit/distribution-api/pkg/util"
)

// InvoicesHandler exposes the factura routes.
type InvoicesHandler struct {
	invoices repository.InvoiceRepository
}

// NewInvoicesHandler constructs handler.
func NewInvoicesHandler(invoices repository.InvoiceRepository) *InvoicesHandler {
	return &InvoicesHandler{invoices: invoices}
}

// Create handles POST /facturas. Header and detail lines land in one
// transaction inside the repository.
func (h *InvoicesHandler) Create(c *fiber.Ctx) error {
	var req dto.InvoiceRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.ClientCode == 0 || req.SellerCode == 0 {
		return apperrors.NewValidationError("cod_cliente and cod_vendedor required", nil)
	}
	if len(req.Lines) == 0 {
		return apperrors.NewValidationError("detalle must have at least one line", nil)
	}

	invoice := &domain.Invoice{
		ClientCode: req.ClientCode,
		SellerCode: req.SellerCode,
		Total:      req.Total,
		Status:     req.Status,
	}
	for _, line := range req.Lines {
		invoice.Lines = append(invoice.Lines, domain.InvoiceLine{
			ProductCode: line.ProductCode,
			Quantity:    line.Quantity,
			UnitPrice:   line.UnitPrice,
			Subtotal:    line.Subtotal,
		})
	}

	if err := h.invoices.Create(c.Context(), invoice); err != nil {
		return apperrors.NewValidationError(err.Error(), nil)
	}
	return c.Status(http.StatusCreated).JSON(invoice)
}

// List handles GET /facturas.
func (h *InvoicesHandler) List(c *fiber.Ctx) error {
	invoices, err := h.invoices.List(c.Context())
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(invoices)
}

// Get handles GET /facturas/:cod_factura, detail lines included.
func (h *InvoicesHandler) Get(c *fiber.Ctx) error {
	code, err := c.ParamsInt("cod_factura")
	if err != nil {
		return apperrors.NewValidationError("cod_factura must be numeric", nil)
	}
	invoice, err := h.invoices.GetByID(c.Context(), code)
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(invoice)
}
