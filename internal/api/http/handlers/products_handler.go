package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/distribution-api/internal/api/dto"
	"github.com/spec-kit/distribution-api/internal/domain"
	"github.com/spec-kit/distribution-api/internal/repository"
	apperrors "github.com/spec-kit/distribution-api/pkg/util"
)

// ProductsHandler exposes the producto routes. Pass-through to the store
// routines; no business logic lives here.
type ProductsHandler struct {
	products repository.ProductRepository
}

// NewProductsHandler constructs handler.
func NewProductsHandler(products repository.ProductRepository) *ProductsHandler {
	return &ProductsHandler{products: products}
}

// Create handles POST /productos.
func (h *ProductsHandler) Create(c *fiber.Ctx) error {
	var req dto.ProductRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Name == "" {
		return apperrors.NewValidationError("nombre required", nil)
	}

	product := productFromRequest(&req)
	if err := h.products.Create(c.Context(), product); err != nil {
		return apperrors.NewValidationError(err.Error(), nil)
	}
	return c.Status(http.StatusCreated).JSON(product)
}

// List handles GET /productos.
func (h *ProductsHandler) List(c *fiber.Ctx) error {
	products, err := h.products.List(c.Context())
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(products)
}

// ListAvailable handles GET /productos/disponibles.
func (h *ProductsHandler) ListAvailable(c *fiber.Ctx) error {
	products, err := h.products.ListAvailable(c.Context())
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(products)
}

// Get handles GET /productos/:cod_producto.
func (h *ProductsHandler) Get(c *fiber.Ctx) error {
	code, err := c.ParamsInt("cod_producto")
	if err != nil {
		return apperrors.NewValidationError("cod_producto must be numeric", nil)
	}
	product, err := h.products.GetByID(c.Context(), code)
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(product)
}

// Search handles GET /productos/buscar/:nombre_producto.
func (h *ProductsHandler) Search(c *fiber.Ctx) error {
	products, err := h.products.SearchByName(c.Context(), c.Params("nombre_producto"))
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(products)
}

// GetStock handles GET /productos/:cod_producto/stock.
func (h *ProductsHandler) GetStock(c *fiber.Ctx) error {
	code, err := c.ParamsInt("cod_producto")
	if err != nil {
		return apperrors.NewValidationError("cod_producto must be numeric", nil)
	}
	stock, err := h.products.GetStock(c.Context(), code)
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"cod_producto": code, "stock": stock})
}

// Update handles PUT /productos/:cod_producto.
func (h *ProductsHandler) Update(c *fiber.Ctx) error {
	code, err := c.ParamsInt("cod_producto")
	if err != nil {
		return apperrors.NewValidationError("cod_producto must be numeric", nil)
	}
	var req dto.ProductRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	product := productFromRequest(&req)
	product.ProductCode = code
	if err := h.products.Update(c.Context(), product); err != nil {
		return apperrors.NewValidationError(err.Error(), nil)
	}
	return c.JSON(fiber.Map{"mensaje": "producto actualizado"})
}

// MarkSoldOut handles PUT /productos/:cod_producto/agotado.
func (h *ProductsHandler) MarkSoldOut(c *fiber.Ctx) error {
	code, err := c.ParamsInt("cod_producto")
	if err != nil {
		return apperrors.NewValidationError("cod_producto must be numeric", nil)
	}
	if err := h.products.MarkSoldOut(c.Context(), code); err != nil {
		return apperrors.NewValidationError(err.Error(), nil)
	}
	return c.JSON(fiber.Map{"mensaje": "estado actualizado a agotado"})
}

// UpdateStock handles PUT /productos/:cod_producto/stock.
func (h *ProductsHandler) UpdateStock(c *fiber.Ctx) error {
	code, err := c.ParamsInt("cod_producto")
	if err != nil {
		return apperrors.NewValidationError("cod_producto must be numeric", nil)
	}
	var req dto.StockUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := h.products.UpdateStock(c.Context(), code, req.NewStock); err != nil {
		return apperrors.NewValidationError(err.Error(), nil)
	}
	return c.JSON(fiber.Map{"mensaje": "stock actualizado"})
}

func productFromRequest(req *dto.ProductRequest) *domain.Product {
	status := domain.ProductStatus(req.Status)
	if status == "" {
		status = domain.ProductStatusAvailable
	}
	return &domain.Product{
		Name:          req.Name,
		Description:   req.Description,
		PurchasePrice: req.PurchasePrice,
		SalePrice:     req.SalePrice,
		Stock:         req.Stock,
		CategoryCode:  req.CategoryCode,
		LineCode:      req.LineCode,
		Status:        status,
	}
}
