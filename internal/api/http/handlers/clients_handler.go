package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/distribution-api/internal/api/dto"
	"github.com/spec-kit/distribution-api/internal/domain"
	"github.com/spec-kit/distribution-api/internal/repository"
	apperrors "github.com/spec-kit/distribution-api/pkg/util"
)

// ClientsHandler exposes the cliente routes.
type ClientsHandler struct {
	clients repository.ClientRepository
}

// NewClientsHandler constructs handler.
func NewClientsHandler(clients repository.ClientRepository) *ClientsHandler {
	return &ClientsHandler{clients: clients}
}

// Create handles POST /clientes.
func (h *ClientsHandler) Create(c *fiber.Ctx) error {
	var req dto.ClientRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Name == "" || req.DNI == "" {
		return apperrors.NewValidationError("nombre and dni required", nil)
	}

	client := clientFromRequest(&req)
	if err := h.clients.Create(c.Context(), client); err != nil {
		return apperrors.NewValidationError(err.Error(), nil)
	}
	return c.Status(http.StatusCreated).JSON(client)
}

// List handles GET /clientes.
func (h *ClientsHandler) List(c *fiber.Ctx) error {
	clients, err := h.clients.List(c.Context())
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(clients)
}

// Get handles GET /clientes/:cod_cliente.
func (h *ClientsHandler) Get(c *fiber.Ctx) error {
	code, err := c.ParamsInt("cod_cliente")
	if err != nil {
		return apperrors.NewValidationError("cod_cliente must be numeric", nil)
	}
	client, err := h.clients.GetByID(c.Context(), code)
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(client)
}

// Update handles PUT /clientes/:cod_cliente.
func (h *ClientsHandler) Update(c *fiber.Ctx) error {
	code, err := c.ParamsInt("cod_cliente")
	if err != nil {
		return apperrors.NewValidationError("cod_cliente must be numeric", nil)
	}
	var req dto.ClientRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	client := clientFromRequest(&req)
	client.ClientCode = code
	if err := h.clients.Update(c.Context(), client); err != nil {
		return apperrors.NewValidationError(err.Error(), nil)
	}
	return c.JSON(fiber.Map{"mensaje": "cliente actualizado"})
}

// Deactivate handles PUT /clientes/:cod_cliente/desactivar.
func (h *ClientsHandler) Deactivate(c *fiber.Ctx) error {
	code, err := c.ParamsInt("cod_cliente")
	if err != nil {
		return apperrors.NewValidationError("cod_cliente must be numeric", nil)
	}
	if err := h.clients.Deactivate(c.Context(), code); err != nil {
		return apperrors.NewValidationError(err.Error(), nil)
	}
	return c.JSON(fiber.Map{"mensaje": "cliente desactivado"})
}

func clientFromRequest(req *dto.ClientRequest) *domain.Client {
	return &domain.Client{
		Name:     req.Name,
		LastName: req.LastName,
		DNI:      req.DNI,
		Phone:    req.Phone,
		Address:  req.Address,
		Status:   req.Status,
	}
}
