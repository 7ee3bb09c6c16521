package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/distribution-api/internal/api/http/handlers"
	"github.com/spec-kit/distribution-api/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health    *handlers.HealthHandler
	Auth      *handlers.AuthHandler
	Products  *handlers.ProductsHandler
	Clients   *handlers.ClientsHandler
	Suppliers *handlers.SuppliersHandler
	Sellers   *handlers.SellersHandler
	Advisors  *handlers.AdvisorsHandler
	Contracts *handlers.ContractsHandler
	Invoices  *handlers.InvoicesHandler
	Guard     *auth.Guard
}

// RegisterRoutes wires HTTP routes. Login and health are public; every
// business route sits behind the token guard.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Post("/login", cfg.Auth.Login)

	productos := app.Group("/productos", cfg.Guard.Handle)
	productos.Post("/", cfg.Products.Create)
	productos.Get("/", cfg.Products.List)
	productos.Get("/disponibles", cfg.Products.ListAvailable)
	productos.Get("/buscar/:nombre_producto", cfg.Products.Search)
	productos.Get("/:cod_producto", cfg.Products.Get)
	productos.Get("/:cod_producto/stock", cfg.Products.GetStock)
	productos.Put("/:cod_producto", cfg.Products.Update)
	productos.Put("/:cod_producto/agotado", cfg.Products.MarkSoldOut)
	productos.Put("/:cod_producto/stock", cfg.Products.UpdateStock)

	clientes := app.Group("/clientes", cfg.Guard.Handle)
	clientes.Post("/", cfg.Clients.Create)
	clientes.Get("/", cfg.Clients.List)
	clientes.Get("/:cod_cliente", cfg.Clients.Get)
	clientes.Put("/:cod_cliente", cfg.Clients.Update)
	clientes.Put("/:cod_cliente/desactivar", cfg.Clients.Deactivate)

	proveedores := app.Group("/proveedores", cfg.Guard.Handle)
	proveedores.Post("/", cfg.Suppliers.Create)
	proveedores.Get("/", cfg.Suppliers.List)
	proveedores.Get("/:cod_proveedor", cfg.Suppliers.Get)
	proveedores.Put("/:cod_proveedor", cfg.Suppliers.Update)
	proveedores.Put("/:cod_proveedor/desactivar", cfg.Suppliers.Deactivate)

	vendedores := app.Group("/vendedores", cfg.Guard.Handle)
	vendedores.Post("/", cfg.Sellers.Create)
	vendedores.Get("/", cfg.Sellers.List)
	vendedores.Get("/:cod_vendedor", cfg.Sellers.Get)
	vendedores.Put("/:cod_vendedor", cfg.Sellers.Update)

	asesores := app.Group("/asesores", cfg.Guard.Handle)
	asesores.Post("/", cfg.Advisors.Create)
	asesores.Get("/", cfg.Advisors.List)
	asesores.Get("/:cod_asesor", cfg.Advisors.Get)
	asesores.Put("/:cod_asesor", cfg.Advisors.Update)
	asesores.Get("/:cod_asesor/especialidades", cfg.Advisors.ListSpecialties)

	contratos := app.Group("/contratos", cfg.Guard.Handle)
	contratos.Post("/", cfg.Contracts.Create)
	contratos.Get("/", cfg.Contracts.List)
	contratos.Get("/:cod_contrato", cfg.Contracts.Get)
	contratos.Put("/:cod_contrato/estado", auth.RequireAdmin(), cfg.Contracts.UpdateStatus)

	facturas := app.Group("/facturas", cfg.Guard.Handle)
	facturas.Post("/", cfg.Invoices.Create)
	facturas.Get("/", cfg.Invoices.List)
	facturas.Get("/:cod_factura", cfg.Invoices.Get)
}
