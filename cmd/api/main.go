package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/distribution-api/internal/api/http"
	"github.com/spec-kit/distribution-api/internal/api/http/handlers"
	"github.com/spec-kit/distribution-api/internal/auth"
	"github.com/spec-kit/distribution-api/internal/config"
	"github.com/spec-kit/distribution-api/internal/observability"
	"github.com/spec-kit/distribution-api/internal/persistence"
	"github.com/spec-kit/distribution-api/internal/repository"
	"github.com/spec-kit/distribution-api/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	employeeRepo := repository.NewEmployeeRepository(pool)
	productRepo := repository.NewProductRepository(pool, redis.Handle())
	clientRepo := repository.NewClientRepository(pool)
	supplierRepo := repository.NewSupplierRepository(pool)
	sellerRepo := repository.NewSellerRepository(pool)
	advisorRepo := repository.NewAdvisorRepository(pool)
	contractRepo := repository.NewContractRepository(pool)
	invoiceRepo := repository.NewInvoiceRepository(pool)

	authService, err := service.NewAuthService(cfg.Auth, employeeRepo)
	if err != nil {
		logger.Fatal("failed to init auth", zap.Error(err))
	}
	guard := auth.NewGuard(authService.TokenManager())

	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:    handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:      handlers.NewAuthHandler(authService),
		Products:  handlers.NewProductsHandler(productRepo),
		Clients:   handlers.NewClientsHandler(clientRepo),
		Suppliers: handlers.NewSuppliersHandler(supplierRepo),
		Sellers:   handlers.NewSellersHandler(sellerRepo),
		Advisors:  handlers.NewAdvisorsHandler(advisorRepo),
		Contracts: handlers.NewContractsHandler(contractRepo),
		Invoices:  handlers.NewInvoicesHandler(invoiceRepo),
		Guard:     guard,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
