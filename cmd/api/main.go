package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/spf13/afero"

	"github.com/aplusmed/marketplace-api/internal/application/cart"
	"github.com/aplusmed/marketplace-api/internal/application/catalog"
	"github.com/aplusmed/marketplace-api/internal/application/checkout"
	"github.com/aplusmed/marketplace-api/internal/application/ports"
	"github.com/aplusmed/marketplace-api/internal/application/session"
	"github.com/aplusmed/marketplace-api/internal/application/vendors"
	"github.com/aplusmed/marketplace-api/internal/infrastructure/apps"
	"github.com/aplusmed/marketplace-api/internal/infrastructure/catalogmem"
	"github.com/aplusmed/marketplace-api/internal/infrastructure/directory"
	"github.com/aplusmed/marketplace-api/internal/infrastructure/orders"
	infrapdf "github.com/aplusmed/marketplace-api/internal/infrastructure/pdf"
	"github.com/aplusmed/marketplace-api/internal/infrastructure/state"
	httpRouter "github.com/aplusmed/marketplace-api/internal/interfaces/http"
	"github.com/aplusmed/marketplace-api/pkg/config"
	"github.com/aplusmed/marketplace-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	stateStore, err := state.NewFileStore(afero.NewOsFs(), cfg.State.Dir)
	if err != nil {
		log.Fatal().Err(err).Str("dir", cfg.State.Dir).Msg("state directory")
	}

	accountDir := directory.NewMemoryWithDemoAccounts()
	appRepo := apps.NewMemoryWithDemoApplications()
	productCatalog := catalogmem.NewMemoryWithDemoProducts()
	orderRepo := orders.NewMemory()

	sessionStore := session.New(accountDir, appRepo, stateStore, ports.SleepWait, session.Config{
		TokenSecret:   cfg.Session.Secret,
		TokenIssuer:   cfg.Session.Issuer,
		TokenTTL:      cfg.Session.TTL(),
		LoginDelay:    cfg.Sim.LoginDelay(),
		RegisterDelay: cfg.Sim.RegisterDelay(),
	})
	if u := sessionStore.Current(); u != nil {
		log.Info().Str("email", u.Email).Str("role", u.Role).Msg("session restored")
	}

	cartStore := cart.New(stateStore)
	catalogUC := catalog.NewUseCase(productCatalog)
	checkoutUC := checkout.NewUseCase(cartStore, sessionStore, orderRepo, ports.SleepWait, cfg.Sim.PaymentDelay())
	vendorsUC := vendors.NewUseCase(appRepo, accountDir, orderRepo)
	receipts := infrapdf.NewReceiptGenerator()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI in local runs: http://localhost:<port>/docs
	if _, err := os.Stat("./docs/swagger.json"); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: "./docs/swagger.json",
			Path:     "docs",
			Title:    "A+ Med Marketplace API",
		}))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Sessions:  sessionStore,
		Cart:      cartStore,
		CatalogUC: catalogUC,
		Catalog:   productCatalog,
		Directory: accountDir,
		Checkout:  checkoutUC,
		Vendors:   vendorsUC,
		Receipts:  receipts,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, closing server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
