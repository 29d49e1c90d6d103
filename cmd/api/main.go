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
	appanalytics "github.com/norteindustrial/norte-erp/internal/application/analytics"
	"github.com/norteindustrial/norte-erp/internal/application/auth"
	"github.com/norteindustrial/norte-erp/internal/application/finance"
	"github.com/norteindustrial/norte-erp/internal/application/sales"
	"github.com/norteindustrial/norte-erp/internal/application/usecase"
	infraai "github.com/norteindustrial/norte-erp/internal/infrastructure/ai"
	"github.com/norteindustrial/norte-erp/internal/infrastructure/cache"
	infrapdf "github.com/norteindustrial/norte-erp/internal/infrastructure/pdf"
	"github.com/norteindustrial/norte-erp/internal/infrastructure/postgres"
	httpRouter "github.com/norteindustrial/norte-erp/internal/interfaces/http"
	"github.com/norteindustrial/norte-erp/pkg/config"
	"github.com/norteindustrial/norte-erp/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	clientRepo := postgres.NewClientRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	quoteRepo := postgres.NewQuoteRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	paymentRepo := postgres.NewPaymentRepository(pool)
	notificationRepo := postgres.NewNotificationRepository(pool)
	settingsRepo := postgres.NewSettingsRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	memCache := cache.NewMemory()
	settingsUC := usecase.NewSettingsUseCase(settingsRepo, memCache, usecase.SettingsDefaults{
		DefaultMargin:  cfg.Comercio.DefaultMargin,
		ExchangeRate:   cfg.Comercio.ExchangeRate,
		DefaultTaxRate: cfg.Comercio.DefaultTaxRate,
	})

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	userUC := usecase.NewUserUseCase(userRepo)
	clientUC := usecase.NewClientUseCase(clientRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	productUC := usecase.NewProductUseCase(productRepo, supplierRepo)

	// PDF: la cotización lista para enviarse al cliente
	pdfGenerator := infrapdf.NewMarotoPDFGenerator(cfg.App.Name)
	quoteUC := sales.NewQuoteUseCase(quoteRepo, clientRepo, productRepo, notificationRepo, settingsUC, pdfGenerator)
	orderUC := sales.NewOrderUseCase(orderRepo, quoteRepo, txRunner)
	paymentUC := finance.NewPaymentUseCase(paymentRepo, txRunner)
	notificationUC := usecase.NewNotificationUseCase(notificationRepo)
	dashboardUC := appanalytics.NewDashboardUseCase(analyticsRepo)

	anthropicSvc := infraai.NewAnthropicService(cfg.AI.AnthropicAPIKey, cfg.AI.AnthropicModel)
	documentUC := usecase.NewDocumentUseCase(anthropicSvc)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Norte ERP API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		UserUC:         userUC,
		ClientUC:       clientUC,
		SupplierUC:     supplierUC,
		ProductUC:      productUC,
		QuoteUC:        quoteUC,
		OrderUC:        orderUC,
		PaymentUC:      paymentUC,
		SettingsUC:     settingsUC,
		NotificationUC: notificationUC,
		DashboardUC:    dashboardUC,
		DocumentUC:     documentUC,
		JWTSecret:      cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("apagando servidor")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
