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
	"github.com/tu-usuario/stockmaster/internal/application/auth"
	"github.com/tu-usuario/stockmaster/internal/application/inventory"
	"github.com/tu-usuario/stockmaster/internal/application/usecase"
	inframail "github.com/tu-usuario/stockmaster/internal/infrastructure/mail"
	infraotp "github.com/tu-usuario/stockmaster/internal/infrastructure/otp"
	infrapdf "github.com/tu-usuario/stockmaster/internal/infrastructure/pdf"
	"github.com/tu-usuario/stockmaster/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/stockmaster/internal/interfaces/http"
	"github.com/tu-usuario/stockmaster/pkg/config"
	"github.com/tu-usuario/stockmaster/pkg/logger"
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

	// Repositorios sobre el pool (fuera de transacción)
	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	warehouseRepo := postgres.NewWarehouseRepository(pool)
	locationRepo := postgres.NewLocationRepository(pool)
	partnerRepo := postgres.NewPartnerRepository(pool)
	operationRepo := postgres.NewOperationRepository(pool)
	moveRepo := postgres.NewMoveRepository(pool)
	quantRepo := postgres.NewQuantRepository(pool)
	ledgerRepo := postgres.NewLedgerRepository(pool)
	ruleRepo := postgres.NewReorderRuleRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Auth: OTP en memoria + correo SMTP (o log en desarrollo)
	otpStore := infraotp.NewStore()
	mailer := inframail.NewSMTPMailer(cfg.SMTP, log)
	authUC := auth.NewAuthUseCase(userRepo, otpStore, mailer, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, time.Duration(cfg.OTP.ExpiryMinutes)*time.Minute)

	// Casos de uso
	userUC := usecase.NewUserUseCase(userRepo)
	productUC := usecase.NewProductUseCase(productRepo, txRunner)
	warehouseUC := usecase.NewWarehouseUseCase(warehouseRepo)
	locationUC := usecase.NewLocationUseCase(locationRepo, warehouseRepo)
	partnerUC := usecase.NewPartnerUseCase(partnerRepo)
	operationUC := inventory.NewOperationUseCase(txRunner)
	stockUC := inventory.NewStockUseCase(moveRepo, productRepo)
	moveUC := usecase.NewMoveUseCase(moveRepo, productRepo, locationRepo)
	quantUC := usecase.NewQuantUseCase(quantRepo)
	ledgerUC := usecase.NewLedgerUseCase(ledgerRepo)
	ruleUC := usecase.NewReorderRuleUseCase(ruleRepo, productRepo, warehouseRepo)
	suggestionUC := inventory.NewReorderSuggestionUseCase(ruleRepo, moveRepo, productRepo)
	dashboardUC := usecase.NewDashboardUseCase(productRepo, operationRepo)

	// PDF: hoja de picking / comprobante de la operación
	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	documentUC := inventory.NewDocumentUseCase(operationRepo, locationRepo, partnerRepo, productRepo, pdfGenerator)

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
		Title:    "StockMaster API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		UserUC:        userUC,
		ProductUC:     productUC,
		WarehouseUC:   warehouseUC,
		LocationUC:    locationUC,
		PartnerUC:     partnerUC,
		OperationUC:   operationUC,
		DocumentUC:    documentUC,
		StockUC:       stockUC,
		MoveUC:        moveUC,
		QuantUC:       quantUC,
		LedgerUC:      ledgerUC,
		ReorderRuleUC: ruleUC,
		SuggestionUC:  suggestionUC,
		DashboardUC:   dashboardUC,
		JWTSecret:     cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
