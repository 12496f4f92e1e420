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

	"github.com/gacc-hospital/snd-stock/internal/application/auth"
	"github.com/gacc-hospital/snd-stock/internal/application/inventory"
	"github.com/gacc-hospital/snd-stock/internal/application/reporting"
	"github.com/gacc-hospital/snd-stock/internal/application/usecase"
	infrapdf "github.com/gacc-hospital/snd-stock/internal/infrastructure/pdf"
	"github.com/gacc-hospital/snd-stock/internal/infrastructure/postgres"
	httpRouter "github.com/gacc-hospital/snd-stock/internal/interfaces/http"
	"github.com/gacc-hospital/snd-stock/internal/scheduler"
	"github.com/gacc-hospital/snd-stock/pkg/config"
	"github.com/gacc-hospital/snd-stock/pkg/logger"
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

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("esquema de base de datos")
	}
	if cfg.Stock.SeedAdmin {
		if err := postgres.SeedAdmin(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("seed del usuario admin")
		}
	}

	userRepo := postgres.NewUserRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	unitRepo := postgres.NewUnitRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	auditRepo := postgres.NewAuditRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, auditRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	catalogUC := usecase.NewCatalogUseCase(categoryRepo, unitRepo, auditRepo)
	productUC := usecase.NewProductUseCase(productRepo, auditRepo)
	userUC := usecase.NewUserUseCase(userRepo, auditRepo)
	registerMovementUC := inventory.NewRegisterMovementUseCase(txRunner, movementRepo)

	pdfGenerator := infrapdf.NewMarotoReportGenerator()
	reportUC := reporting.NewReportUseCase(reportRepo, auditRepo, pdfGenerator)

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
		Title:    "SND Stock API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:           authUC,
		CatalogUC:        catalogUC,
		ProductUC:        productUC,
		UserUC:           userUC,
		RegisterMovement: registerMovementUC,
		ReportUC:         reportUC,
		JWTSecret:        cfg.JWT.Secret,
	})

	sched := scheduler.New(cfg.Stock.LowStockCron, productRepo, auditRepo, log)
	if err := sched.Start(); err != nil {
		log.Fatal().Err(err).Msg("scheduler")
	}

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	sched.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
