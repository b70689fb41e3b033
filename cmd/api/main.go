package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/ludsonalmeida/vrtd-inventory-sub000/internal/application/auth"
	"github.com/ludsonalmeida/vrtd-inventory-sub000/internal/application/inventory"
	"github.com/ludsonalmeida/vrtd-inventory-sub000/internal/application/reports"
	"github.com/ludsonalmeida/vrtd-inventory-sub000/internal/application/usecase"
	infrapdf "github.com/ludsonalmeida/vrtd-inventory-sub000/internal/infrastructure/pdf"
	"github.com/ludsonalmeida/vrtd-inventory-sub000/internal/infrastructure/postgres"
	httpRouter "github.com/ludsonalmeida/vrtd-inventory-sub000/internal/interfaces/http"
	"github.com/ludsonalmeida/vrtd-inventory-sub000/pkg/config"
	"github.com/ludsonalmeida/vrtd-inventory-sub000/pkg/logger"
	"github.com/ludsonalmeida/vrtd-inventory-sub000/pkg/metrics"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão ao PostgreSQL")
	}
	defer pool.Close()

	productRepo := postgres.NewProductRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	unitRepo := postgres.NewUnitRepository(pool)
	stockItemRepo := postgres.NewStockItemRepository(pool)
	movementRepo := postgres.NewStockMovementRepository(pool)
	reservationRepo := postgres.NewReservationRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	productUC := usecase.NewProductUseCase(productRepo, categoryRepo, supplierRepo, unitRepo)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	unitUC := usecase.NewUnitUseCase(unitRepo)
	stockItemUC := usecase.NewStockItemUseCase(stockItemRepo, productRepo, categoryRepo, unitRepo)
	menuUC := usecase.NewMenuUseCase(productRepo, categoryRepo)
	reservationUC := usecase.NewReservationUseCase(reservationRepo)

	dailyCountUC := inventory.NewDailyCountUseCase(txRunner, productRepo, cfg.Count)
	movementUC := inventory.NewMovementUseCase(txRunner, productRepo, movementRepo)
	valuationUC := inventory.NewValuationUseCase(stockItemRepo, cfg.Valuation.DraftCategories)

	// PDF: relatório de CMV do período
	pdfGenerator := infrapdf.NewMarotoReportGenerator()
	cmvReportUC := reports.NewCMVReportUseCase(valuationUC, pdfGenerator, cfg.App.Name)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	m := metrics.New("vrtd_inventory")

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI em local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "VRTD Inventory API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	if cfg.Metrics.Enabled {
		app.Get("/metrics", adaptor.HTTPHandler(m.Handler()))
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:     productUC,
		CategoryUC:    categoryUC,
		SupplierUC:    supplierUC,
		UnitUC:        unitUC,
		StockItemUC:   stockItemUC,
		DailyCountUC:  dailyCountUC,
		MovementUC:    movementUC,
		ValuationUC:   valuationUC,
		CMVReportUC:   cmvReportUC,
		MenuUC:        menuUC,
		ReservationUC: reservationUC,
		AuthUC:        authUC,
		Metrics:       m,
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

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("encerramento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}
