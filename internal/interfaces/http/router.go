package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/ludsonalmeida/vrtd-inventory-sub000/internal/application/auth"
	"github.com/ludsonalmeida/vrtd-inventory-sub000/internal/application/inventory"
	"github.com/ludsonalmeida/vrtd-inventory-sub000/internal/application/reports"
	"github.com/ludsonalmeida/vrtd-inventory-sub000/internal/application/usecase"
	"github.com/ludsonalmeida/vrtd-inventory-sub000/internal/domain/entity"
	"github.com/ludsonalmeida/vrtd-inventory-sub000/pkg/metrics"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	ProductUC     *usecase.ProductUseCase
	CategoryUC    *usecase.CategoryUseCase
	SupplierUC    *usecase.SupplierUseCase
	UnitUC        *usecase.UnitUseCase
	StockItemUC   *usecase.StockItemUseCase
	DailyCountUC  *inventory.DailyCountUseCase
	MovementUC    *inventory.MovementUseCase
	ValuationUC   *inventory.ValuationUseCase
	CMVReportUC   *reports.CMVReportUseCase
	MenuUC        *usecase.MenuUseCase
	ReservationUC *usecase.ReservationUseCase
	AuthUC        *auth.AuthUseCase
	Metrics       *metrics.Metrics
	JWTSecret     string
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Público: cardápio e criação de reservas
	publicHandler := NewPublicHandler(deps.MenuUC, deps.ReservationUC)
	api.Get("/menu", publicHandler.Menu)
	api.Post("/reservations", publicHandler.CreateReservation)

	// Rotas protegidas (requerem Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Registro de usuário: apenas admin
	protected.Post("/auth/register", RequireRole(entity.RoleAdmin), authHandler.Register)

	adminOnly := RequireRole(entity.RoleAdmin)

	// Estoque: itens, contagem diária, ledger e valorização
	stock := protected.Group("/stock")
	stockHandler := NewStockHandler(deps.StockItemUC, deps.DailyCountUC, deps.Metrics)
	movementHandler := NewMovementHandler(deps.MovementUC, deps.Metrics)
	valuationHandler := NewValuationHandler(deps.ValuationUC, deps.CMVReportUC, deps.Metrics)
	stock.Post("/daily-count", stockHandler.DailyCount)
	stock.Post("/movements", movementHandler.Register)
	stock.Get("/movements", movementHandler.List)
	stock.Get("/valuation", valuationHandler.Report)
	stock.Post("/", stockHandler.Create)
	stock.Get("/", stockHandler.List)
	stock.Get("/:id", stockHandler.GetByID)
	stock.Put("/:id", stockHandler.Update)
	stock.Delete("/:id", adminOnly, stockHandler.Delete)

	// Relatórios
	reportsGroup := protected.Group("/reports")
	reportsGroup.Get("/cmv/pdf", valuationHandler.DownloadPDF)

	// Produtos
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", adminOnly, productHandler.Delete)

	// Categorias
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", adminOnly, categoryHandler.Delete)

	// Fornecedores
	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", adminOnly, supplierHandler.Delete)

	// Unidades de medida
	units := protected.Group("/units")
	unitHandler := NewUnitHandler(deps.UnitUC)
	units.Post("/", unitHandler.Create)
	units.Get("/", unitHandler.List)
	units.Get("/:id", unitHandler.GetByID)
	units.Put("/:id", unitHandler.Update)
	units.Delete("/:id", adminOnly, unitHandler.Delete)

	// Gestão de reservas
	reservations := protected.Group("/reservations")
	reservationHandler := NewReservationHandler(deps.ReservationUC)
	reservations.Get("/", reservationHandler.List)
	reservations.Get("/:id", reservationHandler.GetByID)
	reservations.Put("/:id/status", reservationHandler.UpdateStatus)
}
