package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/wms-api/internal/application/inventory"
	"github.com/tu-usuario/wms-api/internal/application/label"
	"github.com/tu-usuario/wms-api/internal/application/report"
	"github.com/tu-usuario/wms-api/internal/application/usecase"
	"github.com/tu-usuario/wms-api/pkg/config"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC        *usecase.ProductUseCase
	LocationUC       *usecase.LocationUseCase
	StockUC          *usecase.StockUseCase
	RegisterMovement *inventory.RegisterMovementUseCase
	ReportUC         *report.ReportUseCase
	LabelUC          *label.LabelUseCase
	Auth             config.AuthConfig
	JWT              config.JWTConfig
}

// Router registra las rutas de la API. Las lecturas son públicas; las
// escrituras requieren Bearer Token.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	authRequired := AuthMiddleware(deps.JWT.Secret)

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.Auth, deps.JWT)
	authGroup.Post("/login", authHandler.Login)

	// Productos
	products := api.Group("/produtos")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Post("/", authRequired, productHandler.Create)

	// Posiciones
	locations := api.Group("/locais")
	locationHandler := NewLocationHandler(deps.LocationUC)
	locations.Get("/", locationHandler.List)
	locations.Post("/", authRequired, locationHandler.Create)

	// Stock
	stock := api.Group("/estoque")
	stockHandler := NewStockHandler(deps.StockUC)
	stock.Get("/", stockHandler.List)
	stock.Post("/", authRequired, stockHandler.Create)
	stock.Post("/popular", authRequired, stockHandler.Seed)
	stock.Get("/local/:local_id", stockHandler.ByLocation)
	stock.Get("/produto/:produto_id", stockHandler.ByProduct)

	// Movimientos
	movements := api.Group("/movimentacoes")
	movementHandler := NewMovementHandler(deps.RegisterMovement)
	movements.Get("/", movementHandler.List)
	movements.Post("/", authRequired, movementHandler.Register)
	movements.Get("/filtrar", movementHandler.Filter)

	// Reportes (solo lectura)
	reports := api.Group("/relatorios")
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/estoque-geral", reportHandler.StockOverview)
	reports.Get("/resumo-movimentacoes", reportHandler.MovementSummary)
	reports.Get("/estoque-produto/:produto_id", reportHandler.StockForProduct)
	reports.Get("/inventario-por-local", reportHandler.InventoryByLocation)
	reports.Get("/movimentacoes", reportHandler.MovementsInRange)
	reports.Get("/operacoes", reportHandler.AllOperations)

	// Etiquetas QR (solo lectura)
	labels := api.Group("/etiquetas")
	labelHandler := NewLabelHandler(deps.LabelUC)
	labels.Get("/produto/:id", labelHandler.ProductLabel)
	labels.Get("/local/:id", labelHandler.LocationLabel)
}
