package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/batmanhot/logistica-inventario/internal/application/auth"
	"github.com/batmanhot/logistica-inventario/internal/application/batch"
	"github.com/batmanhot/logistica-inventario/internal/application/catalog"
	"github.com/batmanhot/logistica-inventario/internal/application/directory"
	"github.com/batmanhot/logistica-inventario/internal/application/inventory"
	"github.com/batmanhot/logistica-inventario/internal/application/location"
	"github.com/batmanhot/logistica-inventario/internal/application/report"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AppName     string
	AuthUC      *auth.AuthUseCase
	CatalogUC   *catalog.UseCase
	InventoryUC *inventory.UseCase
	ReportUC    *report.UseCase
	BatchUC     *batch.UseCase
	LocationUC  *location.UseCase
	PartnerUC   *directory.PartnerUseCase
	CarrierUC   *directory.CarrierUseCase
	CategoryUC  *directory.CategoryUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": deps.AppName})
	})

	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token); las mutaciones exigen rol admin
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	write := RequireRole(auth.RoleAdmin)

	// Catálogo y bodegas
	catalogHandler := NewCatalogHandler(deps.CatalogUC, deps.InventoryUC.Warehouses)
	protected.Get("/warehouses", catalogHandler.Warehouses)
	catalogGroup := protected.Group("/catalog")
	catalogGroup.Get("/", catalogHandler.List)
	catalogGroup.Post("/", write, catalogHandler.Create)
	catalogGroup.Get("/:sku", catalogHandler.GetBySKU)
	catalogGroup.Put("/:sku", write, catalogHandler.Update)
	catalogGroup.Delete("/:sku", write, catalogHandler.Delete)

	// Directorios: socios, transportistas y categorías
	partnerHandler := NewPartnerHandler(deps.PartnerUC)
	partners := protected.Group("/partners")
	partners.Get("/", partnerHandler.List)
	partners.Get("/clients", partnerHandler.Clients)
	partners.Get("/suppliers", partnerHandler.Suppliers)
	partners.Post("/", write, partnerHandler.Create)
	partners.Put("/:id", write, partnerHandler.Update)
	partners.Delete("/:id", write, partnerHandler.Delete)

	carrierHandler := NewCarrierHandler(deps.CarrierUC)
	carriers := protected.Group("/carriers")
	carriers.Get("/", carrierHandler.List)
	carriers.Post("/", write, carrierHandler.Create)
	carriers.Put("/:id", write, carrierHandler.Update)
	carriers.Delete("/:id", write, carrierHandler.Delete)

	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories := protected.Group("/categories")
	categories.Get("/", categoryHandler.List)
	categories.Post("/", write, categoryHandler.Create)
	categories.Put("/:id", write, categoryHandler.Update)
	categories.Delete("/:id", write, categoryHandler.Delete)

	// Stock, tablero y reporte
	stockHandler := NewStockHandler(deps.InventoryUC, deps.ReportUC)
	protected.Get("/stock", stockHandler.List)
	protected.Get("/stock/report.pdf", stockHandler.ReportPDF)
	protected.Get("/dashboard/summary", stockHandler.Summary)

	// Movimientos
	movementHandler := NewMovementHandler(deps.InventoryUC)
	movements := protected.Group("/movements")
	movements.Get("/", movementHandler.List)
	movements.Post("/inbound", write, movementHandler.Inbound)
	movements.Post("/outbound", write, movementHandler.Outbound)
	movements.Post("/transfers", write, movementHandler.Transfer)
	movements.Get("/:id", movementHandler.GetByID)
	movements.Put("/:id", write, movementHandler.Update)
	movements.Delete("/:id", write, movementHandler.Delete)

	// Lotes
	batchHandler := NewBatchHandler(deps.BatchUC)
	batches := protected.Group("/batches")
	batches.Get("/", batchHandler.List)
	batches.Post("/", write, batchHandler.Create)
	batches.Post("/sweep", write, batchHandler.Sweep)
	batches.Put("/:id", write, batchHandler.Update)
	batches.Delete("/:id", write, batchHandler.Delete)

	// Ubicaciones
	locationHandler := NewLocationHandler(deps.LocationUC)
	locations := protected.Group("/locations")
	locations.Get("/", locationHandler.List)
	locations.Get("/available", locationHandler.Available)
	locations.Post("/", write, locationHandler.Create)
	locations.Post("/recompute", write, locationHandler.Recompute)
	locations.Put("/:id", write, locationHandler.Update)
	locations.Delete("/:id", write, locationHandler.Delete)
}
