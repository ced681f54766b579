package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/ventas-api/internal/application/reporting"
	"github.com/jhoicas/ventas-api/internal/application/seeding"
	"github.com/jhoicas/ventas-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CategoryUC  *usecase.CategoryUseCase
	ProductUC   *usecase.ProductUseCase
	InventoryUC *usecase.InventoryUseCase
	SaleUC      *usecase.SaleUseCase
	RevenueUC   *reporting.RevenueUseCase
	Seeder      *seeding.Seeder
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Categories
	categories := api.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", categoryHandler.Create)

	// Products
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)

	// Inventory
	inventory := api.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	inventory.Post("/", inventoryHandler.Create)
	inventory.Get("/", inventoryHandler.List)
	inventory.Get("/alerts", inventoryHandler.ListAlerts)
	inventory.Put("/:id", inventoryHandler.Update)

	// Sales y reportes de ingresos. Las rutas de reportes van antes que
	// cualquier parámetro de ruta para que Fiber no las capture.
	sales := api.Group("/sales")
	saleHandler := NewSaleHandler(deps.SaleUC)
	revenueHandler := NewRevenueHandler(deps.RevenueUC)
	sales.Get("/revenue/compare", revenueHandler.CompareRevenue)
	sales.Get("/revenue/categories", revenueHandler.CompareCategories)
	sales.Get("/revenue", revenueHandler.GetRevenue)
	sales.Post("/", saleHandler.Create)
	sales.Get("/", saleHandler.List)

	// Seed de datos de demo
	seedHandler := NewSeedHandler(deps.Seeder)
	api.Post("/seed", seedHandler.Seed)
}
