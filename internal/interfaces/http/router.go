package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hendaya/pedidos-api/internal/application/inventory"
	"github.com/hendaya/pedidos-api/internal/application/orders"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Store  *inventory.Store
	Orders *orders.UseCase
}

// Router registra las rutas de la API. Sin autenticación: la app es una
// herramienta interna de un solo usuario por sucursal.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Sucursales
	branches := api.Group("/branches")
	branchHandler := NewBranchHandler(deps.Store)
	branches.Get("/", branchHandler.List)
	branches.Put("/active", branchHandler.SwitchActive)

	// Catálogo (estático)
	catalogHandler := NewCatalogHandler()
	api.Get("/catalog", catalogHandler.List)

	// Inventario de la sucursal activa
	inv := api.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.Store)
	inv.Get("/", inventoryHandler.GetView)
	inv.Get("/summary", inventoryHandler.GetSummary)
	inv.Put("/:productId/stock", inventoryHandler.SetStock)
	inv.Put("/:productId/quantity", inventoryHandler.SetQuantity)

	// Órdenes de compra
	ordersGroup := api.Group("/orders")
	orderHandler := NewOrderHandler(deps.Orders, deps.Store)
	ordersGroup.Post("/", orderHandler.Create)
	ordersGroup.Delete("/current", orderHandler.ClearCurrent)
}
