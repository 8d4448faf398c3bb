package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hendaya/pedidos-api/internal/application/dto"
	"github.com/hendaya/pedidos-api/internal/application/inventory"
	"github.com/hendaya/pedidos-api/internal/domain/entity"
)

// InventoryHandler maneja la vista de trabajo de la sucursal activa.
type InventoryHandler struct {
	store *inventory.Store
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(store *inventory.Store) *InventoryHandler {
	return &InventoryHandler{store: store}
}

// GetView devuelve la vista de trabajo, filtrable por categoría (query
// `category`) y por substring del nombre (query `search`, sin distinguir
// mayúsculas ni tildes).
func (h *InventoryHandler) GetView(c *fiber.Ctx) error {
	category := entity.Category(c.Query("category"))
	if category != "" && !category.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "categoría desconocida"})
	}
	items := h.store.Filter(category, c.Query("search"))
	return c.JSON(fiber.Map{
		"branch": h.store.ActiveBranch().ID,
		"items":  items,
		"total":  len(items),
	})
}

// GetSummary devuelve los contadores de la vista: ítems en la orden, unidades
// totales a pedir y productos con stock bajo.
func (h *InventoryHandler) GetSummary(c *fiber.Ctx) error {
	return c.JSON(h.store.Summarize())
}

// SetStock fija el stock actual de un producto. Valores no numéricos o
// negativos quedan en 0.
func (h *InventoryHandler) SetStock(c *fiber.Ctx) error {
	var in dto.SetStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.store.SetStock(c.Context(), c.Params("productId"), int(in.Stock)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"message": "stock actualizado"})
}

// SetQuantity fija la cantidad a pedir de un producto. Valores no numéricos o
// negativos quedan en 0.
func (h *InventoryHandler) SetQuantity(c *fiber.Ctx) error {
	var in dto.SetQuantityRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.store.SetOrderQuantity(c.Context(), c.Params("productId"), int(in.Quantity)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"message": "cantidad actualizada"})
}
