package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hendaya/pedidos-api/internal/domain/catalog"
	"github.com/hendaya/pedidos-api/internal/domain/entity"
)

// CatalogHandler expone el catálogo fijo de productos.
type CatalogHandler struct{}

// NewCatalogHandler construye el handler.
func NewCatalogHandler() *CatalogHandler { return &CatalogHandler{} }

// List devuelve el catálogo completo y las categorías, en orden de presentación.
func (h *CatalogHandler) List(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"items":      catalog.Products,
		"categories": entity.Categories,
	})
}
