package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/hendaya/pedidos-api/internal/application/dto"
	"github.com/hendaya/pedidos-api/internal/application/inventory"
	"github.com/hendaya/pedidos-api/internal/application/orders"
	"github.com/hendaya/pedidos-api/internal/domain"
)

// OrderHandler maneja la generación de órdenes de compra y el pedido en curso.
type OrderHandler struct {
	uc    *orders.UseCase
	store *inventory.Store
}

// NewOrderHandler construye el handler.
func NewOrderHandler(uc *orders.UseCase, store *inventory.Store) *OrderHandler {
	return &OrderHandler{uc: uc, store: store}
}

// Create genera la orden de compra de la sucursal activa y avanza el folio.
// Con ?format=pdf devuelve el PDF como descarga; si no, el documento de texto
// dentro de un JSON. Sin cantidades a pedir responde 409 EMPTY_ORDER.
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	if c.Query("format") == "pdf" {
		doc, err := h.uc.GeneratePDF(c.Context())
		if err != nil {
			return orderError(c, err)
		}
		c.Set(fiber.HeaderContentType, "application/pdf")
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+doc.FileName+`"`)
		return c.Status(fiber.StatusCreated).Send(doc.Content)
	}

	doc, err := h.uc.Generate(c.Context())
	if err != nil {
		return orderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(doc)
}

// ClearCurrent deja en 0 todas las cantidades a pedir de la sucursal activa.
func (h *OrderHandler) ClearCurrent(c *fiber.Ctx) error {
	if err := h.store.ClearOrder(c.Context()); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"message": "pedido en curso vaciado"})
}

func orderError(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrEmptyOrder) {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code:    "EMPTY_ORDER",
			Message: "no hay productos en el carro para crear un pedido",
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
