package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/hendaya/pedidos-api/internal/application/dto"
	"github.com/hendaya/pedidos-api/internal/application/inventory"
	"github.com/hendaya/pedidos-api/internal/domain"
	"github.com/hendaya/pedidos-api/internal/domain/catalog"
)

// BranchHandler maneja el registro de sucursales y la sucursal activa.
type BranchHandler struct {
	store *inventory.Store
}

// NewBranchHandler construye el handler.
func NewBranchHandler(store *inventory.Store) *BranchHandler {
	return &BranchHandler{store: store}
}

// List devuelve las sucursales registradas y cuál está activa.
func (h *BranchHandler) List(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"items":  catalog.Branches,
		"active": h.store.ActiveBranch().ID,
	})
}

// SwitchActive cambia la sucursal activa y reconstruye la vista de trabajo.
func (h *BranchHandler) SwitchActive(c *fiber.Ctx) error {
	var in dto.SwitchBranchRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.store.SwitchBranch(c.Context(), in.BranchID); err != nil {
		if errors.Is(err, domain.ErrUnknownBranch) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "UNKNOWN_BRANCH", Message: "sucursal no registrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	branch := h.store.ActiveBranch()
	return c.JSON(fiber.Map{
		"message": "cambiado a sucursal " + branch.Name,
		"active":  branch.ID,
	})
}
