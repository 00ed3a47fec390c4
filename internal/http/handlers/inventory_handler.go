package handlers

import (
	"database/sql"
	"errors"

	"github.com/gofiber/fiber/v2"

	applog "github.com/WebFlexrr/vendorsphere-sub000/internal/log"
	"github.com/WebFlexrr/vendorsphere-sub000/internal/services"
)

type InventoryHandler struct {
	Inv *services.InventoryService
}

// GET /api/v1/inventory
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	items, err := h.Inv.Items(listParams(c, "category", "status"))
	if err != nil {
		applog.Error(c, "inventory.list.fail", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, "could not load inventory")
	}
	return c.JSON(fiber.Map{"items": items})
}

// GET /api/v1/inventory/low-stock
func (h *InventoryHandler) LowStock(c *fiber.Ctx) error {
	items, err := h.Inv.LowStock()
	if err != nil {
		applog.Error(c, "inventory.lowstock.fail", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, "could not load low stock items")
	}
	return c.JSON(fiber.Map{"items": items, "count": len(items)})
}

// POST /api/v1/inventory/:id/adjust
func (h *InventoryHandler) Adjust(c *fiber.Ctx) error {
	var adj services.Adjustment
	if err := c.BodyParser(&adj); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "malformed body")
	}

	actor := ""
	if u := currentUser(c); u != nil {
		actor = u.ID
	}

	item, err := h.Inv.AdjustStock(c.Params("id"), adj, actor)
	switch {
	case errors.Is(err, services.ErrBadAdjustment):
		return jsonError(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrInsufficientStock):
		return jsonError(c, fiber.StatusConflict, err.Error())
	case errors.Is(err, sql.ErrNoRows):
		return jsonError(c, fiber.StatusNotFound, "inventory item not found")
	case err != nil:
		applog.Error(c, "inventory.adjust.fail", err, map[string]any{"item": c.Params("id")})
		return jsonError(c, fiber.StatusInternalServerError, "could not adjust stock")
	}

	applog.Audit(c, "inventory.adjust", map[string]any{
		"item": item.ID, "type": adj.Type, "quantity": adj.Quantity, "reference": adj.Reference,
	})
	return c.JSON(item)
}

// GET /api/v1/inventory/:productId/movements
func (h *InventoryHandler) Movements(c *fiber.Ctx) error {
	movs, err := h.Inv.Movements(c.Params("productId"))
	if err != nil {
		applog.Error(c, "inventory.movements.fail", err, map[string]any{"product": c.Params("productId")})
		return jsonError(c, fiber.StatusInternalServerError, "could not load movements")
	}
	return c.JSON(fiber.Map{"movements": movs})
}

// GET /api/v1/inventory/movements
func (h *InventoryHandler) Ledger(c *fiber.Ctx) error {
	movs, err := h.Inv.Ledger(c.QueryInt("limit", 200))
	if err != nil {
		applog.Error(c, "inventory.ledger.fail", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, "could not load ledger")
	}
	return c.JSON(fiber.Map{"movements": movs})
}
