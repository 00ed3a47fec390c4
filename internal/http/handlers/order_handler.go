package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "github.com/WebFlexrr/vendorsphere-sub000/internal/log"
	"github.com/WebFlexrr/vendorsphere-sub000/internal/services"
)

type OrderHandler struct {
	Orders *services.OrderService
}

// GET /api/v1/orders
func (h *OrderHandler) List(c *fiber.Ctx) error {
	orders, err := h.Orders.List(listParams(c, "status", "vendor"))
	if err != nil {
		applog.Error(c, "orders.list.fail", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, "could not load orders")
	}
	return c.JSON(fiber.Map{"orders": orders})
}

type orderStatusRequest struct {
	Status string `json:"status"`
}

// POST /api/v1/orders/:id/status
func (h *OrderHandler) UpdateStatus(c *fiber.Ctx) error {
	var req orderStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "malformed body")
	}
	id := c.Params("id")
	if id == "" || req.Status == "" {
		return jsonError(c, fiber.StatusBadRequest, "missing id or status")
	}
	if err := h.Orders.UpdateStatus(id, req.Status); err != nil {
		applog.Error(c, "orders.update.fail", err, map[string]any{"order": id})
		return jsonError(c, fiber.StatusBadRequest, "could not update status")
	}
	applog.Audit(c, "orders.update", map[string]any{"order": id, "status": req.Status})
	return c.JSON(fiber.Map{"id": id, "status": req.Status})
}
