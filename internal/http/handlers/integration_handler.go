package handlers

import (
	"database/sql"
	"errors"

	"github.com/gofiber/fiber/v2"

	applog "github.com/WebFlexrr/vendorsphere-sub000/internal/log"
	"github.com/WebFlexrr/vendorsphere-sub000/internal/services"
)

type IntegrationHandler struct {
	Integrations *services.IntegrationService
}

// GET /api/v1/admin/integrations
func (h *IntegrationHandler) List(c *fiber.Ctx) error {
	list, err := h.Integrations.List()
	if err != nil {
		applog.Error(c, "integrations.list.fail", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, "could not load integrations")
	}
	return c.JSON(fiber.Map{"integrations": list})
}

// POST /api/v1/admin/integrations/:id/connect
func (h *IntegrationHandler) Connect(c *fiber.Ctx) error {
	id := c.Params("id")
	in, err := h.Integrations.Connect(c.Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return jsonError(c, fiber.StatusNotFound, "integration not found")
		}
		applog.Error(c, "integrations.connect.fail", err, map[string]any{"integration": id})
		return jsonError(c, fiber.StatusBadGateway, "connect failed")
	}
	applog.Audit(c, "integrations.connect", map[string]any{"integration": id})
	return c.JSON(in)
}

// POST /api/v1/admin/integrations/:id/disconnect
func (h *IntegrationHandler) Disconnect(c *fiber.Ctx) error {
	id := c.Params("id")
	in, err := h.Integrations.Disconnect(c.Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return jsonError(c, fiber.StatusNotFound, "integration not found")
		}
		applog.Error(c, "integrations.disconnect.fail", err, map[string]any{"integration": id})
		return jsonError(c, fiber.StatusBadGateway, "disconnect failed")
	}
	applog.Audit(c, "integrations.disconnect", map[string]any{"integration": id})
	return c.JSON(in)
}
