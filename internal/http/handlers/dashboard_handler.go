package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "github.com/WebFlexrr/vendorsphere-sub000/internal/log"
	"github.com/WebFlexrr/vendorsphere-sub000/internal/repos"
)

type DashboardHandler struct {
	Stats *repos.StatsRepo
}

// GET /api/v1/dashboard
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	stats, err := h.Stats.Dashboard()
	if err != nil {
		applog.Error(c, "dashboard.fail", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, "could not load dashboard")
	}
	return c.JSON(stats)
}
