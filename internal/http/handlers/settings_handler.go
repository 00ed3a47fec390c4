package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/WebFlexrr/vendorsphere-sub000/internal/domain"
	applog "github.com/WebFlexrr/vendorsphere-sub000/internal/log"
	"github.com/WebFlexrr/vendorsphere-sub000/internal/repos"
	"github.com/WebFlexrr/vendorsphere-sub000/internal/validate"
)

type SettingsHandler struct {
	Settings *repos.SettingsRepo
}

// GET /api/v1/admin/settings
func (h *SettingsHandler) Get(c *fiber.Ctx) error {
	s, err := h.Settings.Get()
	if err != nil {
		applog.Error(c, "settings.get.fail", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, "could not load settings")
	}
	return c.JSON(s)
}

// PUT /api/v1/admin/settings
func (h *SettingsHandler) Update(c *fiber.Ctx) error {
	var s domain.StoreSettings
	if err := c.BodyParser(&s); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "malformed body")
	}
	if _, ok := validate.Name(s.StoreName); !ok {
		return jsonError(c, fiber.StatusBadRequest, "invalid store name")
	}
	if s.SupportEmail != "" {
		if _, ok := validate.Email(s.SupportEmail); !ok {
			return jsonError(c, fiber.StatusBadRequest, "invalid support email")
		}
	}
	if s.TaxRate < 0 || s.TaxRate > 100 {
		return jsonError(c, fiber.StatusBadRequest, "tax rate out of range")
	}
	if err := h.Settings.Update(&s); err != nil {
		applog.Error(c, "settings.update.fail", err, nil)
		return jsonError(c, fiber.StatusBadRequest, "could not save settings")
	}
	applog.Audit(c, "settings.update", map[string]any{"store": s.StoreName})
	return c.JSON(s)
}
