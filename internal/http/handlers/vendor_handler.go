package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/WebFlexrr/vendorsphere-sub000/internal/domain"
	applog "github.com/WebFlexrr/vendorsphere-sub000/internal/log"
	"github.com/WebFlexrr/vendorsphere-sub000/internal/services"
)

type VendorHandler struct {
	Catalog *services.CatalogService
}

// GET /api/v1/vendors
func (h *VendorHandler) List(c *fiber.Ctx) error {
	vendors, err := h.Catalog.ListVendors(listParams(c, "status"))
	if err != nil {
		applog.Error(c, "vendors.list.fail", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, "could not load vendors")
	}
	return c.JSON(fiber.Map{"vendors": vendors})
}

// POST /api/v1/vendors
func (h *VendorHandler) Create(c *fiber.Ctx) error {
	var v domain.Vendor
	if err := c.BodyParser(&v); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "malformed body")
	}
	if err := h.Catalog.CreateVendor(&v); err != nil {
		if errors.Is(err, services.ErrMissingFields) {
			return jsonError(c, fiber.StatusBadRequest, err.Error())
		}
		applog.Error(c, "vendors.create.fail", err, nil)
		return jsonError(c, fiber.StatusBadRequest, "could not create vendor")
	}
	applog.Audit(c, "vendors.create", map[string]any{"vendor": v.ID})
	return c.Status(fiber.StatusCreated).JSON(v)
}

// PUT /api/v1/vendors/:id
func (h *VendorHandler) Update(c *fiber.Ctx) error {
	var v domain.Vendor
	if err := c.BodyParser(&v); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "malformed body")
	}
	v.ID = c.Params("id")
	if err := h.Catalog.UpdateVendor(&v); err != nil {
		if errors.Is(err, services.ErrMissingFields) {
			return jsonError(c, fiber.StatusBadRequest, err.Error())
		}
		applog.Error(c, "vendors.update.fail", err, map[string]any{"vendor": v.ID})
		return jsonError(c, fiber.StatusBadRequest, "could not update vendor")
	}
	applog.Audit(c, "vendors.update", map[string]any{"vendor": v.ID})
	return c.JSON(v)
}
