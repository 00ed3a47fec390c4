package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/WebFlexrr/vendorsphere-sub000/internal/domain"
	applog "github.com/WebFlexrr/vendorsphere-sub000/internal/log"
	"github.com/WebFlexrr/vendorsphere-sub000/internal/services"
	"github.com/WebFlexrr/vendorsphere-sub000/internal/validate"
)

type ProductHandler struct {
	Catalog *services.CatalogService
}

// GET /api/v1/products
func (h *ProductHandler) List(c *fiber.Ctx) error {
	products, err := h.Catalog.ListProducts(listParams(c, "category", "status", "vendor"))
	if err != nil {
		applog.Error(c, "products.list.fail", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, "could not load products")
	}
	return c.JSON(fiber.Map{"products": products})
}

// POST /api/v1/products
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var p domain.Product
	if err := c.BodyParser(&p); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "malformed body")
	}
	if _, ok := validate.SKU(p.SKU); !ok {
		return jsonError(c, fiber.StatusBadRequest, "invalid sku")
	}
	if err := h.Catalog.CreateProduct(&p); err != nil {
		if errors.Is(err, services.ErrMissingFields) {
			return jsonError(c, fiber.StatusBadRequest, err.Error())
		}
		applog.Error(c, "products.create.fail", err, nil)
		return jsonError(c, fiber.StatusBadRequest, "could not create product")
	}
	applog.Audit(c, "products.create", map[string]any{"product": p.ID, "sku": p.SKU})
	return c.Status(fiber.StatusCreated).JSON(p)
}

// PUT /api/v1/products/:id
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var p domain.Product
	if err := c.BodyParser(&p); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "malformed body")
	}
	p.ID = c.Params("id")
	if err := h.Catalog.UpdateProduct(&p); err != nil {
		if errors.Is(err, services.ErrMissingFields) {
			return jsonError(c, fiber.StatusBadRequest, err.Error())
		}
		applog.Error(c, "products.update.fail", err, map[string]any{"product": p.ID})
		return jsonError(c, fiber.StatusBadRequest, "could not update product")
	}
	applog.Audit(c, "products.update", map[string]any{"product": p.ID})
	return c.JSON(p)
}

// DELETE /api/v1/products/:id
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.Catalog.Products.Delete(id); err != nil {
		applog.Error(c, "products.delete.fail", err, map[string]any{"product": id})
		return jsonError(c, fiber.StatusBadRequest, "could not delete product")
	}
	applog.Audit(c, "products.delete", map[string]any{"product": id})
	return c.SendStatus(fiber.StatusNoContent)
}
