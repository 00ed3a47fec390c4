package handlers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/WebFlexrr/vendorsphere-sub000/internal/export"
	applog "github.com/WebFlexrr/vendorsphere-sub000/internal/log"
	"github.com/WebFlexrr/vendorsphere-sub000/internal/listing"
	"github.com/WebFlexrr/vendorsphere-sub000/internal/repos"
	"github.com/WebFlexrr/vendorsphere-sub000/internal/services"
)

// ExportHandler serves the per-screen CSV downloads.
type ExportHandler struct {
	Inv     *services.InventoryService
	Catalog *services.CatalogService
	Orders  *repos.OrderRepo
}

// GET /api/v1/export/:entity — entity is inventory|products|orders|vendors.
// The optional name query overrides the download filename stem.
func (h *ExportHandler) Download(c *fiber.Ctx) error {
	entity := c.Params("entity")

	var records []export.Record
	var err error
	switch entity {
	case "inventory":
		records, err = h.inventoryRecords()
	case "products":
		records, err = h.productRecords()
	case "orders":
		records, err = h.orderRecords()
	case "vendors":
		records, err = h.vendorRecords()
	default:
		return jsonError(c, fiber.StatusNotFound, "unknown export entity")
	}
	if err != nil {
		applog.Error(c, "export.load.fail", err, map[string]any{"entity": entity})
		return jsonError(c, fiber.StatusInternalServerError, "could not load data")
	}

	body, err := export.CSV(records)
	if err != nil {
		if errors.Is(err, export.ErrEmptyExport) {
			applog.Info(c, "export.empty", map[string]any{"entity": entity})
			return jsonError(c, fiber.StatusBadRequest, "nothing to export")
		}
		applog.Error(c, "export.encode.fail", err, map[string]any{"entity": entity})
		return jsonError(c, fiber.StatusInternalServerError, "could not build export")
	}

	name := c.Query("name", entity)
	filename := export.Filename(name)
	applog.Audit(c, "export.csv", map[string]any{"entity": entity, "rows": len(records), "file": filename})
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(body)
}

func (h *ExportHandler) inventoryRecords() ([]export.Record, error) {
	items, err := h.Inv.Items(listing.Params{})
	if err != nil {
		return nil, err
	}
	out := make([]export.Record, 0, len(items))
	for _, it := range items {
		out = append(out, export.Record{
			{Name: "product", Value: it.ProductName},
			{Name: "sku", Value: it.SKU},
			{Name: "category", Value: it.Category},
			{Name: "vendor", Value: it.VendorName},
			{Name: "warehouse", Value: it.Warehouse},
			{Name: "in_stock", Value: fmt.Sprintf("%d", it.InStock)},
			{Name: "reorder_point", Value: fmt.Sprintf("%d", it.ReorderPoint)},
			{Name: "on_order", Value: fmt.Sprintf("%d", it.OnOrder)},
			{Name: "status", Value: it.Status},
			{Name: "last_updated", Value: it.LastUpdated},
		})
	}
	return out, nil
}

func (h *ExportHandler) productRecords() ([]export.Record, error) {
	products, err := h.Catalog.ListProducts(listing.Params{})
	if err != nil {
		return nil, err
	}
	out := make([]export.Record, 0, len(products))
	for _, p := range products {
		out = append(out, export.Record{
			{Name: "name", Value: p.Name},
			{Name: "sku", Value: p.SKU},
			{Name: "category", Value: p.Category},
			{Name: "cost_price", Value: fmt.Sprintf("%.2f", p.CostPrice)},
			{Name: "retail_price", Value: fmt.Sprintf("%.2f", p.RetailPrice)},
			{Name: "status", Value: p.Status},
		})
	}
	return out, nil
}

func (h *ExportHandler) orderRecords() ([]export.Record, error) {
	orders, err := h.Orders.List()
	if err != nil {
		return nil, err
	}
	out := make([]export.Record, 0, len(orders))
	for _, o := range orders {
		out = append(out, export.Record{
			{Name: "id", Value: o.ID},
			{Name: "customer", Value: o.CustomerName},
			{Name: "email", Value: o.CustomerEmail},
			{Name: "total", Value: fmt.Sprintf("%.2f", o.Total)},
			{Name: "status", Value: o.Status},
			{Name: "created_at", Value: o.CreatedAt},
		})
	}
	return out, nil
}

func (h *ExportHandler) vendorRecords() ([]export.Record, error) {
	vendors, err := h.Catalog.ListVendors(listing.Params{})
	if err != nil {
		return nil, err
	}
	out := make([]export.Record, 0, len(vendors))
	for _, v := range vendors {
		out = append(out, export.Record{
			{Name: "name", Value: v.Name},
			{Name: "contact_email", Value: v.ContactEmail},
			{Name: "phone", Value: v.Phone},
			{Name: "commission_rate", Value: fmt.Sprintf("%.1f", v.CommissionRate)},
			{Name: "status", Value: v.Status},
		})
	}
	return out, nil
}
