package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	applog "github.com/WebFlexrr/vendorsphere-sub000/internal/log"
	"github.com/WebFlexrr/vendorsphere-sub000/internal/report"
	"github.com/WebFlexrr/vendorsphere-sub000/internal/repos"
	"github.com/WebFlexrr/vendorsphere-sub000/internal/services"
)

// ReportHandler renders the marketing report. Preview and download consume
// the same assembled document.
type ReportHandler struct {
	Marketing *services.MarketingService
	Settings  *repos.SettingsRepo
}

func (h *ReportHandler) document(c *fiber.Ctx) (report.Document, error) {
	storeName := "VendorSphere"
	if s, err := h.Settings.Get(); err == nil {
		storeName = s.StoreName
	}
	dateRange := c.Query("range", "Last 30 days")
	return h.Marketing.PerformanceReport(storeName, dateRange)
}

// GET /api/v1/reports/marketing — HTML preview.
func (h *ReportHandler) Preview(c *fiber.Ctx) error {
	doc, err := h.document(c)
	if err != nil {
		applog.Error(c, "reports.preview.fail", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, "could not build report")
	}
	return c.Render("report", fiber.Map{"Doc": doc})
}

// GET /api/v1/reports/marketing.pdf — PDF download.
func (h *ReportHandler) DownloadPDF(c *fiber.Ctx) error {
	doc, err := h.document(c)
	if err != nil {
		applog.Error(c, "reports.pdf.fail", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, "could not build report")
	}
	body, err := report.RenderPDF(doc)
	if err != nil {
		applog.Error(c, "reports.pdf.render.fail", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, "could not render report")
	}
	filename := doc.Filename(time.Now())
	applog.Audit(c, "reports.pdf", map[string]any{"file": filename})
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(body)
}
