package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlug(t *testing.T) {
	assert.Equal(t, "marketing-performance", Slug("Marketing Performance"))
	assert.Equal(t, "q3-report-2026", Slug("  Q3 Report: 2026!  "))
	assert.Equal(t, "abc", Slug("a_b_c"))
	assert.Equal(t, "", Slug("---"))
}

func TestDocumentFilename(t *testing.T) {
	d := Document{Title: "Marketing Performance"}
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "marketing-performance-2026-08-30.pdf", d.Filename(now))
}

func TestCurrency(t *testing.T) {
	assert.Equal(t, "$0.00", Currency(0))
	assert.Equal(t, "$999.50", Currency(999.5))
	assert.Equal(t, "$1,234.56", Currency(1234.56))
	assert.Equal(t, "$1,234,567.89", Currency(1234567.89))
	assert.Equal(t, "-$1,000.00", Currency(-1000))
}

func TestNumber(t *testing.T) {
	assert.Equal(t, "42", Number(42))
	assert.Equal(t, "1,000", Number(1000))
	assert.Equal(t, "12,345,678", Number(12345678))
	assert.Equal(t, "-9,999", Number(-9999))
}

func TestRenderPDF(t *testing.T) {
	doc := Document{
		Title:     "Marketing Performance",
		Subtitle:  "VendorSphere",
		DateRange: "Last 30 days",
		Metrics: []Metric{
			{Label: "Total Spend", Value: "$12,500.00"},
			{Label: "Impressions", Value: "1,200,000"},
		},
		Tables: []Table{{
			Title:   "Campaigns",
			Columns: []string{"Name", "Spend", "Clicks"},
			Rows:    [][]string{{"Summer Sale", "$4,000.00", "18,400"}},
		}},
	}

	body, err := RenderPDF(doc)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(body, []byte("%PDF")), "output should be a PDF document")
	assert.Greater(t, len(body), 1000)
}
