package report

import (
	"bytes"

	"github.com/go-pdf/fpdf"
)

// RenderPDF lays the document out on A4 pages and returns the PDF bytes.
func RenderPDF(doc Document) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 18)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, doc.Title, "", 1, "L", false, 0, "")
	if doc.Subtitle != "" {
		pdf.SetFont("Helvetica", "", 11)
		pdf.SetTextColor(90, 90, 90)
		pdf.CellFormat(0, 6, doc.Subtitle, "", 1, "L", false, 0, "")
	}
	if doc.DateRange != "" {
		pdf.SetFont("Helvetica", "I", 9)
		pdf.CellFormat(0, 5, doc.DateRange, "", 1, "L", false, 0, "")
	}
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(4)

	if len(doc.Metrics) > 0 {
		colW := 190.0 / float64(len(doc.Metrics))
		pdf.SetFont("Helvetica", "", 8)
		pdf.SetTextColor(90, 90, 90)
		for _, m := range doc.Metrics {
			pdf.CellFormat(colW, 5, m.Label, "", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Helvetica", "B", 12)
		pdf.SetTextColor(0, 0, 0)
		for _, m := range doc.Metrics {
			pdf.CellFormat(colW, 7, m.Value, "", 0, "L", false, 0, "")
		}
		pdf.Ln(10)
	}

	for _, tbl := range doc.Tables {
		renderTable(pdf, tbl)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func renderTable(pdf *fpdf.Fpdf, tbl Table) {
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 8, tbl.Title, "", 1, "L", false, 0, "")

	if len(tbl.Columns) == 0 {
		return
	}
	colW := 190.0 / float64(len(tbl.Columns))

	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetFillColor(240, 240, 240)
	for _, col := range tbl.Columns {
		pdf.CellFormat(colW, 6, col, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 8)
	for _, row := range tbl.Rows {
		for i := range tbl.Columns {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			pdf.CellFormat(colW, 6, cell, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}
	pdf.Ln(6)
}
