package report

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// BuildPDF renders r as a single A4 document.
func BuildPDF(r Report) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetFont("Arial", "B", 14)
	pdf.AddPage()

	pdf.Cell(0, 8, tr(r.Title))
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, tr(fmt.Sprintf("Source: %s", r.Source)))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Generated: %s", r.GeneratedAt.Format(time.RFC3339)))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Sessions: %d", r.Sessions))
	pdf.Ln(8)

	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 7, "Charging Data Insights")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 10)
	for _, l := range r.Insights.Lines() {
		pdf.Cell(0, 6, tr(fmt.Sprintf("%s: %s", l.Label, l.Value)))
		pdf.Ln(5)
	}
	pdf.Ln(4)

	bullets := func(title string, items []string) {
		pdf.SetFont("Arial", "B", 12)
		pdf.Cell(0, 7, tr(title))
		pdf.Ln(8)
		pdf.SetFont("Arial", "", 10)
		for _, item := range items {
			pdf.MultiCell(0, 5, tr("- "+item), "", "L", false)
		}
		pdf.Ln(3)
	}
	bullets("Interpretation & Recommendations", r.Interpretation)
	bullets("Recommended solutions", r.Recommendations)
	bullets("Expected Impact", r.Impact)

	// Hourly table
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(20, 6, "Hour", "1", 0, "C", false, 0, "")
	pdf.CellFormat(30, 6, "Sessions", "1", 0, "C", false, 0, "")
	pdf.CellFormat(40, 6, "Energy (kWh)", "1", 0, "C", false, 0, "")
	pdf.CellFormat(40, 6, "Cost (RM)", "1", 0, "C", false, 0, "")
	pdf.CellFormat(40, 6, "Alerts tariff", "1", 0, "C", false, 0, "")
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 10)
	for _, h := range r.Hours {
		pdf.CellFormat(20, 6, fmt.Sprintf("%d:00", h.Hour), "1", 0, "C", false, 0, "")
		pdf.CellFormat(30, 6, fmt.Sprintf("%d", h.Sessions), "1", 0, "R", false, 0, "")
		pdf.CellFormat(40, 6, fmt.Sprintf("%.2f", h.KWh), "1", 0, "R", false, 0, "")
		pdf.CellFormat(40, 6, fmt.Sprintf("%.2f", h.CostRM), "1", 0, "R", false, 0, "")
		pdf.CellFormat(40, 6, string(h.Alerts), "1", 0, "C", false, 0, "")
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("write pdf: %w", err)
	}
	return buf.Bytes(), nil
}
