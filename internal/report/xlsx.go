package report

import (
	"bytes"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
)

// BuildXLSX renders r as a workbook with summary, hourly and locations sheets.
func BuildXLSX(r Report) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	summarySheet := "summary"
	hourlySheet := "hourly"
	locationsSheet := "locations"
	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}
	if _, err := f.NewSheet(hourlySheet); err != nil {
		return nil, fmt.Errorf("add sheet %s: %w", hourlySheet, err)
	}
	if _, err := f.NewSheet(locationsSheet); err != nil {
		return nil, fmt.Errorf("add sheet %s: %w", locationsSheet, err)
	}

	_ = f.SetCellValue(summarySheet, "A1", r.Title)
	_ = f.SetCellValue(summarySheet, "A3", "Source")
	_ = f.SetCellValue(summarySheet, "B3", r.Source)
	_ = f.SetCellValue(summarySheet, "A4", "Generated")
	_ = f.SetCellValue(summarySheet, "B4", r.GeneratedAt.Format(time.RFC3339))
	_ = f.SetCellValue(summarySheet, "A5", "Sessions")
	_ = f.SetCellValue(summarySheet, "B5", r.Sessions)
	row := 7
	for _, l := range r.Insights.Lines() {
		_ = f.SetCellValue(summarySheet, fmt.Sprintf("A%d", row), l.Label)
		_ = f.SetCellValue(summarySheet, fmt.Sprintf("B%d", row), l.Value)
		row++
	}
	row++
	for _, section := range []struct {
		title string
		items []string
	}{
		{"Interpretation", r.Interpretation},
		{"Recommended solutions", r.Recommendations},
		{"Expected impact", r.Impact},
	} {
		_ = f.SetCellValue(summarySheet, fmt.Sprintf("A%d", row), section.title)
		row++
		for _, item := range section.items {
			_ = f.SetCellValue(summarySheet, fmt.Sprintf("A%d", row), item)
			row++
		}
		row++
	}

	headers := []string{"Hour", "Sessions", "Energy (kWh)", "Cost (RM)", "Prediction", "Alerts", "Alerts rate (RM/kWh)"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(hourlySheet, cell, h)
	}
	for i, h := range r.Hours {
		row := i + 2
		_ = f.SetCellValue(hourlySheet, fmt.Sprintf("A%d", row), h.Hour)
		_ = f.SetCellValue(hourlySheet, fmt.Sprintf("B%d", row), h.Sessions)
		_ = f.SetCellValue(hourlySheet, fmt.Sprintf("C%d", row), h.KWh)
		_ = f.SetCellValue(hourlySheet, fmt.Sprintf("D%d", row), h.CostRM)
		_ = f.SetCellValue(hourlySheet, fmt.Sprintf("E%d", row), string(h.Prediction))
		_ = f.SetCellValue(hourlySheet, fmt.Sprintf("F%d", row), string(h.Alerts))
		_ = f.SetCellValue(hourlySheet, fmt.Sprintf("G%d", row), h.AlertsRateRM)
	}

	_ = f.SetCellValue(locationsSheet, "A1", "Location")
	_ = f.SetCellValue(locationsSheet, "B1", "Sessions")
	_ = f.SetCellValue(locationsSheet, "C1", "Energy (kWh)")
	for i, l := range r.Locations {
		row := i + 2
		_ = f.SetCellValue(locationsSheet, fmt.Sprintf("A%d", row), l.Name)
		_ = f.SetCellValue(locationsSheet, fmt.Sprintf("B%d", row), l.Sessions)
		_ = f.SetCellValue(locationsSheet, fmt.Sprintf("C%d", row), l.TotalKWh)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write xlsx: %w", err)
	}
	return buf.Bytes(), nil
}
