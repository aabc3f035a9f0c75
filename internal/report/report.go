// Package report assembles the Report Summary insights into a downloadable
// document in CSV, XLSX or PDF form.
package report

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"
	"time"

	"ev-charging-dashboard/internal/analysis"
	"ev-charging-dashboard/internal/data"
	"ev-charging-dashboard/internal/model"
	"ev-charging-dashboard/internal/pages"
	"ev-charging-dashboard/internal/render"
	"ev-charging-dashboard/internal/tariff"
)

// Export formats.
const (
	FormatCSV  render.Format = "csv"
	FormatXLSX render.Format = "xlsx"
	FormatPDF  render.Format = "pdf"
)

// Formats lists the supported export formats, default first.
var Formats = []render.Format{FormatCSV, FormatXLSX, FormatPDF}

// HourRow aggregates one hour of the day with the tariff labels of both rules.
type HourRow struct {
	Hour         int          `json:"hour"`
	Sessions     int          `json:"sessions"`
	KWh          float64      `json:"kwh"`
	CostRM       float64      `json:"cost_rm"`
	Prediction   tariff.Label `json:"prediction_label"`
	Alerts       tariff.Label `json:"alerts_label"`
	AlertsRateRM float64      `json:"alerts_rate_rm"`
}

// Report is the exportable summary of a dataset.
type Report struct {
	Title           string
	Source          string
	GeneratedAt     time.Time
	Sessions        int
	Insights        pages.ReportInsights
	Hours           []HourRow
	Locations       []data.Location
	Interpretation  []string
	Recommendations []string
	Impact          []string
}

// Build computes the report for ds.
func Build(ds *model.Dataset, now time.Time) Report {
	r := Report{
		Title:           "Report Summary - Data Insights & Recommendations",
		Source:          sourceOf(ds),
		GeneratedAt:     now,
		Sessions:        ds.Len(),
		Insights:        pages.ComputeReportInsights(ds),
		Locations:       data.BuildLocations(ds).Locations,
		Interpretation:  plainAll(pages.ReportInterpretation),
		Recommendations: plainAll(pages.ReportRecommendations),
		Impact:          plainAll(pages.ReportImpact),
	}

	kwh := map[int]float64{}
	for _, hv := range analysis.SumByHour(ds, analysis.ValueKWh) {
		kwh[hv.Hour] = hv.Value
	}
	cost := map[int]float64{}
	for _, hv := range analysis.SumByHour(ds, analysis.ValueCost) {
		cost[hv.Hour] = hv.Value
	}
	for _, hc := range analysis.CountByHour(ds) {
		a := tariff.AlertsRule.Classify(hc.Hour)
		r.Hours = append(r.Hours, HourRow{
			Hour:         hc.Hour,
			Sessions:     hc.Count,
			KWh:          kwh[hc.Hour],
			CostRM:       cost[hc.Hour],
			Prediction:   tariff.PredictionRule.Classify(hc.Hour).Label,
			Alerts:       a.Label,
			AlertsRateRM: a.RatePerKWh,
		})
	}
	return r
}

func sourceOf(ds *model.Dataset) string {
	if ds == nil {
		return ""
	}
	return ds.Source
}

var boldMarker = regexp.MustCompile(`\*\*(.+?)\*\*`)

// plain strips **bold** markers.
func plain(s string) string {
	return boldMarker.ReplaceAllString(s, "$1")
}

func plainAll(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = plain(s)
	}
	return out
}

// Export encodes r in format f.
func Export(r Report, f render.Format) ([]byte, error) {
	switch f {
	case FormatCSV:
		var buf bytes.Buffer
		if err := WriteCSV(&buf, r); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case FormatXLSX:
		return BuildXLSX(r)
	case FormatPDF:
		return BuildPDF(r)
	default:
		return nil, fmt.Errorf("%w: %q for report export", render.ErrUnsupportedFormat, f)
	}
}

// ContentType returns the MIME type of an export format.
func ContentType(f render.Format) string {
	switch f {
	case FormatCSV:
		return "text/csv; charset=utf-8"
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case FormatPDF:
		return "application/pdf"
	default:
		return render.ContentType(f)
	}
}

// Filename returns the download name for format f.
func Filename(f render.Format) string {
	return "ev-charging-report." + strings.ToLower(string(f))
}
