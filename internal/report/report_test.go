package report

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"ev-charging-dashboard/internal/model"
	"ev-charging-dashboard/internal/render"
	"ev-charging-dashboard/internal/tariff"
)

func testReport() Report {
	ts := time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC)
	ds := model.NewDataset("sessions.csv", []model.Session{
		{Timestamp: ts, Hour: 18, Day: "Monday", Location: "Penang", ChargerType: "Fast Charger", KWhUsed: 10, EstimatedCostRM: 6},
		{Timestamp: ts, Hour: 18, Day: "Monday", Location: "Ipoh", ChargerType: "Normal Charger", KWhUsed: 4, EstimatedCostRM: 2.4},
		{Timestamp: ts, Hour: 2, Day: "Sunday", Location: "Penang", ChargerType: "Normal Charger", KWhUsed: 20, EstimatedCostRM: 7},
	})
	return Build(ds, time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC))
}

func TestBuild(t *testing.T) {
	r := testReport()
	assert.Equal(t, 3, r.Sessions)
	assert.Equal(t, "sessions.csv", r.Source)
	require.Len(t, r.Hours, 2)

	assert.Equal(t, HourRow{Hour: 2, Sessions: 1, KWh: 20, CostRM: 7, Prediction: tariff.LabelOffPeak, Alerts: tariff.LabelOffPeak, AlertsRateRM: 0.35}, r.Hours[0])
	assert.Equal(t, 18, r.Hours[1].Hour)
	assert.Equal(t, tariff.LabelOffPeak, r.Hours[1].Prediction)
	assert.Equal(t, tariff.LabelPeak, r.Hours[1].Alerts)

	require.Len(t, r.Locations, 2)
	assert.Equal(t, "Penang", r.Locations[0].Name)
	assert.NotContains(t, r.Interpretation[0], "**")
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, testReport()))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "hour", rows[0][0])
	assert.Equal(t, []string{"18", "2", "14.00", "8.40", "OFF_PEAK", "PEAK", "0.60"}, rows[2])
}

func TestBuildXLSX(t *testing.T) {
	out, err := BuildXLSX(testReport())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"summary", "hourly", "locations"}, f.GetSheetList())
	v, err := f.GetCellValue("hourly", "A3")
	require.NoError(t, err)
	assert.Equal(t, "18", v)
	v, err = f.GetCellValue("locations", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Penang", v)
	v, err = f.GetCellValue("summary", "B5")
	require.NoError(t, err)
	assert.Equal(t, "3", v)
}

func TestBuildPDF(t *testing.T) {
	out, err := BuildPDF(testReport())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
}

func TestExport(t *testing.T) {
	for _, f := range Formats {
		out, err := Export(testReport(), f)
		require.NoError(t, err, f)
		assert.NotEmpty(t, out, f)
	}

	_, err := Export(testReport(), render.FormatJSON)
	assert.ErrorIs(t, err, render.ErrUnsupportedFormat)
}

func TestBuildEmpty(t *testing.T) {
	r := Build(nil, time.Now())
	assert.Zero(t, r.Sessions)
	assert.Empty(t, r.Hours)

	_, err := BuildPDF(r)
	require.NoError(t, err)
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "ev-charging-report.xlsx", Filename(FormatXLSX))
	assert.Equal(t, "application/pdf", ContentType(FormatPDF))
}
