package render

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"ev-charging-dashboard/internal/model"
	"ev-charging-dashboard/internal/pages"
	"ev-charging-dashboard/internal/view"
)

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

func testDataset() *model.Dataset {
	ts := time.Date(2024, 3, 4, 20, 0, 0, 0, time.UTC)
	return model.NewDataset("test", []model.Session{
		{Timestamp: ts, Hour: 20, Day: "Monday", Location: "Kuala Lumpur", ChargerType: "Fast Charger", KWhUsed: 12, EstimatedCostRM: 7.2},
		{Timestamp: ts, Hour: 9, Day: "Saturday", Location: "Johor Bahru", ChargerType: "Normal Charger", KWhUsed: 20, EstimatedCostRM: 7},
	})
}

func testDocument(t *testing.T, id pages.ID, ds *model.Dataset) Document {
	t.Helper()
	e, err := pages.Resolve(string(id))
	require.NoError(t, err)
	in := pages.DefaultInputs()
	return NewDocument(e, e.Render(ds, in), in)
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("", FormatJSON, FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, f)

	f, err = ParseFormat(" YAML ", FormatJSON, FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, f)

	_, err = ParseFormat("xml", FormatJSON, FormatYAML)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestPageJSON(t *testing.T) {
	doc := testDocument(t, pages.Dashboard, testDataset())
	var buf bytes.Buffer
	require.NoError(t, Page(&buf, doc, FormatJSON))

	var got view.Page
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "dashboard", got.ID)
	v, ok := got.Metric(pages.LabelPeakHour)
	require.True(t, ok)
	assert.Equal(t, "20:00", v)
}

func TestPageYAML(t *testing.T) {
	doc := testDocument(t, pages.Prediction, testDataset())
	var buf bytes.Buffer
	require.NoError(t, Page(&buf, doc, FormatYAML))

	var got view.Page
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "prediction", got.ID)
	v, _ := got.Metric(pages.LabelEstimatedTariff)
	assert.Equal(t, "0.40", v)
}

func TestPageRejectsPNG(t *testing.T) {
	doc := testDocument(t, pages.Dashboard, testDataset())
	err := Page(&bytes.Buffer{}, doc, FormatPNG)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestHTMLDashboard(t *testing.T) {
	doc := testDocument(t, pages.Dashboard, testDataset())
	var buf bytes.Buffer
	require.NoError(t, HTML(&buf, doc))
	out := buf.String()

	assert.Contains(t, out, "<title>EV Charging Optimization Dashboard</title>")
	assert.Contains(t, out, "📊 EV Charging Dashboard")
	assert.Contains(t, out, `href="/pages/alerts"`)
	assert.Contains(t, out, `<li class="active"><a href="/pages/dashboard">Dashboard</a></li>`)
	assert.Contains(t, out, `data-chart="chart_sessions_by_hour"`)
	assert.Contains(t, out, `id="chart_energy_heatmap"`)
	assert.Contains(t, out, "<b>Group Delta</b>")
	assert.Contains(t, out, "EV Optimization App © Group Delta")
	assert.Contains(t, out, ".explanation")
}

func TestHTMLWidgets(t *testing.T) {
	doc := testDocument(t, pages.AlertsWhatIf, testDataset())
	var buf bytes.Buffer
	require.NoError(t, HTML(&buf, doc))
	out := buf.String()

	assert.Contains(t, out, `name="alert_hour" min="0" max="23" value="17"`)
	assert.Contains(t, out, `name="kwh" min="1" max="100" value="30"`)
	assert.Contains(t, out, "Estimated Cost for 30 kWh")
	assert.Contains(t, out, "Peak Hours")
	assert.Contains(t, out, "opacity")
}

func TestHTMLEmptyPage(t *testing.T) {
	doc := testDocument(t, pages.ChargingPlanner, model.NewDataset("empty", nil))
	var buf bytes.Buffer
	require.NoError(t, HTML(&buf, doc))
	assert.Contains(t, buf.String(), pages.NotAvailable)
}

func TestMarkdownEscapes(t *testing.T) {
	assert.Equal(t, "a <b>b</b> &lt;i&gt;", string(markdown("a **b** <i>")))
}

func TestChartPNG(t *testing.T) {
	ds := testDataset()
	dash := pages.RenderDashboard(ds, pages.DefaultInputs())
	for _, id := range []string{pages.ChartSessionsByHour, pages.ChartChargerTypes, pages.ChartEnergyHeatmap} {
		var buf bytes.Buffer
		require.NoError(t, ChartPNG(&buf, dash, id), id)
		assert.True(t, bytes.HasPrefix(buf.Bytes(), pngMagic), id)
	}

	alerts := pages.RenderAlertsWhatIf(ds, pages.DefaultInputs())
	var buf bytes.Buffer
	require.NoError(t, ChartPNG(&buf, alerts, pages.ChartCostCurve))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), pngMagic))
}

func TestChartPNGEmptyDataset(t *testing.T) {
	dash := pages.RenderDashboard(model.NewDataset("empty", nil), pages.DefaultInputs())
	for _, id := range []string{pages.ChartSessionsByHour, pages.ChartChargerTypes, pages.ChartEnergyHeatmap} {
		var buf bytes.Buffer
		require.NoError(t, ChartPNG(&buf, dash, id), id)
	}
}

func TestChartPNGUnknown(t *testing.T) {
	p := pages.RenderPrediction(nil, pages.DefaultInputs())
	err := ChartPNG(&bytes.Buffer{}, p, "nope")
	assert.ErrorIs(t, err, ErrUnknownChart)
}

func TestParseColor(t *testing.T) {
	assert.Equal(t, uint8(0xE6), parseColor("#E63946", 0).R)
	c := parseColor("red", 0.2)
	assert.Equal(t, uint8(255), c.R)
	assert.Equal(t, uint8(51), c.A)
}

func TestHeatmapRowsTopDown(t *testing.T) {
	g := grid{hm: &view.Heatmap{XLabels: []string{"8"}, YLabels: []string{"Monday", "Tuesday", "Sunday"}}}
	assert.Equal(t, 2.0, g.Y(0), "first row is drawn at the top")
	assert.Equal(t, 0.0, g.Y(2))
	assert.Equal(t, []string{"Sunday", "Tuesday", "Monday"}, reversed(g.hm.YLabels))
}
