package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"ev-charging-dashboard/internal/api/models"
	"ev-charging-dashboard/internal/metrics"
	"ev-charging-dashboard/internal/model"
	"ev-charging-dashboard/internal/view"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testDataset() *model.Dataset {
	ts := time.Date(2024, 6, 3, 19, 30, 0, 0, time.UTC)
	return model.NewDataset("fixture.csv", []model.Session{
		{Timestamp: ts, Hour: 19, Day: "Monday", Location: "Kuala Lumpur", ChargerType: "Fast Charger", KWhUsed: 25, EstimatedCostRM: 15},
		{Timestamp: ts.Add(time.Hour), Hour: 20, Day: "Monday", Location: "Kuala Lumpur", ChargerType: "Normal Charger", KWhUsed: 12, EstimatedCostRM: 7.2},
		{Hour: 3, Day: "Sunday", Location: "Melaka", ChargerType: "Normal Charger", KWhUsed: 8, EstimatedCostRM: 2.8},
	})
}

func newTestRouter(t *testing.T) (*gin.Engine, *prometheus.Registry) {
	t.Helper()
	reg := prometheus.NewRegistry()
	rec, err := metrics.NewPromRecorder(reg, "evdash")
	require.NoError(t, err)
	return NewRouter(Options{Dataset: testDataset(), Recorder: rec, Gatherer: reg}), reg
}

func get(r http.Handler, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) models.ErrorDetail {
	t.Helper()
	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	return resp.Error
}

func TestHealth(t *testing.T) {
	r, _ := newTestRouter(t)
	w := get(r, "/health")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok","sessions":3}`, w.Body.String())
}

func TestRootRedirects(t *testing.T) {
	r, _ := newTestRouter(t)
	w := get(r, "/")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/pages/dashboard", w.Header().Get("Location"))
}

func TestListPages(t *testing.T) {
	r, _ := newTestRouter(t)
	w := get(r, "/api/v1/pages")
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.PageListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Pages, 5)
	assert.Equal(t, "Alerts & What-If Scenario", resp.Pages[2].Label)
	assert.Equal(t, "/pages/report", resp.Pages[3].HTMLURL)
}

func TestGetPageJSON(t *testing.T) {
	r, _ := newTestRouter(t)
	w := get(r, "/api/v1/pages/prediction?hour=19")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/json")

	var p view.Page
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &p))
	v, ok := p.Metric("Estimated Tariff (RM/kWh)")
	require.True(t, ok)
	assert.Equal(t, "0.60", v)
}

func TestGetPageYAMLByLabel(t *testing.T) {
	r, _ := newTestRouter(t)
	w := get(r, "/api/v1/pages/Charging%20Planner?format=yaml")
	require.Equal(t, http.StatusOK, w.Code)

	var p view.Page
	require.NoError(t, yaml.Unmarshal(w.Body.Bytes(), &p))
	assert.Equal(t, "planner", p.ID)
}

func TestViewPageHTML(t *testing.T) {
	r, _ := newTestRouter(t)
	w := get(r, "/pages/alerts?alert_hour=18&whatif_hour=18&kwh=30")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	body := w.Body.String()
	assert.Contains(t, body, "RM 18.00")
	assert.Contains(t, body, "PEAK hour! Avoid to reduce cost.")
}

func TestPageErrors(t *testing.T) {
	r, _ := newTestRouter(t)
	tests := []struct {
		target string
		status int
		code   string
	}{
		{"/api/v1/pages/settings", http.StatusNotFound, models.CodePageNotFound},
		{"/pages/settings", http.StatusNotFound, models.CodePageNotFound},
		{"/api/v1/pages/dashboard?format=xml", http.StatusBadRequest, models.CodeInvalidFormat},
		{"/api/v1/pages/prediction?hour=24", http.StatusBadRequest, models.CodeInvalidInput},
		{"/pages/alerts?kwh=0", http.StatusBadRequest, models.CodeInvalidInput},
		{"/api/v1/pages/dashboard/charts/nope.png", http.StatusNotFound, models.CodeChartNotFound},
		{"/api/v1/nothing", http.StatusNotFound, models.CodeNotFound},
	}
	for _, tt := range tests {
		w := get(r, tt.target)
		assert.Equal(t, tt.status, w.Code, tt.target)
		assert.Equal(t, tt.code, decodeError(t, w).Code, tt.target)
	}
}

func TestGetChartPNG(t *testing.T) {
	r, _ := newTestRouter(t)
	for _, target := range []string{
		"/api/v1/pages/dashboard/charts/sessions_by_hour.png",
		"/api/v1/pages/dashboard/charts/energy_heatmap.png",
		"/api/v1/pages/alerts/charts/cost_curve",
	} {
		w := get(r, target)
		require.Equal(t, http.StatusOK, w.Code, target)
		assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
		assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("\x89PNG")), target)
	}
}

func TestTariffClassify(t *testing.T) {
	r, _ := newTestRouter(t)

	w := get(r, "/api/v1/tariff/classify?variant=alerts&hour=18&kwh=30")
	require.Equal(t, http.StatusOK, w.Code)
	var resp models.TariffClassifyResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "PEAK", string(resp.Label))
	assert.Equal(t, 0.60, resp.RatePerKWh)
	require.NotNil(t, resp.EstimatedCostRM)
	assert.InDelta(t, 18.0, *resp.EstimatedCostRM, 1e-9)

	w = get(r, "/api/v1/tariff/classify?hour=22")
	require.Equal(t, http.StatusOK, w.Code)
	var noCost models.TariffClassifyResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &noCost))
	assert.Equal(t, "prediction", noCost.Variant)
	assert.Equal(t, "PEAK", string(noCost.Label))
	assert.Nil(t, noCost.EstimatedCostRM)

	for _, target := range []string{
		"/api/v1/tariff/classify",
		"/api/v1/tariff/classify?hour=25",
		"/api/v1/tariff/classify?hour=x",
		"/api/v1/tariff/classify?hour=3&variant=night",
		"/api/v1/tariff/classify?hour=3&kwh=0",
		"/api/v1/tariff/classify?hour=3&kwh=101",
	} {
		w := get(r, target)
		assert.Equal(t, http.StatusBadRequest, w.Code, target)
		assert.Equal(t, models.CodeInvalidInput, decodeError(t, w).Code, target)
	}
}

func TestTariffCurve(t *testing.T) {
	r, _ := newTestRouter(t)
	w := get(r, "/api/v1/tariff/curve?variant=alerts")
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.TariffCurveResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Hours, 24)
	assert.Equal(t, "[18:00, 22:00)", resp.PeakWindow)
	assert.Equal(t, 0.35, resp.Hours[22].RatePerKWh)
}

func TestDatasetAndLocations(t *testing.T) {
	r, _ := newTestRouter(t)

	w := get(r, "/api/v1/dataset")
	require.Equal(t, http.StatusOK, w.Code)
	var info models.DatasetInfo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &info))
	assert.Equal(t, "fixture.csv", info.Source)
	assert.Equal(t, 3, info.Sessions)
	assert.Equal(t, 1, info.UnparsedTimestamps)
	require.NotNil(t, info.Start)
	assert.Equal(t, 19, info.Start.Hour())

	w = get(r, "/api/v1/locations")
	require.Equal(t, http.StatusOK, w.Code)
	var locs struct {
		Count     int `json:"count"`
		Locations []struct {
			Name     string `json:"name"`
			Sessions int    `json:"sessions"`
		} `json:"locations"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &locs))
	assert.Equal(t, 2, locs.Count)
	assert.Equal(t, "Kuala Lumpur", locs.Locations[0].Name)
	assert.Equal(t, 2, locs.Locations[0].Sessions)
}

func TestReportExport(t *testing.T) {
	r, _ := newTestRouter(t)

	w := get(r, "/api/v1/report/export")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, w.Header().Get("Content-Disposition"), "ev-charging-report.csv")
	assert.True(t, strings.HasPrefix(w.Body.String(), "hour,sessions"))

	w = get(r, "/api/v1/report/export?format=pdf")
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF-")))

	w = get(r, "/api/v1/report/export?format=xlsx")
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("PK")))

	w = get(r, "/api/v1/report/export?format=docx")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, models.CodeInvalidFormat, decodeError(t, w).Code)
}

func TestMetricsEndpoint(t *testing.T) {
	r, _ := newTestRouter(t)
	require.Equal(t, http.StatusOK, get(r, "/api/v1/pages/dashboard").Code)

	w := get(r, "/metrics")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `evdash_page_renders_total{format="json",page="dashboard",status="ok"} 1`)
}

func TestEmptyDataset(t *testing.T) {
	r := NewRouter(Options{Dataset: model.NewDataset("empty.csv", nil)})
	for _, target := range []string{"/pages/dashboard", "/api/v1/pages/report", "/api/v1/dataset", "/api/v1/report/export?format=xlsx"} {
		assert.Equal(t, http.StatusOK, get(r, target).Code, target)
	}
}

func TestEmptyDatasetCharts(t *testing.T) {
	r := NewRouter(Options{Dataset: model.NewDataset("empty.csv", nil)})
	for _, chart := range []string{"sessions_by_hour", "charger_types", "energy_heatmap"} {
		w := get(r, "/api/v1/pages/dashboard/charts/"+chart+".png")
		assert.Equal(t, http.StatusOK, w.Code, chart+": "+w.Body.String())
		assert.Equal(t, "image/png", w.Header().Get("Content-Type"), chart)
	}
	w := get(r, "/api/v1/pages/alerts/charts/cost_curve.png")
	assert.Equal(t, http.StatusOK, w.Code)
}
