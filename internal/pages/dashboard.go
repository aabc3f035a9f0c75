package pages

import (
	"strconv"

	"ev-charging-dashboard/internal/analysis"
	"ev-charging-dashboard/internal/model"
	"ev-charging-dashboard/internal/view"
)

// Dashboard metric labels.
const (
	LabelPeakHour    = "⏰ Peak Hour"
	LabelAvgCost     = "💰 Avg Cost/Session"
	LabelTopLocation = "📍 Top Location"
)

// Dashboard chart ids.
const (
	ChartSessionsByHour = "sessions_by_hour"
	ChartChargerTypes   = "charger_types"
	ChartEnergyHeatmap  = "energy_heatmap"
)

// DashboardPeakHour is the headline peak hour. It is a fixed editorial value,
// not derived from the data.
const DashboardPeakHour = 20

const barGreen = "#31a354"

var orRd = []string{"#fff7ec", "#fdd49e", "#fc8d59", "#d7301f", "#7f0000"}

// RenderDashboard builds the overview page.
func RenderDashboard(ds *model.Dataset, _ Inputs) view.Page {
	avgCost, costOK := analysis.Mean(ds, analysis.ValueCost)
	top, topOK := analysis.Mode(ds, analysis.KeyLocation)

	b := view.NewBuilder(string(Dashboard), "📊 EV Charging Dashboard",
		"This dashboard visualizes Malaysia’s EV charging behavior, showing key energy usage patterns, peak hours, and charger preferences.")
	b.Metrics(
		view.Metric{Label: LabelPeakHour, Value: formatHour(DashboardPeakHour)},
		view.Metric{Label: LabelAvgCost, Value: formatRM(avgCost, costOK)},
		view.Metric{Label: LabelTopLocation, Value: orNA(top, topOK)},
	)
	b.Divider()

	b.Text(view.StyleSubheading, "🔹 Charging Sessions by Hour")
	b.Chart(sessionsByHourChart(ds))
	b.Text(view.StyleExplanation, "🔍 **Insight:** Most sessions occur between **7PM–10PM**, confirming evening peak demand.")

	b.Text(view.StyleSubheading, "🔹 Fast vs Normal Charger Usage")
	b.Chart(chargerTypesChart(ds))
	b.Text(view.StyleExplanation, "💡 **Insight:** Normal chargers dominate usage, suggesting overnight or longer charging sessions.")
	b.Divider()

	b.Text(view.StyleSubheading, "🔹 Average Energy Usage by Day and Hour")
	b.Chart(energyHeatmapChart(ds))
	b.Text(view.StyleExplanation, "⚙️ **Insight:** Evenings, especially weekends, show higher kWh usage — key period for optimization.")
	return b.Page()
}

func sessionsByHourChart(ds *model.Dataset) view.Chart {
	counts := analysis.CountByHour(ds)
	cats := make([]string, len(counts))
	vals := make([]float64, len(counts))
	for i, c := range counts {
		cats[i] = strconv.Itoa(c.Hour)
		vals[i] = float64(c.Count)
	}
	return view.Chart{
		ID:         ChartSessionsByHour,
		Type:       view.ChartLine,
		Title:      "EV Charging Frequency by Hour",
		XLabel:     "Hour of Day",
		YLabel:     "Number of Sessions",
		Categories: cats,
		Series:     []view.Series{{Name: "Sessions", Values: vals, Color: "#E63946", Marker: true}},
	}
}

func chargerTypesChart(ds *model.Dataset) view.Chart {
	counts := analysis.CountBy(ds, analysis.KeyChargerType)
	cats := make([]string, len(counts))
	vals := make([]float64, len(counts))
	for i, c := range counts {
		cats[i] = c.Key
		vals[i] = float64(c.Count)
	}
	return view.Chart{
		ID:         ChartChargerTypes,
		Type:       view.ChartBar,
		Title:      "Charger Type Distribution",
		XLabel:     "Charger Type",
		YLabel:     "Count",
		Categories: cats,
		Series:     []view.Series{{Name: "Count", Values: vals, Color: barGreen}},
	}
}

func energyHeatmapChart(ds *model.Dataset) view.Chart {
	p := analysis.PivotMeanKWh(ds)
	return view.Chart{
		ID:     ChartEnergyHeatmap,
		Type:   view.ChartHeatmap,
		Title:  "Energy Usage Heatmap (kWh)",
		XLabel: "hour",
		YLabel: "day",
		Heatmap: &view.Heatmap{
			XLabels: hourLabels(p.Hours),
			YLabels: p.Days,
			Cells:   p.Cells,
			Palette: orRd,
		},
	}
}
