package pages

import (
	"ev-charging-dashboard/internal/analysis"
	"ev-charging-dashboard/internal/model"
	"ev-charging-dashboard/internal/view"
)

// Planner metric labels. The unit text is shown as-is.
const (
	LabelNormalAvgCost = "Normal Charger Avg Cost (RM/hr)"
	LabelFastAvgCost   = "Fast Charger Avg Cost (RM/hr)"
)

// RenderChargingPlanner builds the recommended window and per charger cost page.
func RenderChargingPlanner(ds *model.Dataset, _ Inputs) view.Page {
	normal, normalOK := analysis.MeanWhere(ds, analysis.ChargerIs(model.ChargerNormal), analysis.ValueCost)
	fast, fastOK := analysis.MeanWhere(ds, analysis.ChargerIs(model.ChargerFast), analysis.ValueCost)

	return view.NewBuilder(string(ChargingPlanner), "🗓️ Charging Planner & Cost Estimation",
		"This tool suggests ideal charging times and cost estimates based on the analyzed data.").
		Text(view.StyleSubheading, "🔹 Recommended Charging Window").
		Text(view.StyleInfo, "💡 Best time to charge: **After 10 PM to 5 AM** to avoid peak tariffs and reduce grid load.").
		Metrics(view.Metric{Label: LabelNormalAvgCost, Value: formatFixed(normal, normalOK)}).
		Metrics(view.Metric{Label: LabelFastAvgCost, Value: formatFixed(fast, fastOK)}).
		Page()
}
