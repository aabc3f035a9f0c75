package pages

import (
	"fmt"
	"strconv"

	"ev-charging-dashboard/internal/model"
	"ev-charging-dashboard/internal/tariff"
	"ev-charging-dashboard/internal/view"
)

// LabelEstimatedCost is the peak detection rate metric.
const LabelEstimatedCost = "Estimated Cost (RM/kWh)"

// ChartCostCurve is the 24 hour tariff chart id.
const ChartCostCurve = "cost_curve"

// LabelWhatIfCost returns the what-if metric label for kwh.
func LabelWhatIfCost(kwh int) string {
	return fmt.Sprintf("Estimated Cost for %d kWh", kwh)
}

// RenderAlertsWhatIf builds the peak alert and cost simulator page.
func RenderAlertsWhatIf(_ *model.Dataset, in Inputs) view.Page {
	rule := tariff.AlertsRule

	b := view.NewBuilder(string(AlertsWhatIf), "⚠️ Alerts & What-If Scenario",
		"Simulate cost differences between **peak** and **off-peak** charging hours to understand potential savings.")

	b.Text(view.StyleSubheading, "🔔 Peak Hour Detection")
	alert := rule.Classify(in.AlertHour)
	if alert.IsPeak() {
		b.Text(view.StyleError, fmt.Sprintf("⚠️ %s is a PEAK hour! Avoid to reduce cost.", formatHour(alert.Hour)))
	} else {
		b.Text(view.StyleSuccess, fmt.Sprintf("✅ %s is OFF-PEAK — cheaper & better for the grid.", formatHour(alert.Hour)))
	}
	b.Metrics(view.Metric{Label: LabelEstimatedCost, Value: formatFixed(alert.RatePerKWh, true)})
	b.Divider()

	b.Text(view.StyleSubheading, "⚙️ What-If Cost Simulator")
	cost := rule.EstimateCost(in.WhatIfHour, float64(in.KWh))
	b.Metrics(view.Metric{Label: LabelWhatIfCost(in.KWh), Value: formatRM(cost, true)})
	b.Chart(costCurveChart(rule))
	b.Text(view.StyleExplanation, "📊 **Insight:** The shaded red area represents peak hours (6PM–10PM). Charging outside this window can save RM 5–15 per session.")
	return b.Page()
}

func costCurveChart(rule tariff.Rule) view.Chart {
	curve := rule.Curve()
	cats := make([]string, len(curve))
	vals := make([]float64, len(curve))
	for i, c := range curve {
		cats[i] = strconv.Itoa(c.Hour)
		vals[i] = c.RatePerKWh
	}
	return view.Chart{
		ID:         ChartCostCurve,
		Type:       view.ChartLine,
		Title:      "Cost Comparison Across 24 Hours",
		XLabel:     "Hour of Day",
		YLabel:     "Cost (RM/kWh)",
		Categories: cats,
		Series:     []view.Series{{Name: "Cost (RM/kWh)", Values: vals, Color: "#FF8C00", Marker: true}},
		Shaded: []view.Region{{
			Label: "Peak Hours",
			From:  float64(rule.Peak.Start),
			To:    float64(rule.Peak.End),
			Color: "red",
			Alpha: 0.2,
		}},
		Legend: true,
	}
}
