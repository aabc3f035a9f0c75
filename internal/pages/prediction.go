package pages

import (
	"fmt"

	"ev-charging-dashboard/internal/model"
	"ev-charging-dashboard/internal/tariff"
	"ev-charging-dashboard/internal/view"
)

// LabelEstimatedTariff is the Prediction page rate metric.
const LabelEstimatedTariff = "Estimated Tariff (RM/kWh)"

// RenderPrediction builds the rule-based charging recommendation page.
func RenderPrediction(_ *model.Dataset, in Inputs) view.Page {
	rule := tariff.PredictionRule
	c := rule.Classify(in.PredictionHour)

	b := view.NewBuilder(string(Prediction), "🧠 Smart Charging Recommendation",
		"Use this tool to get a **rule-based recommendation** for the best charging time based on Malaysia’s TNB peak (7PM–10PM) and off-peak hours.")

	var suggestion string
	if c.IsPeak() {
		b.Text(view.StyleError, fmt.Sprintf("⚠️ %s is a **PEAK hour!** Grid load & cost are higher.", formatHour(c.Hour)))
		suggestion = "💡 Try charging between 12AM–5AM for lower tariffs."
	} else {
		b.Text(view.StyleSuccess, fmt.Sprintf("✅ %s is an **OFF-PEAK hour.** Great for cost-saving and grid efficiency.", formatHour(c.Hour)))
		suggestion = "⚡ Excellent time slot! Continue charging during off-peak hours."
	}
	b.Metrics(view.Metric{Label: LabelEstimatedTariff, Value: formatFixed(c.RatePerKWh, true)})
	b.Text(view.StyleExplanation, suggestion)
	b.Text(view.StyleTariffInfo, fmt.Sprintf("ℹ️ Tariff rates simulated based on simplified TNB structure (RM %.2f peak | RM %.2f off-peak).",
		rule.PeakRate, rule.OffPeakRate))
	return b.Page()
}
