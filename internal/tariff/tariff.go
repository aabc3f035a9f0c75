// Package tariff implements fixed-threshold peak/off-peak pricing.
package tariff

// Label is the qualitative classification of an hour.
// Keep these values stable; they are part of the API output.
type Label string

const (
	LabelPeak    Label = "PEAK"
	LabelOffPeak Label = "OFF_PEAK"
)

// Rule maps an hour of day to a rate in RM per kWh.
type Rule struct {
	Name        string  `json:"name" yaml:"name"`
	Peak        Window  `json:"peak" yaml:"peak"`
	PeakRate    float64 `json:"peak_rate" yaml:"peak_rate"`
	OffPeakRate float64 `json:"offpeak_rate" yaml:"offpeak_rate"`
}

// The Prediction and Alerts pages use different peak windows and off-peak
// rates. The two rules must stay separate.
var (
	PredictionRule = Rule{
		Name:        "prediction",
		Peak:        Window{Start: 19, End: 22, EndInclusive: true},
		PeakRate:    0.60,
		OffPeakRate: 0.40,
	}
	AlertsRule = Rule{
		Name:        "alerts",
		Peak:        Window{Start: 18, End: 22, EndInclusive: false},
		PeakRate:    0.60,
		OffPeakRate: 0.35,
	}
)

// Classification is the outcome of classifying one hour.
type Classification struct {
	Hour       int     `json:"hour" yaml:"hour"`
	Label      Label   `json:"label" yaml:"label"`
	RatePerKWh float64 `json:"rate_per_kwh" yaml:"rate_per_kwh"`
}

// IsPeak reports whether the classification is PEAK.
func (c Classification) IsPeak() bool { return c.Label == LabelPeak }

// Classify labels hour and returns its rate. hour is not range-checked;
// callers constrain it to 0..23.
func (r Rule) Classify(hour int) Classification {
	if r.Peak.Contains(hour) {
		return Classification{Hour: hour, Label: LabelPeak, RatePerKWh: r.PeakRate}
	}
	return Classification{Hour: hour, Label: LabelOffPeak, RatePerKWh: r.OffPeakRate}
}

// RatePerKWh returns the rate applied at hour.
func (r Rule) RatePerKWh(hour int) float64 {
	return r.Classify(hour).RatePerKWh
}

// EstimateCost returns kwh * rate(hour), unrounded.
func (r Rule) EstimateCost(hour int, kwh float64) float64 {
	return kwh * r.RatePerKWh(hour)
}

// Curve classifies every hour of the day, 0 through 23.
func (r Rule) Curve() []Classification {
	out := make([]Classification, 24)
	for h := range out {
		out[h] = r.Classify(h)
	}
	return out
}

// Lookup returns the rule registered under name.
func Lookup(name string) (Rule, bool) {
	switch name {
	case PredictionRule.Name:
		return PredictionRule, true
	case AlertsRule.Name:
		return AlertsRule, true
	default:
		return Rule{}, false
	}
}
