package pages

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Input ranges match the widget bounds.
const (
	MinHour = 0
	MaxHour = 23
	MinKWh  = 1
	MaxKWh  = 100
)

// Query parameter names accepted by ParseInputs.
const (
	ParamHour       = "hour"
	ParamAlertHour  = "alert_hour"
	ParamWhatIfHour = "whatif_hour"
	ParamKWh        = "kwh"
)

// ErrInvalidInput is returned for out-of-range or non-integer widget values.
var ErrInvalidInput = errors.New("invalid input")

// Inputs holds the current widget values. Pages read only the fields they use.
type Inputs struct {
	// PredictionHour is the Prediction page slider.
	PredictionHour int `json:"hour"`
	// AlertHour is the peak detection slider on the Alerts page.
	AlertHour int `json:"alert_hour"`
	// WhatIfHour and KWh drive the what-if cost simulator.
	WhatIfHour int `json:"whatif_hour"`
	KWh        int `json:"kwh"`
}

// DefaultInputs returns the initial widget positions.
func DefaultInputs() Inputs {
	return Inputs{
		PredictionHour: 18,
		AlertHour:      17,
		WhatIfHour:     10,
		KWh:            30,
	}
}

// Validate checks every field against its widget bounds.
func (in Inputs) Validate() error {
	hours := []struct {
		name string
		v    int
	}{
		{ParamHour, in.PredictionHour},
		{ParamAlertHour, in.AlertHour},
		{ParamWhatIfHour, in.WhatIfHour},
	}
	for _, h := range hours {
		if h.v < MinHour || h.v > MaxHour {
			return fmt.Errorf("%w: %s must be between %d and %d, got %d", ErrInvalidInput, h.name, MinHour, MaxHour, h.v)
		}
	}
	if in.KWh < MinKWh || in.KWh > MaxKWh {
		return fmt.Errorf("%w: %s must be between %d and %d, got %d", ErrInvalidInput, ParamKWh, MinKWh, MaxKWh, in.KWh)
	}
	return nil
}

// ParseInputs overlays query values on the defaults and validates the result.
func ParseInputs(q url.Values) (Inputs, error) {
	in := DefaultInputs()
	fields := []struct {
		name string
		dst  *int
	}{
		{ParamHour, &in.PredictionHour},
		{ParamAlertHour, &in.AlertHour},
		{ParamWhatIfHour, &in.WhatIfHour},
		{ParamKWh, &in.KWh},
	}
	for _, f := range fields {
		raw := strings.TrimSpace(q.Get(f.name))
		if raw == "" {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			return Inputs{}, fmt.Errorf("%w: %s must be an integer, got %q", ErrInvalidInput, f.name, raw)
		}
		*f.dst = v
	}
	if err := in.Validate(); err != nil {
		return Inputs{}, err
	}
	return in, nil
}

// Query encodes in as URL query values.
func (in Inputs) Query() url.Values {
	q := url.Values{}
	q.Set(ParamHour, strconv.Itoa(in.PredictionHour))
	q.Set(ParamAlertHour, strconv.Itoa(in.AlertHour))
	q.Set(ParamWhatIfHour, strconv.Itoa(in.WhatIfHour))
	q.Set(ParamKWh, strconv.Itoa(in.KWh))
	return q
}

// Widget is an integer control bound to one query parameter.
type Widget struct {
	Param string `json:"param"`
	Label string `json:"label"`
	Min   int    `json:"min"`
	Max   int    `json:"max"`
}

var (
	predictionHourWidget = Widget{Param: ParamHour, Label: "Select your intended charging hour (24-hour format):", Min: MinHour, Max: MaxHour}
	alertHourWidget      = Widget{Param: ParamAlertHour, Label: "Select your charging start time (24-hour format):", Min: MinHour, Max: MaxHour}
	whatIfHourWidget     = Widget{Param: ParamWhatIfHour, Label: "Select charging hour:", Min: MinHour, Max: MaxHour}
	kwhWidget            = Widget{Param: ParamKWh, Label: "Enter energy to charge (kWh):", Min: MinKWh, Max: MaxKWh}
)

// Get returns the value bound to param, or 0 for an unknown name.
func (in Inputs) Get(param string) int {
	switch param {
	case ParamHour:
		return in.PredictionHour
	case ParamAlertHour:
		return in.AlertHour
	case ParamWhatIfHour:
		return in.WhatIfHour
	case ParamKWh:
		return in.KWh
	}
	return 0
}
