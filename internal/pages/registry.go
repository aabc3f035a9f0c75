// Package pages builds the view model of each dashboard page. Every page is
// a pure function of the dataset and the current widget values.
package pages

import (
	"errors"
	"fmt"
	"strings"

	"ev-charging-dashboard/internal/model"
	"ev-charging-dashboard/internal/view"
)

// ID identifies a page in URLs.
type ID string

const (
	Dashboard       ID = "dashboard"
	Prediction      ID = "prediction"
	AlertsWhatIf    ID = "alerts"
	ReportSummary   ID = "report"
	ChargingPlanner ID = "planner"
)

// ErrUnknownPage is returned when a selection matches no page.
var ErrUnknownPage = errors.New("unknown page")

// RenderFunc builds a page.
type RenderFunc func(ds *model.Dataset, in Inputs) view.Page

// Entry is one selectable page in the navigation shell.
type Entry struct {
	ID      ID
	Label   string
	Widgets []Widget
	Render  RenderFunc
}

var registry = []Entry{
	{ID: Dashboard, Label: "Dashboard", Render: RenderDashboard},
	{ID: Prediction, Label: "Prediction", Widgets: []Widget{predictionHourWidget}, Render: RenderPrediction},
	{ID: AlertsWhatIf, Label: "Alerts & What-If Scenario", Widgets: []Widget{alertHourWidget, whatIfHourWidget, kwhWidget}, Render: RenderAlertsWhatIf},
	{ID: ReportSummary, Label: "Report Summary", Render: RenderReportSummary},
	{ID: ChargingPlanner, Label: "Charging Planner", Render: RenderChargingPlanner},
}

// All returns the pages in navigation order.
func All() []Entry {
	return append([]Entry(nil), registry...)
}

// Resolve maps a selection, either a page ID or its navigation label, to a
// page. Matching ignores case and surrounding space.
func Resolve(selection string) (Entry, error) {
	sel := strings.TrimSpace(selection)
	for _, e := range registry {
		if strings.EqualFold(sel, string(e.ID)) || strings.EqualFold(sel, e.Label) {
			return e, nil
		}
	}
	return Entry{}, fmt.Errorf("%w: %q", ErrUnknownPage, selection)
}

// Render resolves selection and renders exactly that page.
func Render(ds *model.Dataset, selection string, in Inputs) (view.Page, error) {
	e, err := Resolve(selection)
	if err != nil {
		return view.Page{}, err
	}
	return e.Render(ds, in), nil
}
