package render

import (
	"fmt"
	"io"

	"ev-charging-dashboard/internal/pages"
	"ev-charging-dashboard/internal/view"
)

// Document is everything needed to draw one page with its navigation.
type Document struct {
	Shell   pages.Shell
	Page    view.Page
	Widgets []pages.Widget
	Inputs  pages.Inputs
}

// NewDocument wraps a rendered page in the navigation shell of entry.
func NewDocument(entry pages.Entry, page view.Page, in pages.Inputs) Document {
	return Document{
		Shell:   pages.NewShell(entry.ID),
		Page:    page,
		Widgets: entry.Widgets,
		Inputs:  in,
	}
}

// Page writes doc in format f. JSON and YAML encode only the page view model.
func Page(w io.Writer, doc Document, f Format) error {
	switch f {
	case FormatJSON:
		return JSON(w, doc.Page)
	case FormatYAML:
		return YAML(w, doc.Page)
	case FormatHTML:
		return HTML(w, doc)
	default:
		return fmt.Errorf("%w: %q for page output", ErrUnsupportedFormat, f)
	}
}
