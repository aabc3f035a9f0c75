package models

import (
	"time"

	"ev-charging-dashboard/internal/analysis"
	"ev-charging-dashboard/internal/pages"
	"ev-charging-dashboard/internal/tariff"
)

// PageInfo describes one navigable page
type PageInfo struct {
	ID      pages.ID       `json:"id"`
	Label   string         `json:"label"`
	HTMLURL string         `json:"html_url"`
	APIURL  string         `json:"api_url"`
	Widgets []pages.Widget `json:"widgets,omitempty"`
}

// PageListResponse represents the navigation shell
type PageListResponse struct {
	Title   string     `json:"title"`
	Pages   []PageInfo `json:"pages"`
	Caption string     `json:"caption"`
	Footer  string     `json:"footer"`
}

// TariffClassifyResponse represents the classification of one hour
type TariffClassifyResponse struct {
	Variant         string       `json:"variant"`
	PeakWindow      string       `json:"peak_window"`
	Hour            int          `json:"hour"`
	Label           tariff.Label `json:"label"`
	RatePerKWh      float64      `json:"rate_per_kwh"`
	KWh             *float64     `json:"kwh,omitempty"`
	EstimatedCostRM *float64     `json:"estimated_cost_rm,omitempty"`
}

// TariffCurveResponse represents the 24 hour rate curve of one rule
type TariffCurveResponse struct {
	Variant    string                  `json:"variant"`
	PeakWindow string                  `json:"peak_window"`
	Hours      []tariff.Classification `json:"hours"`
}

// DatasetInfo represents the loaded sessions file
type DatasetInfo struct {
	Source             string                `json:"source"`
	LoadedAt           time.Time             `json:"loaded_at"`
	Sessions           int                   `json:"sessions"`
	UnparsedTimestamps int                   `json:"unparsed_timestamps"`
	Start              *time.Time            `json:"start,omitempty"`
	End                *time.Time            `json:"end,omitempty"`
	ChargerTypes       []analysis.GroupCount `json:"charger_types"`
	Days               []analysis.GroupCount `json:"days"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// Error codes returned in ErrorDetail.Code
const (
	CodeInvalidInput  = "INVALID_INPUT"
	CodeInvalidFormat = "INVALID_FORMAT"
	CodePageNotFound  = "PAGE_NOT_FOUND"
	CodeChartNotFound = "CHART_NOT_FOUND"
	CodeRenderError   = "RENDER_ERROR"
	CodeExportError   = "EXPORT_ERROR"
	CodeInternalError = "INTERNAL_ERROR"
	CodeNotFound      = "NOT_FOUND"
)

// NewError builds an error envelope
func NewError(code, message string, details map[string]interface{}) ErrorResponse {
	return ErrorResponse{Error: ErrorDetail{Code: code, Message: message, Details: details}}
}
