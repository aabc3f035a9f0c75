package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ev-charging-dashboard/internal/api/models"
	"ev-charging-dashboard/internal/tariff"
)

// TariffHandler exposes the peak/off-peak rules
type TariffHandler struct{}

// NewTariffHandler creates a new tariff handler
func NewTariffHandler() *TariffHandler {
	return &TariffHandler{}
}

func (h *TariffHandler) bind(c *gin.Context) (models.TariffQuery, tariff.Rule, bool) {
	var q models.TariffQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, models.CodeInvalidInput, err.Error(), nil)
		return q, tariff.Rule{}, false
	}
	if q.Variant == "" {
		q.Variant = tariff.PredictionRule.Name
	}
	rule, ok := tariff.Lookup(q.Variant)
	if !ok {
		badRequest(c, models.CodeInvalidInput, "unknown tariff variant", map[string]interface{}{
			"variant": q.Variant,
			"allowed": []string{tariff.PredictionRule.Name, tariff.AlertsRule.Name},
		})
		return q, tariff.Rule{}, false
	}
	return q, rule, true
}

// Classify handles GET /api/v1/tariff/classify
func (h *TariffHandler) Classify(c *gin.Context) {
	q, rule, ok := h.bind(c)
	if !ok {
		return
	}
	if q.Hour == nil {
		badRequest(c, models.CodeInvalidInput, "hour query parameter is required", nil)
		return
	}

	cl := rule.Classify(*q.Hour)
	resp := models.TariffClassifyResponse{
		Variant:    rule.Name,
		PeakWindow: rule.Peak.String(),
		Hour:       cl.Hour,
		Label:      cl.Label,
		RatePerKWh: cl.RatePerKWh,
	}
	if q.KWh != nil {
		cost := rule.EstimateCost(*q.Hour, *q.KWh)
		resp.KWh = q.KWh
		resp.EstimatedCostRM = &cost
	}
	c.JSON(http.StatusOK, resp)
}

// Curve handles GET /api/v1/tariff/curve
func (h *TariffHandler) Curve(c *gin.Context) {
	_, rule, ok := h.bind(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, models.TariffCurveResponse{
		Variant:    rule.Name,
		PeakWindow: rule.Peak.String(),
		Hours:      rule.Curve(),
	})
}
