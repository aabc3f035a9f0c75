package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"ev-charging-dashboard/internal/api/models"
	"ev-charging-dashboard/internal/logger"
	"ev-charging-dashboard/internal/metrics"
	"ev-charging-dashboard/internal/model"
	"ev-charging-dashboard/internal/render"
	"ev-charging-dashboard/internal/report"
)

// ReportHandler serves the report summary downloads
type ReportHandler struct {
	ds  *model.Dataset
	log logger.Logger
	rec metrics.Recorder
	now func() time.Time
}

// NewReportHandler creates a report handler
func NewReportHandler(ds *model.Dataset, log logger.Logger, rec metrics.Recorder) *ReportHandler {
	if log == nil {
		log = logger.NopLogger{}
	}
	if rec == nil {
		rec = metrics.NopRecorder{}
	}
	return &ReportHandler{ds: ds, log: log, rec: rec, now: time.Now}
}

// Export handles GET /api/v1/report/export
func (h *ReportHandler) Export(c *gin.Context) {
	var q models.FormatQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, models.CodeInvalidInput, err.Error(), nil)
		return
	}
	format, err := render.ParseFormat(q.Format, report.Formats...)
	if err != nil {
		respondError(c, err, models.CodeExportError)
		return
	}

	out, err := report.Export(report.Build(h.ds, h.now()), format)
	h.rec.ObserveExport(string(format), err)
	if err != nil {
		h.log.Errorf("export report as %s: %v", format, err)
		respondError(c, err, models.CodeExportError)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, report.Filename(format)))
	c.Data(http.StatusOK, report.ContentType(format), out)
}
