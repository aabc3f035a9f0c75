package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"ev-charging-dashboard/internal/api/models"
	"ev-charging-dashboard/internal/logger"
	"ev-charging-dashboard/internal/metrics"
	"ev-charging-dashboard/internal/model"
	"ev-charging-dashboard/internal/pages"
	"ev-charging-dashboard/internal/render"
)

// PageHandler serves the dashboard pages and their charts
type PageHandler struct {
	ds  *model.Dataset
	log logger.Logger
	rec metrics.Recorder
}

// NewPageHandler creates a page handler over a loaded dataset
func NewPageHandler(ds *model.Dataset, log logger.Logger, rec metrics.Recorder) *PageHandler {
	if log == nil {
		log = logger.NopLogger{}
	}
	if rec == nil {
		rec = metrics.NopRecorder{}
	}
	return &PageHandler{ds: ds, log: log, rec: rec}
}

// ListPages handles GET /api/v1/pages
func (h *PageHandler) ListPages(c *gin.Context) {
	entries := pages.All()
	resp := models.PageListResponse{
		Title:   pages.AppTitle,
		Pages:   make([]models.PageInfo, len(entries)),
		Caption: pages.SidebarCaption,
		Footer:  pages.Footer,
	}
	for i, e := range entries {
		resp.Pages[i] = models.PageInfo{
			ID:      e.ID,
			Label:   e.Label,
			HTMLURL: "/pages/" + string(e.ID),
			APIURL:  "/api/v1/pages/" + string(e.ID),
			Widgets: e.Widgets,
		}
	}
	c.JSON(http.StatusOK, resp)
}

// GetPage handles GET /api/v1/pages/:page
func (h *PageHandler) GetPage(c *gin.Context) {
	var q models.FormatQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, models.CodeInvalidInput, err.Error(), nil)
		return
	}
	format, err := render.ParseFormat(q.Format, render.FormatJSON, render.FormatYAML)
	if err != nil {
		respondError(c, err, models.CodeRenderError)
		return
	}
	h.servePage(c, format)
}

// ViewPage handles GET /pages/:page
func (h *PageHandler) ViewPage(c *gin.Context) {
	h.servePage(c, render.FormatHTML)
}

func (h *PageHandler) servePage(c *gin.Context, format render.Format) {
	start := time.Now()
	entry, err := pages.Resolve(c.Param("page"))
	if err != nil {
		respondError(c, err, models.CodeRenderError)
		return
	}
	in, err := pages.ParseInputs(c.Request.URL.Query())
	if err != nil {
		respondError(c, err, models.CodeRenderError)
		return
	}

	doc := render.NewDocument(entry, entry.Render(h.ds, in), in)
	var buf bytes.Buffer
	err = render.Page(&buf, doc, format)
	h.rec.ObserveRender(string(entry.ID), string(format), time.Since(start), err)
	if err != nil {
		h.log.Errorf("render page %s as %s: %v", entry.ID, format, err)
		respondError(c, fmt.Errorf("render page %s: %w", entry.ID, err), models.CodeRenderError)
		return
	}
	c.Data(http.StatusOK, render.ContentType(format), buf.Bytes())
}

// GetChart handles GET /api/v1/pages/:page/charts/:chart
// The chart parameter may carry a .png suffix.
func (h *PageHandler) GetChart(c *gin.Context) {
	start := time.Now()
	entry, err := pages.Resolve(c.Param("page"))
	if err != nil {
		respondError(c, err, models.CodeRenderError)
		return
	}
	in, err := pages.ParseInputs(c.Request.URL.Query())
	if err != nil {
		respondError(c, err, models.CodeRenderError)
		return
	}

	chartID := strings.TrimSuffix(c.Param("chart"), ".png")
	var buf bytes.Buffer
	err = render.ChartPNG(&buf, entry.Render(h.ds, in), chartID)
	h.rec.ObserveRender(string(entry.ID)+"/"+chartID, string(render.FormatPNG), time.Since(start), err)
	if err != nil {
		respondError(c, err, models.CodeRenderError)
		return
	}
	c.Data(http.StatusOK, render.ContentType(render.FormatPNG), buf.Bytes())
}
