package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ev-charging-dashboard/internal/analysis"
	"ev-charging-dashboard/internal/api/models"
	"ev-charging-dashboard/internal/data"
	"ev-charging-dashboard/internal/model"
)

// DatasetHandler describes the loaded sessions file
type DatasetHandler struct {
	ds *model.Dataset
}

// NewDatasetHandler creates a dataset handler
func NewDatasetHandler(ds *model.Dataset) *DatasetHandler {
	return &DatasetHandler{ds: ds}
}

// GetDataset handles GET /api/v1/dataset
func (h *DatasetHandler) GetDataset(c *gin.Context) {
	info := models.DatasetInfo{
		Sessions:     h.ds.Len(),
		ChargerTypes: analysis.CountBy(h.ds, analysis.KeyChargerType),
		Days:         analysis.CountBy(h.ds, analysis.KeyDay),
	}
	if h.ds != nil {
		info.Source = h.ds.Source
		info.LoadedAt = h.ds.LoadedAt
		info.UnparsedTimestamps = h.ds.UnparsedTimestamps
	}
	if start, end, ok := h.ds.TimeRange(); ok {
		info.Start, info.End = &start, &end
	}
	c.JSON(http.StatusOK, info)
}

// ListLocations handles GET /api/v1/locations
func (h *DatasetHandler) ListLocations(c *gin.Context) {
	list := data.BuildLocations(h.ds)
	c.JSON(http.StatusOK, gin.H{
		"locations":  list.Locations,
		"source":     list.Source,
		"updated_at": list.UpdatedAt,
		"count":      len(list.Locations),
	})
}
