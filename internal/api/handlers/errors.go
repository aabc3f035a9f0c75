package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"ev-charging-dashboard/internal/api/models"
	"ev-charging-dashboard/internal/pages"
	"ev-charging-dashboard/internal/render"
)

// respondError maps known sentinel errors onto the error envelope.
// Anything unrecognised is reported with fallbackCode as a 500.
func respondError(c *gin.Context, err error, fallbackCode string) {
	status, code := http.StatusInternalServerError, fallbackCode
	switch {
	case errors.Is(err, pages.ErrUnknownPage):
		status, code = http.StatusNotFound, models.CodePageNotFound
	case errors.Is(err, render.ErrUnknownChart):
		status, code = http.StatusNotFound, models.CodeChartNotFound
	case errors.Is(err, render.ErrUnsupportedFormat):
		status, code = http.StatusBadRequest, models.CodeInvalidFormat
	case errors.Is(err, pages.ErrInvalidInput):
		status, code = http.StatusBadRequest, models.CodeInvalidInput
	}
	_ = c.Error(err)
	c.AbortWithStatusJSON(status, models.NewError(code, err.Error(), nil))
}

func badRequest(c *gin.Context, code, message string, details map[string]interface{}) {
	c.AbortWithStatusJSON(http.StatusBadRequest, models.NewError(code, message, details))
}
