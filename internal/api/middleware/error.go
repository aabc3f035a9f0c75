package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"ev-charging-dashboard/internal/api/models"
	"ev-charging-dashboard/internal/logger"
)

// ErrorHandler middleware handles panics and errors
func ErrorHandler(log logger.Logger) gin.HandlerFunc {
	if log == nil {
		log = logger.NopLogger{}
	}
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Errorf("panic serving %s %s: %v", c.Request.Method, c.Request.URL.Path, recovered)
		message := "An unexpected error occurred"
		if s, ok := recovered.(string); ok {
			message = s
		} else if err, ok := recovered.(error); ok {
			message = fmt.Sprintf("internal error: %v", err)
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, models.NewError(models.CodeInternalError, message, nil))
	})
}
