// Package api wires the HTTP routes of the dashboard onto a gin engine.
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"ev-charging-dashboard/internal/api/handlers"
	"ev-charging-dashboard/internal/api/middleware"
	"ev-charging-dashboard/internal/api/models"
	"ev-charging-dashboard/internal/logger"
	"ev-charging-dashboard/internal/metrics"
	"ev-charging-dashboard/internal/model"
)

// Options configures NewRouter.
type Options struct {
	Dataset        *model.Dataset
	Logger         logger.Logger
	AllowedOrigins []string
	// Recorder receives render metrics. Nil disables them.
	Recorder metrics.Recorder
	// Gatherer backs /metrics. Nil leaves the endpoint unregistered.
	Gatherer prometheus.Gatherer
}

// NewRouter builds the engine with every route registered.
func NewRouter(opts Options) *gin.Engine {
	log := opts.Logger
	if log == nil {
		log = logger.NopLogger{}
	}
	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	router := gin.New()
	router.Use(middleware.Logger(log))
	router.Use(middleware.ErrorHandler(log))
	router.Use(middleware.CORS(origins))

	pageHandler := handlers.NewPageHandler(opts.Dataset, log, opts.Recorder)
	tariffHandler := handlers.NewTariffHandler()
	datasetHandler := handlers.NewDatasetHandler(opts.Dataset)
	reportHandler := handlers.NewReportHandler(opts.Dataset, log, opts.Recorder)

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "sessions": opts.Dataset.Len()})
	})
	router.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/pages/dashboard")
	})
	router.GET("/pages/:page", pageHandler.ViewPage)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/pages", pageHandler.ListPages)
		v1.GET("/pages/:page", pageHandler.GetPage)
		v1.GET("/pages/:page/charts/:chart", pageHandler.GetChart)

		v1.GET("/tariff/classify", tariffHandler.Classify)
		v1.GET("/tariff/curve", tariffHandler.Curve)

		v1.GET("/dataset", datasetHandler.GetDataset)
		v1.GET("/locations", datasetHandler.ListLocations)

		v1.GET("/report/export", reportHandler.Export)
	}

	if opts.Gatherer != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{})))
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, models.NewError(models.CodeNotFound, "Not found", map[string]interface{}{
			"path": c.Request.URL.Path,
		}))
	})
	return router
}
