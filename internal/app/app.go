// Package app assembles configuration, the dataset and the HTTP server into
// a runnable service.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"ev-charging-dashboard/internal/api"
	"ev-charging-dashboard/internal/config"
	"ev-charging-dashboard/internal/data"
	"ev-charging-dashboard/internal/logger"
	"ev-charging-dashboard/internal/metrics"
	"ev-charging-dashboard/internal/model"
)

// App is the dashboard service.
type App struct {
	cfg     *config.Config
	log     logger.Logger
	store   *data.Store
	ds      *model.Dataset
	handler http.Handler
}

// New loads the dataset named by cfg and builds the router. A missing or
// unreadable sessions file is returned as an error.
func New(cfg *config.Config) (*App, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}
	logger.SetLevel(cfg.Logging.Level)
	log := logger.New("app")

	store := data.NewStore(cfg.Data.Path)
	ds, err := LoadDataset(store, log)
	if err != nil {
		return nil, err
	}

	gin.SetMode(cfg.Server.Mode)
	opts := api.Options{
		Dataset:        ds,
		Logger:         logger.New("http"),
		AllowedOrigins: cfg.CORS.AllowedOrigins,
	}
	if cfg.Metrics.IsEnabled() {
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		rec, err := metrics.NewPromRecorder(reg, cfg.Metrics.Namespace)
		if err != nil {
			return nil, fmt.Errorf("metrics: %w", err)
		}
		rec.SetDataset(ds)
		opts.Recorder = rec
		opts.Gatherer = reg
	}

	return &App{
		cfg:     cfg,
		log:     log,
		store:   store,
		ds:      ds,
		handler: api.NewRouter(opts),
	}, nil
}

// LoadDataset initialises store and logs what was read.
func LoadDataset(store *data.Store, log logger.Logger) (*model.Dataset, error) {
	ds, err := store.Init()
	if err != nil {
		return nil, fmt.Errorf("load dataset: %w", err)
	}
	log.Infof("loaded %d sessions from %s", ds.Len(), store.Path())
	if ds.UnparsedTimestamps > 0 {
		log.Warnf("%d sessions have an unparseable timestamp", ds.UnparsedTimestamps)
	}
	return ds, nil
}

// Dataset returns the loaded dataset.
func (a *App) Dataset() *model.Dataset { return a.ds }

// Handler returns the HTTP handler.
func (a *App) Handler() http.Handler { return a.handler }

// Run serves HTTP until ctx is cancelled, then shuts down gracefully.
func (a *App) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    a.cfg.Server.Addr,
		Handler: a.handler,
	}

	errCh := make(chan error, 1)
	go func() {
		a.log.Infof("starting API server on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	a.log.Infof("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout())
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
