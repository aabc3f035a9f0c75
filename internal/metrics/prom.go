// Package metrics records page rendering and dataset statistics in Prometheus.
package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"ev-charging-dashboard/internal/model"
)

// Recorder observes renders and exports. A nil *PromRecorder is a no-op.
type Recorder interface {
	ObserveRender(page, format string, took time.Duration, err error)
	ObserveExport(format string, err error)
	SetDataset(ds *model.Dataset)
}

// PromRecorder records render events in Prometheus metrics.
type PromRecorder struct {
	renders  *prometheus.CounterVec
	latency  *prometheus.HistogramVec
	exports  *prometheus.CounterVec
	rows     prometheus.Gauge
	unparsed prometheus.Gauge
}

// NewPromRecorder registers the collectors on reg under namespace. If reg is
// nil, the default registerer is used. If the collectors are already
// registered, the existing ones are reused.
func NewPromRecorder(reg prometheus.Registerer, namespace string) (*PromRecorder, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	r := &PromRecorder{
		renders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "page_renders_total",
			Help:      "Total number of page renders",
		}, []string{"page", "format", "status"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "page_render_duration_seconds",
			Help:      "Time spent building and encoding a page",
			Buckets:   prometheus.DefBuckets,
		}, []string{"page", "format"}),
		exports: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "report_exports_total",
			Help:      "Total number of report exports",
		}, []string{"format", "status"}),
		rows: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "dataset_sessions",
			Help:      "Number of charging sessions loaded",
		}),
		unparsed: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "dataset_unparsed_timestamps",
			Help:      "Number of sessions whose timestamp could not be parsed",
		}),
	}

	var err error
	if r.renders, err = register(reg, r.renders); err != nil {
		return nil, err
	}
	if r.latency, err = register(reg, r.latency); err != nil {
		return nil, err
	}
	if r.exports, err = register(reg, r.exports); err != nil {
		return nil, err
	}
	if r.rows, err = register(reg, r.rows); err != nil {
		return nil, err
	}
	if r.unparsed, err = register(reg, r.unparsed); err != nil {
		return nil, err
	}
	return r, nil
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

// ObserveRender counts one render and records its latency.
func (r *PromRecorder) ObserveRender(page, format string, took time.Duration, err error) {
	if r == nil {
		return
	}
	r.renders.WithLabelValues(page, format, status(err)).Inc()
	r.latency.WithLabelValues(page, format).Observe(took.Seconds())
}

// ObserveExport counts one report export.
func (r *PromRecorder) ObserveExport(format string, err error) {
	if r == nil {
		return
	}
	r.exports.WithLabelValues(format, status(err)).Inc()
}

// SetDataset publishes the size of the loaded dataset.
func (r *PromRecorder) SetDataset(ds *model.Dataset) {
	if r == nil {
		return
	}
	r.rows.Set(float64(ds.Len()))
	if ds != nil {
		r.unparsed.Set(float64(ds.UnparsedTimestamps))
	}
}

// NopRecorder discards every observation.
type NopRecorder struct{}

func (NopRecorder) ObserveRender(string, string, time.Duration, error) {}
func (NopRecorder) ObserveExport(string, error)                       {}
func (NopRecorder) SetDataset(*model.Dataset)                         {}
