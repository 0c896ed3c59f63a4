// Package metrics records export activity as Prometheus metrics.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"blind75-generator/internal/domain/model"
	"blind75-generator/internal/domain/ports"
)

const namespace = "blind75"

// Status label values.
const (
	StatusSuccess       = "success"
	StatusEmptyCatalog  = "empty_catalog"
	StatusSerialization = "serialization_error"
	StatusTimeout       = "timeout"
	StatusError         = "error"
)

var _ ports.ExportRecorder = (*Recorder)(nil)

// Recorder owns a private registry so tests and multiple instances do not collide.
type Recorder struct {
	registry *prometheus.Registry

	exportsTotal   *prometheus.CounterVec
	exportRows     *prometheus.HistogramVec
	exportDuration *prometheus.HistogramVec
	catalogSize    prometheus.Gauge
}

// NewRecorder creates and registers all export metrics.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		exportsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "exports_total",
				Help:      "Export attempts by format and outcome",
			},
			[]string{"format", "status"},
		),
		exportRows: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "export_rows",
				Help:      "Rows written per successful export",
				Buckets:   []float64{1, 5, 10, 25, 50, 75, 100, 250, 500},
			},
			[]string{"format"},
		),
		exportDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "export_duration_seconds",
				Help:      "Time spent sampling and encoding an export",
				Buckets:   prometheus.ExponentialBuckets(0.001, 2, 12),
			},
			[]string{"format"},
		),
		catalogSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "catalog_problems",
			Help:      "Number of problems in the loaded catalog",
		}),
	}

	r.registry.MustRegister(
		r.exportsTotal,
		r.exportRows,
		r.exportDuration,
		r.catalogSize,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return r
}

// ObserveExport implements ports.ExportRecorder.
func (r *Recorder) ObserveExport(format model.Format, rows int, duration time.Duration, err error) {
	label := string(format)
	r.exportsTotal.WithLabelValues(label, statusOf(err)).Inc()
	r.exportDuration.WithLabelValues(label).Observe(duration.Seconds())
	if err == nil {
		r.exportRows.WithLabelValues(label).Observe(float64(rows))
	}
}

// SetCatalogSize publishes the catalog size.
func (r *Recorder) SetCatalogSize(n int) {
	r.catalogSize.Set(float64(n))
}

// Registry exposes the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

func statusOf(err error) string {
	var serr *model.SerializationError
	switch {
	case err == nil:
		return StatusSuccess
	case errors.Is(err, model.ErrEmptyCatalog):
		return StatusEmptyCatalog
	case errors.Is(err, context.DeadlineExceeded):
		return StatusTimeout
	case errors.As(err, &serr):
		return StatusSerialization
	default:
		return StatusError
	}
}
