package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the
// impact-visualization pipeline.
type Metrics struct {
	FeedRequests     *prometheus.CounterVec // labels: outcome={success,error}
	RecordsFlattened prometheus.Counter
	NormalizeErrors  prometheus.Counter
	ObjectsSelected  prometheus.Counter
	OverlaysBuilt    prometheus.Counter
	PublishErrors    prometheus.Counter
	PipelineRunning  prometheus.Gauge

	CycleDuration prometheus.Histogram
}

// NewMetrics creates and registers all pipeline metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		FeedRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "neo_impact",
			Name:      "feed_requests_total",
			Help:      "Observation feed requests by outcome.",
		}, []string{"outcome"}),
		RecordsFlattened: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "neo_impact",
			Name:      "records_flattened_total",
			Help:      "Raw object records flattened from dated feed buckets.",
		}),
		NormalizeErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "neo_impact",
			Name:      "normalize_errors_total",
			Help:      "Raw records skipped because they were malformed or degenerate.",
		}),
		ObjectsSelected: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "neo_impact",
			Name:      "objects_selected_total",
			Help:      "Objects selected for visualization after ranking.",
		}),
		OverlaysBuilt: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "neo_impact",
			Name:      "overlays_built_total",
			Help:      "Overlay descriptors produced.",
		}),
		PublishErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "neo_impact",
			Name:      "publish_errors_total",
			Help:      "Failed deliveries to an overlay sink.",
		}),
		PipelineRunning: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "neo_impact",
			Name:      "pipeline_running",
			Help:      "1 while a visualization cycle is active.",
		}),
		CycleDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "neo_impact",
			Name:      "cycle_duration_seconds",
			Help:      "Duration of a complete fetch-model-publish cycle.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}),
	}

	prometheus.MustRegister(
		m.FeedRequests,
		m.RecordsFlattened,
		m.NormalizeErrors,
		m.ObjectsSelected,
		m.OverlaysBuilt,
		m.PublishErrors,
		m.PipelineRunning,
		m.CycleDuration,
	)

	return m
}

// NewMetricsForTesting creates Metrics with a fresh registry to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		FeedRequests:     prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "neo_impact", Name: "feed_requests_total"}, []string{"outcome"}),
		RecordsFlattened: prometheus.NewCounter(prometheus.CounterOpts{Namespace: "neo_impact", Name: "records_flattened_total"}),
		NormalizeErrors:  prometheus.NewCounter(prometheus.CounterOpts{Namespace: "neo_impact", Name: "normalize_errors_total"}),
		ObjectsSelected:  prometheus.NewCounter(prometheus.CounterOpts{Namespace: "neo_impact", Name: "objects_selected_total"}),
		OverlaysBuilt:    prometheus.NewCounter(prometheus.CounterOpts{Namespace: "neo_impact", Name: "overlays_built_total"}),
		PublishErrors:    prometheus.NewCounter(prometheus.CounterOpts{Namespace: "neo_impact", Name: "publish_errors_total"}),
		PipelineRunning:  prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "neo_impact", Name: "pipeline_running"}),
		CycleDuration:    prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "neo_impact", Name: "cycle_duration_seconds"}),
	}
}
