// Package metric provides Prometheus instrumentation for funowl render
// passes and graph sinks.
package metric

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Format labels for render metrics.
const (
	FormatFunctional = "functional"
	FormatRDF        = "rdf"
)

// Metrics contains all library-level metrics (not domain-specific)
type Metrics struct {
	// Render metrics
	DocumentsRendered *prometheus.CounterVec
	RenderDuration    *prometheus.HistogramVec

	// Sink metrics
	TriplesEmitted prometheus.Counter
	BNodesMinted   prometheus.Counter
}

// NewMetrics creates a new Metrics instance with all library metrics
func NewMetrics() *Metrics {
	return &Metrics{
		DocumentsRendered: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "funowl",
				Subsystem: "render",
				Name:      "documents_total",
				Help:      "Total number of document render passes",
			},
			[]string{"format"},
		),

		RenderDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "funowl",
				Subsystem: "render",
				Name:      "duration_seconds",
				Help:      "Duration of document render passes",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"format"},
		),

		TriplesEmitted: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "funowl",
				Subsystem: "sink",
				Name:      "triples_emitted_total",
				Help:      "Total number of triples pushed into instrumented sinks",
			},
		),

		BNodesMinted: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "funowl",
				Subsystem: "sink",
				Name:      "bnodes_minted_total",
				Help:      "Total number of anonymous nodes minted by instrumented sinks",
			},
		),
	}
}

// Register registers all metrics with the given registerer.
// Returns the first registration error encountered.
func (m *Metrics) Register(reg prometheus.Registerer) error {
	collectors := []prometheus.Collector{
		m.DocumentsRendered,
		m.RenderDuration,
		m.TriplesEmitted,
		m.BNodesMinted,
	}
	for _, c := range collectors {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// ObserveRender records one render pass of the given format and returns a
// done function that observes its duration:
//
//	done := m.ObserveRender(metric.FormatRDF)
//	defer done()
func (m *Metrics) ObserveRender(format string) func() {
	m.DocumentsRendered.WithLabelValues(format).Inc()
	start := time.Now()
	return func() {
		m.RenderDuration.WithLabelValues(format).Observe(time.Since(start).Seconds())
	}
}
