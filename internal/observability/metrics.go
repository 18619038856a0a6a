package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters and histograms for the explorer service.
type Metrics struct {
	FeedRequests        *prometheus.CounterVec // labels: outcome={success,error}
	FeedRequestDuration prometheus.Histogram
	CacheLookups        *prometheus.CounterVec // labels: result={hit,miss}

	RowsNormalized prometheus.Counter
	RowsDropped    prometheus.Counter
	ExportsServed  prometheus.Counter
}

// NewMetrics creates and registers all service metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.FeedRequests,
		m.FeedRequestDuration,
		m.CacheLookups,
		m.RowsNormalized,
		m.RowsDropped,
		m.ExportsServed,
	)
	return m
}

// NewMetricsForTesting creates Metrics without registering them, avoiding
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		FeedRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "quake_explorer",
			Name:      "feed_requests_total",
			Help:      "Upstream feed requests by outcome.",
		}, []string{"outcome"}),
		FeedRequestDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "quake_explorer",
			Name:      "feed_request_duration_seconds",
			Help:      "Upstream feed request duration in seconds.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		CacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "quake_explorer",
			Name:      "feed_cache_lookups_total",
			Help:      "Feed cache lookups by result.",
		}, []string{"result"}),
		RowsNormalized: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "quake_explorer",
			Name:      "rows_normalized_total",
			Help:      "Normalized earthquake rows produced.",
		}),
		RowsDropped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "quake_explorer",
			Name:      "rows_dropped_total",
			Help:      "Raw features dropped for missing magnitude or coordinates.",
		}),
		ExportsServed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "quake_explorer",
			Name:      "exports_served_total",
			Help:      "CSV exports served.",
		}),
	}
}
