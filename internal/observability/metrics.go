package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus instruments for the aggregation pipeline.
type Metrics struct {
	PassesTotal       prometheus.Counter
	AggregationErrors *prometheus.CounterVec // label: aggregation name
	PassDuration      prometheus.Histogram
	RecordsLoaded     prometheus.Gauge
	FilteredRecords   prometheus.Histogram
}

// NewMetrics creates and registers all dashboard metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.PassesTotal,
		m.AggregationErrors,
		m.PassDuration,
		m.RecordsLoaded,
		m.FilteredRecords,
	)
	return m
}

// NewUnregisteredMetrics creates the instruments without touching the
// default registry, for tests that build more than one set.
func NewUnregisteredMetrics() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		PassesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "homicide_insights",
			Name:      "aggregation_passes_total",
			Help:      "Total dashboard aggregation passes run.",
		}),
		AggregationErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "homicide_insights",
			Name:      "aggregation_errors_total",
			Help:      "Aggregation faults isolated per view component.",
		}, []string{"aggregation"}),
		PassDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "homicide_insights",
			Name:      "aggregation_pass_duration_seconds",
			Help:      "Duration of a complete filter-and-aggregate pass.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2.5},
		}),
		RecordsLoaded: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "homicide_insights",
			Name:      "records_loaded",
			Help:      "Incident records held in memory.",
		}),
		FilteredRecords: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "homicide_insights",
			Name:      "filtered_records",
			Help:      "Records matching the selection per pass.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 10),
		}),
	}
}
