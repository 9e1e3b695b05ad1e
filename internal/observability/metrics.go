package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the
// analysis pipeline.
type Metrics struct {
	ObservationsParsed prometheus.Counter
	ParseErrors        prometheus.Counter
	RunsCompleted      prometheus.Counter
	AnalysisRunning    prometheus.Gauge
	RunDuration        prometheus.Histogram
}

// NewMetrics creates and registers all pipeline metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.ObservationsParsed,
		m.ParseErrors,
		m.RunsCompleted,
		m.AnalysisRunning,
		m.RunDuration,
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
		ObservationsParsed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "weather_report",
			Name:      "observations_parsed_total",
			Help:      "Total observations parsed from the input source.",
		}),
		ParseErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "weather_report",
			Name:      "parse_errors_total",
			Help:      "Total runs aborted by a malformed input line.",
		}),
		RunsCompleted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "weather_report",
			Name:      "runs_completed_total",
			Help:      "Total analysis runs that produced a full report.",
		}),
		AnalysisRunning: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "weather_report",
			Name:      "analysis_running",
			Help:      "1 while an analysis run is in progress, 0 otherwise.",
		}),
		RunDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "weather_report",
			Name:      "run_duration_seconds",
			Help:      "Duration of a complete read-parse-aggregate-report run.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		}),
	}
}
