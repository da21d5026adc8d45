package validator

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"colony-hq/colony-ls/pkg/blueprint/diag"
)

// Metrics contains Prometheus metrics for the validation engine. Construct
// it once per process and share it across validators; promauto registers
// the collectors with the default registry.
type Metrics struct {
	runs            prometheus.Counter
	diagnostics     *prometheus.CounterVec
	runDuration     prometheus.Histogram
	refreshDuration prometheus.Histogram
}

// NewMetrics creates a Metrics instance with Prometheus collectors.
func NewMetrics() *Metrics {
	return &Metrics{
		runs: promauto.NewCounter(prometheus.CounterOpts{
			Name: "colonyls_validation_runs_total",
			Help: "Total number of blueprint validation runs",
		}),

		diagnostics: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "colonyls_validation_diagnostics_total",
			Help: "Total number of diagnostics emitted, by severity",
		}, []string{"severity"}),

		runDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "colonyls_validation_duration_seconds",
			Help:    "Time spent running the full validation pass sequence",
			Buckets: prometheus.DefBuckets,
		}),

		refreshDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "colonyls_catalog_refresh_duration_seconds",
			Help:    "Time spent refreshing the resource catalogs per run",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

// observeRun records one completed validation run. Safe on a nil receiver
// so the validator never has to branch on whether metrics are attached.
func (m *Metrics) observeRun(elapsed time.Duration, diags []diag.Diagnostic) {
	if m == nil {
		return
	}
	m.runs.Inc()
	m.runDuration.Observe(elapsed.Seconds())
	for _, d := range diags {
		m.diagnostics.WithLabelValues(d.Severity.String()).Inc()
	}
}

// observeRefresh records the catalog refresh step of one run.
func (m *Metrics) observeRefresh(elapsed time.Duration) {
	if m == nil {
		return
	}
	m.refreshDuration.Observe(elapsed.Seconds())
}
