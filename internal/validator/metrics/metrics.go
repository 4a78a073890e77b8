package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the validation pipeline.
type Metrics struct {
	// Validation outcomes by profile and result
	ValidationsTotal *prometheus.CounterVec

	// Findings by severity
	FindingsTotal *prometheus.CounterVec

	// Full pipeline latency
	ValidateLatency prometheus.Histogram
}

// New creates a new Metrics instance with all pipeline metrics registered.
func New() *Metrics {
	return &Metrics{
		ValidationsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "sepalint_validations_total",
			Help: "Total validated documents by profile and outcome",
		}, []string{"profile", "outcome"}), // outcome: "valid", "invalid"

		FindingsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "sepalint_findings_total",
			Help: "Total findings produced by severity",
		}, []string{"severity"}),

		ValidateLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "sepalint_validate_duration_seconds",
			Help:    "Duration of full document validation including schema check",
			Buckets: []float64{0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5},
		}),
	}
}

// IncrementValidation records one validated document.
func (m *Metrics) IncrementValidation(profile string, valid bool) {
	if m != nil {
		outcome := "invalid"
		if valid {
			outcome = "valid"
		}
		m.ValidationsTotal.WithLabelValues(profile, outcome).Inc()
	}
}

// IncrementFinding records one produced finding.
func (m *Metrics) IncrementFinding(severity string) {
	if m != nil {
		m.FindingsTotal.WithLabelValues(severity).Inc()
	}
}

// ObserveValidateLatency records the total validation duration.
func (m *Metrics) ObserveValidateLatency(d time.Duration) {
	if m != nil {
		m.ValidateLatency.Observe(d.Seconds())
	}
}
