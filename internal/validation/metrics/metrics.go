package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the validation module.
type Metrics struct {
	// Validation outcomes by result label
	Checks *prometheus.CounterVec

	// Single check latency
	CheckLatency prometheus.Histogram

	// Inputs per batch request
	BatchSize prometheus.Histogram
}

// New creates a new Metrics instance with all validation metrics registered.
func New() *Metrics {
	return &Metrics{
		Checks: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "npwp_gateway_checks_total",
			Help: "Total NPWP validation checks by outcome",
		}, []string{"outcome"}), // outcome: "valid", "malformed_length", "zero_serial"

		CheckLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "npwp_gateway_check_duration_seconds",
			Help:    "Duration of a single NPWP validation check",
			Buckets: []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005},
		}),

		BatchSize: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "npwp_gateway_batch_size",
			Help:    "Number of inputs per batch validation request",
			Buckets: []float64{1, 5, 10, 25, 50, 100},
		}),
	}
}

// IncrementCheck records a validation outcome.
func (m *Metrics) IncrementCheck(outcome string) {
	if m != nil {
		m.Checks.WithLabelValues(outcome).Inc()
	}
}

// ObserveCheckLatency records the duration of a single check.
func (m *Metrics) ObserveCheckLatency(d time.Duration) {
	if m != nil {
		m.CheckLatency.Observe(d.Seconds())
	}
}

// ObserveBatchSize records the size of a batch request.
func (m *Metrics) ObserveBatchSize(n int) {
	if m != nil {
		m.BatchSize.Observe(float64(n))
	}
}
