package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the rate limit module.
type Metrics struct {
	// Admission decisions by outcome
	Decisions *prometheus.CounterVec

	// Store failures; the middleware fails open when these occur
	StoreErrors prometheus.Counter
}

// New creates a new Metrics instance with all rate limit metrics registered.
func New() *Metrics {
	return &Metrics{
		Decisions: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "npwp_gateway_ratelimit_decisions_total",
			Help: "Total rate limit admission decisions by outcome",
		}, []string{"outcome"}), // outcome: "allowed", "limited"

		StoreErrors: promauto.NewCounter(prometheus.CounterOpts{
			Name: "npwp_gateway_ratelimit_store_errors_total",
			Help: "Total rate limit store failures (requests fail open)",
		}),
	}
}

// IncrementDecision records an admission decision.
func (m *Metrics) IncrementDecision(outcome string) {
	if m != nil {
		m.Decisions.WithLabelValues(outcome).Inc()
	}
}

// IncrementStoreError records a store failure.
func (m *Metrics) IncrementStoreError() {
	if m != nil {
		m.StoreErrors.Inc()
	}
}
