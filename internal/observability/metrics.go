// ABOUTME: Prometheus metrics for workout operations and persistence
// ABOUTME: Uses a private registry so tests and multiple apps do not collide

package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels for operation counters.
const (
	OutcomeOK        = "ok"
	OutcomeInvalid   = "invalid"
	OutcomeNotFound  = "not_found"
	OutcomeDuplicate = "duplicate"
	OutcomeDeclined  = "declined"
	OutcomeError     = "error"
)

// Metrics holds the collectors recorded by the app.
type Metrics struct {
	registry            *prometheus.Registry
	operations          *prometheus.CounterVec
	persistenceFailures prometheus.Counter
	records             prometheus.Gauge
}

// NewMetrics creates and registers the workout collectors.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "workouts",
			Name:      "operations_total",
			Help:      "Number of workout operations grouped by operation and outcome.",
		}, []string{"op", "outcome"}),
		persistenceFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "workouts",
			Name:      "persistence_failures_total",
			Help:      "Number of snapshot reads or writes that failed.",
		}),
		records: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "workouts",
			Name:      "records",
			Help:      "Number of workouts currently in the collection.",
		}),
	}
	m.registry.MustRegister(
		m.operations,
		m.persistenceFailures,
		m.records,
		collectors.NewGoCollector(),
	)
	return m
}

// RecordOperation counts one operation with its outcome.
func (m *Metrics) RecordOperation(op, outcome string) {
	m.operations.WithLabelValues(op, outcome).Inc()
}

// RecordPersistenceFailure counts a failed snapshot read or write.
func (m *Metrics) RecordPersistenceFailure() {
	m.persistenceFailures.Inc()
}

// SetRecords updates the collection size gauge.
func (m *Metrics) SetRecords(n int) {
	m.records.Set(float64(n))
}

// Registry exposes the private registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
