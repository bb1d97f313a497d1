package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	namespace = "airport"
	subsystem = "registry"

	ResultOK       = "ok"
	ResultConflict = "conflict"
	ResultNotFound = "not_found"
	ResultInvalid  = "invalid"
	ResultError    = "error"
)

// Metrics are the registry collectors. A nil *Metrics records nothing.
type Metrics struct {
	operations *prometheus.CounterVec
	flights    prometheus.Gauge
}

func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		operations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "operations_total",
				Help:      "Count of registry operations by operation and result.",
			},
			[]string{"operation", "result"},
		),
		flights: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "flights",
				Help:      "Number of flights currently registered.",
			},
		),
	}
	reg.MustRegister(m.operations, m.flights)
	return m
}

func (m *Metrics) Observe(operation, result string) {
	if m == nil {
		return
	}
	m.operations.WithLabelValues(operation, result).Inc()
}

func (m *Metrics) SetFlights(n int) {
	if m == nil {
		return
	}
	m.flights.Set(float64(n))
}
