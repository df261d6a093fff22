package app

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Editor operations as reported in metrics.
const (
	OpLoad          = "load"
	OpSave          = "save"
	OpTogglePublish = "toggle_publish"
	OpRemove        = "remove"
)

const (
	outcomeSuccess = "success"
	outcomeFailure = "failure"
)

// Metrics counts editor operations. A nil *Metrics records nothing.
type Metrics struct {
	operations *prometheus.CounterVec
	sessions   prometheus.Gauge
}

// NewMetrics registers the editor metrics with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		operations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "giftcard_editor_operations_total",
			Help: "Gift card editor operations by outcome.",
		}, []string{"operation", "outcome"}),
		sessions: factory.NewGauge(prometheus.GaugeOpts{
			Name: "giftcard_editor_sessions",
			Help: "Open gift card editor sessions.",
		}),
	}
}

func (m *Metrics) record(op string, err error) {
	if m == nil {
		return
	}

	outcome := outcomeSuccess
	if err != nil {
		outcome = outcomeFailure
	}

	m.operations.WithLabelValues(op, outcome).Inc()
}

func (m *Metrics) setSessions(n int) {
	if m == nil {
		return
	}

	m.sessions.Set(float64(n))
}
