package bindings

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	MetricsSubsystem = "tokenfactory_bindings"

	resultSuccess = "success"
	resultError   = "error"
)

// Metrics counts the custom messages and queries handled by the bindings.
type Metrics struct {
	MsgsDispatched  *prometheus.CounterVec
	QueriesAnswered *prometheus.CounterVec
}

// PrometheusMetrics returns Metrics registered with reg.
func PrometheusMetrics(namespace string, reg prometheus.Registerer) *Metrics {
	m := newMetrics(namespace)
	reg.MustRegister(m.MsgsDispatched, m.QueriesAnswered)
	return m
}

// NopMetrics returns Metrics that are never exported.
func NopMetrics() *Metrics {
	return newMetrics("")
}

func newMetrics(namespace string) *Metrics {
	return &Metrics{
		MsgsDispatched: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: MetricsSubsystem,
			Name:      "msgs_dispatched_total",
			Help:      "Number of token factory custom messages dispatched, by variant and result",
		}, []string{"variant", "result"}),
		QueriesAnswered: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: MetricsSubsystem,
			Name:      "queries_answered_total",
			Help:      "Number of token factory custom queries answered, by variant and result",
		}, []string{"variant", "result"}),
	}
}

func (m *Metrics) observeMsg(variant string, err error) {
	m.MsgsDispatched.WithLabelValues(variant, result(err)).Inc()
}

func (m *Metrics) observeQuery(variant string, err error) {
	m.QueriesAnswered.WithLabelValues(variant, result(err)).Inc()
}

func result(err error) string {
	if err != nil {
		return resultError
	}
	return resultSuccess
}
