package errnotify

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts intercepted failures by status code. Statuses outside
// 100-599 (other than 0) share the "other" label.
type Metrics struct {
	failures *prometheus.CounterVec
}

// NewMetrics creates the failure counter and registers it with reg.
// A nil reg leaves the counter unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		failures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "errnotify_failures_total",
				Help: "Count of failed HTTP requests seen by the error interceptor",
			},
			[]string{"status"},
		),
	}
	if reg != nil {
		reg.MustRegister(m.failures)
	}
	return m
}

func (m *Metrics) observe(status int, known bool) {
	if m == nil {
		return
	}
	label := "unknown"
	switch {
	case known && status == StatusNetworkError:
		label = "0"
	case known && status >= 100 && status <= 599:
		label = strconv.Itoa(status)
	case known:
		label = "other"
	}
	m.failures.WithLabelValues(label).Inc()
}
