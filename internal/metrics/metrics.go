// Package metrics exposes request-level Prometheus collectors for the HTTP
// API. Registration is explicit against a caller-owned registry so tests can
// use isolated registries.
package metrics

import (
	"strconv"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/prometheus/client_golang/prometheus"
)

type Metrics struct {
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
}

func New(namespace string) *Metrics {
	return &Metrics{
		RequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "requests_total",
			Help:      "Count of API requests by operation and status class.",
		}, []string{"operation", "status"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "request_duration_seconds",
			Help:      "API request latency by operation.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
	}
}

func (m *Metrics) Register(registry *prometheus.Registry) error {
	if err := registry.Register(m.RequestsTotal); err != nil {
		return err
	}
	return registry.Register(m.RequestDuration)
}

// ObserveRequest records one completed request.
func (m *Metrics) ObserveRequest(operation, status string, duration time.Duration) {
	m.RequestsTotal.WithLabelValues(operation, status).Inc()
	m.RequestDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// HumaMiddleware observes every API request once the handler chain returns.
func HumaMiddleware(m *Metrics) func(ctx huma.Context, next func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		start := time.Now()
		next(ctx)
		m.ObserveRequest(ctx.Operation().OperationID, strconv.Itoa(ctx.Status()), time.Since(start))
	}
}
