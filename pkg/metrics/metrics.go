// Package metrics exposes Prometheus instrumentation for HTTP traffic and store calls.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/JaimeStill/promptcraft/pkg/middleware"
)

const namespace = "promptcraft"

// Metrics holds the service's Prometheus collectors on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	RequestsTotal     *prometheus.CounterVec
	RequestDuration   *prometheus.HistogramVec
	StoreCallsTotal   *prometheus.CounterVec
	StoreCallDuration *prometheus.HistogramVec
}

// New creates a Metrics instance with Go runtime and process collectors registered.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		RequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total HTTP requests by module, method, and status code",
			},
			[]string{"module", "method", "status"},
		),
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency by module and method",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"module", "method"},
		),
		StoreCallsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "store_calls_total",
				Help:      "Total store round trips by backend, operation, and outcome",
			},
			[]string{"backend", "operation", "outcome"},
		),
		StoreCallDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "store_call_duration_seconds",
				Help:      "Store round trip latency by backend and operation",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"backend", "operation"},
		),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.RequestsTotal,
		m.RequestDuration,
		m.StoreCallsTotal,
		m.StoreCallDuration,
	)

	return m
}

// Registry returns the registry backing the collectors.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Middleware records request counts and latency under the given module label.
func (m *Metrics) Middleware(module string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := middleware.NewStatusRecorder(w)
			next.ServeHTTP(rec, r)

			m.RequestsTotal.
				WithLabelValues(module, r.Method, strconv.Itoa(rec.Status)).
				Inc()
			m.RequestDuration.
				WithLabelValues(module, r.Method).
				Observe(time.Since(start).Seconds())
		})
	}
}

// ObserveStore records one store round trip that began at start.
func (m *Metrics) ObserveStore(backend, operation string, start time.Time, err error) {
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	m.StoreCallsTotal.WithLabelValues(backend, operation, outcome).Inc()
	m.StoreCallDuration.WithLabelValues(backend, operation).Observe(time.Since(start).Seconds())
}
