// Package metrics exposes Prometheus counters for the doctor registry and its HTTP surface.
package metrics

import (
	"net/http"

	"voll/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "voll"

// Metrics holds all Prometheus metrics for the application
type Metrics struct {
	registry *prometheus.Registry

	DoctorsRegistered  *prometheus.CounterVec
	DoctorsUpdated     prometheus.Counter
	DoctorsDeactivated prometheus.Counter

	HTTPRequests        *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	RateLimited         prometheus.Counter
}

var _ service.RegistryMetrics = (*Metrics)(nil)

// New creates a dedicated registry and registers every metric on it.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		DoctorsRegistered: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "doctors_registered_total",
			Help:      "Total number of doctors registered, by specialty",
		}, []string{"specialty"}),
		DoctorsUpdated: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "doctors_updated_total",
			Help:      "Total number of doctor updates committed",
		}),
		DoctorsDeactivated: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "doctors_deactivated_total",
			Help:      "Total number of doctors deactivated",
		}),
		HTTPRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests, by route and status code",
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency, by route",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		RateLimited: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_rate_limited_total",
			Help:      "Total number of requests rejected by the rate limiter",
		}),
	}
}

// IncDoctorsRegistered increments the registration counter for a specialty
func (m *Metrics) IncDoctorsRegistered(specialty string) {
	m.DoctorsRegistered.WithLabelValues(specialty).Inc()
}

// IncDoctorsUpdated increments the update counter by 1
func (m *Metrics) IncDoctorsUpdated() {
	m.DoctorsUpdated.Inc()
}

// IncDoctorsDeactivated increments the deactivation counter by 1
func (m *Metrics) IncDoctorsDeactivated() {
	m.DoctorsDeactivated.Inc()
}

// IncRateLimited counts one rejected request
func (m *Metrics) IncRateLimited() {
	m.RateLimited.Inc()
}

// ObserveHTTPRequest records one served request
func (m *Metrics) ObserveHTTPRequest(method, route, status string, seconds float64) {
	m.HTTPRequests.WithLabelValues(method, route, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(seconds)
}

// Handler serves the registry in the Prometheus text format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// NewRegistryMetrics exposes Metrics as the domain RegistryMetrics port
func NewRegistryMetrics(m *Metrics) service.RegistryMetrics {
	return m
}
