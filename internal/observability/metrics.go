package observability

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors for the API gateway.
type Metrics struct {
	RequestsTotal   *prometheus.CounterVec   // labels: method, route, status
	RequestDuration *prometheus.HistogramVec // labels: method, route

	// Weather upstream metrics.
	WeatherFetches *prometheus.CounterVec // labels: outcome={success,error}
	WeatherCache   *prometheus.CounterVec // labels: result={hit,miss,bypass}
}

// NewMetrics creates and registers all gateway metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()

	prometheus.MustRegister(
		m.RequestsTotal,
		m.RequestDuration,
		m.WeatherFetches,
		m.WeatherCache,
	)

	return m
}

// NewMetricsForTesting creates the collectors without registering them, so
// tests can construct metrics repeatedly.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		RequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "insurance_api",
			Name:      "http_requests_total",
			Help:      "Total HTTP requests by method, route pattern, and status.",
		}, []string{"method", "route", "status"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "insurance_api",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route pattern.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		WeatherFetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "insurance_api",
			Name:      "weather_fetches_total",
			Help:      "Upstream weather provider calls by outcome.",
		}, []string{"outcome"}),
		WeatherCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "insurance_api",
			Name:      "weather_cache_total",
			Help:      "Weather snapshot cache lookups by result.",
		}, []string{"result"}),
	}
}

// ObserveRequest records a completed HTTP request.
func (m *Metrics) ObserveRequest(method, route string, status int, duration time.Duration) {
	m.RequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.RequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}
