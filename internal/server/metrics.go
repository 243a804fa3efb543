package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics exposes the operational Prometheus metrics of the process.
//
// Each instance carries its own registry, so constructing a second Metrics
// (as tests do) never trips the duplicate-registration panic of the default
// global registry.
type Metrics struct {
	registry       *prometheus.Registry
	activeRequests prometheus.Gauge
	requestsTotal  prometheus.Counter
	handler        http.Handler
}

// NewMetrics creates the metric collectors and their serving handler.
// Go runtime and process collectors are registered alongside the seqgen
// request metrics.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	activeRequests := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "seqgen_active_requests",
		Help: "Number of HTTP requests currently being served.",
	})
	requestsTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "seqgen_requests_total",
		Help: "Total number of HTTP requests served.",
	})

	registry.MustRegister(
		activeRequests,
		requestsTotal,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return &Metrics{
		registry:       registry,
		activeRequests: activeRequests,
		requestsTotal:  requestsTotal,
		handler:        promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
	}
}

// IncrementActiveRequests marks a request as in flight.
func (m *Metrics) IncrementActiveRequests() {
	m.activeRequests.Inc()
}

// DecrementActiveRequests marks a request as finished.
func (m *Metrics) DecrementActiveRequests() {
	m.activeRequests.Dec()
}

// CountRequest increments the served-request counter.
func (m *Metrics) CountRequest() {
	m.requestsTotal.Inc()
}

// WritePrometheus serves the metrics in Prometheus exposition format.
func (m *Metrics) WritePrometheus(w http.ResponseWriter, r *http.Request) {
	m.handler.ServeHTTP(w, r)
}
