package http

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	dto "github.com/prometheus/client_model/go"
	"github.com/rs/zerolog/log"
)

// MetricsRegistry holds all Prometheus metrics for the basis service. Each
// server owns its own registry so tests stay hermetic.
type MetricsRegistry struct {
	registry *prometheus.Registry

	// Request metrics
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	InflightGauge   prometheus.Gauge

	// Core computation metrics
	ComputeDuration *prometheus.HistogramVec
	ComputeErrors   *prometheus.CounterVec
	BasisVectors    prometheus.Histogram
}

// NewMetricsRegistry creates a registry with all basis service metrics
// registered.
func NewMetricsRegistry() *MetricsRegistry {
	m := &MetricsRegistry{
		registry: prometheus.NewRegistry(),

		RequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "orthorun_requests_total",
				Help: "Total number of HTTP requests by endpoint and status code",
			},
			[]string{"endpoint", "status"},
		),

		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "orthorun_request_duration_seconds",
				Help:    "HTTP request duration in seconds by endpoint",
				Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0},
			},
			[]string{"endpoint"},
		),

		InflightGauge: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "orthorun_requests_inflight",
				Help: "Number of HTTP requests currently being served",
			},
		),

		ComputeDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "orthorun_compute_duration_seconds",
				Help:    "Duration of core computations in seconds by operation and result",
				Buckets: []float64{0.00001, 0.0001, 0.001, 0.01, 0.1, 1.0},
			},
			[]string{"operation", "result"},
		),

		ComputeErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "orthorun_compute_errors_total",
				Help: "Total number of failed core computations by operation and error kind",
			},
			[]string{"operation", "kind"},
		),

		BasisVectors: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "orthorun_basis_vectors",
				Help:    "Number of vectors in each computed orthonormal basis",
				Buckets: []float64{1, 2, 3, 5, 10, 25, 50, 100},
			},
		),
	}

	m.registry.MustRegister(
		m.RequestsTotal,
		m.RequestDuration,
		m.InflightGauge,
		m.ComputeDuration,
		m.ComputeErrors,
		m.BasisVectors,
	)

	return m
}

// Handler returns the Prometheus exposition handler for this registry.
func (m *MetricsRegistry) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// RecordRequest records a completed HTTP request.
func (m *MetricsRegistry) RecordRequest(endpoint, status string, duration time.Duration) {
	m.RequestsTotal.WithLabelValues(endpoint, status).Inc()
	m.RequestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

// RecordCompute records a core computation outcome.
func (m *MetricsRegistry) RecordCompute(operation, result string, duration time.Duration) {
	m.ComputeDuration.WithLabelValues(operation, result).Observe(duration.Seconds())
}

// RecordComputeError counts a failed core computation by error kind.
func (m *MetricsRegistry) RecordComputeError(operation, kind string) {
	m.ComputeErrors.WithLabelValues(operation, kind).Inc()
}

// ObserveBasisSize records the vector count of a computed basis.
func (m *MetricsRegistry) ObserveBasisSize(n int) {
	m.BasisVectors.Observe(float64(n))
}

// RequestCount sums the requests_total counter across all label values.
// Used by the health endpoint and tests.
func (m *MetricsRegistry) RequestCount() float64 {
	families, err := m.registry.Gather()
	if err != nil {
		log.Warn().Err(err).Msg("failed to gather metrics")
		return 0
	}

	total := 0.0
	for _, family := range families {
		if family.GetName() != "orthorun_requests_total" {
			continue
		}
		if family.GetType() != dto.MetricType_COUNTER {
			continue
		}
		for _, metric := range family.GetMetric() {
			total += metric.GetCounter().GetValue()
		}
	}
	return total
}
