package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all sla-service metrics
type Metrics struct {
	serviceName string
	registry    *prometheus.Registry

	// HTTP metrics
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge

	// Business metrics
	OrdersIngested     *prometheus.CounterVec
	OrdersEvaluated    *prometheus.CounterVec
	OrdersByLevel      *prometheus.GaugeVec
	EvaluationDuration prometheus.Histogram
	MatrixUpdates      prometheus.Counter
	ExportsGenerated   prometheus.Counter
}

// Config holds metrics configuration
type Config struct {
	ServiceName string
	Namespace   string
}

// DefaultConfig returns default metrics configuration
func DefaultConfig(serviceName string) *Config {
	return &Config{
		ServiceName: serviceName,
		Namespace:   "wms",
	}
}

// New creates a new Metrics instance
func New(config *Config) *Metrics {
	registry := prometheus.NewRegistry()

	registry.MustRegister(prometheus.NewGoCollector())
	registry.MustRegister(prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}))

	m := &Metrics{
		serviceName: config.ServiceName,
		registry:    registry,
	}

	m.HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: config.Namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"service", "method", "path", "status"},
	)

	m.HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: config.Namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"service", "method", "path"},
	)

	m.HTTPRequestsInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace:   config.Namespace,
			Name:        "http_requests_in_flight",
			Help:        "Number of HTTP requests currently being processed",
			ConstLabels: prometheus.Labels{"service": config.ServiceName},
		},
	)

	m.OrdersIngested = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: config.Namespace,
			Name:      "sla_orders_ingested_total",
			Help:      "Total number of orders ingested for SLA evaluation",
		},
		[]string{"service", "platform", "source"},
	)

	m.OrdersEvaluated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: config.Namespace,
			Name:      "sla_orders_evaluated_total",
			Help:      "Total number of order SLA evaluations by resulting level",
		},
		[]string{"service", "level"},
	)

	m.OrdersByLevel = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: config.Namespace,
			Name:      "sla_orders_by_level",
			Help:      "Current number of in-memory orders per SLA level",
		},
		[]string{"service", "level"},
	)

	m.EvaluationDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Name:        "sla_evaluation_duration_seconds",
			Help:        "Duration of full-list SLA evaluation passes",
			Buckets:     []float64{.0001, .0005, .001, .005, .01, .05, .1, .5, 1},
			ConstLabels: prometheus.Labels{"service": config.ServiceName},
		},
	)

	m.MatrixUpdates = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Name:        "sla_matrix_updates_total",
			Help:        "Total number of carrier deadline matrix updates",
			ConstLabels: prometheus.Labels{"service": config.ServiceName},
		},
	)

	m.ExportsGenerated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Name:        "sla_exports_generated_total",
			Help:        "Total number of CSV exports generated",
			ConstLabels: prometheus.Labels{"service": config.ServiceName},
		},
	)

	registry.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.HTTPRequestsInFlight,
		m.OrdersIngested,
		m.OrdersEvaluated,
		m.OrdersByLevel,
		m.EvaluationDuration,
		m.MatrixUpdates,
		m.ExportsGenerated,
	)

	return m
}

// Handler returns an HTTP handler for the /metrics endpoint
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry returns the underlying Prometheus registry
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// RecordHTTPRequest records an HTTP request
func (m *Metrics) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(m.serviceName, method, path, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(m.serviceName, method, path).Observe(duration.Seconds())
}

// RecordOrderIngested records an ingested order
func (m *Metrics) RecordOrderIngested(platform, source string) {
	m.OrdersIngested.WithLabelValues(m.serviceName, platform, source).Inc()
}

// RecordOrderEvaluated records a single order evaluation result
func (m *Metrics) RecordOrderEvaluated(level string) {
	m.OrdersEvaluated.WithLabelValues(m.serviceName, level).Inc()
}

// SetOrdersByLevel sets the per-level order gauge
func (m *Metrics) SetOrdersByLevel(level string, count int) {
	m.OrdersByLevel.WithLabelValues(m.serviceName, level).Set(float64(count))
}

// RecordEvaluationPass records the duration of a full evaluation pass
func (m *Metrics) RecordEvaluationPass(duration time.Duration) {
	m.EvaluationDuration.Observe(duration.Seconds())
}

// RecordMatrixUpdate records a deadline matrix update
func (m *Metrics) RecordMatrixUpdate() {
	m.MatrixUpdates.Inc()
}

// RecordExport records a generated CSV export
func (m *Metrics) RecordExport() {
	m.ExportsGenerated.Inc()
}

// IncrementHTTPRequestsInFlight increments in-flight requests
func (m *Metrics) IncrementHTTPRequestsInFlight() {
	m.HTTPRequestsInFlight.Inc()
}

// DecrementHTTPRequestsInFlight decrements in-flight requests
func (m *Metrics) DecrementHTTPRequestsInFlight() {
	m.HTTPRequestsInFlight.Dec()
}
