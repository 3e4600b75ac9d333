// Package metrics provides Prometheus metrics for the danceboard directory
// service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager holds all Prometheus collectors for the service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	registry         prometheus.Registerer

	// Dataset metrics - the canonical event list.
	datasetSize     prometheus.Gauge
	datasetLastLoad prometheus.Gauge

	// Loader metrics.
	loadsTotal          prometheus.Counter
	loadFailures        prometheus.Counter
	loadDuration        prometheus.Histogram
	recordsDroppedTotal prometheus.Counter

	// Filter engine metrics.
	filterDuration prometheus.Histogram

	// HTTP metrics.
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	errorsByEndpoint    *prometheus.CounterVec
}

// Global manager on a private registry so default Go collectors stay out.
var globalManager *Manager
var customRegistry = prometheus.NewRegistry()

func init() {
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "danceboard",
		subsystem:        "directory",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
		registry:         prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.datasetSize = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "dataset_size",
		Help:      "Number of events in the canonical dataset",
	})

	m.datasetLastLoad = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "dataset_last_load_unix",
		Help:      "Unix timestamp of the last successful load",
	})

	m.loadsTotal = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "loads_total",
		Help:      "Total number of load attempts against the event source",
	})

	m.loadFailures = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "load_failures_total",
		Help:      "Total number of failed load attempts",
	})

	m.loadDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "load_duration_milliseconds",
		Help:      "Duration of load attempts in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.recordsDroppedTotal = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "records_dropped_total",
		Help:      "Records dropped during load (empty name or duplicate key)",
	})

	m.filterDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "filter_duration_milliseconds",
		Help:      "Duration of filter recomputation in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.httpRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by endpoint and method",
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.httpRequestDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_request_duration_milliseconds",
			Help:      "HTTP request duration in milliseconds",
			Buckets:   m.histogramBuckets,
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.errorsByEndpoint = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "errors_by_endpoint_total",
			Help:      "Total number of error responses by endpoint",
		},
		[]string{"endpoint", "method", "error_type"},
	)
}

// Package-level helpers on the global manager.

// UpdateDatasetSize sets the canonical dataset size gauge.
func UpdateDatasetSize(size int) {
	globalManager.datasetSize.Set(float64(size))
}

// UpdateLastLoadTime sets the last successful load timestamp gauge.
func UpdateLastLoadTime(unix int64) {
	globalManager.datasetLastLoad.Set(float64(unix))
}

// RecordLoadAttempt increments the load attempt counter.
func RecordLoadAttempt() {
	globalManager.loadsTotal.Inc()
}

// RecordLoadFailure increments the failed load counter.
func RecordLoadFailure() {
	globalManager.loadFailures.Inc()
}

// RecordLoadDuration records the duration of a load attempt.
func RecordLoadDuration(latencyMs float64) {
	globalManager.loadDuration.Observe(latencyMs)
}

// RecordRecordDropped increments the dropped-record counter.
func RecordRecordDropped() {
	globalManager.recordsDroppedTotal.Inc()
}

// RecordFilterDuration records the duration of a filter recomputation.
func RecordFilterDuration(latencyMs float64) {
	globalManager.filterDuration.Observe(latencyMs)
}

// RecordHTTPRequest records an HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records HTTP request duration.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, durationMs float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(durationMs)
}

// RecordErrorByEndpoint records an error response for an endpoint.
func RecordErrorByEndpoint(endpoint, method, errorType string) {
	globalManager.errorsByEndpoint.WithLabelValues(endpoint, method, errorType).Inc()
}

// GetRegistry returns the private Prometheus registry used by the service.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
