// Package utils provides utility functions including metrics collection.
package utils

import (
	"runtime"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus metrics
var (
	statementsRecordedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ledger_statements_recorded_total",
		Help: "Total number of ledger statements recorded, by operation type",
	}, []string{"type"})

	//nolint:unused // Used by Prometheus metrics collection
	activeGoroutines = promauto.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "ledger_goroutines_active",
		Help: "Number of active goroutines",
	}, func() float64 {
		return float64(runtime.NumGoroutine())
	})

	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ledger_http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "endpoint", "status_code"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "ledger_http_request_duration_seconds",
		Help:    "HTTP request duration in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "endpoint"})
)

// MetricsCollector collects basic application metrics.
type MetricsCollector struct {
	startTime          time.Time
	statementsRecorded int64
}

// NewMetricsCollector creates a new metrics collector.
func NewMetricsCollector() *MetricsCollector {
	return &MetricsCollector{
		startTime: time.Now(),
	}
}

// IncrementStatementsRecorded increments the recorded-statement counter.
func (m *MetricsCollector) IncrementStatementsRecorded(op string) {
	atomic.AddInt64(&m.statementsRecorded, 1)
	statementsRecordedTotal.WithLabelValues(op).Inc()
}

// RecordHTTPRequest records an HTTP request metric.
func (m *MetricsCollector) RecordHTTPRequest(method, endpoint string, statusCode int, duration time.Duration) {
	httpRequestsTotal.WithLabelValues(method, endpoint, strconv.Itoa(statusCode)).Inc()
	httpRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// GetMetrics returns the current metrics as a JSON-serializable struct.
func (m *MetricsCollector) GetMetrics() *Metrics {
	return &Metrics{
		Uptime:             time.Since(m.startTime).String(),
		UptimeSeconds:      int64(time.Since(m.startTime).Seconds()),
		Goroutines:         runtime.NumGoroutine(),
		StatementsRecorded: atomic.LoadInt64(&m.statementsRecorded),
	}
}

// Metrics represents the application metrics.
type Metrics struct {
	Uptime             string `json:"uptime"`
	UptimeSeconds      int64  `json:"uptime_seconds"`
	Goroutines         int    `json:"goroutines"`
	StatementsRecorded int64  `json:"statements_recorded"`
}
