// Watchlog - Personal Media Watching Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchlog

// Package metrics holds the Prometheus instruments for Watchlog. All
// collectors register with the default registry and are served on /metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "watchlog_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "watchlog_api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10, 30, 60},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "watchlog_api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "watchlog_api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// AI Gateway Metrics
	AIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "watchlog_ai_requests_total",
			Help: "Total number of generative AI calls by operation and outcome",
		},
		[]string{"operation", "outcome"},
	)

	AIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "watchlog_ai_request_duration_seconds",
			Help:    "Generative AI call duration in seconds",
			Buckets: []float64{0.25, 0.5, 1, 2, 5, 10, 20, 40, 60, 120},
		},
		[]string{"operation"},
	)

	AIRateLimitWaits = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "watchlog_ai_rate_limit_wait_seconds",
			Help:    "Time spent waiting on the client-side AI rate limiter",
			Buckets: []float64{0, 0.1, 0.5, 1, 2, 5, 10},
		},
	)

	// Record Store Metrics
	StoreRecords = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "watchlog_store_records",
			Help: "Current number of records held by the store",
		},
	)

	StoreMutations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "watchlog_store_mutations_total",
			Help: "Total number of store mutations by kind and result",
		},
		[]string{"kind", "result"}, // kind: append, delete, clear, assign_ids
	)

	// Persistence Metrics
	StorageSaveDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "watchlog_storage_save_duration_seconds",
			Help:    "Duration of full-file saves in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	StorageSaveErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "watchlog_storage_save_errors_total",
			Help: "Total number of failed saves",
		},
	)

	StorageLoadRecoveries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "watchlog_storage_load_recoveries_total",
			Help: "Loads that fell back to an empty collection",
		},
		[]string{"reason"}, // missing, corrupt
	)

	// Cache Metrics
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "watchlog_cache_hits_total",
			Help: "Total number of cache hits",
		},
		[]string{"cache_type"},
	)

	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "watchlog_cache_misses_total",
			Help: "Total number of cache misses",
		},
		[]string{"cache_type"},
	)

	CacheSize = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "watchlog_cache_entries",
			Help: "Current number of cached entries",
		},
		[]string{"cache_type"},
	)

	// WebSocket Metrics
	WSConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "watchlog_websocket_connections",
			Help: "Current number of active WebSocket connections",
		},
	)

	WSMessagesSent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "watchlog_websocket_messages_sent_total",
			Help: "Total number of WebSocket messages sent",
		},
	)

	WSErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "watchlog_websocket_errors_total",
			Help: "Total number of WebSocket errors",
		},
		[]string{"error_type"},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "watchlog_circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "watchlog_circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: success, failure, rejected
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "watchlog_circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)
)

// RecordAPIRequest records an API request metric.
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks in-flight API requests.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordAIRequest records one generative AI call.
func RecordAIRequest(operation, outcome string, duration time.Duration) {
	AIRequestsTotal.WithLabelValues(operation, outcome).Inc()
	AIRequestDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// RecordStoreMutation records a store mutation and, on success, the new size.
func RecordStoreMutation(kind string, err error, size int) {
	if err != nil {
		StoreMutations.WithLabelValues(kind, "error").Inc()
		return
	}
	StoreMutations.WithLabelValues(kind, "ok").Inc()
	StoreRecords.Set(float64(size))
}

// RecordStorageSave records a full-file save.
func RecordStorageSave(duration time.Duration, err error) {
	StorageSaveDuration.Observe(duration.Seconds())
	if err != nil {
		StorageSaveErrors.Inc()
	}
}
