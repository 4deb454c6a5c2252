// Reclookup - Precomputed Recommendation Lookup Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reclookup

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus instrumentation for:
// - API endpoint latency and throughput
// - Recommendation table loading
// - Recommendation lookups per source

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5}, // Lookups are in-memory
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// Table Store Metrics
	TableRows = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "table_rows",
			Help: "Number of data rows in a loaded recommendation table",
		},
		[]string{"source"},
	)

	TableLoaded = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "table_loaded",
			Help: "Whether the recommendation table for a source is loaded (1) or unloaded (0)",
		},
		[]string{"source"},
	)

	TableLoadDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "table_load_duration_seconds",
			Help:    "Duration of recommendation table loads in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 10, 30, 60},
		},
		[]string{"source", "loader"},
	)

	TableLoadErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "table_load_errors_total",
			Help: "Total number of failed recommendation table loads",
		},
		[]string{"source", "error_type"},
	)

	// Lookup Metrics
	LookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommend_lookups_total",
			Help: "Total number of recommendation lookups by outcome",
		},
		[]string{"source", "outcome"}, // "hit", "not_found", "not_loaded", "error"
	)

	LookupDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "recommend_lookup_duration_seconds",
			Help:    "Duration of a single-source recommendation lookup in seconds",
			Buckets: []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01},
		},
		[]string{"source"},
	)
)

// Lookup outcomes.
const (
	OutcomeHit       = "hit"
	OutcomeNotFound  = "not_found"
	OutcomeNotLoaded = "not_loaded"
	OutcomeError     = "error"
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRateLimitHit counts a rejected request for endpoint.
func RecordRateLimitHit(endpoint string) {
	APIRateLimitHits.WithLabelValues(endpoint).Inc()
}

// RecordTableLoad records the outcome of loading the table for source.
// errorType is only used when err is non-nil.
func RecordTableLoad(source, loader string, rows int, duration time.Duration, errorType string, err error) {
	TableLoadDuration.WithLabelValues(source, loader).Observe(duration.Seconds())
	if err != nil {
		if errorType == "" {
			errorType = "unknown"
		}
		TableLoadErrors.WithLabelValues(source, errorType).Inc()
		TableLoaded.WithLabelValues(source).Set(0)
		TableRows.WithLabelValues(source).Set(0)
		return
	}
	TableLoaded.WithLabelValues(source).Set(1)
	TableRows.WithLabelValues(source).Set(float64(rows))
}

// RecordLookup records a single-source lookup.
func RecordLookup(source, outcome string, duration time.Duration) {
	LookupsTotal.WithLabelValues(source, outcome).Inc()
	LookupDuration.WithLabelValues(source).Observe(duration.Seconds())
}
