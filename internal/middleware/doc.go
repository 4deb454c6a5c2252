// Reclookup - Precomputed Recommendation Lookup Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reclookup

/*
Package middleware provides HTTP middleware components for the API server.

Key Components:

  - Request ID: UUID-based request tracking, propagated into the logging context
  - Prometheus Metrics: request count, duration and in-flight gauges
  - Performance Monitor: sliding-window latency percentiles for /api/v1/stats

All middleware uses the func(http.Handler) http.Handler shape so it plugs
directly into chi:

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Route("/api/v1", func(r chi.Router) {
	    r.Use(middleware.PrometheusMetrics)
	    r.Use(perfMon.Middleware)
	    r.Post("/recommendations", handler.Recommendations)
	})

Metrics are labelled with the matched chi route pattern rather than the raw
path, so requests to /items/1 and /items/2 share one series.
*/
package middleware
