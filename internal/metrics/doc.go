// Reclookup - Precomputed Recommendation Lookup Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reclookup

/*
Package metrics provides Prometheus metrics collection and export for observability.

Metrics are registered on the default registry through promauto and exposed at
the /metrics endpoint in Prometheus text format:

	curl http://localhost:8000/metrics

# Available Metrics

API:
  - api_requests_total{method, endpoint, status_code}
  - api_request_duration_seconds{method, endpoint}
  - api_active_requests
  - api_rate_limit_hits_total{endpoint}

Table Store:
  - table_rows{source}
  - table_loaded{source}: 1 when the source table is loaded, 0 otherwise
  - table_load_duration_seconds{source, loader}
  - table_load_errors_total{source, error_type}

Lookups:
  - recommend_lookups_total{source, outcome}: outcome is hit, not_found, not_loaded or error
  - recommend_lookup_duration_seconds{source}

# Usage

	start := time.Now()
	recs, err := recommend.Lookup(t, key)
	metrics.RecordLookup(source, metrics.OutcomeHit, time.Since(start))

All recording functions are safe for concurrent use.
*/
package metrics
