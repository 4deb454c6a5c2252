// Reclookup - Precomputed Recommendation Lookup Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reclookup

package models

import (
	"time"
)

// APIResponse represents a standardized API response wrapper used by the
// /api/v1 endpoints. The legacy /recommendations/ route keeps its bare
// array contract and does not use it.
//
// Status field values:
//   - "success": Request completed successfully, see Data field
//   - "error": Request failed, see Error field for details
//
// Example successful response:
//
//	{
//	  "status": "success",
//	  "data": [{"source": "Collaborative Filtering", "recommendations": ["101", "205"]}],
//	  "metadata": {"timestamp": "2026-01-03T12:00:00Z", "query_time_ms": 1}
//	}
//
// Example error response:
//
//	{
//	  "status": "error",
//	  "error": {
//	    "code": "RECOMMENDATION_ERROR",
//	    "message": "Collaborative Filtering failed: no recommendations found for contentId 42"
//	  },
//	  "metadata": {"timestamp": "2026-01-03T12:00:00Z"}
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata contains response metadata for observability.
//
// Fields:
//   - Timestamp: Server time when response was generated (RFC3339 format)
//   - QueryTimeMS: Lookup time in milliseconds
//   - RequestID: Request ID, also sent in the X-Request-ID header
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	QueryTimeMS int64     `json:"query_time_ms,omitempty"`
	RequestID   string    `json:"request_id,omitempty"`
}

// APIError represents an error response with structured error details.
//
// Error codes:
//   - VALIDATION_ERROR: Malformed request body
//   - RECOMMENDATION_ERROR: A source lookup failed
//   - METHOD_NOT_ALLOWED: Wrong HTTP method
//   - RATE_LIMIT_EXCEEDED: Too many requests
//   - NOT_READY: Tables not loaded
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// DetailError is the error body of the /recommendations/ route, kept
// compatible with the legacy frontend: {"detail": "..."}.
type DetailError struct {
	Detail string `json:"detail"`
}

// HealthStatus is the payload of the health endpoints.
type HealthStatus struct {
	Status       string  `json:"status"` // "healthy" or "degraded"
	Version      string  `json:"version"`
	TablesLoaded int     `json:"tables_loaded"`
	TablesTotal  int     `json:"tables_total"`
	Uptime       float64 `json:"uptime_seconds"`
}
