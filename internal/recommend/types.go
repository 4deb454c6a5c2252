// Reclookup - Precomputed Recommendation Lookup Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reclookup

package recommend

// Request is the body of a recommendation request.
type Request struct {
	// ContentID is the key looked up in every enabled source. A pointer so
	// that an absent field is distinguishable from an empty string.
	ContentID *string `json:"contentId" validate:"required"`
}

// Result holds the recommendations one source produced for a request.
type Result struct {
	Source          string   `json:"source"`
	Recommendations []string `json:"recommendations"`
}

// Source is a named recommendation source backed by a table in the store.
// The name is both the display name in results and the table name.
type Source struct {
	Name string `json:"name"`
}

// Metrics contains engine counters.
type Metrics struct {
	RequestCount int64 `json:"request_count"`
	ErrorCount   int64 `json:"error_count"`
	NotFound     int64 `json:"not_found_count"`
}
