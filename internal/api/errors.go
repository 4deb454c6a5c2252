// Reclookup - Precomputed Recommendation Lookup Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reclookup

package api

import "errors"

// Common API errors
var (
	// ErrBodyTooLarge indicates the request body exceeded maxBodyBytes
	ErrBodyTooLarge = errors.New("request body too large")
)
