// Reclookup - Precomputed Recommendation Lookup Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reclookup

/*
Package validation provides struct validation using go-playground/validator v10.

A single validator instance is created lazily and shared; it caches struct
metadata and is safe for concurrent use. Field names in error messages come
from json tags so they match the request body.

	type RecommendationRequest struct {
	    ContentID *string `json:"contentId" validate:"required"`
	}

	if verr := validation.ValidateStruct(&req); verr != nil {
	    apiErr := verr.ToAPIError()
	    // apiErr.Code == "VALIDATION_ERROR"
	    // apiErr.Message == "contentId is required"
	}

Errors that happen before struct validation, such as a JSON number where a
string is expected, are reported with NewFieldError so callers handle one
error type.
*/
package validation
