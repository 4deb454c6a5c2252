// Reclookup - Precomputed Recommendation Lookup Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reclookup

package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/tomtom215/reclookup/internal/models"
	"github.com/tomtom215/reclookup/internal/recommend"
	"github.com/tomtom215/reclookup/internal/validation"
)

// recommendTimeout bounds a single recommendation request.
const recommendTimeout = 10 * time.Second

// LegacyRecommendations handles POST /recommendations/
//
// This is the wire contract of the legacy frontend: the body is
// {"contentId": "..."}, a success is a bare JSON array of
// {"source", "recommendations"} objects, and failures are {"detail": "..."}
// with 422 for malformed requests and 500 for lookup failures.
func (h *Handler) LegacyRecommendations(w http.ResponseWriter, r *http.Request) {
	results, err := h.recommend(w, r)
	if err != nil {
		var verr *validation.RequestValidationError
		switch {
		case errors.As(err, &verr):
			respondDetail(w, r, http.StatusUnprocessableEntity, verr.Error(), err)
		case errors.Is(err, ErrBodyTooLarge):
			respondDetail(w, r, http.StatusRequestEntityTooLarge, "Request body too large", err)
		default:
			respondDetail(w, r, http.StatusInternalServerError, err.Error(), err)
		}
		return
	}

	writeJSON(w, http.StatusOK, results)
}

// legacyMethodNotAllowed answers any non-POST verb on the legacy paths.
func legacyMethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Allow", http.MethodPost)
	respondDetail(w, r, http.StatusMethodNotAllowed, "Method Not Allowed", nil)
}

// Recommendations handles POST /api/v1/recommendations
//
// Same operation as the legacy route, wrapped in the standard envelope.
// Validation failures return 400 VALIDATION_ERROR; a failing source returns
// 500 RECOMMENDATION_ERROR with the source named in the message and details.
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	results, err := h.recommend(w, r)
	if err != nil {
		var verr *validation.RequestValidationError
		var failure *recommend.LookupFailure
		switch {
		case errors.As(err, &verr):
			respondAPIError(w, r, http.StatusBadRequest, toAPIError(verr), err)
		case errors.Is(err, ErrBodyTooLarge):
			respondError(w, r, http.StatusRequestEntityTooLarge, "REQUEST_TOO_LARGE", "Request body exceeds 1 MiB", err)
		case errors.As(err, &failure):
			respondAPIError(w, r, http.StatusInternalServerError, &models.APIError{
				Code:    "RECOMMENDATION_ERROR",
				Message: err.Error(),
				Details: map[string]interface{}{
					"source":    failure.Source,
					"not_found": errors.Is(err, recommend.ErrNotFound),
				},
			}, err)
		default:
			respondError(w, r, http.StatusInternalServerError, "RECOMMENDATION_ERROR", err.Error(), err)
		}
		return
	}

	respondJSON(w, r, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   results,
		Metadata: models.Metadata{
			Timestamp:   time.Now(),
			QueryTimeMS: time.Since(start).Milliseconds(),
		},
	})
}

// recommend decodes the request body and runs it through the engine.
func (h *Handler) recommend(w http.ResponseWriter, r *http.Request) ([]recommend.Result, error) {
	var req recommend.Request
	if err := decodeJSONBody(w, r, &req); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(r.Context(), recommendTimeout)
	defer cancel()

	return h.engine.Recommend(ctx, req)
}
