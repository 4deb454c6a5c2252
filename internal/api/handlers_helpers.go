// Reclookup - Precomputed Recommendation Lookup Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reclookup

package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/reclookup/internal/logging"
	"github.com/tomtom215/reclookup/internal/models"
	"github.com/tomtom215/reclookup/internal/validation"
)

// maxBodyBytes caps request bodies at 1 MiB.
const maxBodyBytes = 1 << 20

// sanitizeLogValue removes control characters from strings to prevent log injection attacks.
// This includes newlines, carriage returns, tabs, and other control characters that could
// allow attackers to forge log entries or corrupt log files.
func sanitizeLogValue(s string) string {
	var result strings.Builder
	result.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7F {
			result.WriteString(fmt.Sprintf("\\x%02x", r))
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// writeJSON marshals v and writes it with an ETag. Responses are per-request
// lookups and are never cached by intermediaries.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Vary", "Accept-Encoding")
	w.Header().Set("ETag", generateETag(data))

	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Error().Err(err).Msg("Failed to write JSON response")
	}
}

// respondJSON sends an enveloped response, stamping the request ID into
// the metadata.
func respondJSON(w http.ResponseWriter, r *http.Request, status int, response *models.APIResponse) {
	if response.Metadata.RequestID == "" {
		response.Metadata.RequestID = logging.RequestIDFromContext(r.Context())
	}
	if response.Metadata.Timestamp.IsZero() {
		response.Metadata.Timestamp = time.Now()
	}
	writeJSON(w, status, response)
}

// generateETag creates a simple ETag from data using FNV-1a hash
func generateETag(data []byte) string {
	hash := uint32(2166136261)
	for _, b := range data {
		hash ^= uint32(b)
		hash *= 16777619
	}
	return `"` + strconv.FormatUint(uint64(hash), 16) + `"`
}

// respondError sends an error response
func respondError(w http.ResponseWriter, r *http.Request, status int, code, message string, err error) {
	respondAPIError(w, r, status, &models.APIError{Code: code, Message: message}, err)
}

// respondAPIError sends a fully populated error envelope.
func respondAPIError(w http.ResponseWriter, r *http.Request, status int, apiErr *models.APIError, err error) {
	logAPIError(r, status, apiErr.Code, err)
	respondJSON(w, r, status, &models.APIResponse{
		Status: "error",
		Error:  apiErr,
	})
}

// respondDetail sends the {"detail": ...} error body of the legacy route.
func respondDetail(w http.ResponseWriter, r *http.Request, status int, detail string, err error) {
	logAPIError(r, status, "", err)
	writeJSON(w, status, &models.DetailError{Detail: detail})
}

func logAPIError(r *http.Request, status int, code string, err error) {
	if err == nil {
		return
	}
	event := logging.Ctx(r.Context()).Warn()
	if status >= http.StatusInternalServerError {
		event = logging.Ctx(r.Context()).Error()
	}
	// Sanitize error output to prevent log injection attacks
	event.
		Int("status", status).
		Str("code", sanitizeLogValue(code)).
		Str("path", sanitizeLogValue(r.URL.Path)).
		Str("error", sanitizeLogValue(err.Error())).
		Msg("API Error")
}

// toAPIError converts a validation failure to the envelope error type.
func toAPIError(verr *validation.RequestValidationError) *models.APIError {
	apiErr := verr.ToAPIError()
	return &models.APIError{
		Code:    apiErr.Code,
		Message: apiErr.Message,
		Details: apiErr.Details,
	}
}

// decodeJSONBody reads at most maxBodyBytes and decodes them into v.
// Oversized bodies return ErrBodyTooLarge; undecodable bodies return a
// *validation.RequestValidationError.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, v interface{}) error {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return fmt.Errorf("%w: limit is %d bytes", ErrBodyTooLarge, tooLarge.Limit)
		}
		return fmt.Errorf("read request body: %w", err)
	}

	if err := json.Unmarshal(body, v); err != nil {
		return bodyValidationError(err)
	}
	return nil
}

func bodyValidationError(err error) *validation.RequestValidationError {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		field := typeErr.Field
		if field == "" {
			field = "body"
		}
		return validation.NewFieldError(field, "type",
			fmt.Sprintf("%s has the wrong type (got %s)", field, typeErr.Value))
	}
	return validation.NewFieldError("body", "json", "request body must be a JSON object")
}
