// Reclookup - Precomputed Recommendation Lookup Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reclookup

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/reclookup/internal/models"
)

// Health handles health check requests
//
// Reports "healthy" when every configured table loaded and "degraded"
// otherwise. The endpoint itself always answers 200; use /health/ready for
// a probe that fails while tables are missing.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	statuses := h.tables.Status()
	loaded := 0
	for _, st := range statuses {
		if st.Loaded {
			loaded++
		}
	}

	status := "healthy"
	if !h.tables.Ready() {
		status = "degraded"
	}

	respondJSON(w, r, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: models.HealthStatus{
			Status:       status,
			Version:      h.version,
			TablesLoaded: loaded,
			TablesTotal:  len(statuses),
			Uptime:       time.Since(h.startTime).Seconds(),
		},
	})
}

// HealthLive handles liveness probe requests (Kubernetes-style)
// Returns 200 OK if the process is alive, regardless of table state.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: map[string]interface{}{
			"alive":  true,
			"uptime": time.Since(h.startTime).Seconds(),
		},
	})
}

// HealthReady handles readiness probe requests (Kubernetes-style)
// Returns 200 OK only when every table loaded, 503 with the per-table load
// errors otherwise.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	ready := h.tables.Ready()
	data := map[string]interface{}{
		"ready_to_serve": ready,
		"tables":         h.tables.Status(),
		"uptime":         time.Since(h.startTime).Seconds(),
	}

	if !ready {
		respondJSON(w, r, http.StatusServiceUnavailable, &models.APIResponse{
			Status: "error",
			Data:   data,
			Error: &models.APIError{
				Code:    "NOT_READY",
				Message: "One or more recommendation tables failed to load",
			},
		})
		return
	}

	respondJSON(w, r, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   data,
	})
}
