// Reclookup - Precomputed Recommendation Lookup Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reclookup

package api

import (
	"net/http"

	"github.com/tomtom215/reclookup/internal/models"
	"github.com/tomtom215/reclookup/internal/table"
)

// SourceInfo describes one enabled recommendation source.
type SourceInfo struct {
	Name  string        `json:"name"`
	Order int           `json:"order"`
	Table *table.Status `json:"table,omitempty"`
}

// Sources handles GET /api/v1/sources
// Lists the enabled sources in query order with their table load state.
func (h *Handler) Sources(w http.ResponseWriter, r *http.Request) {
	byName := make(map[string]table.Status)
	for _, st := range h.tables.Status() {
		byName[st.Source] = st
	}

	sources := h.engine.Sources()
	out := make([]SourceInfo, 0, len(sources))
	for i, src := range sources {
		info := SourceInfo{Name: src.Name, Order: i}
		if st, ok := byName[src.Name]; ok {
			info.Table = &st
		}
		out = append(out, info)
	}

	respondJSON(w, r, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   out,
	})
}

// Stats handles GET /api/v1/stats
// Returns engine counters and per-endpoint latency over recent requests.
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: map[string]interface{}{
			"engine":    h.engine.GetMetrics(),
			"endpoints": h.perfMon.GetStats(),
		},
	})
}
