// Reclookup - Precomputed Recommendation Lookup Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reclookup

package api

import (
	"context"
	"time"

	"github.com/tomtom215/reclookup/internal/middleware"
	"github.com/tomtom215/reclookup/internal/recommend"
	"github.com/tomtom215/reclookup/internal/table"
)

// Recommender answers recommendation requests. *recommend.Engine
// implements it.
type Recommender interface {
	Recommend(ctx context.Context, req recommend.Request) ([]recommend.Result, error)
	Sources() []recommend.Source
	GetMetrics() recommend.Metrics
}

// TableStatus reports table load state. *table.Store implements it.
type TableStatus interface {
	Ready() bool
	Status() []table.Status
}

// Handler contains dependencies for API handlers
//
// Handler methods are split across multiple files:
//   - handlers.go: Handler struct and constructor (this file)
//   - handlers_helpers.go: response and request body helpers
//   - handlers_health.go: health, liveness and readiness probes
//   - handlers_recommend.go: recommendation endpoints
//   - handlers_sources.go: source listing and runtime stats
type Handler struct {
	engine    Recommender
	tables    TableStatus
	version   string
	startTime time.Time
	perfMon   *middleware.PerformanceMonitor
}

// NewHandler creates a new API handler.
//
// The handler initializes with a performance monitor tracking the last 1000
// requests and the start time for uptime calculations.
//
// Example:
//
//	handler := api.NewHandler(engine, store, version)
//	router := api.NewRouter(handler, api.NewChiMiddlewareFromConfig(cfg.Security))
//	http.ListenAndServe(cfg.Addr(), router.SetupChi())
func NewHandler(engine Recommender, tables TableStatus, version string) *Handler {
	return &Handler{
		engine:    engine,
		tables:    tables,
		version:   version,
		startTime: time.Now(),
		perfMon:   middleware.NewPerformanceMonitor(1000),
	}
}
