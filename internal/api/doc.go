// Reclookup - Precomputed Recommendation Lookup Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reclookup

/*
Package api provides the HTTP layer of the recommendation lookup service.

Routes:

  - POST /recommendations/: route used by the legacy frontend.
    Body {"contentId": "42"}; success is a bare JSON array of
    {"source", "recommendations"} objects; errors are {"detail": "..."}
    with 422 for malformed requests and 500 for lookup failures.
  - POST /api/v1/recommendations: the same lookup in the standard
    {status, data, metadata, error} envelope; 400 VALIDATION_ERROR and
    500 RECOMMENDATION_ERROR.
  - GET /api/v1/health, /api/v1/health/live, /api/v1/health/ready:
    probes; ready answers 503 while any table is unloaded.
  - GET /api/v1/sources: enabled sources in query order with table state.
  - GET /api/v1/stats: engine counters and recent endpoint latency.
  - GET /metrics: Prometheus exposition.

Middleware Stack:

Global: request ID with logging context, RealIP, Recoverer, CORS, gzip.
Per group: httprate limiting (hits counted in Prometheus), security
headers, request metrics and the latency monitor.

Request bodies are capped at 1 MiB and decoded with goccy/go-json.

Usage Example:

	handler := api.NewHandler(engine, store, version)
	router := api.NewRouter(handler, api.NewChiMiddlewareFromConfig(cfg.Security))
	srv := &http.Server{Addr: cfg.Addr(), Handler: router.SetupChi()}
*/
package api
