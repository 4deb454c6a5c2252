// Reclookup - Precomputed Recommendation Lookup Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reclookup

// Package logging provides centralized zerolog-based structured logging for Reclookup.
//
// # Quick Start
//
//	logging.Init(logging.Config{
//	    Level:  "info",
//	    Format: "json",
//	})
//
//	logging.Info().Str("source", "Collaborative Filtering").Int("rows", n).Msg("Table loaded")
//	logging.Error().Err(err).Msg("Table load failed")
//
// # Configuration
//
// Environment Variables (read by internal/config):
//
//	LOG_LEVEL   - Minimum log level: trace, debug, info, warn, error (default: info)
//	LOG_FORMAT  - Output format: json, console (default: json)
//	LOG_CALLER  - Include caller file:line: true, false (default: false)
//
// # Context-Aware Logging
//
// The API request ID middleware stores request_id and correlation_id in the
// request context. Handlers log through Ctx so every line carries both:
//
//	logging.Ctx(r.Context()).Debug().Str("content_id", key).Msg("Received lookup")
//
// # slog Adapter
//
// Suture reports supervisor events through sutureslog, which needs a
// *slog.Logger. NewSlogLogger returns one that writes through zerolog.
//
// # Output Formats
//
// JSON Format (Production):
//
//	{"level":"info","time":"2026-01-03T10:30:00Z","message":"Server starting","addr":"0.0.0.0:8000"}
//
// Console Format (Development):
//
//	10:30:00 INF Server starting addr=0.0.0.0:8000
//
// All exported functions are safe for concurrent use.
package logging
