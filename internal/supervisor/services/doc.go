// Reclookup - Precomputed Recommendation Lookup Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reclookup

// Package services adapts application components to suture.Service.
//
// HTTPServerService translates http.Server's blocking ListenAndServe into
// suture's context-aware Serve, with graceful Shutdown on cancellation.
package services
