// Reclookup - Precomputed Recommendation Lookup Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reclookup

// Package models defines the HTTP response structures shared by the API
// handlers: the standard APIResponse envelope, its metadata and error
// details, the legacy {"detail": ...} error body and the health payload.
package models
