// Reclookup - Precomputed Recommendation Lookup Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reclookup

/*
Package main is the entry point for the reclookup server.

Reclookup serves precomputed recommendations over HTTP. Offline tooling
writes one CSV table per recommendation source; the server loads them once
at startup and answers POST /recommendations/ with the list of
recommendations each enabled source holds for a content ID.

# Startup Sequence

 1. Configuration: defaults, optional config.yaml and environment (Koanf v2)
 2. Logging: zerolog with JSON or console output
 3. Tables: every enabled source is loaded into the table store with the
    configured loader (csv or duckdb). A table that fails to load is logged
    and left unloaded; requests touching it fail and /api/v1/health/ready
    answers 503.
 4. Engine and HTTP handlers
 5. Supervisor tree: suture v4 running the HTTP server

# Configuration

Common environment variables:

	HTTP_PORT=8000                  listen port
	CORS_ORIGINS=http://localhost:3000
	TABLE_LOADER=csv                csv or duckdb
	TABLE_BASE_DIR=/data            relative table paths resolve here
	COLLABORATIVE_PATH=article_recommendations2.csv
	CONTENT_ENABLED=true            enable the content filtering source
	CONTENT_FORMAT=delimited        columns or delimited
	LOG_LEVEL=debug                 logs the first keys of a table on a miss

# Signal Handling

SIGINT and SIGTERM cancel the supervisor context. The HTTP server stops
accepting connections and waits up to 10s for in-flight requests.

# Example

	TABLE_BASE_DIR=./data ./reclookup

	curl -X POST localhost:8000/recommendations/ \
	  -H 'Content-Type: application/json' \
	  -d '{"contentId": "42"}'
*/
package main
