// Reclookup - Precomputed Recommendation Lookup Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reclookup

/*
Package config provides centralized configuration management for Reclookup.

Configuration is layered with Koanf v2: struct defaults, then an optional YAML
file, then environment variables. Later layers win.

# Config File

The file is located via CONFIG_PATH, falling back to config.yaml, config.yml,
/etc/reclookup/config.yaml and /etc/reclookup/config.yml:

	server:
	  port: 8000
	tables:
	  loader: csv
	  base_dir: /srv/recommendations
	sources:
	  collaborative:
	    path: article_recommendations2.csv
	  content:
	    enabled: true
	    path: content_filtering_results.csv

# Environment Variables

HTTP Server:
  - HTTP_HOST: Bind address (default: 0.0.0.0)
  - HTTP_PORT: Listen port (default: 8000)
  - HTTP_TIMEOUT: Read/write timeout (default: 30s)
  - ENVIRONMENT: development, staging, production (default: development)

Security:
  - CORS_ORIGINS: Comma-separated allowed origins (default: http://localhost:3000)
  - RATE_LIMIT_REQUESTS: Requests per window per client IP (default: 100)
  - RATE_LIMIT_WINDOW: Rate limit window (default: 1m)
  - DISABLE_RATE_LIMIT: Disable rate limiting (default: false)

Logging:
  - LOG_LEVEL, LOG_FORMAT, LOG_CALLER

Tables:
  - TABLE_LOADER: csv or duckdb (default: csv)
  - TABLE_BASE_DIR: Base directory for relative table paths (default: .)
  - TABLE_MISSING_VALUES: Comma-separated missing-cell markers

Sources (PREFIX is COLLABORATIVE or CONTENT):
  - PREFIX_ENABLED, PREFIX_NAME, PREFIX_PATH
  - PREFIX_FORMAT: columns or delimited
  - PREFIX_KEY_COLUMN, PREFIX_VALUE_PREFIX, PREFIX_VALUE_COLUMN

# Validation

Load validates the merged configuration and returns the first problem found,
naming the environment variable to fix. Disabled sources are not validated.
*/
package config
