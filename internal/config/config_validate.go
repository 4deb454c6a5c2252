// Reclookup - Precomputed Recommendation Lookup Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reclookup

package config

import (
	"fmt"
	"time"
)

// Validate checks that the configuration is present and valid
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}

	if err := c.validateSecurity(); err != nil {
		return err
	}

	if err := c.validateLogging(); err != nil {
		return err
	}

	if err := c.validateTables(); err != nil {
		return err
	}

	return c.validateSources()
}

// validateServer validates the HTTP server settings
func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive")
	}
	return nil
}

// validateSecurity validates CORS and rate limiting configuration
func (c *Config) validateSecurity() error {
	if err := c.validateCORS(); err != nil {
		return err
	}
	return c.validateRateLimits()
}

// validateCORS rejects wildcard origins in production.
func (c *Config) validateCORS() error {
	if c.hasWildcardCORS() && c.IsProduction() {
		return fmt.Errorf("CORS_ORIGINS=* (wildcard) is not allowed in production. " +
			"Set specific origins: CORS_ORIGINS=https://yourdomain.com " +
			"or use ENVIRONMENT=development for testing purposes")
	}
	return nil
}

// hasWildcardCORS checks if CORS is configured with wildcard origins
func (c *Config) hasWildcardCORS() bool {
	for _, origin := range c.Security.CORSOrigins {
		if origin == "*" {
			return true
		}
	}
	return false
}

// ShouldWarnAboutCORS returns true if CORS configuration has security concerns
// that should be logged at startup
func (c *Config) ShouldWarnAboutCORS() bool {
	return c.hasWildcardCORS()
}

// Rate limit constants
const (
	minRateLimitRequests = 1
	maxRateLimitRequests = 100000
	minRateLimitWindow   = time.Second
	maxRateLimitWindow   = time.Hour
)

// validateRateLimits validates rate limiting configuration bounds.
func (c *Config) validateRateLimits() error {
	if c.Security.RateLimitDisabled {
		return nil
	}

	if c.Security.RateLimitReqs < minRateLimitRequests || c.Security.RateLimitReqs > maxRateLimitRequests {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be between %d and %d", minRateLimitRequests, maxRateLimitRequests)
	}
	if c.Security.RateLimitWindow < minRateLimitWindow || c.Security.RateLimitWindow > maxRateLimitWindow {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be between %v and %v", minRateLimitWindow, maxRateLimitWindow)
	}
	return nil
}

var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

// validateLogging validates the logging configuration
func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}

// validateTables validates the table loader settings
func (c *Config) validateTables() error {
	switch c.Tables.Loader {
	case LoaderCSV, LoaderDuckDB:
		return nil
	default:
		return fmt.Errorf("TABLE_LOADER must be one of: %s, %s", LoaderCSV, LoaderDuckDB)
	}
}

// validateSources validates every enabled source slot.
func (c *Config) validateSources() error {
	if err := validateSource("COLLABORATIVE", &c.Sources.Collaborative); err != nil {
		return err
	}
	if err := validateSource("CONTENT", &c.Sources.Content); err != nil {
		return err
	}
	if c.Sources.Collaborative.Enabled && c.Sources.Content.Enabled &&
		c.Sources.Collaborative.Name == c.Sources.Content.Name {
		return fmt.Errorf("COLLABORATIVE_NAME and CONTENT_NAME must differ, both are %q", c.Sources.Content.Name)
	}
	return nil
}

// validateSource checks one source slot; disabled slots are not validated.
func validateSource(envPrefix string, s *SourceConfig) error {
	if !s.Enabled {
		return nil
	}
	if s.Name == "" {
		return fmt.Errorf("%s_NAME is required when %s_ENABLED=true", envPrefix, envPrefix)
	}
	if s.Path == "" {
		return fmt.Errorf("%s_PATH is required when %s_ENABLED=true", envPrefix, envPrefix)
	}
	if s.KeyColumn == "" {
		return fmt.Errorf("%s_KEY_COLUMN is required when %s_ENABLED=true", envPrefix, envPrefix)
	}

	switch s.Format {
	case FormatColumns:
		if s.ValuePrefix == "" {
			return fmt.Errorf("%s_VALUE_PREFIX is required for format %q", envPrefix, FormatColumns)
		}
	case FormatDelimited:
		if s.ValueColumn == "" {
			return fmt.Errorf("%s_VALUE_COLUMN is required for format %q", envPrefix, FormatDelimited)
		}
	default:
		return fmt.Errorf("%s_FORMAT must be one of: %s, %s", envPrefix, FormatColumns, FormatDelimited)
	}
	return nil
}
