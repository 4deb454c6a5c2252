// Reclookup - Precomputed Recommendation Lookup Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reclookup

package config

import (
	"net"
	"path/filepath"
	"strconv"
	"time"
)

// Config holds all application configuration loaded from defaults, an optional
// config file and environment variables.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: Built-in defaults matching the legacy deployment
//  2. Config File: Optional YAML config file (config.yaml)
//  3. Environment Variables: Override any setting via environment variables
//
// Config is immutable after Load() and safe for concurrent read access.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Security SecurityConfig `koanf:"security"`
	Logging  LoggingConfig  `koanf:"logging"`
	Tables   TablesConfig   `koanf:"tables"`
	Sources  SourcesConfig  `koanf:"sources"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port        int           `koanf:"port"`
	Host        string        `koanf:"host"`
	Timeout     time.Duration `koanf:"timeout"`
	Environment string        `koanf:"environment"` // "development", "staging", "production"
}

// SecurityConfig holds CORS and rate limiting settings
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig holds logging settings for zerolog.
//
// Environment Variables:
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: true/false - include caller file:line (default: false)
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// TablesConfig controls how recommendation tables are read at startup.
//
// Environment Variables:
//   - TABLE_LOADER: csv or duckdb (default: csv)
//   - TABLE_BASE_DIR: directory relative paths resolve against (default: .)
//   - TABLE_MISSING_VALUES: comma-separated cell values treated as missing
type TablesConfig struct {
	// Loader selects the reader backend: "csv" (encoding/csv) or "duckdb".
	Loader string `koanf:"loader"`

	// BaseDir is joined with relative source paths.
	BaseDir string `koanf:"base_dir"`

	// MissingValues are cell values treated as absent. Empty cells are
	// always missing.
	MissingValues []string `koanf:"missing_values"`
}

// SourcesConfig holds the two recommendation source slots in declared order.
type SourcesConfig struct {
	Collaborative SourceConfig `koanf:"collaborative"`
	Content       SourceConfig `koanf:"content"`
}

// SourceConfig describes one recommendation source and the table behind it.
type SourceConfig struct {
	Enabled bool   `koanf:"enabled"`
	Name    string `koanf:"name"`
	Path    string `koanf:"path"`

	// Format is "columns" (one value per column sharing ValuePrefix) or
	// "delimited" (a single comma-joined ValueColumn).
	Format      string `koanf:"format"`
	KeyColumn   string `koanf:"key_column"`
	ValuePrefix string `koanf:"value_prefix"`
	ValueColumn string `koanf:"value_column"`
}

// Source format names.
const (
	FormatColumns   = "columns"
	FormatDelimited = "delimited"
)

// Table loader names.
const (
	LoaderCSV    = "csv"
	LoaderDuckDB = "duckdb"
)

// DefaultMissingValues are the cell values the offline tooling wrote
// for absent recommendations.
var DefaultMissingValues = []string{
	"#N/A", "#N/A N/A", "#NA", "-1.#IND", "-1.#QNAN", "-NaN", "-nan",
	"1.#IND", "1.#QNAN", "<NA>", "N/A", "NA", "NULL", "NaN", "None",
	"n/a", "nan", "null",
}

// Ordered returns the source slots in declared order: collaborative, then content.
func (s SourcesConfig) Ordered() []SourceConfig {
	return []SourceConfig{s.Collaborative, s.Content}
}

// ResolvePath joins a relative source path with the tables base directory.
func (c *Config) ResolvePath(path string) string {
	if filepath.IsAbs(path) || c.Tables.BaseDir == "" {
		return path
	}
	return filepath.Join(c.Tables.BaseDir, path)
}

// IsProduction returns true if running in production environment.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

// Addr returns the host:port the HTTP server listens on.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Server.Host, strconv.Itoa(c.Server.Port))
}

// Load reads configuration from defaults, the config file and environment
// variables, then validates it.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
