// Reclookup - Precomputed Recommendation Lookup Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reclookup

package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

// unsetConfigEnv removes every mapped environment variable for the duration of the test.
func unsetConfigEnv(t *testing.T) {
	t.Helper()
	keys := []string{ConfigPathEnvVar}
	for key := range envMappings {
		keys = append(keys, strings.ToUpper(key))
	}
	for _, key := range keys {
		t.Setenv(key, "")
		if err := os.Unsetenv(key); err != nil {
			t.Fatalf("unset %s: %v", key, err)
		}
	}
}

// TestDefaultConfig verifies that defaultConfig() matches the legacy deployment
func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	if cfg.Server.Port != 8000 {
		t.Errorf("Server.Port = %d, want 8000", cfg.Server.Port)
	}
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want 0.0.0.0", cfg.Server.Host)
	}
	if cfg.Server.Timeout != 30*time.Second {
		t.Errorf("Server.Timeout = %v, want 30s", cfg.Server.Timeout)
	}

	if !reflect.DeepEqual(cfg.Security.CORSOrigins, []string{"http://localhost:3000"}) {
		t.Errorf("Security.CORSOrigins = %v, want [http://localhost:3000]", cfg.Security.CORSOrigins)
	}

	if cfg.Tables.Loader != LoaderCSV {
		t.Errorf("Tables.Loader = %q, want %q", cfg.Tables.Loader, LoaderCSV)
	}
	if len(cfg.Tables.MissingValues) != len(DefaultMissingValues) {
		t.Errorf("Tables.MissingValues has %d entries, want %d", len(cfg.Tables.MissingValues), len(DefaultMissingValues))
	}

	cf := cfg.Sources.Collaborative
	if !cf.Enabled {
		t.Error("Collaborative source should be enabled by default")
	}
	if cf.Name != "Collaborative Filtering" {
		t.Errorf("Collaborative.Name = %q, want Collaborative Filtering", cf.Name)
	}
	if cf.Path != "article_recommendations2.csv" {
		t.Errorf("Collaborative.Path = %q, want article_recommendations2.csv", cf.Path)
	}
	if cf.KeyColumn != "contentId" {
		t.Errorf("Collaborative.KeyColumn = %q, want contentId", cf.KeyColumn)
	}

	content := cfg.Sources.Content
	if content.Enabled {
		t.Error("Content source should be disabled by default")
	}
	if content.Path != "content_filtering_results.csv" {
		t.Errorf("Content.Path = %q, want content_filtering_results.csv", content.Path)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

func TestEnvTransformFunc(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected string
	}{
		{"HTTP_PORT", "server.port"},
		{"ENVIRONMENT", "server.environment"},
		{"CORS_ORIGINS", "security.cors_origins"},
		{"DISABLE_RATE_LIMIT", "security.rate_limit_disabled"},
		{"LOG_LEVEL", "logging.level"},
		{"TABLE_LOADER", "tables.loader"},
		{"TABLE_MISSING_VALUES", "tables.missing_values"},
		{"COLLABORATIVE_PATH", "sources.collaborative.path"},
		{"CONTENT_ENABLED", "sources.content.enabled"},
		{"content_format", "sources.content.format"},
		{"PATH", ""},
		{"HOME", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			if result := envTransformFunc(tt.input); result != tt.expected {
				t.Errorf("envTransformFunc(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

// TestFindConfigFile verifies config file discovery
func TestFindConfigFile(t *testing.T) {
	unsetConfigEnv(t)
	tmpDir := t.TempDir()
	t.Chdir(tmpDir)

	t.Run("no config file exists", func(t *testing.T) {
		if result := findConfigFile(); result != "" {
			t.Errorf("findConfigFile() = %q, want empty string", result)
		}
	})

	t.Run("config.yaml exists", func(t *testing.T) {
		configPath := filepath.Join(tmpDir, "config.yaml")
		if err := os.WriteFile(configPath, []byte("server:\n  port: 8000\n"), 0o600); err != nil {
			t.Fatalf("Failed to create config file: %v", err)
		}
		defer os.Remove(configPath)

		if result := findConfigFile(); result != "config.yaml" {
			t.Errorf("findConfigFile() = %q, want config.yaml", result)
		}
	})

	t.Run("CONFIG_PATH env var takes precedence", func(t *testing.T) {
		customPath := filepath.Join(tmpDir, "custom_config.yaml")
		if err := os.WriteFile(customPath, []byte("server:\n  port: 8000\n"), 0o600); err != nil {
			t.Fatalf("Failed to create custom config file: %v", err)
		}
		t.Setenv(ConfigPathEnvVar, customPath)

		if result := findConfigFile(); result != customPath {
			t.Errorf("findConfigFile() = %q, want %q", result, customPath)
		}
	})

	t.Run("CONFIG_PATH env var with non-existent file", func(t *testing.T) {
		t.Setenv(ConfigPathEnvVar, "/non/existent/config.yaml")

		if result := findConfigFile(); result != "" {
			t.Errorf("findConfigFile() = %q, want empty string", result)
		}
	})
}

func TestLoadWithKoanfEnvVars(t *testing.T) {
	unsetConfigEnv(t)
	t.Chdir(t.TempDir())

	t.Setenv("HTTP_PORT", "9000")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("RATE_LIMIT_WINDOW", "2m")
	t.Setenv("CORS_ORIGINS", "http://a.local, http://b.local")
	t.Setenv("CONTENT_ENABLED", "true")
	t.Setenv("CONTENT_FORMAT", "delimited")
	t.Setenv("CONTENT_KEY_COLUMN", "item_id")
	t.Setenv("TABLE_MISSING_VALUES", "NA,null")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Server.Port != 9000 {
		t.Errorf("Server.Port = %d, want 9000", cfg.Server.Port)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
	if cfg.Security.RateLimitWindow != 2*time.Minute {
		t.Errorf("Security.RateLimitWindow = %v, want 2m", cfg.Security.RateLimitWindow)
	}
	if want := []string{"http://a.local", "http://b.local"}; !reflect.DeepEqual(cfg.Security.CORSOrigins, want) {
		t.Errorf("Security.CORSOrigins = %v, want %v", cfg.Security.CORSOrigins, want)
	}
	if want := []string{"NA", "null"}; !reflect.DeepEqual(cfg.Tables.MissingValues, want) {
		t.Errorf("Tables.MissingValues = %v, want %v", cfg.Tables.MissingValues, want)
	}
	if !cfg.Sources.Content.Enabled {
		t.Error("Content source should be enabled by env")
	}
	if cfg.Sources.Content.Format != FormatDelimited {
		t.Errorf("Content.Format = %q, want delimited", cfg.Sources.Content.Format)
	}
	if cfg.Sources.Content.KeyColumn != "item_id" {
		t.Errorf("Content.KeyColumn = %q, want item_id", cfg.Sources.Content.KeyColumn)
	}

	// Defaults remain for unset values
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want 0.0.0.0 (default)", cfg.Server.Host)
	}
	if cfg.Sources.Collaborative.Path != "article_recommendations2.csv" {
		t.Errorf("Collaborative.Path = %q, want default", cfg.Sources.Collaborative.Path)
	}
}

func TestLoadWithKoanfConfigFile(t *testing.T) {
	unsetConfigEnv(t)
	tmpDir := t.TempDir()
	t.Chdir(tmpDir)

	configContent := `
server:
  port: 8080
  environment: staging
logging:
  level: warn
  format: console
tables:
  loader: duckdb
  base_dir: /srv/tables
  missing_values:
    - NA
sources:
  collaborative:
    path: cf.csv
  content:
    enabled: true
    name: Content Filtering
    path: /abs/content.csv
    format: delimited
    key_column: item_id
    value_column: recommendations
`
	configPath := filepath.Join(tmpDir, "reclookup.yaml")
	if err := os.WriteFile(configPath, []byte(configContent), 0o600); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	t.Setenv(ConfigPathEnvVar, configPath)

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Logging.Format != "console" {
		t.Errorf("Logging.Format = %q, want console", cfg.Logging.Format)
	}
	if cfg.Tables.Loader != LoaderDuckDB {
		t.Errorf("Tables.Loader = %q, want duckdb", cfg.Tables.Loader)
	}
	if !reflect.DeepEqual(cfg.Tables.MissingValues, []string{"NA"}) {
		t.Errorf("Tables.MissingValues = %v, want [NA]", cfg.Tables.MissingValues)
	}
	if got := cfg.ResolvePath(cfg.Sources.Collaborative.Path); got != filepath.Join("/srv/tables", "cf.csv") {
		t.Errorf("ResolvePath(cf.csv) = %q, want /srv/tables/cf.csv", got)
	}
	if got := cfg.ResolvePath(cfg.Sources.Content.Path); got != "/abs/content.csv" {
		t.Errorf("ResolvePath(/abs/content.csv) = %q, want unchanged", got)
	}
	// Keys absent from the file keep their defaults
	if cfg.Sources.Collaborative.KeyColumn != "contentId" {
		t.Errorf("Collaborative.KeyColumn = %q, want contentId", cfg.Sources.Collaborative.KeyColumn)
	}
}

func TestLoadWithKoanfEnvOverridesFile(t *testing.T) {
	unsetConfigEnv(t)
	tmpDir := t.TempDir()
	t.Chdir(tmpDir)

	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("server:\n  port: 8080\nlogging:\n  level: warn\n"), 0o600); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	t.Setenv("HTTP_PORT", "9999")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Server.Port != 9999 {
		t.Errorf("Server.Port = %d, want 9999 (env override)", cfg.Server.Port)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("Logging.Level = %q, want warn (from file)", cfg.Logging.Level)
	}
}

func TestLoadWithKoanfValidation(t *testing.T) {
	tests := []struct {
		name    string
		envVars map[string]string
		errMsg  string
	}{
		{
			name:    "invalid port",
			envVars: map[string]string{"HTTP_PORT": "70000"},
			errMsg:  "HTTP_PORT must be between 1 and 65535",
		},
		{
			name:    "unknown loader",
			envVars: map[string]string{"TABLE_LOADER": "parquet"},
			errMsg:  "TABLE_LOADER must be one of",
		},
		{
			name:    "enabled source with unknown format",
			envVars: map[string]string{"CONTENT_ENABLED": "true", "CONTENT_FORMAT": "xml"},
			errMsg:  "CONTENT_FORMAT must be one of",
		},
		{
			name:    "wildcard CORS in production",
			envVars: map[string]string{"CORS_ORIGINS": "*", "ENVIRONMENT": "production"},
			errMsg:  "CORS_ORIGINS=* (wildcard) is not allowed in production",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			unsetConfigEnv(t)
			t.Chdir(t.TempDir())
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			_, err := LoadWithKoanf()
			if err == nil {
				t.Fatalf("LoadWithKoanf() expected error containing %q", tt.errMsg)
			}
			if !strings.Contains(err.Error(), tt.errMsg) {
				t.Errorf("LoadWithKoanf() error = %v, want containing %q", err, tt.errMsg)
			}
		})
	}
}
