// Watchlog - Personal Media Watching Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchlog

// Package config loads Watchlog configuration from built-in defaults, an
// optional YAML file and environment variables, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrMissingAPIKey is returned by Validate when no Gemini credential is set.
var ErrMissingAPIKey = errors.New("GEMINI_API_KEY is required")

// Config holds all application configuration.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: Built-in defaults for all optional settings
//  2. Config File: Optional YAML config file (config.yaml)
//  3. Environment Variables: Override any setting
//
// Config is immutable after Load() and safe for concurrent reads.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Storage  StorageConfig  `koanf:"storage"`
	Gemini   GeminiConfig   `koanf:"gemini"`
	Security SecurityConfig `koanf:"security"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port        int           `koanf:"port"`
	Host        string        `koanf:"host"`
	Timeout     time.Duration `koanf:"timeout"`
	Environment string        `koanf:"environment"` // development or production
}

// Addr returns host:port for net/http.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// StorageConfig holds the backing JSON file location.
//
// Environment Variables:
//   - DATA_FILE: path to the records file (default: works_data.json)
type StorageConfig struct {
	Path string `koanf:"path"`
}

// GeminiConfig holds generative-language API settings.
//
// Environment Variables:
//   - GEMINI_API_KEY: API credential (required)
//   - GEMINI_MODEL: model name (default: gemini-1.5-flash)
//   - GEMINI_TIMEOUT: per-call deadline (default: 60s)
//   - GEMINI_RATE_LIMIT_RPS: client-side requests per second (default: 1)
//   - GEMINI_RATE_LIMIT_BURST: burst allowance (default: 3)
//   - GEMINI_CACHE_TTL: metadata cache lifetime, 0 disables (default: 1h)
type GeminiConfig struct {
	APIKey         string        `koanf:"api_key"`
	Model          string        `koanf:"model"`
	Timeout        time.Duration `koanf:"timeout"`
	RateLimitRPS   float64       `koanf:"rate_limit_rps"`
	RateLimitBurst int           `koanf:"rate_limit_burst"`
	CacheTTL       time.Duration `koanf:"cache_ttl"`
}

// SecurityConfig holds HTTP-boundary protections.
type SecurityConfig struct {
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// LoggingConfig holds logging configuration.
//
// Environment Variables:
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: true/false (default: false)
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// IsProduction reports whether the server runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

// Load reads configuration from defaults, config file and environment.
// See LoadWithKoanf for the layering.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
