// Watchlog - Personal Media Watching Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchlog

package config

import (
	"errors"
	"testing"
	"time"
)

func validConfig() *Config {
	cfg := defaultConfig()
	cfg.Gemini.APIKey = "key"
	return cfg
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults with key", func(*Config) {}, false},
		{"port zero", func(c *Config) { c.Server.Port = 0 }, true},
		{"port too large", func(c *Config) { c.Server.Port = 70000 }, true},
		{"zero server timeout", func(c *Config) { c.Server.Timeout = 0 }, true},
		{"blank data file", func(c *Config) { c.Storage.Path = "  " }, true},
		{"blank api key", func(c *Config) { c.Gemini.APIKey = " " }, true},
		{"empty model", func(c *Config) { c.Gemini.Model = "" }, true},
		{"zero ai timeout", func(c *Config) { c.Gemini.Timeout = 0 }, true},
		{"zero rps", func(c *Config) { c.Gemini.RateLimitRPS = 0 }, true},
		{"zero burst", func(c *Config) { c.Gemini.RateLimitBurst = 0 }, true},
		{"negative cache ttl", func(c *Config) { c.Gemini.CacheTTL = -time.Second }, true},
		{"cache disabled", func(c *Config) { c.Gemini.CacheTTL = 0 }, false},
		{"rate limit too low", func(c *Config) { c.Security.RateLimitReqs = 0 }, true},
		{"rate limit disabled skips bounds", func(c *Config) {
			c.Security.RateLimitDisabled = true
			c.Security.RateLimitReqs = 0
		}, false},
		{"window too long", func(c *Config) { c.Security.RateLimitWindow = 2 * time.Hour }, true},
		{"bad log level", func(c *Config) { c.Logging.Level = "verbose" }, true},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }, true},
		{"empty log format", func(c *Config) { c.Logging.Format = "" }, false},
		{"unknown environment", func(c *Config) { c.Server.Environment = "staging" }, true},
		{"wildcard cors in development", func(c *Config) { c.Security.CORSOrigins = []string{"*"} }, false},
		{"wildcard cors in production", func(c *Config) {
			c.Server.Environment = "production"
			c.Security.CORSOrigins = []string{"*"}
		}, true},
		{"explicit cors in production", func(c *Config) {
			c.Server.Environment = "production"
			c.Security.CORSOrigins = []string{"https://watch.example"}
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateMissingKeyIsSentinel(t *testing.T) {
	t.Parallel()

	cfg := defaultConfig()
	if err := cfg.Validate(); !errors.Is(err, ErrMissingAPIKey) {
		t.Errorf("Validate() = %v, want ErrMissingAPIKey", err)
	}
}

func TestServerAddr(t *testing.T) {
	t.Parallel()

	s := ServerConfig{Host: "127.0.0.1", Port: 8501}
	if got := s.Addr(); got != "127.0.0.1:8501" {
		t.Errorf("Addr() = %q, want 127.0.0.1:8501", got)
	}
}
