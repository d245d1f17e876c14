// Kinoscope - Movie Discovery and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kinoscope

package config

import (
	"fmt"
	"time"

	"github.com/tomtom215/kinoscope/internal/recommend"
)

// Config holds all application configuration, loaded in layers:
//
//  1. Built-in defaults
//  2. Optional YAML config file (config.yaml)
//  3. Environment variables (highest priority)
//
// Config is immutable after Load() and safe for concurrent reads.
type Config struct {
	Server    ServerConfig     `koanf:"server"`
	Store     StoreConfig      `koanf:"store"`
	Security  SecurityConfig   `koanf:"security"`
	Logging   LoggingConfig    `koanf:"logging"`
	Recommend recommend.Config `koanf:"recommend"`
}

// ServerConfig holds HTTP server settings.
//
// Environment variables:
//   - KINOSCOPE_HTTP_PORT: listen port (default: 8320)
//   - KINOSCOPE_HTTP_HOST: bind address (default: 0.0.0.0)
//   - KINOSCOPE_HTTP_TIMEOUT: request timeout (default: 30s)
type ServerConfig struct {
	Port    int           `koanf:"port"`
	Host    string        `koanf:"host"`
	Timeout time.Duration `koanf:"timeout"`
}

// StoreConfig holds Badger persistence settings.
//
// Environment variables:
//   - KINOSCOPE_STORE_PATH: database directory (default: /data/kinoscope)
//   - KINOSCOPE_STORE_IN_MEMORY: run without disk persistence (default: false)
//   - KINOSCOPE_SEED_PATH: optional JSON catalog loaded into an empty store
//   - KINOSCOPE_STORE_GC_INTERVAL: value-log GC cadence (default: 10m)
type StoreConfig struct {
	Path       string        `koanf:"path"`
	InMemory   bool          `koanf:"in_memory"`
	SeedPath   string        `koanf:"seed_path"`
	GCInterval time.Duration `koanf:"gc_interval"`
}

// SecurityConfig holds rate limiting and CORS settings.
//
// Environment variables:
//   - KINOSCOPE_RATE_LIMIT_REQUESTS: requests per window per IP (default: 100)
//   - KINOSCOPE_RATE_LIMIT_WINDOW: window length (default: 1m)
//   - KINOSCOPE_DISABLE_RATE_LIMIT: turn rate limiting off (default: false)
//   - KINOSCOPE_CORS_ORIGINS: comma-separated allowed origins (default: *)
type SecurityConfig struct {
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// LoggingConfig holds log output settings.
//
// Environment variables:
//   - KINOSCOPE_LOG_LEVEL: debug, info, warn, error (default: info)
//   - KINOSCOPE_LOG_FORMAT: json, console (default: json)
//   - KINOSCOPE_LOG_CALLER: include caller info (default: false)
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in [1, 65535], got %d", c.Server.Port)
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("server.timeout must be positive, got %v", c.Server.Timeout)
	}

	if !c.Store.InMemory && c.Store.Path == "" {
		return fmt.Errorf("store.path is required when store.in_memory is false")
	}
	if c.Store.GCInterval <= 0 {
		return fmt.Errorf("store.gc_interval must be positive, got %v", c.Store.GCInterval)
	}

	if !c.Security.RateLimitDisabled {
		if c.Security.RateLimitReqs < 1 {
			return fmt.Errorf("security.rate_limit_reqs must be positive, got %d", c.Security.RateLimitReqs)
		}
		if c.Security.RateLimitWindow <= 0 {
			return fmt.Errorf("security.rate_limit_window must be positive, got %v", c.Security.RateLimitWindow)
		}
	}

	if err := c.Recommend.Validate(); err != nil {
		return fmt.Errorf("recommend: %w", err)
	}

	return nil
}
