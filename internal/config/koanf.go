// Kinoscope - Movie Discovery and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kinoscope

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"github.com/tomtom215/kinoscope/internal/recommend"
)

// DefaultConfigPaths lists where config files are searched, in order.
// The first file found wins.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/kinoscope/config.yaml",
	"/etc/kinoscope/config.yml",
}

// ConfigPathEnvVar overrides the config file search path.
const ConfigPathEnvVar = "KINOSCOPE_CONFIG_PATH"

// defaultConfig returns a Config with all defaults applied. Defaults load
// first and are overridden by the config file and environment.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:    8320,
			Host:    "0.0.0.0",
			Timeout: 30 * time.Second,
		},
		Store: StoreConfig{
			Path:       "/data/kinoscope",
			InMemory:   false,
			SeedPath:   "",
			GCInterval: 10 * time.Minute,
		},
		Security: SecurityConfig{
			RateLimitReqs:     100,
			RateLimitWindow:   time.Minute,
			RateLimitDisabled: false,
			CORSOrigins:       []string{"*"},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
		Recommend: *recommend.DefaultConfig(),
	}
}

// Load loads configuration using Koanf v2 with layered sources:
// defaults, then an optional YAML file, then environment variables.
func Load() (*Config, error) {
	k := koanf.New(".")

	defaults := defaultConfig()
	if err := k.Load(structs.Provider(defaults, "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	configPath := findConfigFile()
	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	envProvider := env.Provider("", ".", envTransformFunc)
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile returns the first existing config file path, or "".
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// sliceConfigPaths lists config paths parsed as comma-separated slices
// when they arrive as strings from the environment.
var sliceConfigPaths = []string{
	"security.cors_origins",
}

// processSliceFields converts comma-separated string values to slices.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		val := k.Get(path)
		if val == nil {
			continue
		}

		// Already a slice from YAML.
		if _, ok := val.([]interface{}); ok {
			continue
		}
		if _, ok := val.([]string); ok {
			continue
		}

		strVal, ok := val.(string)
		if !ok || strVal == "" {
			continue
		}

		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			p = strings.TrimSpace(p)
			if p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) > 0 {
			if err := k.Set(path, trimmed); err != nil {
				return fmt.Errorf("failed to set %s: %w", path, err)
			}
		}
	}
	return nil
}

// envMappings maps environment variable names to config paths. Unmapped
// variables are skipped so random environment noise never reaches the
// config.
var envMappings = map[string]string{
	// Server
	"kinoscope_http_port":    "server.port",
	"kinoscope_http_host":    "server.host",
	"kinoscope_http_timeout": "server.timeout",

	// Store
	"kinoscope_store_path":        "store.path",
	"kinoscope_store_in_memory":   "store.in_memory",
	"kinoscope_seed_path":         "store.seed_path",
	"kinoscope_store_gc_interval": "store.gc_interval",

	// Security
	"kinoscope_rate_limit_requests": "security.rate_limit_reqs",
	"kinoscope_rate_limit_window":   "security.rate_limit_window",
	"kinoscope_disable_rate_limit":  "security.rate_limit_disabled",
	"kinoscope_cors_origins":        "security.cors_origins",

	// Logging
	"kinoscope_log_level":  "logging.level",
	"kinoscope_log_format": "logging.format",
	"kinoscope_log_caller": "logging.caller",

	// Recommendation engine
	"kinoscope_recommend_default_count":         "recommend.limits.default_count",
	"kinoscope_recommend_max_count":             "recommend.limits.max_count",
	"kinoscope_recommend_era_window_years":      "recommend.content.era_window_years",
	"kinoscope_recommend_high_rating_threshold": "recommend.content.high_rating_threshold",
	"kinoscope_recommend_favorite_weight":       "recommend.content.favorite_weight",
	"kinoscope_recommend_max_neighbors":         "recommend.collaborative.max_neighbors",
	"kinoscope_recommend_like_threshold":        "recommend.collaborative.like_threshold",
	"kinoscope_recommend_trending_window":       "recommend.trending.window",
	"kinoscope_recommend_recent_weight":         "recommend.trending.recent_weight",
	"kinoscope_recommend_total_weight":          "recommend.trending.total_weight",
}

// envTransformFunc maps environment variable names to koanf config
// paths, e.g. KINOSCOPE_HTTP_PORT -> server.port.
func envTransformFunc(key string) string {
	if mapped, ok := envMappings[strings.ToLower(key)]; ok {
		return mapped
	}
	return ""
}
