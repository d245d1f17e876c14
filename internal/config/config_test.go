// Kinoscope - Movie Discovery and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kinoscope

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaultConfig().Validate() error = %v", err)
	}
	if cfg.Server.Port != 8320 {
		t.Errorf("Server.Port = %d, want 8320", cfg.Server.Port)
	}
	if cfg.Store.Path != "/data/kinoscope" {
		t.Errorf("Store.Path = %q, want /data/kinoscope", cfg.Store.Path)
	}
	if cfg.Recommend.Limits.DefaultCount != 10 {
		t.Errorf("Recommend.Limits.DefaultCount = %d, want 10", cfg.Recommend.Limits.DefaultCount)
	}
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("KINOSCOPE_HTTP_PORT", "9000")
	t.Setenv("KINOSCOPE_STORE_IN_MEMORY", "true")
	t.Setenv("KINOSCOPE_LOG_LEVEL", "debug")
	t.Setenv("KINOSCOPE_RECOMMEND_MAX_NEIGHBORS", "25")
	t.Setenv("KINOSCOPE_CORS_ORIGINS", "http://a.example, http://b.example")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 9000 {
		t.Errorf("Server.Port = %d, want 9000", cfg.Server.Port)
	}
	if !cfg.Store.InMemory {
		t.Error("Store.InMemory = false, want true")
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
	if cfg.Recommend.Collaborative.MaxNeighbors != 25 {
		t.Errorf("MaxNeighbors = %d, want 25", cfg.Recommend.Collaborative.MaxNeighbors)
	}
	if len(cfg.Security.CORSOrigins) != 2 || cfg.Security.CORSOrigins[0] != "http://a.example" {
		t.Errorf("CORSOrigins = %v, want split and trimmed pair", cfg.Security.CORSOrigins)
	}
}

func TestLoad_UnmappedEnvIgnored(t *testing.T) {
	t.Setenv("KINOSCOPE_NONSENSE", "boom")
	t.Setenv("PATH_LIKE_NOISE", "x")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Port != 8320 {
		t.Errorf("unmapped env changed config: port = %d", cfg.Server.Port)
	}
}

func TestLoad_InvalidValueRejected(t *testing.T) {
	t.Setenv("KINOSCOPE_HTTP_PORT", "70000")

	if _, err := Load(); err == nil {
		t.Error("Load() with out-of-range port succeeded, want error")
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{
			name:    "defaults valid",
			modify:  func(*Config) {},
			wantErr: false,
		},
		{
			name:    "zero port",
			modify:  func(c *Config) { c.Server.Port = 0 },
			wantErr: true,
		},
		{
			name:    "zero timeout",
			modify:  func(c *Config) { c.Server.Timeout = 0 },
			wantErr: true,
		},
		{
			name: "missing store path",
			modify: func(c *Config) {
				c.Store.Path = ""
				c.Store.InMemory = false
			},
			wantErr: true,
		},
		{
			name: "in-memory store needs no path",
			modify: func(c *Config) {
				c.Store.Path = ""
				c.Store.InMemory = true
			},
			wantErr: false,
		},
		{
			name:    "zero rate limit",
			modify:  func(c *Config) { c.Security.RateLimitReqs = 0 },
			wantErr: true,
		},
		{
			name: "zero rate limit ok when disabled",
			modify: func(c *Config) {
				c.Security.RateLimitReqs = 0
				c.Security.RateLimitDisabled = true
			},
			wantErr: false,
		},
		{
			name:    "invalid recommend config surfaces",
			modify:  func(c *Config) { c.Recommend.Limits.DefaultCount = 0 },
			wantErr: true,
		},
		{
			name:    "zero gc interval",
			modify:  func(c *Config) { c.Store.GCInterval = 0 },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.modify(cfg)

			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoad_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	content := []byte("server:\n  port: 8500\nstore:\n  in_memory: true\n")
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("writing config file: %v", err)
	}

	t.Setenv(ConfigPathEnvVar, path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Port != 8500 {
		t.Errorf("Server.Port = %d, want 8500 from file", cfg.Server.Port)
	}
	if !cfg.Store.InMemory {
		t.Error("Store.InMemory = false, want true from file")
	}
	if cfg.Server.Timeout != 30*time.Second {
		t.Errorf("Server.Timeout = %v, want default 30s", cfg.Server.Timeout)
	}
}

func TestLoad_EnvBeatsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	if err := os.WriteFile(path, []byte("server:\n  port: 8500\nstore:\n  in_memory: true\n"), 0o600); err != nil {
		t.Fatalf("writing config file: %v", err)
	}

	t.Setenv(ConfigPathEnvVar, path)
	t.Setenv("KINOSCOPE_HTTP_PORT", "9100")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Port != 9100 {
		t.Errorf("Server.Port = %d, want env override 9100", cfg.Server.Port)
	}
}
