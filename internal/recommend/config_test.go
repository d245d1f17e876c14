// Kinoscope - Movie Discovery and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kinoscope

package recommend

import (
	"testing"
	"time"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{
			name:    "defaults are valid",
			modify:  func(*Config) {},
			wantErr: false,
		},
		{
			name:    "zero default count",
			modify:  func(c *Config) { c.Limits.DefaultCount = 0 },
			wantErr: true,
		},
		{
			name:    "max below default",
			modify:  func(c *Config) { c.Limits.MaxCount = 5 },
			wantErr: true,
		},
		{
			name:    "negative era window",
			modify:  func(c *Config) { c.Content.EraWindowYears = -1 },
			wantErr: true,
		},
		{
			name:    "high rating threshold above scale",
			modify:  func(c *Config) { c.Content.HighRatingThreshold = 5.1 },
			wantErr: true,
		},
		{
			name:    "zero favorite weight",
			modify:  func(c *Config) { c.Content.FavoriteWeight = 0 },
			wantErr: true,
		},
		{
			name:    "zero neighbors",
			modify:  func(c *Config) { c.Collaborative.MaxNeighbors = 0 },
			wantErr: true,
		},
		{
			name:    "like threshold out of range",
			modify:  func(c *Config) { c.Collaborative.LikeThreshold = 6 },
			wantErr: true,
		},
		{
			name:    "non-positive trending window",
			modify:  func(c *Config) { c.Trending.Window = 0 },
			wantErr: true,
		},
		{
			name:    "negative trending weight",
			modify:  func(c *Config) { c.Trending.RecentWeight = -0.1 },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)

			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_Clone(t *testing.T) {
	orig := DefaultConfig()
	clone := orig.Clone()

	clone.Limits.DefaultCount = 42
	clone.Trending.Window = time.Hour

	if orig.Limits.DefaultCount == 42 {
		t.Error("Clone() shares Limits with original")
	}
	if orig.Trending.Window == time.Hour {
		t.Error("Clone() shares Trending with original")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() error = %v", err)
	}
	if cfg.Limits.DefaultCount != 10 {
		t.Errorf("DefaultCount = %d, want 10", cfg.Limits.DefaultCount)
	}
	if cfg.Limits.MaxCount != 100 {
		t.Errorf("MaxCount = %d, want 100", cfg.Limits.MaxCount)
	}
	if cfg.Trending.Window != 30*24*time.Hour {
		t.Errorf("Trending.Window = %v, want 720h", cfg.Trending.Window)
	}
}
