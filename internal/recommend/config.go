// Kinoscope - Movie Discovery and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kinoscope

package recommend

import (
	"fmt"
	"time"
)

// Config contains all tunables for the recommendation engine.
type Config struct {
	// Limits contains result count bounds.
	Limits LimitsConfig `json:"limits" koanf:"limits"`

	// Content contains parameters for content-based scoring.
	Content ContentConfig `json:"content" koanf:"content"`

	// Collaborative contains parameters for collaborative scoring.
	Collaborative CollaborativeConfig `json:"collaborative" koanf:"collaborative"`

	// Trending contains parameters for the trending score.
	Trending TrendingConfig `json:"trending" koanf:"trending"`
}

// LimitsConfig contains result count bounds.
type LimitsConfig struct {
	// DefaultCount is the number of recommendations returned when the
	// caller requests zero or fewer.
	// Default: 10.
	DefaultCount int `json:"default_count" koanf:"default_count"`

	// MaxCount is the hard cap on any requested count.
	// Default: 100.
	MaxCount int `json:"max_count" koanf:"max_count"`
}

// ContentConfig contains parameters for content-based scoring.
type ContentConfig struct {
	// EraWindowYears is the maximum release year gap for two items to be
	// considered from a similar era.
	// Default: 5.
	EraWindowYears int `json:"era_window_years" koanf:"era_window_years"`

	// HighRatingThreshold is the minimum average rating for the
	// "Highly rated" reason in preference ranking.
	// Default: 4.5.
	HighRatingThreshold float64 `json:"high_rating_threshold" koanf:"high_rating_threshold"`

	// FavoriteWeight is the ideal-vector slot value for a favorite genre
	// or mood. Values above 1 pull cosine similarity toward favorite
	// matches harder than a literal item's binary slot could.
	// Default: 2.0.
	FavoriteWeight float64 `json:"favorite_weight" koanf:"favorite_weight"`

	// TagNeutral is the ideal-vector slot value for tags, which are not
	// a preference dimension.
	// Default: 0.5.
	TagNeutral float64 `json:"tag_neutral" koanf:"tag_neutral"`

	// YearBias is the ideal-vector year slot, a mild recency bias.
	// Default: 0.8.
	YearBias float64 `json:"year_bias" koanf:"year_bias"`

	// RatingBias is the ideal-vector rating slot, a bias toward quality.
	// Default: 1.0.
	RatingBias float64 `json:"rating_bias" koanf:"rating_bias"`
}

// CollaborativeConfig contains parameters for collaborative scoring.
type CollaborativeConfig struct {
	// MaxNeighbors is the number of most-similar users considered.
	// Default: 10.
	MaxNeighbors int `json:"max_neighbors" koanf:"max_neighbors"`

	// LikeThreshold is the minimum rating value a neighbor's rating must
	// have to contribute a recommendation.
	// Default: 4.
	LikeThreshold int `json:"like_threshold" koanf:"like_threshold"`
}

// TrendingConfig contains parameters for the trending score.
type TrendingConfig struct {
	// Window is how far back a rating counts as recent.
	// Default: 30 days.
	Window time.Duration `json:"window" koanf:"window"`

	// RecentWeight is the weight on the recent rating count.
	// Default: 0.7.
	RecentWeight float64 `json:"recent_weight" koanf:"recent_weight"`

	// TotalWeight is the weight on the total rating count.
	// Default: 0.3.
	TotalWeight float64 `json:"total_weight" koanf:"total_weight"`
}

// DefaultConfig returns a Config with production defaults.
func DefaultConfig() *Config {
	return &Config{
		Limits: LimitsConfig{
			DefaultCount: 10,
			MaxCount:     100,
		},
		Content: ContentConfig{
			EraWindowYears:      5,
			HighRatingThreshold: 4.5,
			FavoriteWeight:      2.0,
			TagNeutral:          0.5,
			YearBias:            0.8,
			RatingBias:          1.0,
		},
		Collaborative: CollaborativeConfig{
			MaxNeighbors:  10,
			LikeThreshold: 4,
		},
		Trending: TrendingConfig{
			Window:       30 * 24 * time.Hour,
			RecentWeight: 0.7,
			TotalWeight:  0.3,
		},
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Limits.DefaultCount < 1 {
		return fmt.Errorf("limits.default_count must be positive, got %d", c.Limits.DefaultCount)
	}
	if c.Limits.MaxCount < c.Limits.DefaultCount {
		return fmt.Errorf("limits.max_count must be >= limits.default_count, got %d < %d",
			c.Limits.MaxCount, c.Limits.DefaultCount)
	}

	if c.Content.EraWindowYears < 0 {
		return fmt.Errorf("content.era_window_years must be non-negative, got %d", c.Content.EraWindowYears)
	}
	if c.Content.HighRatingThreshold < 0 || c.Content.HighRatingThreshold > 5 {
		return fmt.Errorf("content.high_rating_threshold must be in [0, 5], got %f", c.Content.HighRatingThreshold)
	}
	if c.Content.FavoriteWeight <= 0 {
		return fmt.Errorf("content.favorite_weight must be positive, got %f", c.Content.FavoriteWeight)
	}

	if c.Collaborative.MaxNeighbors < 1 {
		return fmt.Errorf("collaborative.max_neighbors must be positive, got %d", c.Collaborative.MaxNeighbors)
	}
	if c.Collaborative.LikeThreshold < 1 || c.Collaborative.LikeThreshold > 5 {
		return fmt.Errorf("collaborative.like_threshold must be in [1, 5], got %d", c.Collaborative.LikeThreshold)
	}

	if c.Trending.Window <= 0 {
		return fmt.Errorf("trending.window must be positive, got %v", c.Trending.Window)
	}
	if c.Trending.RecentWeight < 0 || c.Trending.TotalWeight < 0 {
		return fmt.Errorf("trending weights must be non-negative, got recent=%f total=%f",
			c.Trending.RecentWeight, c.Trending.TotalWeight)
	}

	return nil
}

// Clone returns a deep copy of the configuration.
func (c *Config) Clone() *Config {
	// All nested structs contain only value types.
	return &Config{
		Limits:        c.Limits,
		Content:       c.Content,
		Collaborative: c.Collaborative,
		Trending:      c.Trending,
	}
}
