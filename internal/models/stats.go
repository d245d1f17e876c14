// Kinoscope - Movie Discovery and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kinoscope

package models

// GenreStats represents catalog counts by genre.
type GenreStats struct {
	Genre     string  `json:"genre"`
	ItemCount int     `json:"item_count"`
	AvgRating float64 `json:"avg_rating"`
}

// DecadeStats represents catalog counts by release decade.
type DecadeStats struct {
	Decade    int `json:"decade"`
	ItemCount int `json:"item_count"`
}

// RatingBucket represents one slot of the rating histogram.
type RatingBucket struct {
	Bucket    string `json:"bucket"`
	ItemCount int    `json:"item_count"`
}

// CatalogSummary is the catalog distribution overview returned with
// recommendation responses on request.
type CatalogSummary struct {
	TotalItems   int            `json:"total_items"`
	RatedItems   int            `json:"rated_items"`
	TotalRatings int            `json:"total_ratings"`
	Genres       []GenreStats   `json:"genres"`
	Decades      []DecadeStats  `json:"decades"`
	Ratings      []RatingBucket `json:"ratings"`
}
