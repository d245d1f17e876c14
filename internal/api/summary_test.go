// Kinoscope - Movie Discovery and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kinoscope

package api

import (
	"testing"

	"github.com/tomtom215/kinoscope/internal/recommend"
)

func TestBuildCatalogSummary(t *testing.T) {
	four := 4.2
	two := 2.1
	y1 := 1994
	y2 := 1999
	y3 := 2021

	items := []recommend.Item{
		{ID: "a", Genres: []string{"Drama", "Crime"}, Year: &y1, AverageRating: &four},
		{ID: "b", Genres: []string{"Drama"}, Year: &y2, AverageRating: &two},
		{ID: "c", Genres: []string{"Action"}, Year: &y3},
	}
	ratings := []recommend.Rating{
		{UserID: "u1", ItemID: "a", Value: 4},
		{UserID: "u2", ItemID: "a", Value: 5},
		{UserID: "u1", ItemID: "b", Value: 2},
	}

	s := buildCatalogSummary(items, ratings)

	if s.TotalItems != 3 {
		t.Errorf("TotalItems = %d, want 3", s.TotalItems)
	}
	if s.RatedItems != 2 {
		t.Errorf("RatedItems = %d, want 2", s.RatedItems)
	}
	if s.TotalRatings != 3 {
		t.Errorf("TotalRatings = %d, want 3", s.TotalRatings)
	}

	// Drama has 2 items so it sorts first.
	if len(s.Genres) != 3 || s.Genres[0].Genre != "Drama" {
		t.Fatalf("Genres = %+v, want Drama first", s.Genres)
	}
	if s.Genres[0].ItemCount != 2 {
		t.Errorf("Drama ItemCount = %d, want 2", s.Genres[0].ItemCount)
	}
	wantAvg := (4.2 + 2.1) / 2
	if s.Genres[0].AvgRating != wantAvg {
		t.Errorf("Drama AvgRating = %v, want %v", s.Genres[0].AvgRating, wantAvg)
	}

	// 1990s bucket holds two items, 2020s one.
	if len(s.Decades) != 2 {
		t.Fatalf("Decades = %+v, want 2 entries", s.Decades)
	}
	if s.Decades[0].Decade != 1990 || s.Decades[0].ItemCount != 2 {
		t.Errorf("Decades[0] = %+v, want {1990 2}", s.Decades[0])
	}

	if len(s.Ratings) != 5 {
		t.Fatalf("Ratings = %+v, want 5 buckets", s.Ratings)
	}
	if s.Ratings[4].Bucket != "4-5" || s.Ratings[4].ItemCount != 1 {
		t.Errorf("Ratings[4] = %+v, want {4-5 1}", s.Ratings[4])
	}
	if s.Ratings[2].ItemCount != 1 {
		t.Errorf("Ratings[2] = %+v, want one item in the 2-3 bucket", s.Ratings[2])
	}
}

func TestBuildCatalogSummary_Empty(t *testing.T) {
	s := buildCatalogSummary(nil, nil)
	if s.TotalItems != 0 || s.RatedItems != 0 || s.TotalRatings != 0 {
		t.Errorf("empty catalog summary not zero: %+v", s)
	}
	if len(s.Genres) != 0 || len(s.Decades) != 0 {
		t.Errorf("empty catalog has breakdowns: %+v", s)
	}
	if len(s.Ratings) != 5 {
		t.Errorf("Ratings = %+v, want 5 empty buckets", s.Ratings)
	}
}
