// Kinoscope - Movie Discovery and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kinoscope

package api

import (
	"fmt"
	"math"
	"sort"

	"github.com/tomtom215/kinoscope/internal/models"
	"github.com/tomtom215/kinoscope/internal/recommend"
)

// ratingBucketCount splits the 0-5 rating scale into unit-wide buckets.
const ratingBucketCount = 5

// buildCatalogSummary computes the catalog distribution overview: counts
// and average rating per genre, item counts per release decade, and a
// histogram of average ratings. Items missing a dimension are simply
// absent from that breakdown.
func buildCatalogSummary(items []recommend.Item, ratings []recommend.Rating) models.CatalogSummary {
	summary := models.CatalogSummary{
		TotalItems:   len(items),
		TotalRatings: len(ratings),
	}

	type genreAccum struct {
		count     int
		ratingSum float64
		rated     int
	}
	genres := make(map[string]*genreAccum)
	decades := make(map[int]int)
	buckets := make([]int, ratingBucketCount)

	for i := range items {
		item := &items[i]
		if item.AverageRating != nil {
			summary.RatedItems++
			idx := int(math.Floor(*item.AverageRating))
			if idx >= ratingBucketCount {
				idx = ratingBucketCount - 1
			}
			if idx >= 0 {
				buckets[idx]++
			}
		}
		if item.Year != nil {
			decades[(*item.Year/10)*10]++
		}
		for _, g := range item.Genres {
			acc := genres[g]
			if acc == nil {
				acc = &genreAccum{}
				genres[g] = acc
			}
			acc.count++
			if item.AverageRating != nil {
				acc.ratingSum += *item.AverageRating
				acc.rated++
			}
		}
	}

	summary.Genres = make([]models.GenreStats, 0, len(genres))
	for g, acc := range genres {
		stats := models.GenreStats{Genre: g, ItemCount: acc.count}
		if acc.rated > 0 {
			stats.AvgRating = acc.ratingSum / float64(acc.rated)
		}
		summary.Genres = append(summary.Genres, stats)
	}
	sort.Slice(summary.Genres, func(i, j int) bool {
		if summary.Genres[i].ItemCount != summary.Genres[j].ItemCount {
			return summary.Genres[i].ItemCount > summary.Genres[j].ItemCount
		}
		return summary.Genres[i].Genre < summary.Genres[j].Genre
	})

	summary.Decades = make([]models.DecadeStats, 0, len(decades))
	for decade, count := range decades {
		summary.Decades = append(summary.Decades, models.DecadeStats{Decade: decade, ItemCount: count})
	}
	sort.Slice(summary.Decades, func(i, j int) bool {
		return summary.Decades[i].Decade < summary.Decades[j].Decade
	})

	summary.Ratings = make([]models.RatingBucket, 0, ratingBucketCount)
	for i, count := range buckets {
		summary.Ratings = append(summary.Ratings, models.RatingBucket{
			Bucket:    fmt.Sprintf("%d-%d", i, i+1),
			ItemCount: count,
		})
	}

	return summary
}
