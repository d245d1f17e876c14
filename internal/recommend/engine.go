// Kinoscope - Movie Discovery and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kinoscope

package recommend

import (
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog"
)

// Engine orchestrates the hybrid pipeline: filter the catalog, gather
// collaborative and content-based rankings, fall back to popularity,
// merge, and rank. It holds only configuration and is safe for
// concurrent use.
type Engine struct {
	cfg     *Config
	logger  zerolog.Logger
	content *ContentScorer
	collab  *CollaborativeScorer
}

// NewEngine creates a recommendation engine. A nil config gets defaults.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg *Config, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Engine{
		cfg:     cfg,
		logger:  logger.With().Str("component", "recommend").Logger(),
		content: NewContentScorer(cfg.Content),
		collab:  NewCollaborativeScorer(cfg.Collaborative),
	}, nil
}

// Config returns a copy of the engine configuration.
func (e *Engine) Config() *Config {
	return e.cfg.Clone()
}

// Recommend produces the hybrid ranking for one user:
//
//  1. Narrow the catalog with the filter. A resolvable similar-to
//     constraint short-circuits into pure content similarity.
//  2. With a rating history, ask the collaborative scorer for half the
//     requested count.
//  3. With stated favorites, ask the content scorer for a full count.
//  4. Fill any remaining slots with the highest-rated candidates.
//  5. Merge duplicates, averaging scores pairwise and unioning reasons,
//     then rank and truncate.
//
// prefs and filter may be nil. A non-positive count takes the configured
// default; counts above the configured maximum are capped.
func (e *Engine) Recommend(items []Item, ratings []Rating, prefs *UserPreferences, filter *Filter, count int) []Recommendation {
	count = e.boundCount(count)

	candidates := ApplyFilter(items, filter)

	if filter != nil && filter.SimilarToItemID != "" {
		if target, ok := findItem(items, filter.SimilarToItemID); ok {
			return e.content.RankSimilarTo(target, candidates, count)
		}
		// Unknown IDs degrade to the normal pipeline, never an error.
	}

	if len(candidates) == 0 {
		return []Recommendation{}
	}

	var working []Recommendation

	if prefs != nil && len(prefs.Ratings) > 0 {
		working = append(working, e.collab.RankForUser(prefs.Ratings, ratings, candidates, ceilHalf(count))...)
	}

	if prefs != nil && (len(prefs.FavoriteGenres) > 0 || len(prefs.FavoriteMoods) > 0) {
		working = append(working, e.content.RankByPreferences(*prefs, candidates, count)...)
	}

	if len(working) < count {
		working = append(working, popularityFill(candidates, working, count-len(working))...)
	}

	merged := mergeByItem(working)
	sortByScore(merged)
	merged = truncate(merged, count)

	e.logger.Debug().
		Int("candidates", len(candidates)).
		Int("returned", len(merged)).
		Msg("recommendation complete")

	return merged
}

// Trending ranks items by recent rating activity: ratings inside the
// trending window count recentWeight each, all ratings count totalWeight.
// Items with no ratings never appear. Recency is measured against the
// time of the call.
//
//nolint:gocritic // rangeValCopy: Rating passed by value in range, acceptable for clarity
func (e *Engine) Trending(items []Item, ratings []Rating, count int) []Recommendation {
	count = e.boundCount(count)
	now := time.Now()

	recent := make(map[string]int)
	total := make(map[string]int)
	for _, r := range ratings {
		total[r.ItemID]++
		if now.Sub(r.CreatedAt) <= e.cfg.Trending.Window {
			recent[r.ItemID]++
		}
	}

	recs := make([]Recommendation, 0, len(total))
	for _, item := range items {
		t, ok := total[item.ID]
		if !ok {
			continue
		}
		rc := recent[item.ID]

		score := float64(rc)*e.cfg.Trending.RecentWeight + float64(t)*e.cfg.Trending.TotalWeight

		var reasons []string
		if rc > 0 {
			reasons = []string{
				"Trending now",
				fmt.Sprintf("%d recent ratings, %d total", rc, t),
			}
		} else {
			reasons = []string{
				"Popular",
				fmt.Sprintf("%d total ratings", t),
			}
		}

		recs = append(recs, Recommendation{Item: item, Score: score, Reasons: reasons})
	}

	sortByScore(recs)
	return truncate(recs, count)
}

// AllGenres returns the sorted deduplicated union of genres across items.
// The result matches the genre vocabulary the scorers build internally.
func AllGenres(items []Item) []string {
	return BuildVocabulary(items).Genres
}

// AllMoods returns the sorted deduplicated union of moods across items.
func AllMoods(items []Item) []string {
	return BuildVocabulary(items).Moods
}

// AllTags returns the sorted deduplicated union of tags across items.
func AllTags(items []Item) []string {
	return BuildVocabulary(items).Tags
}

// ApplyFilter narrows items to those satisfying every constraint in the
// filter. Constraints are AND-combined; list constraints match when the
// item carries any listed value. The minimum-rating and year-range
// constraints require the field to be present: an unrated item fails a
// minimum-rating filter. A nil filter leaves the set unchanged.
//
//nolint:gocritic // rangeValCopy: Item passed by value in range, acceptable for clarity
func ApplyFilter(items []Item, f *Filter) []Item {
	if f == nil {
		return items
	}

	out := make([]Item, 0, len(items))
	for _, item := range items {
		if matchesFilter(item, f) {
			out = append(out, item)
		}
	}
	return out
}

//nolint:gocritic // hugeParam: Item passed by value for immutability
func matchesFilter(item Item, f *Filter) bool {
	if len(f.Genres) > 0 && len(intersect(f.Genres, item.Genres)) == 0 {
		return false
	}
	if len(f.Moods) > 0 && len(intersect(f.Moods, item.Moods)) == 0 {
		return false
	}
	if len(f.Tags) > 0 && len(intersect(f.Tags, item.Tags)) == 0 {
		return false
	}
	if f.MinRating != nil {
		if item.AverageRating == nil || *item.AverageRating < *f.MinRating {
			return false
		}
	}
	if f.YearMin != nil {
		if item.Year == nil || *item.Year < *f.YearMin {
			return false
		}
	}
	if f.YearMax != nil {
		if item.Year == nil || *item.Year > *f.YearMax {
			return false
		}
	}
	return true
}

// popularityFill returns up to needed recommendations drawn from the
// highest-rated candidates not already present, a missing average
// rating counting as zero.
func popularityFill(candidates []Item, present []Recommendation, needed int) []Recommendation {
	if needed <= 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(present))
	for i := range present {
		seen[present[i].Item.ID] = struct{}{}
	}

	pool := make([]Item, 0, len(candidates))
	for i := range candidates {
		if _, ok := seen[candidates[i].ID]; !ok {
			pool = append(pool, candidates[i])
		}
	}

	// Stable so unrated items keep catalog order among themselves.
	sortItemsByRating(pool)

	if len(pool) > needed {
		pool = pool[:needed]
	}

	recs := make([]Recommendation, 0, len(pool))
	for _, item := range pool {
		ratingText := "N/A"
		score := 0.0
		if item.AverageRating != nil {
			ratingText = fmt.Sprintf("%.1f", *item.AverageRating)
			score = *item.AverageRating
		}
		recs = append(recs, Recommendation{
			Item:    item,
			Score:   score,
			Reasons: []string{"Popular choice", "Rating: " + ratingText},
		})
	}
	return recs
}

// mergeByItem deduplicates a working list by item ID. The first
// occurrence seeds the entry; each later duplicate averages its score
// into the existing one pairwise -- (existing + new) / 2, applied
// incrementally, not a running mean across three or more sources -- and
// unions the reason lists. Downstream consumers depend on the pairwise
// behavior, so it must not be "fixed".
func mergeByItem(working []Recommendation) []Recommendation {
	merged := make([]Recommendation, 0, len(working))
	index := make(map[string]int, len(working))

	for i := range working {
		rec := working[i]
		if at, ok := index[rec.Item.ID]; ok {
			merged[at].Score = (merged[at].Score + rec.Score) / 2
			merged[at].Reasons = unionReasons(merged[at].Reasons, rec.Reasons)
			continue
		}

		index[rec.Item.ID] = len(merged)
		merged = append(merged, Recommendation{
			Item:    rec.Item,
			Score:   rec.Score,
			Reasons: unionReasons(nil, rec.Reasons),
		})
	}

	return merged
}

// unionReasons appends the reasons from add that existing lacks,
// preserving first-seen order.
func unionReasons(existing, add []string) []string {
	seen := make(map[string]struct{}, len(existing)+len(add))
	out := make([]string, 0, len(existing)+len(add))

	for _, r := range existing {
		if _, ok := seen[r]; !ok {
			seen[r] = struct{}{}
			out = append(out, r)
		}
	}
	for _, r := range add {
		if _, ok := seen[r]; !ok {
			seen[r] = struct{}{}
			out = append(out, r)
		}
	}
	return out
}

// sortItemsByRating orders items by average rating descending, missing
// ratings counting as zero.
func sortItemsByRating(items []Item) {
	sort.SliceStable(items, func(i, j int) bool {
		return ratingOrZero(items[i]) > ratingOrZero(items[j])
	})
}

//nolint:gocritic // hugeParam: Item passed by value for immutability
func ratingOrZero(item Item) float64 {
	if item.AverageRating == nil {
		return 0
	}
	return *item.AverageRating
}

// findItem resolves an ID against an item list.
func findItem(items []Item, id string) (Item, bool) {
	for i := range items {
		if items[i].ID == id {
			return items[i], true
		}
	}
	return Item{}, false
}

// boundCount applies the default and maximum result counts.
func (e *Engine) boundCount(count int) int {
	if count <= 0 {
		count = e.cfg.Limits.DefaultCount
	}
	if count > e.cfg.Limits.MaxCount {
		count = e.cfg.Limits.MaxCount
	}
	return count
}

// ceilHalf returns count/2 rounded up.
func ceilHalf(count int) int {
	return (count + 1) / 2
}
