// Kinoscope - Movie Discovery and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kinoscope

package recommend

import (
	"fmt"
	"sort"
	"strings"
)

// ContentScorer ranks items by attribute similarity. It compares feature
// vectors built over a shared vocabulary, either against a target item
// ("more like this") or against an ideal vector synthesized from a
// user's stated preferences.
type ContentScorer struct {
	cfg ContentConfig
}

// NewContentScorer creates a content-based scorer, applying defaults for
// zero config values.
func NewContentScorer(cfg ContentConfig) *ContentScorer {
	if cfg.EraWindowYears == 0 {
		cfg.EraWindowYears = 5
	}
	if cfg.HighRatingThreshold == 0 {
		cfg.HighRatingThreshold = 4.5
	}
	if cfg.FavoriteWeight == 0 {
		cfg.FavoriteWeight = 2.0
	}
	if cfg.TagNeutral == 0 {
		cfg.TagNeutral = neutralSlot
	}
	if cfg.YearBias == 0 {
		cfg.YearBias = 0.8
	}
	if cfg.RatingBias == 0 {
		cfg.RatingBias = 1.0
	}

	return &ContentScorer{cfg: cfg}
}

// RankSimilarTo scores every candidate by cosine similarity to the
// target item and returns the top count, best first. The vocabulary is
// built from the candidate set; the target never appears in the output.
// Equal scores keep input order.
//
//nolint:gocritic // hugeParam: target passed by value for immutability
func (s *ContentScorer) RankSimilarTo(target Item, candidates []Item, count int) []Recommendation {
	if count <= 0 || len(candidates) == 0 {
		return nil
	}

	vocab := BuildVocabulary(candidates)
	targetVec := Vectorize(target, vocab)

	recs := make([]Recommendation, 0, len(candidates))
	for _, cand := range candidates {
		if cand.ID == target.ID {
			continue
		}

		recs = append(recs, Recommendation{
			Item:    cand,
			Score:   CosineSimilarity(targetVec, Vectorize(cand, vocab)),
			Reasons: s.similarityReasons(target, cand),
		})
	}

	sortByScore(recs)
	return truncate(recs, count)
}

// RankByPreferences scores every candidate by cosine similarity to an
// ideal vector derived from the user's favorite genres and moods, and
// returns the top count, best first.
func (s *ContentScorer) RankByPreferences(prefs UserPreferences, candidates []Item, count int) []Recommendation {
	if count <= 0 || len(candidates) == 0 {
		return nil
	}

	vocab := BuildVocabulary(candidates)
	ideal := s.idealVector(prefs, vocab)

	recs := make([]Recommendation, 0, len(candidates))
	for _, cand := range candidates {
		recs = append(recs, Recommendation{
			Item:    cand,
			Score:   CosineSimilarity(ideal, Vectorize(cand, vocab)),
			Reasons: s.preferenceReasons(prefs, cand),
		})
	}

	sortByScore(recs)
	return truncate(recs, count)
}

// idealVector synthesizes the preference vector a perfectly matching
// item would have: favorite genre and mood slots carry FavoriteWeight,
// tag slots stay neutral, and the year and rating slots carry the
// recency and quality biases.
func (s *ContentScorer) idealVector(prefs UserPreferences, vocab Vocabulary) []float64 {
	favGenres := stringSet(prefs.FavoriteGenres)
	favMoods := stringSet(prefs.FavoriteMoods)

	vec := make([]float64, 0, vocab.Size())
	for _, g := range vocab.Genres {
		if _, ok := favGenres[g]; ok {
			vec = append(vec, s.cfg.FavoriteWeight)
		} else {
			vec = append(vec, 0)
		}
	}
	for _, m := range vocab.Moods {
		if _, ok := favMoods[m]; ok {
			vec = append(vec, s.cfg.FavoriteWeight)
		} else {
			vec = append(vec, 0)
		}
	}
	for range vocab.Tags {
		vec = append(vec, s.cfg.TagNeutral)
	}

	vec = append(vec, s.cfg.YearBias)
	vec = append(vec, s.cfg.RatingBias)
	return vec
}

// similarityReasons explains why a candidate resembles the target.
// Reasons are independent of the score; an empty list is legal.
//
//nolint:gocritic // hugeParam: items passed by value for immutability
func (s *ContentScorer) similarityReasons(target, cand Item) []string {
	var reasons []string

	if shared := intersect(target.Genres, cand.Genres); len(shared) > 0 {
		reasons = append(reasons, "Shared genres: "+strings.Join(shared, ", "))
	}
	if shared := intersect(target.Moods, cand.Moods); len(shared) > 0 {
		reasons = append(reasons, "Shared moods: "+strings.Join(shared, ", "))
	}
	if target.Director != nil && cand.Director != nil && *target.Director == *cand.Director {
		reasons = append(reasons, "Same director: "+*cand.Director)
	}
	if target.Year != nil && cand.Year != nil {
		diff := *target.Year - *cand.Year
		if diff < 0 {
			diff = -diff
		}
		if diff <= s.cfg.EraWindowYears {
			reasons = append(reasons, "Similar era")
		}
	}

	return reasons
}

// preferenceReasons explains why a candidate matches the user's tastes.
//
//nolint:gocritic // hugeParam: Item passed by value for immutability
func (s *ContentScorer) preferenceReasons(prefs UserPreferences, cand Item) []string {
	var reasons []string

	if matched := intersect(prefs.FavoriteGenres, cand.Genres); len(matched) > 0 {
		reasons = append(reasons, "Matches favorite genres: "+strings.Join(matched, ", "))
	}
	if matched := intersect(prefs.FavoriteMoods, cand.Moods); len(matched) > 0 {
		reasons = append(reasons, "Matches favorite moods: "+strings.Join(matched, ", "))
	}
	if cand.AverageRating != nil && *cand.AverageRating >= s.cfg.HighRatingThreshold {
		reasons = append(reasons, fmt.Sprintf("Highly rated (%.1f)", *cand.AverageRating))
	}

	return reasons
}

// intersect returns the values of a that also appear in b, in a's order,
// deduplicated.
func intersect(a, b []string) []string {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}

	bSet := stringSet(b)
	seen := make(map[string]struct{}, len(a))

	var shared []string
	for _, v := range a {
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		if _, ok := bSet[v]; ok {
			shared = append(shared, v)
		}
	}
	return shared
}

// stringSet converts a slice into a membership set.
func stringSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

// sortByScore orders recommendations best first. The sort is stable so
// exactly-equal scores keep input order.
func sortByScore(recs []Recommendation) {
	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Score > recs[j].Score
	})
}

// truncate bounds a result list to at most count entries.
func truncate(recs []Recommendation, count int) []Recommendation {
	if len(recs) > count {
		return recs[:count]
	}
	return recs
}
