// Kinoscope - Movie Discovery and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kinoscope

package recommend

import (
	"math"
	"sort"
)

// Year and rating normalization constants for feature vectors. The
// neutral slot value keeps items with missing metadata from being
// penalized to zero while still differing from a perfect value.
const (
	yearBase    = 1900.0
	yearRange   = 130.0
	ratingScale = 5.0
	neutralSlot = 0.5
)

// CosineSimilarity computes the cosine of the angle between two
// equal-length vectors. Mismatched lengths return 0 rather than an
// error: unequal vectors indicate a vocabulary bug upstream, and scoring
// must not fail. Zero-magnitude vectors also return 0 to avoid division
// by zero.
func CosineSimilarity(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	if normA == 0 || normB == 0 {
		return 0
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// BuildVocabulary unions every item's genres, moods and tags into three
// separately sorted, deduplicated sequences. Lexicographic order fixes
// vector slot meaning for downstream cosine comparisons and makes
// construction deterministic for a given candidate set.
//
//nolint:gocritic // rangeValCopy: Item passed by value in range, acceptable for clarity
func BuildVocabulary(items []Item) Vocabulary {
	genres := make(map[string]struct{})
	moods := make(map[string]struct{})
	tags := make(map[string]struct{})

	for _, item := range items {
		for _, g := range item.Genres {
			genres[g] = struct{}{}
		}
		for _, m := range item.Moods {
			moods[m] = struct{}{}
		}
		for _, t := range item.Tags {
			tags[t] = struct{}{}
		}
	}

	return Vocabulary{
		Genres: sortedKeys(genres),
		Moods:  sortedKeys(moods),
		Tags:   sortedKeys(tags),
	}
}

// sortedKeys returns the keys of a set in ascending order.
func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Vectorize encodes an item against a vocabulary: one binary slot per
// vocabulary genre, mood and tag, then a normalized year slot and a
// normalized rating slot. Missing year or rating metadata takes the
// neutral value.
//
//nolint:gocritic // hugeParam: Item passed by value for immutability
func Vectorize(item Item, vocab Vocabulary) []float64 {
	vec := make([]float64, 0, vocab.Size())

	vec = appendMembership(vec, vocab.Genres, item.Genres)
	vec = appendMembership(vec, vocab.Moods, item.Moods)
	vec = appendMembership(vec, vocab.Tags, item.Tags)

	if item.Year != nil {
		vec = append(vec, (float64(*item.Year)-yearBase)/yearRange)
	} else {
		vec = append(vec, neutralSlot)
	}

	if item.AverageRating != nil {
		vec = append(vec, *item.AverageRating/ratingScale)
	} else {
		vec = append(vec, neutralSlot)
	}

	return vec
}

// appendMembership appends one 0/1 slot per vocabulary value.
func appendMembership(vec []float64, vocab, values []string) []float64 {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}

	for _, v := range vocab {
		if _, ok := set[v]; ok {
			vec = append(vec, 1)
		} else {
			vec = append(vec, 0)
		}
	}
	return vec
}
