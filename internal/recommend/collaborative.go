// Kinoscope - Movie Discovery and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kinoscope

package recommend

import (
	"sort"
)

// CollaborativeScorer ranks items by rating-pattern similarity between
// users: items the most similar users rated highly, weighted by how
// similar those users are.
type CollaborativeScorer struct {
	cfg CollaborativeConfig
}

// NewCollaborativeScorer creates a collaborative scorer, applying
// defaults for zero config values.
func NewCollaborativeScorer(cfg CollaborativeConfig) *CollaborativeScorer {
	if cfg.MaxNeighbors <= 0 {
		cfg.MaxNeighbors = 10
	}
	if cfg.LikeThreshold <= 0 {
		cfg.LikeThreshold = 4
	}

	return &CollaborativeScorer{cfg: cfg}
}

// neighbor is a similar user with their similarity score.
type neighbor struct {
	userID     string
	similarity float64
}

// RankForUser scores candidates for the user whose rating history is
// userRatings, using the full rating log to find similar users. Returns
// nil immediately when the user has no history: collaborative filtering
// has nothing to compare without one.
//
// A neighbor's rating contributes only when it meets the like threshold
// and covers an item the user has not rated. The final per-item score is
// the similarity-weighted average rating across contributing neighbors.
// Rating item IDs absent from candidates are silently dropped.
func (s *CollaborativeScorer) RankForUser(userRatings []Rating, allRatings []Rating, candidates []Item, count int) []Recommendation {
	if len(userRatings) == 0 || count <= 0 || len(candidates) == 0 {
		return nil
	}

	currentUserID := userRatings[0].UserID
	userVec := ratingVector(userRatings)

	neighbors := s.findNeighbors(currentUserID, userVec, allRatings)
	if len(neighbors) == 0 {
		return nil
	}

	byUser := groupByUser(allRatings)

	// Accumulate similarity-weighted totals per unseen liked item.
	totals := make(map[string]float64)
	counts := make(map[string]int)
	for _, n := range neighbors {
		for itemID, value := range byUser[n.userID] {
			if value < float64(s.cfg.LikeThreshold) {
				continue
			}
			if _, rated := userVec[itemID]; rated {
				continue
			}
			totals[itemID] += value * n.similarity
			counts[itemID]++
		}
	}

	// Resolve against the candidate set in input order so equal scores
	// stay deterministic under the stable sort.
	recs := make([]Recommendation, 0, len(totals))
	for _, cand := range candidates {
		c, ok := counts[cand.ID]
		if !ok {
			continue
		}
		recs = append(recs, Recommendation{
			Item:    cand,
			Score:   totals[cand.ID] / float64(c),
			Reasons: []string{"Recommended by similar users"},
		})
	}

	sortByScore(recs)
	return truncate(recs, count)
}

// findNeighbors returns the most similar other users, best first, capped
// at MaxNeighbors. Similarity is cosine restricted to the items both
// users rated; users with no overlap are excluded.
func (s *CollaborativeScorer) findNeighbors(currentUserID string, userVec map[string]float64, allRatings []Rating) []neighbor {
	byUser := groupByUser(allRatings)

	// Sort user IDs so neighbor order is deterministic before the
	// similarity sort.
	otherIDs := make([]string, 0, len(byUser))
	for uid := range byUser {
		if uid != currentUserID {
			otherIDs = append(otherIDs, uid)
		}
	}
	sort.Strings(otherIDs)

	neighbors := make([]neighbor, 0, len(otherIDs))
	for _, uid := range otherIDs {
		sim := overlapSimilarity(userVec, byUser[uid])
		if sim > 0 {
			neighbors = append(neighbors, neighbor{userID: uid, similarity: sim})
		}
	}

	sort.SliceStable(neighbors, func(i, j int) bool {
		return neighbors[i].similarity > neighbors[j].similarity
	})

	if len(neighbors) > s.cfg.MaxNeighbors {
		neighbors = neighbors[:s.cfg.MaxNeighbors]
	}
	return neighbors
}

// overlapSimilarity computes cosine similarity between two users over
// the items both have rated. No overlap means similarity 0.
func overlapSimilarity(a, b map[string]float64) float64 {
	common := make([]string, 0, len(a))
	for itemID := range a {
		if _, ok := b[itemID]; ok {
			common = append(common, itemID)
		}
	}
	if len(common) == 0 {
		return 0
	}
	sort.Strings(common)

	vecA := make([]float64, len(common))
	vecB := make([]float64, len(common))
	for i, itemID := range common {
		vecA[i] = a[itemID]
		vecB[i] = b[itemID]
	}

	return CosineSimilarity(vecA, vecB)
}

// ratingVector converts a rating list into an item-keyed value map.
//
//nolint:gocritic // rangeValCopy: Rating passed by value in range, acceptable for clarity
func ratingVector(ratings []Rating) map[string]float64 {
	vec := make(map[string]float64, len(ratings))
	for _, r := range ratings {
		vec[r.ItemID] = float64(r.Value)
	}
	return vec
}

// groupByUser indexes a rating log by user, each user mapping item ID to
// rating value.
//
//nolint:gocritic // rangeValCopy: Rating passed by value in range, acceptable for clarity
func groupByUser(ratings []Rating) map[string]map[string]float64 {
	byUser := make(map[string]map[string]float64)
	for _, r := range ratings {
		if byUser[r.UserID] == nil {
			byUser[r.UserID] = make(map[string]float64)
		}
		byUser[r.UserID][r.ItemID] = float64(r.Value)
	}
	return byUser
}
