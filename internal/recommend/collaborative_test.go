// Kinoscope - Movie Discovery and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kinoscope

package recommend

import (
	"math"
	"testing"
)

func TestCollaborativeScorer_RankForUser(t *testing.T) {
	candidates := []Item{
		{ID: "m1", Title: "M1"},
		{ID: "m2", Title: "M2"},
		{ID: "m3", Title: "M3"},
		{ID: "m4", Title: "M4"},
	}

	tests := []struct {
		name        string
		userRatings []Rating
		allRatings  []Rating
		count       int
		wantIDs     []string
	}{
		{
			name:        "empty history returns nothing",
			userRatings: nil,
			allRatings: []Rating{
				{UserID: "u2", ItemID: "m1", Value: 5},
			},
			count:   10,
			wantIDs: []string{},
		},
		{
			name: "identical taste surfaces neighbor's liked items",
			userRatings: []Rating{
				{UserID: "u1", ItemID: "m1", Value: 5},
				{UserID: "u1", ItemID: "m2", Value: 5},
			},
			allRatings: []Rating{
				{UserID: "u1", ItemID: "m1", Value: 5},
				{UserID: "u1", ItemID: "m2", Value: 5},
				{UserID: "u2", ItemID: "m1", Value: 5},
				{UserID: "u2", ItemID: "m2", Value: 5},
				{UserID: "u2", ItemID: "m3", Value: 5},
			},
			count:   10,
			wantIDs: []string{"m3"},
		},
		{
			name: "already-rated items excluded",
			userRatings: []Rating{
				{UserID: "u1", ItemID: "m1", Value: 5},
			},
			allRatings: []Rating{
				{UserID: "u1", ItemID: "m1", Value: 5},
				{UserID: "u2", ItemID: "m1", Value: 5},
			},
			count:   10,
			wantIDs: []string{},
		},
		{
			name: "below like threshold ignored",
			userRatings: []Rating{
				{UserID: "u1", ItemID: "m1", Value: 5},
			},
			allRatings: []Rating{
				{UserID: "u1", ItemID: "m1", Value: 5},
				{UserID: "u2", ItemID: "m1", Value: 5},
				{UserID: "u2", ItemID: "m3", Value: 3},
			},
			count:   10,
			wantIDs: []string{},
		},
		{
			name: "no overlapping raters",
			userRatings: []Rating{
				{UserID: "u1", ItemID: "m1", Value: 5},
			},
			allRatings: []Rating{
				{UserID: "u1", ItemID: "m1", Value: 5},
				{UserID: "u2", ItemID: "m2", Value: 5},
			},
			count:   10,
			wantIDs: []string{},
		},
		{
			name: "unknown item ids dropped",
			userRatings: []Rating{
				{UserID: "u1", ItemID: "m1", Value: 5},
			},
			allRatings: []Rating{
				{UserID: "u1", ItemID: "m1", Value: 5},
				{UserID: "u2", ItemID: "m1", Value: 5},
				{UserID: "u2", ItemID: "deleted", Value: 5},
			},
			count:   10,
			wantIDs: []string{},
		},
		{
			name: "count truncates",
			userRatings: []Rating{
				{UserID: "u1", ItemID: "m1", Value: 5},
			},
			allRatings: []Rating{
				{UserID: "u1", ItemID: "m1", Value: 5},
				{UserID: "u2", ItemID: "m1", Value: 5},
				{UserID: "u2", ItemID: "m2", Value: 5},
				{UserID: "u2", ItemID: "m3", Value: 4},
				{UserID: "u2", ItemID: "m4", Value: 4},
			},
			count:   1,
			wantIDs: []string{"m2"},
		},
	}

	scorer := NewCollaborativeScorer(DefaultConfig().Collaborative)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := scorer.RankForUser(tt.userRatings, tt.allRatings, candidates, tt.count)

			if len(got) != len(tt.wantIDs) {
				t.Fatalf("RankForUser() returned %d results, want %d: %+v", len(got), len(tt.wantIDs), got)
			}
			for i, rec := range got {
				if rec.Item.ID != tt.wantIDs[i] {
					t.Errorf("result[%d].Item.ID = %q, want %q", i, rec.Item.ID, tt.wantIDs[i])
				}
			}
		})
	}
}

func TestCollaborativeScorer_WeightedAverage(t *testing.T) {
	// u2 matches u1 exactly, u3 disagrees. Both like m3, so the m3 score
	// is the similarity-weighted average of their 5 and 4.
	userRatings := []Rating{
		{UserID: "u1", ItemID: "m1", Value: 5},
		{UserID: "u1", ItemID: "m2", Value: 1},
	}
	allRatings := []Rating{
		{UserID: "u1", ItemID: "m1", Value: 5},
		{UserID: "u1", ItemID: "m2", Value: 1},
		{UserID: "u2", ItemID: "m1", Value: 5},
		{UserID: "u2", ItemID: "m2", Value: 1},
		{UserID: "u2", ItemID: "m3", Value: 5},
		{UserID: "u3", ItemID: "m1", Value: 4},
		{UserID: "u3", ItemID: "m2", Value: 2},
		{UserID: "u3", ItemID: "m3", Value: 4},
	}
	candidates := []Item{{ID: "m3"}}

	scorer := NewCollaborativeScorer(CollaborativeConfig{})

	got := scorer.RankForUser(userRatings, allRatings, candidates, 10)
	if len(got) != 1 {
		t.Fatalf("RankForUser() returned %d results, want 1", len(got))
	}

	simU2 := overlapSimilarity(
		map[string]float64{"m1": 5, "m2": 1},
		map[string]float64{"m1": 5, "m2": 1},
	)
	simU3 := overlapSimilarity(
		map[string]float64{"m1": 5, "m2": 1},
		map[string]float64{"m1": 4, "m2": 2},
	)
	want := (5*simU2 + 4*simU3) / 2

	if math.Abs(got[0].Score-want) > floatTolerance {
		t.Errorf("score = %v, want %v", got[0].Score, want)
	}
	if len(got[0].Reasons) == 0 || got[0].Reasons[0] != "Recommended by similar users" {
		t.Errorf("reasons = %v, want leading %q", got[0].Reasons, "Recommended by similar users")
	}
}

func TestCollaborativeScorer_NeighborCap(t *testing.T) {
	userRatings := []Rating{
		{UserID: "u1", ItemID: "m1", Value: 5},
	}

	// Three perfectly similar users, but only the two most similar may
	// contribute.
	allRatings := []Rating{
		{UserID: "u1", ItemID: "m1", Value: 5},
		{UserID: "u2", ItemID: "m1", Value: 5},
		{UserID: "u2", ItemID: "m2", Value: 5},
		{UserID: "u3", ItemID: "m1", Value: 5},
		{UserID: "u3", ItemID: "m3", Value: 5},
		{UserID: "u4", ItemID: "m1", Value: 5},
		{UserID: "u4", ItemID: "m4", Value: 5},
	}
	candidates := []Item{{ID: "m2"}, {ID: "m3"}, {ID: "m4"}}

	scorer := NewCollaborativeScorer(CollaborativeConfig{MaxNeighbors: 2, LikeThreshold: 4})

	got := scorer.RankForUser(userRatings, allRatings, candidates, 10)
	if len(got) != 2 {
		t.Fatalf("RankForUser() with 2 neighbors returned %d items, want 2", len(got))
	}

	// Ties broken by sorted user ID, so u2 and u3 win.
	gotIDs := map[string]bool{}
	for _, rec := range got {
		gotIDs[rec.Item.ID] = true
	}
	if !gotIDs["m2"] || !gotIDs["m3"] {
		t.Errorf("got items %v, want m2 and m3", gotIDs)
	}
}

func TestOverlapSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a    map[string]float64
		b    map[string]float64
		want float64
	}{
		{
			name: "identical overlapping histories",
			a:    map[string]float64{"m1": 5, "m2": 3},
			b:    map[string]float64{"m1": 5, "m2": 3, "m3": 1},
			want: 1,
		},
		{
			name: "no overlap",
			a:    map[string]float64{"m1": 5},
			b:    map[string]float64{"m2": 5},
			want: 0,
		},
		{
			name: "proportional ratings are fully similar",
			a:    map[string]float64{"m1": 2, "m2": 4},
			b:    map[string]float64{"m1": 1, "m2": 2},
			want: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := overlapSimilarity(tt.a, tt.b)
			if math.Abs(got-tt.want) > floatTolerance {
				t.Errorf("overlapSimilarity() = %v, want %v", got, tt.want)
			}
		})
	}
}
