// Kinoscope - Movie Discovery and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kinoscope

package recommend

import (
	"strings"
	"testing"
)

func TestContentScorer_RankSimilarTo(t *testing.T) {
	target := Item{
		ID:     "a",
		Title:  "A",
		Year:   intPtr(2000),
		Genres: []string{"Drama"},
	}
	closeMatch := Item{
		ID:     "b",
		Title:  "B",
		Year:   intPtr(2002),
		Genres: []string{"Drama"},
	}
	farMatch := Item{
		ID:     "c",
		Title:  "C",
		Year:   intPtr(1950),
		Genres: []string{"Comedy"},
	}

	tests := []struct {
		name       string
		candidates []Item
		count      int
		wantIDs    []string
	}{
		{
			name:       "shared genre and era ranks first",
			candidates: []Item{target, farMatch, closeMatch},
			count:      10,
			wantIDs:    []string{"b", "c"},
		},
		{
			name:       "target excluded from results",
			candidates: []Item{target},
			count:      10,
			wantIDs:    []string{},
		},
		{
			name:       "count truncates",
			candidates: []Item{target, farMatch, closeMatch},
			count:      1,
			wantIDs:    []string{"b"},
		},
		{
			name:       "zero count returns nothing",
			candidates: []Item{target, closeMatch},
			count:      0,
			wantIDs:    []string{},
		},
		{
			name:       "no candidates",
			candidates: nil,
			count:      10,
			wantIDs:    []string{},
		},
	}

	scorer := NewContentScorer(DefaultConfig().Content)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := scorer.RankSimilarTo(target, tt.candidates, tt.count)

			if len(got) != len(tt.wantIDs) {
				t.Fatalf("RankSimilarTo() returned %d results, want %d", len(got), len(tt.wantIDs))
			}
			for i, rec := range got {
				if rec.Item.ID != tt.wantIDs[i] {
					t.Errorf("result[%d].Item.ID = %q, want %q", i, rec.Item.ID, tt.wantIDs[i])
				}
			}
		})
	}
}

func TestContentScorer_SimilarityReasons(t *testing.T) {
	director := "Nolan"
	otherDirector := "Villeneuve"

	target := Item{
		ID:       "a",
		Year:     intPtr(2010),
		Director: &director,
		Genres:   []string{"Sci-Fi", "Thriller"},
		Moods:    []string{"Tense"},
	}

	tests := []struct {
		name        string
		cand        Item
		wantReasons []string
	}{
		{
			name: "all reasons fire",
			cand: Item{
				ID:       "b",
				Year:     intPtr(2012),
				Director: &director,
				Genres:   []string{"Sci-Fi"},
				Moods:    []string{"Tense"},
			},
			wantReasons: []string{
				"Shared genres: Sci-Fi",
				"Shared moods: Tense",
				"Same director: Nolan",
				"Similar era",
			},
		},
		{
			name: "era window boundary is inclusive",
			cand: Item{ID: "b", Year: intPtr(2015)},
			wantReasons: []string{
				"Similar era",
			},
		},
		{
			name:        "outside era window",
			cand:        Item{ID: "b", Year: intPtr(2016)},
			wantReasons: []string{},
		},
		{
			name:        "different director no reason",
			cand:        Item{ID: "b", Director: &otherDirector},
			wantReasons: []string{},
		},
		{
			name:        "nothing in common",
			cand:        Item{ID: "b", Genres: []string{"Romance"}},
			wantReasons: []string{},
		},
	}

	scorer := NewContentScorer(DefaultConfig().Content)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := scorer.similarityReasons(target, tt.cand)

			if len(got) != len(tt.wantReasons) {
				t.Fatalf("similarityReasons() = %v, want %v", got, tt.wantReasons)
			}
			for i := range got {
				if got[i] != tt.wantReasons[i] {
					t.Errorf("reason[%d] = %q, want %q", i, got[i], tt.wantReasons[i])
				}
			}
		})
	}
}

func TestContentScorer_RankByPreferences(t *testing.T) {
	prefs := UserPreferences{
		UserID:         "u1",
		FavoriteGenres: []string{"Drama"},
		FavoriteMoods:  []string{"Uplifting"},
	}

	match := Item{
		ID:            "match",
		AverageRating: floatPtr(4.8),
		Genres:        []string{"Drama"},
		Moods:         []string{"Uplifting"},
	}
	miss := Item{
		ID:     "miss",
		Genres: []string{"Horror"},
		Moods:  []string{"Bleak"},
	}

	scorer := NewContentScorer(DefaultConfig().Content)

	got := scorer.RankByPreferences(prefs, []Item{miss, match}, 10)
	if len(got) != 2 {
		t.Fatalf("RankByPreferences() returned %d results, want 2", len(got))
	}
	if got[0].Item.ID != "match" {
		t.Errorf("top result = %q, want %q", got[0].Item.ID, "match")
	}
	if got[0].Score <= got[1].Score {
		t.Errorf("matching item score %v not above mismatching %v", got[0].Score, got[1].Score)
	}

	reasons := strings.Join(got[0].Reasons, "; ")
	for _, want := range []string{"Matches favorite genres: Drama", "Matches favorite moods: Uplifting", "Highly rated (4.8)"} {
		if !strings.Contains(reasons, want) {
			t.Errorf("reasons %q missing %q", reasons, want)
		}
	}
}

func TestContentScorer_RankByPreferences_Empty(t *testing.T) {
	scorer := NewContentScorer(ContentConfig{})

	if got := scorer.RankByPreferences(UserPreferences{}, nil, 10); len(got) != 0 {
		t.Errorf("RankByPreferences() with no candidates = %v, want empty", got)
	}
	if got := scorer.RankByPreferences(UserPreferences{}, []Item{{ID: "1"}}, 0); len(got) != 0 {
		t.Errorf("RankByPreferences() with zero count = %v, want empty", got)
	}
}

func TestIntersect(t *testing.T) {
	tests := []struct {
		name string
		a    []string
		b    []string
		want []string
	}{
		{
			name: "keeps a's order",
			a:    []string{"z", "a", "m"},
			b:    []string{"m", "z"},
			want: []string{"z", "m"},
		},
		{
			name: "deduplicates",
			a:    []string{"x", "x"},
			b:    []string{"x"},
			want: []string{"x"},
		},
		{
			name: "disjoint",
			a:    []string{"a"},
			b:    []string{"b"},
			want: nil,
		},
		{
			name: "empty side",
			a:    nil,
			b:    []string{"a"},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := intersect(tt.a, tt.b)

			if len(got) != len(tt.want) {
				t.Fatalf("intersect() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("intersect()[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}
