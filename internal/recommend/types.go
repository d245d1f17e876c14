// Kinoscope - Movie Discovery and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kinoscope

package recommend

import "time"

// Item represents a movie with the metadata the engine scores on.
// The engine treats items as immutable; it never modifies a caller's copy.
type Item struct {
	// ID is the unique catalog identifier.
	ID string `json:"id"`

	// Title is the display title.
	Title string `json:"title"`

	// Year is the release year. Nil when unknown; vectorization
	// substitutes a neutral value rather than penalizing the item.
	Year *int `json:"year,omitempty"`

	// AverageRating is the mean user rating on a 0-5 scale. Nil when the
	// item has never been rated.
	AverageRating *float64 `json:"average_rating,omitempty"`

	// Director is the credited director, if recorded.
	Director *string `json:"director,omitempty"`

	// Genres is the set of genre labels (e.g. "Drama", "Sci-Fi").
	Genres []string `json:"genres"`

	// Moods is the set of mood labels (e.g. "Uplifting", "Tense").
	Moods []string `json:"moods"`

	// Tags is the set of free-form tags.
	Tags []string `json:"tags"`
}

// Rating is one user's opinion of one item. The (UserID, ItemID) pair is
// unique per combination.
type Rating struct {
	// UserID identifies the rating user.
	UserID string `json:"user_id"`

	// ItemID is the rated item's catalog identifier.
	ItemID string `json:"item_id"`

	// Value is the star rating, an integer in [1, 5].
	Value int `json:"value"`

	// CreatedAt is when the rating was submitted.
	CreatedAt time.Time `json:"created_at"`
}

// UserPreferences captures a user's stated tastes and rating history.
type UserPreferences struct {
	// UserID identifies the user.
	UserID string `json:"user_id"`

	// FavoriteGenres is the user's stated favorite genres.
	FavoriteGenres []string `json:"favorite_genres"`

	// FavoriteMoods is the user's stated favorite moods.
	FavoriteMoods []string `json:"favorite_moods"`

	// Ratings is the user's own rating history. May be empty.
	Ratings []Rating `json:"ratings"`
}

// Filter narrows the candidate set before scoring. All fields are
// optional; a zero field leaves that dimension unconstrained. List
// constraints use ANY semantics: an item matches if it carries at least
// one of the listed values.
type Filter struct {
	// Genres restricts candidates to items with any listed genre.
	Genres []string `json:"genres,omitempty"`

	// Moods restricts candidates to items with any listed mood.
	Moods []string `json:"moods,omitempty"`

	// Tags restricts candidates to items with any listed tag.
	Tags []string `json:"tags,omitempty"`

	// MinRating requires an item's average rating to exist and be at
	// least this value. Unrated items fail the constraint.
	MinRating *float64 `json:"min_rating,omitempty"`

	// YearMin requires an item's year to exist and be >= this value.
	YearMin *int `json:"year_min,omitempty"`

	// YearMax requires an item's year to exist and be <= this value.
	YearMax *int `json:"year_max,omitempty"`

	// SimilarToItemID, when set to a known item, switches the engine to
	// pure content similarity against that item, skipping the hybrid
	// pipeline. Empty means unset.
	SimilarToItemID string `json:"similar_to_item_id,omitempty"`
}

// Recommendation is one ranked result. Score is algorithm-relative and
// not bounded to a fixed range; Reasons explain the score for display
// and carry no ranking weight.
type Recommendation struct {
	// Item is the recommended item.
	Item Item `json:"item"`

	// Score is the recommendation score. Always finite, higher is better.
	Score float64 `json:"score"`

	// Reasons is an ordered, deduplicated list of human-readable
	// explanations. An empty list is legal.
	Reasons []string `json:"reasons"`
}

// Vocabulary fixes the meaning of feature vector slots for one scoring
// pass. It is derived from the candidate set at call time and never
// persisted, since slot indices depend on exactly which items are present.
type Vocabulary struct {
	// Genres is the sorted, deduplicated union of candidate genres.
	Genres []string `json:"genres"`

	// Moods is the sorted, deduplicated union of candidate moods.
	Moods []string `json:"moods"`

	// Tags is the sorted, deduplicated union of candidate tags.
	Tags []string `json:"tags"`
}

// Size returns the total feature vector length for this vocabulary:
// one slot per genre, mood and tag, plus the year and rating slots.
func (v Vocabulary) Size() int {
	return len(v.Genres) + len(v.Moods) + len(v.Tags) + 2
}
