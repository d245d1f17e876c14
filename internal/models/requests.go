// Kinoscope - Movie Discovery and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kinoscope

package models

// ItemRequest is the payload for creating or updating a catalog item.
// The ID is taken from the URL on update and generated on create.
type ItemRequest struct {
	Title         string   `json:"title" validate:"required,min=1,max=500"`
	Year          *int     `json:"year,omitempty" validate:"omitempty,min=1870,max=2100"`
	AverageRating *float64 `json:"average_rating,omitempty" validate:"omitempty,min=0,max=5"`
	Director      *string  `json:"director,omitempty" validate:"omitempty,max=200"`
	Genres        []string `json:"genres" validate:"max=20,dive,min=1,max=100"`
	Moods         []string `json:"moods" validate:"max=20,dive,min=1,max=100"`
	Tags          []string `json:"tags" validate:"max=50,dive,min=1,max=100"`
}

// RatingRequest is the payload for submitting a rating. One rating per
// (user, item) pair; resubmitting replaces the previous value.
type RatingRequest struct {
	UserID string `json:"user_id" validate:"required,min=1,max=200"`
	ItemID string `json:"item_id" validate:"required,min=1,max=200"`
	Value  int    `json:"value" validate:"required,min=1,max=5"`
}

// PreferencesRequest is the payload for replacing a user's stated
// preferences. The rating history is managed through the ratings
// endpoint, not here.
type PreferencesRequest struct {
	FavoriteGenres []string `json:"favorite_genres" validate:"max=20,dive,min=1,max=100"`
	FavoriteMoods  []string `json:"favorite_moods" validate:"max=20,dive,min=1,max=100"`
}
