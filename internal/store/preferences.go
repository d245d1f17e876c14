// Kinoscope - Movie Discovery and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kinoscope

package store

import (
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"

	"github.com/tomtom215/kinoscope/internal/recommend"
)

// storedPreferences is the persisted shape of a user's stated tastes.
// The rating history lives under its own keys and is joined at read time.
type storedPreferences struct {
	UserID         string   `json:"user_id"`
	FavoriteGenres []string `json:"favorite_genres"`
	FavoriteMoods  []string `json:"favorite_moods"`
}

// PutPreferences replaces a user's stated preferences.
func (s *Store) PutPreferences(userID string, favoriteGenres, favoriteMoods []string) error {
	prefs := storedPreferences{
		UserID:         userID,
		FavoriteGenres: favoriteGenres,
		FavoriteMoods:  favoriteMoods,
	}

	data, err := json.Marshal(&prefs)
	if err != nil {
		return fmt.Errorf("marshal preferences: %w", err)
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(prefKeyPrefix+userID), data)
	})
}

// GetPreferences returns a user's full preference profile: stated
// favorites joined with their rating history. A user with no stored
// record and no ratings yields a zero profile, not an error, since an
// unknown user is just a user with no history yet.
func (s *Store) GetPreferences(userID string) (recommend.UserPreferences, error) {
	prefs := recommend.UserPreferences{UserID: userID}

	err := s.db.View(func(txn *badger.Txn) error {
		entry, err := txn.Get([]byte(prefKeyPrefix + userID))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("get preferences: %w", err)
		}

		var stored storedPreferences
		if err := entry.Value(func(val []byte) error {
			return json.Unmarshal(val, &stored)
		}); err != nil {
			return fmt.Errorf("unmarshal preferences: %w", err)
		}

		prefs.FavoriteGenres = stored.FavoriteGenres
		prefs.FavoriteMoods = stored.FavoriteMoods
		return nil
	})
	if err != nil {
		return recommend.UserPreferences{}, err
	}

	ratings, err := s.ListRatingsByUser(userID)
	if err != nil {
		return recommend.UserPreferences{}, err
	}
	prefs.Ratings = ratings

	return prefs, nil
}
