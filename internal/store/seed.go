// Kinoscope - Movie Discovery and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kinoscope

package store

import (
	"fmt"
	"os"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/tomtom215/kinoscope/internal/recommend"
)

// seedFile is the JSON shape of a seed catalog.
type seedFile struct {
	Items   []recommend.Item   `json:"items"`
	Ratings []recommend.Rating `json:"ratings"`
}

// Seed loads a JSON catalog file into the store. It only runs against an
// empty store; a store that already has items is left untouched so
// restarts never duplicate the catalog. Seed items without IDs get one
// generated.
func (s *Store) Seed(path string) (int, error) {
	count, err := s.CountItems()
	if err != nil {
		return 0, err
	}
	if count > 0 {
		s.logger.Debug().Int("items", count).Msg("store not empty, skipping seed")
		return 0, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read seed file: %w", err)
	}

	var seed seedFile
	if err := json.Unmarshal(data, &seed); err != nil {
		return 0, fmt.Errorf("parse seed file: %w", err)
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		for i := range seed.Items {
			if seed.Items[i].ID == "" {
				seed.Items[i].ID = uuid.NewString()
			}
			data, err := json.Marshal(&seed.Items[i])
			if err != nil {
				return fmt.Errorf("marshal seed item: %w", err)
			}
			if err := txn.Set([]byte(itemKeyPrefix+seed.Items[i].ID), data); err != nil {
				return fmt.Errorf("set seed item: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	// Ratings go through PutRating so item averages stay consistent.
	for i := range seed.Ratings {
		if err := s.PutRating(seed.Ratings[i]); err != nil {
			return 0, fmt.Errorf("seed rating %d: %w", i, err)
		}
	}

	s.logger.Info().
		Int("items", len(seed.Items)).
		Int("ratings", len(seed.Ratings)).
		Str("path", path).
		Msg("seeded catalog")

	return len(seed.Items), nil
}
