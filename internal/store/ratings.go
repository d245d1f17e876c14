// Kinoscope - Movie Discovery and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kinoscope

package store

import (
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"

	"github.com/tomtom215/kinoscope/internal/recommend"
)

// PutRating stores a rating, replacing any previous rating by the same
// user for the same item, and recomputes the item's average rating in
// the same transaction. Returns ErrNotFound when the rated item does
// not exist.
//
//nolint:gocritic // hugeParam: Rating passed by value for immutability
func (s *Store) PutRating(rating recommend.Rating) error {
	if rating.CreatedAt.IsZero() {
		rating.CreatedAt = time.Now()
	}

	data, err := json.Marshal(&rating)
	if err != nil {
		return fmt.Errorf("marshal rating: %w", err)
	}

	return s.db.Update(func(txn *badger.Txn) error {
		itemKey := []byte(itemKeyPrefix + rating.ItemID)
		entry, err := txn.Get(itemKey)
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("get item: %w", err)
		}

		var item recommend.Item
		if err := entry.Value(func(val []byte) error {
			return json.Unmarshal(val, &item)
		}); err != nil {
			return fmt.Errorf("unmarshal item: %w", err)
		}

		key := []byte(ratingKeyPrefix + rating.UserID + ":" + rating.ItemID)
		if err := txn.Set(key, data); err != nil {
			return fmt.Errorf("set rating: %w", err)
		}

		avg, err := averageForItem(txn, rating.ItemID, rating)
		if err != nil {
			return err
		}
		item.AverageRating = &avg

		itemData, err := json.Marshal(&item)
		if err != nil {
			return fmt.Errorf("marshal item: %w", err)
		}
		return txn.Set(itemKey, itemData)
	})
}

// averageForItem computes the mean rating value for an item within txn.
// Any stored rating by the pending rating's user is skipped and the
// pending value counted once instead, so replacements never double
// count.
//
//nolint:gocritic // hugeParam: Rating passed by value for immutability
func averageForItem(txn *badger.Txn, itemID string, pending recommend.Rating) (float64, error) {
	var sum float64
	var count int

	opts := badger.DefaultIteratorOptions
	opts.PrefetchValues = true
	it := txn.NewIterator(opts)
	defer it.Close()

	prefix := []byte(ratingKeyPrefix)
	for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
		var r recommend.Rating
		err := it.Item().Value(func(val []byte) error {
			return json.Unmarshal(val, &r)
		})
		if err != nil {
			return 0, fmt.Errorf("unmarshal rating: %w", err)
		}
		if r.ItemID != itemID {
			continue
		}
		if r.UserID == pending.UserID {
			// Superseded by the pending write.
			continue
		}
		sum += float64(r.Value)
		count++
	}

	sum += float64(pending.Value)
	count++

	return sum / float64(count), nil
}

// ListRatings returns every rating in the store.
func (s *Store) ListRatings() ([]recommend.Rating, error) {
	var ratings []recommend.Rating

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = true
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(ratingKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var r recommend.Rating
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &r)
			})
			if err != nil {
				return fmt.Errorf("unmarshal rating: %w", err)
			}
			ratings = append(ratings, r)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return ratings, nil
}

// ListRatingsByUser returns a user's rating history.
func (s *Store) ListRatingsByUser(userID string) ([]recommend.Rating, error) {
	var ratings []recommend.Rating

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = true
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(ratingKeyPrefix + userID + ":")
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var r recommend.Rating
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &r)
			})
			if err != nil {
				return fmt.Errorf("unmarshal rating: %w", err)
			}
			ratings = append(ratings, r)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return ratings, nil
}
