// Kinoscope - Movie Discovery and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kinoscope

package store

import (
	"errors"
	"fmt"
	"sort"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/tomtom215/kinoscope/internal/recommend"
)

// CreateItem stores a new catalog item, generating its ID.
func (s *Store) CreateItem(item *recommend.Item) error {
	item.ID = uuid.NewString()

	data, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("marshal item: %w", err)
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(itemKeyPrefix+item.ID), data)
	})
}

// PutItem stores an item under its existing ID, replacing any previous
// version. Returns ErrNotFound if the item does not exist.
//
//nolint:gocritic // hugeParam: Item passed by value for immutability
func (s *Store) PutItem(item recommend.Item) error {
	data, err := json.Marshal(&item)
	if err != nil {
		return fmt.Errorf("marshal item: %w", err)
	}

	return s.db.Update(func(txn *badger.Txn) error {
		key := []byte(itemKeyPrefix + item.ID)
		if _, err := txn.Get(key); errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound
		} else if err != nil {
			return fmt.Errorf("get item: %w", err)
		}
		return txn.Set(key, data)
	})
}

// GetItem retrieves an item by ID.
func (s *Store) GetItem(id string) (recommend.Item, error) {
	var item recommend.Item

	err := s.db.View(func(txn *badger.Txn) error {
		entry, err := txn.Get([]byte(itemKeyPrefix + id))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("get item: %w", err)
		}
		return entry.Value(func(val []byte) error {
			return json.Unmarshal(val, &item)
		})
	})

	return item, err
}

// DeleteItem removes an item and all its ratings.
func (s *Store) DeleteItem(id string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		key := []byte(itemKeyPrefix + id)
		if _, err := txn.Get(key); errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound
		} else if err != nil {
			return fmt.Errorf("get item: %w", err)
		}
		if err := txn.Delete(key); err != nil {
			return fmt.Errorf("delete item: %w", err)
		}

		// Ratings are keyed by user, so a full prefix scan is needed to
		// find the item's ratings.
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = true
		it := txn.NewIterator(opts)

		var staleKeys [][]byte
		prefix := []byte(ratingKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			entry := it.Item()

			var rating recommend.Rating
			err := entry.Value(func(val []byte) error {
				return json.Unmarshal(val, &rating)
			})
			if err != nil {
				continue
			}
			if rating.ItemID == id {
				staleKeys = append(staleKeys, entry.KeyCopy(nil))
			}
		}
		it.Close()

		for _, k := range staleKeys {
			if err := txn.Delete(k); err != nil && !errors.Is(err, badger.ErrKeyNotFound) {
				return fmt.Errorf("delete rating: %w", err)
			}
		}
		return nil
	})
}

// ListItems returns every catalog item, sorted by ID for deterministic
// output.
func (s *Store) ListItems() ([]recommend.Item, error) {
	var items []recommend.Item

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = true
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(itemKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var item recommend.Item
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &item)
			})
			if err != nil {
				return fmt.Errorf("unmarshal item: %w", err)
			}
			items = append(items, item)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

// CountItems returns the number of catalog items.
func (s *Store) CountItems() (int, error) {
	count := 0

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(itemKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			count++
		}
		return nil
	})

	return count, err
}
