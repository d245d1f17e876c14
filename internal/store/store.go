// Kinoscope - Movie Discovery and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kinoscope

// Package store persists the movie catalog, ratings and user
// preferences in BadgerDB. Keys are namespaced by prefix:
//
//	item:<itemID>            -> recommend.Item (JSON)
//	rating:<userID>:<itemID> -> recommend.Rating (JSON)
//	pref:<userID>            -> stored preferences (JSON)
//
// One rating per (user, item) pair falls out of the key layout:
// resubmitting overwrites in place. The affected item's average rating
// is recomputed inside the same transaction.
package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/rs/zerolog"

	"github.com/tomtom215/kinoscope/internal/config"
)

// Key prefixes for BadgerDB storage.
const (
	itemKeyPrefix   = "item:"
	ratingKeyPrefix = "rating:"
	prefKeyPrefix   = "pref:"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("store: not found")

// Store is a BadgerDB-backed persistence layer. Safe for concurrent use.
type Store struct {
	db     *badger.DB
	logger zerolog.Logger
}

// Open opens (or creates) the store described by cfg.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func Open(cfg config.StoreConfig, logger zerolog.Logger) (*Store, error) {
	logger = logger.With().Str("component", "store").Logger()

	opts := badger.DefaultOptions(cfg.Path).
		WithInMemory(cfg.InMemory).
		WithLogger(badgerLogger{logger})
	if cfg.InMemory {
		opts.Dir = ""
		opts.ValueDir = ""
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger at %s: %w", cfg.Path, err)
	}

	return &Store{db: db, logger: logger}, nil
}

// Close flushes and closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// RunGC runs Badger value-log garbage collection on the given interval
// until ctx is cancelled. No-op for in-memory stores.
func (s *Store) RunGC(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			// ErrNoRewrite just means there was nothing to collect.
			if err := s.db.RunValueLogGC(0.5); err != nil && !errors.Is(err, badger.ErrNoRewrite) {
				s.logger.Warn().Err(err).Msg("value log GC failed")
			}
		}
	}
}

// badgerLogger adapts zerolog to badger.Logger.
type badgerLogger struct {
	l zerolog.Logger
}

func (b badgerLogger) Errorf(format string, args ...interface{}) {
	b.l.Error().Msgf(format, args...)
}

func (b badgerLogger) Warningf(format string, args ...interface{}) {
	b.l.Warn().Msgf(format, args...)
}

func (b badgerLogger) Infof(format string, args ...interface{}) {
	b.l.Debug().Msgf(format, args...)
}

func (b badgerLogger) Debugf(format string, args ...interface{}) {
	b.l.Debug().Msgf(format, args...)
}
