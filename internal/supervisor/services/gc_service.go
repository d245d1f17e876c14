// Kinoscope - Movie Discovery and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kinoscope

package services

import (
	"context"
	"time"
)

// GarbageCollector matches the store's value-log GC loop, allowing
// tests to substitute a mock.
type GarbageCollector interface {
	RunGC(ctx context.Context, interval time.Duration)
}

// StoreGCService runs the badger value-log garbage collection loop as
// a supervised service.
type StoreGCService struct {
	gc       GarbageCollector
	interval time.Duration
	name     string
}

// NewStoreGCService creates a GC service wrapper. A non-positive
// interval falls back to ten minutes, badger's recommended cadence.
func NewStoreGCService(gc GarbageCollector, interval time.Duration) *StoreGCService {
	if interval <= 0 {
		interval = 10 * time.Minute
	}
	return &StoreGCService{
		gc:       gc,
		interval: interval,
		name:     "store-gc",
	}
}

// Serve implements suture.Service. Blocks until the context is
// canceled; the loop itself never fails.
func (s *StoreGCService) Serve(ctx context.Context) error {
	s.gc.RunGC(ctx, s.interval)
	return ctx.Err()
}

// String implements fmt.Stringer; suture uses it in log messages.
func (s *StoreGCService) String() string {
	return s.name
}
