// Kinoscope - Movie Discovery and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kinoscope

// Package recommend implements the hybrid recommendation engine for Kinoscope.
//
// The engine combines three scoring sources:
//
//   - Content-based: item attribute similarity over a shared feature
//     vocabulary (genres, moods, tags, year, average rating)
//   - Collaborative: rating-pattern similarity between users
//   - Popularity: average-rating fallback when the other sources cannot
//     fill the requested count
//
// All inputs (catalog, rating log, preferences, filter) are supplied fully
// materialized by the caller on each call; the engine performs no I/O,
// keeps no state between calls, and never mutates its arguments. Every
// entry point is a bounded synchronous computation and is safe to invoke
// concurrently.
//
// # Error Model
//
// The engine never returns errors for malformed-but-well-typed input; it
// degrades to defined defaults instead. Mismatched vectors and
// zero-magnitude vectors score 0, unknown item IDs are silently skipped,
// empty candidate sets produce empty results, and missing optional item
// fields receive neutral substitutions during vectorization.
package recommend
