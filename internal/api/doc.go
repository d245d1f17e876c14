// Kinoscope - Movie Discovery and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kinoscope

// Package api provides the HTTP surface of Kinoscope: the Chi router,
// middleware factories, and the request handlers for the catalog,
// rating, preference, and recommendation endpoints.
//
// All endpoints respond with the models.APIResponse envelope. Handlers
// are split across files by resource:
//   - handlers.go: Handler struct and constructor
//   - handlers_helpers.go: shared response and parsing helpers
//   - handlers_recommend.go: recommendation, similar, trending, meta
//   - handlers_items.go: catalog CRUD and summary
//   - handlers_ratings.go: rating submission
//   - handlers_preferences.go: user preference profiles
//   - handlers_health.go: liveness and readiness probes
package api
