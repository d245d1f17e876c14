// Kinoscope - Movie Discovery and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kinoscope

// Package models defines the wire-level request and response types
// shared by the HTTP API and its clients.
//
// The recommendation domain types (Item, Rating, Recommendation) live in
// internal/recommend; this package only wraps them for transport.
package models
