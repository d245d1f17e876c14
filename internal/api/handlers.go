// Kinoscope - Movie Discovery and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kinoscope

package api

import (
	"time"

	"github.com/tomtom215/kinoscope/internal/recommend"
	"github.com/tomtom215/kinoscope/internal/store"
)

// Handler contains dependencies for the API handlers.
type Handler struct {
	store     *store.Store
	engine    *recommend.Engine
	startTime time.Time
}

// NewHandler creates an API handler backed by the given store and
// recommendation engine.
func NewHandler(st *store.Store, engine *recommend.Engine) *Handler {
	return &Handler{
		store:     st,
		engine:    engine,
		startTime: time.Now(),
	}
}
