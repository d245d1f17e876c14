// Kinoscope - Movie Discovery and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kinoscope

package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/tomtom215/kinoscope/internal/logging"
	"github.com/tomtom215/kinoscope/internal/metrics"
	"github.com/tomtom215/kinoscope/internal/models"
	"github.com/tomtom215/kinoscope/internal/recommend"
	"github.com/tomtom215/kinoscope/internal/store"
)

// SubmitRating records a user's rating for an item. Resubmitting a
// rating for the same (user, item) pair replaces the previous value and
// recomputes the item's average.
//
// Method: POST
// Path: /api/v1/ratings
func (h *Handler) SubmitRating(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req models.RatingRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	rating := recommend.Rating{
		UserID:    req.UserID,
		ItemID:    req.ItemID,
		Value:     req.Value,
		CreatedAt: time.Now(),
	}
	if err := h.store.PutRating(rating); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			respondError(w, http.StatusNotFound, models.ErrCodeNotFound, "Item not found", nil)
			return
		}
		metrics.RecordStoreOperation("put_rating", "error")
		respondError(w, http.StatusInternalServerError, models.ErrCodeStorage, "Failed to store rating", err)
		return
	}
	metrics.RecordStoreOperation("put_rating", "success")
	metrics.RatingsSubmitted.Inc()
	logging.Debug().
		Str("user_id", sanitizeLogValue(req.UserID)).
		Str("item_id", sanitizeLogValue(req.ItemID)).
		Int("value", req.Value).
		Msg("Rating recorded")

	respondJSON(w, http.StatusCreated, &models.APIResponse{
		Status: "success",
		Data:   rating,
		Metadata: models.Metadata{
			Timestamp:   time.Now(),
			QueryTimeMS: time.Since(start).Milliseconds(),
		},
	})
}
