// Kinoscope - Movie Discovery and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kinoscope

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/kinoscope/internal/metrics"
	"github.com/tomtom215/kinoscope/internal/models"
)

// GetPreferences returns a user's preference profile, including their
// rating history. Unknown users receive an empty profile, not a 404,
// since preferences are created lazily.
//
// Method: GET
// Path: /api/v1/users/{userID}/preferences
func (h *Handler) GetPreferences(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	userID := r.PathValue("userID")
	if userID == "" {
		respondError(w, http.StatusBadRequest, models.ErrCodeValidation, "userID is required", nil)
		return
	}

	prefs, err := h.store.GetPreferences(userID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, models.ErrCodeStorage, "Failed to load preferences", err)
		return
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   prefs,
		Metadata: models.Metadata{
			Timestamp:   time.Now(),
			QueryTimeMS: time.Since(start).Milliseconds(),
		},
	})
}

// PutPreferences replaces a user's stated favorite genres and moods.
//
// Method: PUT
// Path: /api/v1/users/{userID}/preferences
func (h *Handler) PutPreferences(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	userID := r.PathValue("userID")
	if userID == "" {
		respondError(w, http.StatusBadRequest, models.ErrCodeValidation, "userID is required", nil)
		return
	}

	var req models.PreferencesRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.store.PutPreferences(userID, req.FavoriteGenres, req.FavoriteMoods); err != nil {
		metrics.RecordStoreOperation("put_preferences", "error")
		respondError(w, http.StatusInternalServerError, models.ErrCodeStorage, "Failed to store preferences", err)
		return
	}
	metrics.RecordStoreOperation("put_preferences", "success")

	prefs, err := h.store.GetPreferences(userID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, models.ErrCodeStorage, "Failed to load preferences", err)
		return
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   prefs,
		Metadata: models.Metadata{
			Timestamp:   time.Now(),
			QueryTimeMS: time.Since(start).Milliseconds(),
		},
	})
}
