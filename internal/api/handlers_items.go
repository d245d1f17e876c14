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

// ItemsResponse is the payload for the catalog listing endpoint.
type ItemsResponse struct {
	Items   []recommend.Item       `json:"items"`
	Count   int                    `json:"count"`
	Summary *models.CatalogSummary `json:"summary,omitempty"`
}

func itemFromRequest(id string, req *models.ItemRequest) recommend.Item {
	return recommend.Item{
		ID:            id,
		Title:         req.Title,
		Year:          req.Year,
		AverageRating: req.AverageRating,
		Director:      req.Director,
		Genres:        req.Genres,
		Moods:         req.Moods,
		Tags:          req.Tags,
	}
}

// ListItems returns the full catalog sorted by item ID.
//
// Method: GET
// Path: /api/v1/items
func (h *Handler) ListItems(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	items, err := h.store.ListItems()
	if err != nil {
		respondError(w, http.StatusInternalServerError, models.ErrCodeStorage, "Failed to load catalog", err)
		return
	}

	resp := ItemsResponse{Items: items, Count: len(items)}
	if r.URL.Query().Get("include_summary") == "1" {
		ratings, err := h.store.ListRatings()
		if err != nil {
			respondError(w, http.StatusInternalServerError, models.ErrCodeStorage, "Failed to load ratings", err)
			return
		}
		summary := buildCatalogSummary(items, ratings)
		resp.Summary = &summary
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   resp,
		Metadata: models.Metadata{
			Timestamp:   time.Now(),
			QueryTimeMS: time.Since(start).Milliseconds(),
		},
	})
}

// GetItem returns a single catalog item.
//
// Method: GET
// Path: /api/v1/items/{itemID}
func (h *Handler) GetItem(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	itemID := r.PathValue("itemID")
	item, err := h.store.GetItem(itemID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			respondError(w, http.StatusNotFound, models.ErrCodeNotFound, "Item not found", nil)
			return
		}
		respondError(w, http.StatusInternalServerError, models.ErrCodeStorage, "Failed to load item", err)
		return
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   item,
		Metadata: models.Metadata{
			Timestamp:   time.Now(),
			QueryTimeMS: time.Since(start).Milliseconds(),
		},
	})
}

// CreateItem adds a new item to the catalog and returns it with its
// generated ID.
//
// Method: POST
// Path: /api/v1/items
func (h *Handler) CreateItem(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req models.ItemRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	item := itemFromRequest("", &req)
	if err := h.store.CreateItem(&item); err != nil {
		metrics.RecordStoreOperation("create_item", "error")
		respondError(w, http.StatusInternalServerError, models.ErrCodeStorage, "Failed to store item", err)
		return
	}
	metrics.RecordStoreOperation("create_item", "success")
	logging.Info().Str("item_id", item.ID).Str("title", sanitizeLogValue(item.Title)).Msg("Catalog item created")

	respondJSON(w, http.StatusCreated, &models.APIResponse{
		Status: "success",
		Data:   item,
		Metadata: models.Metadata{
			Timestamp:   time.Now(),
			QueryTimeMS: time.Since(start).Milliseconds(),
		},
	})
}

// UpdateItem replaces an existing catalog item.
//
// Method: PUT
// Path: /api/v1/items/{itemID}
func (h *Handler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	itemID := r.PathValue("itemID")
	if _, err := h.store.GetItem(itemID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			respondError(w, http.StatusNotFound, models.ErrCodeNotFound, "Item not found", nil)
			return
		}
		respondError(w, http.StatusInternalServerError, models.ErrCodeStorage, "Failed to load item", err)
		return
	}

	var req models.ItemRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	item := itemFromRequest(itemID, &req)
	if err := h.store.PutItem(item); err != nil {
		metrics.RecordStoreOperation("update_item", "error")
		respondError(w, http.StatusInternalServerError, models.ErrCodeStorage, "Failed to store item", err)
		return
	}
	metrics.RecordStoreOperation("update_item", "success")

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   item,
		Metadata: models.Metadata{
			Timestamp:   time.Now(),
			QueryTimeMS: time.Since(start).Milliseconds(),
		},
	})
}

// DeleteItem removes a catalog item and its ratings.
//
// Method: DELETE
// Path: /api/v1/items/{itemID}
func (h *Handler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	itemID := r.PathValue("itemID")
	if err := h.store.DeleteItem(itemID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			respondError(w, http.StatusNotFound, models.ErrCodeNotFound, "Item not found", nil)
			return
		}
		metrics.RecordStoreOperation("delete_item", "error")
		respondError(w, http.StatusInternalServerError, models.ErrCodeStorage, "Failed to delete item", err)
		return
	}
	metrics.RecordStoreOperation("delete_item", "success")
	logging.Info().Str("item_id", sanitizeLogValue(itemID)).Msg("Catalog item deleted")

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   map[string]string{"deleted": itemID},
		Metadata: models.Metadata{
			Timestamp:   time.Now(),
			QueryTimeMS: time.Since(start).Milliseconds(),
		},
	})
}
