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
	"github.com/tomtom215/kinoscope/internal/recommend"
)

// RecommendationsResponse is the payload for recommendation endpoints.
type RecommendationsResponse struct {
	UserID          string                     `json:"user_id,omitempty"`
	Recommendations []recommend.Recommendation `json:"recommendations"`
	Summary         *models.CatalogSummary     `json:"summary,omitempty"`
}

// parseFilter extracts the candidate filter from query parameters.
func parseFilter(r *http.Request) (*recommend.Filter, error) {
	q := r.URL.Query()

	minRating, err := getOptionalFloat(r, "min_rating")
	if err != nil {
		return nil, err
	}
	yearMin, err := getOptionalInt(r, "year_min")
	if err != nil {
		return nil, err
	}
	yearMax, err := getOptionalInt(r, "year_max")
	if err != nil {
		return nil, err
	}

	filter := &recommend.Filter{
		Genres:    parseCommaSeparated(q.Get("genres")),
		Moods:     parseCommaSeparated(q.Get("moods")),
		Tags:      parseCommaSeparated(q.Get("tags")),
		MinRating: minRating,
		YearMin:   yearMin,
		YearMax:   yearMax,
	}
	return filter, nil
}

// loadCorpus fetches the full catalog and rating log the engine scores over.
func (h *Handler) loadCorpus(w http.ResponseWriter) ([]recommend.Item, []recommend.Rating, bool) {
	items, err := h.store.ListItems()
	if err != nil {
		respondError(w, http.StatusInternalServerError, models.ErrCodeStorage, "Failed to load catalog", err)
		return nil, nil, false
	}
	ratings, err := h.store.ListRatings()
	if err != nil {
		respondError(w, http.StatusInternalServerError, models.ErrCodeStorage, "Failed to load ratings", err)
		return nil, nil, false
	}
	return items, ratings, true
}

// RecommendationsForUser returns the personalized hybrid feed for a user.
//
// Method: GET
// Path: /api/v1/recommendations/user/{userID}
//
// Query parameters: count (1-100, default 10), genres, moods, tags
// (comma-separated), min_rating, year_min, year_max, similar_to, and
// include_summary=1 to attach the catalog distribution summary.
//
// Users with no stored profile are served the popularity fallback, so
// an unknown userID is not an error.
func (h *Handler) RecommendationsForUser(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	userID := r.PathValue("userID")
	if userID == "" {
		respondError(w, http.StatusBadRequest, models.ErrCodeValidation, "userID is required", nil)
		return
	}

	count, err := getIntParam(r, "count", 10, 1, 100)
	if err != nil {
		respondError(w, http.StatusBadRequest, models.ErrCodeValidation, err.Error(), nil)
		return
	}
	filter, err := parseFilter(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, models.ErrCodeValidation, err.Error(), nil)
		return
	}
	filter.SimilarToItemID = r.URL.Query().Get("similar_to")

	items, ratings, ok := h.loadCorpus(w)
	if !ok {
		return
	}

	prefs, err := h.store.GetPreferences(userID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, models.ErrCodeStorage, "Failed to load preferences", err)
		return
	}

	recs := h.engine.Recommend(items, ratings, &prefs, filter, count)
	metrics.RecordRecommendation("personalized", len(items), time.Since(start))

	resp := RecommendationsResponse{
		UserID:          userID,
		Recommendations: recs,
	}
	if r.URL.Query().Get("include_summary") == "1" {
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

// SimilarItems returns items ranked by content similarity to one item.
//
// Method: GET
// Path: /api/v1/recommendations/similar/{itemID}
//
// Unlike the similar_to query parameter, an unknown itemID here is a
// 404 rather than a silent fallback.
func (h *Handler) SimilarItems(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	itemID := r.PathValue("itemID")
	if itemID == "" {
		respondError(w, http.StatusBadRequest, models.ErrCodeValidation, "itemID is required", nil)
		return
	}

	count, err := getIntParam(r, "count", 10, 1, 100)
	if err != nil {
		respondError(w, http.StatusBadRequest, models.ErrCodeValidation, err.Error(), nil)
		return
	}
	filter, err := parseFilter(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, models.ErrCodeValidation, err.Error(), nil)
		return
	}

	if _, err := h.store.GetItem(itemID); err != nil {
		respondError(w, http.StatusNotFound, models.ErrCodeNotFound, "Item not found", nil)
		return
	}

	items, ratings, ok := h.loadCorpus(w)
	if !ok {
		return
	}

	filter.SimilarToItemID = itemID
	recs := h.engine.Recommend(items, ratings, nil, filter, count)
	metrics.RecordRecommendation("similar", len(items), time.Since(start))

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   RecommendationsResponse{Recommendations: recs},
		Metadata: models.Metadata{
			Timestamp:   time.Now(),
			QueryTimeMS: time.Since(start).Milliseconds(),
		},
	})
}

// TrendingItems returns items ranked by recent rating activity.
//
// Method: GET
// Path: /api/v1/recommendations/trending
func (h *Handler) TrendingItems(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	count, err := getIntParam(r, "count", 10, 1, 100)
	if err != nil {
		respondError(w, http.StatusBadRequest, models.ErrCodeValidation, err.Error(), nil)
		return
	}

	items, ratings, ok := h.loadCorpus(w)
	if !ok {
		return
	}

	recs := h.engine.Trending(items, ratings, count)
	metrics.RecordRecommendation("trending", len(items), time.Since(start))

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   RecommendationsResponse{Recommendations: recs},
		Metadata: models.Metadata{
			Timestamp:   time.Now(),
			QueryTimeMS: time.Since(start).Milliseconds(),
		},
	})
}

// MetaGenres returns the catalog's genre vocabulary.
//
// Method: GET
// Path: /api/v1/meta/genres
func (h *Handler) MetaGenres(w http.ResponseWriter, r *http.Request) {
	h.respondVocabulary(w, recommend.AllGenres)
}

// MetaMoods returns the catalog's mood vocabulary.
//
// Method: GET
// Path: /api/v1/meta/moods
func (h *Handler) MetaMoods(w http.ResponseWriter, r *http.Request) {
	h.respondVocabulary(w, recommend.AllMoods)
}

// MetaTags returns the catalog's tag vocabulary.
//
// Method: GET
// Path: /api/v1/meta/tags
func (h *Handler) MetaTags(w http.ResponseWriter, r *http.Request) {
	h.respondVocabulary(w, recommend.AllTags)
}

func (h *Handler) respondVocabulary(w http.ResponseWriter, extract func([]recommend.Item) []string) {
	start := time.Now()

	items, err := h.store.ListItems()
	if err != nil {
		respondError(w, http.StatusInternalServerError, models.ErrCodeStorage, "Failed to load catalog", err)
		return
	}

	values := extract(items)
	if values == nil {
		values = []string{}
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   map[string][]string{"values": values},
		Metadata: models.Metadata{
			Timestamp:   time.Now(),
			QueryTimeMS: time.Since(start).Milliseconds(),
		},
	})
}
