// Kinoscope - Movie Discovery and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kinoscope

package api

import (
	"fmt"
	"hash/fnv"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/kinoscope/internal/logging"
	"github.com/tomtom215/kinoscope/internal/models"
	"github.com/tomtom215/kinoscope/internal/validation"
)

// sanitizeLogValue removes control characters from user-supplied values
// before they reach the log output, preventing log injection.
func sanitizeLogValue(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r < 32 || r == 127 {
			b.WriteString(fmt.Sprintf("\\x%02x", r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// generateETag computes a weak ETag over the response body using FNV-1a.
func generateETag(body []byte) string {
	h := fnv.New64a()
	_, _ = h.Write(body)
	return fmt.Sprintf(`W/"%x"`, h.Sum64())
}

// respondJSON writes a JSON response with caching headers. GET responses
// carry a weak ETag so clients can revalidate cheaply.
func respondJSON(w http.ResponseWriter, statusCode int, payload *models.APIResponse) {
	body, err := json.Marshal(payload)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to marshal API response")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"status":"error","error":{"code":"INTERNAL_ERROR","message":"response encoding failed"}}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if statusCode == http.StatusOK {
		w.Header().Set("Cache-Control", "public, max-age=60")
		w.Header().Set("Vary", "Accept-Encoding")
		w.Header().Set("ETag", generateETag(body))
	}
	w.WriteHeader(statusCode)
	if _, err := w.Write(body); err != nil {
		logging.Error().Err(err).Msg("Failed to write API response")
	}
}

// respondError writes a standardized error response. The underlying
// error is logged but never exposed to the client.
func respondError(w http.ResponseWriter, statusCode int, code, message string, err error) {
	if err != nil {
		logging.Error().
			Err(err).
			Str("code", code).
			Int("status", statusCode).
			Msg(sanitizeLogValue(message))
	}

	respondJSON(w, statusCode, &models.APIResponse{
		Status: "error",
		Error: &models.APIError{
			Code:    code,
			Message: message,
		},
		Metadata: models.Metadata{Timestamp: time.Now()},
	})
}

// decodeAndValidate decodes the request body into dst and runs struct
// validation. On failure it writes the error response and returns false.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		respondError(w, http.StatusBadRequest, models.ErrCodeValidation, "Invalid JSON body", err)
		return false
	}

	if verr := validation.ValidateStruct(dst); verr != nil {
		apiErr := verr.ToAPIError()
		respondJSON(w, http.StatusBadRequest, &models.APIResponse{
			Status: "error",
			Error: &models.APIError{
				Code:    apiErr.Code,
				Message: apiErr.Message,
				Details: apiErr.Details,
			},
			Metadata: models.Metadata{Timestamp: time.Now()},
		})
		return false
	}
	return true
}

// getIntParam parses an integer query parameter with a default and
// inclusive bounds. A missing parameter yields the default; a malformed
// or out-of-range value is an error.
func getIntParam(r *http.Request, name string, def, minVal, maxVal int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer", name)
	}
	if v < minVal || v > maxVal {
		return 0, fmt.Errorf("%s must be between %d and %d", name, minVal, maxVal)
	}
	return v, nil
}

// getOptionalInt parses an integer query parameter into a pointer,
// leaving it nil when absent.
func getOptionalInt(r *http.Request, name string) (*int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("%s must be an integer", name)
	}
	return &v, nil
}

// getOptionalFloat parses a float query parameter into a pointer,
// leaving it nil when absent.
func getOptionalFloat(r *http.Request, name string) (*float64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("%s must be a number", name)
	}
	return &v, nil
}

// parseCommaSeparated splits a comma-separated query value into a
// trimmed slice, dropping empty entries. Returns nil for an empty value.
func parseCommaSeparated(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	if len(result) == 0 {
		return nil
	}
	return result
}
