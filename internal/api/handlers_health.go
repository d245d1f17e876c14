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

// HealthStatus is the payload for the health endpoint.
type HealthStatus struct {
	Status       string  `json:"status"`
	Version      string  `json:"version"`
	CatalogItems int     `json:"catalog_items"`
	Uptime       float64 `json:"uptime_seconds"`
}

// Version is the reported application version, overridable at build
// time with -ldflags "-X ...api.Version=v1.2.3".
var Version = "dev"

// Health reports process health and catalog size. The store round-trip
// doubles as a readiness check.
//
// Method: GET
// Path: /healthz
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	status := "healthy"
	count, err := h.store.CountItems()
	if err != nil {
		status = "degraded"
	} else {
		metrics.CatalogItems.Set(float64(count))
	}

	code := http.StatusOK
	if status != "healthy" {
		code = http.StatusServiceUnavailable
	}

	respondJSON(w, code, &models.APIResponse{
		Status: "success",
		Data: HealthStatus{
			Status:       status,
			Version:      Version,
			CatalogItems: count,
			Uptime:       time.Since(h.startTime).Seconds(),
		},
		Metadata: models.Metadata{Timestamp: time.Now()},
	})
}
