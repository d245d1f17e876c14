// Kinoscope - Movie Discovery and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kinoscope

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Router wires handlers and middleware into the Chi route tree.
type Router struct {
	handler    *Handler
	middleware *Middleware
}

// NewRouter creates a router from a handler and middleware factory.
// A nil middleware falls back to the secure defaults.
func NewRouter(handler *Handler, mw *Middleware) *Router {
	if mw == nil {
		mw = NewMiddleware(nil)
	}
	return &Router{handler: handler, middleware: mw}
}

// Setup builds the full route tree.
func (router *Router) Setup() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.middleware.CORS()) // CORS must be global to handle OPTIONS preflight

	// Probes and metrics stay outside the rate limiter so monitoring
	// never competes with API traffic.
	r.Get("/healthz", router.handler.Health)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(router.middleware.RateLimit())
		r.Use(PrometheusMetrics)
		r.Use(chiPathValue) // Bridge Chi URL params to r.PathValue()

		r.Route("/recommendations", func(r chi.Router) {
			r.Get("/user/{userID}", router.handler.RecommendationsForUser)
			r.Get("/similar/{itemID}", router.handler.SimilarItems)
			r.Get("/trending", router.handler.TrendingItems)
		})

		r.Route("/meta", func(r chi.Router) {
			r.Get("/genres", router.handler.MetaGenres)
			r.Get("/moods", router.handler.MetaMoods)
			r.Get("/tags", router.handler.MetaTags)
		})

		r.Route("/items", func(r chi.Router) {
			r.Get("/", router.handler.ListItems)
			r.Post("/", router.handler.CreateItem)
			r.Get("/{itemID}", router.handler.GetItem)
			r.Put("/{itemID}", router.handler.UpdateItem)
			r.Delete("/{itemID}", router.handler.DeleteItem)
		})

		r.Post("/ratings", router.handler.SubmitRating)

		r.Route("/users/{userID}", func(r chi.Router) {
			r.Get("/preferences", router.handler.GetPreferences)
			r.Put("/preferences", router.handler.PutPreferences)
		})
	})

	return r
}
