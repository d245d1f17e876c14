// Kinoscope - Movie Discovery and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kinoscope

// Package main is the entry point for the Kinoscope server.
//
// Kinoscope is a self-hosted movie discovery service: users browse a
// catalog, rate what they watch, and receive personalized
// recommendations blending content similarity, collaborative
// filtering, and popularity.
//
// The server initializes components in the following order:
//
//  1. Configuration: Koanf v2 layered loading (defaults, YAML, env)
//  2. Store: BadgerDB catalog, ratings, and preference persistence
//  3. Engine: the hybrid recommendation engine
//  4. HTTP server: Chi REST API under /api/v1
//  5. Supervisor tree: suture-managed services with graceful shutdown
//
// Configuration is environment-first; every setting has a KINOSCOPE_
// variable (see internal/config). The server handles SIGINT and
// SIGTERM by draining in-flight requests before exiting.
//
// Example:
//
//	export KINOSCOPE_STORE_PATH=/data/kinoscope
//	export KINOSCOPE_SEED_PATH=./seed/catalog.json
//	./kinoscope
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/tomtom215/kinoscope/internal/api"
	"github.com/tomtom215/kinoscope/internal/config"
	"github.com/tomtom215/kinoscope/internal/logging"
	"github.com/tomtom215/kinoscope/internal/recommend"
	"github.com/tomtom215/kinoscope/internal/store"
	"github.com/tomtom215/kinoscope/internal/supervisor"
	"github.com/tomtom215/kinoscope/internal/supervisor/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// Config errors surface through the default logger since the
		// configured one is not available yet.
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("store_path", cfg.Store.Path).
		Bool("in_memory", cfg.Store.InMemory).
		Int("port", cfg.Server.Port).
		Msg("Starting Kinoscope")

	st, err := store.Open(cfg.Store, logging.With().Str("component", "store").Logger())
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to open store")
	}
	defer func() {
		if err := st.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing store")
		}
	}()

	if cfg.Store.SeedPath != "" {
		n, err := st.Seed(cfg.Store.SeedPath)
		if err != nil {
			logging.Fatal().Err(err).Str("path", cfg.Store.SeedPath).Msg("Failed to seed catalog")
		}
		if n > 0 {
			logging.Info().Int("items", n).Msg("Catalog seeded")
		}
	}

	engine, err := recommend.NewEngine(&cfg.Recommend,
		logging.With().Str("component", "engine").Logger())
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to build recommendation engine")
	}

	handler := api.NewHandler(st, engine)
	mw := api.NewMiddleware(&api.MiddlewareConfig{
		CORSAllowedOrigins: cfg.Security.CORSOrigins,
		CORSAllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		CORSAllowedHeaders: []string{"Content-Type", "Authorization"},
		CORSMaxAge:         86400,
		RateLimitRequests:  cfg.Security.RateLimitReqs,
		RateLimitWindow:    cfg.Security.RateLimitWindow,
		RateLimitDisabled:  cfg.Security.RateLimitDisabled,
	})

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      api.NewRouter(handler, mw).Setup(),
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
	}

	// zerolog bridged to slog for sutureslog compatibility.
	tree := supervisor.NewTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	tree.AddStorageService(services.NewStoreGCService(st, cfg.Store.GCInterval))
	tree.AddAPIService(services.NewHTTPServerService(server, supervisor.DefaultTreeConfig().ShutdownTimeout))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		errCh <- tree.Serve(ctx)
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
		if err := <-errCh; err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor exited with error")
		}
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Fatal().Err(err).Msg("Supervisor exited with error")
		}
	}

	logging.Info().Msg("Kinoscope stopped")
}
