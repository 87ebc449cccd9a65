// Watchlog - Personal Media Watching Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchlog

// Package main runs the Watchlog HTTP server.
//
// Startup order:
//
//  1. Configuration (Koanf v2: defaults, config.yaml, environment)
//  2. Record store, loaded from the JSON data file
//  3. Gemini client wrapped in a rate limiter and circuit breaker
//  4. WebSocket hub, notified on every persisted change
//  5. HTTP server, run with the hub and cache sweeper under a suture tree
//
// GEMINI_API_KEY is required. SIGINT or SIGTERM stops the tree gracefully.
//
//	export GEMINI_API_KEY=...
//	export DATA_FILE=works_data.json
//	./watchlog
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/tomtom215/watchlog/docs" // OpenAPI document for /swagger/
	"github.com/tomtom215/watchlog/internal/api"
	"github.com/tomtom215/watchlog/internal/cache"
	"github.com/tomtom215/watchlog/internal/config"
	"github.com/tomtom215/watchlog/internal/gateway"
	"github.com/tomtom215/watchlog/internal/logging"
	"github.com/tomtom215/watchlog/internal/models"
	"github.com/tomtom215/watchlog/internal/storage"
	"github.com/tomtom215/watchlog/internal/store"
	"github.com/tomtom215/watchlog/internal/supervisor"
	"github.com/tomtom215/watchlog/internal/supervisor/services"
	"github.com/tomtom215/watchlog/internal/tracker"
	ws "github.com/tomtom215/watchlog/internal/websocket"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
	})

	logging.Info().
		Str("data_file", cfg.Storage.Path).
		Str("model", cfg.Gemini.Model).
		Str("addr", cfg.Server.Addr()).
		Str("environment", cfg.Server.Environment).
		Msg("Starting Watchlog")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	wsHub := ws.NewHub()

	st, err := store.Open(ctx, storage.NewJSONFile(cfg.Storage.Path), store.WithOnChange(wsHub.BroadcastRecordsChanged))
	if err != nil {
		logging.Fatal().Err(err).Str("path", cfg.Storage.Path).Msg("Failed to load records")
	}
	logging.Info().Int("records", st.Len()).Msg("Records loaded")

	gen, err := gateway.NewGenAIGenerator(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create Gemini client")
	}
	guarded, breaker := gateway.Guard(gen, cfg.Gemini.RateLimitRPS, cfg.Gemini.RateLimitBurst, gateway.DefaultBreakerConfig())

	metadataCache := cache.New[models.Metadata]("metadata", cfg.Gemini.CacheTTL)
	gw := gateway.New(guarded,
		gateway.WithTimeout(cfg.Gemini.Timeout),
		gateway.WithMetadataCache(metadataCache),
	)

	svc := tracker.New(st, gw)

	handler := api.NewHandler(svc,
		api.WithHub(wsHub),
		api.WithAllowedOrigins(cfg.Security.CORSOrigins),
		api.WithAIState(breaker.State),
	)
	chiMW := api.NewChiMiddleware(&api.ChiMiddlewareConfig{
		CORSAllowedOrigins: cfg.Security.CORSOrigins,
		CORSAllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		CORSAllowedHeaders: []string{"Content-Type", "X-Request-ID"},
		CORSMaxAge:         86400,
		RateLimitRequests:  cfg.Security.RateLimitReqs,
		RateLimitWindow:    cfg.Security.RateLimitWindow,
		RateLimitDisabled:  cfg.Security.RateLimitDisabled,
		HSTSAlways:         cfg.IsProduction(),
	})
	router := api.NewRouter(handler, chiMW)

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.SetupChi(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       2 * time.Minute,
	}

	tree := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		FailureThreshold: 5,
		FailureBackoff:   15 * time.Second,
		ShutdownTimeout:  10 * time.Second,
	})
	tree.AddBackgroundService(services.NewWebSocketHubService(wsHub))
	if metadataCache.Enabled() {
		tree.AddBackgroundService(metadataCache)
	}
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	logging.Info().Str("addr", server.Addr).Msg("Serving HTTP")
	errCh := tree.ServeBackground(ctx)

	var serveErr error
	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish")
		serveErr = <-errCh
	case serveErr = <-errCh:
	}
	if serveErr != nil && !errors.Is(serveErr, context.Canceled) {
		logging.Error().Err(serveErr).Msg("Supervisor tree error")
	}

	if unstopped, _ := tree.UnstoppedServiceReport(); len(unstopped) > 0 {
		for _, u := range unstopped {
			logging.Warn().Str("service", u.Name).Msg("Service failed to stop")
		}
	}

	logging.Info().Msg("Watchlog stopped")
}
