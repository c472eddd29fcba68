// RealConnect - Event Networking and People Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/realconnect

// Package main is the entry point for the RealConnect server.
//
// RealConnect is an event networking service: hosts create events with QR
// join codes, attendees build profiles, and the recommendation engine
// surfaces the events and people most worth meeting. One binary serves the
// REST API, the websocket live feed and the Prometheus metrics endpoint,
// backed by an embedded DuckDB database.
//
// Components start in order: configuration (koanf, layered defaults, YAML
// file and REALCONNECT_* environment variables), logging (zerolog), the
// database, the recommendation engine, role resolution, the in-process
// event bus with its websocket hub, and finally the HTTP server. Shutdown
// on SIGINT or SIGTERM drains in-flight requests before closing the
// database.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tomtom215/realconnect/internal/api"
	"github.com/tomtom215/realconnect/internal/auth"
	"github.com/tomtom215/realconnect/internal/authz"
	"github.com/tomtom215/realconnect/internal/config"
	"github.com/tomtom215/realconnect/internal/database"
	"github.com/tomtom215/realconnect/internal/live"
	"github.com/tomtom215/realconnect/internal/logging"
	"github.com/tomtom215/realconnect/internal/recommend"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("db_path", cfg.Database.Path).
		Str("environment", cfg.Server.Environment).
		Msg("Configuration loaded")

	db, err := database.New(&cfg.Database)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer func() {
		if err := db.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing database")
		}
	}()
	logging.Info().Msg("Database initialized")

	jwtManager, err := auth.NewJWTManager(&cfg.Security)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize token manager")
	}

	engine := recommend.NewEngine(db, recommend.Config{
		EventLimit:  cfg.Recommend.EventLimit,
		PeopleLimit: cfg.Recommend.PeopleLimit,
	})
	authzSvc := authz.NewService(db, cfg.Security.LegacyAdminEmail)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	bus := live.NewBus()
	defer func() {
		if err := bus.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing event bus")
		}
	}()
	hub := live.NewHub(bus)
	go func() {
		if err := hub.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Live hub stopped")
		}
	}()

	handler := api.NewHandler(db, engine, authzSvc, jwtManager, bus, hub, cfg)
	router := api.NewRouter(handler, api.NewMiddleware(&cfg.Security))

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router.Setup(),
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
		IdleTimeout:  60 * time.Second,
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	serverErr := make(chan error, 1)
	go func() {
		logging.Info().Str("addr", server.Addr).Msg("HTTP server listening")
		serverErr <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigCh:
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Error().Err(err).Msg("HTTP server failed")
		}
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logging.Error().Err(err).Msg("HTTP server shutdown error")
	}
	cancel()

	logging.Info().Msg("Server stopped gracefully")
}
