// RealConnect - Event Networking and People Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/realconnect

package api

import (
	"github.com/tomtom215/realconnect/internal/auth"
	"github.com/tomtom215/realconnect/internal/authz"
	"github.com/tomtom215/realconnect/internal/config"
	"github.com/tomtom215/realconnect/internal/live"
	"github.com/tomtom215/realconnect/internal/recommend"
)

// Handler bundles the dependencies the HTTP handlers need.
type Handler struct {
	store  Store
	engine *recommend.Engine
	authz  *authz.Service
	jwt    *auth.JWTManager
	bus    *live.Bus
	hub    *live.Hub
	cfg    *config.Config
}

// NewHandler creates the handler set. hub and bus may be nil in tests that
// do not exercise the live feed.
func NewHandler(store Store, engine *recommend.Engine, authzSvc *authz.Service,
	jwtManager *auth.JWTManager, bus *live.Bus, hub *live.Hub, cfg *config.Config) *Handler {
	return &Handler{
		store:  store,
		engine: engine,
		authz:  authzSvc,
		jwt:    jwtManager,
		bus:    bus,
		hub:    hub,
		cfg:    cfg,
	}
}
