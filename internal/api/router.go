// RealConnect - Event Networking and People Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/realconnect

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Router assembles the middleware stack and routes.
type Router struct {
	handler    *Handler
	middleware *Middleware
}

// NewRouter creates a router over the handler set.
func NewRouter(handler *Handler, middleware *Middleware) *Router {
	return &Router{handler: handler, middleware: middleware}
}

// Setup builds the full route tree under /api/v1.
func (router *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Global stack, applied to every route. CORS must be global so OPTIONS
	// preflights are answered before routing.
	r.Use(RequestIDWithLogging())
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.middleware.CORS())

	// Health endpoints, unauthenticated with a permissive limit so probes
	// are never throttled.
	r.Route("/api/v1/health", func(r chi.Router) {
		r.Use(router.middleware.RateLimitHealth())
		r.Use(SecurityHeaders())
		r.Get("/live", router.handler.HealthLive)
		r.Get("/ready", router.handler.HealthReady)
	})

	// Auth endpoints. Login carries the strictest limit.
	r.Route("/api/v1/auth", func(r chi.Router) {
		r.Use(router.middleware.RateLimitAuth())
		r.Use(SecurityHeaders())
		r.Use(PrometheusMetrics())

		r.Post("/signup", router.handler.Signup)
		r.With(router.middleware.RateLimitLogin()).Post("/login", router.handler.Login)
		r.With(router.handler.Authenticate).Get("/me", router.handler.Me)
		r.With(router.handler.Authenticate).Post("/logout", router.handler.Logout)
	})

	// Data endpoints. Everything requires authentication.
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(router.middleware.RateLimit())
		r.Use(SecurityHeaders())
		r.Use(PrometheusMetrics())
		r.Use(router.handler.Authenticate)

		r.Route("/events", func(r chi.Router) {
			r.Get("/", router.handler.ListEvents)
			r.Post("/", router.handler.CreateEvent)
			r.Get("/code/{code}", router.handler.GetEventByCode)
			r.Get("/{id}", router.handler.GetEvent)
			r.Put("/{id}", router.handler.UpdateEvent)
			r.Post("/{id}/join", router.handler.JoinEvent)
			r.Delete("/{id}/leave", router.handler.LeaveEvent)
			r.Get("/{id}/attendees", router.handler.EventAttendees)
			r.Get("/{id}/ws", router.handler.EventLiveFeed)
		})

		r.Route("/users", func(r chi.Router) {
			r.Get("/{id}", router.handler.GetUser)
			r.Put("/{id}", router.handler.UpdateUser)
		})

		r.Route("/user", func(r chi.Router) {
			r.Get("/events", router.handler.UserEvents)
			r.Get("/hosted-events", router.handler.UserHostedEvents)
			r.Get("/connections", router.handler.UserConnections)
		})

		r.Post("/connections", router.handler.CreateConnection)

		r.Route("/recommendations", func(r chi.Router) {
			r.Get("/events", router.handler.RecommendEvents)
			r.Get("/people", router.handler.RecommendPeople)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Get("/users", router.handler.AdminUsers)
			r.Get("/events", router.handler.AdminEvents)
			r.Get("/connections", router.handler.AdminConnections)
			r.Get("/admins", router.handler.AdminList)
			r.Post("/admins", router.handler.AdminGrant)
			r.Put("/admins/{userID}", router.handler.AdminUpdate)
			r.Delete("/admins/{userID}", router.handler.AdminRevoke)
		})
	})

	// Prometheus scrape endpoint, outside /api/v1.
	r.Handle("/metrics", promhttp.Handler())

	return r
}
