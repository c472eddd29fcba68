// RealConnect - Event Networking and People Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/realconnect

package api

import (
	"context"
	"net/http"
	"strings"
)

type contextKey string

const userIDKey contextKey = "user_id"

// contextWithUserID stores the authenticated user id on the context.
func contextWithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// userIDFromContext returns the authenticated user id, or 0 when the
// request did not pass the Authenticate middleware.
func userIDFromContext(ctx context.Context) int64 {
	id, _ := ctx.Value(userIDKey).(int64)
	return id
}

// Authenticate requires a valid bearer token and stores the user id on the
// request context. All data endpoints sit behind it.
func (h *Handler) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			respondError(w, http.StatusUnauthorized, CodeUnauthorized, "Missing bearer token", nil)
			return
		}

		claims, err := h.jwt.ValidateToken(token)
		if err != nil {
			respondError(w, http.StatusUnauthorized, CodeUnauthorized, "Invalid or expired token", err)
			return
		}

		next.ServeHTTP(w, r.WithContext(contextWithUserID(r.Context(), claims.UserID)))
	})
}
