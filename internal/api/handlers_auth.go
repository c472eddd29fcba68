// RealConnect - Event Networking and People Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/realconnect

package api

import (
	"errors"
	"net/http"

	"github.com/tomtom215/realconnect/internal/auth"
	"github.com/tomtom215/realconnect/internal/database"
	"github.com/tomtom215/realconnect/internal/logging"
	"github.com/tomtom215/realconnect/internal/models"
)

// Signup creates an account and issues a session token.
func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	hash, err := auth.HashPassword(req.Password, h.cfg.Security.BcryptCost)
	if err != nil {
		respondError(w, http.StatusInternalServerError, CodeInternal, "Failed to process credentials", err)
		return
	}

	user := &models.User{
		UserProfile: models.UserProfile{
			Username: req.Username,
			Email:    req.Email,
			FullName: req.FullName,
			Age:      req.Age,
		},
		Password: hash,
	}
	if err := h.store.CreateUser(r.Context(), user); err != nil {
		if errors.Is(err, database.ErrDuplicate) {
			respondError(w, http.StatusConflict, CodeConflict, "Username or email already registered", nil)
			return
		}
		respondStoreError(w, err, "user")
		return
	}

	token, err := h.jwt.GenerateToken(user.ID, user.Username)
	if err != nil {
		respondError(w, http.StatusInternalServerError, CodeInternal, "Failed to issue token", err)
		return
	}

	logging.Info().Int64("user_id", user.ID).Msg("User signed up")
	respondData(w, http.StatusCreated, AuthResponse{Token: token, User: *user.Profile()})
}

// Login verifies credentials and issues a session token. Unknown emails and
// wrong passwords return the same response to avoid account enumeration.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	user, err := h.store.GetUserByEmail(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			respondError(w, http.StatusUnauthorized, CodeUnauthorized, "Invalid email or password", nil)
			return
		}
		respondStoreError(w, err, "user")
		return
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		respondError(w, http.StatusUnauthorized, CodeUnauthorized, "Invalid email or password", nil)
		return
	}

	token, err := h.jwt.GenerateToken(user.ID, user.Username)
	if err != nil {
		respondError(w, http.StatusInternalServerError, CodeInternal, "Failed to issue token", err)
		return
	}

	logging.Info().Int64("user_id", user.ID).Msg("User logged in")
	respondData(w, http.StatusOK, AuthResponse{Token: token, User: *user.Profile()})
}

// Logout acknowledges a logout. Sessions are stateless JWTs, so the client
// discards the token; nothing is revoked server-side.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	respondData(w, http.StatusOK, map[string]bool{"logged_out": true})
}

// Me returns the authenticated user's profile.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	userID := userIDFromContext(r.Context())

	profile, err := h.store.GetUserProfile(r.Context(), userID)
	if err != nil {
		respondStoreError(w, err, "user")
		return
	}
	respondData(w, http.StatusOK, profile)
}
