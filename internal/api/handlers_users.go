// RealConnect - Event Networking and People Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/realconnect

package api

import (
	"net/http"

	"github.com/tomtom215/realconnect/internal/models"
)

// GetUser returns a user's profile by id.
func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := urlID(w, r, "id")
	if !ok {
		return
	}

	profile, err := h.store.GetUserProfile(r.Context(), userID)
	if err != nil {
		respondStoreError(w, err, "user")
		return
	}
	respondData(w, http.StatusOK, profile)
}

// UpdateUser replaces a user's profile. Users may only edit themselves.
func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := urlID(w, r, "id")
	if !ok {
		return
	}
	if userID != userIDFromContext(r.Context()) {
		respondError(w, http.StatusForbidden, CodeForbidden, "Cannot edit another user's profile", nil)
		return
	}

	var req UpdateProfileRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	links := make(map[string]string, len(req.SocialLinks))
	for key, url := range req.SocialLinks {
		if models.KnownSocialPlatform(key) && url != "" {
			links[key] = url
		}
	}

	profile := &models.UserProfile{
		ID:           userID,
		FullName:     req.FullName,
		Age:          req.Age,
		Hometown:     req.Hometown,
		State:        req.State,
		College:      req.College,
		HighSchool:   req.HighSchool,
		School:       req.School,
		Background:   req.Background,
		Aspirations:  req.Aspirations,
		Interests:    req.Interests,
		SocialLinks:  links,
		ProfilePhoto: req.ProfilePhoto,
	}

	updated, err := h.store.UpdateUserProfile(r.Context(), profile)
	if err != nil {
		respondStoreError(w, err, "user")
		return
	}
	respondData(w, http.StatusOK, updated)
}

// UserEvents returns the events the caller attends.
func (h *Handler) UserEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.store.GetUserEvents(r.Context(), userIDFromContext(r.Context()))
	if err != nil {
		respondStoreError(w, err, "events")
		return
	}
	respondData(w, http.StatusOK, events)
}

// UserHostedEvents returns the events the caller hosts.
func (h *Handler) UserHostedEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.store.GetHostedEvents(r.Context(), userIDFromContext(r.Context()))
	if err != nil {
		respondStoreError(w, err, "events")
		return
	}
	respondData(w, http.StatusOK, events)
}

// UserConnections returns the profiles the caller has connected with.
func (h *Handler) UserConnections(w http.ResponseWriter, r *http.Request) {
	connections, err := h.store.GetUserConnections(r.Context(), userIDFromContext(r.Context()))
	if err != nil {
		respondStoreError(w, err, "connections")
		return
	}
	respondData(w, http.StatusOK, connections)
}
