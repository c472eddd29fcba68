// RealConnect - Event Networking and People Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/realconnect

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/realconnect/internal/authz"
	"github.com/tomtom215/realconnect/internal/logging"
	"github.com/tomtom215/realconnect/internal/models"
)

// requireRole resolves the caller's admin role and checks it with allowed.
// Writes the error response and returns false when access is denied.
func (h *Handler) requireRole(w http.ResponseWriter, r *http.Request, allowed func(authz.Role) bool) bool {
	role, err := h.authz.Resolve(r.Context(), userIDFromContext(r.Context()))
	if err != nil {
		respondStoreError(w, err, "privileges")
		return false
	}
	if !allowed(role) {
		respondError(w, http.StatusForbidden, CodeForbidden, "Admin privileges required", nil)
		return false
	}
	return true
}

// AdminUsers lists every user profile.
func (h *Handler) AdminUsers(w http.ResponseWriter, r *http.Request) {
	if !h.requireRole(w, r, authz.Role.IsAdmin) {
		return
	}

	users, err := h.store.ListUsers(r.Context())
	if err != nil {
		respondStoreError(w, err, "users")
		return
	}
	respondData(w, http.StatusOK, users)
}

// AdminEvents lists every event with host and full attendee profiles.
func (h *Handler) AdminEvents(w http.ResponseWriter, r *http.Request) {
	if !h.requireRole(w, r, authz.Role.IsAdmin) {
		return
	}

	events, err := h.store.GetAllEvents(r.Context())
	if err != nil {
		respondStoreError(w, err, "events")
		return
	}

	detailed := make([]models.EventWithAttendees, 0, len(events))
	for _, event := range events {
		attendees, err := h.store.GetEventAttendees(r.Context(), event.ID)
		if err != nil {
			respondStoreError(w, err, "attendees")
			return
		}
		detailed = append(detailed, models.EventWithAttendees{
			Event:     event.Event,
			Host:      event.Host,
			Attendees: attendees,
		})
	}
	respondData(w, http.StatusOK, detailed)
}

// AdminConnections lists every connection record.
func (h *Handler) AdminConnections(w http.ResponseWriter, r *http.Request) {
	if !h.requireRole(w, r, authz.Role.IsAdmin) {
		return
	}

	connections, err := h.store.ListConnections(r.Context())
	if err != nil {
		respondStoreError(w, err, "connections")
		return
	}
	respondData(w, http.StatusOK, connections)
}

// AdminList lists every admin grant.
func (h *Handler) AdminList(w http.ResponseWriter, r *http.Request) {
	if !h.requireRole(w, r, authz.Role.IsAdmin) {
		return
	}

	admins, err := h.store.ListAdmins(r.Context())
	if err != nil {
		respondStoreError(w, err, "admins")
		return
	}
	respondData(w, http.StatusOK, admins)
}

// AdminGrant grants an admin level to a user. Super admins only.
func (h *Handler) AdminGrant(w http.ResponseWriter, r *http.Request) {
	if !h.requireRole(w, r, authz.Role.CanManageAdmins) {
		return
	}

	var req GrantAdminRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if _, err := h.store.GetUserByID(r.Context(), req.UserID); err != nil {
		respondStoreError(w, err, "user")
		return
	}

	grantedBy := userIDFromContext(r.Context())
	priv := &models.AdminPrivilege{
		UserID:     req.UserID,
		AdminLevel: models.AdminLevel(req.AdminLevel),
		GrantedBy:  &grantedBy,
		GrantedAt:  time.Now(),
	}
	if err := h.store.GrantAdmin(r.Context(), priv); err != nil {
		respondStoreError(w, err, "privilege")
		return
	}

	logging.Info().
		Int64("user_id", req.UserID).
		Str("admin_level", req.AdminLevel).
		Int64("granted_by", grantedBy).
		Msg("Admin privilege granted")
	respondData(w, http.StatusCreated, priv)
}

// AdminUpdate changes an existing grant's level. Super admins only.
func (h *Handler) AdminUpdate(w http.ResponseWriter, r *http.Request) {
	if !h.requireRole(w, r, authz.Role.CanManageAdmins) {
		return
	}
	userID, ok := urlID(w, r, "userID")
	if !ok {
		return
	}

	var req UpdateAdminRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.store.UpdateAdminLevel(r.Context(), userID, models.AdminLevel(req.AdminLevel)); err != nil {
		respondStoreError(w, err, "privilege")
		return
	}
	respondData(w, http.StatusOK, map[string]string{"admin_level": req.AdminLevel})
}

// AdminRevoke removes a user's admin grant. Super admins only. System
// admins cannot be revoked.
func (h *Handler) AdminRevoke(w http.ResponseWriter, r *http.Request) {
	if !h.requireRole(w, r, authz.Role.CanManageAdmins) {
		return
	}
	userID, ok := urlID(w, r, "userID")
	if !ok {
		return
	}

	priv, err := h.authz.Privilege(r.Context(), userID)
	if err != nil {
		respondStoreError(w, err, "privilege")
		return
	}
	if priv != nil && priv.IsSystemAdmin {
		respondError(w, http.StatusForbidden, CodeForbidden, "System admins cannot be revoked", nil)
		return
	}

	if err := h.store.RevokeAdmin(r.Context(), userID); err != nil {
		respondStoreError(w, err, "privilege")
		return
	}

	logging.Info().Int64("user_id", userID).Msg("Admin privilege revoked")
	respondData(w, http.StatusOK, map[string]bool{"revoked": true})
}
