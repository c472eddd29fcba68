// RealConnect - Event Networking and People Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/realconnect

package api

import (
	"net/http"

	"github.com/tomtom215/realconnect/internal/live"
	"github.com/tomtom215/realconnect/internal/logging"
	"github.com/tomtom215/realconnect/internal/metrics"
)

// CreateConnection records that the caller met another attendee at an event.
// The pair is unordered and the operation is idempotent: repeating it, in
// either direction, returns the existing record as a success.
func (h *Handler) CreateConnection(w http.ResponseWriter, r *http.Request) {
	var req CreateConnectionRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	userID := userIDFromContext(r.Context())

	if req.UserID == userID {
		respondError(w, http.StatusBadRequest, CodeBadRequest, "Cannot connect with yourself", nil)
		return
	}

	if _, err := h.store.GetEventByID(r.Context(), req.EventID); err != nil {
		respondStoreError(w, err, "event")
		return
	}
	if _, err := h.store.GetUserByID(r.Context(), req.UserID); err != nil {
		respondStoreError(w, err, "user")
		return
	}

	connection, created, err := h.store.CreateConnection(r.Context(), userID, req.UserID, req.EventID)
	if err != nil {
		respondStoreError(w, err, "connection")
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
		metrics.ConnectionsCreated.Inc()
		logging.Info().
			Int64("from_user_id", connection.FromUserID).
			Int64("to_user_id", connection.ToUserID).
			Int64("event_id", connection.EventID).
			Msg("Connection created")
		if h.bus != nil {
			h.bus.PublishConnectionCreated(live.ConnectionCreated{
				EventID:    connection.EventID,
				FromUserID: connection.FromUserID,
				ToUserID:   connection.ToUserID,
				CreatedAt:  connection.CreatedAt,
			})
		}
	}
	respondData(w, status, connection)
}
