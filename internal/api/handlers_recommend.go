// RealConnect - Event Networking and People Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/realconnect

package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/tomtom215/realconnect/internal/metrics"
)

// RecommendEvents returns upcoming events ranked for the caller.
func (h *Handler) RecommendEvents(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	events, err := h.engine.RecommendEvents(r.Context(), userIDFromContext(r.Context()))
	if err != nil {
		respondStoreError(w, err, "recommendations")
		return
	}
	metrics.RecordRecommendation("events", time.Since(start))
	respondData(w, http.StatusOK, events)
}

// RecommendPeople returns attendees ranked by affinity with the caller.
// An optional event_id query parameter narrows the pool to one event.
func (h *Handler) RecommendPeople(w http.ResponseWriter, r *http.Request) {
	var eventID *int64
	if raw := r.URL.Query().Get("event_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			respondError(w, http.StatusBadRequest, CodeBadRequest, "Invalid event_id parameter", nil)
			return
		}
		eventID = &id
	}

	start := time.Now()
	people, err := h.engine.RecommendPeople(r.Context(), userIDFromContext(r.Context()), eventID)
	if err != nil {
		respondStoreError(w, err, "recommendations")
		return
	}
	metrics.RecordRecommendation("people", time.Since(start))
	respondData(w, http.StatusOK, people)
}
