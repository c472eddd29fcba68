// RealConnect - Event Networking and People Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/realconnect

package api

import (
	"net/http"
	"time"
)

var startTime = time.Now()

// HealthLive reports process liveness. It never touches the store.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondData(w, http.StatusOK, map[string]interface{}{
		"status": "alive",
		"uptime": time.Since(startTime).String(),
	})
}

// HealthReady reports readiness, checking that the store answers.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Ping(r.Context()); err != nil {
		respondError(w, http.StatusServiceUnavailable, CodeStoreUnavailable, "Storage is unavailable", err)
		return
	}
	respondData(w, http.StatusOK, map[string]string{"status": "ready"})
}
