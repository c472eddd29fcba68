// RealConnect - Event Networking and People Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/realconnect

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/realconnect/internal/live"
	"github.com/tomtom215/realconnect/internal/logging"
	"github.com/tomtom215/realconnect/internal/metrics"
	"github.com/tomtom215/realconnect/internal/models"
	"github.com/tomtom215/realconnect/internal/visibility"
)

// ListEvents returns every event with its host and attendee count.
func (h *Handler) ListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.store.GetAllEvents(r.Context())
	if err != nil {
		respondStoreError(w, err, "events")
		return
	}
	respondData(w, http.StatusOK, events)
}

// CreateEvent creates an event hosted by the caller.
func (h *Handler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req CreateEventRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	event := &models.Event{
		HostID:        userIDFromContext(r.Context()),
		Name:          req.Name,
		Description:   req.Description,
		Location:      req.Location,
		Date:          req.Date,
		IsActive:      true,
		IsPublic:      req.IsPublic,
		VisibleFields: req.VisibleFields,
	}
	if err := h.store.CreateEvent(r.Context(), event); err != nil {
		respondStoreError(w, err, "event")
		return
	}

	logging.Info().Int64("event_id", event.ID).Int64("host_id", event.HostID).Msg("Event created")
	respondData(w, http.StatusCreated, event)
}

// GetEvent returns one event with its host profile and attendee count.
func (h *Handler) GetEvent(w http.ResponseWriter, r *http.Request) {
	eventID, ok := urlID(w, r, "id")
	if !ok {
		return
	}

	event, err := h.store.GetEventByID(r.Context(), eventID)
	if err != nil {
		respondStoreError(w, err, "event")
		return
	}

	detail := models.EventWithHost{Event: *event}
	if host, err := h.store.GetUserProfile(r.Context(), event.HostID); err == nil {
		detail.Host = *host
	}
	if attendees, err := h.store.GetEventAttendees(r.Context(), event.ID); err == nil {
		detail.AttendeeCount = len(attendees)
	}
	respondData(w, http.StatusOK, detail)
}

// GetEventByCode resolves a join code to its event, the first step of the
// QR join flow.
func (h *Handler) GetEventByCode(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	if code == "" {
		respondError(w, http.StatusBadRequest, CodeBadRequest, "Missing join code", nil)
		return
	}

	event, err := h.store.GetEventByJoinCode(r.Context(), code)
	if err != nil {
		respondStoreError(w, err, "event")
		return
	}
	respondData(w, http.StatusOK, event)
}

// UpdateEvent edits an event. Only the host may do so.
func (h *Handler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	eventID, ok := urlID(w, r, "id")
	if !ok {
		return
	}

	event, err := h.store.GetEventByID(r.Context(), eventID)
	if err != nil {
		respondStoreError(w, err, "event")
		return
	}
	if event.HostID != userIDFromContext(r.Context()) {
		respondError(w, http.StatusForbidden, CodeForbidden, "Only the host may edit this event", nil)
		return
	}

	var req UpdateEventRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	event.Name = req.Name
	event.Description = req.Description
	event.Location = req.Location
	event.Date = req.Date
	if req.IsActive != nil {
		event.IsActive = *req.IsActive
	}
	if req.IsPublic != nil {
		event.IsPublic = *req.IsPublic
	}
	if req.VisibleFields != nil {
		event.VisibleFields = req.VisibleFields
	}

	updated, err := h.store.UpdateEvent(r.Context(), event)
	if err != nil {
		respondStoreError(w, err, "event")
		return
	}
	respondData(w, http.StatusOK, updated)
}

// JoinEvent registers the caller as an attendee. Joining twice returns the
// existing attendance record.
func (h *Handler) JoinEvent(w http.ResponseWriter, r *http.Request) {
	eventID, ok := urlID(w, r, "id")
	if !ok {
		return
	}
	userID := userIDFromContext(r.Context())

	event, err := h.store.GetEventByID(r.Context(), eventID)
	if err != nil {
		respondStoreError(w, err, "event")
		return
	}
	if !event.IsActive {
		respondError(w, http.StatusForbidden, CodeForbidden, "Event is no longer accepting joins", nil)
		return
	}

	alreadyAttending, err := h.store.IsUserAttendingEvent(r.Context(), eventID, userID)
	if err != nil {
		respondStoreError(w, err, "attendance")
		return
	}

	attendance, err := h.store.JoinEvent(r.Context(), eventID, userID)
	if err != nil {
		respondStoreError(w, err, "attendance")
		return
	}

	if !alreadyAttending {
		metrics.EventJoins.Inc()
		if h.bus != nil {
			profile, err := h.store.GetUserProfile(r.Context(), userID)
			fullName := ""
			if err == nil {
				fullName = profile.FullName
			}
			h.bus.PublishEventJoined(live.EventJoined{
				EventID:  eventID,
				UserID:   userID,
				FullName: fullName,
				JoinedAt: attendance.JoinedAt,
			})
		}
	}

	respondData(w, http.StatusOK, attendance)
}

// LeaveEvent removes the caller's attendance record.
func (h *Handler) LeaveEvent(w http.ResponseWriter, r *http.Request) {
	eventID, ok := urlID(w, r, "id")
	if !ok {
		return
	}

	if err := h.store.LeaveEvent(r.Context(), eventID, userIDFromContext(r.Context())); err != nil {
		respondStoreError(w, err, "attendance")
		return
	}
	respondData(w, http.StatusOK, map[string]bool{"left": true})
}

// EventAttendees returns the visibility-filtered attendee list. Access is
// re-checked per request: the host, attendees and anyone on public events
// may list; everyone else gets a 403, never an empty list.
func (h *Handler) EventAttendees(w http.ResponseWriter, r *http.Request) {
	eventID, ok := urlID(w, r, "id")
	if !ok {
		return
	}
	userID := userIDFromContext(r.Context())

	event, err := h.store.GetEventByID(r.Context(), eventID)
	if err != nil {
		respondStoreError(w, err, "event")
		return
	}

	isAttendee, err := h.store.IsUserAttendingEvent(r.Context(), eventID, userID)
	if err != nil {
		respondStoreError(w, err, "attendance")
		return
	}
	if !visibility.CanListAttendees(event, userID, isAttendee) {
		respondError(w, http.StatusForbidden, CodeForbidden, "Attendee list is private", nil)
		return
	}

	attendees, err := h.store.GetEventAttendees(r.Context(), eventID)
	if err != nil {
		respondStoreError(w, err, "attendees")
		return
	}
	respondData(w, http.StatusOK, visibility.FilterAttendees(attendees, event.VisibleFields))
}

// EventLiveFeed upgrades to a websocket that streams attendee-join and
// connection notifications for the event.
func (h *Handler) EventLiveFeed(w http.ResponseWriter, r *http.Request) {
	eventID, ok := urlID(w, r, "id")
	if !ok {
		return
	}
	if h.hub == nil {
		respondError(w, http.StatusServiceUnavailable, CodeStoreUnavailable, "Live feed is not enabled", nil)
		return
	}

	if _, err := h.store.GetEventByID(r.Context(), eventID); err != nil {
		respondStoreError(w, err, "event")
		return
	}
	h.hub.ServeWS(w, r, eventID)
}
