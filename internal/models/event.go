// RealConnect - Event Networking and People Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/realconnect

package models

import "time"

// FieldVisibility maps a profile field key to whether attendees of an event
// may see that field on each other. A nil map means "everything visible"
// (legacy events created before the feature existed have no configuration).
// Key constants and redaction logic live in internal/visibility.
type FieldVisibility map[string]bool

// Visible reports whether the field is visible under this configuration.
// Unset keys default to visible; a nil map is all-visible.
func (v FieldVisibility) Visible(field string) bool {
	if v == nil {
		return true
	}
	visible, ok := v[field]
	if !ok {
		return true
	}
	return visible
}

// Event is a hosted gathering that users join via a join code.
type Event struct {
	// ID is the internal event identifier.
	ID int64 `json:"id"`

	// HostID is the user who created and owns the event.
	HostID int64 `json:"host_id"`

	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Location    string    `json:"location"`
	Date        time.Time `json:"date"`

	// JoinCode is the unique code embedded in the event's QR join link.
	JoinCode string `json:"join_code"`

	// IsActive marks whether the event still accepts joins.
	IsActive bool `json:"is_active"`

	// IsPublic controls whether non-attendees may browse the attendee list.
	IsPublic bool `json:"is_public"`

	// VisibleFields is the host's per-field visibility configuration.
	// Nil means all fields visible.
	VisibleFields FieldVisibility `json:"visible_fields,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// Upcoming reports whether the event's scheduled date is strictly in the
// future relative to now.
func (e *Event) Upcoming(now time.Time) bool {
	return e.Date.After(now)
}

// EventWithHost is an event enriched with its host profile and attendee
// count, the shape returned by event listings.
type EventWithHost struct {
	Event

	Host          UserProfile `json:"host"`
	AttendeeCount int         `json:"attendee_count"`
}

// EventWithAttendees is an event enriched with its host and full attendee
// profiles, used by the event detail and admin views.
type EventWithAttendees struct {
	Event

	Host      UserProfile   `json:"host"`
	Attendees []UserProfile `json:"attendees"`
}

// EventAttendee is a join record linking a user to an event.
// At most one record exists per (event, user) pair; joining twice returns
// the existing record.
type EventAttendee struct {
	ID       int64     `json:"id"`
	EventID  int64     `json:"event_id"`
	UserID   int64     `json:"user_id"`
	JoinedAt time.Time `json:"joined_at"`
}
