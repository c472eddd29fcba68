// RealConnect - Event Networking and People Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/realconnect

// Package visibility redacts attendee profiles according to an event's
// per-field visibility configuration.
//
// Hosts choose which profile fields attendees may see of each other. The
// filter works over an enumerated set of known field keys rather than
// free-form map access, so unknown keys in a stored configuration are
// ignored instead of silently admitting new fields. A missing configuration
// means everything is visible; the full name and id are always visible
// regardless of configuration, since an attendee list without names is
// useless.
package visibility

import (
	"github.com/tomtom215/realconnect/internal/models"
)

// Known visibility field keys. These are the only keys the filter honors;
// anything else in a stored configuration is ignored.
const (
	FieldAge          = "age"
	FieldHometown     = "hometown"
	FieldState        = "state"
	FieldCollege      = "college"
	FieldHighSchool   = "high_school"
	FieldSchool       = "school"
	FieldBackground   = "background"
	FieldAspirations  = "aspirations"
	FieldInterests    = "interests"
	FieldSocialLinks  = "social_links"
	FieldProfilePhoto = "profile_photo"
)

// Fields lists every recognized visibility key.
func Fields() []string {
	return []string{
		FieldAge, FieldHometown, FieldState, FieldCollege, FieldHighSchool,
		FieldSchool, FieldBackground, FieldAspirations, FieldInterests,
		FieldSocialLinks, FieldProfilePhoto,
	}
}

// AttendeeView is a redacted attendee profile. ID and FullName are always
// present; every other field is omitted from the JSON encoding when hidden
// by the event's configuration (or simply unset on the profile).
type AttendeeView struct {
	ID       int64  `json:"id"`
	FullName string `json:"full_name"`

	Age          *int              `json:"age,omitempty"`
	Hometown     *string           `json:"hometown,omitempty"`
	State        *string           `json:"state,omitempty"`
	College      *string           `json:"college,omitempty"`
	HighSchool   *string           `json:"high_school,omitempty"`
	School       *string           `json:"school,omitempty"`
	Background   *string           `json:"background,omitempty"`
	Aspirations  *string           `json:"aspirations,omitempty"`
	Interests    []string          `json:"interests,omitempty"`
	SocialLinks  map[string]string `json:"social_links,omitempty"`
	ProfilePhoto *string           `json:"profile_photo,omitempty"`
}

// FilterAttendee produces the redacted view of a profile under the given
// visibility configuration. A nil configuration exposes everything (legacy
// events predate per-field visibility). Fields that are unset on the profile
// stay absent even when visible.
func FilterAttendee(profile *models.UserProfile, visible models.FieldVisibility) AttendeeView {
	view := AttendeeView{
		ID:       profile.ID,
		FullName: profile.FullName,
	}

	if visible.Visible(FieldAge) && profile.Age > 0 {
		view.Age = &profile.Age
	}
	if visible.Visible(FieldHometown) {
		view.Hometown = optional(profile.Hometown)
	}
	if visible.Visible(FieldState) {
		view.State = optional(profile.State)
	}
	if visible.Visible(FieldCollege) {
		view.College = optional(profile.College)
	}
	if visible.Visible(FieldHighSchool) {
		view.HighSchool = optional(profile.HighSchool)
	}
	if visible.Visible(FieldSchool) {
		view.School = optional(profile.School)
	}
	if visible.Visible(FieldBackground) {
		view.Background = optional(profile.Background)
	}
	if visible.Visible(FieldAspirations) {
		view.Aspirations = optional(profile.Aspirations)
	}
	if visible.Visible(FieldInterests) && len(profile.Interests) > 0 {
		view.Interests = profile.Interests
	}
	if visible.Visible(FieldSocialLinks) && len(profile.SocialLinks) > 0 {
		view.SocialLinks = profile.SocialLinks
	}
	if visible.Visible(FieldProfilePhoto) {
		view.ProfilePhoto = optional(profile.ProfilePhoto)
	}

	return view
}

// FilterAttendees applies FilterAttendee to every profile in order.
func FilterAttendees(profiles []models.UserProfile, visible models.FieldVisibility) []AttendeeView {
	views := make([]AttendeeView, 0, len(profiles))
	for i := range profiles {
		views = append(views, FilterAttendee(&profiles[i], visible))
	}
	return views
}

// CanListAttendees reports whether a requester may see an event's attendee
// list: the host always, attendees always, everyone for public events.
// Callers re-check this on every request rather than caching the answer.
func CanListAttendees(event *models.Event, requesterID int64, isAttendee bool) bool {
	if event.HostID == requesterID {
		return true
	}
	if isAttendee {
		return true
	}
	return event.IsPublic
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
