// RealConnect - Event Networking and People Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/realconnect

package match

import (
	"strings"

	"github.com/tomtom215/realconnect/internal/models"
)

// Event scoring weights. The per-attendee bonuses are deliberately smaller
// than the pair weights: an event aggregates over many attendees, so each
// attendee contributes a fraction of what a direct pair match would.
const (
	// WeightEventNameMention is added per viewer interest that appears as a
	// substring of the event name; WeightEventDescriptionMention per interest
	// appearing in the description. Both case-insensitive.
	WeightEventNameMention        = 3.0
	WeightEventDescriptionMention = 2.0

	// WeightAttendeeSharedInterest is added per interest shared with each
	// attendee.
	WeightAttendeeSharedInterest = 0.5

	// Per-attendee location and education bonuses. As in pair scoring, a
	// hometown match suppresses the state bonus.
	WeightAttendeeHometown   = 1.0
	WeightAttendeeState      = 0.5
	WeightAttendeeCollege    = 1.5
	WeightAttendeeHighSchool = 1.0
)

// ScoreEvent computes how interesting an event is for a viewer: interest
// mentions in the event's name and description, plus a summed per-attendee
// bonus for shared interests, location, and education. The viewer is assumed
// not to be among the attendees; callers pass the event's current attendee
// list as-is.
func ScoreEvent(viewer *models.UserProfile, event *models.Event, attendees []models.UserProfile) float64 {
	var score float64

	name := strings.ToLower(event.Name)
	description := strings.ToLower(event.Description)
	for _, interest := range viewer.Interests {
		interestLower := strings.ToLower(interest)
		if strings.Contains(name, interestLower) {
			score += WeightEventNameMention
		}
		if description != "" && strings.Contains(description, interestLower) {
			score += WeightEventDescriptionMention
		}
	}

	viewerHas := make(map[string]struct{}, len(viewer.Interests))
	for _, interest := range viewer.Interests {
		viewerHas[interest] = struct{}{}
	}

	for i := range attendees {
		attendee := &attendees[i]

		for _, interest := range attendee.Interests {
			if _, ok := viewerHas[interest]; ok {
				score += WeightAttendeeSharedInterest
			}
		}

		if fieldsMatchFold(viewer.Hometown, attendee.Hometown) {
			score += WeightAttendeeHometown
		} else if fieldsMatchFold(viewer.State, attendee.State) {
			score += WeightAttendeeState
		}

		if fieldsMatchFold(viewer.College, attendee.College) {
			score += WeightAttendeeCollege
		}
		if fieldsMatchFold(viewer.HighSchool, attendee.HighSchool) {
			score += WeightAttendeeHighSchool
		}
	}

	return score
}
