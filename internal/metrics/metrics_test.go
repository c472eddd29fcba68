// RealConnect - Event Networking and People Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/realconnect

package metrics

import (
	"testing"
	"time"
)

func TestRecordAPIRequestDoesNotPanic(t *testing.T) {
	RecordAPIRequest("GET", "/api/v1/events", "200", 5*time.Millisecond)
	RecordAPIRequest("POST", "/api/v1/connections", "201", 12*time.Millisecond)
}

func TestRecordRecommendationDoesNotPanic(t *testing.T) {
	RecordRecommendation("events", 3*time.Millisecond)
	RecordRecommendation("people", 8*time.Millisecond)
}

func TestTrackActiveRequestBalanced(t *testing.T) {
	TrackActiveRequest(true)
	TrackActiveRequest(false)
}
