// RealConnect - Event Networking and People Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/realconnect

// Package match implements the affinity scorer: a deterministic weighted-rule
// heuristic that rates how compatible two profiles are, plus a lighter
// variant that rates how interesting an event is for a user.
//
// Scoring is a sum of independent pure rules (see PairRules), which keeps
// each rule individually testable and the scorer free of conditional sprawl.
// There is no randomness and no learned state; every score is recomputed
// from profile data on each request.
//
// Two rules are intentionally one-directional. The complementary-keyword
// rule compares the viewer's aspirations against the candidate's background
// only ("I want to move into X, they have done X"), and the event variant
// walks the event's current attendees from the viewer's perspective. Product
// has been flagged to confirm the asymmetry; do not "fix" it here.
package match
