// RealConnect - Event Networking and People Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/realconnect

// Package database is the embedded DuckDB store for users, events,
// attendance, connections, and admin privileges.
//
// Schema notes: ids come from sequences; interests, social links, and
// per-event visible-field maps are stored as JSON text columns. The UNIQUE
// constraints on event_attendees(event_id, user_id) and
// connections(event_id, pair_lo, pair_hi) back the idempotent join and
// direction-agnostic connection guarantees, so concurrent duplicate writes
// fail at the store rather than racing past a check.
package database
