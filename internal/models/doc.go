// RealConnect - Event Networking and People Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/realconnect

// Package models defines the core domain types shared across the storage,
// matching, and API layers: users and their profiles, events with per-field
// visibility configuration, attendance records, and connections.
//
// The types here are deliberately free of behavior beyond small convenience
// accessors; scoring lives in internal/match, redaction in internal/visibility,
// and persistence in internal/database.
package models
