// RealConnect - Event Networking and People Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/realconnect

// Package api provides the HTTP surface: Chi routing, middleware, request
// decoding and the JSON response envelope.
//
// All endpoints live under /api/v1 and speak the APIResponse envelope from
// internal/models. Handlers depend on the Store interface rather than the
// concrete database so tests can run against a fake.
package api
