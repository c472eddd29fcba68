// RealConnect - Event Networking and People Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/realconnect

// Package auth implements stateless session authentication.
//
// Signup and login exchange email+password credentials for an HS256-signed
// JWT carrying the user id. Passwords are stored as bcrypt hashes and never
// leave the storage layer. There is no server-side session state; logout is
// a client-side token discard.
package auth
