// RealConnect - Event Networking and People Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/realconnect

package api

import "errors"

// ErrForbidden marks requests by authenticated users who lack access to the
// resource. Distinct from a not-found and from an empty result: a private
// attendee list returns this, never an empty list.
var ErrForbidden = errors.New("forbidden")

// Error codes used in APIError.Code. Clients switch on these, so they are
// part of the wire contract.
const (
	CodeBadRequest       = "BAD_REQUEST"
	CodeUnauthorized     = "UNAUTHORIZED"
	CodeForbidden        = "FORBIDDEN"
	CodeNotFound         = "NOT_FOUND"
	CodeConflict         = "CONFLICT"
	CodeStoreUnavailable = "STORE_UNAVAILABLE"
	CodeInternal         = "INTERNAL_ERROR"
)
