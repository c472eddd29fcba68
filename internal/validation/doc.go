// RealConnect - Event Networking and People Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/realconnect

// Package validation wraps go-playground/validator v10 behind a thread-safe
// singleton with human-readable error messages and conversion to the API
// error format.
//
// Request DTOs declare constraints with validate struct tags:
//
//	type SignupRequest struct {
//	    Username string `validate:"required,min=3,max=50"`
//	    Email    string `validate:"required,email"`
//	    Password string `validate:"required,min=8"`
//	}
//
// Handlers call ValidateStruct and convert failures with ToAPIError.
package validation
