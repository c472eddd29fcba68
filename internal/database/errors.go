// RealConnect - Event Networking and People Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/realconnect

package database

import (
	"errors"
	"io"
	"strings"

	"github.com/tomtom215/realconnect/internal/logging"
)

var (
	// ErrNotFound reports that a requested row does not exist.
	ErrNotFound = errors.New("not found")

	// ErrUnavailable reports that the store cannot be reached. The caller
	// does not retry; surfacing the failure is the store client's job.
	ErrUnavailable = errors.New("store unavailable")

	// ErrDuplicate reports a unique-constraint conflict that is not handled
	// idempotently (duplicate username or email at signup).
	ErrDuplicate = errors.New("duplicate record")
)

// isUniqueConstraintError detects DuckDB unique-constraint violations, which
// surface as driver errors mentioning "unique constraint" or "duplicate key".
func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "unique constraint") || strings.Contains(errMsg, "duplicate key")
}

// closeQuietly closes a resource in cleanup paths where Close errors are not
// actionable.
func closeQuietly(closer io.Closer) {
	if closer != nil {
		_ = closer.Close()
	}
}

// closeWithLog closes a resource and logs any error.
func closeWithLog(closer io.Closer, resourceType string) {
	if closer == nil {
		return
	}
	if err := closer.Close(); err != nil {
		logging.Warn().Str("type", resourceType).Err(err).Msg("Failed to close resource")
	}
}
