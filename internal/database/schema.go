// RealConnect - Event Networking and People Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/realconnect

package database

import (
	"context"
	"fmt"
	"time"
)

// schemaContext returns a context with timeout for schema operations.
func schemaContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 60*time.Second)
}

// createSchema creates sequences, tables, and indexes.
func (db *DB) createSchema() error {
	ctx, cancel := schemaContext()
	defer cancel()

	for _, query := range schemaQueries() {
		if _, err := db.conn.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("failed to execute query: %s: %w", query, err)
		}
	}
	return nil
}

func schemaQueries() []string {
	return []string{
		`CREATE SEQUENCE IF NOT EXISTS seq_users START 1`,
		`CREATE SEQUENCE IF NOT EXISTS seq_events START 1`,
		`CREATE SEQUENCE IF NOT EXISTS seq_event_attendees START 1`,
		`CREATE SEQUENCE IF NOT EXISTS seq_connections START 1`,

		`CREATE TABLE IF NOT EXISTS users (
			id BIGINT PRIMARY KEY DEFAULT nextval('seq_users'),
			username TEXT NOT NULL UNIQUE,
			email TEXT NOT NULL UNIQUE,
			password TEXT NOT NULL,
			full_name TEXT NOT NULL,
			age INTEGER,
			hometown TEXT,
			state TEXT,
			college TEXT,
			high_school TEXT,
			school TEXT,
			background TEXT,
			aspirations TEXT,
			interests TEXT,
			social_links TEXT,
			profile_photo TEXT,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE TABLE IF NOT EXISTS events (
			id BIGINT PRIMARY KEY DEFAULT nextval('seq_events'),
			host_id BIGINT NOT NULL,
			name TEXT NOT NULL,
			description TEXT,
			location TEXT,
			date TIMESTAMP NOT NULL,
			join_code TEXT NOT NULL UNIQUE,
			is_active BOOLEAN NOT NULL DEFAULT true,
			is_public BOOLEAN NOT NULL DEFAULT false,
			visible_fields TEXT,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,

		// The UNIQUE constraint makes duplicate joins fail at the store so
		// join stays idempotent under concurrency.
		`CREATE TABLE IF NOT EXISTS event_attendees (
			id BIGINT PRIMARY KEY DEFAULT nextval('seq_event_attendees'),
			event_id BIGINT NOT NULL,
			user_id BIGINT NOT NULL,
			joined_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			UNIQUE (event_id, user_id)
		)`,

		// pair_lo/pair_hi hold the unordered user pair, so (A,B) and (B,A)
		// collide on the same constraint.
		`CREATE TABLE IF NOT EXISTS connections (
			id BIGINT PRIMARY KEY DEFAULT nextval('seq_connections'),
			from_user_id BIGINT NOT NULL,
			to_user_id BIGINT NOT NULL,
			event_id BIGINT NOT NULL,
			pair_lo BIGINT NOT NULL,
			pair_hi BIGINT NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			UNIQUE (event_id, pair_lo, pair_hi)
		)`,

		`CREATE TABLE IF NOT EXISTS admin_privileges (
			user_id BIGINT PRIMARY KEY,
			admin_level TEXT NOT NULL,
			is_system_admin BOOLEAN NOT NULL DEFAULT false,
			granted_by BIGINT,
			granted_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE INDEX IF NOT EXISTS idx_events_host ON events(host_id)`,
		`CREATE INDEX IF NOT EXISTS idx_attendees_user ON event_attendees(user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_attendees_event ON event_attendees(event_id)`,
		`CREATE INDEX IF NOT EXISTS idx_connections_from ON connections(from_user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_connections_to ON connections(to_user_id)`,
	}
}
