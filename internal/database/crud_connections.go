// RealConnect - Event Networking and People Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/realconnect

package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/tomtom215/realconnect/internal/models"
)

// CreateConnection records a connection between two users at an event. The
// pair is treated as unordered: creating (A,B) when (B,A) exists returns the
// existing record with created=false. The UNIQUE constraint on the normalized
// pair closes the race between concurrent creates.
func (db *DB) CreateConnection(ctx context.Context, fromUserID, toUserID, eventID int64) (*models.Connection, bool, error) {
	lo, hi := orderPair(fromUserID, toUserID)

	if existing, err := db.getConnection(ctx, eventID, lo, hi); err == nil {
		return existing, false, nil
	} else if !errors.Is(err, ErrNotFound) {
		return nil, false, err
	}

	connection := &models.Connection{
		FromUserID: fromUserID,
		ToUserID:   toUserID,
		EventID:    eventID,
		CreatedAt:  time.Now(),
	}
	query := `INSERT INTO connections (from_user_id, to_user_id, event_id, pair_lo, pair_hi, created_at)
		VALUES (?, ?, ?, ?, ?, ?) RETURNING id`
	err := db.conn.QueryRowContext(ctx, query,
		fromUserID, toUserID, eventID, lo, hi, connection.CreatedAt).Scan(&connection.ID)
	if err != nil {
		if isUniqueConstraintError(err) {
			existing, lookupErr := db.getConnection(ctx, eventID, lo, hi)
			return existing, false, lookupErr
		}
		return nil, false, fmt.Errorf("failed to create connection: %w", err)
	}
	return connection, true, nil
}

// GetUserConnections returns the profiles connected to a user across all
// events, oldest connection first.
func (db *DB) GetUserConnections(ctx context.Context, userID int64) ([]models.UserProfile, error) {
	query := `SELECT u.id, u.username, u.email, u.password, u.full_name, u.age,
		u.hometown, u.state, u.college, u.high_school, u.school, u.background, u.aspirations,
		u.interests, u.social_links, u.profile_photo, u.created_at
	FROM connections c
	JOIN users u ON u.id = CASE WHEN c.from_user_id = ? THEN c.to_user_id ELSE c.from_user_id END
	WHERE c.from_user_id = ? OR c.to_user_id = ?
	ORDER BY c.id`

	rows, err := db.conn.QueryContext(ctx, query, userID, userID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list connections for user %d: %w", userID, err)
	}
	defer closeWithLog(rows, "rows")

	profiles := make([]models.UserProfile, 0)
	for rows.Next() {
		user, err := scanUserRows(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, *user.Profile())
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating connections: %w", err)
	}
	return profiles, nil
}

// ListConnections returns every connection record, for the admin surface.
func (db *DB) ListConnections(ctx context.Context) ([]models.Connection, error) {
	query := `SELECT id, from_user_id, to_user_id, event_id, created_at
		FROM connections ORDER BY id`
	rows, err := db.conn.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list connections: %w", err)
	}
	defer closeWithLog(rows, "rows")

	connections := make([]models.Connection, 0)
	for rows.Next() {
		var c models.Connection
		if err := rows.Scan(&c.ID, &c.FromUserID, &c.ToUserID, &c.EventID, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan connection: %w", err)
		}
		connections = append(connections, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating connections: %w", err)
	}
	return connections, nil
}

func (db *DB) getConnection(ctx context.Context, eventID, pairLo, pairHi int64) (*models.Connection, error) {
	var c models.Connection
	err := db.conn.QueryRowContext(ctx,
		`SELECT id, from_user_id, to_user_id, event_id, created_at FROM connections
		WHERE event_id = ? AND pair_lo = ? AND pair_hi = ?`,
		eventID, pairLo, pairHi).
		Scan(&c.ID, &c.FromUserID, &c.ToUserID, &c.EventID, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load connection: %w", err)
	}
	return &c, nil
}

func orderPair(a, b int64) (lo, hi int64) {
	if a <= b {
		return a, b
	}
	return b, a
}
