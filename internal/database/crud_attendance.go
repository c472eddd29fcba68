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

// JoinEvent records attendance. Joining twice returns the existing record
// unchanged; the UNIQUE constraint closes the check-then-insert race.
func (db *DB) JoinEvent(ctx context.Context, eventID, userID int64) (*models.EventAttendee, error) {
	if existing, err := db.getAttendance(ctx, eventID, userID); err == nil {
		return existing, nil
	} else if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	attendee := &models.EventAttendee{
		EventID:  eventID,
		UserID:   userID,
		JoinedAt: time.Now(),
	}
	query := `INSERT INTO event_attendees (event_id, user_id, joined_at)
		VALUES (?, ?, ?) RETURNING id`
	err := db.conn.QueryRowContext(ctx, query, eventID, userID, attendee.JoinedAt).Scan(&attendee.ID)
	if err != nil {
		if isUniqueConstraintError(err) {
			// Lost the race to a concurrent join; the winner's record is the
			// answer.
			return db.getAttendance(ctx, eventID, userID)
		}
		return nil, fmt.Errorf("failed to join event %d: %w", eventID, err)
	}
	return attendee, nil
}

// LeaveEvent removes attendance. Returns ErrNotFound when the user was not
// attending.
func (db *DB) LeaveEvent(ctx context.Context, eventID, userID int64) error {
	result, err := db.conn.ExecContext(ctx,
		`DELETE FROM event_attendees WHERE event_id = ? AND user_id = ?`, eventID, userID)
	if err != nil {
		return fmt.Errorf("failed to leave event %d: %w", eventID, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to leave event %d: %w", eventID, err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// IsUserAttendingEvent reports whether an attendance record exists.
func (db *DB) IsUserAttendingEvent(ctx context.Context, eventID, userID int64) (bool, error) {
	var count int
	err := db.conn.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM event_attendees WHERE event_id = ? AND user_id = ?`,
		eventID, userID).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check attendance: %w", err)
	}
	return count > 0, nil
}

// GetEventAttendees returns the profiles attending an event, in join order.
func (db *DB) GetEventAttendees(ctx context.Context, eventID int64) ([]models.UserProfile, error) {
	query := `SELECT u.id, u.username, u.email, u.password, u.full_name, u.age,
		u.hometown, u.state, u.college, u.high_school, u.school, u.background, u.aspirations,
		u.interests, u.social_links, u.profile_photo, u.created_at
	FROM event_attendees a
	JOIN users u ON u.id = a.user_id
	WHERE a.event_id = ?
	ORDER BY a.id`

	rows, err := db.conn.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendees for event %d: %w", eventID, err)
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
		return nil, fmt.Errorf("error iterating attendees: %w", err)
	}
	return profiles, nil
}

// GetUserEvents returns the events a user attends, in join order.
func (db *DB) GetUserEvents(ctx context.Context, userID int64) ([]models.Event, error) {
	query := `SELECT e.id, e.host_id, e.name, e.description, e.location, e.date,
		e.join_code, e.is_active, e.is_public, e.visible_fields, e.created_at
	FROM event_attendees a
	JOIN events e ON e.id = a.event_id
	WHERE a.user_id = ?
	ORDER BY a.id`

	rows, err := db.conn.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list events for user %d: %w", userID, err)
	}
	defer closeWithLog(rows, "rows")

	return collectEvents(rows)
}

func (db *DB) getAttendance(ctx context.Context, eventID, userID int64) (*models.EventAttendee, error) {
	var attendee models.EventAttendee
	err := db.conn.QueryRowContext(ctx,
		`SELECT id, event_id, user_id, joined_at FROM event_attendees
		WHERE event_id = ? AND user_id = ?`, eventID, userID).
		Scan(&attendee.ID, &attendee.EventID, &attendee.UserID, &attendee.JoinedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load attendance: %w", err)
	}
	return &attendee, nil
}
