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
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tomtom215/realconnect/internal/models"
)

const eventColumns = `id, host_id, name, description, location, date,
	join_code, is_active, is_public, visible_fields, created_at`

// CreateEvent inserts an event. A join code is generated when absent.
func (db *DB) CreateEvent(ctx context.Context, event *models.Event) error {
	if event.JoinCode == "" {
		event.JoinCode = newJoinCode()
	}
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now()
	}
	visibleFields, err := marshalJSONColumn(event.VisibleFields)
	if err != nil {
		return err
	}

	query := `INSERT INTO events (
		host_id, name, description, location, date,
		join_code, is_active, is_public, visible_fields, created_at
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	RETURNING id`

	err = db.conn.QueryRowContext(ctx, query,
		event.HostID, event.Name, nullable(event.Description), nullable(event.Location),
		event.Date, event.JoinCode, event.IsActive, event.IsPublic,
		visibleFields, event.CreatedAt,
	).Scan(&event.ID)
	if err != nil {
		return fmt.Errorf("failed to create event: %w", err)
	}
	return nil
}

// GetEventByID retrieves a single event.
func (db *DB) GetEventByID(ctx context.Context, id int64) (*models.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = ?`
	return scanEvent(db.conn.QueryRowContext(ctx, query, id))
}

// GetEventByJoinCode retrieves an event by its shareable join code.
func (db *DB) GetEventByJoinCode(ctx context.Context, code string) (*models.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE join_code = ?`
	return scanEvent(db.conn.QueryRowContext(ctx, query, code))
}

// UpdateEvent overwrites an event's mutable fields. Host and join code stay
// fixed.
func (db *DB) UpdateEvent(ctx context.Context, event *models.Event) (*models.Event, error) {
	visibleFields, err := marshalJSONColumn(event.VisibleFields)
	if err != nil {
		return nil, err
	}

	query := `UPDATE events SET
		name = ?, description = ?, location = ?, date = ?,
		is_active = ?, is_public = ?, visible_fields = ?
	WHERE id = ?`

	result, err := db.conn.ExecContext(ctx, query,
		event.Name, nullable(event.Description), nullable(event.Location), event.Date,
		event.IsActive, event.IsPublic, visibleFields, event.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update event %d: %w", event.ID, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to update event %d: %w", event.ID, err)
	}
	if affected == 0 {
		return nil, ErrNotFound
	}
	return db.GetEventByID(ctx, event.ID)
}

// GetAllEvents returns every event with its host profile and attendee count,
// ordered by creation.
func (db *DB) GetAllEvents(ctx context.Context) ([]models.EventWithHost, error) {
	query := `SELECT
		e.id, e.host_id, e.name, e.description, e.location, e.date,
		e.join_code, e.is_active, e.is_public, e.visible_fields, e.created_at,
		(SELECT COUNT(*) FROM event_attendees a WHERE a.event_id = e.id) AS attendee_count
	FROM events e
	ORDER BY e.id`

	rows, err := db.conn.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	defer closeWithLog(rows, "rows")

	events := make([]models.EventWithHost, 0)
	for rows.Next() {
		var (
			ev            models.EventWithHost
			description   sql.NullString
			location      sql.NullString
			visibleFields sql.NullString
		)
		err := rows.Scan(
			&ev.ID, &ev.HostID, &ev.Name, &description, &location, &ev.Date,
			&ev.JoinCode, &ev.IsActive, &ev.IsPublic, &visibleFields, &ev.CreatedAt,
			&ev.AttendeeCount,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		ev.Description = description.String
		ev.Location = location.String
		if ev.VisibleFields, err = unmarshalVisibility(stringPtr(visibleFields)); err != nil {
			return nil, err
		}
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating events: %w", err)
	}

	// Attach hosts in one pass; the event list is small enough that a
	// per-host lookup with memoization beats a join against the wide user
	// row set.
	hosts := make(map[int64]*models.UserProfile)
	for i := range events {
		host, ok := hosts[events[i].HostID]
		if !ok {
			profile, err := db.GetUserProfile(ctx, events[i].HostID)
			if err != nil {
				if errors.Is(err, ErrNotFound) {
					continue
				}
				return nil, err
			}
			host = profile
			hosts[events[i].HostID] = host
		}
		events[i].Host = *host
	}

	return events, nil
}

// GetHostedEvents returns the events a user hosts.
func (db *DB) GetHostedEvents(ctx context.Context, hostID int64) ([]models.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE host_id = ? ORDER BY id`
	rows, err := db.conn.QueryContext(ctx, query, hostID)
	if err != nil {
		return nil, fmt.Errorf("failed to list hosted events: %w", err)
	}
	defer closeWithLog(rows, "rows")

	return collectEvents(rows)
}

func collectEvents(rows *sql.Rows) ([]models.Event, error) {
	events := make([]models.Event, 0)
	for rows.Next() {
		event, err := scanEventFrom(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, *event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating events: %w", err)
	}
	return events, nil
}

func scanEvent(row *sql.Row) (*models.Event, error) {
	event, err := scanEventFrom(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return event, nil
}

func scanEventFrom(scanner rowScanner) (*models.Event, error) {
	var (
		event         models.Event
		description   sql.NullString
		location      sql.NullString
		visibleFields sql.NullString
	)
	err := scanner.Scan(
		&event.ID, &event.HostID, &event.Name, &description, &location, &event.Date,
		&event.JoinCode, &event.IsActive, &event.IsPublic, &visibleFields, &event.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan event: %w", err)
	}
	event.Description = description.String
	event.Location = location.String
	if event.VisibleFields, err = unmarshalVisibility(stringPtr(visibleFields)); err != nil {
		return nil, err
	}
	return &event, nil
}

// newJoinCode returns a short shareable code, uppercase for readability.
func newJoinCode() string {
	return strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:8])
}
