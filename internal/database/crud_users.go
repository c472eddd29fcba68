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

const userColumns = `id, username, email, password, full_name, age,
	hometown, state, college, high_school, school, background, aspirations,
	interests, social_links, profile_photo, created_at`

// CreateUser inserts a new account. The password must already be hashed.
// Returns ErrDuplicate when the username or email is taken.
func (db *DB) CreateUser(ctx context.Context, user *models.User) error {
	interests, err := marshalJSONColumn(user.Interests)
	if err != nil {
		return err
	}
	socialLinks, err := marshalJSONColumn(user.SocialLinks)
	if err != nil {
		return err
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}

	query := `INSERT INTO users (
		username, email, password, full_name, age,
		hometown, state, college, high_school, school, background, aspirations,
		interests, social_links, profile_photo, created_at
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	RETURNING id`

	err = db.conn.QueryRowContext(ctx, query,
		user.Username, user.Email, user.Password, user.FullName, nullableInt(user.Age),
		nullable(user.Hometown), nullable(user.State), nullable(user.College),
		nullable(user.HighSchool), nullable(user.School), nullable(user.Background),
		nullable(user.Aspirations), interests, socialLinks,
		nullable(user.ProfilePhoto), user.CreatedAt,
	).Scan(&user.ID)
	if err != nil {
		if isUniqueConstraintError(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetUserByID retrieves a full user record including the password hash.
func (db *DB) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = ?`
	return scanUser(db.conn.QueryRowContext(ctx, query, id))
}

// GetUserByEmail retrieves a user by email, for login.
func (db *DB) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = ?`
	return scanUser(db.conn.QueryRowContext(ctx, query, email))
}

// GetUserByUsername retrieves a user by username.
func (db *DB) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = ?`
	return scanUser(db.conn.QueryRowContext(ctx, query, username))
}

// GetUserProfile retrieves the public profile for a user.
func (db *DB) GetUserProfile(ctx context.Context, id int64) (*models.UserProfile, error) {
	user, err := db.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return user.Profile(), nil
}

// UpdateUserProfile overwrites the mutable profile fields. Username, email,
// and password stay untouched.
func (db *DB) UpdateUserProfile(ctx context.Context, profile *models.UserProfile) (*models.UserProfile, error) {
	interests, err := marshalJSONColumn(profile.Interests)
	if err != nil {
		return nil, err
	}
	socialLinks, err := marshalJSONColumn(profile.SocialLinks)
	if err != nil {
		return nil, err
	}

	query := `UPDATE users SET
		full_name = ?, age = ?, hometown = ?, state = ?, college = ?,
		high_school = ?, school = ?, background = ?, aspirations = ?,
		interests = ?, social_links = ?, profile_photo = ?
	WHERE id = ?`

	result, err := db.conn.ExecContext(ctx, query,
		profile.FullName, nullableInt(profile.Age), nullable(profile.Hometown),
		nullable(profile.State), nullable(profile.College), nullable(profile.HighSchool),
		nullable(profile.School), nullable(profile.Background), nullable(profile.Aspirations),
		interests, socialLinks, nullable(profile.ProfilePhoto), profile.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update user %d: %w", profile.ID, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to update user %d: %w", profile.ID, err)
	}
	if affected == 0 {
		return nil, ErrNotFound
	}

	return db.GetUserProfile(ctx, profile.ID)
}

// ListUsers returns every user's profile, for the admin surface.
func (db *DB) ListUsers(ctx context.Context) ([]models.UserProfile, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY id`
	rows, err := db.conn.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
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
		return nil, fmt.Errorf("error iterating users: %w", err)
	}
	return profiles, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanUser(row *sql.Row) (*models.User, error) {
	user, err := scanUserFrom(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

func scanUserRows(rows *sql.Rows) (*models.User, error) {
	return scanUserFrom(rows)
}

func scanUserFrom(scanner rowScanner) (*models.User, error) {
	var (
		user        models.User
		age         sql.NullInt64
		hometown    sql.NullString
		state       sql.NullString
		college     sql.NullString
		highSchool  sql.NullString
		school      sql.NullString
		background  sql.NullString
		aspirations sql.NullString
		interests   sql.NullString
		socialLinks sql.NullString
		photo       sql.NullString
	)

	err := scanner.Scan(
		&user.ID, &user.Username, &user.Email, &user.Password, &user.FullName, &age,
		&hometown, &state, &college, &highSchool, &school, &background, &aspirations,
		&interests, &socialLinks, &photo, &user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan user: %w", err)
	}

	user.Age = int(age.Int64)
	user.Hometown = hometown.String
	user.State = state.String
	user.College = college.String
	user.HighSchool = highSchool.String
	user.School = school.String
	user.Background = background.String
	user.Aspirations = aspirations.String
	user.ProfilePhoto = photo.String

	if user.Interests, err = unmarshalStringSlice(stringPtr(interests)); err != nil {
		return nil, err
	}
	if user.SocialLinks, err = unmarshalStringMap(stringPtr(socialLinks)); err != nil {
		return nil, err
	}

	return &user, nil
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullableInt(i int) sql.NullInt64 {
	return sql.NullInt64{Int64: int64(i), Valid: i > 0}
}

func stringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	return &ns.String
}
