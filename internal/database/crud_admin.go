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

// GetAdminPrivilege returns a user's admin privilege row, or ErrNotFound.
func (db *DB) GetAdminPrivilege(ctx context.Context, userID int64) (*models.AdminPrivilege, error) {
	var (
		priv      models.AdminPrivilege
		grantedBy sql.NullInt64
	)
	err := db.conn.QueryRowContext(ctx,
		`SELECT user_id, admin_level, is_system_admin, granted_by, granted_at
		FROM admin_privileges WHERE user_id = ?`, userID).
		Scan(&priv.UserID, &priv.AdminLevel, &priv.IsSystemAdmin, &grantedBy, &priv.GrantedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load admin privilege: %w", err)
	}
	if grantedBy.Valid {
		priv.GrantedBy = &grantedBy.Int64
	}
	return &priv, nil
}

// GrantAdmin inserts or replaces a user's admin privilege.
func (db *DB) GrantAdmin(ctx context.Context, priv *models.AdminPrivilege) error {
	if priv.GrantedAt.IsZero() {
		priv.GrantedAt = time.Now()
	}
	var grantedBy sql.NullInt64
	if priv.GrantedBy != nil {
		grantedBy = sql.NullInt64{Int64: *priv.GrantedBy, Valid: true}
	}

	query := `INSERT OR REPLACE INTO admin_privileges
		(user_id, admin_level, is_system_admin, granted_by, granted_at)
		VALUES (?, ?, ?, ?, ?)`
	if _, err := db.conn.ExecContext(ctx, query,
		priv.UserID, priv.AdminLevel, priv.IsSystemAdmin, grantedBy, priv.GrantedAt); err != nil {
		return fmt.Errorf("failed to grant admin to user %d: %w", priv.UserID, err)
	}
	return nil
}

// UpdateAdminLevel changes an existing admin's level.
func (db *DB) UpdateAdminLevel(ctx context.Context, userID int64, level models.AdminLevel) error {
	result, err := db.conn.ExecContext(ctx,
		`UPDATE admin_privileges SET admin_level = ? WHERE user_id = ?`, level, userID)
	if err != nil {
		return fmt.Errorf("failed to update admin level for user %d: %w", userID, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update admin level for user %d: %w", userID, err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// RevokeAdmin deletes a user's admin privilege.
func (db *DB) RevokeAdmin(ctx context.Context, userID int64) error {
	result, err := db.conn.ExecContext(ctx,
		`DELETE FROM admin_privileges WHERE user_id = ?`, userID)
	if err != nil {
		return fmt.Errorf("failed to revoke admin for user %d: %w", userID, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to revoke admin for user %d: %w", userID, err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListAdmins returns every granted admin privilege.
func (db *DB) ListAdmins(ctx context.Context) ([]models.AdminPrivilege, error) {
	rows, err := db.conn.QueryContext(ctx,
		`SELECT user_id, admin_level, is_system_admin, granted_by, granted_at
		FROM admin_privileges ORDER BY user_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list admins: %w", err)
	}
	defer closeWithLog(rows, "rows")

	admins := make([]models.AdminPrivilege, 0)
	for rows.Next() {
		var (
			priv      models.AdminPrivilege
			grantedBy sql.NullInt64
		)
		if err := rows.Scan(&priv.UserID, &priv.AdminLevel, &priv.IsSystemAdmin, &grantedBy, &priv.GrantedAt); err != nil {
			return nil, fmt.Errorf("failed to scan admin privilege: %w", err)
		}
		if grantedBy.Valid {
			priv.GrantedBy = &grantedBy.Int64
		}
		admins = append(admins, priv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating admins: %w", err)
	}
	return admins, nil
}
