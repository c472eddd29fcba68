// RealConnect - Event Networking and People Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/realconnect

// Package authz resolves a user's administrative role.
//
// The role model is deliberately small: a privileges table plus one legacy
// fallback for the grandfathered super-admin account (a configured email, or
// user id 1 from the first deployment). The fallback lives here, in a single
// explicit case, so the rest of the codebase never special-cases those
// accounts.
package authz

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tomtom215/realconnect/internal/database"
	"github.com/tomtom215/realconnect/internal/logging"
	"github.com/tomtom215/realconnect/internal/models"
)

// Role is a user's effective administrative role.
type Role string

const (
	// RoleNone is a regular user with no admin access.
	RoleNone Role = "none"

	// RoleReadOnly may view admin listings but not change anything.
	RoleReadOnly Role = "readonly"

	// RoleStandard may view listings and manage events and users.
	RoleStandard Role = "standard"

	// RoleSuper may additionally grant and revoke admin privileges.
	RoleSuper Role = "super"
)

// IsAdmin reports whether the role grants any admin access.
func (r Role) IsAdmin() bool {
	return r == RoleReadOnly || r == RoleStandard || r == RoleSuper
}

// CanWrite reports whether the role may modify admin-managed data.
func (r Role) CanWrite() bool {
	return r == RoleStandard || r == RoleSuper
}

// CanManageAdmins reports whether the role may grant or revoke privileges.
func (r Role) CanManageAdmins() bool {
	return r == RoleSuper
}

// legacySuperAdminID is the first account of the original deployment, an
// admin before the privileges table existed.
const legacySuperAdminID int64 = 1

// PrivilegeStore supplies the reads role resolution needs. database.DB
// satisfies it.
type PrivilegeStore interface {
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	GetAdminPrivilege(ctx context.Context, userID int64) (*models.AdminPrivilege, error)
}

// Service resolves roles against the privilege store.
type Service struct {
	store            PrivilegeStore
	legacyAdminEmail string
	logger           zerolog.Logger
}

// NewService creates a role resolver. legacyAdminEmail may be empty to
// disable the email half of the legacy fallback.
func NewService(store PrivilegeStore, legacyAdminEmail string) *Service {
	return &Service{
		store:            store,
		legacyAdminEmail: legacyAdminEmail,
		logger:           logging.WithComponent("authz"),
	}
}

// Resolve returns a user's effective role. Unknown users resolve to
// RoleNone.
func (s *Service) Resolve(ctx context.Context, userID int64) (Role, error) {
	priv, err := s.Privilege(ctx, userID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return RoleNone, nil
		}
		return RoleNone, err
	}
	if priv == nil {
		return RoleNone, nil
	}
	return roleForLevel(priv.AdminLevel), nil
}

// Privilege returns a user's admin privilege record, synthesizing one for
// the legacy super-admin. Returns (nil, nil) for regular users and
// database.ErrNotFound for unknown users.
func (s *Service) Privilege(ctx context.Context, userID int64) (*models.AdminPrivilege, error) {
	priv, err := s.store.GetAdminPrivilege(ctx, userID)
	if err == nil {
		return priv, nil
	}
	if !errors.Is(err, database.ErrNotFound) {
		return nil, fmt.Errorf("load admin privilege: %w", err)
	}

	user, err := s.store.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	// Legacy fallback: the original deployment's admin account predates the
	// privileges table.
	if user.ID == legacySuperAdminID || (s.legacyAdminEmail != "" && user.Email == s.legacyAdminEmail) {
		s.logger.Debug().Int64("user_id", userID).Msg("legacy super-admin resolved")
		return &models.AdminPrivilege{
			UserID:        user.ID,
			AdminLevel:    models.AdminLevelSuper,
			IsSystemAdmin: true,
		}, nil
	}

	return nil, nil
}

func roleForLevel(level models.AdminLevel) Role {
	switch level {
	case models.AdminLevelSuper:
		return RoleSuper
	case models.AdminLevelStandard:
		return RoleStandard
	case models.AdminLevelReadOnly:
		return RoleReadOnly
	default:
		return RoleNone
	}
}
