// RealConnect - Event Networking and People Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/realconnect

package api

import (
	"context"

	"github.com/tomtom215/realconnect/internal/database"
	"github.com/tomtom215/realconnect/internal/models"
)

// Store is the persistence surface the handlers depend on. database.DB is
// the production implementation; tests use an in-memory fake.
type Store interface {
	// Users
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	GetUserProfile(ctx context.Context, id int64) (*models.UserProfile, error)
	UpdateUserProfile(ctx context.Context, profile *models.UserProfile) (*models.UserProfile, error)
	ListUsers(ctx context.Context) ([]models.UserProfile, error)

	// Events
	CreateEvent(ctx context.Context, event *models.Event) error
	GetEventByID(ctx context.Context, id int64) (*models.Event, error)
	GetEventByJoinCode(ctx context.Context, code string) (*models.Event, error)
	UpdateEvent(ctx context.Context, event *models.Event) (*models.Event, error)
	GetAllEvents(ctx context.Context) ([]models.EventWithHost, error)
	GetHostedEvents(ctx context.Context, hostID int64) ([]models.Event, error)

	// Attendance
	JoinEvent(ctx context.Context, eventID, userID int64) (*models.EventAttendee, error)
	LeaveEvent(ctx context.Context, eventID, userID int64) error
	IsUserAttendingEvent(ctx context.Context, eventID, userID int64) (bool, error)
	GetEventAttendees(ctx context.Context, eventID int64) ([]models.UserProfile, error)
	GetUserEvents(ctx context.Context, userID int64) ([]models.Event, error)

	// Connections
	CreateConnection(ctx context.Context, fromUserID, toUserID, eventID int64) (*models.Connection, bool, error)
	GetUserConnections(ctx context.Context, userID int64) ([]models.UserProfile, error)
	ListConnections(ctx context.Context) ([]models.Connection, error)

	// Admin privileges
	GetAdminPrivilege(ctx context.Context, userID int64) (*models.AdminPrivilege, error)
	GrantAdmin(ctx context.Context, priv *models.AdminPrivilege) error
	UpdateAdminLevel(ctx context.Context, userID int64, level models.AdminLevel) error
	RevokeAdmin(ctx context.Context, userID int64) error
	ListAdmins(ctx context.Context) ([]models.AdminPrivilege, error)

	// Health
	Ping(ctx context.Context) error
}

var _ Store = (*database.DB)(nil)
