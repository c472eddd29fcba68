// RealConnect - Event Networking and People Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/realconnect

package api

import (
	"time"

	"github.com/tomtom215/realconnect/internal/models"
)

// SignupRequest creates an account. Profile details beyond the name are
// filled in later through the profile update endpoint.
type SignupRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=128"`
	FullName string `json:"full_name" validate:"required,min=1,max=100"`
	Age      int    `json:"age"      validate:"omitempty,gte=13,lte=120"`
}

// LoginRequest exchanges credentials for a session token.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse returns the issued token together with the account profile.
type AuthResponse struct {
	Token string             `json:"token"`
	User  models.UserProfile `json:"user"`
}

// CreateEventRequest creates a hosted event. The join code is generated
// server-side.
type CreateEventRequest struct {
	Name          string                 `json:"name" validate:"required,min=1,max=200"`
	Description   string                 `json:"description" validate:"max=2000"`
	Location      string                 `json:"location" validate:"required,min=1,max=200"`
	Date          time.Time              `json:"date" validate:"required"`
	IsPublic      bool                   `json:"is_public"`
	VisibleFields models.FieldVisibility `json:"visible_fields"`
}

// UpdateEventRequest edits an event. Only the host may call it.
type UpdateEventRequest struct {
	Name          string                 `json:"name" validate:"required,min=1,max=200"`
	Description   string                 `json:"description" validate:"max=2000"`
	Location      string                 `json:"location" validate:"required,min=1,max=200"`
	Date          time.Time              `json:"date" validate:"required"`
	IsActive      *bool                  `json:"is_active"`
	IsPublic      *bool                  `json:"is_public"`
	VisibleFields models.FieldVisibility `json:"visible_fields"`
}

// UpdateProfileRequest edits the caller's own profile. Zero values clear the
// corresponding field, matching PUT semantics.
type UpdateProfileRequest struct {
	FullName     string            `json:"full_name" validate:"required,min=1,max=100"`
	Age          int               `json:"age" validate:"omitempty,gte=13,lte=120"`
	Hometown     string            `json:"hometown" validate:"max=100"`
	State        string            `json:"state" validate:"max=100"`
	College      string            `json:"college" validate:"max=200"`
	HighSchool   string            `json:"high_school" validate:"max=200"`
	School       string            `json:"school" validate:"max=200"`
	Background   string            `json:"background" validate:"max=2000"`
	Aspirations  string            `json:"aspirations" validate:"max=2000"`
	Interests    []string          `json:"interests" validate:"max=50,dive,min=1,max=50"`
	SocialLinks  map[string]string `json:"social_links"`
	ProfilePhoto string            `json:"profile_photo" validate:"max=500"`
}

// CreateConnectionRequest records that the caller met another attendee at an
// event.
type CreateConnectionRequest struct {
	UserID  int64 `json:"user_id" validate:"required,gt=0"`
	EventID int64 `json:"event_id" validate:"required,gt=0"`
}

// GrantAdminRequest grants an admin level to a user.
type GrantAdminRequest struct {
	UserID     int64  `json:"user_id" validate:"required,gt=0"`
	AdminLevel string `json:"admin_level" validate:"required,oneof=super standard readonly"`
}

// UpdateAdminRequest changes an existing grant's level.
type UpdateAdminRequest struct {
	AdminLevel string `json:"admin_level" validate:"required,oneof=super standard readonly"`
}
