// RealConnect - Event Networking and People Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/realconnect

package authz

import (
	"context"
	"testing"

	"github.com/tomtom215/realconnect/internal/database"
	"github.com/tomtom215/realconnect/internal/models"
)

type fakeStore struct {
	users map[int64]models.User
	privs map[int64]models.AdminPrivilege
}

func (f *fakeStore) GetUserByID(_ context.Context, id int64) (*models.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, database.ErrNotFound
	}
	return &user, nil
}

func (f *fakeStore) GetAdminPrivilege(_ context.Context, userID int64) (*models.AdminPrivilege, error) {
	priv, ok := f.privs[userID]
	if !ok {
		return nil, database.ErrNotFound
	}
	return &priv, nil
}

func TestResolve(t *testing.T) {
	store := &fakeStore{
		users: map[int64]models.User{
			1: {UserProfile: models.UserProfile{ID: 1, Email: "first@example.com"}},
			2: {UserProfile: models.UserProfile{ID: 2, Email: "admin@realconnect.ing"}},
			3: {UserProfile: models.UserProfile{ID: 3, Email: "user@example.com"}},
			4: {UserProfile: models.UserProfile{ID: 4, Email: "mod@example.com"}},
		},
		privs: map[int64]models.AdminPrivilege{
			4: {UserID: 4, AdminLevel: models.AdminLevelStandard},
		},
	}
	service := NewService(store, "admin@realconnect.ing")

	tests := []struct {
		name   string
		userID int64
		want   Role
	}{
		{name: "legacy id 1 is super", userID: 1, want: RoleSuper},
		{name: "legacy email is super", userID: 2, want: RoleSuper},
		{name: "regular user has no role", userID: 3, want: RoleNone},
		{name: "granted standard admin", userID: 4, want: RoleStandard},
		{name: "unknown user has no role", userID: 99, want: RoleNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := service.Resolve(context.Background(), tt.userID)
			if err != nil {
				t.Fatalf("Resolve() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Resolve(%d) = %q, want %q", tt.userID, got, tt.want)
			}
		})
	}
}

func TestPrivilegeSynthesizesSystemAdmin(t *testing.T) {
	store := &fakeStore{
		users: map[int64]models.User{
			1: {UserProfile: models.UserProfile{ID: 1, Email: "first@example.com"}},
		},
		privs: map[int64]models.AdminPrivilege{},
	}
	service := NewService(store, "")

	priv, err := service.Privilege(context.Background(), 1)
	if err != nil {
		t.Fatalf("Privilege() error = %v", err)
	}
	if priv == nil || !priv.IsSystemAdmin || priv.AdminLevel != models.AdminLevelSuper {
		t.Errorf("expected synthesized system super-admin, got %+v", priv)
	}
}

func TestTablePrivilegeWinsOverLegacy(t *testing.T) {
	// A stored row for user 1 takes precedence over the fallback, so a
	// demotion recorded in the table actually applies.
	store := &fakeStore{
		users: map[int64]models.User{
			1: {UserProfile: models.UserProfile{ID: 1, Email: "first@example.com"}},
		},
		privs: map[int64]models.AdminPrivilege{
			1: {UserID: 1, AdminLevel: models.AdminLevelReadOnly},
		},
	}
	service := NewService(store, "")

	role, err := service.Resolve(context.Background(), 1)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if role != RoleReadOnly {
		t.Errorf("Resolve(1) = %q, want readonly from table row", role)
	}
}

func TestRolePredicates(t *testing.T) {
	tests := []struct {
		role            Role
		isAdmin         bool
		canWrite        bool
		canManageAdmins bool
	}{
		{RoleNone, false, false, false},
		{RoleReadOnly, true, false, false},
		{RoleStandard, true, true, false},
		{RoleSuper, true, true, true},
	}
	for _, tt := range tests {
		if got := tt.role.IsAdmin(); got != tt.isAdmin {
			t.Errorf("%s.IsAdmin() = %v", tt.role, got)
		}
		if got := tt.role.CanWrite(); got != tt.canWrite {
			t.Errorf("%s.CanWrite() = %v", tt.role, got)
		}
		if got := tt.role.CanManageAdmins(); got != tt.canManageAdmins {
			t.Errorf("%s.CanManageAdmins() = %v", tt.role, got)
		}
	}
}
