// RealConnect - Event Networking and People Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/realconnect

package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/tomtom215/realconnect/internal/config"
	"github.com/tomtom215/realconnect/internal/models"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := New(&config.DatabaseConfig{Path: ":memory:", MaxMemory: "256MB"})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("close: %v", err)
		}
	})
	return db
}

func createTestUser(t *testing.T, db *DB, username string) *models.User {
	t.Helper()
	user := &models.User{
		UserProfile: models.UserProfile{
			Username:    username,
			Email:       username + "@example.com",
			FullName:    "Test " + username,
			Age:         30,
			Hometown:    "Austin",
			State:       "TX",
			Interests:   []string{"chess", "hiking"},
			SocialLinks: map[string]string{"website": "https://example.com/" + username},
		},
		Password: "hashed-password",
	}
	if err := db.CreateUser(context.Background(), user); err != nil {
		t.Fatalf("failed to create user %s: %v", username, err)
	}
	return user
}

func createTestEvent(t *testing.T, db *DB, hostID int64, name string) *models.Event {
	t.Helper()
	event := &models.Event{
		HostID:   hostID,
		Name:     name,
		Date:     time.Now().Add(24 * time.Hour),
		IsActive: true,
		IsPublic: true,
	}
	if err := db.CreateEvent(context.Background(), event); err != nil {
		t.Fatalf("failed to create event %s: %v", name, err)
	}
	return event
}

func TestCreateAndGetUser(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	created := createTestUser(t, db, "ada")
	if created.ID == 0 {
		t.Fatal("expected assigned id")
	}

	got, err := db.GetUserByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetUserByID() error = %v", err)
	}
	if got.Username != "ada" || got.Email != "ada@example.com" {
		t.Errorf("unexpected user %+v", got)
	}
	if len(got.Interests) != 2 || got.Interests[0] != "chess" {
		t.Errorf("interests did not round-trip: %v", got.Interests)
	}
	if got.SocialLinks["website"] == "" {
		t.Errorf("social links did not round-trip: %v", got.SocialLinks)
	}

	byEmail, err := db.GetUserByEmail(ctx, "ada@example.com")
	if err != nil || byEmail.ID != created.ID {
		t.Errorf("GetUserByEmail() = %v, %v", byEmail, err)
	}
}

func TestGetUserNotFound(t *testing.T) {
	db := openTestDB(t)
	if _, err := db.GetUserByID(context.Background(), 12345); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	db := openTestDB(t)
	createTestUser(t, db, "ada")

	dup := &models.User{
		UserProfile: models.UserProfile{
			Username: "other",
			Email:    "ada@example.com",
			FullName: "Other",
		},
		Password: "x",
	}
	if err := db.CreateUser(context.Background(), dup); !errors.Is(err, ErrDuplicate) {
		t.Errorf("expected ErrDuplicate, got %v", err)
	}
}

func TestUpdateUserProfile(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	user := createTestUser(t, db, "ada")

	profile := user.Profile()
	profile.College = "UT Austin"
	profile.Interests = []string{"math"}

	updated, err := db.UpdateUserProfile(ctx, profile)
	if err != nil {
		t.Fatalf("UpdateUserProfile() error = %v", err)
	}
	if updated.College != "UT Austin" {
		t.Errorf("college not updated: %q", updated.College)
	}
	if len(updated.Interests) != 1 || updated.Interests[0] != "math" {
		t.Errorf("interests not updated: %v", updated.Interests)
	}
}

func TestCreateEventGeneratesJoinCode(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	host := createTestUser(t, db, "host")

	event := createTestEvent(t, db, host.ID, "Mixer")
	if len(event.JoinCode) != 8 {
		t.Fatalf("expected 8-char join code, got %q", event.JoinCode)
	}

	got, err := db.GetEventByJoinCode(ctx, event.JoinCode)
	if err != nil {
		t.Fatalf("GetEventByJoinCode() error = %v", err)
	}
	if got.ID != event.ID {
		t.Errorf("lookup by join code returned event %d, want %d", got.ID, event.ID)
	}
}

func TestJoinEventIdempotent(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	host := createTestUser(t, db, "host")
	guest := createTestUser(t, db, "guest")
	event := createTestEvent(t, db, host.ID, "Mixer")

	first, err := db.JoinEvent(ctx, event.ID, guest.ID)
	if err != nil {
		t.Fatalf("first join error = %v", err)
	}
	second, err := db.JoinEvent(ctx, event.ID, guest.ID)
	if err != nil {
		t.Fatalf("second join error = %v", err)
	}
	if first.ID != second.ID {
		t.Errorf("second join created a new record: %d vs %d", first.ID, second.ID)
	}

	attendees, err := db.GetEventAttendees(ctx, event.ID)
	if err != nil {
		t.Fatalf("GetEventAttendees() error = %v", err)
	}
	if len(attendees) != 1 {
		t.Errorf("expected exactly one attendance record, got %d", len(attendees))
	}
}

func TestLeaveEvent(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	host := createTestUser(t, db, "host")
	guest := createTestUser(t, db, "guest")
	event := createTestEvent(t, db, host.ID, "Mixer")

	if _, err := db.JoinEvent(ctx, event.ID, guest.ID); err != nil {
		t.Fatalf("join error = %v", err)
	}
	if err := db.LeaveEvent(ctx, event.ID, guest.ID); err != nil {
		t.Fatalf("LeaveEvent() error = %v", err)
	}
	if err := db.LeaveEvent(ctx, event.ID, guest.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second leave should be ErrNotFound, got %v", err)
	}

	attending, err := db.IsUserAttendingEvent(ctx, event.ID, guest.ID)
	if err != nil || attending {
		t.Errorf("IsUserAttendingEvent() = %v, %v after leave", attending, err)
	}
}

func TestGetAllEventsAttachesHostAndCount(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	host := createTestUser(t, db, "host")
	guest := createTestUser(t, db, "guest")
	event := createTestEvent(t, db, host.ID, "Mixer")
	if _, err := db.JoinEvent(ctx, event.ID, guest.ID); err != nil {
		t.Fatalf("join error = %v", err)
	}

	events, err := db.GetAllEvents(ctx)
	if err != nil {
		t.Fatalf("GetAllEvents() error = %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if events[0].Host.ID != host.ID {
		t.Errorf("host not attached: %+v", events[0].Host)
	}
	if events[0].AttendeeCount != 1 {
		t.Errorf("AttendeeCount = %d, want 1", events[0].AttendeeCount)
	}
}

func TestCreateConnectionDirectionAgnostic(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	a := createTestUser(t, db, "alice")
	b := createTestUser(t, db, "bob")
	event := createTestEvent(t, db, a.ID, "Mixer")

	first, created, err := db.CreateConnection(ctx, a.ID, b.ID, event.ID)
	if err != nil {
		t.Fatalf("first create error = %v", err)
	}
	if !created {
		t.Fatal("first create reported created=false")
	}
	reversed, created, err := db.CreateConnection(ctx, b.ID, a.ID, event.ID)
	if err != nil {
		t.Fatalf("reversed create error = %v", err)
	}
	if created {
		t.Error("reversed create reported created=true")
	}
	if first.ID != reversed.ID {
		t.Errorf("reversed create made a new record: %d vs %d", first.ID, reversed.ID)
	}

	all, err := db.ListConnections(ctx)
	if err != nil {
		t.Fatalf("ListConnections() error = %v", err)
	}
	if len(all) != 1 {
		t.Errorf("expected exactly one connection record, got %d", len(all))
	}
}

func TestGetUserConnectionsReturnsOtherEndpoint(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	a := createTestUser(t, db, "alice")
	b := createTestUser(t, db, "bob")
	c := createTestUser(t, db, "carol")
	event := createTestEvent(t, db, a.ID, "Mixer")

	if _, _, err := db.CreateConnection(ctx, a.ID, b.ID, event.ID); err != nil {
		t.Fatalf("create error = %v", err)
	}
	if _, _, err := db.CreateConnection(ctx, c.ID, a.ID, event.ID); err != nil {
		t.Fatalf("create error = %v", err)
	}

	connections, err := db.GetUserConnections(ctx, a.ID)
	if err != nil {
		t.Fatalf("GetUserConnections() error = %v", err)
	}
	if len(connections) != 2 {
		t.Fatalf("expected 2 connections, got %d", len(connections))
	}
	ids := map[int64]bool{connections[0].ID: true, connections[1].ID: true}
	if !ids[b.ID] || !ids[c.ID] {
		t.Errorf("expected profiles of bob and carol, got %v", ids)
	}
}

func TestAdminPrivilegeLifecycle(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	admin := createTestUser(t, db, "root")
	user := createTestUser(t, db, "mod")

	if _, err := db.GetAdminPrivilege(ctx, user.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound before grant, got %v", err)
	}

	priv := &models.AdminPrivilege{
		UserID:     user.ID,
		AdminLevel: models.AdminLevelStandard,
		GrantedBy:  &admin.ID,
	}
	if err := db.GrantAdmin(ctx, priv); err != nil {
		t.Fatalf("GrantAdmin() error = %v", err)
	}

	got, err := db.GetAdminPrivilege(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetAdminPrivilege() error = %v", err)
	}
	if got.AdminLevel != models.AdminLevelStandard || got.GrantedBy == nil || *got.GrantedBy != admin.ID {
		t.Errorf("unexpected privilege %+v", got)
	}

	if err := db.UpdateAdminLevel(ctx, user.ID, models.AdminLevelReadOnly); err != nil {
		t.Fatalf("UpdateAdminLevel() error = %v", err)
	}
	got, err = db.GetAdminPrivilege(ctx, user.ID)
	if err != nil || got.AdminLevel != models.AdminLevelReadOnly {
		t.Errorf("level not updated: %+v, %v", got, err)
	}

	if err := db.RevokeAdmin(ctx, user.ID); err != nil {
		t.Fatalf("RevokeAdmin() error = %v", err)
	}
	if _, err := db.GetAdminPrivilege(ctx, user.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after revoke, got %v", err)
	}
}
