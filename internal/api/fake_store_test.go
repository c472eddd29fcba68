// RealConnect - Event Networking and People Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/realconnect

package api

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tomtom215/realconnect/internal/database"
	"github.com/tomtom215/realconnect/internal/models"
)

// fakeStore is an in-memory Store for handler tests. It mirrors the
// database semantics the handlers rely on: ErrNotFound for missing rows,
// ErrDuplicate on email or username reuse, idempotent joins and
// direction-agnostic connections.
type fakeStore struct {
	mu          sync.Mutex
	users       map[int64]*models.User
	events      map[int64]*models.Event
	attendance  map[int64]map[int64]*models.EventAttendee
	connections []*models.Connection
	admins      map[int64]*models.AdminPrivilege
	nextID      int64
	pingErr     error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:      make(map[int64]*models.User),
		events:     make(map[int64]*models.Event),
		attendance: make(map[int64]map[int64]*models.EventAttendee),
		admins:     make(map[int64]*models.AdminPrivilege),
	}
}

func (s *fakeStore) id() int64 {
	s.nextID++
	return s.nextID
}

func (s *fakeStore) CreateUser(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.users {
		if existing.Email == user.Email || existing.Username == user.Username {
			return database.ErrDuplicate
		}
	}
	user.ID = s.id()
	user.CreatedAt = time.Now()
	clone := *user
	s.users[user.ID] = &clone
	return nil
}

func (s *fakeStore) GetUserByID(_ context.Context, id int64) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[id]
	if !ok {
		return nil, database.ErrNotFound
	}
	clone := *user
	return &clone, nil
}

func (s *fakeStore) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, user := range s.users {
		if user.Email == email {
			clone := *user
			return &clone, nil
		}
	}
	return nil, database.ErrNotFound
}

func (s *fakeStore) GetUserByUsername(_ context.Context, username string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, user := range s.users {
		if user.Username == username {
			clone := *user
			return &clone, nil
		}
	}
	return nil, database.ErrNotFound
}

func (s *fakeStore) GetUserProfile(ctx context.Context, id int64) (*models.UserProfile, error) {
	user, err := s.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return user.Profile(), nil
}

func (s *fakeStore) UpdateUserProfile(_ context.Context, profile *models.UserProfile) (*models.UserProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[profile.ID]
	if !ok {
		return nil, database.ErrNotFound
	}
	updated := *profile
	updated.Username = user.Username
	updated.Email = user.Email
	updated.CreatedAt = user.CreatedAt
	user.UserProfile = updated
	return user.Profile(), nil
}

func (s *fakeStore) ListUsers(_ context.Context) ([]models.UserProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	profiles := make([]models.UserProfile, 0, len(s.users))
	for _, id := range s.sortedUserIDs() {
		profiles = append(profiles, *s.users[id].Profile())
	}
	return profiles, nil
}

func (s *fakeStore) sortedUserIDs() []int64 {
	ids := make([]int64, 0, len(s.users))
	for id := range s.users {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (s *fakeStore) CreateEvent(_ context.Context, event *models.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	event.ID = s.id()
	if event.JoinCode == "" {
		event.JoinCode = uuid.NewString()[:8]
	}
	event.CreatedAt = time.Now()
	clone := *event
	s.events[event.ID] = &clone
	return nil
}

func (s *fakeStore) GetEventByID(_ context.Context, id int64) (*models.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	event, ok := s.events[id]
	if !ok {
		return nil, database.ErrNotFound
	}
	clone := *event
	return &clone, nil
}

func (s *fakeStore) GetEventByJoinCode(_ context.Context, code string) (*models.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, event := range s.events {
		if event.JoinCode == code {
			clone := *event
			return &clone, nil
		}
	}
	return nil, database.ErrNotFound
}

func (s *fakeStore) UpdateEvent(_ context.Context, event *models.Event) (*models.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.events[event.ID]; !ok {
		return nil, database.ErrNotFound
	}
	clone := *event
	s.events[event.ID] = &clone
	result := clone
	return &result, nil
}

func (s *fakeStore) GetAllEvents(_ context.Context) ([]models.EventWithHost, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]int64, 0, len(s.events))
	for id := range s.events {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	events := make([]models.EventWithHost, 0, len(ids))
	for _, id := range ids {
		event := s.events[id]
		enriched := models.EventWithHost{Event: *event}
		if host, ok := s.users[event.HostID]; ok {
			enriched.Host = *host.Profile()
		}
		enriched.AttendeeCount = len(s.attendance[id])
		events = append(events, enriched)
	}
	return events, nil
}

func (s *fakeStore) GetHostedEvents(_ context.Context, hostID int64) ([]models.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	events := make([]models.Event, 0)
	for _, event := range s.events {
		if event.HostID == hostID {
			events = append(events, *event)
		}
	}
	sort.Slice(events, func(i, j int) bool { return events[i].ID < events[j].ID })
	return events, nil
}

func (s *fakeStore) JoinEvent(_ context.Context, eventID, userID int64) (*models.EventAttendee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.events[eventID]; !ok {
		return nil, database.ErrNotFound
	}
	if s.attendance[eventID] == nil {
		s.attendance[eventID] = make(map[int64]*models.EventAttendee)
	}
	if existing, ok := s.attendance[eventID][userID]; ok {
		clone := *existing
		return &clone, nil
	}
	record := &models.EventAttendee{
		ID:       s.id(),
		EventID:  eventID,
		UserID:   userID,
		JoinedAt: time.Now(),
	}
	s.attendance[eventID][userID] = record
	clone := *record
	return &clone, nil
}

func (s *fakeStore) LeaveEvent(_ context.Context, eventID, userID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.attendance[eventID][userID]; !ok {
		return database.ErrNotFound
	}
	delete(s.attendance[eventID], userID)
	return nil
}

func (s *fakeStore) IsUserAttendingEvent(_ context.Context, eventID, userID int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.attendance[eventID][userID]
	return ok, nil
}

func (s *fakeStore) GetEventAttendees(_ context.Context, eventID int64) ([]models.UserProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	records := make([]*models.EventAttendee, 0, len(s.attendance[eventID]))
	for _, record := range s.attendance[eventID] {
		records = append(records, record)
	}
	sort.Slice(records, func(i, j int) bool { return records[i].ID < records[j].ID })

	profiles := make([]models.UserProfile, 0, len(records))
	for _, record := range records {
		if user, ok := s.users[record.UserID]; ok {
			profiles = append(profiles, *user.Profile())
		}
	}
	return profiles, nil
}

func (s *fakeStore) GetUserEvents(_ context.Context, userID int64) ([]models.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	events := make([]models.Event, 0)
	for eventID, attendees := range s.attendance {
		if _, ok := attendees[userID]; ok {
			events = append(events, *s.events[eventID])
		}
	}
	sort.Slice(events, func(i, j int) bool { return events[i].ID < events[j].ID })
	return events, nil
}

func (s *fakeStore) CreateConnection(_ context.Context, fromUserID, toUserID, eventID int64) (*models.Connection, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	lo, hi := fromUserID, toUserID
	if lo > hi {
		lo, hi = hi, lo
	}
	for _, conn := range s.connections {
		clo, chi := conn.FromUserID, conn.ToUserID
		if clo > chi {
			clo, chi = chi, clo
		}
		if conn.EventID == eventID && clo == lo && chi == hi {
			clone := *conn
			return &clone, false, nil
		}
	}
	conn := &models.Connection{
		ID:         s.id(),
		FromUserID: fromUserID,
		ToUserID:   toUserID,
		EventID:    eventID,
		CreatedAt:  time.Now(),
	}
	s.connections = append(s.connections, conn)
	clone := *conn
	return &clone, true, nil
}

func (s *fakeStore) GetUserConnections(_ context.Context, userID int64) ([]models.UserProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	profiles := make([]models.UserProfile, 0)
	for _, conn := range s.connections {
		var other int64
		switch userID {
		case conn.FromUserID:
			other = conn.ToUserID
		case conn.ToUserID:
			other = conn.FromUserID
		default:
			continue
		}
		if user, ok := s.users[other]; ok {
			profiles = append(profiles, *user.Profile())
		}
	}
	return profiles, nil
}

func (s *fakeStore) ListConnections(_ context.Context) ([]models.Connection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	connections := make([]models.Connection, 0, len(s.connections))
	for _, conn := range s.connections {
		connections = append(connections, *conn)
	}
	return connections, nil
}

func (s *fakeStore) GetAdminPrivilege(_ context.Context, userID int64) (*models.AdminPrivilege, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	priv, ok := s.admins[userID]
	if !ok {
		return nil, database.ErrNotFound
	}
	clone := *priv
	return &clone, nil
}

func (s *fakeStore) GrantAdmin(_ context.Context, priv *models.AdminPrivilege) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	clone := *priv
	s.admins[priv.UserID] = &clone
	return nil
}

func (s *fakeStore) UpdateAdminLevel(_ context.Context, userID int64, level models.AdminLevel) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	priv, ok := s.admins[userID]
	if !ok {
		return database.ErrNotFound
	}
	priv.AdminLevel = level
	return nil
}

func (s *fakeStore) RevokeAdmin(_ context.Context, userID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.admins[userID]; !ok {
		return database.ErrNotFound
	}
	delete(s.admins, userID)
	return nil
}

func (s *fakeStore) ListAdmins(_ context.Context) ([]models.AdminPrivilege, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	admins := make([]models.AdminPrivilege, 0, len(s.admins))
	ids := make([]int64, 0, len(s.admins))
	for id := range s.admins {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for _, id := range ids {
		admins = append(admins, *s.admins[id])
	}
	return admins, nil
}

func (s *fakeStore) Ping(_ context.Context) error {
	return s.pingErr
}

var _ Store = (*fakeStore)(nil)
