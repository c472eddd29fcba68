// RealConnect - Event Networking and People Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/realconnect

package recommend

import (
	"context"
	"testing"
	"time"

	"github.com/tomtom215/realconnect/internal/database"
	"github.com/tomtom215/realconnect/internal/models"
)

// fakeProvider is an in-memory DataProvider for engine tests.
type fakeProvider struct {
	profiles    map[int64]models.UserProfile
	events      []models.EventWithHost
	userEvents  map[int64][]models.Event
	attendees   map[int64][]models.UserProfile
	connections map[int64][]models.UserProfile
}

func (f *fakeProvider) GetUserProfile(_ context.Context, userID int64) (*models.UserProfile, error) {
	profile, ok := f.profiles[userID]
	if !ok {
		return nil, database.ErrNotFound
	}
	return &profile, nil
}

func (f *fakeProvider) GetAllEvents(_ context.Context) ([]models.EventWithHost, error) {
	return f.events, nil
}

func (f *fakeProvider) GetUserEvents(_ context.Context, userID int64) ([]models.Event, error) {
	return f.userEvents[userID], nil
}

func (f *fakeProvider) GetEventAttendees(_ context.Context, eventID int64) ([]models.UserProfile, error) {
	return f.attendees[eventID], nil
}

func (f *fakeProvider) GetUserConnections(_ context.Context, userID int64) ([]models.UserProfile, error) {
	return f.connections[userID], nil
}

var testNow = time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

func newTestEngine(p *fakeProvider) *Engine {
	e := NewEngine(p, Config{})
	e.now = func() time.Time { return testNow }
	return e
}

func futureEvent(id int64, name, description string) models.EventWithHost {
	return models.EventWithHost{
		Event: models.Event{
			ID:          id,
			Name:        name,
			Description: description,
			Date:        testNow.Add(time.Duration(id) * time.Hour),
		},
	}
}

func TestRecommendEventsUnknownUser(t *testing.T) {
	engine := newTestEngine(&fakeProvider{profiles: map[int64]models.UserProfile{}})

	got, err := engine.RecommendEvents(context.Background(), 99)
	if err != nil {
		t.Fatalf("RecommendEvents() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty result for unknown user, got %d events", len(got))
	}
}

func TestRecommendEventsNoInterestsFastPath(t *testing.T) {
	provider := &fakeProvider{
		profiles: map[int64]models.UserProfile{1: {ID: 1}},
		userEvents: map[int64][]models.Event{
			1: {{ID: 3}},
		},
	}
	for i := int64(1); i <= 8; i++ {
		provider.events = append(provider.events, futureEvent(i, "Event", ""))
	}
	// One past event that must never appear.
	provider.events = append(provider.events, models.EventWithHost{
		Event: models.Event{ID: 100, Name: "Old", Date: testNow.Add(-time.Hour)},
	})

	got, err := newTestEngine(provider).RecommendEvents(context.Background(), 1)
	if err != nil {
		t.Fatalf("RecommendEvents() error = %v", err)
	}
	if len(got) != 5 {
		t.Fatalf("expected cap of 5, got %d", len(got))
	}
	// Store order preserved, attended event 3 skipped.
	wantIDs := []int64{1, 2, 4, 5, 6}
	for i, ev := range got {
		if ev.ID != wantIDs[i] {
			t.Errorf("result[%d].ID = %d, want %d", i, ev.ID, wantIDs[i])
		}
	}
}

func TestRecommendEventsRankedByScore(t *testing.T) {
	provider := &fakeProvider{
		profiles: map[int64]models.UserProfile{
			1: {ID: 1, Interests: []string{"chess"}, Hometown: "Austin"},
		},
		events: []models.EventWithHost{
			futureEvent(1, "Garden Party", ""),
			futureEvent(2, "Chess Night", "weekly chess meetup"),
			futureEvent(3, "Mixer", ""),
		},
		attendees: map[int64][]models.UserProfile{
			3: {{ID: 7, Hometown: "Austin"}},
		},
	}

	got, err := newTestEngine(provider).RecommendEvents(context.Background(), 1)
	if err != nil {
		t.Fatalf("RecommendEvents() error = %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 events, got %d", len(got))
	}
	// Chess Night: name 3 + description 2 = 5. Mixer: attendee hometown 1.
	// Garden Party: 0. Ties none.
	wantIDs := []int64{2, 3, 1}
	for i, ev := range got {
		if ev.ID != wantIDs[i] {
			t.Errorf("result[%d].ID = %d, want %d", i, ev.ID, wantIDs[i])
		}
	}
}

func TestRecommendEventsStableForEqualScores(t *testing.T) {
	provider := &fakeProvider{
		profiles: map[int64]models.UserProfile{1: {ID: 1, Interests: []string{"chess"}}},
		events: []models.EventWithHost{
			futureEvent(1, "Chess A", ""),
			futureEvent(2, "Chess B", ""),
			futureEvent(3, "Chess C", ""),
		},
	}

	got, err := newTestEngine(provider).RecommendEvents(context.Background(), 1)
	if err != nil {
		t.Fatalf("RecommendEvents() error = %v", err)
	}
	wantIDs := []int64{1, 2, 3}
	for i, ev := range got {
		if ev.ID != wantIDs[i] {
			t.Errorf("result[%d].ID = %d, want %d (store order for ties)", i, ev.ID, wantIDs[i])
		}
	}
}

func TestRecommendPeopleUnknownUser(t *testing.T) {
	engine := newTestEngine(&fakeProvider{profiles: map[int64]models.UserProfile{}})

	got, err := engine.RecommendPeople(context.Background(), 99, nil)
	if err != nil {
		t.Fatalf("RecommendPeople() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty result for unknown user, got %d", len(got))
	}
}

func TestRecommendPeopleExcludesSelfAndConnections(t *testing.T) {
	eventID := int64(10)
	provider := &fakeProvider{
		profiles: map[int64]models.UserProfile{1: {ID: 1}},
		attendees: map[int64][]models.UserProfile{
			10: {
				{ID: 1, FullName: "Self"},
				{ID: 2, FullName: "Connected"},
				{ID: 3, FullName: "New Face"},
			},
		},
		connections: map[int64][]models.UserProfile{
			1: {{ID: 2, FullName: "Connected"}},
		},
	}

	got, err := newTestEngine(provider).RecommendPeople(context.Background(), 1, &eventID)
	if err != nil {
		t.Fatalf("RecommendPeople() error = %v", err)
	}
	if len(got) != 1 || got[0].ID != 3 {
		t.Fatalf("expected only user 3, got %+v", got)
	}
}

func TestRecommendPeopleDedupesAcrossEvents(t *testing.T) {
	provider := &fakeProvider{
		profiles: map[int64]models.UserProfile{1: {ID: 1}},
		userEvents: map[int64][]models.Event{
			1: {{ID: 10}, {ID: 11}},
		},
		attendees: map[int64][]models.UserProfile{
			10: {{ID: 2}, {ID: 3}},
			11: {{ID: 3}, {ID: 4}},
		},
	}

	got, err := newTestEngine(provider).RecommendPeople(context.Background(), 1, nil)
	if err != nil {
		t.Fatalf("RecommendPeople() error = %v", err)
	}
	seen := make(map[int64]int)
	for _, p := range got {
		seen[p.ID]++
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 unique people, got %d", len(got))
	}
	for id, count := range seen {
		if count > 1 {
			t.Errorf("user %d appears %d times", id, count)
		}
	}
}

func TestRecommendPeopleCapAndRanking(t *testing.T) {
	eventID := int64(10)
	viewer := models.UserProfile{ID: 1, Interests: []string{"chess"}, Hometown: "Austin"}
	provider := &fakeProvider{
		profiles:  map[int64]models.UserProfile{1: viewer},
		attendees: map[int64][]models.UserProfile{10: {}},
	}
	// 12 candidates; id 20 shares an interest and the hometown, id 21 only
	// the hometown, the rest score zero.
	for i := int64(20); i < 32; i++ {
		candidate := models.UserProfile{ID: i}
		switch i {
		case 20:
			candidate.Interests = []string{"chess"}
			candidate.Hometown = "Austin"
		case 21:
			candidate.Hometown = "Austin"
		}
		provider.attendees[10] = append(provider.attendees[10], candidate)
	}

	got, err := newTestEngine(provider).RecommendPeople(context.Background(), 1, &eventID)
	if err != nil {
		t.Fatalf("RecommendPeople() error = %v", err)
	}
	if len(got) != 10 {
		t.Fatalf("expected cap of 10, got %d", len(got))
	}
	if got[0].ID != 20 {
		t.Errorf("highest scorer should rank first, got id %d", got[0].ID)
	}
	if got[1].ID != 21 {
		t.Errorf("second scorer should rank second, got id %d", got[1].ID)
	}
}
