// RealConnect - Event Networking and People Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/realconnect

// Package recommend orchestrates the affinity scorer over candidate events
// and people to produce ranked recommendation lists.
//
// The engine reads through the DataProvider interface rather than the
// concrete store so the ranking logic stays testable with in-memory fakes.
// Recommendations are recomputed from scratch on every call; nothing is
// cached or persisted.
package recommend

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/realconnect/internal/database"
	"github.com/tomtom215/realconnect/internal/logging"
	"github.com/tomtom215/realconnect/internal/match"
	"github.com/tomtom215/realconnect/internal/models"
)

// Default result caps.
const (
	DefaultEventLimit  = 5
	DefaultPeopleLimit = 10
)

// DataProvider supplies the reads the engine needs. database.DB satisfies it.
type DataProvider interface {
	// GetUserProfile returns a user's profile, or database.ErrNotFound.
	GetUserProfile(ctx context.Context, userID int64) (*models.UserProfile, error)

	// GetAllEvents returns every event with host and attendee count attached.
	GetAllEvents(ctx context.Context) ([]models.EventWithHost, error)

	// GetUserEvents returns the events a user attends.
	GetUserEvents(ctx context.Context, userID int64) ([]models.Event, error)

	// GetEventAttendees returns the profiles attending an event.
	GetEventAttendees(ctx context.Context, eventID int64) ([]models.UserProfile, error)

	// GetUserConnections returns the profiles connected to a user across
	// all events.
	GetUserConnections(ctx context.Context, userID int64) ([]models.UserProfile, error)
}

// Config bounds the engine's output sizes. Zero values take the defaults.
type Config struct {
	EventLimit  int
	PeopleLimit int
}

// Engine computes event and people recommendations.
type Engine struct {
	provider DataProvider
	cfg      Config
	logger   zerolog.Logger

	// now is swappable for tests.
	now func() time.Time
}

// NewEngine creates an engine backed by the given provider.
func NewEngine(provider DataProvider, cfg Config) *Engine {
	if cfg.EventLimit <= 0 {
		cfg.EventLimit = DefaultEventLimit
	}
	if cfg.PeopleLimit <= 0 {
		cfg.PeopleLimit = DefaultPeopleLimit
	}
	return &Engine{
		provider: provider,
		cfg:      cfg,
		logger:   logging.WithComponent("recommend"),
		now:      time.Now,
	}
}

// RecommendEvents returns up to the configured limit of upcoming events the
// user has not joined, ranked by the event scorer. Users with no recorded
// interests get the unscored candidate list in store order. An unknown user
// yields an empty list, not an error.
func (e *Engine) RecommendEvents(ctx context.Context, userID int64) ([]models.EventWithHost, error) {
	user, err := e.provider.GetUserProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return []models.EventWithHost{}, nil
		}
		return nil, fmt.Errorf("load profile: %w", err)
	}

	candidates, err := e.candidateEvents(ctx, userID)
	if err != nil {
		return nil, err
	}

	if len(user.Interests) == 0 {
		if len(candidates) > e.cfg.EventLimit {
			candidates = candidates[:e.cfg.EventLimit]
		}
		return candidates, nil
	}

	type scoredEvent struct {
		event models.EventWithHost
		score float64
	}
	scored := make([]scoredEvent, 0, len(candidates))
	for _, candidate := range candidates {
		attendees, err := e.provider.GetEventAttendees(ctx, candidate.ID)
		if err != nil {
			return nil, fmt.Errorf("load attendees for event %d: %w", candidate.ID, err)
		}
		scored = append(scored, scoredEvent{
			event: candidate,
			score: match.ScoreEvent(user, &candidate.Event, attendees),
		})
	}

	// Stable sort keeps store order for equal scores, so output is
	// reproducible for identical input.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	limit := e.cfg.EventLimit
	if len(scored) < limit {
		limit = len(scored)
	}
	result := make([]models.EventWithHost, 0, limit)
	for _, s := range scored[:limit] {
		result = append(result, s.event)
	}

	e.logger.Debug().
		Int64("user_id", userID).
		Int("candidates", len(candidates)).
		Int("returned", len(result)).
		Msg("event recommendations computed")
	return result, nil
}

// candidateEvents returns all future events the user does not already attend.
func (e *Engine) candidateEvents(ctx context.Context, userID int64) ([]models.EventWithHost, error) {
	allEvents, err := e.provider.GetAllEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("load events: %w", err)
	}
	userEvents, err := e.provider.GetUserEvents(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load user events: %w", err)
	}

	attending := make(map[int64]struct{}, len(userEvents))
	for _, ev := range userEvents {
		attending[ev.ID] = struct{}{}
	}

	now := e.now()
	candidates := make([]models.EventWithHost, 0, len(allEvents))
	for _, ev := range allEvents {
		if _, ok := attending[ev.ID]; ok {
			continue
		}
		if !ev.Upcoming(now) {
			continue
		}
		candidates = append(candidates, ev)
	}
	return candidates, nil
}

// RecommendPeople returns up to the configured limit of profiles ranked by
// pair affinity with the user. When eventID is non-nil candidates are that
// event's attendees; otherwise they are drawn from every event the user
// attends. The user themself and existing connections are excluded, and
// duplicates keep their first occurrence. An unknown user yields an empty
// list.
func (e *Engine) RecommendPeople(ctx context.Context, userID int64, eventID *int64) ([]models.UserProfile, error) {
	user, err := e.provider.GetUserProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return []models.UserProfile{}, nil
		}
		return nil, fmt.Errorf("load profile: %w", err)
	}

	var pool []models.UserProfile
	if eventID != nil {
		pool, err = e.provider.GetEventAttendees(ctx, *eventID)
		if err != nil {
			return nil, fmt.Errorf("load attendees for event %d: %w", *eventID, err)
		}
	} else {
		userEvents, err := e.provider.GetUserEvents(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("load user events: %w", err)
		}
		for _, ev := range userEvents {
			attendees, err := e.provider.GetEventAttendees(ctx, ev.ID)
			if err != nil {
				return nil, fmt.Errorf("load attendees for event %d: %w", ev.ID, err)
			}
			pool = append(pool, attendees...)
		}
	}

	connections, err := e.provider.GetUserConnections(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load connections: %w", err)
	}
	excluded := make(map[int64]struct{}, len(connections)+1)
	excluded[userID] = struct{}{}
	for _, connection := range connections {
		excluded[connection.ID] = struct{}{}
	}

	type scoredPerson struct {
		profile models.UserProfile
		score   float64
	}
	seen := make(map[int64]struct{}, len(pool))
	scored := make([]scoredPerson, 0, len(pool))
	for i := range pool {
		candidate := &pool[i]
		if _, ok := excluded[candidate.ID]; ok {
			continue
		}
		if _, ok := seen[candidate.ID]; ok {
			continue
		}
		seen[candidate.ID] = struct{}{}
		scored = append(scored, scoredPerson{
			profile: *candidate,
			score:   match.ScorePair(user, candidate),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	limit := e.cfg.PeopleLimit
	if len(scored) < limit {
		limit = len(scored)
	}
	result := make([]models.UserProfile, 0, limit)
	for _, s := range scored[:limit] {
		result = append(result, s.profile)
	}

	e.logger.Debug().
		Int64("user_id", userID).
		Int("pool", len(pool)).
		Int("returned", len(result)).
		Msg("people recommendations computed")
	return result, nil
}
