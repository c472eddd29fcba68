// RealConnect - Event Networking and People Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/realconnect

// Package live pushes attendee-join and connection notifications to open
// event pages.
//
// Domain events flow through an in-process Watermill pub/sub; the websocket
// hub subscribes and fans messages out to clients watching the affected
// event. Publishing is fire-and-forget from the API handlers' point of view:
// a full buffer or a closed bus never fails the originating request.
package live

import (
	"context"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/goccy/go-json"

	"github.com/tomtom215/realconnect/internal/logging"
)

// Topics for domain events.
const (
	TopicEventJoined       = "event.joined"
	TopicConnectionCreated = "connection.created"
)

// EventJoined is published when a user joins an event.
type EventJoined struct {
	EventID  int64     `json:"event_id"`
	UserID   int64     `json:"user_id"`
	FullName string    `json:"full_name"`
	JoinedAt time.Time `json:"joined_at"`
}

// ConnectionCreated is published when a new connection record is created.
// Idempotent repeats are not republished.
type ConnectionCreated struct {
	EventID    int64     `json:"event_id"`
	FromUserID int64     `json:"from_user_id"`
	ToUserID   int64     `json:"to_user_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// Bus is the in-process domain event bus.
type Bus struct {
	pubsub *gochannel.GoChannel
}

// NewBus creates the bus.
func NewBus() *Bus {
	return &Bus{
		pubsub: gochannel.NewGoChannel(gochannel.Config{
			OutputChannelBuffer: 64,
		}, watermill.NewStdLogger(false, false)),
	}
}

// PublishEventJoined publishes an attendee-join notification. Failures are
// logged, not returned; the join itself already succeeded.
func (b *Bus) PublishEventJoined(payload EventJoined) {
	b.publish(TopicEventJoined, payload)
}

// PublishConnectionCreated publishes a new-connection notification.
func (b *Bus) PublishConnectionCreated(payload ConnectionCreated) {
	b.publish(TopicConnectionCreated, payload)
}

func (b *Bus) publish(topic string, payload interface{}) {
	raw, err := json.Marshal(payload)
	if err != nil {
		logging.Error().Err(err).Str("topic", topic).Msg("failed to encode domain event")
		return
	}
	msg := message.NewMessage(watermill.NewUUID(), raw)
	if err := b.pubsub.Publish(topic, msg); err != nil {
		logging.Warn().Err(err).Str("topic", topic).Msg("failed to publish domain event")
	}
}

// Subscribe returns a channel of messages for a topic. The subscription ends
// when ctx is canceled.
func (b *Bus) Subscribe(ctx context.Context, topic string) (<-chan *message.Message, error) {
	return b.pubsub.Subscribe(ctx, topic)
}

// Close shuts the bus down and ends all subscriptions.
func (b *Bus) Close() error {
	return b.pubsub.Close()
}
