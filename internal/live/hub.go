// RealConnect - Event Networking and People Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/realconnect

package live

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/goccy/go-json"
	"github.com/gorilla/websocket"

	"github.com/tomtom215/realconnect/internal/logging"
	"github.com/tomtom215/realconnect/internal/metrics"
)

// Websocket message types.
const (
	MessageTypeAttendeeJoined    = "attendee_joined"
	MessageTypeConnectionCreated = "connection_created"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4 * 1024
)

// Message is what clients receive over the websocket.
type Message struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// Client is one websocket connection watching a single event.
type Client struct {
	eventID int64
	conn    *websocket.Conn
	send    chan Message
}

// Hub routes domain events from the bus to the clients watching each event.
type Hub struct {
	bus *Bus

	mu      sync.RWMutex
	clients map[int64]map[*Client]struct{}
}

// NewHub creates a hub over the given bus.
func NewHub(bus *Bus) *Hub {
	return &Hub{
		bus:     bus,
		clients: make(map[int64]map[*Client]struct{}),
	}
}

// Run consumes the bus until ctx is canceled. Call in its own goroutine.
func (h *Hub) Run(ctx context.Context) error {
	joined, err := h.bus.Subscribe(ctx, TopicEventJoined)
	if err != nil {
		return err
	}
	connected, err := h.bus.Subscribe(ctx, TopicConnectionCreated)
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-joined:
			if !ok {
				return nil
			}
			h.handleJoined(msg)
		case msg, ok := <-connected:
			if !ok {
				return nil
			}
			h.handleConnected(msg)
		}
	}
}

func (h *Hub) handleJoined(msg *message.Message) {
	defer msg.Ack()
	var payload EventJoined
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		logging.Warn().Err(err).Msg("failed to decode event.joined payload")
		return
	}
	h.Broadcast(payload.EventID, Message{Type: MessageTypeAttendeeJoined, Data: payload})
}

func (h *Hub) handleConnected(msg *message.Message) {
	defer msg.Ack()
	var payload ConnectionCreated
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		logging.Warn().Err(err).Msg("failed to decode connection.created payload")
		return
	}
	h.Broadcast(payload.EventID, Message{Type: MessageTypeConnectionCreated, Data: payload})
}

// Broadcast delivers a message to every client watching an event. Slow
// clients are skipped rather than blocking the hub.
func (h *Hub) Broadcast(eventID int64, msg Message) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for client := range h.clients[eventID] {
		select {
		case client.send <- msg:
			metrics.WSMessagesSent.Inc()
		default:
		}
	}
}

func (h *Hub) register(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.clients[client.eventID] == nil {
		h.clients[client.eventID] = make(map[*Client]struct{})
	}
	h.clients[client.eventID][client] = struct{}{}
	metrics.WSConnections.Inc()
}

func (h *Hub) unregister(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if clients, ok := h.clients[client.eventID]; ok {
		if _, ok := clients[client]; ok {
			delete(clients, client)
			close(client.send)
			metrics.WSConnections.Dec()
		}
		if len(clients) == 0 {
			delete(h.clients, client.eventID)
		}
	}
}

// clientCount reports how many clients watch an event, for tests and logs.
func (h *Hub) clientCount(eventID int64) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[eventID])
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Origin is enforced by the CORS middleware in front of the upgrade.
	CheckOrigin: func(*http.Request) bool { return true },
}

// ServeWS upgrades an HTTP request to a websocket watching one event.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request, eventID int64) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logging.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}

	client := &Client{
		eventID: eventID,
		conn:    conn,
		send:    make(chan Message, 64),
	}
	h.register(client)

	go client.writePump()
	go client.readPump(h)
}

// readPump drains the connection until the client goes away. Inbound
// messages are ignored; the feed is one-directional.
func (c *Client) readPump(h *Hub) {
	defer func() {
		h.unregister(c)
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	if err := c.conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		return
	}
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logging.Debug().Err(err).Msg("websocket closed unexpectedly")
			}
			return
		}
	}
}

// writePump sends queued messages and keepalive pings.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				return
			}
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteJSON(msg); err != nil {
				return
			}
		case <-ticker.C:
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				return
			}
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
