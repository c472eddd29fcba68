// RealConnect - Event Networking and People Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/realconnect

package models

import "time"

// Connection records that two users met at an event. The row stores the
// direction of the original request, but the relation is undirected: at most
// one record exists per unordered user pair and event, and both users see
// each other in their connection lists.
type Connection struct {
	ID         int64     `json:"id"`
	FromUserID int64     `json:"from_user_id"`
	ToUserID   int64     `json:"to_user_id"`
	EventID    int64     `json:"event_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// Other returns the endpoint of the connection that is not userID.
// Returns the from-user when userID matches neither endpoint.
func (c *Connection) Other(userID int64) int64 {
	if c.FromUserID == userID {
		return c.ToUserID
	}
	return c.FromUserID
}

// AdminLevel classifies administrative privilege levels.
type AdminLevel string

// Admin levels, from most to least privileged.
const (
	AdminLevelSuper    AdminLevel = "super"
	AdminLevelStandard AdminLevel = "standard"
	AdminLevelReadOnly AdminLevel = "readonly"
)

// AdminPrivilege is a granted administrative role. System admins (the legacy
// hardcoded super-admins) are represented with IsSystemAdmin=true and cannot
// be revoked through the API.
type AdminPrivilege struct {
	UserID        int64      `json:"user_id"`
	AdminLevel    AdminLevel `json:"admin_level"`
	IsSystemAdmin bool       `json:"is_system_admin"`
	GrantedBy     *int64     `json:"granted_by,omitempty"`
	GrantedAt     time.Time  `json:"granted_at"`
}
