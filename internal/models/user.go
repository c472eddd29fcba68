// RealConnect - Event Networking and People Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/realconnect

package models

import "time"

// Social link platform keys. The social_links map only admits these keys;
// absent or empty values mean "not provided".
const (
	SocialLinkedIn = "linkedin"
	SocialWebsite  = "website"
	SocialTwitter  = "twitter"
)

// KnownSocialPlatform reports whether key is a recognized social link platform.
func KnownSocialPlatform(key string) bool {
	switch key {
	case SocialLinkedIn, SocialWebsite, SocialTwitter:
		return true
	default:
		return false
	}
}

// UserProfile is the password-free view of a user. It is the shape exposed by
// every read path (attendee lists, recommendations, connections); the full
// User with credentials never leaves the storage and auth layers.
type UserProfile struct {
	// ID is the internal user identifier.
	ID int64 `json:"id"`

	// Username is the unique handle chosen at signup.
	Username string `json:"username"`

	// Email is the unique signup email address.
	Email string `json:"email"`

	// FullName is the user's display name. Its visibility can never be
	// turned off by an event's visible-fields configuration.
	FullName string `json:"full_name"`

	// Age in years.
	Age int `json:"age"`

	// Hometown and State describe where the user is from.
	Hometown string `json:"hometown,omitempty"`
	State    string `json:"state,omitempty"`

	// College and HighSchool are the user's schools. School is the legacy
	// single-school field kept for profiles created before the split.
	College    string `json:"college,omitempty"`
	HighSchool string `json:"high_school,omitempty"`
	School     string `json:"school,omitempty"`

	// Background and Aspirations are free-text profile sections.
	Background  string `json:"background,omitempty"`
	Aspirations string `json:"aspirations,omitempty"`

	// Interests is an ordered list of interest tags. Duplicates are not
	// enforced away but are disallowed by convention.
	Interests []string `json:"interests,omitempty"`

	// SocialLinks maps a platform key (see KnownSocialPlatform) to a URL.
	SocialLinks map[string]string `json:"social_links,omitempty"`

	// ProfilePhoto is an opaque reference to the stored photo, if any.
	ProfilePhoto string `json:"profile_photo,omitempty"`

	// CreatedAt is when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// User is a full user record including credentials. Only the auth and storage
// layers see this type.
type User struct {
	UserProfile

	// Password is the bcrypt hash of the user's password. Never serialized.
	Password string `json:"-"`
}

// Profile returns the password-free profile view of the user.
func (u *User) Profile() *UserProfile {
	profile := u.UserProfile
	return &profile
}
