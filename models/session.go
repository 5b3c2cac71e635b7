// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Session is the authenticated context threaded through every call after
// authentication. It replaces the mutable configuration object the API
// client would otherwise carry.
type Session struct {
	// ID is the session token issued by the authentication endpoint.
	ID string

	// Culture is the locale code (e.g. "en") sent with every request.
	Culture string

	// ExpiresAt is read from the token's "exp" claim when the token is a JWT.
	// Zero when the server issued an opaque token.
	ExpiresAt time.Time
}

// IsZero reports whether no session token is present.
func (s Session) IsZero() bool {
	return s.ID == ""
}

// Expired reports whether the session is known to be expired at now.
// Sessions without an expiry never expire locally.
func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}
