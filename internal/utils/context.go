// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// HTTP response writing, HTTP client initialization, session token
// generation and parsing, and identifier generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// SessionCtxKey is the key used to store the verified session claims of an
// authenticated request in the context.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.SessionCtxKey, claims)
var SessionCtxKey = contextKey("session")

// GetSessionFromContext retrieves the session claims from the context.
//
// Returns the claims and an ok flag:
//   - ok == true  — value is found and has the correct *SessionClaims type
//   - ok == false — value is missing or has an unexpected type
func GetSessionFromContext(ctx context.Context) (*SessionClaims, bool) {
	claims, ok := ctx.Value(SessionCtxKey).(*SessionClaims)
	return claims, ok && claims != nil
}
