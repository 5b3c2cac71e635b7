package service

import "errors"

var (
	// ErrInvalidCredentials is returned when the API rejects the
	// username/password pair.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrAuthenticationFailed is returned when authentication fails for any
	// other reason (no session issued, transport failure, server error).
	ErrAuthenticationFailed = errors.New("authentication failed")

	// ErrNotAuthenticated is returned when a session-bound call is made with
	// an empty session.
	ErrNotAuthenticated = errors.New("not authenticated")
	// ErrSessionExpired is returned when the session is expired, either by
	// its local expiry or by the API's verdict.
	ErrSessionExpired = errors.New("session is expired")
	// ErrSessionInvalid is returned when the API does not recognise the
	// session.
	ErrSessionInvalid = errors.New("session is invalid")

	// ErrNoAttachmentAvailable is returned when the activity list is empty
	// or its first activity carries no attachment.
	ErrNoAttachmentAvailable = errors.New("no attachment available")
	// ErrAttachmentNotFound is returned when the API does not know the
	// requested attachment.
	ErrAttachmentNotFound = errors.New("attachment not found")

	// ErrInvalidRequest is returned when the API rejects a request as
	// malformed.
	ErrInvalidRequest = errors.New("invalid request")
	// ErrAccessDenied is returned when the session owner may not read the
	// requested data.
	ErrAccessDenied = errors.New("access denied")
)
