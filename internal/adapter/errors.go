package adapter

import "errors"

// Transport-level errors. mapHTTPError wraps them with the response body so
// callers can match with [errors.Is].
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrUnexpectedStatus    = errors.New("unexpected status")

	// ErrEmptySession is returned by authenticated calls made without a
	// session token, and by Authenticate when the server replies without one.
	ErrEmptySession = errors.New("empty session")
)
