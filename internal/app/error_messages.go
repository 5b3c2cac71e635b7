// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by both the
// fake PatientVault handlers and the client-side error mapping.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies to describe the outcome of an operation. Keeping them
// in one place lets the client map a response body back to a typed error.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails basic validation.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidCredentials is returned when the supplied username/password
	// combination does not match any account.
	MsgInvalidCredentials = "invalid username/password"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgNoSessionProvided is returned when an authenticated endpoint is
	// called without an "Authorization: Session" header.
	MsgNoSessionProvided = "no session provided"

	// MsgSessionExpired is returned when a session token is well-formed but
	// its expiry time has passed.
	MsgSessionExpired = "session is expired"

	// MsgSessionInvalid is returned when a session token cannot be verified.
	MsgSessionInvalid = "session is invalid"

	// MsgUnknownContentFormat is returned when an activity request asks for a
	// content format other than json or html.
	MsgUnknownContentFormat = "unknown content format"

	// MsgNoAttachmentIDProvided is returned when a category request carries a
	// nil attachment identifier.
	MsgNoAttachmentIDProvided = "no attachment ID provided"

	// MsgAttachmentNotFound is returned when a category request names an
	// attachment that does not exist or is not visible to the session owner.
	MsgAttachmentNotFound = "attachment not found"
)
