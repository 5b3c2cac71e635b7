// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/patient-vault-example/internal/adapter"
	"github.com/MKhiriev/patient-vault-example/internal/app"
)

// mapAdapterError translates the adapter's transport error into a service
// business error. The original error stays in the chain for logging.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	var mapped error

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		mapped = ErrInvalidRequest

	case errors.Is(err, adapter.ErrUnauthorized):
		switch {
		case hasMessage(err, app.MsgInvalidCredentials):
			mapped = ErrInvalidCredentials
		case hasMessage(err, app.MsgSessionExpired):
			mapped = ErrSessionExpired
		default:
			mapped = ErrSessionInvalid
		}

	case errors.Is(err, adapter.ErrForbidden):
		mapped = ErrAccessDenied

	case errors.Is(err, adapter.ErrNotFound):
		if hasMessage(err, app.MsgAttachmentNotFound) {
			mapped = ErrAttachmentNotFound
		}

	case errors.Is(err, adapter.ErrEmptySession):
		mapped = ErrNotAuthenticated
	}

	if mapped == nil {
		return err
	}
	return fmt.Errorf("%w: %w", mapped, err)
}

// hasMessage reports whether the error text ends with the response body msg,
// as produced by the adapter's "<sentinel>: <body>" wrapping.
func hasMessage(err error, msg string) bool {
	return strings.HasSuffix(err.Error(), ": "+msg)
}
