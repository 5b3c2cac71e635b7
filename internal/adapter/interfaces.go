// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport-layer abstraction for communicating
// with the PatientVault API.
//
// The primary abstraction is [PatientVaultAdapter], which decouples the
// service layer from the underlying protocol. The package ships an HTTP/JSON
// implementation ([NewHTTPPatientVaultAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrUnauthorized] for 401, [ErrNotFound] for 404).
package adapter

import (
	"context"

	"github.com/MKhiriev/patient-vault-example/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/patient_vault_adapter_mock.go -package=mock

// PatientVaultAdapter defines transport-agnostic communication with the
// PatientVault API. Implementations are responsible for serialisation,
// session header management, and mapping transport-level errors to the
// sentinel values defined in this package.
//
// The adapter holds no session state: every authenticated call receives the
// session explicitly.
type PatientVaultAdapter interface {
	// Authenticate exchanges a credential pair for a session. It does not
	// require a session. Returns [ErrUnauthorized] (wrapped) when the
	// credentials are rejected and [ErrEmptySession] when the server replies
	// without a session token.
	Authenticate(ctx context.Context, req models.UserAuthenticationRequest) (models.UserAuthenticationResponse, error)

	// RetrievePatientList returns the patients matching req.Filters.
	RetrievePatientList(ctx context.Context, session models.Session, req models.PatientRetrieveListRequest) (models.PatientRetrieveListResponse, error)

	// RetrieveUserActivities returns the activities of the session owner
	// matching req.Filters, with content in req.ContentFormatIdentifier.
	RetrieveUserActivities(ctx context.Context, session models.Session, req models.UserActivityRetrieveRequest) (models.UserActivityRetrieveResponse, error)

	// RetrievePatientCategory returns the structured CCDA content of the
	// attachment named by req.ActivityAttachmentID, limited to the sections
	// selected by req.IncludeSections.
	RetrievePatientCategory(ctx context.Context, session models.Session, req models.PatientCategoryRequest) (models.PatientCategoryResponse, error)
}
