package service

import (
	"context"

	"github.com/MKhiriev/patient-vault-example/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/services_mock.go -package=mock

// AuthService opens PatientVault sessions.
type AuthService interface {
	// Authenticate exchanges creds for a session. The returned session carries
	// the configured culture and, when the token is a JWT, its expiry.
	// Returns [ErrInvalidCredentials] when the API rejects the pair and
	// [ErrAuthenticationFailed] for any other failure.
	Authenticate(ctx context.Context, creds models.UserAuthenticationRequest) (models.UserAuthenticationResponse, models.Session, error)
}

// PatientService reads patient records.
type PatientService interface {
	// RetrieveList returns the patients matching req.Filters.
	RetrieveList(ctx context.Context, session models.Session, req models.PatientRetrieveListRequest) (models.PatientRetrieveListResponse, error)
}

// ActivityService reads the activities of the session owner.
type ActivityService interface {
	// Retrieve returns the activities matching req.Filters. An empty content
	// format is sent as the API default (html).
	Retrieve(ctx context.Context, session models.Session, req models.UserActivityRetrieveRequest) (models.UserActivityRetrieveResponse, error)
}

// CategoryService reads structured CCDA content of attachments.
type CategoryService interface {
	// Retrieve returns the sections of the attachment named by
	// req.ActivityAttachmentID selected by req.IncludeSections.
	Retrieve(ctx context.Context, session models.Session, req models.PatientCategoryRequest) (models.PatientCategoryResponse, error)
}
