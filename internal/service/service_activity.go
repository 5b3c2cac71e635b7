package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/patient-vault-example/internal/adapter"
	"github.com/MKhiriev/patient-vault-example/internal/logger"
	"github.com/MKhiriev/patient-vault-example/models"
	"github.com/google/uuid"
)

type activityService struct {
	adapter adapter.PatientVaultAdapter
	guard   sessionGuard

	logger *logger.Logger
}

func NewActivityService(vault adapter.PatientVaultAdapter, logger *logger.Logger) ActivityService {
	return &activityService{adapter: vault, guard: newSessionGuard(), logger: logger}
}

func (s *activityService) Retrieve(ctx context.Context, session models.Session, req models.UserActivityRetrieveRequest) (models.UserActivityRetrieveResponse, error) {
	if err := s.guard.check(session); err != nil {
		return models.UserActivityRetrieveResponse{}, err
	}

	req.ContentFormatIdentifier = req.ContentFormatIdentifier.OrDefault()
	s.logger.Debug().
		Stringer("filters", req.Filters).
		Str("content_format", string(req.ContentFormatIdentifier)).
		Msg("retrieving activities")

	resp, err := s.adapter.RetrieveUserActivities(ctx, session, req)
	if err != nil {
		return models.UserActivityRetrieveResponse{}, mapAdapterError(err)
	}

	return resp, nil
}

// FirstAttachmentID returns the first attachment of the first activity, or
// [ErrNoAttachmentAvailable] when there is none.
func FirstAttachmentID(resp models.UserActivityRetrieveResponse) (uuid.UUID, error) {
	if len(resp.Activities) == 0 {
		return uuid.Nil, fmt.Errorf("%w: activity list is empty", ErrNoAttachmentAvailable)
	}

	id, ok := resp.FirstAttachmentID()
	if !ok {
		return uuid.Nil, fmt.Errorf("%w: activity %s has no attachments", ErrNoAttachmentAvailable, resp.Activities[0].ID)
	}
	return id, nil
}
