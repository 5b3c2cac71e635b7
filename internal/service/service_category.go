package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/patient-vault-example/internal/adapter"
	"github.com/MKhiriev/patient-vault-example/internal/logger"
	"github.com/MKhiriev/patient-vault-example/models"
	"github.com/google/uuid"
)

type categoryService struct {
	adapter adapter.PatientVaultAdapter
	guard   sessionGuard

	logger *logger.Logger
}

func NewCategoryService(vault adapter.PatientVaultAdapter, logger *logger.Logger) CategoryService {
	return &categoryService{adapter: vault, guard: newSessionGuard(), logger: logger}
}

func (c *categoryService) Retrieve(ctx context.Context, session models.Session, req models.PatientCategoryRequest) (models.PatientCategoryResponse, error) {
	if err := c.guard.check(session); err != nil {
		return models.PatientCategoryResponse{}, err
	}

	if req.ActivityAttachmentID == uuid.Nil {
		return models.PatientCategoryResponse{}, fmt.Errorf("%w: attachment ID is not set", ErrNoAttachmentAvailable)
	}

	c.logger.Debug().
		Stringer("attachment_id", req.ActivityAttachmentID).
		Bool("include_all", req.IncludeSections.IncludeAll).
		Msg("retrieving CCDA category")

	resp, err := c.adapter.RetrievePatientCategory(ctx, session, req)
	if err != nil {
		return models.PatientCategoryResponse{}, mapAdapterError(err)
	}

	return resp, nil
}
