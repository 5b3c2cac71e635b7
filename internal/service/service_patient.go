package service

import (
	"context"

	"github.com/MKhiriev/patient-vault-example/internal/adapter"
	"github.com/MKhiriev/patient-vault-example/internal/logger"
	"github.com/MKhiriev/patient-vault-example/models"
)

type patientService struct {
	adapter adapter.PatientVaultAdapter
	guard   sessionGuard

	logger *logger.Logger
}

func NewPatientService(vault adapter.PatientVaultAdapter, logger *logger.Logger) PatientService {
	return &patientService{adapter: vault, guard: newSessionGuard(), logger: logger}
}

func (p *patientService) RetrieveList(ctx context.Context, session models.Session, req models.PatientRetrieveListRequest) (models.PatientRetrieveListResponse, error) {
	if err := p.guard.check(session); err != nil {
		return models.PatientRetrieveListResponse{}, err
	}

	p.logger.Debug().Stringer("filters", req.Filters).Msg("retrieving patients")

	resp, err := p.adapter.RetrievePatientList(ctx, session, req)
	if err != nil {
		return models.PatientRetrieveListResponse{}, mapAdapterError(err)
	}

	return resp, nil
}
