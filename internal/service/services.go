package service

import (
	"time"

	"github.com/MKhiriev/patient-vault-example/internal/adapter"
	"github.com/MKhiriev/patient-vault-example/internal/logger"
	"github.com/MKhiriev/patient-vault-example/models"
)

// Services bundles the session-aware PatientVault services used by the
// workflow.
type Services struct {
	AuthService     AuthService
	PatientService  PatientService
	ActivityService ActivityService
	CategoryService CategoryService
}

// NewServices wires every service to the same adapter. culture is stamped on
// the sessions opened by AuthService.
func NewServices(vault adapter.PatientVaultAdapter, culture string, logger *logger.Logger) *Services {
	return &Services{
		AuthService:     NewAuthService(vault, culture, logger),
		PatientService:  NewPatientService(vault, logger),
		ActivityService: NewActivityService(vault, logger),
		CategoryService: NewCategoryService(vault, logger),
	}
}

// sessionGuard rejects empty or locally expired sessions before any call
// reaches the adapter.
type sessionGuard struct {
	now func() time.Time
}

func newSessionGuard() sessionGuard {
	return sessionGuard{now: time.Now}
}

func (g sessionGuard) check(session models.Session) error {
	if session.IsZero() {
		return ErrNotAuthenticated
	}
	if session.Expired(g.now()) {
		return ErrSessionExpired
	}
	return nil
}
