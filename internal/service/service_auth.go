package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/patient-vault-example/internal/adapter"
	"github.com/MKhiriev/patient-vault-example/internal/logger"
	"github.com/MKhiriev/patient-vault-example/internal/utils"
	"github.com/MKhiriev/patient-vault-example/models"
)

type authService struct {
	adapter adapter.PatientVaultAdapter
	culture string

	logger *logger.Logger
}

func NewAuthService(vault adapter.PatientVaultAdapter, culture string, logger *logger.Logger) AuthService {
	return &authService{adapter: vault, culture: culture, logger: logger}
}

func (a *authService) Authenticate(ctx context.Context, creds models.UserAuthenticationRequest) (models.UserAuthenticationResponse, models.Session, error) {
	a.logger.Debug().Str("username", creds.Username).Msg("authenticating")

	resp, err := a.adapter.Authenticate(ctx, creds)
	if err != nil {
		mapped := mapAdapterError(err)
		if errors.Is(mapped, ErrInvalidCredentials) {
			return models.UserAuthenticationResponse{}, models.Session{}, mapped
		}
		return models.UserAuthenticationResponse{}, models.Session{}, fmt.Errorf("%w: %w", ErrAuthenticationFailed, err)
	}

	session := models.Session{ID: resp.SessionID, Culture: a.culture}
	if expiresAt, ok := utils.ParseSessionExpiry(resp.SessionID); ok {
		session.ExpiresAt = expiresAt
	}

	a.logger.Info().
		Int64("user_id", resp.UserID).
		Time("session_expires_at", session.ExpiresAt).
		Msg("session opened")

	return resp, session, nil
}
