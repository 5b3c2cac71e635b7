package fakevault

import (
	"time"

	"github.com/MKhiriev/patient-vault-example/internal/config"
	"github.com/MKhiriev/patient-vault-example/internal/logger"
)

// TokenIssuer is the iss claim of the session tokens issued by the fake API.
const TokenIssuer = "fakevault"

type Handler struct {
	vault           *Vault
	signKey         string
	sessionDuration time.Duration

	logger *logger.Logger
}

func NewHandler(vault *Vault, cfg config.FakeVaultConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("fakevault handler created")
	return &Handler{
		vault:           vault,
		signKey:         cfg.SignKey,
		sessionDuration: cfg.SessionDuration,
		logger:          logger,
	}
}
