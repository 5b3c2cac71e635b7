package config

import (
	"fmt"
	"time"
)

// FakeVaultConfig is the configuration of the local fake PatientVault server.
type FakeVaultConfig struct {
	// HTTPAddress is the listen address in "host:port" format.
	HTTPAddress string
	// SignKey signs the issued session tokens (HS256).
	SignKey string
	// SessionDuration is the lifetime of issued session tokens.
	SessionDuration time.Duration
	// LogLevel is the minimum zerolog level name.
	LogLevel string
}

// GetFakeVaultConfig builds and validates the fake server configuration from
// the merged structured configuration.
func GetFakeVaultConfig() (*FakeVaultConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newFakeVaultConfig(cfg)
}

func newFakeVaultConfig(cfg *StructuredConfig) (*FakeVaultConfig, error) {
	fakeCfg := &FakeVaultConfig{
		HTTPAddress:     cfg.FakeVault.HTTPAddress,
		SignKey:         cfg.FakeVault.SignKey,
		SessionDuration: cfg.FakeVault.SessionDuration,
		LogLevel:        cfg.App.LogLevel,
	}

	return fakeCfg, fakeCfg.validate()
}
