// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"
)

// validate checks the source-independent invariants of the merged
// [StructuredConfig] before it is mapped to a binary-specific view.
func (cfg *StructuredConfig) validate() error {
	if cfg.Adapter.RequestTimeout < 0 || cfg.Adapter.RetryCount < 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.FakeVault.SessionDuration < 0 {
		return ErrInvalidFakeVaultConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if err := validateRootURL(cfg.Adapter.APIRootURL); err != nil {
		return err
	}

	if cfg.Adapter.RequestTimeout <= 0 || cfg.Adapter.RetryCount < 0 {
		return ErrInvalidAdapterConfigs
	}

	if !cfg.Workflow.ContentFormat.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidContentFormat, cfg.Workflow.ContentFormat)
	}

	if cfg.App.AllowBlankCredentials {
		return nil
	}

	creds := cfg.App.Credentials
	if strings.TrimSpace(creds.Username) == "" || creds.Password == "" {
		return ErrMissingCredentials
	}

	return nil
}

func (cfg *FakeVaultConfig) validate() error {
	if cfg.HTTPAddress == "" || cfg.SignKey == "" || cfg.SessionDuration <= 0 {
		return ErrInvalidFakeVaultConfigs
	}

	return nil
}

func validateRootURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAdapterConfigs, err)
	}

	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: API root URL must be absolute http(s), got %q", ErrInvalidAdapterConfigs, raw)
	}

	return nil
}
