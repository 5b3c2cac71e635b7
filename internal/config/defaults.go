package config

import "time"

// Defaults of the PatientVault example. They reproduce the literals of the
// reference workflow.
const (
	DefaultAPIRootURL      = "https://patientvault.com/patientvaultapi"
	DefaultCulture         = "en"
	DefaultRequestTimeout  = 30 * time.Second
	DefaultContentFormat   = "json"
	DefaultLogLevel        = "info"
	DefaultFakeVaultAddr   = "localhost:8080"
	DefaultFakeVaultKey    = "fakevault-dev-sign-key"
	DefaultSessionDuration = 30 * time.Minute
)

func defaultPatientFilters() map[string]string {
	return map[string]string{
		"FirstName": "Vanessa",
		"LastName":  "",
	}
}

func defaultActivityFilters() map[string]string {
	return map[string]string{
		"PatientId": "",
		"DateFrom":  "",
		"DateTo":    "",
		"Year":      "",
	}
}

// applyDefaults fills every field no source has set.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.Culture == "" {
		cfg.App.Culture = DefaultCulture
	}
	if cfg.App.LogLevel == "" {
		cfg.App.LogLevel = DefaultLogLevel
	}

	if cfg.Adapter.APIRootURL == "" {
		cfg.Adapter.APIRootURL = DefaultAPIRootURL
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = DefaultRequestTimeout
	}

	if cfg.Workflow.PatientFilters == nil {
		cfg.Workflow.PatientFilters = defaultPatientFilters()
	}
	if cfg.Workflow.ActivityFilters == nil {
		cfg.Workflow.ActivityFilters = defaultActivityFilters()
	}
	if cfg.Workflow.ContentFormat == "" {
		cfg.Workflow.ContentFormat = DefaultContentFormat
	}

	if cfg.FakeVault.HTTPAddress == "" {
		cfg.FakeVault.HTTPAddress = DefaultFakeVaultAddr
	}
	if cfg.FakeVault.SignKey == "" {
		cfg.FakeVault.SignKey = DefaultFakeVaultKey
	}
	if cfg.FakeVault.SessionDuration == 0 {
		cfg.FakeVault.SessionDuration = DefaultSessionDuration
	}
}
