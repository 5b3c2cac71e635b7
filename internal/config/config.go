// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container. It aggregates
// all sub-configurations and is populated by merging values from environment
// variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds process-level settings: locale, credentials and logging.
	App App `envPrefix:"APP_"`

	// Adapter holds the PatientVault API connection settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds the optional run journal settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workflow holds the request parameters of the four workflow steps.
	Workflow Workflow `envPrefix:"WORKFLOW_"`

	// FakeVault holds the settings of the local fake PatientVault server.
	FakeVault FakeVault `envPrefix:"FAKEVAULT_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds process-level configuration values.
type App struct {
	// Culture is the locale code sent with every API call (e.g. "en").
	// Env: APP_CULTURE
	Culture string `env:"CULTURE"`

	// Username and Password are the PatientVault credentials.
	// Env: APP_USERNAME, APP_PASSWORD
	Username string `env:"USERNAME"`
	Password string `env:"PASSWORD"`

	// AllowBlankCredentials lets blank credentials through local validation
	// so that the remote service decides whether to reject them.
	// Env: APP_ALLOW_BLANK_CREDENTIALS
	AllowBlankCredentials bool `env:"ALLOW_BLANK_CREDENTIALS"`

	// WaitOnExit makes the binary block on a terminal read before exiting.
	// Env: APP_WAIT_ON_EXIT
	WaitOnExit bool `env:"WAIT_ON_EXIT"`

	// LogLevel is the minimum zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Adapter holds the outbound HTTP settings for the PatientVault API.
type Adapter struct {
	// APIRootURL is the PatientVault API root
	// (e.g. "https://patientvault.com/patientvaultapi").
	// Env: ADAPTER_API_ROOT_URL
	APIRootURL string `env:"API_ROOT_URL"`

	// RequestTimeout bounds every single API call (e.g. "30s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// RetryCount is the number of transport-level retries per call.
	// Zero disables retries.
	// Env: ADAPTER_RETRY_COUNT
	RetryCount int `env:"RETRY_COUNT"`
}

// Storage groups the persistence settings.
type Storage struct {
	// Journal holds the run journal settings.
	Journal Journal `envPrefix:"JOURNAL_"`
}

// Journal holds the sqlite run journal settings.
type Journal struct {
	// DSN is the sqlite file path. Empty disables the journal.
	// Env: STORAGE_JOURNAL_DSN
	DSN string `env:"DSN"`
}

// Workflow holds the parameters of the workflow requests.
type Workflow struct {
	// PatientFilters narrows the patient list, "Key:Value,Key2:Value2".
	// Env: WORKFLOW_PATIENT_FILTERS
	PatientFilters map[string]string `env:"PATIENT_FILTERS"`

	// ActivityFilters narrows the activity list (PatientId, DateFrom,
	// DateTo, Year).
	// Env: WORKFLOW_ACTIVITY_FILTERS
	ActivityFilters map[string]string `env:"ACTIVITY_FILTERS"`

	// ContentFormat is "json" or "html".
	// Env: WORKFLOW_CONTENT_FORMAT
	ContentFormat string `env:"CONTENT_FORMAT"`

	// Sections lists the CCDA sections to fetch. Empty means all sections.
	// Env: WORKFLOW_SECTIONS
	Sections []string `env:"SECTIONS"`
}

// FakeVault holds the settings of the local fake PatientVault server.
type FakeVault struct {
	// HTTPAddress is the listen address in "host:port" format.
	// Env: FAKEVAULT_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// SignKey signs the issued session tokens.
	// Env: FAKEVAULT_SIGN_KEY
	SignKey string `env:"SIGN_KEY"`

	// SessionDuration is the lifetime of issued session tokens.
	// Env: FAKEVAULT_SESSION_DURATION
	SessionDuration time.Duration `env:"SESSION_DURATION"`
}

// GetStructuredConfig loads, merges, defaults and validates the
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(commandLineArgs()).
		withJSON().
		build()
}
