package config

import (
	"fmt"
	"time"

	"github.com/MKhiriev/patient-vault-example/models"
)

// ClientApp holds process-level settings of the workflow binary.
type ClientApp struct {
	// Culture is the locale code sent with every API call.
	Culture string
	// Credentials is the username/password pair sent to the authentication
	// endpoint.
	Credentials models.UserAuthenticationRequest
	// AllowBlankCredentials lets blank credentials reach the API.
	AllowBlankCredentials bool
	// WaitOnExit blocks on a terminal read before the process exits.
	WaitOnExit bool
	// LogLevel is the minimum zerolog level name.
	LogLevel string
}

// ClientAdapter holds network settings used by the PatientVault adapter.
type ClientAdapter struct {
	// APIRootURL is the PatientVault API root.
	APIRootURL string
	// RequestTimeout is the timeout of every outbound request.
	RequestTimeout time.Duration
	// RetryCount is the number of transport-level retries per request.
	RetryCount int
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// JournalDSN is the sqlite run journal path; empty disables the journal.
	JournalDSN string
}

// ClientWorkflow holds the request parameters of the workflow steps.
type ClientWorkflow struct {
	PatientFilters  models.Filters
	ActivityFilters models.Filters
	ContentFormat   models.ContentFormat
	Sections        models.AttachmentSection
}

// ClientConfig is the top-level configuration of the workflow binary,
// assembled from [StructuredConfig].
type ClientConfig struct {
	// App contains application-level settings.
	App ClientApp
	// Adapter contains API transport settings.
	Adapter ClientAdapter
	// Storage contains run journal settings.
	Storage ClientStorage
	// Workflow contains the step request parameters.
	Workflow ClientWorkflow
}

// GetClientConfig builds and validates the workflow configuration from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the workflow binary, and validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	sections, err := models.ParseAttachmentSection(cfg.Workflow.Sections)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSections, err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			Culture: cfg.App.Culture,
			Credentials: models.UserAuthenticationRequest{
				Username: cfg.App.Username,
				Password: cfg.App.Password,
			},
			AllowBlankCredentials: cfg.App.AllowBlankCredentials,
			WaitOnExit:            cfg.App.WaitOnExit,
			LogLevel:              cfg.App.LogLevel,
		},
		Adapter: ClientAdapter{
			APIRootURL:     cfg.Adapter.APIRootURL,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			RetryCount:     cfg.Adapter.RetryCount,
		},
		Storage: ClientStorage{
			JournalDSN: cfg.Storage.Journal.DSN,
		},
		Workflow: ClientWorkflow{
			PatientFilters:  models.Filters(cfg.Workflow.PatientFilters).Clone(),
			ActivityFilters: models.Filters(cfg.Workflow.ActivityFilters).Clone(),
			ContentFormat:   models.ContentFormat(cfg.Workflow.ContentFormat),
			Sections:        sections,
		},
	}

	return clientCfg, clientCfg.validate()
}
