package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	App struct {
		Culture               string `json:"culture"`
		Username              string `json:"username"`
		Password              string `json:"password"`
		AllowBlankCredentials bool   `json:"allow_blank_credentials"`
		WaitOnExit            bool   `json:"wait_on_exit"`
		LogLevel              string `json:"log_level"`
	} `json:"app,omitempty"`

	Adapter struct {
		APIRootURL     string   `json:"api_root_url"`
		RequestTimeout Duration `json:"request_timeout"`
		RetryCount     int      `json:"retry_count"`
	} `json:"adapter,omitempty"`

	Storage struct {
		Journal struct {
			DSN string `json:"dsn"`
		} `json:"journal,omitempty"`
	} `json:"storage,omitempty"`

	Workflow struct {
		PatientFilters  map[string]string `json:"patient_filters"`
		ActivityFilters map[string]string `json:"activity_filters"`
		ContentFormat   string            `json:"content_format"`
		Sections        []string          `json:"sections"`
	} `json:"workflow,omitempty"`

	FakeVault struct {
		HTTPAddress     string   `json:"http_address"`
		SignKey         string   `json:"sign_key"`
		SessionDuration Duration `json:"session_duration"`
	} `json:"fake_vault,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Culture:               jsonCfg.App.Culture,
			Username:              jsonCfg.App.Username,
			Password:              jsonCfg.App.Password,
			AllowBlankCredentials: jsonCfg.App.AllowBlankCredentials,
			WaitOnExit:            jsonCfg.App.WaitOnExit,
			LogLevel:              jsonCfg.App.LogLevel,
		},
		Adapter: Adapter{
			APIRootURL:     jsonCfg.Adapter.APIRootURL,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
			RetryCount:     jsonCfg.Adapter.RetryCount,
		},
		Storage: Storage{
			Journal: Journal{
				DSN: jsonCfg.Storage.Journal.DSN,
			},
		},
		Workflow: Workflow{
			PatientFilters:  jsonCfg.Workflow.PatientFilters,
			ActivityFilters: jsonCfg.Workflow.ActivityFilters,
			ContentFormat:   jsonCfg.Workflow.ContentFormat,
			Sections:        jsonCfg.Workflow.Sections,
		},
		FakeVault: FakeVault{
			HTTPAddress:     jsonCfg.FakeVault.HTTPAddress,
			SignKey:         jsonCfg.FakeVault.SignKey,
			SessionDuration: time.Duration(jsonCfg.FakeVault.SessionDuration),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
