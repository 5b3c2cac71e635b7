package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_FullFile(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"app": map[string]any{
			"culture":                 "en",
			"username":                "vanessa",
			"password":                "secret",
			"allow_blank_credentials": true,
			"wait_on_exit":            true,
			"log_level":               "debug",
		},
		"adapter": map[string]any{
			"api_root_url":    "https://patientvault.com/patientvaultapi",
			"request_timeout": "15s",
			"retry_count":     3,
		},
		"storage": map[string]any{
			"journal": map[string]any{"dsn": "journal.db"},
		},
		"workflow": map[string]any{
			"patient_filters":  map[string]string{"FirstName": "Vanessa"},
			"activity_filters": map[string]string{"Year": "2024"},
			"content_format":   "json",
			"sections":         []string{"results"},
		},
		"fake_vault": map[string]any{
			"http_address":     "localhost:9999",
			"sign_key":         "key",
			"session_duration": "1h",
		},
	})

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "vanessa", cfg.App.Username)
	assert.Equal(t, "secret", cfg.App.Password)
	assert.True(t, cfg.App.AllowBlankCredentials)
	assert.True(t, cfg.App.WaitOnExit)
	assert.Equal(t, "debug", cfg.App.LogLevel)
	assert.Equal(t, 15*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 3, cfg.Adapter.RetryCount)
	assert.Equal(t, "journal.db", cfg.Storage.Journal.DSN)
	assert.Equal(t, map[string]string{"FirstName": "Vanessa"}, cfg.Workflow.PatientFilters)
	assert.Equal(t, map[string]string{"Year": "2024"}, cfg.Workflow.ActivityFilters)
	assert.Equal(t, []string{"results"}, cfg.Workflow.Sections)
	assert.Equal(t, "localhost:9999", cfg.FakeVault.HTTPAddress)
	assert.Equal(t, time.Hour, cfg.FakeVault.SessionDuration)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestParseJSON_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := parseJSON(path)
	assert.Error(t, err)
}

// ── Duration ──────────────────────────────────────────────────────────────────

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{"string", `"30s"`, 30 * time.Second, false},
		{"nanoseconds", `1000000000`, time.Second, false},
		{"bad string", `"soon"`, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := json.Unmarshal([]byte(tt.input), &d)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}
}

func TestDuration_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(Duration(90 * time.Second))
	require.NoError(t, err)
	assert.JSONEq(t, `"1m30s"`, string(data))
}
