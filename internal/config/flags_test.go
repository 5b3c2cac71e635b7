package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags_AllValues(t *testing.T) {
	cfg, err := ParseFlags([]string{
		"-url", "http://localhost:8080/api-root",
		"-culture", "fr",
		"-u", "vanessa",
		"-password", "secret",
		"-allow-blank-credentials",
		"-wait",
		"-log-level", "warn",
		"-request-timeout", "7s",
		"-retries", "2",
		"-journal", "/tmp/journal.db",
		"-patient-filter", "FirstName:Vanessa,LastName:",
		"-activity-filter", "DateFrom:2024-01-01T10:00:00Z",
		"-content-format", "html",
		"-sections", "allergies,problems",
		"-a", "127.0.0.1:9090",
		"-sign-key", "k",
		"-session-duration", "10m",
		"-config", "/tmp/cfg.json",
	})
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080/api-root", cfg.Adapter.APIRootURL)
	assert.Equal(t, "fr", cfg.App.Culture)
	assert.Equal(t, "vanessa", cfg.App.Username)
	assert.Equal(t, "secret", cfg.App.Password)
	assert.True(t, cfg.App.AllowBlankCredentials)
	assert.True(t, cfg.App.WaitOnExit)
	assert.Equal(t, "warn", cfg.App.LogLevel)
	assert.Equal(t, 7*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 2, cfg.Adapter.RetryCount)
	assert.Equal(t, "/tmp/journal.db", cfg.Storage.Journal.DSN)
	assert.Equal(t, map[string]string{"FirstName": "Vanessa", "LastName": ""}, cfg.Workflow.PatientFilters)
	assert.Equal(t, map[string]string{"DateFrom": "2024-01-01T10:00:00Z"}, cfg.Workflow.ActivityFilters)
	assert.Equal(t, "html", cfg.Workflow.ContentFormat)
	assert.Equal(t, []string{"allergies", "problems"}, cfg.Workflow.Sections)
	assert.Equal(t, "127.0.0.1:9090", cfg.FakeVault.HTTPAddress)
	assert.Equal(t, "k", cfg.FakeVault.SignKey)
	assert.Equal(t, 10*time.Minute, cfg.FakeVault.SessionDuration)
	assert.Equal(t, "/tmp/cfg.json", cfg.JSONFilePath)
}

func TestParseFlags_NoArgsYieldsZeroConfig(t *testing.T) {
	cfg, err := ParseFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

// ── NetAddress ────────────────────────────────────────────────────────────────

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"localhost", "localhost:8080", "localhost:8080", false},
		{"ip", "127.0.0.1:9000", "127.0.0.1:9000", false},
		{"missing port", "localhost", "", true},
		{"bad port", "localhost:abc", "", true},
		{"zero port", "localhost:0", "", true},
		{"bad ip", "not-an-ip:80", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a NetAddress
			err := a.Set(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, a.String())
		})
	}
}

func TestNetAddress_StringEmpty(t *testing.T) {
	var a NetAddress
	assert.Empty(t, a.String())
}

// ── KeyValues / List ──────────────────────────────────────────────────────────

func TestKeyValues_Set(t *testing.T) {
	var kv KeyValues
	require.NoError(t, kv.Set("FirstName:Vanessa, LastName:"))
	require.NoError(t, kv.Set("DateFrom:2024-01-01T10:00"))

	assert.Equal(t, KeyValues{
		"FirstName": "Vanessa",
		"LastName":  "",
		"DateFrom":  "2024-01-01T10:00",
	}, kv)
	assert.Equal(t, "DateFrom:2024-01-01T10:00,FirstName:Vanessa,LastName:", kv.String())
}

func TestKeyValues_SetRejectsMissingSeparator(t *testing.T) {
	var kv KeyValues
	assert.Error(t, kv.Set("FirstName"))
	assert.Error(t, kv.Set(":Vanessa"))
}

func TestList_Set(t *testing.T) {
	var l List
	require.NoError(t, l.Set("allergies, ,problems"))
	assert.Equal(t, List{"allergies", "problems"}, l)
	assert.Equal(t, "allergies,problems", l.String())
}
