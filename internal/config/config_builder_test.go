package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilderAppliesDefaults verifies that a builder without
// sources yields the example defaults.
func TestBuild_EmptyBuilderAppliesDefaults(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)

	assert.Equal(t, DefaultAPIRootURL, cfg.Adapter.APIRootURL)
	assert.Equal(t, DefaultCulture, cfg.App.Culture)
	assert.Equal(t, DefaultRequestTimeout, cfg.Adapter.RequestTimeout)
	assert.Equal(t, DefaultContentFormat, cfg.Workflow.ContentFormat)
	assert.Equal(t, map[string]string{"FirstName": "Vanessa", "LastName": ""}, cfg.Workflow.PatientFilters)
	assert.Equal(t, map[string]string{"PatientId": "", "DateFrom": "", "DateTo": "", "Year": ""}, cfg.Workflow.ActivityFilters)
	assert.Empty(t, cfg.App.Username)
	assert.Empty(t, cfg.App.Password)
	assert.Empty(t, cfg.Workflow.Sections)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterSourceOverrides verifies that a later non-zero field wins
// and that zero fields keep earlier values.
func TestBuild_LaterSourceOverrides(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{Culture: "fr", Username: "env-user"}},
		&StructuredConfig{App: App{Culture: "de"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "de", cfg.App.Culture)
	assert.Equal(t, "env-user", cfg.App.Username)
}

func TestBuild_RejectsNegativeTimeout(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{Adapter: Adapter{RequestTimeout: -time.Second}})

	_, err := b.build()
	assert.ErrorIs(t, err, ErrInvalidAdapterConfigs)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())
}

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("APP_USERNAME", "env-user")
	t.Setenv("APP_CULTURE", "es")
	t.Setenv("WORKFLOW_PATIENT_FILTERS", "LastName:Smith")

	b := newConfigBuilder()
	b.withEnv()

	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-user", b.configs[0].App.Username)
	assert.Equal(t, "es", b.configs[0].App.Culture)
	assert.Equal(t, map[string]string{"LastName": "Smith"}, b.configs[0].Workflow.PatientFilters)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

func TestWithFlags_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withFlags(nil))
}

func TestWithFlags_RecordsParseError(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-no-such-flag"})
	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withJSON()

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"adapter": map[string]any{"api_root_url": "http://localhost:8080", "request_timeout": "5s"},
	})

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "http://localhost:8080", b.configs[1].Adapter.APIRootURL)
	assert.Equal(t, 5*time.Second, b.configs[1].Adapter.RequestTimeout)
}

func TestWithJSON_SetsError_WhenFileMissing(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/does/not/exist.json"})
	b.withJSON()

	assert.Error(t, b.err)
}

// ── full chain ────────────────────────────────────────────────────────────────

// TestFullChain_PriorityOrder verifies env < flags < JSON.
func TestFullChain_PriorityOrder(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"app": map[string]any{"password": "json-secret"},
	})
	t.Setenv("APP_USERNAME", "env-user")
	t.Setenv("APP_PASSWORD", "env-secret")
	t.Setenv("APP_CULTURE", "es")

	cfg, err := newConfigBuilder().
		withEnv().
		withFlags([]string{"-culture", "fr", "-c", path}).
		withJSON().
		build()
	require.NoError(t, err)

	assert.Equal(t, "env-user", cfg.App.Username)
	assert.Equal(t, "fr", cfg.App.Culture)
	assert.Equal(t, "json-secret", cfg.App.Password)
}
