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

func minimalConfig() *StructuredConfig {
	return &StructuredConfig{App: App{TokenSignKey: "secret"}}
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that defaults alone are rejected because
// the token sign key has no default.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_AppliesDefaults verifies that unset fields take default values.
func TestBuild_AppliesDefaults(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, minimalConfig())

	cfg, err := b.build()

	require.NoError(t, err)
	assert.Equal(t, "secret", cfg.App.TokenSignKey)
	assert.Equal(t, DriverMemory, cfg.Storage.DB.Driver)
	assert.Equal(t, 24*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "Local", cfg.App.TimeZone)
	assert.Equal(t, 10, cfg.App.BcryptCost)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Zero(t, cfg.Workers.DigestInterval)
}

// TestBuild_LaterSourceWins verifies that a non-zero field of a later source
// overrides the earlier one while zero fields leave it intact.
func TestBuild_LaterSourceWins(t *testing.T) {
	first := minimalConfig()
	first.Server.HTTPAddress = "localhost:1111"
	first.App.TokenIssuer = "first"

	second := &StructuredConfig{Server: Server{HTTPAddress: "localhost:2222"}}

	b := newConfigBuilder()
	b.configs = append(b.configs, first, second)

	cfg, err := b.build()

	require.NoError(t, err)
	assert.Equal(t, "localhost:2222", cfg.Server.HTTPAddress)
	assert.Equal(t, "first", cfg.App.TokenIssuer)
}

func TestBuild_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *StructuredConfig)
		wantErr error
	}{
		{
			name:    "unknown driver",
			mutate:  func(c *StructuredConfig) { c.Storage.DB.Driver = "mongo" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "postgres without dsn",
			mutate:  func(c *StructuredConfig) { c.Storage.DB.Driver = DriverPostgres },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "unknown time zone",
			mutate:  func(c *StructuredConfig) { c.App.TimeZone = "Mars/Olympus" },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "bcrypt cost too high",
			mutate:  func(c *StructuredConfig) { c.App.BcryptCost = 40 },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "negative digest interval",
			mutate:  func(c *StructuredConfig) { c.Workers.DigestInterval = -time.Second },
			wantErr: ErrInvalidWorkerConfigs,
		},
		{
			name:    "negative rate limit",
			mutate:  func(c *StructuredConfig) { c.Server.RateLimit.Capacity = -1 },
			wantErr: ErrInvalidServerConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := minimalConfig()
			tt.mutate(c)

			b := newConfigBuilder()
			b.configs = append(b.configs, c)

			cfg, err := b.build()
			assert.Nil(t, cfg)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoPathSkips(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, minimalConfig())

	b.withJSON()

	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithJSON_AppendsFileConfig(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"server": map[string]any{"http_address": "localhost:3000"},
	})

	c := minimalConfig()
	c.JSONFilePath = path

	cfg, err := newConfigBuilder().
		withJSONSource(c).
		withJSON().
		build()

	require.NoError(t, err)
	assert.Equal(t, "localhost:3000", cfg.Server.HTTPAddress)
}

func TestWithJSON_MissingFileRecordsError(t *testing.T) {
	c := minimalConfig()
	c.JSONFilePath = filepath.Join(t.TempDir(), "nope.json")

	b := newConfigBuilder().withJSONSource(c).withJSON()

	assert.Error(t, b.err)
}

// withJSONSource appends a ready-made config, standing in for env or flags.
func (b *configBuilder) withJSONSource(c *StructuredConfig) *configBuilder {
	b.configs = append(b.configs, c)
	return b
}

// ── withDotEnv / GetStructuredConfig ──────────────────────────────────────────

func TestGetStructuredConfig_DotEnvEnvAndFlags(t *testing.T) {
	clearEnvVars(t)

	envFile := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(envFile, []byte(
		"APP_TOKEN_SIGN_KEY=from-dotenv\nAPP_TOKEN_ISSUER=dotenv-issuer\n",
	), 0o600))

	setEnvVars(t, map[string]string{
		"ENV_FILE":         envFile,
		"APP_TOKEN_ISSUER": "env-issuer",
	})
	t.Cleanup(func() { _ = os.Unsetenv("APP_TOKEN_SIGN_KEY") })

	cfg, err := GetStructuredConfig([]string{"-a", "localhost:9999"})

	require.NoError(t, err)
	assert.Equal(t, "from-dotenv", cfg.App.TokenSignKey)
	// real environment variables are not overridden by the dotenv file
	assert.Equal(t, "env-issuer", cfg.App.TokenIssuer)
	assert.Equal(t, "localhost:9999", cfg.Server.HTTPAddress)
}

func TestLoadDotEnv_MissingFileIgnored(t *testing.T) {
	assert.NoError(t, loadDotEnv(filepath.Join(t.TempDir(), "absent.env")))
}
