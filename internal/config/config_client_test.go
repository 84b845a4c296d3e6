package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadClientConfig_MissingFileUsesDefaults(t *testing.T) {
	clearEnvVars(t)

	cfg, err := LoadClientConfig(filepath.Join(t.TempDir(), "config.yaml"))

	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", cfg.ServerAddress)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
	assert.Empty(t, cfg.Token)
}

func TestLoadClientConfig_FileThenEnv(t *testing.T) {
	clearEnvVars(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"server_address: http://tamer.local\nrequest_timeout: 5s\ntoken: file-token\n",
	), 0o600))
	setEnvVars(t, map[string]string{"TAMER_TOKEN": "env-token"})

	cfg, err := LoadClientConfig(path)

	require.NoError(t, err)
	assert.Equal(t, "http://tamer.local", cfg.ServerAddress)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "env-token", cfg.Token)
}

func TestLoadClientConfig_InvalidYAML(t *testing.T) {
	clearEnvVars(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server_address: [oops"), 0o600))

	_, err := LoadClientConfig(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding client config")
}

func TestSaveClientConfig_RoundTrip(t *testing.T) {
	clearEnvVars(t)
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	want := &ClientConfig{
		ServerAddress:  "http://example.test",
		RequestTimeout: 3 * time.Second,
		Token:          "tok",
		Email:          "a@b.c",
	}

	require.NoError(t, SaveClientConfig(path, want))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	got, err := LoadClientConfig(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
