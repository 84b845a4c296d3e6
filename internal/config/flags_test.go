package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags_AllFlags(t *testing.T) {
	args := []string{
		"-a", "127.0.0.1:9000",
		"-driver", "sqlite",
		"-d", "file:tamer.db",
		"-redis", "localhost:6379",
		"-c", "/etc/tamer.json",
		"-token-sign-key", "secret",
		"-token-issuer", "issuer",
		"-token-duration", "2h",
		"-request-timeout", "15s",
		"-tz", "UTC",
		"-digest-interval", "30m",
		"-log-level", "warn",
	}

	cfg, err := parseFlags(args)

	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.HTTPAddress)
	assert.Equal(t, "sqlite", cfg.Storage.DB.Driver)
	assert.Equal(t, "file:tamer.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "localhost:6379", cfg.Storage.Redis.Address)
	assert.Equal(t, "/etc/tamer.json", cfg.JSONFilePath)
	assert.Equal(t, "secret", cfg.App.TokenSignKey)
	assert.Equal(t, "issuer", cfg.App.TokenIssuer)
	assert.Equal(t, 2*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, 15*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "UTC", cfg.App.TimeZone)
	assert.Equal(t, 30*time.Minute, cfg.Workers.DigestInterval)
	assert.Equal(t, "warn", cfg.App.LogLevel)
}

func TestParseFlags_NoFlags(t *testing.T) {
	cfg, err := parseFlags(nil)

	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_ConfigAlias(t *testing.T) {
	cfg, err := parseFlags([]string{"-config", "/tmp/c.json"})

	require.NoError(t, err)
	assert.Equal(t, "/tmp/c.json", cfg.JSONFilePath)
}

func TestParseFlags_InvalidAddress(t *testing.T) {
	_, err := parseFlags([]string{"-a", "not-an-address"})
	require.Error(t, err)
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "localhost", input: "localhost:8080", want: "localhost:8080"},
		{name: "ipv4", input: "10.0.0.1:80", want: "10.0.0.1:80"},
		{name: "all interfaces", input: ":8080", want: ":8080"},
		{name: "missing port", input: "localhost", wantErr: true},
		{name: "bad port", input: "localhost:http", wantErr: true},
		{name: "zero port", input: "localhost:0", wantErr: true},
		{name: "port too big", input: "localhost:70000", wantErr: true},
		{name: "bad host", input: "example:8080", wantErr: true},
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
