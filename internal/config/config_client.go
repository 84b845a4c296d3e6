package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// ClientEnvPrefix is the prefix of environment variables read by the CLI.
const ClientEnvPrefix = "TAMER_"

// ClientConfig is the tamer CLI profile. It is stored as YAML and can be
// overridden by TAMER_-prefixed environment variables.
type ClientConfig struct {
	// ServerAddress is the base URL of the task-tamer server.
	// Env: TAMER_SERVER_ADDRESS
	ServerAddress string `yaml:"server_address" env:"SERVER_ADDRESS"`
	// RequestTimeout bounds every call made by the CLI.
	// Env: TAMER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `yaml:"request_timeout" env:"REQUEST_TIMEOUT"`
	// Token is the bearer token saved by "tamer login".
	// Env: TAMER_TOKEN
	Token string `yaml:"token,omitempty" env:"TOKEN"`
	// Email of the logged in user, shown by "tamer whoami" when offline.
	Email string `yaml:"email,omitempty" env:"EMAIL"`
}

func defaultClientConfig() *ClientConfig {
	return &ClientConfig{
		ServerAddress:  "http://localhost:8080",
		RequestTimeout: 10 * time.Second,
	}
}

// DefaultClientConfigPath returns <user config dir>/tamer/config.yaml.
func DefaultClientConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("error resolving user config dir: %w", err)
	}

	return filepath.Join(dir, "tamer", "config.yaml"), nil
}

// LoadClientConfig reads the profile at path (a missing file yields an empty
// profile), applies environment overrides and defaults, and validates the
// result.
func LoadClientConfig(path string) (*ClientConfig, error) {
	fileCfg := &ClientConfig{}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("error reading client config: %w", err)
	default:
		if err := yaml.Unmarshal(data, fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding client config: %w", err)
		}
	}

	envCfg := &ClientConfig{}
	if err := parseEnvWithPrefix(envCfg, ClientEnvPrefix); err != nil {
		return nil, err
	}

	if err := mergo.Merge(fileCfg, envCfg, mergo.WithOverride); err != nil {
		return nil, fmt.Errorf("error merging configs: %w", err)
	}
	if err := mergo.Merge(fileCfg, defaultClientConfig()); err != nil {
		return nil, fmt.Errorf("error applying default configs: %w", err)
	}

	if err := fileCfg.validate(); err != nil {
		return nil, err
	}

	return fileCfg, nil
}

// SaveClientConfig writes cfg to path as YAML, creating parent directories.
// The file is readable by the owner only because it holds the token.
func SaveClientConfig(path string, cfg *ClientConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("error creating client config dir: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("error encoding client config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("error writing client config: %w", err)
	}

	return nil
}
