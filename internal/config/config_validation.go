// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	switch cfg.Storage.DB.Driver {
	case DriverMemory:
	case DriverPostgres, DriverSQLite:
		if cfg.Storage.DB.DSN == "" {
			return fmt.Errorf("%w: driver %q needs a DSN", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
		}
	default:
		return fmt.Errorf("%w: unknown driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}

	if cfg.Storage.Redis.Address != "" && cfg.Storage.Redis.LockTTL <= 0 {
		return fmt.Errorf("%w: redis lock ttl must be positive", ErrInvalidStorageConfigs)
	}

	if cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: token sign key is required", ErrInvalidAppConfigs)
	}

	if cfg.App.TokenDuration <= 0 {
		return fmt.Errorf("%w: token duration must be positive", ErrInvalidAppConfigs)
	}

	if _, err := cfg.App.Location(); err != nil {
		return fmt.Errorf("%w: time zone %q: %w", ErrInvalidAppConfigs, cfg.App.TimeZone, err)
	}

	if cfg.App.BcryptCost < minBcryptCost || cfg.App.BcryptCost > maxBcryptCost {
		return fmt.Errorf("%w: bcrypt cost %d out of range", ErrInvalidAppConfigs, cfg.App.BcryptCost)
	}

	if cfg.Server.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidServerConfigs)
	}

	if cfg.Server.RateLimit.Capacity < 0 || cfg.Server.RateLimit.RefillInterval < 0 {
		return fmt.Errorf("%w: rate limit must not be negative", ErrInvalidServerConfigs)
	}

	if cfg.Workers.DigestInterval < 0 {
		return fmt.Errorf("%w: digest interval must not be negative", ErrInvalidWorkerConfigs)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.ServerAddress == "" || cfg.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}

// bcrypt.MinCost and bcrypt.MaxCost
const (
	minBcryptCost = 4
	maxBcryptCost = 31
)
