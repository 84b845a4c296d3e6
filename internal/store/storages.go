package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-task-tamer/internal/config"
	"github.com/MKhiriev/go-task-tamer/internal/logger"
)

// Storages groups the repositories used by the service layer.
type Storages struct {
	UserRepository        UserRepository
	WorkSessionRepository WorkSessionRepository
	EarningsRepository    EarningsRepository

	close func() error
}

// NewStorages initialises the store selected by cfg.DB.Driver. SQL drivers
// connect, migrate and get SQL repositories; the memory driver shares one
// [MemoryStorage] across all repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	log.Info().Str("driver", cfg.DB.Driver).Msg("creating new storages...")

	var (
		db  *DB
		err error
	)

	switch cfg.DB.Driver {
	case config.DriverMemory:
		return NewMemoryStorages(NewMemoryStorage()), nil
	case config.DriverPostgres:
		db, err = NewConnectPostgres(ctx, cfg.DB, log)
	case config.DriverSQLite:
		db, err = NewConnectSQLite(ctx, cfg.DB, log)
	default:
		return nil, fmt.Errorf("unsupported storage driver %q", cfg.DB.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("%s connection error: %w", cfg.DB.Driver, err)
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return NewSQLStorages(db, log), nil
}

// NewSQLStorages wires SQL repositories over db.
func NewSQLStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:        NewUserRepository(db, log),
		WorkSessionRepository: NewWorkSessionRepository(db, log),
		EarningsRepository:    NewEarningsRepository(db, log),
		close:                 db.Close,
	}
}

// NewMemoryStorages wires every repository to mem.
func NewMemoryStorages(mem *MemoryStorage) *Storages {
	return &Storages{
		UserRepository:        mem,
		WorkSessionRepository: mem,
		EarningsRepository:    mem,
	}
}

// Close releases the database connection, if any.
func (s *Storages) Close() error {
	if s.close == nil {
		return nil
	}

	return s.close()
}
