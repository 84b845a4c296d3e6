package store

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/go-task-tamer/internal/config"
	"github.com/MKhiriev/go-task-tamer/internal/logger"
)

const redisPingTimeout = 2 * time.Second

// NewRedisClient connects to the Redis instance in cfg. It returns a nil
// client and no error when Redis is not configured.
func NewRedisClient(ctx context.Context, cfg config.Redis, log *logger.Logger) (*redis.Client, error) {
	if cfg.Address == "" {
		log.Info().Msg("redis is not configured")
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		log.Err(err).Str("func", "NewRedisClient").Str("address", cfg.Address).Msg("redis ping failed")
		return nil, fmt.Errorf("error connecting redis: %w", err)
	}
	log.Debug().Str("address", cfg.Address).Msg("connected to redis")

	return client, nil
}
