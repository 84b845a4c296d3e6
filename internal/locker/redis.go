package locker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/go-task-tamer/internal/logger"
)

const (
	redisKeyPrefix     = "tamer:lock:"
	redisRetryInterval = 20 * time.Millisecond
	redisReleaseWait   = 2 * time.Second
)

// releaseScript deletes the lock only while it still carries our token, so
// an expired lock re-acquired by another holder is left alone.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisLocker implements [Locker] with SET NX PX. Each acquisition carries a
// random token and expires after ttl even if the holder dies.
type RedisLocker struct {
	client redis.UniversalClient
	ttl    time.Duration
	logger *logger.Logger
}

func NewRedisLocker(client redis.UniversalClient, ttl time.Duration, log *logger.Logger) *RedisLocker {
	return &RedisLocker{client: client, ttl: ttl, logger: log}
}

// Lock retries every few milliseconds until the key is free or ctx ends.
func (l *RedisLocker) Lock(ctx context.Context, key string) (func(), error) {
	redisKey := redisKeyPrefix + key
	token := uuid.NewString()

	for {
		ok, err := l.client.SetNX(ctx, redisKey, token, l.ttl).Result()
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, fmt.Errorf("%w: %w", ErrLockTimeout, ctxErr)
			}
			return nil, fmt.Errorf("error acquiring redis lock: %w", err)
		}
		if ok {
			return l.unlocker(redisKey, token), nil
		}

		timer := time.NewTimer(redisRetryInterval)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, fmt.Errorf("%w: %w", ErrLockTimeout, ctx.Err())
		case <-timer.C:
		}
	}
}

func (l *RedisLocker) unlocker(redisKey, token string) func() {
	return func() {
		// the caller's ctx may already be cancelled
		ctx, cancel := context.WithTimeout(context.Background(), redisReleaseWait)
		defer cancel()

		err := releaseScript.Run(ctx, l.client, []string{redisKey}, token).Err()
		if err != nil && !errors.Is(err, redis.Nil) {
			l.logger.Err(err).
				Str("func", "*RedisLocker.unlock").
				Str("key", redisKey).
				Msg("error releasing redis lock")
		}
	}
}
