package http

import (
	"context"
	"fmt"
	"math"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/MKhiriev/go-task-tamer/internal/config"
	"github.com/MKhiriev/go-task-tamer/internal/logger"
	"github.com/redis/go-redis/v9"
)

const rateLimitKeyPrefix = "tamer:ratelimit:"

// tokenBucketScript refills the bucket by whole intervals, then takes one
// token. Returns {allowed, remaining, retry_after_ms}.
var tokenBucketScript = redis.NewScript(`
local key = KEYS[1]
local now_ms = tonumber(ARGV[1])
local capacity = tonumber(ARGV[2])
local interval_ms = tonumber(ARGV[3])
local ttl_seconds = tonumber(ARGV[4])

local state = redis.call('HMGET', key, 'tokens', 'last_refill_ms')
local tokens = tonumber(state[1])
local last_refill = tonumber(state[2])

if tokens == nil or last_refill == nil then
	tokens = capacity
	last_refill = now_ms
end

if interval_ms > 0 then
	local intervals = math.floor(math.max(0, now_ms - last_refill) / interval_ms)
	if intervals > 0 then
		tokens = math.min(capacity, tokens + intervals)
		last_refill = last_refill + intervals * interval_ms
	end
end

local allowed = 0
local retry_after_ms = 0
if tokens > 0 then
	allowed = 1
	tokens = tokens - 1
else
	retry_after_ms = math.max(0, interval_ms - (now_ms - last_refill))
end

redis.call('HSET', key, 'tokens', tokens, 'last_refill_ms', last_refill)
redis.call('EXPIRE', key, ttl_seconds)

return {allowed, tokens, retry_after_ms}
`)

// RateLimiter is a token bucket per client kept in Redis, so every server
// instance shares the same budget.
type RateLimiter struct {
	client   redis.UniversalClient
	capacity int
	interval time.Duration
	now      func() time.Time
}

// NewRateLimiter returns nil when client is nil or the bucket is empty.
func NewRateLimiter(client redis.UniversalClient, cfg config.RateLimit) *RateLimiter {
	if client == nil || cfg.Capacity <= 0 {
		return nil
	}

	return &RateLimiter{
		client:   client,
		capacity: cfg.Capacity,
		interval: cfg.RefillInterval,
		now:      time.Now,
	}
}

// RateDecision is the outcome of one [RateLimiter.Allow] call.
type RateDecision struct {
	Allowed    bool
	Remaining  int64
	RetryAfter time.Duration
}

// Allow takes one token from the bucket of key.
func (l *RateLimiter) Allow(ctx context.Context, key string) (RateDecision, error) {
	// an idle bucket refills completely within capacity intervals
	ttl := int64(math.Ceil((time.Duration(l.capacity) * l.interval).Seconds()))
	if ttl < 1 {
		ttl = 1
	}

	values, err := tokenBucketScript.Run(ctx, l.client, []string{rateLimitKeyPrefix + key},
		l.now().UnixMilli(), l.capacity, l.interval.Milliseconds(), ttl,
	).Int64Slice()
	if err != nil {
		return RateDecision{}, fmt.Errorf("error running rate limit script: %w", err)
	}
	if len(values) != 3 {
		return RateDecision{}, fmt.Errorf("unexpected rate limit script result: %v", values)
	}

	return RateDecision{
		Allowed:    values[0] == 1,
		Remaining:  values[1],
		RetryAfter: time.Duration(values[2]) * time.Millisecond,
	}, nil
}

// withRateLimit limits requests per client address. Redis failures let the
// request through.
func (h *Handler) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		decision, err := h.rateLimiter.Allow(r.Context(), clientKey(r))
		if err != nil {
			logger.FromRequest(r).Warn().Err(err).Msg("rate limiter unavailable")
			next.ServeHTTP(w, r)
			return
		}

		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(h.rateLimiter.capacity))
		w.Header().Set("X-RateLimit-Remaining", strconv.FormatInt(decision.Remaining, 10))

		if !decision.Allowed {
			w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(decision.RetryAfter.Seconds()))))
			writeError(w, r, ErrTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// clientKey is the host part of RemoteAddr, which chi's RealIP middleware
// has already replaced with the forwarded address when present.
func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
