package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-task-tamer/internal/config"
)

func newTestRateLimiter(t *testing.T, capacity int, interval time.Duration) (*RateLimiter, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	limiter := NewRateLimiter(client, config.RateLimit{Capacity: capacity, RefillInterval: interval})
	require.NotNil(t, limiter)
	return limiter, mr
}

func TestNewRateLimiter_Disabled(t *testing.T) {
	assert.Nil(t, NewRateLimiter(nil, config.RateLimit{Capacity: 10, RefillInterval: time.Second}))

	client := redis.NewClient(&redis.Options{Addr: "localhost:0"})
	defer client.Close()
	assert.Nil(t, NewRateLimiter(client, config.RateLimit{Capacity: 0}))
}

func TestRateLimiter_Allow(t *testing.T) {
	limiter, _ := newTestRateLimiter(t, 2, time.Second)
	now := time.Date(2024, 5, 20, 9, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return now }
	ctx := context.Background()

	first, err := limiter.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.True(t, first.Allowed)
	assert.Equal(t, int64(1), first.Remaining)

	second, err := limiter.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.True(t, second.Allowed)
	assert.Equal(t, int64(0), second.Remaining)

	now = now.Add(400 * time.Millisecond)
	denied, err := limiter.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.False(t, denied.Allowed)
	assert.Equal(t, 600*time.Millisecond, denied.RetryAfter)

	other, err := limiter.Allow(ctx, "10.0.0.2")
	require.NoError(t, err)
	assert.True(t, other.Allowed, "buckets are per key")

	now = now.Add(600 * time.Millisecond)
	refilled, err := limiter.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.True(t, refilled.Allowed)
}

func TestRateLimiter_KeyExpires(t *testing.T) {
	limiter, mr := newTestRateLimiter(t, 3, time.Second)

	_, err := limiter.Allow(context.Background(), "10.0.0.1")
	require.NoError(t, err)
	require.True(t, mr.Exists(rateLimitKeyPrefix+"10.0.0.1"))

	mr.FastForward(4 * time.Second)
	assert.False(t, mr.Exists(rateLimitKeyPrefix+"10.0.0.1"))
}

func TestWithRateLimit(t *testing.T) {
	limiter, _ := newTestRateLimiter(t, 2, time.Minute)
	router, m := newTestRouter(t, WithRateLimiter(limiter))
	m.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.0.0").Times(2)

	codes := make([]int, 0, 3)
	var last *httptest.ResponseRecorder
	for i := 0; i < 3; i++ {
		last = httptest.NewRecorder()
		router.ServeHTTP(last, httptest.NewRequest(http.MethodGet, "/api/version", nil))
		codes = append(codes, last.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
	assert.Equal(t, "2", last.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "0", last.Header().Get("X-RateLimit-Remaining"))
	assert.NotEmpty(t, last.Header().Get("Retry-After"))
	assert.JSONEq(t, `{"error":"rate limit exceeded"}`, last.Body.String())
}

func TestWithRateLimit_RedisDownLetsThrough(t *testing.T) {
	limiter, mr := newTestRateLimiter(t, 1, time.Minute)
	router, m := newTestRouter(t, WithRateLimiter(limiter))
	m.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.0.0")
	mr.Close()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/version", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestClientKey(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.0.2.7:5555"
	assert.Equal(t, "192.0.2.7", clientKey(req))

	req.RemoteAddr = "192.0.2.7"
	assert.Equal(t, "192.0.2.7", clientKey(req))
}
