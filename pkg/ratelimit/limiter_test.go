package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLimiter(t *testing.T, max int, window time.Duration) (*Limiter, *redis.Client) {
	t.Helper()

	client := redis.NewClient(&redis.Options{Addr: "localhost:6379"})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		t.Skip("Redis not available, skipping integration test")
	}

	t.Cleanup(func() { client.Close() })

	return NewLimiter(client, Config{MaxRequests: max, Window: window}, "test:ratelimit:"), client
}

func TestLimiterAllow(t *testing.T) {
	limiter, client := newTestLimiter(t, 5, time.Minute)

	ctx := context.Background()
	key := "allow-key"
	defer client.Del(ctx, "test:ratelimit:"+key, "test:ratelimit:"+key+":counter")

	for i := 0; i < 5; i++ {
		result, err := limiter.Allow(ctx, key)
		require.NoError(t, err)
		assert.True(t, result.Allowed, "request %d should be allowed", i+1)
		assert.Equal(t, 5-i-1, result.Remaining)
	}

	result, err := limiter.Allow(ctx, key)
	require.NoError(t, err)
	assert.False(t, result.Allowed, "6th request should be denied")
	assert.Equal(t, 0, result.Remaining)
	assert.Greater(t, result.RetryAfter, time.Duration(0))
}

func TestLimiterIsolatesKeys(t *testing.T) {
	limiter, client := newTestLimiter(t, 1, time.Minute)

	ctx := context.Background()
	defer client.Del(ctx,
		"test:ratelimit:ip-a", "test:ratelimit:ip-a:counter",
		"test:ratelimit:ip-b", "test:ratelimit:ip-b:counter",
	)

	first, err := limiter.Allow(ctx, "ip-a")
	require.NoError(t, err)
	assert.True(t, first.Allowed)

	second, err := limiter.Allow(ctx, "ip-a")
	require.NoError(t, err)
	assert.False(t, second.Allowed)

	// Another client is unaffected.
	other, err := limiter.Allow(ctx, "ip-b")
	require.NoError(t, err)
	assert.True(t, other.Allowed)
}
