package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Counters are namespaced per user under the app prefix so a shared redis
// instance stays legible.
const rateLimitPrefix = "zenith:ratelimit:"

// RateLimiter enforces a per-user fixed window over Redis.
type RateLimiter struct {
	client            *Client
	requestsPerMinute int
	burst             int
}

// NewRateLimiter creates a new rate limiter
func NewRateLimiter(client *Client, requestsPerMinute, burst int) *RateLimiter {
	return &RateLimiter{
		client:            client,
		requestsPerMinute: requestsPerMinute,
		burst:             burst,
	}
}

// Allow counts a request against the caller's current minute window.
// Returns (allowed, remaining, resetTime, error)
func (r *RateLimiter) Allow(ctx context.Context, userKey string) (bool, int, time.Time, error) {
	fullKey := rateLimitPrefix + userKey
	now := time.Now()
	windowEnd := now.Truncate(time.Minute).Add(time.Minute)

	pipe := r.client.rdb.Pipeline()
	incrCmd := pipe.Incr(ctx, fullKey)
	pipe.ExpireNX(ctx, fullKey, time.Minute)

	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return false, 0, time.Time{}, fmt.Errorf("failed to execute rate limit check: %w", err)
	}

	count := incrCmd.Val()
	limit := int64(r.requestsPerMinute + r.burst)
	remaining := int(limit - count)
	if remaining < 0 {
		remaining = 0
	}

	return count <= limit, remaining, windowEnd, nil
}

// Reset clears the counter for a user, e.g. after an account deletion.
func (r *RateLimiter) Reset(ctx context.Context, userKey string) error {
	return r.client.rdb.Del(ctx, rateLimitPrefix+userKey).Err()
}
