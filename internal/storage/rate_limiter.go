package storage

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// RateLimiter is a sliding-window log kept in a redis sorted set, one set per
// client. Every attempt is recorded, rejected ones included.
type RateLimiter struct {
	client      *redis.Client
	maxRequests int64
	window      time.Duration
	now         func() time.Time
}

func NewRateLimiter(client *redis.Client, maxRequests int64, window time.Duration) *RateLimiter {
	return &RateLimiter{
		client:      client,
		maxRequests: maxRequests,
		window:      window,
		now:         time.Now,
	}
}

// Allow records an attempt for client and returns whether it fits the window.
// When it does not, retryAfter is how long until the oldest attempt expires.
func (r *RateLimiter) Allow(ctx context.Context, client string) (bool, time.Duration, error) {

	key := Key("rate_limit", client)

	now := r.now()
	windowStart := now.Add(-r.window).UnixNano()

	pipe := r.client.Pipeline()

	// drop attempts that left the window
	pipe.ZRemRangeByScore(ctx, key, "0", strconv.FormatInt(windowStart, 10))

	pipe.ZAdd(ctx, key, redis.Z{Score: float64(now.UnixNano()), Member: now.UnixNano()})

	count := pipe.ZCard(ctx, key)

	pipe.Expire(ctx, key, r.window)

	if _, err := pipe.Exec(ctx); err != nil {
		return false, 0, fmt.Errorf("failed to record attempt for %s: %w", client, err)
	}

	if count.Val() <= r.maxRequests {
		return true, 0, nil
	}

	oldest, err := r.client.ZRangeWithScores(ctx, key, 0, 0).Result()
	if err != nil {
		return false, 0, fmt.Errorf("failed to read oldest attempt for %s: %w", client, err)
	}

	if len(oldest) == 0 {
		return false, r.window, nil
	}

	expires := time.Unix(0, int64(math.Round(oldest[0].Score))).Add(r.window)

	return false, max(0, expires.Sub(now)), nil
}
