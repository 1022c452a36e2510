package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultThrottleWindow = time.Minute

// ResetThrottle rate-limits password-reset emails per address using Redis.
// Key format: reset_throttle:<email>
type ResetThrottle struct {
	client *redis.Client
	window time.Duration
}

// NewResetThrottle creates a ResetThrottle wrapping the given Redis client.
// If window <= 0 the default one-minute window is used.
func NewResetThrottle(client *redis.Client, window time.Duration) *ResetThrottle {
	if window <= 0 {
		window = defaultThrottleWindow
	}
	return &ResetThrottle{client: client, window: window}
}

// Allow reports whether a reset email may go to the address now. The first
// call inside a window claims the key and returns true; later calls return
// false until the key expires.
func (t *ResetThrottle) Allow(ctx context.Context, email string) (bool, error) {
	ok, err := t.client.SetNX(ctx, t.key(email), "1", t.window).Result()
	if err != nil {
		return false, fmt.Errorf("reset throttle: %w", err)
	}
	return ok, nil
}

func (t *ResetThrottle) key(email string) string {
	return "reset_throttle:" + email
}
