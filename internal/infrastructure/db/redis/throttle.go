package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// throttleWindow is how long a streak of failures is remembered.
	throttleWindow = 15 * time.Minute

	// defaultMaxFailures is the failure count at which logins are blocked.
	defaultMaxFailures = 5
)

// LoginThrottle counts consecutive failed login attempts per username in
// Redis. The counter expires after the throttle window, so a lockout always
// clears itself without operator intervention.
// Key format: login_fail:<username>
type LoginThrottle struct {
	client      *redis.Client
	maxFailures int64
}

// NewLoginThrottle wraps client. maxFailures <= 0 selects the default.
func NewLoginThrottle(client *redis.Client, maxFailures int) *LoginThrottle {
	if maxFailures <= 0 {
		maxFailures = defaultMaxFailures
	}
	return &LoginThrottle{client: client, maxFailures: int64(maxFailures)}
}

// Blocked reports whether the username has reached the failure threshold.
func (t *LoginThrottle) Blocked(ctx context.Context, username string) (bool, error) {
	n, err := t.client.Get(ctx, t.key(username)).Int64()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("throttle check: %w", err)
	}
	return n >= t.maxFailures, nil
}

// RecordFailure increments the failure counter and refreshes its expiry.
func (t *LoginThrottle) RecordFailure(ctx context.Context, username string) error {
	key := t.key(username)
	pipe := t.client.TxPipeline()
	pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, throttleWindow)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("throttle record failure: %w", err)
	}
	return nil
}

// Reset clears the failure counter after a successful login.
func (t *LoginThrottle) Reset(ctx context.Context, username string) error {
	if err := t.client.Del(ctx, t.key(username)).Err(); err != nil {
		return fmt.Errorf("throttle reset: %w", err)
	}
	return nil
}

func (t *LoginThrottle) key(username string) string {
	return "login_fail:" + username
}
