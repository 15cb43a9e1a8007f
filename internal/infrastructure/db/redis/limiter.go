package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/betrybe/agrix/internal/core/domain"
)

// LoginLimiter throttles login attempts with a fixed window counter in
// Redis. Key format: login_attempts:<username>:<remote_ip>
type LoginLimiter struct {
	client      *redis.Client
	maxAttempts int
	window      time.Duration
}

// NewLoginLimiter creates a LoginLimiter allowing maxAttempts per window.
func NewLoginLimiter(client *redis.Client, maxAttempts int, window time.Duration) *LoginLimiter {
	if maxAttempts <= 0 {
		maxAttempts = 10
	}
	if window <= 0 {
		window = time.Minute
	}
	return &LoginLimiter{client: client, maxAttempts: maxAttempts, window: window}
}

// Allow counts this attempt and reports whether it is within budget.
func (l *LoginLimiter) Allow(ctx context.Context, username, remoteIP string) error {
	key := l.key(username, remoteIP)

	n, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("login limiter: %w", err)
	}
	if n == 1 {
		// First attempt in this window starts the clock.
		if err := l.client.Expire(ctx, key, l.window).Err(); err != nil {
			return fmt.Errorf("login limiter: %w", err)
		}
	}

	if n > int64(l.maxAttempts) {
		return domain.ErrTooManyAttempts
	}
	return nil
}

func (l *LoginLimiter) key(username, remoteIP string) string {
	return fmt.Sprintf("login_attempts:%s:%s", username, remoteIP)
}
