package redis

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// LockoutTracker counts failed login attempts per account in Redis.
// Key format: lockout:<normalized email>. The counter expires after the
// lockout window, so a locked account unlocks itself when the window
// elapses.
type LockoutTracker struct {
	client      *redis.Client
	maxAttempts int
	window      time.Duration
}

// NewLockoutTracker creates a LockoutTracker wrapping the given client.
func NewLockoutTracker(client *redis.Client, maxAttempts int, window time.Duration) *LockoutTracker {
	return &LockoutTracker{client: client, maxAttempts: maxAttempts, window: window}
}

// IsLockedOut reports whether the account has reached the failure limit.
func (l *LockoutTracker) IsLockedOut(ctx context.Context, email string) (bool, error) {
	n, err := l.client.Get(ctx, l.key(email)).Int()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("lockout get: %w", err)
	}
	return n >= l.maxAttempts, nil
}

// RecordFailure increments the failure counter and refreshes the window.
func (l *LockoutTracker) RecordFailure(ctx context.Context, email string) error {
	key := l.key(email)
	pipe := l.client.TxPipeline()
	pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, l.window)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("lockout incr: %w", err)
	}
	return nil
}

// Reset clears the failure counter after a successful login.
func (l *LockoutTracker) Reset(ctx context.Context, email string) error {
	if err := l.client.Del(ctx, l.key(email)).Err(); err != nil {
		return fmt.Errorf("lockout reset: %w", err)
	}
	return nil
}

func (l *LockoutTracker) key(email string) string {
	return "lockout:" + strings.ToLower(strings.TrimSpace(email))
}
