// Package redis provides the Redis connection used by the identity
// service: the failed-login lockout tracker and the readiness probe.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultTimeout = 5 * time.Second

// Config captures the settings for establishing the Redis connection.
type Config struct {
	// Addr is the host:port of the Redis instance.
	Addr string
	// DB selects the logical database holding the lockout counters.
	DB int
	// Timeout bounds both the startup ping and per-command I/O.
	// Defaults to defaultTimeout when zero.
	Timeout time.Duration
}

// Connect initialises the client and validates connectivity with a ping,
// so a misconfigured Redis fails the service at startup instead of on
// the first locked-out login.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		DB:           cfg.DB,
		DialTimeout:  timeout,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	})

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return client, nil
}
