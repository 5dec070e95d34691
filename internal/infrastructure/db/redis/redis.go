package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/greenhouse/plants-api/internal/pkg/config"
)

const pingTimeout = 5 * time.Second

// Connect opens the Redis client backing the dashboard statistics cache and
// verifies it with a ping. A failure here is fatal at startup even though
// cache reads degrade gracefully later: a misconfigured address should not
// surface as a permanently cold cache.
func Connect(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.Addr,
		DB:   cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return client, nil
}
