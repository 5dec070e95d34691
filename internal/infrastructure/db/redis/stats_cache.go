package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/greenhouse/plants-api/internal/core/ports"
)

const statsKey = "dashboard:statistics"
const statsTTL = time.Minute

// StatsCache caches the dashboard statistics payload in Redis. It is a pure
// read accelerator: a miss or a Redis outage only costs a recount.
type StatsCache struct {
	client *redis.Client
}

// NewStatsCache creates a StatsCache wrapping the given Redis client.
func NewStatsCache(client *redis.Client) *StatsCache {
	return &StatsCache{client: client}
}

// Get returns the cached statistics or (nil, nil) on a miss.
func (c *StatsCache) Get(ctx context.Context) (*ports.Statistics, error) {
	raw, err := c.client.Get(ctx, statsKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("stats cache get: %w", err)
	}

	var stats ports.Statistics
	if err := json.Unmarshal(raw, &stats); err != nil {
		return nil, fmt.Errorf("stats cache decode: %w", err)
	}
	return &stats, nil
}

// Put stores stats with a short TTL so counts stay roughly current.
func (c *StatsCache) Put(ctx context.Context, stats *ports.Statistics) error {
	raw, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("stats cache encode: %w", err)
	}
	return c.client.Set(ctx, statsKey, raw, statsTTL).Err()
}
