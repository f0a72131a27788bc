package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// FeedCache is a short-lived snapshot cache for the feed source
// collections. It only smooths repeated reads; the stores invalidate the
// relevant kind on every write.
type FeedCache interface {
	Get(ctx context.Context, kind string, dest interface{}) (bool, error)
	Set(ctx context.Context, kind string, value interface{}) error
	Invalidate(ctx context.Context, kind string) error
}

const feedCacheKeyPrefix = "feed:source:"

// RedisFeedCache implements FeedCache on Redis.
type RedisFeedCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisFeedCache(client *redis.Client, ttl time.Duration) FeedCache {
	return &RedisFeedCache{client: client, ttl: ttl}
}

func feedKey(kind string) string {
	return feedCacheKeyPrefix + kind
}

func (c *RedisFeedCache) Get(ctx context.Context, kind string, dest interface{}) (bool, error) {
	data, err := c.client.Get(ctx, feedKey(kind)).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read feed cache for %s: %w", kind, err)
	}
	if err := json.Unmarshal([]byte(data), dest); err != nil {
		return false, fmt.Errorf("failed to unmarshal feed cache for %s: %w", kind, err)
	}
	return true, nil
}

func (c *RedisFeedCache) Set(ctx context.Context, kind string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal feed cache for %s: %w", kind, err)
	}
	return c.client.Set(ctx, feedKey(kind), data, c.ttl).Err()
}

func (c *RedisFeedCache) Invalidate(ctx context.Context, kind string) error {
	return c.client.Del(ctx, feedKey(kind)).Err()
}
