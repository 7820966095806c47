package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/myteamhq/handball-api/internal/league"
)

// TeamsTTL is how long a scraped roster stays fresh. Rosters change a
// few times a year, so a day is generous.
const TeamsTTL = 24 * time.Hour

// TeamsKey is the cache key for a gender's roster response.
func TeamsKey(gender league.Gender) string {
	return "teams:" + string(gender)
}

// Cache wraps Redis with JSON get/set helpers. All failures are soft:
// callers treat a cache error like a miss and fall through to a live
// crawl.
type Cache struct {
	rdb *redis.Client
}

// New connects to Redis using a redis:// URL.
func New(redisURL string) (*Cache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}
	return &Cache{rdb: redis.NewClient(opts)}, nil
}

// Ping verifies the connection.
func (c *Cache) Ping(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}

// Close releases the underlying connection pool.
func (c *Cache) Close() error {
	return c.rdb.Close()
}

// GetJSON loads and unmarshals a cached value into dest. The boolean
// reports whether a usable value was found; a corrupt entry counts as a
// miss and is logged rather than surfaced.
func (c *Cache) GetJSON(ctx context.Context, key string, dest any) (bool, error) {
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		log.Warn().Str("key", key).Err(err).Msg("invalid JSON in cache")
		return false, nil
	}
	return true, nil
}

// SetJSON marshals and stores a value. A zero ttl stores without expiry.
func (c *Cache) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, key, payload, ttl).Err()
}

// Del removes a key.
func (c *Cache) Del(ctx context.Context, key string) error {
	return c.rdb.Del(ctx, key).Err()
}
