package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// Client is an advisory read cache over Redis. A nil Client, or an empty
// address, disables caching entirely; readers always fall through to the
// database on a miss or an error.
type Client struct {
	rdb *redis.Client
	ttl time.Duration
}

// New connects to Redis and verifies the connection. An empty address
// returns nil, which every method treats as cache-off.
func New(addr, password string, db int, ttl time.Duration) *Client {
	if addr == "" {
		return nil
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		logrus.WithError(err).Warn("redis unreachable, running without cache")
		return nil
	}
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &Client{rdb: rdb, ttl: ttl}
}

// GetJSON loads the value at key into dest. Returns false on miss, error
// or cache-off.
func (c *Client) GetJSON(ctx context.Context, key string, dest interface{}) bool {
	if c == nil {
		return false
	}
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false
	}
	return true
}

// SetJSON stores value under key with the configured TTL. Failures are
// logged and swallowed.
func (c *Client) SetJSON(ctx context.Context, key string, value interface{}) {
	if c == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		logrus.WithError(err).WithField("key", key).Debug("cache write failed")
	}
}

// Close releases the underlying connection.
func (c *Client) Close() error {
	if c == nil {
		return nil
	}
	return c.rdb.Close()
}
