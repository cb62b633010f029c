package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
)

const (
	lockSuffix = ":lock"
	lockExpiry = 30 * time.Second
)

var ErrNilClient = errors.New("redis client is required")

// RedisMazeCache keeps maze layouts in Redis with a TTL. Locks are redsync
// mutexes so several service instances can share one cache.
type RedisMazeCache struct {
	client *redis.Client
	locker *redsync.Redsync
	ttl    time.Duration
}

// NewRedisMazeCache creates a cache whose entries live for ttlSeconds.
func NewRedisMazeCache(client *redis.Client, ttlSeconds int) (i.MazeCache, error) {
	if client == nil {
		return nil, ErrNilClient
	}
	cache := &RedisMazeCache{
		client: client,
		ttl:    time.Duration(ttlSeconds) * time.Second,
	}
	pool := goredis.NewPool(client)
	cache.locker = redsync.New(pool)
	return cache, nil
}

// Get returns the layout stored under key.
func (c *RedisMazeCache) Get(ctx context.Context, key string) (*dmn.MazeLayout, bool, error) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var layout dmn.MazeLayout
	if err := json.Unmarshal(raw, &layout); err != nil {
		return nil, false, fmt.Errorf("decoding cached layout %s: %w", key, err)
	}
	return &layout, true, nil
}

// Set stores layout under key, replacing any previous value.
func (c *RedisMazeCache) Set(ctx context.Context, key string, layout *dmn.MazeLayout) error {
	raw, err := json.Marshal(layout)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, raw, c.ttl).Err()
}

// Lock acquires the mutex guarding key.
func (c *RedisMazeCache) Lock(ctx context.Context, key string) (func(), error) {
	mutex := c.locker.NewMutex(key+lockSuffix, redsync.WithExpiry(lockExpiry))
	if err := mutex.LockContext(ctx); err != nil {
		return nil, err
	}
	return func() {
		_, _ = mutex.Unlock()
	}, nil
}
