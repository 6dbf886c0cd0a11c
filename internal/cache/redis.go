package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/oksasatya/go-blogfeed/internal/domain/entity"
)

// Redis stores feed pages as JSON values under KeyPrefix with a
// per-entry TTL. Last write wins; entries are idempotent snapshots.
type Redis struct {
	rdb *redis.Client
}

func NewRedis(rdb *redis.Client) *Redis {
	return &Redis{rdb: rdb}
}

func (c *Redis) Get(ctx context.Context, key string) (entity.FeedPage, bool, error) {
	var page entity.FeedPage
	b, err := c.rdb.Get(ctx, KeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return page, false, nil
	}
	if err != nil {
		return page, false, err
	}
	if err := json.Unmarshal(b, &page); err != nil {
		return page, false, err
	}
	return page, true, nil
}

func (c *Redis) Set(ctx context.Context, key string, page entity.FeedPage, ttl time.Duration) error {
	b, err := json.Marshal(page)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, KeyPrefix+key, b, ttl).Err()
}

func (c *Redis) Invalidate(ctx context.Context, key string) error {
	return c.rdb.Del(ctx, KeyPrefix+key).Err()
}

// InvalidateAll walks the key prefix with SCAN and deletes what it
// finds. Entries written concurrently with the scan may survive; the
// TTL bounds how long.
func (c *Redis) InvalidateAll(ctx context.Context) error {
	iter := c.rdb.Scan(ctx, 0, KeyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		if err := c.rdb.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}

var _ PageCache = (*Redis)(nil)
