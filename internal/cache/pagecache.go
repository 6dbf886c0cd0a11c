// Package cache holds the feed page cache. Entries are whole FeedPage
// snapshots keyed by selector and page number, kept for a short TTL.
// Writes to the post set do not invalidate entries; a page may stay
// stale until its TTL runs out or a caller invalidates explicitly.
package cache

import (
	"context"
	"time"

	"github.com/oksasatya/go-blogfeed/internal/domain/entity"
)

// PageCache is the contract the feed service reads through.
type PageCache interface {
	Get(ctx context.Context, key string) (entity.FeedPage, bool, error)
	Set(ctx context.Context, key string, page entity.FeedPage, ttl time.Duration) error
	Invalidate(ctx context.Context, key string) error
	InvalidateAll(ctx context.Context) error
}

// KeyPrefix namespaces every feed page entry in Redis.
const KeyPrefix = "feed:"
