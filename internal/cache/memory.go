package cache

import (
	"context"
	"sync"
	"time"

	"github.com/oksasatya/go-blogfeed/internal/domain/entity"
)

type memoryEntry struct {
	page      entity.FeedPage
	expiresAt time.Time
}

// Memory is a process-local PageCache used when Redis is not
// configured, and by tests. Expired entries are dropped lazily on Get.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	now     func() time.Time
}

func NewMemory() *Memory {
	return &Memory{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

func (c *Memory) Get(_ context.Context, key string) (entity.FeedPage, bool, error) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok {
		return entity.FeedPage{}, false, nil
	}
	if c.now().After(e.expiresAt) {
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()
		return entity.FeedPage{}, false, nil
	}
	return e.page, true, nil
}

func (c *Memory) Set(_ context.Context, key string, page entity.FeedPage, ttl time.Duration) error {
	c.mu.Lock()
	c.entries[key] = memoryEntry{page: page, expiresAt: c.now().Add(ttl)}
	c.mu.Unlock()
	return nil
}

func (c *Memory) Invalidate(_ context.Context, key string) error {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
	return nil
}

func (c *Memory) InvalidateAll(_ context.Context) error {
	c.mu.Lock()
	c.entries = make(map[string]memoryEntry)
	c.mu.Unlock()
	return nil
}

var _ PageCache = (*Memory)(nil)
