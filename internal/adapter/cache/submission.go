// Package cache holds in-process caches backed by ristretto.
package cache

import (
	"fmt"
	"time"

	"github.com/dgraph-io/ristretto"

	"github.com/vadimbarashkov/utmka/internal/entity"
)

// SubmissionCache remembers the link generated for an idempotency key for a limited time.
type SubmissionCache struct {
	cache *ristretto.Cache
	ttl   time.Duration
}

// NewSubmissionCache creates a cache holding at most maxItems keys, each for ttl.
func NewSubmissionCache(maxItems int64, ttl time.Duration) (*SubmissionCache, error) {
	const op = "cache.NewSubmissionCache"

	maxItems = max(1, maxItems)

	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters:        maxItems * 10,
		MaxCost:            maxItems,
		BufferItems:        64,
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: failed to create cache: %w", op, err)
	}

	return &SubmissionCache{cache: cache, ttl: ttl}, nil
}

func (c *SubmissionCache) Get(key string) (*entity.HistoryItem, bool) {
	v, found := c.cache.Get(key)
	if !found {
		return nil, false
	}

	item, ok := v.(entity.HistoryItem)
	if !ok {
		return nil, false
	}

	return &item, true
}

// Set stores a copy of item. It blocks until the write is visible to Get.
func (c *SubmissionCache) Set(key string, item *entity.HistoryItem) {
	if item == nil {
		return
	}

	c.cache.SetWithTTL(key, *item, 1, c.ttl)
	c.cache.Wait()
}

func (c *SubmissionCache) Close() {
	c.cache.Close()
}
