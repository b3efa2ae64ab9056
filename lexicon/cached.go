package lexicon

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

const (
	DefaultCacheSize = 10000
	DefaultCacheTTL  = 5 * time.Minute
)

// Cached keeps the answers of another lookup in memory for a limited time.
// Failed lookups are not cached.
type Cached struct {
	inner Lookup
	cache *expirable.LRU[string, []Entry]
}

func NewCached(inner Lookup, size int, ttl time.Duration) *Cached {
	if size <= 0 {
		size = DefaultCacheSize
	}
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &Cached{
		inner: inner,
		cache: expirable.NewLRU[string, []Entry](size, nil, ttl),
	}
}

func (c *Cached) FetchEntries(ctx context.Context, word string) ([]Entry, error) {
	if entries, ok := c.cache.Get(word); ok {
		return entries, nil
	}
	entries, err := c.inner.FetchEntries(ctx, word)
	if err != nil {
		return nil, err
	}
	c.cache.Add(word, entries)
	return entries, nil
}

func (c *Cached) Exists(ctx context.Context, word string) (bool, error) {
	entries, err := c.FetchEntries(ctx, word)
	if err != nil {
		return false, err
	}
	return len(entries) > 0, nil
}

// Len is the number of cached words.
func (c *Cached) Len() int { return c.cache.Len() }
