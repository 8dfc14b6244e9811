package ingest

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/crimson-sun/steerage/internal/model"
)

// cacheKey identifies one version of a dataset file. Size is part of the
// key because mtime granularity is a full second on some filesystems and
// misses same-second rewrites.
type cacheKey struct {
	path  string
	mtime int64
	size  int64
}

// Cache memoizes loader results keyed by file identity. A rewritten file
// produces a new key, so there is no explicit invalidation; superseded
// entries age out of the LRU. Cached record slices are shared between
// callers and must be treated as read-only.
type Cache struct {
	lru *lru.Cache[cacheKey, []model.Passenger]
}

// NewCache creates a cache holding up to size datasets.
func NewCache(size int) (*Cache, error) {
	c, err := lru.New[cacheKey, []model.Passenger](size)
	if err != nil {
		return nil, fmt.Errorf("ingest cache: %w", err)
	}
	return &Cache{lru: c}, nil
}

func (c *Cache) get(key cacheKey) ([]model.Passenger, bool) {
	return c.lru.Get(key)
}

func (c *Cache) put(key cacheKey, records []model.Passenger) {
	c.lru.Add(key, records)
}

// Len reports the number of cached datasets.
func (c *Cache) Len() int {
	return c.lru.Len()
}
