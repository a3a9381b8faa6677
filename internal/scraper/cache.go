package scraper

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// seenCache remembers message IDs that were already written so a poll that
// overlaps the previous one does not duplicate records.
type seenCache struct {
	lru *expirable.LRU[string, struct{}]
}

// newSeenCache creates a cache holding up to size IDs for ttl each
func newSeenCache(size int, ttl time.Duration) *seenCache {
	return &seenCache{
		lru: expirable.NewLRU[string, struct{}](size, nil, ttl),
	}
}

// Seen reports whether id was marked and has not expired.
// Messages without an ID are never considered seen.
func (c *seenCache) Seen(id string) bool {
	if id == "" {
		return false
	}
	return c.lru.Contains(id)
}

// Mark records id as processed
func (c *seenCache) Mark(id string) {
	if id == "" {
		return
	}
	c.lru.Add(id, struct{}{})
}

// Len returns the number of live entries
func (c *seenCache) Len() int {
	return c.lru.Len()
}
