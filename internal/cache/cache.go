package cache

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"coffeeshop/internal/domain"
)

// DefaultCapacity bounds the filter cache at ten phone numbers.
const DefaultCapacity = 10

// FilterCache maps a user's phone number to the order summaries a filter
// query computed for it. Entries leave either by LRU eviction once the
// capacity is exceeded or by explicit invalidation after a write.
// The underlying lru.Cache serializes Get/Add/Remove, so the recency list
// and the entry count stay consistent under concurrent use.
type FilterCache struct {
	lru *lru.Cache[string, []domain.OrderSummary]
}

func New(capacity int) (*FilterCache, error) {
	c, err := lru.New[string, []domain.OrderSummary](capacity)
	if err != nil {
		return nil, err
	}
	return &FilterCache{lru: c}, nil
}

// Get returns the cached summaries and bumps the key's recency.
func (c *FilterCache) Get(phone string) ([]domain.OrderSummary, bool) {
	return c.lru.Get(phone)
}

// Put stores the summaries as most-recently-used, evicting the least
// recently used entry if the cache is full.
func (c *FilterCache) Put(phone string, orders []domain.OrderSummary) {
	c.lru.Add(phone, orders)
}

// Remove invalidates the entry for phone. Removing an absent key is a no-op.
func (c *FilterCache) Remove(phone string) {
	c.lru.Remove(phone)
}

func (c *FilterCache) Len() int {
	return c.lru.Len()
}
