// Package cache provides the bounded completion cache for the chat pipeline.
package cache

import (
	"container/list"
	"sync"
)

// LRU is a fixed-capacity cache of completion texts keyed by exact query
// text. Inserting into a full cache evicts the least recently used entry.
type LRU struct {
	capacity int
	mu       sync.Mutex

	cache map[string]*entry
	order *list.List // Doubly linked list for LRU ordering
}

type entry struct {
	key     string
	value   string
	element *list.Element
}

// NewLRU creates a new LRU cache with the given capacity.
func NewLRU(capacity int) *LRU {
	if capacity <= 0 {
		capacity = 100
	}
	return &LRU{
		capacity: capacity,
		cache:    make(map[string]*entry),
		order:    list.New(),
	}
}

// Get retrieves a value and marks it most recently used.
func (c *LRU) Get(key string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.cache[key]
	if !ok {
		return "", false
	}

	c.order.MoveToFront(e.element)
	return e.value, true
}

// Set stores a value, evicting the least recently used entry if the cache
// is at capacity.
func (c *LRU) Set(key, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.cache[key]; ok {
		e.value = value
		c.order.MoveToFront(e.element)
		return
	}

	for len(c.cache) >= c.capacity {
		c.evictOldest()
	}

	e := &entry{key: key, value: value}
	e.element = c.order.PushFront(e)
	c.cache[key] = e
}

// Len returns the number of entries in the cache.
func (c *LRU) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.cache)
}

// evictOldest removes the least recently used entry.
// Must be called with lock held.
func (c *LRU) evictOldest() {
	oldest := c.order.Back()
	if oldest == nil {
		return
	}

	e := oldest.Value.(*entry)
	c.order.Remove(e.element)
	delete(c.cache, e.key)
}
