package cache

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLRUBasicOperations(t *testing.T) {
	lru := NewLRU(10)

	t.Run("SetAndGet", func(t *testing.T) {
		lru.Set("query1", "answer1")

		val, ok := lru.Get("query1")
		assert.True(t, ok)
		assert.Equal(t, "answer1", val)
	})

	t.Run("GetNonExistent", func(t *testing.T) {
		val, ok := lru.Get("nonexistent")
		assert.False(t, ok)
		assert.Equal(t, "", val)
	})

	t.Run("UpdateExisting", func(t *testing.T) {
		lru.Set("query2", "original")
		lru.Set("query2", "updated")

		val, ok := lru.Get("query2")
		assert.True(t, ok)
		assert.Equal(t, "updated", val)
	})
}

func TestLRUEviction(t *testing.T) {
	lru := NewLRU(3)

	lru.Set("key1", "1")
	lru.Set("key2", "2")
	lru.Set("key3", "3")
	assert.Equal(t, 3, lru.Len())

	// Access key1 to make it recently used.
	lru.Get("key1")

	// Adding a fourth entry evicts exactly key2, the least recently used.
	lru.Set("key4", "4")
	assert.Equal(t, 3, lru.Len())

	_, ok := lru.Get("key2")
	assert.False(t, ok)
	_, ok = lru.Get("key1")
	assert.True(t, ok)
	_, ok = lru.Get("key3")
	assert.True(t, ok)
	_, ok = lru.Get("key4")
	assert.True(t, ok)
}

func TestLRUNeverExceedsCapacity(t *testing.T) {
	lru := NewLRU(5)

	for i := 0; i < 50; i++ {
		lru.Set(fmt.Sprintf("key%d", i), "value")
		assert.LessOrEqual(t, lru.Len(), 5)
	}
	assert.Equal(t, 5, lru.Len())
}
