package cache

import (
	"errors"
	"sync"
	"time"
)

var ErrCacheMiss = errors.New("cache miss")

// Entry is a cached value with its bookkeeping.
type Entry[V any] struct {
	Key         string
	Value       V
	CreatedAt   time.Time
	ExpiresAt   time.Time
	AccessedAt  time.Time
	AccessCount int
}

// Stats represents cache statistics
type Stats struct {
	TotalEntries   int           `json:"total_entries"`
	HitCount       int64         `json:"hit_count"`
	MissCount      int64         `json:"miss_count"`
	HitRate        float64       `json:"hit_rate"`
	OldestEntry    time.Time     `json:"oldest_entry"`
	AverageAge     time.Duration `json:"average_age"`
	ExpiredEntries int           `json:"expired_entries"`
}

// MemoryCache is an in-memory store with sliding expiration: every hit
// pushes the expiry out by the cache duration. Expired entries are dropped
// on access or by CleanupExpired, and handed to the eviction callback.
type MemoryCache[V any] struct {
	entries   map[string]*Entry[V]
	mutex     sync.RWMutex
	duration  time.Duration
	hitCount  int64
	missCount int64
	onEvict   func(key string, value V)
	now       func() time.Time
}

// NewMemoryCache creates a new in-memory cache. onEvict may be nil.
func NewMemoryCache[V any](duration time.Duration, onEvict func(key string, value V)) *MemoryCache[V] {
	return &MemoryCache[V]{
		entries:  make(map[string]*Entry[V]),
		duration: duration,
		onEvict:  onEvict,
		now:      time.Now,
	}
}

// Get retrieves a value and extends its lifetime.
func (c *MemoryCache[V]) Get(key string) (V, error) {
	c.mutex.Lock()

	var zero V
	entry, exists := c.entries[key]
	if !exists {
		c.missCount++
		c.mutex.Unlock()
		return zero, ErrCacheMiss
	}

	now := c.now()
	if now.After(entry.ExpiresAt) {
		delete(c.entries, key)
		c.missCount++
		c.mutex.Unlock()
		c.evict(entry)
		return zero, ErrCacheMiss
	}

	entry.AccessedAt = now
	entry.ExpiresAt = now.Add(c.duration)
	entry.AccessCount++
	c.hitCount++
	value := entry.Value
	c.mutex.Unlock()

	return value, nil
}

// Set stores a value, evicting any previous value under the same key.
func (c *MemoryCache[V]) Set(key string, value V) {
	now := c.now()

	c.mutex.Lock()
	previous, replaced := c.entries[key]
	c.entries[key] = &Entry[V]{
		Key:        key,
		Value:      value,
		CreatedAt:  now,
		ExpiresAt:  now.Add(c.duration),
		AccessedAt: now,
	}
	c.mutex.Unlock()

	if replaced {
		c.evict(previous)
	}
}

// Clear removes all entries from cache
func (c *MemoryCache[V]) Clear() {
	c.mutex.Lock()
	old := c.entries
	c.entries = make(map[string]*Entry[V])
	c.hitCount = 0
	c.missCount = 0
	c.mutex.Unlock()

	for _, entry := range old {
		c.evict(entry)
	}
}

// CleanupExpired removes expired entries and returns how many were dropped.
func (c *MemoryCache[V]) CleanupExpired() int {
	c.mutex.Lock()
	now := c.now()
	var expired []*Entry[V]
	for key, entry := range c.entries {
		if now.After(entry.ExpiresAt) {
			expired = append(expired, entry)
			delete(c.entries, key)
		}
	}
	c.mutex.Unlock()

	for _, entry := range expired {
		c.evict(entry)
	}
	return len(expired)
}

// GetStats returns cache statistics
func (c *MemoryCache[V]) GetStats() Stats {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	stats := Stats{
		TotalEntries: len(c.entries),
		HitCount:     c.hitCount,
		MissCount:    c.missCount,
	}

	if c.hitCount+c.missCount > 0 {
		stats.HitRate = float64(c.hitCount) / float64(c.hitCount+c.missCount)
	}

	var totalAge time.Duration
	now := c.now()
	for _, entry := range c.entries {
		if stats.OldestEntry.IsZero() || entry.CreatedAt.Before(stats.OldestEntry) {
			stats.OldestEntry = entry.CreatedAt
		}
		totalAge += now.Sub(entry.CreatedAt)
		if now.After(entry.ExpiresAt) {
			stats.ExpiredEntries++
		}
	}

	if len(c.entries) > 0 {
		stats.AverageAge = totalAge / time.Duration(len(c.entries))
	}

	return stats
}

// evict runs the callback outside the lock so it may take its own locks.
func (c *MemoryCache[V]) evict(entry *Entry[V]) {
	if c.onEvict != nil {
		c.onEvict(entry.Key, entry.Value)
	}
}
