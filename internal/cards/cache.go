package cards

import (
	"strings"
	"sync"
	"time"

	"github.com/romanticformat/companion/internal/format"
)

// cacheEntry is one memoized pipeline result. A nil card records a
// failed resolution, so repeated lookups of a bad name stay off the
// network for the rest of the session.
type cacheEntry struct {
	card      *ResolvedCard
	printSets format.CodeSet
	timestamp time.Time
}

// CacheStats tracks cache performance.
type CacheStats struct {
	Hits      int64
	Misses    int64
	Evictions int64
	Size      int
}

// Cache memoizes the resolve+collect pipeline keyed by the normalized
// card name plus the format fingerprint. Keys carry the fingerprint
// because fast-path results are only meaningful for the allow list they
// were collected under; a different allow list must not silently reuse
// them.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]*cacheEntry
	stats   CacheStats
	enabled bool
	maxSize int
}

// NewCache creates a result cache.
// maxSize: maximum number of entries (0 = unlimited)
// enabled: a disabled cache misses on every get and drops every set
func NewCache(maxSize int, enabled bool) *Cache {
	return &Cache{
		entries: make(map[string]*cacheEntry),
		enabled: enabled,
		maxSize: maxSize,
	}
}

// cacheKey builds the cache key for a card name under a format.
func cacheKey(name string, f *format.Format) string {
	return f.Fingerprint() + "|" + strings.ToLower(strings.TrimSpace(name))
}

// get retrieves a cached entry.
func (c *Cache) get(key string) (*cacheEntry, bool) {
	if !c.enabled {
		return nil, false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		c.stats.Misses++
		return nil, false
	}

	c.stats.Hits++
	return entry, true
}

// set stores a pipeline result, evicting the oldest entry when full.
func (c *Cache) set(key string, card *ResolvedCard, printSets format.CodeSet) {
	if !c.enabled {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.maxSize > 0 && len(c.entries) >= c.maxSize {
		if _, exists := c.entries[key]; !exists {
			c.evictOldest()
		}
	}

	c.entries[key] = &cacheEntry{
		card:      card,
		printSets: printSets,
		timestamp: time.Now(),
	}
}

// evictOldest removes the entry with the oldest timestamp.
// Caller must hold the write lock.
func (c *Cache) evictOldest() {
	var oldestKey string
	var oldestTime time.Time

	for key, entry := range c.entries {
		if oldestKey == "" || entry.timestamp.Before(oldestTime) {
			oldestKey = key
			oldestTime = entry.timestamp
		}
	}

	if oldestKey != "" {
		delete(c.entries, oldestKey)
		c.stats.Evictions++
	}
}

// InvalidateAll drops every cached entry.
func (c *Cache) InvalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]*cacheEntry)
}

// Stats returns a snapshot of cache performance counters.
func (c *Cache) Stats() CacheStats {
	c.mu.RLock()
	defer c.mu.RUnlock()

	stats := c.stats
	stats.Size = len(c.entries)
	return stats
}
