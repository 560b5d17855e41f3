package schedule

import (
	"crypto/sha256"
	"fmt"
	"sync"
	"time"

	"github.com/edulify/coursecal/course"
)

// cacheEntry represents one memoized projection result.
type cacheEntry struct {
	events     []course.CalendarEvent
	expiresAt  time.Time
	accessedAt time.Time
}

// ProjectionCache memoizes projection results keyed by a digest of the
// full input: the reference instant, the horizon and every field of
// every course. Any change to the input produces a different key, so a
// hit is always an exact replay of an earlier call.
type ProjectionCache struct {
	entries     map[string]*cacheEntry
	mutex       sync.RWMutex
	ttl         time.Duration
	maxEntries  int
	stopCleanup chan struct{}
}

// NewProjectionCache creates a projection cache with the given
// configuration and starts its background sweeper.
func NewProjectionCache(config CacheConfig) *ProjectionCache {
	if config.TTL <= 0 {
		config.TTL = DefaultCacheConfig.TTL
	}
	if config.MaxEntries <= 0 {
		config.MaxEntries = DefaultCacheConfig.MaxEntries
	}
	if config.CleanupInterval <= 0 {
		config.CleanupInterval = DefaultCacheConfig.CleanupInterval
	}

	cache := &ProjectionCache{
		entries:     make(map[string]*cacheEntry),
		ttl:         config.TTL,
		maxEntries:  config.MaxEntries,
		stopCleanup: make(chan struct{}),
	}

	go cache.cleanupLoop(config.CleanupInterval)

	return cache
}

// generateCacheKey hashes every input that influences projection output.
func generateCacheKey(now time.Time, horizonWeeks int, courses []course.Course) string {
	hasher := sha256.New()

	fmt.Fprintf(hasher, "%s|%d", now.UTC().Format(time.RFC3339Nano), horizonWeeks)

	for _, c := range courses {
		fmt.Fprintf(hasher, "|%s|%s|%s", c.ID, c.Category, c.Status)
		if c.StartUnix != nil {
			fmt.Fprintf(hasher, "|su:%d", *c.StartUnix)
		}
		if c.EndUnix != nil {
			fmt.Fprintf(hasher, "|eu:%d", *c.EndUnix)
		}
		fmt.Fprintf(hasher, "|%s|%s|%s", c.StartDate, c.EndDate, c.Title)
		for _, s := range c.Sessions {
			fmt.Fprintf(hasher, "|%s %s-%s", s.Day, s.Start, s.End)
		}
	}

	return fmt.Sprintf("%x", hasher.Sum(nil))
}

// Get retrieves a cached projection if it exists and hasn't expired.
func (c *ProjectionCache) Get(now time.Time, horizonWeeks int, courses []course.Course) ([]course.CalendarEvent, bool) {
	key := generateCacheKey(now, horizonWeeks, courses)

	c.mutex.RLock()
	entry, exists := c.entries[key]
	c.mutex.RUnlock()

	if !exists {
		return nil, false
	}

	wall := time.Now()
	if wall.After(entry.expiresAt) {
		c.mutex.Lock()
		delete(c.entries, key)
		c.mutex.Unlock()
		return nil, false
	}

	c.mutex.Lock()
	entry.accessedAt = wall
	c.mutex.Unlock()

	return entry.events, true
}

// Set stores a projection result in the cache.
func (c *ProjectionCache) Set(now time.Time, horizonWeeks int, courses []course.Course, events []course.CalendarEvent) {
	key := generateCacheKey(now, horizonWeeks, courses)
	wall := time.Now()

	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.entries[key] = &cacheEntry{
		events:     events,
		expiresAt:  wall.Add(c.ttl),
		accessedAt: wall,
	}

	if len(c.entries) > c.maxEntries {
		c.cleanup()
	}
}

// cleanup removes expired entries, then the least recently accessed
// entries while still over the limit. Caller must hold the write lock.
func (c *ProjectionCache) cleanup() {
	wall := time.Now()

	for key, entry := range c.entries {
		if wall.After(entry.expiresAt) {
			delete(c.entries, key)
		}
	}

	for len(c.entries) > c.maxEntries {
		var oldestKey string
		var oldest time.Time
		for key, entry := range c.entries {
			if oldestKey == "" || entry.accessedAt.Before(oldest) {
				oldestKey = key
				oldest = entry.accessedAt
			}
		}
		delete(c.entries, oldestKey)
	}
}

func (c *ProjectionCache) cleanupLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.mutex.Lock()
			c.cleanup()
			c.mutex.Unlock()
		case <-c.stopCleanup:
			return
		}
	}
}

// Close stops the background sweeper and clears the cache.
func (c *ProjectionCache) Close() {
	close(c.stopCleanup)
	c.mutex.Lock()
	c.entries = make(map[string]*cacheEntry)
	c.mutex.Unlock()
}

// Stats returns cache statistics.
func (c *ProjectionCache) Stats() CacheStats {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	stats := CacheStats{TotalEntries: len(c.entries)}
	wall := time.Now()
	for _, entry := range c.entries {
		if wall.After(entry.expiresAt) {
			stats.ExpiredEntries++
		}
	}
	stats.ActiveEntries = stats.TotalEntries - stats.ExpiredEntries
	return stats
}

// CacheStats provides information about cache occupancy.
type CacheStats struct {
	TotalEntries   int
	ExpiredEntries int
	ActiveEntries  int
}
