package schedule

import "time"

// ProjectorConfig holds configuration options for the schedule projector.
type ProjectorConfig struct {
	// HorizonWeeks bounds the forward expansion, counted from the start
	// of the current week.
	HorizonWeeks int

	// Cache configuration
	CacheEnabled bool
	CacheConfig  CacheConfig
}

// DefaultProjectorConfig provides sensible defaults for interactive use.
var DefaultProjectorConfig = ProjectorConfig{
	HorizonWeeks: 12,
	CacheEnabled: false,
}

// CachedProjectorConfig memoizes projection results, for dashboards that
// re-render the same course set many times between data refreshes.
var CachedProjectorConfig = ProjectorConfig{
	HorizonWeeks: 12,
	CacheEnabled: true,
	CacheConfig:  DefaultCacheConfig,
}

// ShortHorizonConfig limits expansion to the next month, for compact
// agenda views.
var ShortHorizonConfig = ProjectorConfig{
	HorizonWeeks: 4,
	CacheEnabled: false,
}

// CacheConfig holds configuration for the projection cache.
type CacheConfig struct {
	TTL             time.Duration // How long entries stay valid
	MaxEntries      int           // Maximum number of entries before cleanup
	CleanupInterval time.Duration // How often to run cleanup
}

// DefaultCacheConfig provides sensible defaults for projection caching.
var DefaultCacheConfig = CacheConfig{
	TTL:             15 * time.Minute,
	MaxEntries:      256,
	CleanupInterval: 5 * time.Minute,
}
