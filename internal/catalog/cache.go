package catalog

import (
	"fmt"
	"sync"
	"time"

	"main/internal/icon"
)

// cacheEntry: tracks a scaled definition and its last use time
type cacheEntry struct {
	scaled   *icon.Icon
	lastUsed time.Time
}

// ScaleCache: caches icon definitions scaled to a display size, keyed
// by identifier and dimensions
type ScaleCache struct {
	entries map[string]*cacheEntry
	mu      sync.RWMutex
}

// NewScaleCache: creates an empty scale cache
func NewScaleCache() *ScaleCache {
	return &ScaleCache{
		entries: make(map[string]*cacheEntry),
	}
}

func cacheKey(id string, width, height float64) string {
	return fmt.Sprintf("%s_%gx%g", id, width, height)
}

// Scaled: returns the icon scaled to width x height, computing and
// caching the result on first use
func (sc *ScaleCache) Scaled(ic *icon.Icon, width, height float64) *icon.Icon {
	key := cacheKey(ic.ID, width, height)

	sc.mu.RLock()
	entry, exists := sc.entries[key]
	sc.mu.RUnlock()

	if exists {
		sc.mu.Lock()
		entry.lastUsed = time.Now()
		sc.mu.Unlock()
		return entry.scaled
	}

	scaled := icon.ScaleTo(ic, width, height)

	sc.mu.Lock()
	defer sc.mu.Unlock()

	sc.entries[key] = &cacheEntry{
		scaled:   scaled,
		lastUsed: time.Now(),
	}
	return scaled
}

// Len: returns the number of cached entries
func (sc *ScaleCache) Len() int {
	sc.mu.RLock()
	defer sc.mu.RUnlock()

	return len(sc.entries)
}

// Cleanup: removes entries that haven't been used within the threshold
func (sc *ScaleCache) Cleanup(threshold time.Duration) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	now := time.Now()
	for key, entry := range sc.entries {
		if now.Sub(entry.lastUsed) > threshold {
			delete(sc.entries, key)
		}
	}
}
