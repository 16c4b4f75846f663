package server

import (
	"fmt"
	"sync"
	"time"

	"github.com/litescript/ls-lunar/internal/lunar"
)

// resultCache memoizes computed moon reports. The engine is a pure
// function of (date, observer, config), so entries never go stale; the
// cache only needs a size bound, not a TTL.
type resultCache struct {
	mu      sync.RWMutex
	max     int
	entries map[string]lunar.Info
}

func newResultCache(max int) *resultCache {
	if max <= 0 {
		max = 512
	}
	return &resultCache{
		max:     max,
		entries: make(map[string]lunar.Info),
	}
}

// Get returns a cached report for the key.
func (c *resultCache) Get(key string) (lunar.Info, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	info, ok := c.entries[key]
	return info, ok
}

// Put stores a report. When the cache is full it is dropped wholesale;
// recomputation is cheap and this keeps the bookkeeping trivial.
func (c *resultCache) Put(key string, info lunar.Info) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.entries) >= c.max {
		c.entries = make(map[string]lunar.Info)
	}
	c.entries[key] = info
}

// Len reports the number of cached entries.
func (c *resultCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// cacheKey folds the computation inputs into a stable map key. Four
// decimals of coordinate (~11 m) exceed the engine's own resolution.
func cacheKey(date time.Time, obs lunar.Observer) string {
	return fmt.Sprintf("%s|%.4f|%.4f", date.Format("2006-01-02"), obs.LatDeg, obs.LonDeg)
}
