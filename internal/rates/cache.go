package rates

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

// cacheEntry holds one fetched rate table and its creation time.
type cacheEntry struct {
	rates     map[string]decimal.Decimal
	createdAt time.Time
}

// rateCache is a read-mostly TTL cache of rate tables keyed by
// (base, sorted targets). Expired entries are never returned; they linger
// in storage until a purge pass, which runs opportunistically whenever the
// cache grows past maxEntries. Safe for concurrent use.
type rateCache struct {
	mu         sync.RWMutex
	entries    map[string]cacheEntry
	ttl        time.Duration
	maxEntries int

	now func() time.Time
}

func newRateCache(ttl time.Duration, maxEntries int) *rateCache {
	if maxEntries <= 0 {
		maxEntries = 64
	}
	return &rateCache{
		entries:    make(map[string]cacheEntry),
		ttl:        ttl,
		maxEntries: maxEntries,
		now:        time.Now,
	}
}

// cacheKey builds the canonical key for a request: the upper-cased base
// currency and the sorted, upper-cased target list joined by commas.
func cacheKey(base string, targets []string) string {
	ts := make([]string, len(targets))
	for i, t := range targets {
		ts[i] = strings.ToUpper(strings.TrimSpace(t))
	}
	sort.Strings(ts)
	return strings.ToUpper(strings.TrimSpace(base)) + ":" + strings.Join(ts, ",")
}

// get returns the cached table for key if present and fresh.
func (c *rateCache) get(key string) (map[string]decimal.Decimal, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[key]
	if !ok || c.now().Sub(e.createdAt) >= c.ttl {
		return nil, false
	}
	return e.rates, true
}

// put stores a table under key and purges expired entries once the cache
// exceeds its size threshold.
func (c *rateCache) put(key string, rates map[string]decimal.Decimal) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = cacheEntry{rates: rates, createdAt: c.now()}
	if len(c.entries) > c.maxEntries {
		c.purgeExpiredLocked()
	}
}

// purgeExpiredLocked removes entries past their TTL. Callers must hold mu.
func (c *rateCache) purgeExpiredLocked() {
	now := c.now()
	for k, e := range c.entries {
		if now.Sub(e.createdAt) >= c.ttl {
			delete(c.entries, k)
		}
	}
}

// clear drops all entries. Used on shutdown; the cache is reconstructible
// from the upstream.
func (c *rateCache) clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]cacheEntry)
}

// len reports the number of stored entries, expired or not.
func (c *rateCache) len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
