package dictionary

import (
	"math"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// Cache keeps recently loaded dictionaries in memory so repeated queries
// against the same word list skip the reload. File sources are reloaded
// when their modification time changes.
type Cache struct {
	entries    map[cacheKey]*cacheEntry
	maxEntries int
	clock      int64
	hits       int
	misses     int
	mu         sync.Mutex
}

type cacheKey struct {
	name   string
	format Format
}

type cacheEntry struct {
	dict     *Dictionary
	modTime  time.Time
	lastUsed int64
}

type modTimer interface {
	ModTime() (time.Time, error)
}

// NewCache creates a cache holding at most maxEntries dictionaries.
func NewCache(maxEntries int) *Cache {
	if maxEntries < 1 {
		maxEntries = 1
	}
	return &Cache{
		entries:    make(map[cacheKey]*cacheEntry, maxEntries),
		maxEntries: maxEntries,
	}
}

// Load returns the cached dictionary for src, loading it on a miss.
func (c *Cache) Load(src Source, opts Options) (*Dictionary, error) {
	key := cacheKey{name: src.Name(), format: opts.Format}

	var modTime time.Time
	if mt, ok := src.(modTimer); ok {
		t, err := mt.ModTime()
		if err != nil {
			c.Invalidate(src.Name())
			return nil, &SourceUnavailableError{Source: src.Name(), Err: err}
		}
		modTime = t
	}

	c.mu.Lock()
	if e, ok := c.entries[key]; ok && e.modTime.Equal(modTime) {
		c.clock++
		e.lastUsed = c.clock
		c.hits++
		c.mu.Unlock()
		return e.dict, nil
	}
	c.misses++
	c.mu.Unlock()

	dict, err := Load(src, opts)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.entries[key]; !ok && len(c.entries) >= c.maxEntries {
		c.evictLRU()
	}
	c.clock++
	c.entries[key] = &cacheEntry{dict: dict, modTime: modTime, lastUsed: c.clock}
	return dict, nil
}

// Invalidate drops every cached dictionary loaded from the named source.
func (c *Cache) Invalidate(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key := range c.entries {
		if key.name == name {
			delete(c.entries, key)
		}
	}
}

// Stats returns counters about cache usage.
func (c *Cache) Stats() map[string]int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return map[string]int{
		"entries":    len(c.entries),
		"maxEntries": c.maxEntries,
		"hits":       c.hits,
		"misses":     c.misses,
	}
}

func (c *Cache) evictLRU() {
	var oldest cacheKey
	var oldestTime int64 = math.MaxInt64
	found := false

	for key, e := range c.entries {
		if e.lastUsed < oldestTime {
			oldestTime = e.lastUsed
			oldest = key
			found = true
		}
	}

	if found {
		delete(c.entries, oldest)
		log.Debugf("Evicted dictionary '%s' from cache", oldest.name)
	}
}
