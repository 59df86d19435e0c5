// Package plobcache persists track metadata fetched from the player.
package plobcache

import (
	"sync"
	"time"

	"github.com/metafates/gache"
	"github.com/remuco-cli/remuco/filesystem"
	"github.com/remuco-cli/remuco/remote"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

type entry struct {
	Plob     *remote.Plob `json:"plob"`
	StoredAt time.Time    `json:"stored_at"`
}

type cacheData struct {
	Plobs map[string]*entry `json:"plobs"`
}

// Cache maps plob ids to their metadata. Each entry expires on its own,
// lifetime after it was stored.
type Cache struct {
	internal *gache.Cache[*cacheData]
	lifetime time.Duration
	now      func() time.Time
	mu       sync.RWMutex
}

// New opens the cache file at path. A zero lifetime never expires.
func New(path string, lifetime time.Duration) *Cache {
	return &Cache{
		internal: gache.New[*cacheData](&gache.Options{
			Path:       path,
			FileSystem: &filesystem.GacheFs{},
		}),
		lifetime: lifetime,
		now:      time.Now,
	}
}

// load returns the stored data or nil when the cache is empty or unreadable.
func (c *Cache) load() *cacheData {
	data, _, err := c.internal.Get()
	if err != nil || data == nil || data.Plobs == nil {
		return nil
	}
	return data
}

func (c *Cache) expired(e *entry) bool {
	return c.lifetime > 0 && c.now().Sub(e.StoredAt) > c.lifetime
}

func (c *Cache) Get(id string) mo.Option[*remote.Plob] {
	c.mu.RLock()
	defer c.mu.RUnlock()

	data := c.load()
	if data == nil {
		return mo.None[*remote.Plob]()
	}

	e, ok := data.Plobs[id]
	if !ok || e == nil || e.Plob == nil || c.expired(e) {
		return mo.None[*remote.Plob]()
	}
	return mo.Some(e.Plob)
}

// Set stores plob and drops every expired entry.
func (c *Cache) Set(plob *remote.Plob) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	data := c.load()
	if data == nil {
		data = &cacheData{}
	}

	data.Plobs = lo.OmitBy(data.Plobs, func(_ string, e *entry) bool {
		return e == nil || c.expired(e)
	})
	data.Plobs[plob.ID] = &entry{Plob: plob, StoredAt: c.now()}
	return c.internal.Set(data)
}

// Delete drops id so the next lookup goes to the player again.
func (c *Cache) Delete(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	data := c.load()
	if data == nil {
		return nil
	}
	if _, ok := data.Plobs[id]; !ok {
		return nil
	}

	delete(data.Plobs, id)
	return c.internal.Set(data)
}
