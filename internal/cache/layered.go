package cache

import "time"

// LayeredCache fronts a disk cache with an in-process memory layer so
// repeated similarity checks within one run never touch the filesystem
type LayeredCache struct {
	memory Cache
	disk   Cache
}

// NewLayeredCache creates a layered cache rooted at dir
func NewLayeredCache(dir string) *LayeredCache {
	return &LayeredCache{
		memory: NewMemoryCache(DefaultMemoryTTL),
		disk:   NewDiskCache(dir, DefaultDiskTTL),
	}
}

// Get checks the memory layer first, then falls back to disk and
// promotes the hit
func (c *LayeredCache) Get(key string) ([]byte, bool) {
	if val, found := c.memory.Get(key); found {
		return val, true
	}

	if val, found := c.disk.Get(key); found {
		c.memory.Set(key, val, 0)
		return val, true
	}

	return nil, false
}

// Set stores a value in both layers
func (c *LayeredCache) Set(key string, value []byte, ttl time.Duration) error {
	if err := c.memory.Set(key, value, ttl); err != nil {
		return err
	}
	return c.disk.Set(key, value, ttl)
}

// Delete removes a value from both layers
func (c *LayeredCache) Delete(key string) error {
	c.memory.Delete(key)
	c.disk.Delete(key)
	return nil
}

// Clear removes all values from both layers
func (c *LayeredCache) Clear() error {
	c.memory.Clear()
	c.disk.Clear()
	return nil
}
