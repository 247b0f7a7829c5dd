package state

import "sync"

// Cache holds lightweight shared state for the MCP session. It records
// what the session last did; it never caches Confluence responses.
type Cache struct {
	mu      sync.RWMutex
	lastCQL string
}

// NewCache creates a Cache.
func NewCache() *Cache {
	return &Cache{}
}

// SetLastCQL stores the last executed CQL query string.
func (c *Cache) SetLastCQL(cql string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lastCQL = cql
}

// LastCQL retrieves the previous CQL query.
func (c *Cache) LastCQL() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastCQL
}
