package pattern

import (
	"regexp"
	"sync"
)

// Cache holds compiled regular expressions keyed by expanded pattern text.
// The zero value is ready to use.
type Cache struct {
	entries map[string]*regexp.Regexp
	mu      sync.RWMutex
}

// NewCache creates an empty [Cache].
func NewCache() *Cache {
	return &Cache{}
}

// Compile returns the cached expression for expanded, compiling it on first use.
// Compile errors are not cached.
func (c *Cache) Compile(expanded string) (*regexp.Regexp, error) {
	c.mu.RLock()
	re, ok := c.entries[expanded]
	c.mu.RUnlock()

	if ok {
		return re, nil
	}

	re, err := regexp.Compile(expanded)
	if err != nil {
		return nil, err //nolint:wrapcheck // Wrapped by the caller.
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.entries == nil {
		c.entries = map[string]*regexp.Regexp{}
	}
	c.entries[expanded] = re

	return re, nil
}

// Pattern compiles raw through the cache.
func (c *Cache) Pattern(raw, home string) (*Pattern, error) {
	return compile(raw, home, c)
}

// Len returns the number of cached expressions.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}
