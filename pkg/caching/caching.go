// Package caching is a file-based cache with a TTL, used to keep fetched
// source texts across runs.
package caching

import (
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Cache stores entries as files under dir, one per key, expiring after ttl.
type Cache struct {
	dir string
	ttl time.Duration
}

// NewCache creates the cache directory if needed and returns a Cache.
func NewCache(dir string, ttl time.Duration) (*Cache, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}
	return &Cache{dir: dir, ttl: ttl}, nil
}

// key hashes the source identifier into a filesystem-safe filename.
func (c *Cache) key(source string) string {
	return fmt.Sprintf("%x", sha256.Sum256([]byte(source)))
}

// Get returns the cached content for source and true on a fresh hit.
// Missing, expired or unreadable entries are all misses.
func (c *Cache) Get(source string) ([]byte, bool) {
	path := filepath.Join(c.dir, c.key(source))

	info, err := os.Stat(path)
	if err != nil {
		return nil, false
	}
	if time.Since(info.ModTime()) > c.ttl {
		return nil, false
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}
	return data, true
}

// Set stores content for source, overwriting any previous entry.
func (c *Cache) Set(source string, data []byte) error {
	path := filepath.Join(c.dir, c.key(source))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write cache entry: %w", err)
	}
	return nil
}
