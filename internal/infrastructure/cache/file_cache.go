// Package cache stores generations as JSON blobs addressed by hash key.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/aish-sh/aish/internal/domain"
	"github.com/aish-sh/aish/internal/ports"
)

// FileCache is a TTL-bounded, size-bounded directory of cache entries.
type FileCache struct {
	dir        string
	mu         sync.Mutex
	maxEntries int
	ttl        time.Duration
}

// NewFileCache returns a cache rooted at dir.
func NewFileCache(dir string) *FileCache {
	return &FileCache{
		dir:        dir,
		maxEntries: domain.CacheMaxEntries,
		ttl:        domain.CacheTTL,
	}
}

// Key derives the cache key for one generation.
func Key(intent string, workingDir string, model string) string {
	sum := sha256.Sum256([]byte(intent + "\x00" + workingDir + "\x00" + model))
	return hex.EncodeToString(sum[:])
}

// Get retrieves an entry; expired entries are removed and reported missing.
func (c *FileCache) Get(key string) (domain.CacheEntry, bool, error) {
	if key == "" {
		return domain.CacheEntry{}, false, nil
	}
	path := c.pathFor(key)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.CacheEntry{}, false, nil
		}
		return domain.CacheEntry{}, false, err
	}
	var entry domain.CacheEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return domain.CacheEntry{}, false, err
	}
	if c.ttl > 0 && time.Since(entry.CreatedAt) > c.ttl {
		_ = os.Remove(path)
		return domain.CacheEntry{}, false, nil
	}
	return entry, true, nil
}

// Set stores an entry and evicts the oldest files past the size bound.
func (c *FileCache) Set(entry domain.CacheEntry) error {
	if entry.Key == "" {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := os.MkdirAll(c.dir, domain.DirectoryPermissions); err != nil {
		return err
	}
	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	if err := os.WriteFile(c.pathFor(entry.Key), data, 0o644); err != nil {
		return err
	}
	return c.evictIfNeeded()
}

// Clear removes every entry.
func (c *FileCache) Clear() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	for _, entry := range entries {
		_ = os.Remove(filepath.Join(c.dir, entry.Name()))
	}
	return nil
}

// Dir exposes the cache directory path.
func (c *FileCache) Dir() string {
	return c.dir
}

func (c *FileCache) pathFor(key string) string {
	return filepath.Join(c.dir, key+".json")
}

func (c *FileCache) evictIfNeeded() error {
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return err
	}
	if len(entries) <= c.maxEntries {
		return nil
	}

	type fileAge struct {
		name    string
		modTime time.Time
	}
	ages := make([]fileAge, 0, len(entries))
	for _, entry := range entries {
		info, err := entry.Info()
		if err != nil {
			continue
		}
		ages = append(ages, fileAge{name: entry.Name(), modTime: info.ModTime()})
	}
	sort.Slice(ages, func(i, j int) bool { return ages[i].modTime.Before(ages[j].modTime) })

	for _, age := range ages[:len(ages)-c.maxEntries] {
		_ = os.Remove(filepath.Join(c.dir, age.name))
	}
	return nil
}

var _ ports.CacheRepository = (*FileCache)(nil)
