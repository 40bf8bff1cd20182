// Package assets handles model loading and caching.
package assets

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/qmuntal/gltf"
)

// Manager resolves asset paths against a list of search directories and
// caches parsed glTF documents.
type Manager struct {
	dirs  []string
	cache *Cache
	mu    sync.RWMutex
}

// NewManager creates a new asset manager.
func NewManager() *Manager {
	return &Manager{
		cache: NewCache(),
	}
}

// AddDir adds a search directory.
// Directories are searched in reverse order (last added = highest priority).
func (m *Manager) AddDir(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("adding asset dir %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("adding asset dir %s: not a directory", dir)
	}

	m.mu.Lock()
	m.dirs = append(m.dirs, dir)
	m.mu.Unlock()

	return nil
}

// Resolve returns the first existing file for path. Absolute paths and
// paths relative to the working directory are tried before search dirs.
func (m *Manager) Resolve(path string) (string, error) {
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}
	if filepath.IsAbs(path) {
		return "", fmt.Errorf("file not found: %s", path)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	for i := len(m.dirs) - 1; i >= 0; i-- {
		candidate := filepath.Join(m.dirs[i], path)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("file not found: %s", path)
}

// Document loads and caches the glTF document at path.
func (m *Manager) Document(path string) (*gltf.Document, error) {
	resolved, err := m.Resolve(path)
	if err != nil {
		return nil, err
	}

	if doc, ok := m.cache.Get(resolved); ok {
		return doc, nil
	}

	doc, err := gltf.Open(resolved)
	if err != nil {
		return nil, fmt.Errorf("opening model %s: %w", resolved, err)
	}
	m.cache.Set(resolved, doc)
	return doc, nil
}

// LoadModel loads path and converts it into a scene subtree named name.
// Each call builds fresh nodes; only the parsed document is shared.
func (m *Manager) LoadModel(path, name string) (*Model, error) {
	doc, err := m.Document(path)
	if err != nil {
		return nil, err
	}
	model, err := FromDocument(doc, name)
	if err != nil {
		return nil, fmt.Errorf("converting model %s: %w", path, err)
	}
	return model, nil
}

// Close drops cached documents.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.dirs = nil
	m.cache.Clear()
}

// Cache is a simple in-memory cache for parsed documents.
type Cache struct {
	data map[string]*gltf.Document
	mu   sync.Mutex // Get updates the counters, so reads take it too

	// Stats
	hits   int
	misses int
}

// NewCache creates a new cache.
func NewCache() *Cache {
	return &Cache{
		data: make(map[string]*gltf.Document),
	}
}

// Get retrieves an item from cache.
func (c *Cache) Get(key string) (*gltf.Document, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	doc, ok := c.data[key]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return doc, ok
}

// Set stores an item in cache.
func (c *Cache) Set(key string, doc *gltf.Document) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = doc
}

// Clear clears the cache.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = make(map[string]*gltf.Document)
	c.hits = 0
	c.misses = 0
}

// Stats returns cache statistics.
func (c *Cache) Stats() (hits, misses int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits, c.misses
}
