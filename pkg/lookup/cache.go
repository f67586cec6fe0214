package lookup

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"
)

// DefaultCacheFile is the conventional context cache next to the app.
const DefaultCacheFile = "cdk.context.json"

// Cache holds resolved lookup values keyed by context key.
type Cache struct {
	mu     sync.RWMutex
	path   string
	values map[string]any
}

// LoadCache reads path. A missing file yields an empty cache bound to path.
func LoadCache(path string) (*Cache, error) {
	c := &Cache{path: path, values: map[string]any{}}
	data, err := os.ReadFile(path) //nolint:gosec // Caller-selected cache file.
	if errors.Is(err, fs.ErrNotExist) {
		return c, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read context cache: %w", err)
	}
	if len(data) == 0 {
		return c, nil
	}
	if err := json.Unmarshal(data, &c.values); err != nil {
		return nil, fmt.Errorf("parse context cache %s: %w", path, err)
	}
	return c, nil
}

func (c *Cache) Path() string {
	return c.path
}

func (c *Cache) Get(key string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.values[key]
	return v, ok
}

func (c *Cache) Set(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values[key] = value
}

// Keys returns the cached keys in sorted order.
func (c *Cache) Keys() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	keys := make([]string, 0, len(c.values))
	for k := range c.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Context returns a copy suitable for cfn.AppProps.Context.
func (c *Cache) Context() map[string]any {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make(map[string]any, len(c.values))
	for k, v := range c.values {
		out[k] = v
	}
	return out
}

// Save writes the cache back to its path atomically.
func (c *Cache) Save() error {
	if c.path == "" {
		return errors.New("context cache has no path")
	}
	c.mu.RLock()
	data, err := json.MarshalIndent(c.values, "", "  ")
	c.mu.RUnlock()
	if err != nil {
		return fmt.Errorf("encode context cache: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(c.path)
	tmp, err := os.CreateTemp(dir, ".context-*.json")
	if err != nil {
		return fmt.Errorf("write context cache: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write context cache: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write context cache: %w", err)
	}
	if err := os.Rename(tmp.Name(), c.path); err != nil {
		return fmt.Errorf("write context cache: %w", err)
	}
	return nil
}
