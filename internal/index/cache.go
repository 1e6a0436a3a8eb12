package index

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// DefaultTTL is the maximum age before a cached index is considered stale.
const DefaultTTL = 24 * time.Hour

// Cache persists the Index to a single JSON file and answers freshness
// questions against a fixed TTL. It is the only piece of state the query
// path touches; a corrupt or missing file degrades to "must rebuild",
// never to an error.
type Cache struct {
	path string
	ttl  time.Duration
}

// NewCache returns a Cache backed by path. A non-positive ttl falls back
// to DefaultTTL.
func NewCache(path string, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{path: path, ttl: ttl}
}

// Path returns the cache file location.
func (c *Cache) Path() string { return c.path }

// Load reads and parses the cached index. Any read or parse failure, and
// any unrecognized schema version, is reported as an error; callers treat
// that as "absent" and rebuild.
func (c *Cache) Load() (*Index, error) {
	b, err := os.ReadFile(c.path)
	if err != nil {
		return nil, fmt.Errorf("cannot read index cache %s: %w", c.path, err)
	}
	var idx Index
	if err := json.Unmarshal(b, &idx); err != nil {
		return nil, fmt.Errorf("invalid index cache %s: %w", c.path, err)
	}
	if idx.Version != SchemaVersion {
		return nil, fmt.Errorf("unsupported index schema version %q in %s (want %s)", idx.Version, c.path, SchemaVersion)
	}
	return &idx, nil
}

// IsFresh reports whether the cached index exists, parses, carries the
// current schema version, and is strictly younger than the TTL. It fails
// closed: any doubt means stale.
func (c *Cache) IsFresh() bool {
	idx, err := c.Load()
	if err != nil {
		return false
	}
	if idx.UpdatedAt.IsZero() {
		return false
	}
	return time.Since(idx.UpdatedAt) < c.ttl
}

// Save overwrites the cache file, creating its directory if needed.
// This is a full replace; a failure here is the one error the build path
// surfaces to the caller.
func (c *Cache) Save(idx *Index) error {
	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return fmt.Errorf("cannot create cache dir: %w", err)
	}
	b, err := json.MarshalIndent(idx, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot marshal index: %w", err)
	}
	if err := os.WriteFile(c.path, b, 0o644); err != nil {
		return fmt.Errorf("cannot write index cache %s: %w", c.path, err)
	}
	return nil
}
