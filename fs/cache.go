package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/pagemirror"
)

// Ensure Cache implements pagemirror.AssetCache at compile time.
var _ pagemirror.AssetCache = (*Cache)(nil)

// Cache stores one private copy per asset URL in a directory, named by the
// xxhash of the URL. Workspace writes never touch these files.
type Cache struct {
	dir string
}

// NewCache creates a Cache in dir. The directory is created on first Put.
func NewCache(dir string) *Cache {
	return &Cache{dir: dir}
}

// Put writes data as the cached copy of url, replacing an earlier copy of
// the same URL.
func (c *Cache) Put(ctx context.Context, url string, data []byte) (string, error) {
	if err := os.MkdirAll(c.dir, 0755); err != nil {
		return "", fmt.Errorf("create cache: %w", err)
	}
	path := filepath.Join(c.dir, fmt.Sprintf("%016x", xxhash.Sum64String(url)))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("write cache: %w", err)
	}
	return path, nil
}
