package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

var ErrCacheMiss = errors.New("cache miss")

// Cache is a small JSON-file mirror of the remote store, one file per key.
// It is the read-of-record whenever Postgres is unreachable.
type Cache struct {
	dir string
}

func NewCache(dir string) (*Cache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Cache{dir: dir}, nil
}

func (c *Cache) path(key string) string {
	return filepath.Join(c.dir, key+".json")
}

// Read unmarshals the cached value for key into v. A corrupt entry is
// discarded and reported as a miss rather than an error.
func (c *Cache) Read(key string, v interface{}) error {
	data, err := os.ReadFile(c.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return ErrCacheMiss
		}
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		_ = os.Remove(c.path(key))
		return ErrCacheMiss
	}
	return nil
}

func (c *Cache) Write(key string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	tmp := c.path(key) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, c.path(key))
}

func (c *Cache) Delete(key string) error {
	err := os.Remove(c.path(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
