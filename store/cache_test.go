package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheRoundTrip(t *testing.T) {
	c, err := NewCache(t.TempDir())
	require.NoError(t, err)

	in := map[string]int{"a": 1, "b": 2}
	require.NoError(t, c.Write("test_key", in))

	var out map[string]int
	require.NoError(t, c.Read("test_key", &out))
	assert.Equal(t, in, out)
}

func TestCacheMissOnAbsentKey(t *testing.T) {
	c, err := NewCache(t.TempDir())
	require.NoError(t, err)

	var out []string
	assert.ErrorIs(t, c.Read("never_written", &out), ErrCacheMiss)
}

func TestCacheDiscardsCorruptEntry(t *testing.T) {
	dir := t.TempDir()
	c, err := NewCache(dir)
	require.NoError(t, err)

	path := filepath.Join(dir, "broken.json")
	require.NoError(t, os.WriteFile(path, []byte("{not valid json"), 0o644))

	var out map[string]string
	assert.ErrorIs(t, c.Read("broken", &out), ErrCacheMiss)

	// The corrupt file is gone; the key now behaves as empty.
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestCacheDelete(t *testing.T) {
	c, err := NewCache(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, c.Write("k", "v"))
	require.NoError(t, c.Delete("k"))
	require.NoError(t, c.Delete("k")) // deleting twice is fine

	var out string
	assert.ErrorIs(t, c.Read("k", &out), ErrCacheMiss)
}
