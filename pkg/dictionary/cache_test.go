package dictionary

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheHitsAndReloads(t *testing.T) {
	path := writeList(t, "hello/\n")
	cache := NewCache(2)

	first, err := cache.Load(File(path), Options{})
	require.NoError(t, err)
	second, err := cache.Load(File(path), Options{})
	require.NoError(t, err)
	assert.Same(t, first, second)

	stats := cache.Stats()
	assert.Equal(t, 1, stats["hits"])
	assert.Equal(t, 1, stats["misses"])

	require.NoError(t, os.WriteFile(path, []byte("help/\n"), 0644))
	later := time.Now().Add(time.Hour)
	require.NoError(t, os.Chtimes(path, later, later))

	reloaded, err := cache.Load(File(path), Options{})
	require.NoError(t, err)
	assert.NotSame(t, first, reloaded)
	assert.True(t, reloaded.Contains("help"))
	assert.False(t, reloaded.Contains("hello"))
}

func TestCacheKeysOnFormat(t *testing.T) {
	src := Bytes("mem", []byte("word/\n"))
	cache := NewCache(4)

	marked, err := cache.Load(src, Options{Format: FormatMarked})
	require.NoError(t, err)
	plain, err := cache.Load(src, Options{Format: FormatPlain})
	require.NoError(t, err)

	assert.True(t, marked.Contains("word"))
	assert.True(t, plain.Contains("word/"))
	assert.Equal(t, 2, cache.Stats()["entries"])
}

func TestCacheEvictsLeastRecentlyUsed(t *testing.T) {
	cache := NewCache(2)
	a := Bytes("a", []byte("a/\n"))
	b := Bytes("b", []byte("b/\n"))
	c := Bytes("c", []byte("c/\n"))

	_, err := cache.Load(a, Options{})
	require.NoError(t, err)
	_, err = cache.Load(b, Options{})
	require.NoError(t, err)
	_, err = cache.Load(a, Options{})
	require.NoError(t, err)
	_, err = cache.Load(c, Options{})
	require.NoError(t, err)

	assert.Equal(t, 2, cache.Stats()["entries"])

	// a was used more recently than b, so b was evicted
	_, err = cache.Load(a, Options{})
	require.NoError(t, err)
	assert.Equal(t, 2, cache.Stats()["hits"])
	_, err = cache.Load(b, Options{})
	require.NoError(t, err)
	assert.Equal(t, 2, cache.Stats()["hits"])
}

func TestCacheMissingFile(t *testing.T) {
	path := writeList(t, "hello/\n")
	cache := NewCache(1)
	_, err := cache.Load(File(path), Options{})
	require.NoError(t, err)

	require.NoError(t, os.Remove(path))
	_, err = cache.Load(File(path), Options{})
	assert.ErrorIs(t, err, ErrSourceUnavailable)
	assert.Equal(t, 0, cache.Stats()["entries"])
}
