package cache

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLRUSetGet(t *testing.T) {
	c := NewLRU(10)
	c.Set("a", []byte("value"), time.Minute)

	got, found := c.Get("a")
	require.True(t, found)
	assert.Equal(t, []byte("value"), got)
}

func TestLRUExpiry(t *testing.T) {
	c := NewLRU(10)
	c.Set("a", []byte("value"), 10*time.Millisecond)

	time.Sleep(20 * time.Millisecond)

	_, found := c.Get("a")
	assert.False(t, found)
}

func TestLRUPerEntryTTL(t *testing.T) {
	c := NewLRU(10)
	c.Set("short", []byte("s"), 10*time.Millisecond)
	c.Set("long", []byte("l"), time.Minute)

	time.Sleep(20 * time.Millisecond)

	_, foundShort := c.Get("short")
	_, foundLong := c.Get("long")
	assert.False(t, foundShort)
	assert.True(t, foundLong)
}

func TestLRUEviction(t *testing.T) {
	c := NewLRU(2)
	c.Set("a", []byte("1"), time.Minute)
	c.Set("b", []byte("2"), time.Minute)

	// Touch "a" so "b" becomes the eviction candidate
	c.Get("a")
	c.Set("c", []byte("3"), time.Minute)

	_, foundA := c.Get("a")
	_, foundB := c.Get("b")
	_, foundC := c.Get("c")
	assert.True(t, foundA)
	assert.False(t, foundB)
	assert.True(t, foundC)
}

func TestLRUCleanExpired(t *testing.T) {
	c := NewLRU(10)
	c.Set("stale", []byte("1"), time.Millisecond)
	c.Set("fresh", []byte("2"), time.Minute)

	time.Sleep(5 * time.Millisecond)
	c.CleanExpired()

	assert.Len(t, c.items, 1)
	_, found := c.Get("fresh")
	assert.True(t, found)
}

func TestBoltCacheRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.db")
	c, err := NewBolt(path)
	require.NoError(t, err)
	defer c.Close()

	c.Set("key", []byte(`{"hello":"world"}`), time.Minute)

	got, found := c.Get("key")
	require.True(t, found)
	assert.Equal(t, []byte(`{"hello":"world"}`), got)

	c.Delete("key")
	_, found = c.Get("key")
	assert.False(t, found)
}

func TestBoltCacheExpiry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.db")
	c, err := NewBolt(path)
	require.NoError(t, err)
	defer c.Close()

	c.Set("stale", []byte("v"), 5*time.Millisecond)
	time.Sleep(10 * time.Millisecond)

	_, found := c.Get("stale")
	assert.False(t, found)
}

func TestBoltCacheClear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.db")
	c, err := NewBolt(path)
	require.NoError(t, err)
	defer c.Close()

	c.Set("a", []byte("1"), time.Minute)
	c.Set("b", []byte("2"), time.Minute)
	c.Clear()

	_, foundA := c.Get("a")
	_, foundB := c.Get("b")
	assert.False(t, foundA)
	assert.False(t, foundB)
}
