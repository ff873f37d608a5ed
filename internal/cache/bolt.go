package cache

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"
)

const (
	cacheFileMode = 0600
	cacheDirMode  = 0755

	defaultCacheFile = "cache.db"
)

var cacheBucket = []byte("cache")

// BoltCache is a Cache persisted to a bbolt file, for deployments that
// want cached envelopes to survive restarts. Expiry is lazy: entries are
// checked on read and deleted when stale.
type BoltCache struct {
	db *bolt.DB
}

type boltEntry struct {
	Value     []byte    `json:"value"`
	ExpiresAt time.Time `json:"expires_at"`
}

// NewBolt opens (creating if needed) a bbolt-backed cache at path.
// If path is empty, uses the default cache file in the current directory.
func NewBolt(path string) (*BoltCache, error) {
	if path == "" {
		path = filepath.Join(".", defaultCacheFile)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, cacheDirMode); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}

	db, err := bolt.Open(path, cacheFileMode, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt cache: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(cacheBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create cache bucket: %w", err)
	}

	return &BoltCache{db: db}, nil
}

func (c *BoltCache) Close() error {
	return c.db.Close()
}

func (c *BoltCache) Get(key string) ([]byte, bool) {
	var entry boltEntry
	found := false

	c.db.View(func(tx *bolt.Tx) error {
		raw := tx.Bucket(cacheBucket).Get([]byte(key))
		if raw == nil {
			return nil
		}
		if err := json.Unmarshal(raw, &entry); err != nil {
			return nil
		}
		found = true
		return nil
	})

	if !found {
		return nil, false
	}

	if time.Now().After(entry.ExpiresAt) {
		c.Delete(key)
		return nil, false
	}

	return entry.Value, true
}

func (c *BoltCache) Set(key string, value []byte, ttl time.Duration) {
	raw, err := json.Marshal(boltEntry{
		Value:     value,
		ExpiresAt: time.Now().Add(ttl),
	})
	if err != nil {
		return
	}

	c.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(cacheBucket).Put([]byte(key), raw)
	})
}

func (c *BoltCache) Delete(key string) {
	c.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(cacheBucket).Delete([]byte(key))
	})
}

func (c *BoltCache) Clear() {
	c.db.Update(func(tx *bolt.Tx) error {
		if err := tx.DeleteBucket(cacheBucket); err != nil {
			return err
		}
		_, err := tx.CreateBucket(cacheBucket)
		return err
	})
}

// CleanExpired removes all expired entries in one pass.
func (c *BoltCache) CleanExpired() {
	now := time.Now()

	c.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(cacheBucket)
		cur := b.Cursor()

		var stale [][]byte
		for k, v := cur.First(); k != nil; k, v = cur.Next() {
			var entry boltEntry
			if err := json.Unmarshal(v, &entry); err != nil || now.After(entry.ExpiresAt) {
				stale = append(stale, append([]byte(nil), k...))
			}
		}

		for _, k := range stale {
			if err := b.Delete(k); err != nil {
				return err
			}
		}
		return nil
	})
}
