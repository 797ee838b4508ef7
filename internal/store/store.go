package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	bolt "go.etcd.io/bbolt"
)

// Bucket names
const (
	BucketSession   = "session"
	BucketFavorites = "favorites"
)

// Keys within the buckets
const (
	KeySessionToken  = "token"
	KeySessionUser   = "user"
	KeyFavoritesList = "list"
)

// StateStore implements domain.StateStore using BoltDB.
// JSON values, last write wins. Reads fail soft: a malformed stored value is
// treated as absent and the stale entry is deleted.
type StateStore struct {
	db *bolt.DB
	mu sync.RWMutex

	// In-memory map doubles as the backing store in memory-only mode
	// and as a hot-path cache in front of BoltDB.
	cache map[string][]byte
}

// New opens the state store under dataDir. An empty dataDir selects
// memory-only mode (no persistence), which tests and --no-persist use.
func New(dataDir string) (*StateStore, error) {
	if dataDir == "" {
		return &StateStore{cache: make(map[string][]byte)}, nil
	}

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, err
	}

	dbPath := filepath.Join(dataDir, "reel.db")
	db, err := bolt.Open(dbPath, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, bucket := range []string{BucketSession, BucketFavorites} {
			if _, err := tx.CreateBucketIfNotExists([]byte(bucket)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &StateStore{db: db, cache: make(map[string][]byte)}, nil
}

func (s *StateStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Read loads the value at bucket/key into dest. It returns false when the
// entry is absent or unparseable; unparseable entries are removed so the
// corruption is not observed twice.
func (s *StateStore) Read(bucket, key string, dest interface{}) bool {
	cacheKey := bucket + ":" + key

	s.mu.RLock()
	data, ok := s.cache[cacheKey]
	s.mu.RUnlock()

	if !ok {
		if s.db == nil {
			return false
		}

		s.db.View(func(tx *bolt.Tx) error {
			b := tx.Bucket([]byte(bucket))
			if b == nil {
				return nil
			}
			if v := b.Get([]byte(key)); v != nil {
				data = make([]byte, len(v))
				copy(data, v)
			}
			return nil
		})

		if data == nil {
			return false
		}
	}

	if err := json.Unmarshal(data, dest); err != nil {
		// Corrupt cache is not a user-facing error: drop the entry
		// and report absence.
		s.Remove(bucket, key)
		return false
	}

	if !ok {
		// Promote to memory cache
		s.mu.Lock()
		s.cache[cacheKey] = data
		s.mu.Unlock()
	}

	return true
}

// Write serializes value and stores it at bucket/key, overwriting.
func (s *StateStore) Write(bucket, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	cacheKey := bucket + ":" + key

	s.mu.Lock()
	s.cache[cacheKey] = data
	s.mu.Unlock()

	if s.db == nil {
		return nil // Memory-only mode
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists([]byte(bucket))
		if err != nil {
			return err
		}
		return b.Put([]byte(key), data)
	})
}

// Remove deletes the entry at bucket/key. Removing an absent entry is a no-op.
func (s *StateStore) Remove(bucket, key string) {
	cacheKey := bucket + ":" + key

	s.mu.Lock()
	delete(s.cache, cacheKey)
	s.mu.Unlock()

	if s.db == nil {
		return
	}

	s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucket))
		if b != nil {
			b.Delete([]byte(key))
		}
		return nil
	})
}

// Has reports whether an entry exists at bucket/key without decoding it.
func (s *StateStore) Has(bucket, key string) bool {
	cacheKey := bucket + ":" + key

	s.mu.RLock()
	_, ok := s.cache[cacheKey]
	s.mu.RUnlock()
	if ok {
		return true
	}

	if s.db == nil {
		return false
	}

	found := false
	s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucket))
		if b != nil && b.Get([]byte(key)) != nil {
			found = true
		}
		return nil
	})
	return found
}
