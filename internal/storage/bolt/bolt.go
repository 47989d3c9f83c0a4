// Package bolt persists timer data in a single bbolt file.
package bolt

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.etcd.io/bbolt"

	"github.com/chikhaoui-amine/Pomodoro/internal/core/model"
	"github.com/chikhaoui-amine/Pomodoro/internal/storage"
)

const (
	bucketTimer    = "timer"
	bucketSessions = "sessions"
)

// Store implements storage.Store using bbolt.
type Store struct {
	db *bbolt.DB
}

// Open opens or creates the store file.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create data directory: %w", err)
		}
	}

	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: 2 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("open bolt db: %w", err)
	}

	store := &Store{db: db}
	if err := store.ensureBuckets(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

func (store *Store) ensureBuckets() error {
	return store.db.Update(func(tx *bbolt.Tx) error {
		for _, name := range []string{bucketTimer, bucketSessions} {
			if _, err := tx.CreateBucketIfNotExists([]byte(name)); err != nil {
				return fmt.Errorf("create bucket %s: %w", name, err)
			}
		}
		return nil
	})
}

// Close closes the underlying database.
func (store *Store) Close() error {
	return store.db.Close()
}

// Get returns the stored value or storage.ErrNotFound.
func (store *Store) Get(key string) (string, error) {
	var value string
	err := store.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(bucketTimer))
		if bucket == nil {
			return storage.ErrNotFound
		}
		raw := bucket.Get([]byte(key))
		if raw == nil {
			return storage.ErrNotFound
		}
		value = string(raw)
		return nil
	})
	if err != nil {
		return "", err
	}
	return value, nil
}

// Put stores a value.
func (store *Store) Put(key, value string) error {
	return store.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(bucketTimer))
		if bucket == nil {
			return fmt.Errorf("bucket missing: %s", bucketTimer)
		}
		return bucket.Put([]byte(key), []byte(value))
	})
}

// RecordSession appends a completed session under a time-ordered key.
func (store *Store) RecordSession(record model.SessionRecord) error {
	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	raw, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshal session record: %w", err)
	}

	key := sessionKey(record)
	return store.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(bucketSessions))
		if bucket == nil {
			return fmt.Errorf("bucket missing: %s", bucketSessions)
		}
		return bucket.Put([]byte(key), raw)
	})
}

// SessionsOn returns the sessions recorded for a calendar date, oldest
// first.
func (store *Store) SessionsOn(date string) ([]model.SessionRecord, error) {
	records := make([]model.SessionRecord, 0)
	err := store.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(bucketSessions))
		if bucket == nil {
			return nil
		}
		return bucket.ForEach(func(_, raw []byte) error {
			var record model.SessionRecord
			if err := json.Unmarshal(raw, &record); err != nil {
				return fmt.Errorf("unmarshal session record: %w", err)
			}
			if record.Date == date {
				records = append(records, record)
			}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

func sessionKey(record model.SessionRecord) string {
	suffix := record.ID
	if len(suffix) > 8 {
		suffix = suffix[:8]
	}
	return fmt.Sprintf("%020d-%s", record.CompletedAt.UnixNano(), suffix)
}
