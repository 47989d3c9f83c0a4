package storage

import (
	"sync"

	"github.com/google/uuid"

	"github.com/chikhaoui-amine/Pomodoro/internal/core/model"
)

// MemoryStore is an in-process Store. It backs tests and serves as the
// silent fallback when the on-disk store cannot be opened; nothing survives
// the process in that case.
type MemoryStore struct {
	mu       sync.RWMutex
	values   map[string]string
	sessions []model.SessionRecord
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

// Get returns the stored value or ErrNotFound.
func (store *MemoryStore) Get(key string) (string, error) {
	store.mu.RLock()
	defer store.mu.RUnlock()
	value, ok := store.values[key]
	if !ok {
		return "", ErrNotFound
	}
	return value, nil
}

// Put stores a value.
func (store *MemoryStore) Put(key, value string) error {
	store.mu.Lock()
	defer store.mu.Unlock()
	store.values[key] = value
	return nil
}

// RecordSession appends a completed session, assigning an ID when absent.
func (store *MemoryStore) RecordSession(record model.SessionRecord) error {
	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	store.mu.Lock()
	defer store.mu.Unlock()
	store.sessions = append(store.sessions, record)
	return nil
}

// SessionsOn returns the sessions recorded for a calendar date.
func (store *MemoryStore) SessionsOn(date string) ([]model.SessionRecord, error) {
	store.mu.RLock()
	defer store.mu.RUnlock()
	records := make([]model.SessionRecord, 0)
	for _, record := range store.sessions {
		if record.Date == date {
			records = append(records, record)
		}
	}
	return records, nil
}

// Close implements Store.
func (store *MemoryStore) Close() error {
	return nil
}
