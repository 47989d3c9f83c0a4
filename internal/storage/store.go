// Package storage defines the local key-value persistence used by the
// timer: a string-keyed store for configuration and stats plus a log of
// completed sessions.
package storage

import (
	"errors"
	"strconv"

	"github.com/chikhaoui-amine/Pomodoro/internal/core/model"
)

// Keys used in the key-value store.
const (
	KeyTimerData    = "timerData"
	KeySoundEnabled = "soundEnabled"
	KeyTheme        = "theme"
)

// ErrNotFound indicates the key has no stored value.
var ErrNotFound = errors.New("key not found")

// KV is a string key-value store.
type KV interface {
	Get(key string) (string, error)
	Put(key, value string) error
}

// SessionLog records completed sessions.
type SessionLog interface {
	RecordSession(record model.SessionRecord) error
	SessionsOn(date string) ([]model.SessionRecord, error)
}

// Store combines the key-value store and the session log.
type Store interface {
	KV
	SessionLog
	Close() error
}

// GetBool reads a "true"/"false" value, falling back on absence or
// malformed content.
func GetBool(kv KV, key string, fallback bool) bool {
	raw, err := kv.Get(key)
	if err != nil {
		return fallback
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return fallback
	}
	return value
}

// PutBool stores a boolean as "true"/"false".
func PutBool(kv KV, key string, value bool) error {
	return kv.Put(key, strconv.FormatBool(value))
}
