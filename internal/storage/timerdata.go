package storage

import (
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/chikhaoui-amine/Pomodoro/internal/core/model"
)

// LoadTimerData reads durations and session stats from the store. Missing
// or corrupted data yields defaults, and day-scoped stats roll over when
// the persisted date is not today. Never fails.
func LoadTimerData(kv KV, today string) (model.TimerConfig, model.SessionStats) {
	raw, err := kv.Get(KeyTimerData)
	if err != nil {
		return model.DefaultTimerConfig(), model.SessionStats{LastDate: today}
	}

	config, stats := model.DecodeTimerData([]byte(raw)).Split()
	stats.Rollover(today)
	return config, stats
}

// ReconcileStats restores today's counters from the session log when the
// persisted document lost them, for example after corruption replaced it
// with defaults. The log does not record skips, so CurrentStreak is only
// raised to the rebuilt session count, never recomputed.
func ReconcileStats(log SessionLog, stats model.SessionStats, today string, logger zerolog.Logger) model.SessionStats {
	records, err := log.SessionsOn(today)
	if err != nil {
		return stats
	}

	count, minutes := 0, 0
	for _, record := range records {
		if record.Mode != model.ModeWork {
			continue
		}
		count++
		minutes += (record.DurationSeconds + 30) / 60
	}
	if count <= stats.SessionCount {
		return stats
	}

	logger.Warn().
		Int("stored", stats.SessionCount).
		Int("logged", count).
		Msg("session counters behind the log, rebuilding from records")

	stats.SessionCount = count
	stats.TodayFocusMinutes = minutes
	if stats.CurrentStreak < count {
		stats.CurrentStreak = count
	}
	stats.LastDate = today
	return stats
}

// SaveTimerData writes the combined document under the "timerData" key.
func SaveTimerData(kv KV, data model.TimerData) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshal timer data: %w", err)
	}
	return kv.Put(KeyTimerData, string(raw))
}

// TimerStore adapts a KV store to the engine persistence interface.
type TimerStore struct {
	kv KV
}

// NewTimerStore wraps a KV store.
func NewTimerStore(kv KV) *TimerStore {
	return &TimerStore{kv: kv}
}

// SaveTimerData implements the engine Saver.
func (store *TimerStore) SaveTimerData(data model.TimerData) error {
	return SaveTimerData(store.kv, data)
}
