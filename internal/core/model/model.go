package model

import (
	"encoding/json"
	"time"
)

// Mode identifies the active interval type.
type Mode string

const (
	ModeWork  Mode = "work"
	ModeBreak Mode = "break"
)

// Opposite returns the mode the timer switches to after this one.
func (mode Mode) Opposite() Mode {
	if mode == ModeWork {
		return ModeBreak
	}
	return ModeWork
}

// DateLayout is the calendar-date format used for daily rollover.
const DateLayout = "2006-01-02"

const (
	MinWorkMinutes  = 1
	MaxWorkMinutes  = 120
	MinBreakMinutes = 1
	MaxBreakMinutes = 60

	DefaultWorkSeconds  = 25 * 60
	DefaultBreakSeconds = 5 * 60
)

// TimerConfig contains the interval durations, in seconds.
type TimerConfig struct {
	WorkDuration  int
	BreakDuration int
}

// DefaultTimerConfig returns the standard 25/5 pomodoro durations.
func DefaultTimerConfig() TimerConfig {
	return TimerConfig{
		WorkDuration:  DefaultWorkSeconds,
		BreakDuration: DefaultBreakSeconds,
	}
}

// NewTimerConfig builds a config from minute inputs, clamped to the
// allowed ranges.
func NewTimerConfig(workMinutes, breakMinutes int) TimerConfig {
	return TimerConfig{
		WorkDuration:  clampInt(workMinutes, MinWorkMinutes, MaxWorkMinutes) * 60,
		BreakDuration: clampInt(breakMinutes, MinBreakMinutes, MaxBreakMinutes) * 60,
	}
}

// Clamp forces both durations back into the allowed second ranges.
func (config *TimerConfig) Clamp() {
	config.WorkDuration = clampInt(config.WorkDuration, MinWorkMinutes*60, MaxWorkMinutes*60)
	config.BreakDuration = clampInt(config.BreakDuration, MinBreakMinutes*60, MaxBreakMinutes*60)
}

// DurationFor returns the configured interval length for a mode, in seconds.
func (config TimerConfig) DurationFor(mode Mode) int {
	if mode == ModeBreak {
		return config.BreakDuration
	}
	return config.WorkDuration
}

// WorkMinutes returns the work duration rounded to whole minutes, the unit
// credited to the daily focus total.
func (config TimerConfig) WorkMinutes() int {
	return (config.WorkDuration + 30) / 60
}

func clampInt(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// SessionStats tracks completed work sessions for the current day.
type SessionStats struct {
	SessionCount      int
	TodayFocusMinutes int
	CurrentStreak     int
	LastDate          string
}

// Rollover zeroes the day-scoped counters when the stats belong to an
// earlier date. Evaluated at load time only.
func (stats *SessionStats) Rollover(today string) {
	if stats.LastDate != today {
		stats.SessionCount = 0
		stats.TodayFocusMinutes = 0
		stats.CurrentStreak = 0
		stats.LastDate = today
	}
}

// TimerData is the persisted document stored under the "timerData" key.
type TimerData struct {
	WorkDuration      int    `json:"workDuration"`
	BreakDuration     int    `json:"breakDuration"`
	SessionCount      int    `json:"sessionCount"`
	TodayFocusMinutes int    `json:"todayFocusMinutes"`
	CurrentStreak     int    `json:"currentStreak"`
	LastDate          string `json:"lastDate"`
}

// NewTimerData combines config and stats into the persisted form.
func NewTimerData(config TimerConfig, stats SessionStats) TimerData {
	return TimerData{
		WorkDuration:      config.WorkDuration,
		BreakDuration:     config.BreakDuration,
		SessionCount:      stats.SessionCount,
		TodayFocusMinutes: stats.TodayFocusMinutes,
		CurrentStreak:     stats.CurrentStreak,
		LastDate:          stats.LastDate,
	}
}

// DecodeTimerData parses a persisted document. Corrupted payloads are
// treated as absent and yield zero data; Split substitutes defaults.
func DecodeTimerData(raw []byte) TimerData {
	var data TimerData
	if err := json.Unmarshal(raw, &data); err != nil {
		return TimerData{}
	}
	return data
}

// Split separates the persisted document into config and stats, replacing
// missing or out-of-range values with defaults.
func (data TimerData) Split() (TimerConfig, SessionStats) {
	config := DefaultTimerConfig()
	if data.WorkDuration > 0 {
		config.WorkDuration = data.WorkDuration
	}
	if data.BreakDuration > 0 {
		config.BreakDuration = data.BreakDuration
	}
	config.Clamp()

	stats := SessionStats{LastDate: data.LastDate}
	if data.SessionCount > 0 {
		stats.SessionCount = data.SessionCount
	}
	if data.TodayFocusMinutes > 0 {
		stats.TodayFocusMinutes = data.TodayFocusMinutes
	}
	if data.CurrentStreak > 0 {
		stats.CurrentStreak = data.CurrentStreak
	}
	return config, stats
}

// SessionRecord is one completed interval in the session log.
type SessionRecord struct {
	ID              string    `json:"id"`
	Mode            Mode      `json:"mode"`
	DurationSeconds int       `json:"durationSeconds"`
	CompletedAt     time.Time `json:"completedAt"`
	Date            string    `json:"date"`
}
