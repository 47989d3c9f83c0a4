package preferences

import (
	"github.com/chikhaoui-amine/Pomodoro/internal/core/model"
)

// Settings defines editable user preferences.
type Settings struct {
	WorkMinutes  int
	BreakMinutes int
	SoundEnabled bool
	Theme        string
}

// FromState builds settings from the loaded timer config and stored
// preferences.
func FromState(config model.TimerConfig, soundEnabled bool, theme string) Settings {
	return Settings{
		WorkMinutes:  config.WorkDuration / 60,
		BreakMinutes: config.BreakDuration / 60,
		SoundEnabled: soundEnabled,
		Theme:        theme,
	}
}
