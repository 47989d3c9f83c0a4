package engine

import "github.com/chikhaoui-amine/Pomodoro/internal/core/model"

// ToastKind classifies transient user messages.
type ToastKind string

const (
	ToastInfo    ToastKind = "info"
	ToastSuccess ToastKind = "success"
)

// Presenter receives engine notifications. Implementations render state to
// a screen; they never mutate engine state directly.
type Presenter interface {
	OnTimeUpdate(remainingSeconds int, progress float64)
	OnModeChanged(mode model.Mode, durationSeconds int)
	OnRunStateChanged(running bool)
	OnSessionCompleted(mode model.Mode, stats model.SessionStats)
	OnSettingsApplied(config model.TimerConfig)
	OnToast(message string, kind ToastKind)
}

// Saver persists timer data after stat or settings changes.
type Saver interface {
	SaveTimerData(data model.TimerData) error
}

// Recorder appends completed sessions to the session log.
type Recorder interface {
	RecordSession(record model.SessionRecord) error
}

type nopPresenter struct{}

func (nopPresenter) OnTimeUpdate(int, float64)                         {}
func (nopPresenter) OnModeChanged(model.Mode, int)                     {}
func (nopPresenter) OnRunStateChanged(bool)                            {}
func (nopPresenter) OnSessionCompleted(model.Mode, model.SessionStats) {}
func (nopPresenter) OnSettingsApplied(model.TimerConfig)               {}
func (nopPresenter) OnToast(string, ToastKind)                         {}
