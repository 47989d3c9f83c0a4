package engine

import (
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/chikhaoui-amine/Pomodoro/internal/core/model"
)

const (
	// DefaultTickInterval is the countdown granularity.
	DefaultTickInterval = time.Second
	// DefaultSwitchDelay is the pause between a completed interval and the
	// automatic switch to the opposite mode.
	DefaultSwitchDelay = 1500 * time.Millisecond
)

// Options contains runtime options for the engine.
type Options struct {
	TickInterval time.Duration
	SwitchDelay  time.Duration
}

// Deps bundles the engine collaborators.
type Deps struct {
	Clock     Clock
	Presenter Presenter
	Saver     Saver
	Recorder  Recorder
	Logger    zerolog.Logger
}

// Engine is the timer state machine. It owns all countdown and session
// state; collaborators receive read-only snapshots and notifications.
type Engine struct {
	mu        sync.Mutex
	clock     Clock
	presenter Presenter
	saver     Saver
	recorder  Recorder
	logger    zerolog.Logger
	options   Options

	config model.TimerConfig
	stats  model.SessionStats

	mode      model.Mode
	remaining int
	total     int
	running   bool

	stopTicks   func()
	switchTimer Timer
	switchEpoch uint64
}

// Snapshot is a read-only copy of the runtime state.
type Snapshot struct {
	Mode             model.Mode
	RemainingSeconds int
	TotalSeconds     int
	Running          bool
	Config           model.TimerConfig
	Stats            model.SessionStats
}

// New creates an engine in idle work mode with the full work duration.
func New(config model.TimerConfig, stats model.SessionStats, deps Deps, options Options) *Engine {
	config.Clamp()
	if options.TickInterval <= 0 {
		options.TickInterval = DefaultTickInterval
	}
	if options.SwitchDelay <= 0 {
		options.SwitchDelay = DefaultSwitchDelay
	}
	if deps.Clock == nil {
		deps.Clock = SystemClock{}
	}
	if deps.Presenter == nil {
		deps.Presenter = nopPresenter{}
	}

	eng := &Engine{
		clock:     deps.Clock,
		presenter: deps.Presenter,
		saver:     deps.Saver,
		recorder:  deps.Recorder,
		logger:    deps.Logger.With().Str("component", "engine").Logger(),
		options:   options,
		config:    config,
		stats:     stats,
		mode:      model.ModeWork,
	}
	eng.total = config.WorkDuration
	eng.remaining = eng.total
	return eng
}

// Snapshot returns a copy of the current state.
func (eng *Engine) Snapshot() Snapshot {
	eng.mu.Lock()
	defer eng.mu.Unlock()
	return Snapshot{
		Mode:             eng.mode,
		RemainingSeconds: eng.remaining,
		TotalSeconds:     eng.total,
		Running:          eng.running,
		Config:           eng.config,
		Stats:            eng.stats,
	}
}

// Start begins the countdown. Idempotent while running; ignored during the
// short window between a completion and the deferred mode switch.
func (eng *Engine) Start() {
	eng.mu.Lock()
	if eng.running || eng.remaining <= 0 {
		eng.mu.Unlock()
		return
	}
	eng.running = true
	eng.stopTicks = eng.clock.TickEvery(eng.options.TickInterval, eng.tick)
	eng.mu.Unlock()

	eng.presenter.OnRunStateChanged(true)
}

// Pause freezes the countdown and invalidates any pending mode switch.
// Idempotent.
func (eng *Engine) Pause() {
	eng.mu.Lock()
	changed := eng.pauseLocked()
	eng.mu.Unlock()

	if changed {
		eng.presenter.OnRunStateChanged(false)
	}
}

// Toggle starts the timer if idle, pauses it otherwise.
func (eng *Engine) Toggle() {
	eng.mu.Lock()
	running := eng.running
	eng.mu.Unlock()

	if running {
		eng.Pause()
	} else {
		eng.Start()
	}
}

// Reset pauses and restores the full duration of the current mode. Stats
// are untouched.
func (eng *Engine) Reset() {
	eng.mu.Lock()
	changed := eng.pauseLocked()
	eng.total = eng.config.DurationFor(eng.mode)
	eng.remaining = eng.total
	remaining, progress := eng.remaining, eng.progressLocked()
	eng.mu.Unlock()

	if changed {
		eng.presenter.OnRunStateChanged(false)
	}
	eng.presenter.OnTimeUpdate(remaining, progress)
}

// Skip pauses and moves to the opposite mode without recording a completed
// session.
func (eng *Engine) Skip() {
	eng.mu.Lock()
	changed := eng.pauseLocked()
	eng.switchModeLocked(eng.mode.Opposite())
	mode, total := eng.mode, eng.total
	eng.mu.Unlock()

	if changed {
		eng.presenter.OnRunStateChanged(false)
	}
	eng.presenter.OnModeChanged(mode, total)
}

// SwitchMode pauses and selects work or break mode with a fresh full
// duration. The timer is not restarted; callers start it again explicitly.
func (eng *Engine) SwitchMode(toWork bool) {
	mode := model.ModeBreak
	if toWork {
		mode = model.ModeWork
	}

	eng.mu.Lock()
	changed := eng.pauseLocked()
	eng.switchModeLocked(mode)
	total := eng.total
	eng.mu.Unlock()

	if changed {
		eng.presenter.OnRunStateChanged(false)
	}
	eng.presenter.OnModeChanged(mode, total)
}

// ApplySettings clamps the minute inputs, persists the new durations and
// resets the current interval.
func (eng *Engine) ApplySettings(workMinutes, breakMinutes int) {
	eng.mu.Lock()
	changed := eng.pauseLocked()
	eng.config = model.NewTimerConfig(workMinutes, breakMinutes)
	eng.total = eng.config.DurationFor(eng.mode)
	eng.remaining = eng.total
	eng.saveLocked()
	config := eng.config
	remaining, progress := eng.remaining, eng.progressLocked()
	eng.mu.Unlock()

	if changed {
		eng.presenter.OnRunStateChanged(false)
	}
	eng.presenter.OnSettingsApplied(config)
	eng.presenter.OnTimeUpdate(remaining, progress)
	eng.presenter.OnToast("Settings applied", ToastInfo)
}

// Resync subtracts seconds that elapsed while the process was suspended.
// Must be applied before further ticks; the mutex serializes it against the
// tick path.
func (eng *Engine) Resync(elapsedSeconds int) {
	eng.mu.Lock()
	if !eng.running || elapsedSeconds <= 0 || eng.remaining <= 0 {
		eng.mu.Unlock()
		return
	}
	eng.remaining -= elapsedSeconds
	if eng.remaining <= 0 {
		eng.remaining = 0
		notify := eng.completeLocked()
		eng.mu.Unlock()
		notify()
		return
	}
	remaining, progress := eng.remaining, eng.progressLocked()
	eng.mu.Unlock()

	eng.presenter.OnTimeUpdate(remaining, progress)
}

// Stop halts ticking and pending switches for process teardown.
func (eng *Engine) Stop() {
	eng.mu.Lock()
	eng.pauseLocked()
	eng.mu.Unlock()
}

func (eng *Engine) tick() {
	eng.mu.Lock()
	if !eng.running || eng.remaining <= 0 {
		eng.mu.Unlock()
		return
	}
	eng.remaining--
	if eng.remaining <= 0 {
		eng.remaining = 0
		notify := eng.completeLocked()
		eng.mu.Unlock()
		notify()
		return
	}
	remaining, progress := eng.remaining, eng.progressLocked()
	eng.mu.Unlock()

	eng.presenter.OnTimeUpdate(remaining, progress)
}

// completeLocked finishes the current interval, updates stats for work
// sessions and schedules the deferred mode switch. The returned closure
// delivers presenter notifications and must run after unlocking.
func (eng *Engine) completeLocked() func() {
	eng.pauseLocked()
	mode := eng.mode

	if mode == model.ModeWork {
		eng.stats.SessionCount++
		eng.stats.CurrentStreak++
		eng.stats.TodayFocusMinutes += eng.config.WorkMinutes()
		eng.stats.LastDate = eng.clock.Now().Format(model.DateLayout)
		eng.saveLocked()
		eng.recordLocked(mode, eng.config.WorkDuration)
	}
	stats := eng.stats
	eng.scheduleSwitchLocked(mode.Opposite())

	return func() {
		eng.presenter.OnRunStateChanged(false)
		eng.presenter.OnSessionCompleted(mode, stats)
		if mode == model.ModeWork {
			eng.presenter.OnToast("Focus session complete, take a break", ToastSuccess)
		} else {
			eng.presenter.OnToast("Break over, back to focus", ToastInfo)
		}
	}
}

// pauseLocked stops ticking and invalidates any pending deferred switch.
// Reports whether the running flag changed.
func (eng *Engine) pauseLocked() bool {
	eng.cancelSwitchLocked()
	wasRunning := eng.running
	eng.running = false
	if eng.stopTicks != nil {
		eng.stopTicks()
		eng.stopTicks = nil
	}
	return wasRunning
}

func (eng *Engine) cancelSwitchLocked() {
	eng.switchEpoch++
	if eng.switchTimer != nil {
		eng.switchTimer.Stop()
		eng.switchTimer = nil
	}
}

func (eng *Engine) switchModeLocked(mode model.Mode) {
	eng.mode = mode
	eng.total = eng.config.DurationFor(mode)
	eng.remaining = eng.total
}

// scheduleSwitchLocked arms the post-complete switch. The epoch tag keeps a
// stale callback from applying after an intervening command invalidated it.
func (eng *Engine) scheduleSwitchLocked(next model.Mode) {
	eng.switchEpoch++
	epoch := eng.switchEpoch
	eng.switchTimer = eng.clock.AfterFunc(eng.options.SwitchDelay, func() {
		eng.deferredSwitch(epoch, next)
	})
}

func (eng *Engine) deferredSwitch(epoch uint64, next model.Mode) {
	eng.mu.Lock()
	if epoch != eng.switchEpoch {
		eng.mu.Unlock()
		return
	}
	eng.switchTimer = nil
	eng.switchModeLocked(next)
	mode, total := eng.mode, eng.total
	eng.mu.Unlock()

	eng.presenter.OnModeChanged(mode, total)
}

func (eng *Engine) progressLocked() float64 {
	if eng.total <= 0 {
		return 0
	}
	return float64(eng.remaining) / float64(eng.total)
}

func (eng *Engine) saveLocked() {
	if eng.saver == nil {
		return
	}
	if err := eng.saver.SaveTimerData(model.NewTimerData(eng.config, eng.stats)); err != nil {
		eng.logger.Warn().Err(err).Msg("save timer data")
	}
}

func (eng *Engine) recordLocked(mode model.Mode, durationSeconds int) {
	if eng.recorder == nil {
		return
	}
	now := eng.clock.Now()
	record := model.SessionRecord{
		Mode:            mode,
		DurationSeconds: durationSeconds,
		CompletedAt:     now,
		Date:            now.Format(model.DateLayout),
	}
	if err := eng.recorder.RecordSession(record); err != nil {
		eng.logger.Warn().Err(err).Msg("record session")
	}
}
