// Package ui fans engine notifications out to the fyne widgets. Engine
// callbacks arrive on the clock goroutine, so widget mutations are routed
// through fyne.Do.
package ui

import (
	"sync"

	"fyne.io/fyne/v2"

	"github.com/chikhaoui-amine/Pomodoro/internal/core/engine"
	"github.com/chikhaoui-amine/Pomodoro/internal/core/model"
	"github.com/chikhaoui-amine/Pomodoro/internal/ui/notify"
	"github.com/chikhaoui-amine/Pomodoro/internal/ui/preferences"
	"github.com/chikhaoui-amine/Pomodoro/internal/ui/tray"
	"github.com/chikhaoui-amine/Pomodoro/internal/ui/window"
)

// Presenter implements engine.Presenter over the main window, the tray
// menu and the notifier. Tray may be nil on platforms without one.
type Presenter struct {
	mu       sync.Mutex
	window   *window.Window
	tray     *tray.Manager
	notifier *notify.Notifier
	prefs    *preferences.Window
	mode     model.Mode
}

// NewPresenter wires the presentation targets together.
func NewPresenter(win *window.Window, trayManager *tray.Manager, notifier *notify.Notifier) *Presenter {
	return &Presenter{
		window:   win,
		tray:     trayManager,
		notifier: notifier,
		mode:     model.ModeWork,
	}
}

// Render paints a full engine snapshot, used for the initial display.
func (p *Presenter) Render(snapshot engine.Snapshot) {
	p.setMode(snapshot.Mode)
	fyne.Do(func() {
		p.window.SetMode(snapshot.Mode, snapshot.TotalSeconds)
		p.window.SetRemaining(snapshot.RemainingSeconds, progressOf(snapshot))
		p.window.SetRunning(snapshot.Running)
		p.window.SetStats(snapshot.Stats)
		if p.tray != nil {
			p.tray.SetStatus(modeLabel(snapshot.Mode), window.FormatClock(snapshot.RemainingSeconds))
			p.tray.SetRunning(snapshot.Running)
		}
	})
}

func (p *Presenter) OnTimeUpdate(remainingSeconds int, progress float64) {
	mode := p.currentMode()
	fyne.Do(func() {
		p.window.SetRemaining(remainingSeconds, progress)
		if p.tray != nil {
			p.tray.SetStatus(modeLabel(mode), window.FormatClock(remainingSeconds))
		}
	})
}

func (p *Presenter) OnModeChanged(mode model.Mode, durationSeconds int) {
	p.setMode(mode)
	fyne.Do(func() {
		p.window.SetMode(mode, durationSeconds)
		if p.tray != nil {
			p.tray.SetStatus(modeLabel(mode), window.FormatClock(durationSeconds))
		}
	})
}

func (p *Presenter) OnRunStateChanged(running bool) {
	fyne.Do(func() {
		p.window.SetRunning(running)
		if p.tray != nil {
			p.tray.SetRunning(running)
		}
	})
}

func (p *Presenter) OnSessionCompleted(mode model.Mode, stats model.SessionStats) {
	p.notifier.SessionComplete(mode)
	fyne.Do(func() {
		p.window.SetStats(stats)
	})
}

// SetPreferences attaches the preferences window; created after the
// presenter because it needs the engine.
func (p *Presenter) SetPreferences(prefs *preferences.Window) {
	p.mu.Lock()
	p.prefs = prefs
	p.mu.Unlock()
}

func (p *Presenter) OnSettingsApplied(config model.TimerConfig) {
	p.mu.Lock()
	prefs := p.prefs
	p.mu.Unlock()
	if prefs == nil {
		return
	}
	fyne.Do(func() {
		prefs.ApplyConfig(config)
	})
}

func (p *Presenter) OnToast(message string, _ engine.ToastKind) {
	fyne.Do(func() {
		p.window.ShowToast(message)
	})
}

func (p *Presenter) setMode(mode model.Mode) {
	p.mu.Lock()
	p.mode = mode
	p.mu.Unlock()
}

func (p *Presenter) currentMode() model.Mode {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.mode
}

func modeLabel(mode model.Mode) string {
	if mode == model.ModeBreak {
		return "Break"
	}
	return "Focus"
}

func progressOf(snapshot engine.Snapshot) float64 {
	if snapshot.TotalSeconds <= 0 {
		return 0
	}
	return float64(snapshot.RemainingSeconds) / float64(snapshot.TotalSeconds)
}
