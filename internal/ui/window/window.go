// Package window implements the main timer window.
package window

import (
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/chikhaoui-amine/Pomodoro/internal/core/model"
)

const toastDuration = 3 * time.Second

// Callbacks defines the user actions the window can trigger.
type Callbacks struct {
	OnToggle      func()
	OnReset       func()
	OnSkip        func()
	OnPreferences func()
}

// Window is the main timer window.
type Window struct {
	window       fyne.Window
	modeText     *canvas.Text
	timeText     *canvas.Text
	progress     *widget.ProgressBar
	toggleButton *widget.Button
	statsLabel   *widget.Label
	toastLabel   *widget.Label
	toastTimer   *time.Timer
	callbacks    Callbacks
}

// New builds the window. Closing hides it; the tray keeps the app alive.
func New(app fyne.App, callbacks Callbacks) *Window {
	win := &Window{
		window:    app.NewWindow("Pomodoro"),
		callbacks: callbacks,
	}

	win.modeText = canvas.NewText("Focus", theme.ForegroundColor())
	win.modeText.TextSize = 20
	win.modeText.TextStyle = fyne.TextStyle{Bold: true}
	win.modeText.Alignment = fyne.TextAlignCenter

	win.timeText = canvas.NewText("25:00", theme.ForegroundColor())
	win.timeText.TextSize = 64
	win.timeText.Alignment = fyne.TextAlignCenter

	win.progress = widget.NewProgressBar()
	win.progress.SetValue(1)
	win.progress.TextFormatter = func() string { return "" }

	win.toggleButton = widget.NewButtonWithIcon("Start", theme.MediaPlayIcon(), func() {
		if win.callbacks.OnToggle != nil {
			win.callbacks.OnToggle()
		}
	})
	resetButton := widget.NewButtonWithIcon("Reset", theme.ViewRefreshIcon(), func() {
		if win.callbacks.OnReset != nil {
			win.callbacks.OnReset()
		}
	})
	skipButton := widget.NewButtonWithIcon("Skip", theme.MediaSkipNextIcon(), func() {
		if win.callbacks.OnSkip != nil {
			win.callbacks.OnSkip()
		}
	})
	settingsButton := widget.NewButtonWithIcon("", theme.SettingsIcon(), func() {
		if win.callbacks.OnPreferences != nil {
			win.callbacks.OnPreferences()
		}
	})

	win.statsLabel = widget.NewLabel("")
	win.statsLabel.Alignment = fyne.TextAlignCenter
	win.toastLabel = widget.NewLabel("")
	win.toastLabel.Alignment = fyne.TextAlignCenter
	win.toastLabel.Hide()

	content := container.NewVBox(
		container.NewHBox(layout.NewSpacer(), settingsButton),
		win.modeText,
		win.timeText,
		win.progress,
		container.NewCenter(container.NewHBox(win.toggleButton, resetButton, skipButton)),
		win.statsLabel,
		win.toastLabel,
	)

	win.window.SetContent(content)
	win.window.Resize(fyne.NewSize(340, 380))
	win.window.SetCloseIntercept(func() {
		win.window.Hide()
	})

	return win
}

// Show displays the window.
func (win *Window) Show() {
	win.window.Show()
	win.window.RequestFocus()
}

// SetRemaining updates the countdown display.
func (win *Window) SetRemaining(seconds int, progress float64) {
	win.timeText.Text = FormatClock(seconds)
	win.timeText.Refresh()
	win.progress.SetValue(progress)
}

// SetMode updates the mode heading and restores the full duration display.
func (win *Window) SetMode(mode model.Mode, durationSeconds int) {
	if mode == model.ModeBreak {
		win.modeText.Text = "Break"
	} else {
		win.modeText.Text = "Focus"
	}
	win.modeText.Refresh()
	win.SetRemaining(durationSeconds, 1)
}

// SetRunning updates the start/pause button.
func (win *Window) SetRunning(running bool) {
	if running {
		win.toggleButton.SetText("Pause")
		win.toggleButton.SetIcon(theme.MediaPauseIcon())
	} else {
		win.toggleButton.SetText("Start")
		win.toggleButton.SetIcon(theme.MediaPlayIcon())
	}
}

// SetStats updates the daily stats line.
func (win *Window) SetStats(stats model.SessionStats) {
	win.statsLabel.SetText(fmt.Sprintf("Sessions: %d   Focus: %d min   Streak: %d",
		stats.SessionCount, stats.TodayFocusMinutes, stats.CurrentStreak))
}

// ShowToast displays a transient message for a few seconds.
func (win *Window) ShowToast(message string) {
	if win.toastTimer != nil {
		win.toastTimer.Stop()
	}
	win.toastLabel.SetText(message)
	win.toastLabel.Show()
	win.toastTimer = time.AfterFunc(toastDuration, func() {
		fyne.Do(func() {
			win.toastLabel.Hide()
		})
	})
}

// FormatClock renders a second count as MM:SS, flooring negatives to zero.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
