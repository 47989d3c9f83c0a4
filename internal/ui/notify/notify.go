// Package notify delivers completion cues through the system notification
// service. Platforms without notification support drop them silently.
package notify

import (
	"sync"

	"fyne.io/fyne/v2"

	"github.com/chikhaoui-amine/Pomodoro/internal/core/model"
)

// Notifier sends session-completion notifications.
type Notifier struct {
	mu      sync.Mutex
	app     fyne.App
	enabled bool
}

// New creates a notifier. enabled mirrors the persisted "soundEnabled"
// preference.
func New(app fyne.App, enabled bool) *Notifier {
	return &Notifier{app: app, enabled: enabled}
}

// SetEnabled toggles notifications.
func (notifier *Notifier) SetEnabled(enabled bool) {
	notifier.mu.Lock()
	notifier.enabled = enabled
	notifier.mu.Unlock()
}

// Enabled reports the current preference.
func (notifier *Notifier) Enabled() bool {
	notifier.mu.Lock()
	defer notifier.mu.Unlock()
	return notifier.enabled
}

// SessionComplete announces a finished interval.
func (notifier *Notifier) SessionComplete(mode model.Mode) {
	if !notifier.Enabled() || notifier.app == nil {
		return
	}

	title, body := "Break finished", "Time to get back to focus."
	if mode == model.ModeWork {
		title, body = "Focus session finished", "Well done, take a break."
	}
	notifier.app.SendNotification(fyne.NewNotification(title, body))
}
