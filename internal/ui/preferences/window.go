package preferences

import (
	"fmt"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/chikhaoui-amine/Pomodoro/internal/core/model"
	"github.com/chikhaoui-amine/Pomodoro/internal/ui/apptheme"
)

var themeOptions = []string{"System", "Light", "Dark"}

// Window handles the preferences UI.
type Window struct {
	window      fyne.Window
	settings    Settings
	onSave      func(Settings)
	workEntry   *widget.Entry
	breakEntry  *widget.Entry
	soundCheck  *widget.Check
	themeSelect *widget.Select
}

// New creates a preferences window.
func New(app fyne.App, settings Settings, onSave func(Settings)) *Window {
	window := app.NewWindow("Pomodoro Settings")

	workEntry := widget.NewEntry()
	breakEntry := widget.NewEntry()
	workEntry.SetText(fmt.Sprintf("%d", settings.WorkMinutes))
	breakEntry.SetText(fmt.Sprintf("%d", settings.BreakMinutes))

	soundCheck := widget.NewCheck("Play completion sound", nil)
	soundCheck.SetChecked(settings.SoundEnabled)

	themeSelect := widget.NewSelect(themeOptions, nil)
	themeSelect.SetSelected(themeOption(settings.Theme))

	form := container.NewVBox(
		widget.NewLabelWithStyle("Intervals", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(widget.NewLabel("Work duration"), workEntry, widget.NewLabel("min")),
		container.NewHBox(widget.NewLabel("Break duration"), breakEntry, widget.NewLabel("min")),
		widget.NewLabelWithStyle("Appearance", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		soundCheck,
		container.NewHBox(widget.NewLabel("Theme"), themeSelect),
	)

	saveButton := widget.NewButton("Save", nil)
	cancelButton := widget.NewButton("Cancel", nil)
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	window.SetContent(container.NewBorder(nil, buttons, nil, nil, form))
	window.Resize(fyne.NewSize(360, 300))

	prefs := &Window{
		window:      window,
		settings:    settings,
		onSave:      onSave,
		workEntry:   workEntry,
		breakEntry:  breakEntry,
		soundCheck:  soundCheck,
		themeSelect: themeSelect,
	}

	saveButton.OnTapped = prefs.handleSave
	cancelButton.OnTapped = func() {
		prefs.UpdateSettings(prefs.settings)
		window.Hide()
	}
	window.SetCloseIntercept(func() {
		window.Hide()
	})

	return prefs
}

// Show displays the preferences window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// ApplyConfig refreshes the duration fields with the values the engine
// accepted.
func (prefs *Window) ApplyConfig(config model.TimerConfig) {
	prefs.settings.WorkMinutes = config.WorkDuration / 60
	prefs.settings.BreakMinutes = config.BreakDuration / 60
	prefs.UpdateSettings(prefs.settings)
}

// UpdateSettings replaces window values.
func (prefs *Window) UpdateSettings(settings Settings) {
	prefs.settings = settings
	prefs.workEntry.SetText(fmt.Sprintf("%d", settings.WorkMinutes))
	prefs.breakEntry.SetText(fmt.Sprintf("%d", settings.BreakMinutes))
	prefs.soundCheck.SetChecked(settings.SoundEnabled)
	prefs.themeSelect.SetSelected(themeOption(settings.Theme))
}

// handleSave applies the entered values. Non-numeric durations keep the
// previous value; range clamping happens in the engine.
func (prefs *Window) handleSave() {
	settings := prefs.settings

	if minutes, ok := parsePositiveInt(prefs.workEntry.Text); ok {
		settings.WorkMinutes = minutes
	}
	if minutes, ok := parsePositiveInt(prefs.breakEntry.Text); ok {
		settings.BreakMinutes = minutes
	}
	settings.WorkMinutes = clampMinutes(settings.WorkMinutes, model.MinWorkMinutes, model.MaxWorkMinutes)
	settings.BreakMinutes = clampMinutes(settings.BreakMinutes, model.MinBreakMinutes, model.MaxBreakMinutes)
	settings.SoundEnabled = prefs.soundCheck.Checked
	settings.Theme = themeValue(prefs.themeSelect.Selected)

	prefs.settings = settings
	prefs.UpdateSettings(settings)
	if prefs.onSave != nil {
		prefs.onSave(settings)
	}
	prefs.window.Hide()
}

func parsePositiveInt(value string) (int, bool) {
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed <= 0 {
		return 0, false
	}
	return parsed, true
}

func clampMinutes(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

func themeOption(value string) string {
	switch value {
	case apptheme.Light:
		return "Light"
	case apptheme.Dark:
		return "Dark"
	default:
		return "System"
	}
}

func themeValue(option string) string {
	switch option {
	case "Light":
		return apptheme.Light
	case "Dark":
		return apptheme.Dark
	default:
		return apptheme.System
	}
}
