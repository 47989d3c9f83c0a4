package main

import (
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
	"github.com/joho/godotenv"

	"github.com/chikhaoui-amine/Pomodoro/internal/config"
	"github.com/chikhaoui-amine/Pomodoro/internal/core/engine"
	"github.com/chikhaoui-amine/Pomodoro/internal/core/model"
	"github.com/chikhaoui-amine/Pomodoro/internal/platform"
	"github.com/chikhaoui-amine/Pomodoro/internal/storage"
	"github.com/chikhaoui-amine/Pomodoro/internal/storage/bolt"
	"github.com/chikhaoui-amine/Pomodoro/internal/ui"
	"github.com/chikhaoui-amine/Pomodoro/internal/ui/apptheme"
	"github.com/chikhaoui-amine/Pomodoro/internal/ui/notify"
	"github.com/chikhaoui-amine/Pomodoro/internal/ui/preferences"
	"github.com/chikhaoui-amine/Pomodoro/internal/ui/tray"
	"github.com/chikhaoui-amine/Pomodoro/internal/ui/window"
)

const appName = "Pomodoro"

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	logger := config.NewLogger(cfg.LogLevel)
	if err != nil {
		logger.Warn().Err(err).Msg("config load incomplete, using defaults")
	}

	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		logger.Error().Err(err).Msg("another instance is already running")
		return
	}
	defer func() {
		_ = guard.Release()
	}()

	var store storage.Store
	boltStore, err := bolt.Open(cfg.DataFile())
	if err != nil {
		logger.Warn().Err(err).Str("path", cfg.DataFile()).
			Msg("open data file failed, stats will not survive this session")
		store = storage.NewMemoryStore()
	} else {
		store = boltStore
	}
	defer func() {
		_ = store.Close()
	}()

	clock := engine.SystemClock{}
	today := clock.Now().Format(model.DateLayout)
	timerConfig, stats := storage.LoadTimerData(store, today)
	stats = storage.ReconcileStats(store, stats, today, logger)
	soundEnabled := storage.GetBool(store, storage.KeySoundEnabled, true)
	themeName, err := store.Get(storage.KeyTheme)
	if err != nil {
		themeName = apptheme.System
	}

	fyneApp := app.NewWithID("com.chikhaoui.pomodoro")
	apptheme.Apply(fyneApp, themeName)
	notifier := notify.New(fyneApp, soundEnabled)

	var eng *engine.Engine
	var prefsWindow *preferences.Window

	mainWindow := window.New(fyneApp, window.Callbacks{
		OnToggle:      func() { eng.Toggle() },
		OnReset:       func() { eng.Reset() },
		OnSkip:        func() { eng.Skip() },
		OnPreferences: func() { prefsWindow.Show() },
	})

	var trayManager *tray.Manager
	if desktopApp, ok := fyneApp.(desktop.App); ok {
		trayManager = tray.New(desktopApp, tray.Callbacks{
			OnShow:        func() { mainWindow.Show() },
			OnToggle:      func() { eng.Toggle() },
			OnSkip:        func() { eng.Skip() },
			OnPreferences: func() { prefsWindow.Show() },
			OnQuit: func() {
				eng.Stop()
				fyneApp.Quit()
			},
		})
	} else {
		logger.Debug().Msg("system tray unsupported on this platform")
	}

	presenter := ui.NewPresenter(mainWindow, trayManager, notifier)

	eng = engine.New(timerConfig, stats, engine.Deps{
		Clock:     clock,
		Presenter: presenter,
		Saver:     storage.NewTimerStore(store),
		Recorder:  store,
		Logger:    logger,
	}, engine.Options{TickInterval: cfg.TickInterval()})

	prefsWindow = preferences.New(fyneApp, preferences.FromState(timerConfig, soundEnabled, themeName), func(updated preferences.Settings) {
		eng.ApplySettings(updated.WorkMinutes, updated.BreakMinutes)
		notifier.SetEnabled(updated.SoundEnabled)
		if err := storage.PutBool(store, storage.KeySoundEnabled, updated.SoundEnabled); err != nil {
			logger.Warn().Err(err).Msg("save sound preference")
		}
		if err := store.Put(storage.KeyTheme, updated.Theme); err != nil {
			logger.Warn().Err(err).Msg("save theme preference")
		}
		apptheme.Apply(fyneApp, updated.Theme)
	})
	presenter.SetPreferences(prefsWindow)

	watcher := platform.NewWakeWatcher(func(missedSeconds int) {
		logger.Debug().Int("missed_seconds", missedSeconds).Msg("resync after suspend")
		eng.Resync(missedSeconds)
	})
	watcher.Start()
	defer watcher.Stop()

	presenter.Render(eng.Snapshot())
	mainWindow.Show()
	fyneApp.Run()
}
