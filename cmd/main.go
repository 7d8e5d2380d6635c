package main

import (
	"os"
	"path/filepath"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"

	"github.com/Abbas45-cpu/22-Promodoro-Productive-App/internal/core/clock"
	"github.com/Abbas45-cpu/22-Promodoro-Productive-App/internal/logging"
	"github.com/Abbas45-cpu/22-Promodoro-Productive-App/internal/notify"
	"github.com/Abbas45-cpu/22-Promodoro-Productive-App/internal/platform"
	"github.com/Abbas45-cpu/22-Promodoro-Productive-App/internal/storage"
	"github.com/Abbas45-cpu/22-Promodoro-Productive-App/internal/ui"
	"github.com/Abbas45-cpu/22-Promodoro-Productive-App/internal/ui/preferences"
	"github.com/Abbas45-cpu/22-Promodoro-Productive-App/internal/ui/tray"
)

const appName = "Pomodoro"

var log = logging.Component("main")

func main() {
	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		log.WithError(err).Error("another instance is already running")
		return
	}
	defer func() {
		_ = guard.Release()
	}()

	settings, err := storage.LoadSettings(appName)
	if err != nil {
		log.WithError(err).Warn("load settings, using defaults")
	}

	store, err := openTaskStore()
	if err != nil {
		log.WithError(err).Error("open task store")
		return
	}
	defer store.Close()

	fyneApp := app.NewWithID("com.pomodoro.widget")

	notifier := notify.New(fyneApp)
	notifier.SetPreferences(settings.SoundEnabled, settings.Notifications)

	ctrl := &controller{
		store:    store,
		notifier: notifier,
	}

	ctrl.timerPanel = ui.NewTimerPanel(ui.TimerCallbacks{
		OnToggleRun:  ctrl.toggleRun,
		OnReset:      ctrl.reset,
		OnSelectMode: ctrl.selectMode,
	})
	ctrl.tasksPanel = ui.NewTasksPanel(ui.TaskCallbacks{
		OnAdd: func(title string) {
			if _, err := store.Add(title); err != nil {
				log.WithError(err).Warn("add task")
			}
			ctrl.refreshTasks()
		},
		OnToggle: func(id int64) {
			if err := store.Toggle(id); err != nil {
				log.WithError(err).Warn("toggle task")
			}
			ctrl.refreshTasks()
		},
		OnDelete: func(id int64) {
			if err := store.Delete(id); err != nil {
				log.WithError(err).Warn("delete task")
			}
			ctrl.refreshTasks()
		},
		OnSetActive: func(id int64) {
			if err := store.SetActive(id); err != nil {
				log.WithError(err).Warn("set active task")
			}
			ctrl.refreshTasks()
		},
	})

	ctrl.countdown = clock.New(nil, clock.Callbacks{
		OnTick:     ctrl.onTick,
		OnComplete: ctrl.onComplete,
	}, clock.Config{TickInterval: time.Second})

	ctrl.mainWindow = ui.NewMainWindow(
		fyneApp,
		ctrl.timerPanel,
		ctrl.tasksPanel,
		settings.WindowWidth,
		settings.WindowHeight,
	)
	ctrl.mainWindow.ApplyTheme(settings.DarkMode)

	prefsWindow := preferences.New(fyneApp, settings, func(updated preferences.Settings) {
		if err := storage.SaveSettings(appName, updated); err != nil {
			log.WithError(err).Warn("save settings")
		}
		notifier.SetPreferences(updated.SoundEnabled, updated.Notifications)
		ctrl.mainWindow.ApplyTheme(updated.DarkMode)
		if updated.Autostart != settings.Autostart {
			if err := platform.SetAutostart(appName, updated.Autostart); err != nil {
				log.WithError(err).Warn("update autostart")
			}
		}
		settings = updated
	})

	if desktopApp, ok := fyneApp.(desktop.App); ok {
		ctrl.tray = tray.New(desktopApp, tray.Callbacks{
			OnToggleRun: ctrl.toggleRun,
			OnReset:     ctrl.reset,
			OnShowWindow: func() {
				ctrl.mainWindow.Show()
			},
			OnPreferences: func() {
				prefsWindow.Show()
			},
			OnQuit: func() {
				ctrl.countdown.Pause()
				fyneApp.Quit()
			},
		})
		// Closing the window keeps the timer alive in the tray.
		ctrl.mainWindow.Window().SetCloseIntercept(func() {
			ctrl.mainWindow.Window().Hide()
		})
	}

	ctrl.refreshTasks()
	ctrl.syncTimer()
	ctrl.refreshSessionCount()

	ctrl.mainWindow.Show()
	fyneApp.Run()
}

func openTaskStore() (*storage.TaskStore, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return nil, err
	}
	appDir := filepath.Join(configDir, appName)
	if err := os.MkdirAll(appDir, 0o755); err != nil {
		return nil, err
	}
	return storage.OpenTaskStore(filepath.Join(appDir, "tasks.db"))
}

// controller wires the countdown, the store and the widgets together. All
// countdown callbacks arrive on scheduler goroutines and are marshalled onto
// the UI thread with fyne.Do.
type controller struct {
	store      *storage.TaskStore
	notifier   *notify.Notifier
	countdown  *clock.Countdown
	timerPanel *ui.TimerPanel
	tasksPanel *ui.TasksPanel
	mainWindow *ui.MainWindow
	tray       *tray.Manager
}

func (ctrl *controller) toggleRun() {
	if ctrl.countdown.IsRunning() {
		ctrl.countdown.Pause()
	} else {
		ctrl.countdown.Start()
	}
	ctrl.syncTimer()
}

func (ctrl *controller) reset() {
	ctrl.countdown.Reset()
	ctrl.syncTimer()
}

// selectMode pauses before switching so a running countdown never jumps
// modes mid-tick.
func (ctrl *controller) selectMode(mode clock.Mode) {
	ctrl.countdown.Pause()
	if err := ctrl.countdown.SwitchMode(mode); err != nil {
		log.WithError(err).Error("switch mode")
		return
	}
	ctrl.syncTimer()
}

func (ctrl *controller) onTick(remaining, total time.Duration) {
	fyne.Do(func() {
		ctrl.timerPanel.SetRemaining(remaining)
		if ctrl.tray != nil {
			ctrl.tray.SetStatus(tray.FormatStatus(
				ui.FormatRemaining(remaining),
				ctrl.countdown.Mode().Label(),
				ctrl.countdown.IsRunning(),
			))
		}
	})
}

func (ctrl *controller) onComplete(mode clock.Mode) {
	log.WithField("mode", mode).Info("countdown complete")

	duration, err := clock.ModeDuration(mode)
	if err == nil {
		endedAt := time.Now()
		if err := ctrl.store.RecordSession(string(mode), endedAt.Add(-duration), endedAt); err != nil {
			log.WithError(err).Warn("record session")
		}
	}

	ctrl.notifier.CountdownComplete(mode)
	ctrl.syncTimer()
	ctrl.refreshSessionCount()
}

// syncTimer pushes the countdown state to the panel and the tray.
func (ctrl *controller) syncTimer() {
	remaining := ctrl.countdown.Remaining()
	mode := ctrl.countdown.Mode()
	running := ctrl.countdown.IsRunning()

	fyne.Do(func() {
		ctrl.timerPanel.SetRemaining(remaining)
		ctrl.timerPanel.SetRunning(running)
		ctrl.timerPanel.SetMode(mode)
		if ctrl.tray != nil {
			ctrl.tray.SetRunning(running)
			ctrl.tray.SetStatus(tray.FormatStatus(
				ui.FormatRemaining(remaining), mode.Label(), running,
			))
		}
	})
}

func (ctrl *controller) refreshTasks() {
	tasks, err := ctrl.store.List()
	if err != nil {
		log.WithError(err).Warn("list tasks")
		return
	}
	completed, err := ctrl.store.CountCompleted()
	if err != nil {
		log.WithError(err).Warn("count completed tasks")
	}

	fyne.Do(func() {
		ctrl.tasksPanel.SetTasks(tasks)
		ctrl.tasksPanel.SetCompletedCount(completed)
	})
}

func (ctrl *controller) refreshSessionCount() {
	count, err := ctrl.store.CountTodayPomodoros()
	if err != nil {
		log.WithError(err).Warn("count today pomodoros")
		return
	}
	fyne.Do(func() {
		ctrl.timerPanel.SetSessionCount(count)
	})
}
