package tray

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnToggleRun   func()
	OnReset       func()
	OnShowWindow  func()
	OnPreferences func()
	OnQuit        func()
}

// Manager handles system tray state.
type Manager struct {
	app         desktop.App
	statusItem  *fyne.MenuItem
	startItem   *fyne.MenuItem
	resetItem   *fyne.MenuItem
	callbacks   Callbacks
	running     bool
	statusLabel string
}

// New creates a tray manager with the provided callbacks.
func New(app desktop.App, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:       app,
		callbacks: callbacks,
	}

	manager.statusItem = fyne.NewMenuItem("25:00 — Pomodoro", nil)
	manager.statusItem.Disabled = true

	manager.startItem = fyne.NewMenuItem("Start", func() {
		if manager.callbacks.OnToggleRun != nil {
			manager.callbacks.OnToggleRun()
		}
	})

	manager.resetItem = fyne.NewMenuItem("Reset", func() {
		if manager.callbacks.OnReset != nil {
			manager.callbacks.OnReset()
		}
	})

	manager.refreshMenu()
	return manager
}

// SetStatus updates the tray status line.
func (manager *Manager) SetStatus(status string) {
	manager.statusLabel = status
	manager.statusItem.Label = status
	manager.refreshMenu()
}

// SetRunning flips the start/pause entry.
func (manager *Manager) SetRunning(running bool) {
	manager.running = running
	if running {
		manager.startItem.Label = "Pause"
	} else {
		manager.startItem.Label = "Start"
	}
	manager.refreshMenu()
}

func (manager *Manager) refreshMenu() {
	if manager.app == nil {
		return
	}
	manager.app.SetSystemTrayMenu(fyne.NewMenu("Pomodoro",
		manager.statusItem,
		manager.startItem,
		manager.resetItem,
		fyne.NewMenuItem("Show window", func() {
			if manager.callbacks.OnShowWindow != nil {
				manager.callbacks.OnShowWindow()
			}
		}),
		fyne.NewMenuItem("Preferences", func() {
			if manager.callbacks.OnPreferences != nil {
				manager.callbacks.OnPreferences()
			}
		}),
		fyne.NewMenuItem("Quit", func() {
			if manager.callbacks.OnQuit != nil {
				manager.callbacks.OnQuit()
			}
		}),
	))
}

// FormatStatus renders the tray status line for a countdown.
func FormatStatus(remaining string, modeLabel string, running bool) string {
	status := fmt.Sprintf("%s — %s", remaining, modeLabel)
	if !running {
		status = fmt.Sprintf("%s (paused)", status)
	}
	return status
}
