package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
)

// MainWindow composes the timer and task panels into the widget window.
type MainWindow struct {
	app    fyne.App
	window fyne.Window
	timer  *TimerPanel
	tasks  *TasksPanel
}

// NewMainWindow assembles the main window and its keyboard shortcuts.
func NewMainWindow(app fyne.App, timer *TimerPanel, tasks *TasksPanel, width, height int) *MainWindow {
	window := app.NewWindow("Pomodoro")

	content := container.NewBorder(timer.Object(), nil, nil, nil, tasks.Object())
	window.SetContent(content)
	window.Resize(fyne.NewSize(float32(width), float32(height)))

	// Space toggles the countdown, R resets. The task entry consumes key
	// events while focused, so these only fire when nothing has focus.
	window.Canvas().SetOnTypedKey(func(event *fyne.KeyEvent) {
		switch event.Name {
		case fyne.KeySpace:
			if timer.callbacks.OnToggleRun != nil {
				timer.callbacks.OnToggleRun()
			}
		case fyne.KeyR:
			if timer.callbacks.OnReset != nil {
				timer.callbacks.OnReset()
			}
		}
	})

	return &MainWindow{
		app:    app,
		window: window,
		timer:  timer,
		tasks:  tasks,
	}
}

// Window exposes the underlying Fyne window.
func (main *MainWindow) Window() fyne.Window {
	return main.window
}

// Show displays the window.
func (main *MainWindow) Show() {
	main.window.Show()
}

// ApplyTheme switches between the dark and light variants.
func (main *MainWindow) ApplyTheme(dark bool) {
	variant := theme.VariantLight
	if dark {
		variant = theme.VariantDark
	}
	main.app.Settings().SetTheme(&forcedVariantTheme{
		Theme:   theme.DefaultTheme(),
		variant: variant,
	})
}

// forcedVariantTheme pins the theme variant regardless of the OS setting.
type forcedVariantTheme struct {
	fyne.Theme
	variant fyne.ThemeVariant
}

func (forced *forcedVariantTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	return forced.Theme.Color(name, forced.variant)
}
