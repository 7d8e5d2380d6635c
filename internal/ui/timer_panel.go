package ui

import (
	"fmt"
	"image/color"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/Abbas45-cpu/22-Promodoro-Productive-App/internal/core/clock"
)

// TimerCallbacks defines timer panel action handlers.
type TimerCallbacks struct {
	OnToggleRun  func()
	OnReset      func()
	OnSelectMode func(clock.Mode)
}

// TimerPanel renders the countdown readout and its controls.
type TimerPanel struct {
	root         *fyne.Container
	timeText     *canvas.Text
	sessionLabel *widget.Label
	startButton  *widget.Button
	resetButton  *widget.Button
	modeButtons  map[clock.Mode]*widget.Button
	callbacks    TimerCallbacks
}

var timeTextColor = color.NRGBA{R: 25, G: 25, B: 25, A: 255}

// NewTimerPanel builds the timer panel. Callbacks are nil-guarded.
func NewTimerPanel(callbacks TimerCallbacks) *TimerPanel {
	panel := &TimerPanel{
		callbacks:   callbacks,
		modeButtons: make(map[clock.Mode]*widget.Button),
	}

	panel.timeText = canvas.NewText(FormatRemaining(25*time.Minute), timeTextColor)
	panel.timeText.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}
	panel.timeText.TextSize = 56
	panel.timeText.Alignment = fyne.TextAlignCenter

	panel.sessionLabel = widget.NewLabel("Completed today: 0")
	panel.sessionLabel.Alignment = fyne.TextAlignCenter

	for _, mode := range []clock.Mode{clock.ModePomodoro, clock.ModeShortBreak, clock.ModeLongBreak} {
		mode := mode
		button := widget.NewButton(mode.Label(), func() {
			if panel.callbacks.OnSelectMode != nil {
				panel.callbacks.OnSelectMode(mode)
			}
		})
		panel.modeButtons[mode] = button
	}

	panel.startButton = widget.NewButtonWithIcon("Start", theme.MediaPlayIcon(), func() {
		if panel.callbacks.OnToggleRun != nil {
			panel.callbacks.OnToggleRun()
		}
	})
	panel.startButton.Importance = widget.HighImportance

	panel.resetButton = widget.NewButtonWithIcon("Reset", theme.MediaReplayIcon(), func() {
		if panel.callbacks.OnReset != nil {
			panel.callbacks.OnReset()
		}
	})

	modeRow := container.NewGridWithColumns(3,
		panel.modeButtons[clock.ModePomodoro],
		panel.modeButtons[clock.ModeShortBreak],
		panel.modeButtons[clock.ModeLongBreak],
	)
	controls := container.NewHBox(panel.startButton, panel.resetButton)

	panel.root = container.NewVBox(
		modeRow,
		container.NewPadded(panel.timeText),
		container.NewCenter(controls),
		panel.sessionLabel,
	)

	panel.SetMode(clock.ModePomodoro)
	return panel
}

// Object returns the panel's root canvas object.
func (panel *TimerPanel) Object() fyne.CanvasObject {
	return panel.root
}

// SetRemaining updates the readout. Safe only on the UI thread.
func (panel *TimerPanel) SetRemaining(remaining time.Duration) {
	panel.timeText.Text = FormatRemaining(remaining)
	panel.timeText.Refresh()
}

// SetRunning flips the start/pause button.
func (panel *TimerPanel) SetRunning(running bool) {
	if running {
		panel.startButton.SetIcon(theme.MediaPauseIcon())
		panel.startButton.SetText("Pause")
	} else {
		panel.startButton.SetIcon(theme.MediaPlayIcon())
		panel.startButton.SetText("Start")
	}
}

// SetMode highlights the selected mode button.
func (panel *TimerPanel) SetMode(mode clock.Mode) {
	for buttonMode, button := range panel.modeButtons {
		if buttonMode == mode {
			button.Importance = widget.HighImportance
		} else {
			button.Importance = widget.MediumImportance
		}
		button.Refresh()
	}
}

// SetSessionCount updates the completed-pomodoro counter.
func (panel *TimerPanel) SetSessionCount(count int) {
	panel.sessionLabel.SetText(fmt.Sprintf("Completed today: %d", count))
}
