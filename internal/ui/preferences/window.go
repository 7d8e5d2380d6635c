package preferences

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// Window handles the preferences UI.
type Window struct {
	window        fyne.Window
	settings      Settings
	onSave        func(Settings)
	darkMode      *widget.Check
	sound         *widget.Check
	notifications *widget.Check
	autostart     *widget.Check
}

// New creates a preferences window. onSave receives the updated settings when
// the user confirms.
func New(app fyne.App, settings Settings, onSave func(Settings)) *Window {
	window := app.NewWindow("Pomodoro Settings")

	darkMode := widget.NewCheck("Dark theme", nil)
	darkMode.SetChecked(settings.DarkMode)

	sound := widget.NewCheck("Play sound on completion", nil)
	sound.SetChecked(settings.SoundEnabled)

	notifications := widget.NewCheck("Desktop notifications", nil)
	notifications.SetChecked(settings.Notifications)

	autostart := widget.NewCheck("Launch at login", nil)
	autostart.SetChecked(settings.Autostart)

	form := container.NewVBox(
		widget.NewLabelWithStyle("Appearance", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		darkMode,
		widget.NewLabelWithStyle("Alerts", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		sound,
		notifications,
		widget.NewLabelWithStyle("System", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		autostart,
	)

	prefs := &Window{
		window:        window,
		settings:      settings,
		onSave:        onSave,
		darkMode:      darkMode,
		sound:         sound,
		notifications: notifications,
		autostart:     autostart,
	}

	saveButton := widget.NewButton("Save", func() {
		prefs.save()
	})
	cancelButton := widget.NewButton("Cancel", func() {
		prefs.window.Hide()
	})
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	window.SetContent(container.NewBorder(nil, buttons, nil, nil, form))
	window.Resize(fyne.NewSize(360, 320))
	window.SetCloseIntercept(func() {
		window.Hide()
	})

	return prefs
}

func (prefs *Window) save() {
	prefs.settings.DarkMode = prefs.darkMode.Checked
	prefs.settings.SoundEnabled = prefs.sound.Checked
	prefs.settings.Notifications = prefs.notifications.Checked
	prefs.settings.Autostart = prefs.autostart.Checked

	if prefs.onSave != nil {
		prefs.onSave(prefs.settings)
	}
	prefs.window.Hide()
}

// Show displays the preferences window.
func (prefs *Window) Show() {
	prefs.window.Show()
}
