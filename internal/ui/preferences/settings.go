package preferences

// Settings defines editable user preferences. Countdown lengths are fixed by
// the clock package and deliberately not configurable here.
type Settings struct {
	DarkMode      bool
	SoundEnabled  bool
	Notifications bool
	Autostart     bool

	WindowWidth  int
	WindowHeight int
}

// DefaultSettings returns the out-of-the-box preferences.
func DefaultSettings() Settings {
	return Settings{
		DarkMode:      false,
		SoundEnabled:  true,
		Notifications: true,
		Autostart:     false,
		WindowWidth:   420,
		WindowHeight:  560,
	}
}
