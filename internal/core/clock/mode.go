package clock

import (
	"errors"
	"time"
)

// ErrInvalidMode indicates an unrecognized countdown mode identifier.
var ErrInvalidMode = errors.New("invalid timer mode")

// Mode names one of the fixed countdown configurations.
type Mode string

const (
	ModePomodoro   Mode = "pomodoro"
	ModeShortBreak Mode = "short_break"
	ModeLongBreak  Mode = "long_break"
)

var modeDurations = map[Mode]time.Duration{
	ModePomodoro:   25 * time.Minute,
	ModeShortBreak: 5 * time.Minute,
	ModeLongBreak:  15 * time.Minute,
}

// ModeDuration returns the fixed countdown length for a mode.
// Unknown modes fail with ErrInvalidMode instead of yielding a zero length.
func ModeDuration(mode Mode) (time.Duration, error) {
	duration, ok := modeDurations[mode]
	if !ok {
		return 0, ErrInvalidMode
	}
	return duration, nil
}

// Label returns a human-readable name for the mode.
func (mode Mode) Label() string {
	switch mode {
	case ModePomodoro:
		return "Pomodoro"
	case ModeShortBreak:
		return "Short Break"
	case ModeLongBreak:
		return "Long Break"
	}
	return string(mode)
}
