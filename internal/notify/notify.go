package notify

import (
	"fmt"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"github.com/faiface/beep"
	"github.com/faiface/beep/generators"
	"github.com/faiface/beep/speaker"

	"github.com/Abbas45-cpu/22-Promodoro-Productive-App/internal/core/clock"
	"github.com/Abbas45-cpu/22-Promodoro-Productive-App/internal/logging"
)

const (
	sampleRate     = beep.SampleRate(44100)
	toneFrequency  = 660
	toneDuration   = 400 * time.Millisecond
	breakFrequency = 520
)

var log = logging.Component("notify")

// Notifier delivers completion notifications and chimes. It never propagates
// failures back into the timer; problems are logged and dropped.
type Notifier struct {
	mu            sync.Mutex
	app           fyne.App
	soundEnabled  bool
	notifications bool

	speakerOnce sync.Once
	speakerErr  error
}

// New creates a Notifier bound to the Fyne application.
func New(app fyne.App) *Notifier {
	return &Notifier{
		app:           app,
		soundEnabled:  true,
		notifications: true,
	}
}

// SetPreferences updates what the notifier is allowed to do.
func (notifier *Notifier) SetPreferences(sound, notifications bool) {
	notifier.mu.Lock()
	notifier.soundEnabled = sound
	notifier.notifications = notifications
	notifier.mu.Unlock()
}

// CountdownComplete announces a finished interval.
func (notifier *Notifier) CountdownComplete(mode clock.Mode) {
	notifier.mu.Lock()
	sound := notifier.soundEnabled
	notifications := notifier.notifications
	notifier.mu.Unlock()

	if notifications && notifier.app != nil {
		notifier.app.SendNotification(fyne.NewNotification(
			fmt.Sprintf("%s finished", mode.Label()),
			completionMessage(mode),
		))
	}

	if sound {
		go notifier.playChime(mode)
	}
}

func completionMessage(mode clock.Mode) string {
	if mode == clock.ModePomodoro {
		return "Time for a break."
	}
	return "Back to work."
}

func (notifier *Notifier) playChime(mode clock.Mode) {
	notifier.speakerOnce.Do(func() {
		notifier.speakerErr = speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond))
	})
	if notifier.speakerErr != nil {
		log.WithError(notifier.speakerErr).Debug("speaker unavailable")
		return
	}

	frequency := toneFrequency
	if mode != clock.ModePomodoro {
		frequency = breakFrequency
	}

	tone, err := generators.SinTone(sampleRate, frequency)
	if err != nil {
		log.WithError(err).Warn("generate chime tone")
		return
	}

	done := make(chan struct{})
	speaker.Play(beep.Seq(
		beep.Take(sampleRate.N(toneDuration), tone),
		beep.Callback(func() {
			close(done)
		}),
	))
	<-done
}
