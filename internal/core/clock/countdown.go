package clock

import (
	"fmt"
	"sync"
	"time"
)

// Callbacks defines countdown observers. Both fields are nil-guarded.
type Callbacks struct {
	// OnTick receives the remaining and total length once per scheduled
	// firing while running, and once synchronously on every reset.
	OnTick func(remaining, total time.Duration)
	// OnComplete fires exactly once when a countdown reaches zero,
	// naming the mode that finished. The countdown does not auto-advance.
	OnComplete func(mode Mode)
}

// Config contains runtime options for Countdown.
type Config struct {
	TickInterval time.Duration
}

// Countdown is the work/break interval state machine. It owns its scheduling
// handle exclusively; all control goes through Start, Pause, Reset and
// SwitchMode.
type Countdown struct {
	mu         sync.Mutex
	options    Config
	scheduler  Scheduler
	callbacks  Callbacks
	mode       Mode
	remaining  time.Duration
	handle     Handle // nil while idle
	generation uint64
}

// New creates an idle Countdown in pomodoro mode with the full duration
// remaining. A nil scheduler defaults to the ticker-backed one.
func New(scheduler Scheduler, callbacks Callbacks, options Config) *Countdown {
	if options.TickInterval <= 0 {
		options.TickInterval = time.Second
	}
	if scheduler == nil {
		scheduler = NewTickerScheduler()
	}

	return &Countdown{
		options:   options,
		scheduler: scheduler,
		callbacks: callbacks,
		mode:      ModePomodoro,
		remaining: modeDurations[ModePomodoro],
	}
}

// Start schedules the recurring tick. Starting an already-running countdown
// is a no-op.
func (countdown *Countdown) Start() {
	countdown.mu.Lock()
	if countdown.handle != nil {
		countdown.mu.Unlock()
		return
	}
	countdown.generation++
	generation := countdown.generation
	countdown.handle = countdown.scheduler.ScheduleRepeating(func() {
		countdown.tick(generation)
	}, countdown.options.TickInterval)
	countdown.mu.Unlock()
}

// Pause cancels the recurring tick without touching the remaining time.
// Pausing an idle countdown is a no-op.
func (countdown *Countdown) Pause() {
	countdown.mu.Lock()
	countdown.cancelLocked()
	countdown.mu.Unlock()
}

// Reset pauses the countdown, restores the full duration of the current mode
// and synchronously notifies observers so they redraw without waiting for
// the next scheduled tick.
func (countdown *Countdown) Reset() {
	countdown.mu.Lock()
	countdown.cancelLocked()
	total := modeDurations[countdown.mode]
	countdown.remaining = total
	countdown.mu.Unlock()

	countdown.notifyTick(total, total)
}

// SwitchMode changes the current mode and resets. Unknown modes fail with
// ErrInvalidMode and leave the countdown untouched. The cancel, the mode
// assignment and the duration restore happen in one critical section so a
// concurrent tick can never observe the new mode with the old remaining.
func (countdown *Countdown) SwitchMode(mode Mode) error {
	total, err := ModeDuration(mode)
	if err != nil {
		return fmt.Errorf("switch mode %q: %w", mode, err)
	}

	countdown.mu.Lock()
	countdown.cancelLocked()
	countdown.mode = mode
	countdown.remaining = total
	countdown.mu.Unlock()

	countdown.notifyTick(total, total)
	return nil
}

// Mode returns the current mode.
func (countdown *Countdown) Mode() Mode {
	countdown.mu.Lock()
	defer countdown.mu.Unlock()
	return countdown.mode
}

// Remaining returns the time left in the current countdown.
func (countdown *Countdown) Remaining() time.Duration {
	countdown.mu.Lock()
	defer countdown.mu.Unlock()
	return countdown.remaining
}

// IsRunning reports whether a live scheduled tick exists.
func (countdown *Countdown) IsRunning() bool {
	countdown.mu.Lock()
	defer countdown.mu.Unlock()
	return countdown.handle != nil
}

// tick is invoked only by the scheduler. The generation check makes a firing
// queued before a cancel a no-op.
func (countdown *Countdown) tick(generation uint64) {
	countdown.mu.Lock()
	if countdown.handle == nil || generation != countdown.generation {
		countdown.mu.Unlock()
		return
	}

	if countdown.remaining <= 0 {
		countdown.cancelLocked()
		finished := countdown.mode
		countdown.mu.Unlock()

		countdown.notifyComplete(finished)
		return
	}

	countdown.remaining -= time.Second
	remaining := countdown.remaining
	total := modeDurations[countdown.mode]
	countdown.mu.Unlock()

	countdown.notifyTick(remaining, total)
}

func (countdown *Countdown) cancelLocked() {
	if countdown.handle == nil {
		return
	}
	countdown.handle.Cancel()
	countdown.handle = nil
	countdown.generation++
}

func (countdown *Countdown) notifyTick(remaining, total time.Duration) {
	if countdown.callbacks.OnTick != nil {
		countdown.callbacks.OnTick(remaining, total)
	}
}

func (countdown *Countdown) notifyComplete(mode Mode) {
	if countdown.callbacks.OnComplete != nil {
		countdown.callbacks.OnComplete(mode)
	}
}
