package clock

import (
	"sync"
	"time"
)

// Handle controls a single scheduled repeating callback.
// Cancel is idempotent and safe to call from any goroutine.
type Handle interface {
	Cancel()
}

// Scheduler abstracts the periodic-scheduling primitive driving a Countdown,
// so the countdown can be driven by a fake in tests.
type Scheduler interface {
	ScheduleRepeating(fn func(), interval time.Duration) Handle
}

// NewTickerScheduler returns a Scheduler backed by time.Ticker.
func NewTickerScheduler() Scheduler {
	return tickerScheduler{}
}

type tickerScheduler struct{}

func (tickerScheduler) ScheduleRepeating(fn func(), interval time.Duration) Handle {
	if interval <= 0 {
		interval = time.Second
	}
	handle := &tickerHandle{stopCh: make(chan struct{})}
	go handle.run(fn, interval)
	return handle
}

type tickerHandle struct {
	stopOnce sync.Once
	stopCh   chan struct{}
}

func (handle *tickerHandle) run(fn func(), interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-handle.stopCh:
			return
		case <-ticker.C:
			fn()
		}
	}
}

func (handle *tickerHandle) Cancel() {
	handle.stopOnce.Do(func() {
		close(handle.stopCh)
	})
}
