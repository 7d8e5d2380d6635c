package clock

import (
	"fmt"
	"sync"
	"testing"
	"time"
)

// racingScheduler retains every scheduled callback so test goroutines can
// fire them concurrently with the public operations. Handles never cancel;
// staleness is the countdown's job.
type racingScheduler struct {
	mu  sync.Mutex
	fns []func()
}

func (scheduler *racingScheduler) ScheduleRepeating(fn func(), _ time.Duration) Handle {
	scheduler.mu.Lock()
	scheduler.fns = append(scheduler.fns, fn)
	scheduler.mu.Unlock()
	return racingHandle{}
}

func (scheduler *racingScheduler) fireAll() {
	scheduler.mu.Lock()
	fns := append([]func(){}, scheduler.fns...)
	scheduler.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

type racingHandle struct{}

func (racingHandle) Cancel() {}

// TestSwitchModeAtomicUnderConcurrentTicks hammers the countdown with live
// firings while the main goroutine cycles modes. Every tick must satisfy
// remaining <= total; a mode switch that publishes the new mode before the
// new remaining would pair an old countdown value with the new total.
func TestSwitchModeAtomicUnderConcurrentTicks(t *testing.T) {
	scheduler := &racingScheduler{}

	var violationMu sync.Mutex
	var violation string
	callbacks := Callbacks{
		OnTick: func(remaining, total time.Duration) {
			if remaining > total {
				violationMu.Lock()
				if violation == "" {
					violation = fmt.Sprintf("tick reported remaining %v > total %v", remaining, total)
				}
				violationMu.Unlock()
			}
		},
	}
	countdown := New(scheduler, callbacks, Config{TickInterval: time.Second})

	done := make(chan struct{})
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-done:
					return
				default:
					scheduler.fireAll()
				}
			}
		}()
	}

	modes := []Mode{ModeShortBreak, ModePomodoro, ModeLongBreak}
	for i := 0; i < 2000; i++ {
		if err := countdown.SwitchMode(modes[i%len(modes)]); err != nil {
			t.Fatal(err)
		}
		countdown.Start()
		if i%7 == 0 {
			countdown.Pause()
		}
	}
	close(done)
	wg.Wait()

	violationMu.Lock()
	defer violationMu.Unlock()
	if violation != "" {
		t.Fatal(violation)
	}

	remaining := countdown.Remaining()
	total, err := ModeDuration(countdown.Mode())
	if err != nil {
		t.Fatal(err)
	}
	if remaining < 0 || remaining > total {
		t.Errorf("remaining %v outside [0, %v]", remaining, total)
	}
}
