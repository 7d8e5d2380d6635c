package clock

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestTickerSchedulerFiresAndCancels(t *testing.T) {
	scheduler := NewTickerScheduler()

	var fired atomic.Int64
	handle := scheduler.ScheduleRepeating(func() {
		fired.Add(1)
	}, 10*time.Millisecond)

	deadline := time.Now().Add(2 * time.Second)
	for fired.Load() < 2 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	if fired.Load() < 2 {
		t.Fatal("scheduler never fired")
	}

	handle.Cancel()
	handle.Cancel() // idempotent

	settled := fired.Load()
	time.Sleep(50 * time.Millisecond)
	// One in-flight firing may land after cancel; the ticker must stop after.
	if fired.Load() > settled+1 {
		t.Errorf("scheduler kept firing after cancel: %d -> %d", settled, fired.Load())
	}
}

func TestTickerSchedulerDefaultsInterval(t *testing.T) {
	scheduler := NewTickerScheduler()
	handle := scheduler.ScheduleRepeating(func() {}, 0)
	handle.Cancel()
}
