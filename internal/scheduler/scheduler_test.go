package scheduler

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimerScheduler(t *testing.T) {
	t.Run("Runs the callback after the delay", func(t *testing.T) {
		// Given: a timer scheduler
		sched := NewTimerScheduler()
		done := make(chan struct{})

		// When: scheduling a callback
		sched.ScheduleAfterDelay(func() { close(done) }, 10*time.Millisecond)

		// Then: it eventually runs
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("callback did not run")
		}
	})

	t.Run("Cancel prevents the callback", func(t *testing.T) {
		sched := NewTimerScheduler()
		var calls atomic.Int32

		cancel := sched.ScheduleAfterDelay(func() { calls.Add(1) }, 50*time.Millisecond)
		cancel()

		time.Sleep(100 * time.Millisecond)
		assert.Equal(t, int32(0), calls.Load())
	})
}
