package scheduler

import "time"

// CancelFunc stops a scheduled callback. Calling it after the callback ran is a no-op.
type CancelFunc func()

type Scheduler interface {
	ScheduleAfterDelay(callback func(), delay time.Duration) CancelFunc
}

// TimerScheduler runs callbacks on their own goroutine via time.AfterFunc.
type TimerScheduler struct{}

func NewTimerScheduler() *TimerScheduler {
	return &TimerScheduler{}
}

func (that *TimerScheduler) ScheduleAfterDelay(callback func(), delay time.Duration) CancelFunc {
	timer := time.AfterFunc(delay, callback)

	return func() {
		timer.Stop()
	}
}
