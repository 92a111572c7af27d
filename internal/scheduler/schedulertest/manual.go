package schedulertest

import (
	"sync"
	"time"

	"github.com/rocketscienceinc/tictactoe-learner/internal/scheduler"
)

// Task is a callback held by ManualScheduler.
type Task struct {
	Delay    time.Duration
	callback func()
	canceled bool
}

var _ scheduler.Scheduler = (*ManualScheduler)(nil)

// ManualScheduler queues callbacks until Fire or RunAll is called, so tests can
// drive a controller step by step.
type ManualScheduler struct {
	mu    sync.Mutex
	tasks []*Task
}

func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

func (that *ManualScheduler) ScheduleAfterDelay(callback func(), delay time.Duration) scheduler.CancelFunc {
	that.mu.Lock()
	defer that.mu.Unlock()

	task := &Task{Delay: delay, callback: callback}
	that.tasks = append(that.tasks, task)

	return func() {
		that.mu.Lock()
		defer that.mu.Unlock()

		task.canceled = true
	}
}

// Pending returns the tasks that were neither fired nor canceled.
func (that *ManualScheduler) Pending() []*Task {
	that.mu.Lock()
	defer that.mu.Unlock()

	pending := make([]*Task, 0, len(that.tasks))
	for _, task := range that.tasks {
		if !task.canceled {
			pending = append(pending, task)
		}
	}

	return pending
}

// Fire runs task even if it was canceled, which simulates a timer that already
// started firing when the cancel arrived.
func (that *ManualScheduler) Fire(task *Task) {
	that.mu.Lock()
	that.remove(task)
	that.mu.Unlock()

	task.callback()
}

// RunAll fires every pending task in scheduling order, including tasks queued
// by the callbacks themselves. It returns the number of callbacks run.
func (that *ManualScheduler) RunAll() int {
	fired := 0
	for {
		pending := that.Pending()
		if len(pending) == 0 {
			return fired
		}

		that.Fire(pending[0])
		fired++
	}
}

func (that *ManualScheduler) remove(task *Task) {
	for i, queued := range that.tasks {
		if queued == task {
			that.tasks = append(that.tasks[:i], that.tasks[i+1:]...)
			return
		}
	}
}
