// Package frame runs per-frame callbacks for animated display components.
// Each Task is one cooperative loop that yields between frames and can be
// cancelled synchronously.
package frame

import (
	"context"
	"sync"
	"time"
)

const DefaultInterval = time.Second / 60

type Scheduler struct {
	interval time.Duration
}

func NewScheduler(interval time.Duration) *Scheduler {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Scheduler{interval: interval}
}

func (s *Scheduler) Interval() time.Duration {
	return s.interval
}

// Start calls step once per interval until step returns false, ctx ends or
// the task is cancelled. step always runs on the task's goroutine and
// receives the task's context, which is done once the task is cancelled.
func (s *Scheduler) Start(ctx context.Context, step func(ctx context.Context, now time.Time) bool) *Task {
	ctx, cancel := context.WithCancel(ctx)
	t := &Task{cancel: cancel, done: make(chan struct{})}

	go func() {
		defer close(t.done)
		defer cancel()

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				if ctx.Err() != nil {
					return
				}
				if !step(ctx, now) {
					return
				}
			}
		}
	}()

	return t
}

type Task struct {
	cancel context.CancelFunc
	done   chan struct{}
}

// Cancel stops the task and waits for its goroutine to exit. Cancelling a
// finished or already cancelled task is a no-op. It must not be called from
// inside the task's own step function.
func (t *Task) Cancel() {
	if t == nil {
		return
	}
	t.cancel()
	<-t.done
}

func (t *Task) Done() <-chan struct{} {
	return t.done
}

// Slot holds at most one running task for a display region.
type Slot struct {
	mu   sync.Mutex
	task *Task
}

// Restart cancels the current task, if any, before starting its replacement.
func (s *Slot) Restart(start func() *Task) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.task.Cancel()
	s.task = start()
}

func (s *Slot) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.task.Cancel()
	s.task = nil
}
