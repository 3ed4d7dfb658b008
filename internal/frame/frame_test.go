package frame

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestTaskStopsWhenStepReturnsFalse(t *testing.T) {
	var calls int32
	task := NewScheduler(time.Millisecond).Start(context.Background(), func(context.Context, time.Time) bool {
		return atomic.AddInt32(&calls, 1) < 3
	})

	select {
	case <-task.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("task did not finish")
	}

	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestCancelIsSynchronousAndIdempotent(t *testing.T) {
	var calls int32
	task := NewScheduler(time.Millisecond).Start(context.Background(), func(context.Context, time.Time) bool {
		atomic.AddInt32(&calls, 1)
		return true
	})

	time.Sleep(10 * time.Millisecond)
	task.Cancel()
	after := atomic.LoadInt32(&calls)

	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, after, atomic.LoadInt32(&calls))

	task.Cancel()
	var nilTask *Task
	nilTask.Cancel()
}

func TestTaskStopsWithContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	task := NewScheduler(time.Millisecond).Start(ctx, func(context.Context, time.Time) bool { return true })

	cancel()

	select {
	case <-task.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("task did not stop after context cancel")
	}
}

func TestSlotRestartCancelsPrevious(t *testing.T) {
	var slot Slot
	var running int32

	start := func() *Task {
		return NewScheduler(time.Millisecond).Start(context.Background(), func(context.Context, time.Time) bool {
			return true
		})
	}

	slot.Restart(func() *Task {
		atomic.AddInt32(&running, 1)
		return start()
	})
	first := slot.task

	slot.Restart(func() *Task {
		select {
		case <-first.Done():
		default:
			t.Error("previous task still running when replacement started")
		}
		return start()
	})

	slot.Cancel()
	slot.Cancel()
	assert.Equal(t, int32(1), atomic.LoadInt32(&running))
}

func TestNewSchedulerDefaultsInterval(t *testing.T) {
	assert.Equal(t, DefaultInterval, NewScheduler(0).Interval())
}
