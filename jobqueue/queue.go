package jobqueue

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/railmapgen/aarc2rc/geomap"
	"github.com/railmapgen/aarc2rc/rcmap"
)

// ConvertFunc runs the core pipeline once. Queue wraps every call with
// its own 15-second wall clock and a cancellation-aware context.
// convert.Convert also takes variadic options, so it is passed through
// a small closure that calls it with the ctx and map.
type ConvertFunc func(ctx context.Context, m *geomap.Map) (*rcmap.Map, error)

// Queue is a worker pool of fixed size draining a FIFO channel of
// submitted maps, each run through convert once.
type Queue struct {
	convert   ConvertFunc
	wallClock time.Duration

	mu    sync.Mutex
	tasks map[string]*task

	work chan *task

	closeOnce sync.Once
	done      chan struct{}
}

// NewQueue starts workers goroutines, each pulling from an internal
// work channel and running convert on what it receives, with a
// 15-second wall clock per task.
func NewQueue(workers int, convert ConvertFunc) *Queue {
	return newQueue(workers, convert, wallClock)
}

func newQueue(workers int, convert ConvertFunc, clock time.Duration) *Queue {
	if workers < 1 {
		workers = 1
	}
	q := &Queue{
		convert:   convert,
		wallClock: clock,
		tasks:     map[string]*task{},
		work:      make(chan *task, 256),
		done:      make(chan struct{}),
	}
	for i := 0; i < workers; i++ {
		go q.workerLoop()
	}
	return q
}

// Submit enqueues m for conversion and returns its task key
// immediately; the conversion itself runs on a worker goroutine.
func (q *Queue) Submit(m *geomap.Map) string {
	t := &task{key: uuid.NewString(), status: Pending, input: m, createdAt: time.Now()}

	q.mu.Lock()
	q.tasks[t.key] = t
	q.mu.Unlock()

	q.work <- t
	return t.key
}

// Poll returns key's current snapshot, and whether key is known at
// all.
func (q *Queue) Poll(key string) (Snapshot, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	t, ok := q.tasks[key]
	if !ok {
		return Snapshot{}, false
	}
	return Snapshot{Key: t.key, Status: t.status, Result: t.result, Message: t.errMsg}, true
}

// Cancel signals key's cancellation token, if it is still running or
// queued. Returns false if key is unknown or already resolved.
func (q *Queue) Cancel(key string) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	t, ok := q.tasks[key]
	if !ok || t.status >= Completed {
		return false
	}
	t.status = Cancelled
	t.completedAt = time.Now()
	if t.cancel != nil {
		t.cancel()
	}
	return true
}

// PruneOlderThan removes every resolved task (any terminal status)
// whose completion predates the cutoff, mirroring the original
// wrapper's hourly cleanup_old_tasks sweep over a 24-hour retention.
func (q *Queue) PruneOlderThan(cutoff time.Time) {
	q.mu.Lock()
	defer q.mu.Unlock()
	for key, t := range q.tasks {
		if t.status >= Completed && t.completedAt.Before(cutoff) {
			delete(q.tasks, key)
		}
	}
}

// Shutdown signals every worker to exit once its current task finishes
// and returns at once, without waiting for them. Submit still accepts
// tasks afterwards; a task no worker picks up stays Pending. It does
// not cancel running tasks; call Cancel on each key first if that is
// wanted.
func (q *Queue) Shutdown() {
	q.closeOnce.Do(func() {
		close(q.done)
	})
}

func (q *Queue) workerLoop() {
	for {
		select {
		case <-q.done:
			return
		case t := <-q.work:
			q.run(t)
		}
	}
}

func (q *Queue) run(t *task) {
	ctx, cancel := context.WithTimeout(context.Background(), q.wallClock)
	defer cancel()

	q.mu.Lock()
	if t.status == Cancelled {
		q.mu.Unlock()
		return
	}
	t.status = Processing
	t.cancel = cancel
	q.mu.Unlock()

	result, err := q.convert(ctx, t.input)

	q.mu.Lock()
	defer q.mu.Unlock()
	t.completedAt = time.Now()
	switch {
	case t.status == Cancelled:
		// Cancel already recorded the terminal status; a late result
		// from a conversion that noticed ctx.Err() too slowly is
		// discarded rather than overwriting it.
	case err == context.DeadlineExceeded:
		t.status = TimedOut
		t.errMsg = "conversion took longer than 15 seconds"
	case err != nil:
		t.status = Failed
		t.errMsg = err.Error()
	default:
		t.status = Completed
		t.result = result
	}
}
