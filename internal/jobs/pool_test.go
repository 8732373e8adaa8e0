package jobs

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

func newFastPool() *WorkerPool {
	pool := NewWorkerPool(quietLogger())
	pool.delay = func(int) time.Duration { return time.Millisecond }
	return pool
}

func TestWorkerPool_ExecutesEnqueuedJobs(t *testing.T) {
	pool := newFastPool()
	pool.Start(context.Background(), 2)

	var count atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		pool.Enqueue(NewFunc("count", func(context.Context) error {
			defer wg.Done()
			count.Add(1)
			return nil
		}))
	}
	wg.Wait()
	pool.Close()

	assert.Equal(t, int32(5), count.Load())
}

func TestWorkerPool_RetriesUntilSuccess(t *testing.T) {
	pool := newFastPool()
	pool.Start(context.Background(), 1)

	var attempts atomic.Int32
	done := make(chan struct{})
	pool.Enqueue(NewFunc("flaky", func(context.Context) error {
		if attempts.Add(1) < 3 {
			return errors.New("transient")
		}
		close(done)
		return nil
	}))

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("job never succeeded")
	}
	pool.Close()

	assert.Equal(t, int32(3), attempts.Load())
}

func TestWorkerPool_RetriesExhaustedThenDropped(t *testing.T) {
	pool := newFastPool()
	pool.Start(context.Background(), 1)

	var attempts atomic.Int32
	pool.Enqueue(NewFunc("doomed", func(context.Context) error {
		attempts.Add(1)
		return errors.New("permanent")
	}))
	pool.Close()

	assert.Equal(t, int32(maxAttempts), attempts.Load())
}

func TestWorkerPool_PanicRecoveredAndRetried(t *testing.T) {
	pool := newFastPool()
	pool.Start(context.Background(), 1)

	var attempts atomic.Int32
	done := make(chan struct{})
	pool.Enqueue(NewFunc("panicky", func(context.Context) error {
		if attempts.Add(1) == 1 {
			panic("boom")
		}
		close(done)
		return nil
	}))

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("panicking job never recovered")
	}
	pool.Close()
}

func TestWorkerPool_CloseWaitsForInFlightWork(t *testing.T) {
	pool := newFastPool()
	pool.Start(context.Background(), 1)

	var finished atomic.Bool
	pool.Enqueue(NewFunc("slow", func(context.Context) error {
		time.Sleep(50 * time.Millisecond)
		finished.Store(true)
		return nil
	}))

	pool.Close()

	assert.True(t, finished.Load())
}

func TestWorkerPool_ContextCancelStopsRetries(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	pool := NewWorkerPool(quietLogger())
	pool.delay = func(int) time.Duration { return time.Hour }
	pool.Start(ctx, 1)

	attempted := make(chan struct{})
	var once sync.Once
	pool.Enqueue(NewFunc("stuck", func(context.Context) error {
		once.Do(func() { close(attempted) })
		return errors.New("always fails")
	}))

	<-attempted
	cancel()

	// Close must return promptly: the worker gives up the backoff wait
	// on cancellation instead of sleeping out the hour.
	closed := make(chan struct{})
	go func() {
		pool.Close()
		close(closed)
	}()
	select {
	case <-closed:
	case <-time.After(2 * time.Second):
		t.Fatal("pool did not shut down on context cancel")
	}
}

func TestScheduler_EnqueuesOnTick(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	queue := &countingQueue{fired: make(chan struct{}, 8)}
	scheduler := NewScheduler(queue, 10*time.Millisecond, func() Job {
		return NewFunc("scheduled", func(context.Context) error { return nil })
	}, quietLogger())
	scheduler.Start(ctx)

	select {
	case <-queue.fired:
	case <-time.After(2 * time.Second):
		t.Fatal("scheduler never enqueued")
	}
}

type countingQueue struct {
	fired chan struct{}
}

func (q *countingQueue) Enqueue(job Job) {
	select {
	case q.fired <- struct{}{}:
	default:
	}
}
