package jobs

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	maxAttempts   = 5
	baseDelay     = 1 * time.Second
	queueCapacity = 256
)

// WorkerPool executes queued jobs on a fixed set of workers. A failing
// job is retried with exponential backoff up to maxAttempts; after
// that it is logged as failed and dropped — already-persisted state is
// never rolled back on job failure.
type WorkerPool struct {
	jobs chan Job
	wg   sync.WaitGroup
	log  *logrus.Logger

	delay func(attempt int) time.Duration
}

func NewWorkerPool(log *logrus.Logger) *WorkerPool {
	return &WorkerPool{
		jobs: make(chan Job, queueCapacity),
		log:  log,
		delay: func(attempt int) time.Duration {
			return baseDelay * time.Duration(1<<attempt)
		},
	}
}

// Start launches the workers. They run until the queue is closed or
// the context is cancelled.
func (p *WorkerPool) Start(ctx context.Context, workers int) {
	for i := 0; i < workers; i++ {
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			for {
				select {
				case job, ok := <-p.jobs:
					if !ok {
						return
					}
					p.runWithRetry(ctx, job)
				case <-ctx.Done():
					return
				}
			}
		}()
	}
}

// Enqueue submits a job. Blocks only when the queue buffer is full.
func (p *WorkerPool) Enqueue(job Job) {
	p.jobs <- job
}

// Close stops accepting jobs and waits for in-flight work to finish.
func (p *WorkerPool) Close() {
	close(p.jobs)
	p.wg.Wait()
}

func (p *WorkerPool) runWithRetry(ctx context.Context, job Job) {
	logger := p.log.WithField("job", job.Name())

	for attempt := 0; attempt < maxAttempts; attempt++ {
		err := p.runOnce(ctx, job)
		if err == nil {
			return
		}

		if attempt == maxAttempts-1 {
			logger.WithError(err).Error("job failed, retries exhausted")
			return
		}

		logger.WithError(err).WithField("attempt", attempt+1).Warn("job failed, retrying")
		select {
		case <-time.After(p.delay(attempt)):
		case <-ctx.Done():
			return
		}
	}
}

func (p *WorkerPool) runOnce(ctx context.Context, job Job) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &panicError{value: r}
		}
	}()
	return job.Execute(ctx)
}

type panicError struct {
	value interface{}
}

func (e *panicError) Error() string {
	return fmt.Sprintf("job panicked: %v", e.value)
}
