package jobs

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

// Scheduler enqueues a recurring job at a fixed interval. The job
// itself runs on the worker pool; the scheduler only ticks.
type Scheduler struct {
	queue    Queue
	interval time.Duration
	makeJob  func() Job
	log      *logrus.Logger
}

func NewScheduler(queue Queue, interval time.Duration, makeJob func() Job, log *logrus.Logger) *Scheduler {
	return &Scheduler{queue: queue, interval: interval, makeJob: makeJob, log: log}
}

// Start runs the tick loop until the context is cancelled.
func (s *Scheduler) Start(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				job := s.makeJob()
				s.log.WithField("job", job.Name()).Info("scheduling recurring job")
				s.queue.Enqueue(job)
			case <-ctx.Done():
				return
			}
		}
	}()
}
