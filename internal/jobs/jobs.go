package jobs

import "context"

// Job is one unit of background work. Jobs run on the worker pool,
// never on the request path, and are retried on failure.
type Job interface {
	Name() string
	Execute(ctx context.Context) error
}

// Queue accepts jobs for asynchronous execution.
type Queue interface {
	Enqueue(job Job)
}

// Func adapts a closure into a Job.
type Func struct {
	JobName string
	Run     func(ctx context.Context) error
}

func NewFunc(name string, run func(ctx context.Context) error) Func {
	return Func{JobName: name, Run: run}
}

func (f Func) Name() string                      { return f.JobName }
func (f Func) Execute(ctx context.Context) error { return f.Run(ctx) }
