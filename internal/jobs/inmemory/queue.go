// Package inmemory is a single-process job queue backed by a buffered
// channel. It is sufficient for one API instance; a distributed deployment
// would swap in a broker-backed implementation of jobs.Publisher.
package inmemory

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/foldedhq/folded/internal/jobs"
)

var ErrQueueFull = errors.New("job queue is full")

type Queue struct {
	ch chan jobs.SyncJob
	wg sync.WaitGroup

	closeOnce sync.Once
}

func NewQueue(buffer int) *Queue {
	return &Queue{
		ch: make(chan jobs.SyncJob, buffer),
	}
}

// PublishSync enqueues a job without waiting for it to run. A full buffer is
// reported to the caller instead of blocking the request path.
func (q *Queue) PublishSync(_ context.Context, job jobs.SyncJob) error {
	if job.EnqueuedAt.IsZero() {
		job.EnqueuedAt = time.Now()
	}

	select {
	case q.ch <- job:
		return nil
	default:
		return ErrQueueFull
	}
}

// Start launches the worker goroutine. It drains jobs until Close is called
// or ctx is canceled; each job gets its own error handling so a failure never
// touches the request that published it.
func (q *Queue) Start(ctx context.Context, handler jobs.Handler) {
	q.wg.Add(1)

	go func() {
		defer q.wg.Done()

		for {
			select {
			case job, ok := <-q.ch:
				if !ok {
					return
				}

				if err := handler(ctx, job); err != nil {
					slog.Error("background job failed",
						"job_id", job.JobID,
						"user_id", job.UserID,
						"error", err,
					)
				}
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Close stops accepting jobs and waits for the worker to drain.
func (q *Queue) Close() {
	q.closeOnce.Do(func() {
		close(q.ch)
	})
	q.wg.Wait()
}
