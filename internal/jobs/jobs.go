// Package jobs defines the background work published by request handlers and
// consumed by a worker, keeping slow pipelines off the HTTP response path.
package jobs

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// SyncJob asks the worker to run the full bank-sync pipeline for one user.
type SyncJob struct {
	JobID      uuid.UUID
	UserID     uuid.UUID
	EnqueuedAt time.Time
}

// Publisher enqueues jobs. Implementations must not block on job execution.
type Publisher interface {
	PublishSync(ctx context.Context, job SyncJob) error
}

// Handler processes one job. A returned error is logged by the consumer; jobs
// are not retried, the next provider webhook re-triggers the pipeline.
type Handler func(ctx context.Context, job SyncJob) error
