package pool

import "context"

// WorkerPool runs an executor over enqueued tasks with bounded concurrency.
type WorkerPool[T any] interface {
	Start(ctx context.Context)
	Enqueue(task *T)
	Close() error
}
