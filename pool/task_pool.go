package pool

import (
	"context"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

const minConcurrency = 1

type Config struct {
	Concurrency int
	Capacity    int
}

// TaskPool is a restartable worker pool backed by an errgroup. Tasks are
// processed by a fixed number of workers; the first executor error cancels
// the pool's context and is returned from Close.
type TaskPool[T any] struct {
	tasks       chan *T
	executor    func(task *T) error
	g           *errgroup.Group
	ctxCancel   func(error)
	concurrency int
	capacity    int
}

func NewTaskPool[T any](executor func(task *T) error, config *Config) (*TaskPool[T], error) {
	if config.Concurrency < minConcurrency {
		return nil, errors.New("number of workers must be greater than 0")
	}

	return &TaskPool[T]{
		tasks:       make(chan *T, config.Capacity),
		executor:    executor,
		g:           new(errgroup.Group),
		concurrency: config.Concurrency,
		capacity:    config.Capacity,
	}, nil
}

func (p *TaskPool[T]) Start(ctx context.Context) {
	p.reset()

	ctx, cancel := context.WithCancelCause(ctx)
	p.ctxCancel = cancel

	for i := 0; i < p.concurrency; i++ {
		p.g.Go(func() error {
			if err := p.listen(ctx); err != nil {
				p.ctxCancel(err)
				return err
			}

			return nil
		})
	}
}

func (p *TaskPool[T]) Enqueue(task *T) {
	p.tasks <- task
}

func (p *TaskPool[T]) PendingTasks() int {
	return len(p.tasks)
}

// Close waits for all enqueued tasks to finish and returns the first
// executor error, if any. The pool may be started again afterwards.
func (p *TaskPool[T]) Close() error {
	close(p.tasks)
	err := p.g.Wait()
	p.ctxCancel(err)
	return err
}

func (p *TaskPool[T]) listen(ctx context.Context) error {
	for task := range p.tasks {
		if err := p.executor(task); err != nil {
			return err
		} else if err := ctx.Err(); err != nil {
			return err
		}
	}

	return nil
}

func (p *TaskPool[T]) reset() {
	p.tasks = make(chan *T, p.capacity)
}
