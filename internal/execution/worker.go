package execution

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"
)

// WorkerPool fetches content for many paths in parallel
type WorkerPool struct {
	workers   int
	scheduler Scheduler
	progress  Progress
}

// NewWorkerPool creates a new WorkerPool
func NewWorkerPool(workers int, scheduler Scheduler) *WorkerPool {
	if workers <= 0 {
		workers = 1
	}
	if scheduler == nil {
		scheduler = NewRoundRobinScheduler()
	}
	return &WorkerPool{
		workers:   workers,
		scheduler: scheduler,
	}
}

// SetProgress sets the progress reporter for the worker pool
func (wp *WorkerPool) SetProgress(progress Progress) {
	wp.progress = progress
}

// Fetch runs fetch for every path. The returned slice is indexed like paths,
// whatever order the workers finish in. The first error cancels the rest.
func (wp *WorkerPool) Fetch(ctx context.Context, paths []string, fetch FetchFunc) ([]FetchResult, error) {
	results := make([]FetchResult, len(paths))
	if len(paths) == 0 {
		return results, nil
	}

	if wp.progress != nil {
		wp.progress.Start(len(paths))
	}

	var mu sync.Mutex
	g, ctx := errgroup.WithContext(ctx)

	for _, shard := range wp.scheduler.Schedule(len(paths), wp.workers) {
		if len(shard) == 0 {
			continue
		}
		g.Go(func() error {
			for _, i := range shard {
				if err := ctx.Err(); err != nil {
					return err
				}

				content, found, err := fetch(ctx, paths[i])
				if err != nil {
					return fmt.Errorf("fetch %s: %w", paths[i], err)
				}
				results[i] = FetchResult{Path: paths[i], Content: content, Found: found}

				if wp.progress != nil {
					mu.Lock()
					wp.progress.Add(1)
					mu.Unlock()
				}
			}
			return nil
		})
	}

	err := g.Wait()
	if wp.progress != nil {
		wp.progress.Finish()
	}
	if err != nil {
		return nil, err
	}

	return results, nil
}
