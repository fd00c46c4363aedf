// Package parallel runs independent per-file tasks on a bounded worker pool.
package parallel

import (
	"context"
	"iter"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Config holds configuration for parallel execution.
type Config struct {
	// NumWorkers is the maximum number of tasks running at once.
	// Default: runtime.NumCPU()
	NumWorkers int
}

// DefaultConfig returns a Config sized to the available CPUs.
func DefaultConfig() Config {
	return Config{NumWorkers: runtime.NumCPU()}
}

// TaskFunc processes a single task. A non-nil error is fatal for the
// whole run; per-task failures the run should survive must be handled
// inside the function.
type TaskFunc func(ctx context.Context, task string) error

// ForEach calls fn for every task in tasks, running at most
// config.NumWorkers calls concurrently. Tasks are pulled from the
// sequence only as workers become free.
//
// The first error returned by fn cancels ctx for running tasks, stops
// new tasks from starting and is returned once every started task has
// finished.
func ForEach(ctx context.Context, tasks iter.Seq[string], config Config, fn TaskFunc) error {
	if config.NumWorkers <= 0 {
		config = DefaultConfig()
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(config.NumWorkers)

	for task := range tasks {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			return fn(gctx, task)
		})
	}
	return g.Wait()
}
