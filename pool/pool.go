// SPDX-License-Identifier: MIT
//
// Package pool is a bounded fork/join worker pool.
//
// A Pool runs batches: Run(ctx, n, task) executes task(ctx, i) for every i in
// [0, n) on at most Workers() goroutines and returns only after every started
// task has returned (the barrier). Tasks within a batch run in no particular
// order. The first task error cancels the context handed to the remaining
// tasks and is returned from Run.
//
// A Pool has no queue that outlives a batch, so a caller that waits for Run to
// return before starting the next batch gets strict batch separation.
package pool

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/hashicorp/go-hclog"
	"golang.org/x/sync/errgroup"
)

// ErrNilTask indicates Run was called without a task function.
var ErrNilTask = errors.New("pool: task is nil")

// Task is one unit of batch work. i is the task index within the batch.
type Task func(ctx context.Context, i int) error

// Option configures a Pool.
type Option func(*Pool)

// WithLogger routes pool diagnostics to l. Panics on nil.
func WithLogger(l hclog.Logger) Option {
	if l == nil {
		panic("pool: WithLogger(nil)")
	}
	return func(p *Pool) { p.logger = l }
}

// Pool bounds the number of goroutines executing a batch.
type Pool struct {
	workers  int
	logger   hclog.Logger
	inflight atomic.Int64
	batches  atomic.Uint64
}

// New creates a Pool running at most workers tasks at once.
// workers ≤ 0 selects runtime.NumCPU().
func New(workers int, opts ...Option) *Pool {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	p := &Pool{
		workers: workers,
		logger:  hclog.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Workers reports the concurrency bound.
func (p *Pool) Workers() int {
	return p.workers
}

// Inflight reports the number of tasks submitted in the current batch that
// have not yet returned.
func (p *Pool) Inflight() int64 {
	return p.inflight.Load()
}

// Batches reports how many batches Run has completed.
func (p *Pool) Batches() uint64 {
	return p.batches.Load()
}

// Run executes task for every index in [0, n) and blocks until all of them
// have returned. n ≤ 0 is a no-op.
func (p *Pool) Run(ctx context.Context, n int, task Task) error {
	if task == nil {
		return ErrNilTask
	}
	if n <= 0 {
		return nil
	}
	start := time.Now()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.workers)
	for i := 0; i < n; i++ {
		p.inflight.Add(1)
		g.Go(func() error {
			defer p.inflight.Add(-1)
			// A sibling already failed; skip the work, the batch is lost anyway.
			if err := gctx.Err(); err != nil {
				return err
			}
			if err := task(gctx, i); err != nil {
				return fmt.Errorf("pool: task %d: %w", i, err)
			}
			return nil
		})
	}
	err := g.Wait()
	p.batches.Add(1)
	p.logger.Trace("batch done", "tasks", n, "workers", p.workers, "elapsed", time.Since(start), "error", err)

	return err
}
