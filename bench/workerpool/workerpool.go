// Copyright 2025 The go-sortbench Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a fixed-size pool of persistent worker
// goroutines. The runner sizes a pool to the number of requested algorithms
// so that every algorithm gets a dedicated worker and nothing queues.
//
// Usage:
//
//	pool := workerpool.New(len(tasks))
//	defer pool.Close()
//
//	err := pool.Each(len(tasks), func(i int) error {
//	    return tasks[i].Run(ctx)
//	})
package workerpool

import (
	"errors"
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a persistent worker pool. Workers are spawned once at creation and
// reused until Close.
type Pool struct {
	numWorkers int
	workC      chan workItem
	closeOnce  sync.Once
	closed     atomic.Bool
}

// workItem represents a single unit of work and the barrier it reports to.
type workItem struct {
	fn      func()
	barrier *sync.WaitGroup
}

// New creates a new worker pool with the specified number of workers.
// Workers are spawned immediately and persist until Close is called.
// If numWorkers <= 0, uses GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		workC:      make(chan workItem, numWorkers),
	}

	for range numWorkers {
		go p.worker()
	}

	return p
}

// worker is the main loop for each persistent worker goroutine.
func (p *Pool) worker() {
	for item := range p.workC {
		run(item)
	}
}

// run executes one item; the barrier is released even if fn panics so a
// waiting caller is never stranded. The panic itself still propagates.
func run(item workItem) {
	defer item.barrier.Done()
	item.fn()
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close shuts down the worker pool. All pending work will complete.
// Calling Close multiple times is safe.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// Each runs fn(i) for every i in [0, n), one work item per index, and blocks
// until all of them have returned. A failing index does not stop the others.
// The returned error joins every non-nil result in index order.
//
// With n <= NumWorkers every index starts immediately on its own worker.
func (p *Pool) Each(n int, fn func(i int) error) error {
	if n <= 0 {
		return nil
	}

	errs := make([]error, n)

	if p.closed.Load() {
		// Fallback to sequential if pool is closed
		for i := range n {
			errs[i] = fn(i)
		}
		return errors.Join(errs...)
	}

	var wg sync.WaitGroup
	wg.Add(n)
	for i := range n {
		p.workC <- workItem{
			fn: func() {
				errs[i] = fn(i)
			},
			barrier: &wg,
		}
	}
	wg.Wait()

	return errors.Join(errs...)
}

// ParallelForAtomic executes fn for each index in [0, n) using atomic work
// stealing. This provides better load balancing when work per item varies.
// Blocks until all work completes.
//
// fn receives the index to process.
func (p *Pool) ParallelForAtomic(n int, fn func(i int)) {
	if n <= 0 {
		return
	}

	if p.closed.Load() {
		for i := range n {
			fn(i)
		}
		return
	}

	workers := min(p.numWorkers, n)

	if workers == 1 {
		for i := range n {
			fn(i)
		}
		return
	}

	var nextIdx atomic.Int32
	var wg sync.WaitGroup
	wg.Add(workers)

	for range workers {
		p.workC <- workItem{
			fn: func() {
				for {
					idx := int(nextIdx.Add(1)) - 1
					if idx >= n {
						return
					}
					fn(idx)
				}
			},
			barrier: &wg,
		}
	}

	wg.Wait()
}
