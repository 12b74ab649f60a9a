// Copyright 2025 go-sortbench Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package runner fans a benchmark out to one worker per requested algorithm
// and collects the results.
//
// Workers share the dataset read-only; each run sorts a private copy made by
// the harness. Finished RunResults are sent over a channel to a single
// collector goroutine, which is the only owner of the ResultSet. Run returns
// once every worker has finished, and returns no results at all if any
// worker failed.
package runner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/ajroetker/go-sortbench/bench"
	"github.com/ajroetker/go-sortbench/bench/algo"
	"github.com/ajroetker/go-sortbench/bench/harness"
	"github.com/ajroetker/go-sortbench/bench/workerpool"
)

// DefaultRuns is the number of timed runs per algorithm when Options.Runs is 0.
const DefaultRuns = 10

// ErrVerify reports an algorithm whose output differs from the reference sort.
var ErrVerify = errors.New("output is not the sorted input")

// Options configures a Runner.
type Options struct {
	// Runs is the number of timed runs per algorithm. Zero means DefaultRuns.
	Runs int

	// Timeout bounds each worker. Zero means no limit. The limit is checked
	// between runs, so a single run may overshoot it.
	Timeout time.Duration

	// Verify sorts one extra, untimed copy per algorithm and fails the worker
	// if the output differs from a reference sort of the dataset.
	Verify bool

	// Logger receives worker progress. Nil means slog.Default().
	Logger *slog.Logger
}

// Runner executes benchmarks. A Runner is safe to reuse sequentially.
type Runner struct {
	opts Options
	log  *slog.Logger

	// observe, when set, receives each verified output. Tests use it to
	// compare concurrent output with a single-threaded sort.
	observe func(id algo.ID, sorted []int)
}

// New returns a Runner for opts.
func New(opts Options) *Runner {
	if opts.Runs == 0 {
		opts.Runs = DefaultRuns
	}
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	return &Runner{opts: opts, log: log}
}

// Run benchmarks every algorithm in ids against data.
//
// Input problems (empty data, no or repeated algorithms, runs < 1) are
// reported before any worker starts. Worker failures are joined and returned
// after all workers have finished; in that case the ResultSet is nil.
func (r *Runner) Run(ctx context.Context, data []int, ids []algo.ID) (*bench.ResultSet, error) {
	if err := r.validate(data, ids); err != nil {
		return nil, err
	}

	var reference []int
	if r.opts.Verify {
		reference = slices.Sorted(slices.Values(data))
	}

	pool := workerpool.New(len(ids))
	defer pool.Close()

	resultC := make(chan bench.RunResult, len(ids))
	collected := make(chan collection, 1)
	go collect(resultC, collected)

	start := time.Now()
	r.log.Info("benchmark started",
		"algorithms", len(ids), "runs", r.opts.Runs, "elements", len(data))

	workErr := pool.Each(len(ids), func(i int) error {
		return r.work(ctx, ids[i], data, reference, resultC)
	})
	close(resultC)
	c := <-collected

	if err := errors.Join(workErr, c.err); err != nil {
		r.log.Error("benchmark failed", "error", err, "elapsed", time.Since(start))
		return nil, err
	}
	r.log.Info("benchmark finished", "results", c.set.Len(), "elapsed", time.Since(start))
	return c.set, nil
}

func (r *Runner) validate(data []int, ids []algo.ID) error {
	if r.opts.Runs < 1 {
		return bench.Errorf(bench.KindInput, "run", "runs = %d, want >= 1", r.opts.Runs)
	}
	if r.opts.Timeout < 0 {
		return bench.Errorf(bench.KindInput, "run", "negative timeout %s", r.opts.Timeout)
	}
	if len(data) == 0 {
		return bench.Errorf(bench.KindInput, "run", "empty dataset")
	}
	if len(ids) == 0 {
		return bench.Errorf(bench.KindInput, "run", "no algorithms requested")
	}
	seen := make(map[algo.ID]bool, len(ids))
	for _, id := range ids {
		if !id.Valid() {
			return bench.Wrap(bench.KindInput, "run", fmt.Errorf("%w: %s", algo.ErrUnknownAlgorithm, id))
		}
		if seen[id] {
			return bench.Errorf(bench.KindInput, "run", "algorithm %s requested twice", id)
		}
		seen[id] = true
	}
	return nil
}

// work is the body of one worker: time, summarize, optionally verify, and
// hand the result to the collector.
func (r *Runner) work(ctx context.Context, id algo.ID, data, reference []int, resultC chan<- bench.RunResult) error {
	if r.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.opts.Timeout)
		defer cancel()
	}

	log := r.log.With("algorithm", id.String())
	log.Debug("worker started")

	tm, err := harness.Measure(ctx, id, data, r.opts.Runs)
	if err != nil {
		log.Error("worker failed", "error", err)
		return err
	}
	res, err := tm.Result()
	if err != nil {
		return bench.Wrap(bench.KindWorker, id.String(), err)
	}

	if reference != nil {
		if err := r.verify(id, data, reference); err != nil {
			log.Error("verification failed", "error", err)
			return err
		}
	}

	log.Info("worker finished",
		"average_time", res.Average, "min_time", res.Min, "max_time", res.Max)
	resultC <- res
	return nil
}

func (r *Runner) verify(id algo.ID, data, reference []int) error {
	out := slices.Clone(data)
	if err := algo.Sort(id, out); err != nil {
		return bench.Wrap(bench.KindWorker, id.String(), err)
	}
	if r.observe != nil {
		r.observe(id, out)
	}
	if !slices.Equal(out, reference) {
		return bench.Wrap(bench.KindWorker, id.String(), ErrVerify)
	}
	return nil
}

type collection struct {
	set *bench.ResultSet
	err error
}

// collect owns the ResultSet until resultC is closed.
func collect(resultC <-chan bench.RunResult, done chan<- collection) {
	set := bench.NewResultSet()
	var errs []error
	for res := range resultC {
		if err := set.Add(res); err != nil {
			errs = append(errs, bench.Wrap(bench.KindWorker, res.Algorithm, err))
		}
	}
	done <- collection{set: set, err: errors.Join(errs...)}
}
