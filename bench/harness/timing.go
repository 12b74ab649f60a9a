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

// Package harness times one sorting algorithm over repeated, isolated runs
// and reduces the samples to summary statistics.
package harness

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/ajroetker/go-sortbench/bench"
	"github.com/ajroetker/go-sortbench/bench/algo"
)

// Timing holds the raw samples of one Measure call.
type Timing struct {
	Algorithm algo.ID

	// Times are elapsed seconds per run, in execution order.
	Times []float64
}

// Measure sorts a fresh copy of data with id, runs times, and records the
// elapsed time of each call. data is never modified.
//
// The domain of id is checked once against data before the first run, so a
// violation costs nothing on the clock and fails with a worker error. ctx is
// checked between runs; a run in progress is not interrupted.
func Measure(ctx context.Context, id algo.ID, data []int, runs int) (Timing, error) {
	if runs < 1 {
		return Timing{}, bench.Errorf(bench.KindInput, id.String(), "runs = %d, want >= 1", runs)
	}
	if err := algo.Validate(id, data); err != nil {
		return Timing{}, bench.Wrap(bench.KindWorker, id.String(), err)
	}
	sortFn := id.Func()

	times := make([]float64, 0, runs)
	for range runs {
		if err := ctx.Err(); err != nil {
			return Timing{}, bench.Wrap(bench.KindWorker, id.String(),
				fmt.Errorf("stopped after %d of %d runs: %w", len(times), runs, err))
		}

		work := slices.Clone(data)
		elapsed, err := timeOne(sortFn, work)
		if err != nil {
			return Timing{}, bench.Wrap(bench.KindWorker, id.String(), err)
		}
		times = append(times, elapsed.Seconds())
	}

	return Timing{Algorithm: id, Times: times}, nil
}

// timeOne measures a single call. time.Now carries a monotonic reading and
// time.Since uses it, so wall-clock adjustments do not affect the result.
func timeOne(sortFn func([]int), data []int) (elapsed time.Duration, err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = fmt.Errorf("panic: %w", e)
			} else {
				err = fmt.Errorf("panic: %v", r)
			}
		}
	}()

	start := time.Now()
	sortFn(data)
	elapsed = time.Since(start)
	return elapsed, nil
}

// Result summarizes t into a RunResult.
func (t Timing) Result() (bench.RunResult, error) {
	s, err := Summarize(t.Times)
	if err != nil {
		return bench.RunResult{}, err
	}
	return bench.RunResult{
		Algorithm:    t.Algorithm.String(),
		Runs:         len(t.Times),
		Times:        t.Times,
		Average:      s.Average,
		Min:          s.Min,
		Max:          s.Max,
		StdDeviation: s.StdDeviation,
	}, nil
}
