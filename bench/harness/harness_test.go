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

package harness

import (
	"context"
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-sortbench/bench"
	"github.com/ajroetker/go-sortbench/bench/algo"
)

func TestSummarizeExample(t *testing.T) {
	s, err := Summarize([]float64{1.0, 2.0, 3.0})
	require.NoError(t, err)

	assert.Equal(t, 2.0, s.Average)
	assert.Equal(t, 1.0, s.Min)
	assert.Equal(t, 3.0, s.Max)
	assert.InDelta(t, 1.0, s.StdDeviation, 1e-12)
}

func TestSummarizeSingle(t *testing.T) {
	s, err := Summarize([]float64{0.25})
	require.NoError(t, err)

	assert.Equal(t, Summary{Average: 0.25, Min: 0.25, Max: 0.25}, s)
}

func TestSummarizeSampleDeviation(t *testing.T) {
	// Population deviation would be 2.0; sample deviation uses n-1.
	s, err := Summarize([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	require.NoError(t, err)

	assert.InDelta(t, 5.0, s.Average, 1e-12)
	assert.InDelta(t, 2.138089935299395, s.StdDeviation, 1e-12)
}

func TestSummarizeEmpty(t *testing.T) {
	_, err := Summarize(nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoSamples)
	assert.ErrorIs(t, err, bench.ErrInput)
}

func TestMeasureCardinality(t *testing.T) {
	data := []int{5, 3, 4, 1, 2}
	for _, runs := range []int{1, 3, 10} {
		for _, id := range algo.IDs() {
			tm, err := Measure(context.Background(), id, data, runs)
			require.NoError(t, err, "%s runs=%d", id, runs)
			require.Len(t, tm.Times, runs, "%s", id)
			for _, v := range tm.Times {
				assert.GreaterOrEqual(t, v, 0.0)
			}
			assert.Equal(t, id, tm.Algorithm)
		}
	}
	assert.Equal(t, []int{5, 3, 4, 1, 2}, data, "reference data must not be modified")
}

func TestMeasureRejectsRuns(t *testing.T) {
	_, err := Measure(context.Background(), algo.Bubble, []int{1}, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, bench.ErrInput)
}

func TestMeasureDomainViolation(t *testing.T) {
	data := []int{3, -1, 2}
	_, err := Measure(context.Background(), algo.Radix, data, 3)
	require.Error(t, err)
	assert.ErrorIs(t, err, bench.ErrWorker)
	assert.ErrorIs(t, err, algo.ErrNegativeValue)
	assert.Equal(t, []int{3, -1, 2}, data)
}

func TestMeasureCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Measure(ctx, algo.Quick, []int{2, 1}, 5)
	require.Error(t, err)
	assert.ErrorIs(t, err, bench.ErrWorker)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestTimeOneRecoversPanic(t *testing.T) {
	errBoom := errors.New("boom")
	_, err := timeOne(func([]int) { panic(errBoom) }, nil)
	assert.ErrorIs(t, err, errBoom)

	_, err = timeOne(func([]int) { panic("plain") }, nil)
	assert.ErrorContains(t, err, "plain")
}

func TestMeasureRunsAreIsolated(t *testing.T) {
	// Every run must see the unsorted reference data: if a run sorted the
	// shared slice, later runs of bubble sort would start from sorted input.
	data := []int{9, 8, 7, 6, 5, 4, 3, 2, 1}
	tm, err := Measure(context.Background(), algo.Bubble, data, 4)
	require.NoError(t, err)
	assert.Len(t, tm.Times, 4)
	assert.True(t, slices.Equal(data, []int{9, 8, 7, 6, 5, 4, 3, 2, 1}))
}

func TestTimingResult(t *testing.T) {
	tm := Timing{Algorithm: algo.Merge, Times: []float64{1, 2, 3}}
	r, err := tm.Result()
	require.NoError(t, err)

	assert.Equal(t, "merge_sort", r.Algorithm)
	assert.Equal(t, 3, r.Runs)
	assert.Equal(t, []float64{1, 2, 3}, r.Times)
	assert.Equal(t, 2.0, r.Average)
	assert.NoError(t, r.Check())
}
