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
	"errors"
	"math"

	"github.com/ajroetker/go-sortbench/bench"
)

// ErrNoSamples is returned by Summarize for an empty sample slice.
var ErrNoSamples = errors.New("no samples")

// Summary holds the statistics of a sample slice.
type Summary struct {
	Average      float64
	Min          float64
	Max          float64
	StdDeviation float64
}

// Summarize computes the mean, extremes and sample standard deviation
// (denominator n-1) of times. A single sample has a deviation of 0.
func Summarize(times []float64) (Summary, error) {
	n := len(times)
	if n == 0 {
		return Summary{}, bench.Wrap(bench.KindInput, "summarize", ErrNoSamples)
	}

	s := Summary{Min: times[0], Max: times[0]}
	var sum float64
	for _, v := range times {
		sum += v
		s.Min = min(s.Min, v)
		s.Max = max(s.Max, v)
	}
	s.Average = sum / float64(n)

	if n > 1 {
		var sq float64
		for _, v := range times {
			d := v - s.Average
			sq += d * d
		}
		s.StdDeviation = math.Sqrt(sq / float64(n-1))
	}
	return s, nil
}
