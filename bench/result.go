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

package bench

import (
	"fmt"
	"slices"
	"strings"
)

// RunResult is the timing record of one algorithm for one invocation.
// Times holds one entry per run, in seconds, in execution order.
type RunResult struct {
	Algorithm    string    `json:"algorithm"`
	Runs         int       `json:"runs"`
	Times        []float64 `json:"times"`
	Average      float64   `json:"average_time"`
	Min          float64   `json:"min_time"`
	Max          float64   `json:"max_time"`
	StdDeviation float64   `json:"std_deviation"`
}

// Check reports whether r satisfies the RunResult invariants.
func (r RunResult) Check() error {
	if r.Algorithm == "" {
		return fmt.Errorf("run result: empty algorithm")
	}
	if r.Runs < 1 {
		return fmt.Errorf("run result %s: runs = %d, want >= 1", r.Algorithm, r.Runs)
	}
	if len(r.Times) != r.Runs {
		return fmt.Errorf("run result %s: %d samples for %d runs", r.Algorithm, len(r.Times), r.Runs)
	}
	if r.Runs == 1 && r.StdDeviation != 0 {
		return fmt.Errorf("run result %s: std deviation %g for a single run", r.Algorithm, r.StdDeviation)
	}
	return nil
}

// ResultSet collects RunResults keyed by algorithm name.
// It is not safe for concurrent use; the runner confines it to one goroutine.
type ResultSet struct {
	byAlgorithm map[string]RunResult
}

// NewResultSet returns an empty ResultSet.
func NewResultSet() *ResultSet {
	return &ResultSet{byAlgorithm: make(map[string]RunResult)}
}

// Add inserts r. Each algorithm may be added once.
func (s *ResultSet) Add(r RunResult) error {
	if err := r.Check(); err != nil {
		return err
	}
	if _, ok := s.byAlgorithm[r.Algorithm]; ok {
		return fmt.Errorf("duplicate result for %s", r.Algorithm)
	}
	s.byAlgorithm[r.Algorithm] = r
	return nil
}

// Len returns the number of results.
func (s *ResultSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.byAlgorithm)
}

// Get returns the result recorded for algorithm.
func (s *ResultSet) Get(algorithm string) (RunResult, bool) {
	r, ok := s.byAlgorithm[algorithm]
	return r, ok
}

// Sorted returns the results in ascending byte order of the algorithm name.
// This is the canonical order of the results document.
func (s *ResultSet) Sorted() []RunResult {
	if s == nil {
		return nil
	}
	out := make([]RunResult, 0, len(s.byAlgorithm))
	for _, r := range s.byAlgorithm {
		out = append(out, r)
	}
	slices.SortFunc(out, func(a, b RunResult) int {
		return strings.Compare(a.Algorithm, b.Algorithm)
	})
	return out
}
