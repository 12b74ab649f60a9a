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

package algo

import (
	"errors"
	"fmt"
	"math"
	"slices"
)

// MaxCountingRange is the widest value range (max-min+1) CountingSort will
// allocate counters for.
const MaxCountingRange = 1 << 24

var (
	// ErrNegativeValue reports a negative value passed to RadixSort or BucketSort.
	ErrNegativeValue = errors.New("negative value outside the algorithm's domain")

	// ErrRangeTooLarge reports a value range too wide for CountingSort.
	ErrRangeTooLarge = errors.New("value range too large")
)

// CountingSort builds a histogram indexed by value-min and rewrites data
// from it. Negative values are supported; memory grows with max-min+1, and
// ranges above MaxCountingRange panic with an error wrapping ErrRangeTooLarge.
func CountingSort(data []int) {
	if len(data) < 2 {
		return
	}

	lo, hi := minMax(data)
	k, err := countingRange(lo, hi)
	if err != nil {
		panic(err)
	}

	count := make([]int, k)
	for _, v := range data {
		count[v-lo]++
	}

	i := 0
	for off, c := range count {
		for ; c > 0; c-- {
			data[i] = lo + off
			i++
		}
	}
}

// countingRange returns hi-lo+1, computed without signed overflow.
func countingRange(lo, hi int) (int, error) {
	width := uint64(hi) - uint64(lo)
	if width >= MaxCountingRange {
		return 0, fmt.Errorf("%w: [%d, %d] spans more than %d values", ErrRangeTooLarge, lo, hi, MaxCountingRange)
	}
	return int(width) + 1, nil
}

// RadixSort is an LSD radix sort in base 10. Each pass is a stable counting
// sort keyed by the digit (value/exp)%10, for exp = 1, 10, 100, ... up to the
// largest value. Values must be non-negative; a negative value panics with
// an error wrapping ErrNegativeValue.
func RadixSort(data []int) {
	if len(data) < 2 {
		return
	}
	if err := validateNonNegative(data); err != nil {
		panic(err)
	}

	maxVal := slices.Max(data)
	out := make([]int, len(data))

	for exp := 1; maxVal/exp > 0; exp *= 10 {
		var count [10]int
		for _, v := range data {
			count[(v/exp)%10]++
		}
		for d := 1; d < 10; d++ {
			count[d] += count[d-1]
		}
		for i := len(data) - 1; i >= 0; i-- {
			d := (data[i] / exp) % 10
			count[d]--
			out[count[d]] = data[i]
		}
		copy(data, out)

		// No digit left above exp; stop before exp*10 can overflow.
		if exp > maxVal/10 {
			break
		}
	}
}

// BucketSort distributes values into floor(sqrt(n)) buckets by
// value/(max+1)*buckets, sorts each bucket and concatenates them back into
// data. Bucket balance depends only on max, so skewed inputs crowd a few
// buckets. Values must be non-negative; a negative value panics with an
// error wrapping ErrNegativeValue.
func BucketSort(data []int) {
	n := len(data)
	if n < 2 {
		return
	}
	if err := validateNonNegative(data); err != nil {
		panic(err)
	}

	maxVal := slices.Max(data)
	k := max(int(math.Sqrt(float64(n))), 1)
	buckets := make([][]int, k)

	scale := float64(k) / (float64(maxVal) + 1)
	for _, v := range data {
		idx := min(int(float64(v)*scale), k-1)
		buckets[idx] = append(buckets[idx], v)
	}

	i := 0
	for _, b := range buckets {
		if len(b) > 1 {
			slices.Sort(b)
		}
		i += copy(data[i:], b)
	}
}

func validateNonNegative(data []int) error {
	for i, v := range data {
		if v < 0 {
			return fmt.Errorf("%w: data[%d] = %d", ErrNegativeValue, i, v)
		}
	}
	return nil
}

func validateCounting(data []int) error {
	if len(data) < 2 {
		return nil
	}
	_, err := countingRange(minMax(data))
	return err
}
