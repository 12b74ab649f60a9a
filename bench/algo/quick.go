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

// span is an inclusive index range [lo, hi] awaiting partitioning.
type span struct {
	lo, hi int
}

// QuickSort sorts data with Lomuto partitioning around the last element of
// each subrange. There is no pivot randomization: sorted, reverse-sorted and
// constant inputs take O(n^2) time.
//
// Pending subranges live on an explicit stack rather than the goroutine
// stack. The smaller side of each partition is handled first and the larger
// one is deferred, which bounds the stack at about log2(n) entries.
func QuickSort(data []int) {
	quickSort(data)
}

// quickSort returns the largest number of pending subranges seen.
func quickSort(data []int) (peak int) {
	if len(data) < 2 {
		return 0
	}

	stack := make([]span, 0, 64)
	stack = append(stack, span{0, len(data) - 1})
	peak = 1

	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		lo, hi := s.lo, s.hi
		for lo < hi {
			p := partitionLomuto(data, lo, hi)
			if p-lo < hi-p {
				stack = append(stack, span{p + 1, hi})
				hi = p - 1
			} else {
				stack = append(stack, span{lo, p - 1})
				lo = p + 1
			}
			peak = max(peak, len(stack))
		}
	}
	return peak
}

// partitionLomuto places data[hi] at its final position p within [lo, hi],
// with smaller elements before it and the rest after it, and returns p.
func partitionLomuto(data []int, lo, hi int) int {
	pivot := data[hi]
	i := lo
	for j := lo; j < hi; j++ {
		if data[j] < pivot {
			swap(data, i, j)
			i++
		}
	}
	swap(data, i, hi)
	return i
}
