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

import "slices"

// MergeSort sorts data by recursive halving and a linear merge. Each merge
// copies its two halves into auxiliary buffers sized to the subrange, so
// this is the one routine that is not in-place. Recursion depth is
// ceil(log2(n)).
func MergeSort(data []int) {
	if len(data) < 2 {
		return
	}
	mergeSort(data, 0, len(data)-1)
}

func mergeSort(data []int, left, right int) {
	if left >= right {
		return
	}
	mid := left + (right-left)/2
	mergeSort(data, left, mid)
	mergeSort(data, mid+1, right)
	merge(data, left, mid, right)
}

// merge combines the sorted runs data[left:mid+1] and data[mid+1:right+1].
// Ties take the left element first, which keeps the sort stable.
func merge(data []int, left, mid, right int) {
	l := slices.Clone(data[left : mid+1])
	r := slices.Clone(data[mid+1 : right+1])

	i, j, k := 0, 0, left
	for i < len(l) && j < len(r) {
		if l[i] <= r[j] {
			data[k] = l[i]
			i++
		} else {
			data[k] = r[j]
			j++
		}
		k++
	}
	k += copy(data[k:], l[i:])
	copy(data[k:], r[j:])
}
