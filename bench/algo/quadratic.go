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

// BubbleSort sorts data with repeated adjacent-swap passes. Each pass moves
// the largest remaining element to the end, so the scanned range shrinks by
// one per pass, and a pass without swaps ends the sort early.
func BubbleSort(data []int) {
	n := len(data)
	if n < 2 {
		return
	}

	for swapped := true; swapped; n-- {
		swapped = false
		for i := 1; i < n; i++ {
			if data[i-1] > data[i] {
				swap(data, i-1, i)
				swapped = true
			}
		}
	}
}

// SelectionSort repeatedly selects the minimum of the unsorted suffix and
// swaps it into place.
func SelectionSort(data []int) {
	n := len(data)
	if n < 2 {
		return
	}

	for i := 0; i < n-1; i++ {
		minIdx := i
		for j := i + 1; j < n; j++ {
			if data[j] < data[minIdx] {
				minIdx = j
			}
		}
		swap(data, i, minIdx)
	}
}

// InsertionSort grows a sorted prefix, shifting larger elements right to
// make room for each new key.
func InsertionSort(data []int) {
	for i := 1; i < len(data); i++ {
		key := data[i]
		j := i - 1
		for j >= 0 && data[j] > key {
			data[j+1] = data[j]
			j--
		}
		data[j+1] = key
	}
}
