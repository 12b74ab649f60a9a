// Package algo provides the nine classical in-place sorting algorithms that
// sortbench measures, together with a closed registry mapping algorithm
// identifiers to their implementations.
//
// Every routine has the signature func(data []int): it rearranges data into
// non-decreasing order in place, leaves a permutation of the input, and
// returns immediately for slices of length 0 or 1.
//
// # Algorithms
//
//   - BubbleSort, SelectionSort, InsertionSort: quadratic comparison sorts
//   - QuickSort: Lomuto partition around the last element, explicit stack
//   - MergeSort: top-down, auxiliary buffers sized to each merged subrange
//   - HeapSort: bottom-up max-heap with iterative sift-down
//   - CountingSort, RadixSort, BucketSort: distribution sorts
//
// # Integer Domain
//
// The distribution sorts do not accept every []int:
//   - CountingSort handles negative values but allocates one counter per
//     value in [min, max]; ranges wider than MaxCountingRange are rejected.
//   - RadixSort (LSD, base 10) and BucketSort require non-negative values.
//
// Validate reports a domain violation as an error wrapping ErrNegativeValue
// or ErrRangeTooLarge. Calling the raw functions on out-of-domain input
// panics with that same error instead of producing a misordered slice. Sort
// validates before sorting and is what the timing harness uses.
//
// # Example Usage
//
//	id, err := algo.ParseID("merge_sort")
//	if err != nil {
//	    return err
//	}
//	if err := algo.Sort(id, data); err != nil {
//	    return err
//	}
package algo
