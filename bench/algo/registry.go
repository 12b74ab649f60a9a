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
	"strings"

	"github.com/samber/lo"
)

// ID identifies one of the registered algorithms.
type ID uint8

const (
	Bubble ID = iota
	Selection
	Insertion
	Quick
	Merge
	Heap
	Counting
	Radix
	Bucket

	numIDs
)

// ErrUnknownAlgorithm is returned by ParseID for names outside the registry.
var ErrUnknownAlgorithm = errors.New("unknown algorithm")

// Info describes a registered algorithm.
type Info struct {
	// Name is the registry identifier, e.g. "quick_sort".
	Name string

	// Complexity is a short time-complexity note for listings.
	Complexity string

	// Stable reports whether equal keys keep their relative order.
	Stable bool

	// Domain describes input restrictions, empty when every []int is accepted.
	Domain string
}

type entry struct {
	Info
	sort     func([]int)
	validate func([]int) error
}

// registry is indexed by ID. Keys make a missing entry a zero value that
// TestRegistryComplete catches; a missing trailing entry or an extra one
// fails to compile through the length assertion below.
var registry = [...]entry{
	Bubble: {
		Info: Info{Name: "bubble_sort", Complexity: "O(n^2)", Stable: true},
		sort: BubbleSort,
	},
	Selection: {
		Info: Info{Name: "selection_sort", Complexity: "O(n^2)"},
		sort: SelectionSort,
	},
	Insertion: {
		Info: Info{Name: "insertion_sort", Complexity: "O(n^2)", Stable: true},
		sort: InsertionSort,
	},
	Quick: {
		Info: Info{Name: "quick_sort", Complexity: "O(n log n) average, O(n^2) worst"},
		sort: QuickSort,
	},
	Merge: {
		Info: Info{Name: "merge_sort", Complexity: "O(n log n)", Stable: true},
		sort: MergeSort,
	},
	Heap: {
		Info: Info{Name: "heap_sort", Complexity: "O(n log n)"},
		sort: HeapSort,
	},
	Counting: {
		Info: Info{
			Name:       "counting_sort",
			Complexity: "O(n + k)",
			Stable:     true,
			Domain:     fmt.Sprintf("value range max-min+1 <= %d", MaxCountingRange),
		},
		sort:     CountingSort,
		validate: validateCounting,
	},
	Radix: {
		Info:     Info{Name: "radix_sort", Complexity: "O(d x (n + k))", Stable: true, Domain: "non-negative values"},
		sort:     RadixSort,
		validate: validateNonNegative,
	},
	Bucket: {
		Info:     Info{Name: "bucket_sort", Complexity: "O(n + k) average", Domain: "non-negative values"},
		sort:     BucketSort,
		validate: validateNonNegative,
	},
}

var _ [0]struct{} = [len(registry) - int(numIDs)]struct{}{}

var byName = func() map[string]ID {
	m := make(map[string]ID, numIDs)
	for i := range numIDs {
		m[registry[i].Name] = i
	}
	return m
}()

// String returns the registry name of id.
func (id ID) String() string {
	if !id.Valid() {
		return fmt.Sprintf("algo.ID(%d)", uint8(id))
	}
	return registry[id].Name
}

// Valid reports whether id names a registered algorithm.
func (id ID) Valid() bool {
	return id < numIDs
}

// Info returns the registry metadata for id.
func (id ID) Info() Info {
	if !id.Valid() {
		return Info{Name: id.String()}
	}
	return registry[id].Info
}

// Func returns the raw sorting routine for id, or nil for an invalid id.
func (id ID) Func() func([]int) {
	if !id.Valid() {
		return nil
	}
	return registry[id].sort
}

// IDs returns every registered ID in declaration order.
func IDs() []ID {
	ids := make([]ID, 0, numIDs)
	for i := range numIDs {
		ids = append(ids, i)
	}
	return ids
}

// Names returns every registered name in declaration order.
func Names() []string {
	return lo.Map(IDs(), func(id ID, _ int) string { return id.String() })
}

// ParseID maps a case-sensitive registry name to its ID.
func ParseID(name string) (ID, error) {
	id, ok := byName[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
	return id, nil
}

// ParseIDs parses a comma-separated list of registry names. Surrounding
// whitespace is trimmed and repeated names are collapsed to their first
// occurrence. An empty list or an empty element is an error.
func ParseIDs(list string) ([]ID, error) {
	names := lo.Map(strings.Split(list, ","), func(s string, _ int) string {
		return strings.TrimSpace(s)
	})
	if len(names) == 1 && names[0] == "" {
		return nil, errors.New("no algorithms given")
	}
	ids := make([]ID, 0, len(names))
	for i, name := range names {
		if name == "" {
			return nil, fmt.Errorf("empty algorithm name at position %d", i+1)
		}
		id, err := ParseID(name)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return lo.Uniq(ids), nil
}

// Validate reports whether data is inside id's integer domain.
func Validate(id ID, data []int) error {
	if !id.Valid() {
		return fmt.Errorf("%w: %s", ErrUnknownAlgorithm, id)
	}
	if v := registry[id].validate; v != nil {
		return v(data)
	}
	return nil
}

// Sort validates data for id and sorts it in place. On a domain violation
// data is left untouched.
func Sort(id ID, data []int) error {
	if err := Validate(id, data); err != nil {
		return fmt.Errorf("%s: %w", id, err)
	}
	registry[id].sort(data)
	return nil
}
