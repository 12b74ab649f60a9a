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
	"slices"
	"testing"
)

func TestRegistryComplete(t *testing.T) {
	seen := make(map[string]bool)
	for _, id := range IDs() {
		info := id.Info()
		if info.Name == "" || info.Complexity == "" {
			t.Errorf("ID %d has incomplete registry entry: %+v", id, info)
		}
		if id.Func() == nil {
			t.Errorf("%s has no sort function", id)
		}
		if seen[info.Name] {
			t.Errorf("duplicate registry name %q", info.Name)
		}
		seen[info.Name] = true
	}
	if len(seen) != 9 {
		t.Errorf("registry has %d algorithms, want 9", len(seen))
	}
}

func TestNames(t *testing.T) {
	want := []string{
		"bubble_sort", "selection_sort", "insertion_sort",
		"quick_sort", "merge_sort", "heap_sort",
		"counting_sort", "radix_sort", "bucket_sort",
	}
	if got := Names(); !slices.Equal(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
}

func TestParseID(t *testing.T) {
	for _, id := range IDs() {
		got, err := ParseID(id.String())
		if err != nil {
			t.Fatalf("ParseID(%q): %v", id, err)
		}
		if got != id {
			t.Errorf("ParseID(%q) = %v, want %v", id, got, id)
		}
	}

	for _, name := range []string{"", "Bubble_Sort", "bogo_sort", "quick_sort "} {
		if _, err := ParseID(name); !errors.Is(err, ErrUnknownAlgorithm) {
			t.Errorf("ParseID(%q) error = %v, want ErrUnknownAlgorithm", name, err)
		}
	}
}

func TestParseIDs(t *testing.T) {
	tests := []struct {
		in      string
		want    []ID
		wantErr bool
	}{
		{in: "bubble_sort", want: []ID{Bubble}},
		{in: "bubble_sort,quick_sort", want: []ID{Bubble, Quick}},
		{in: " merge_sort , heap_sort ", want: []ID{Merge, Heap}},
		{in: "radix_sort,radix_sort,bucket_sort", want: []ID{Radix, Bucket}},
		{in: "", wantErr: true},
		{in: "bubble_sort,", wantErr: true},
		{in: "bubble_sort,,quick_sort", wantErr: true},
		{in: "bubble_sort,shell_sort", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseIDs(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseIDs(%q) = %v, want error", tt.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseIDs(%q): %v", tt.in, err)
			continue
		}
		if !slices.Equal(got, tt.want) {
			t.Errorf("ParseIDs(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestInvalidID(t *testing.T) {
	id := ID(200)
	if id.Valid() {
		t.Fatal("ID(200).Valid() = true")
	}
	if id.Func() != nil {
		t.Error("ID(200).Func() != nil")
	}
	if got := id.String(); got != "algo.ID(200)" {
		t.Errorf("ID(200).String() = %q", got)
	}
	if err := Sort(id, []int{2, 1}); !errors.Is(err, ErrUnknownAlgorithm) {
		t.Errorf("Sort(ID(200)) error = %v, want ErrUnknownAlgorithm", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		id   ID
		data []int
		want error
	}{
		{Bubble, []int{-5, 3}, nil},
		{Counting, []int{-5, 3}, nil},
		{Counting, []int{0, MaxCountingRange}, ErrRangeTooLarge},
		{Counting, []int{MaxCountingRange}, nil},
		{Radix, []int{0, 3, 9}, nil},
		{Radix, []int{3, -1}, ErrNegativeValue},
		{Bucket, []int{-1}, ErrNegativeValue},
		{Bucket, nil, nil},
	}
	for _, tt := range tests {
		err := Validate(tt.id, tt.data)
		if tt.want == nil {
			if err != nil {
				t.Errorf("Validate(%s, %v) = %v, want nil", tt.id, tt.data, err)
			}
			continue
		}
		if !errors.Is(err, tt.want) {
			t.Errorf("Validate(%s, %v) = %v, want %v", tt.id, tt.data, err, tt.want)
		}
	}
}

func TestSortRejectsWithoutMutating(t *testing.T) {
	data := []int{4, -2, 7}
	err := Sort(Radix, data)
	if !errors.Is(err, ErrNegativeValue) {
		t.Fatalf("Sort(radix_sort) error = %v, want ErrNegativeValue", err)
	}
	if !slices.Equal(data, []int{4, -2, 7}) {
		t.Errorf("rejected input was modified: %v", data)
	}
}

func TestSortEndToEndExample(t *testing.T) {
	for _, id := range []ID{Bubble, Quick} {
		data := []int{5, 3, 4, 1, 2}
		if err := Sort(id, data); err != nil {
			t.Fatalf("Sort(%s): %v", id, err)
		}
		if want := []int{1, 2, 3, 4, 5}; !slices.Equal(data, want) {
			t.Errorf("Sort(%s) = %v, want %v", id, data, want)
		}
	}
}
