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

// Package dataset reads benchmark inputs: integers separated by arbitrary
// whitespace, newlines included.
package dataset

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/ajroetker/go-sortbench/bench"
)

// ErrEmpty is returned by Load when the file holds no integers.
var ErrEmpty = errors.New("no data to sort")

// maxTokenSize bounds a single whitespace-delimited token.
const maxTokenSize = 1 << 20

// Parse reads every integer from r. An empty or all-whitespace input yields
// an empty, non-nil slice. A token that is not a base-10 integer is an error
// naming its 1-based position.
func Parse(r io.Reader) ([]int, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxTokenSize)
	sc.Split(bufio.ScanWords)

	data := []int{}
	for pos := 1; sc.Scan(); pos++ {
		v, err := strconv.Atoi(sc.Text())
		if err != nil {
			return nil, fmt.Errorf("token %d %q: %w", pos, sc.Text(), err)
		}
		data = append(data, v)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return data, nil
}

// Load reads the dataset at path. Unreadable files, unparsable tokens and
// empty datasets are all input errors.
func Load(path string) ([]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, bench.Wrap(bench.KindInput, "load dataset", err)
	}
	defer f.Close()

	data, err := Parse(f)
	if err != nil {
		return nil, bench.Wrap(bench.KindInput, "load dataset "+path, err)
	}
	if len(data) == 0 {
		return nil, bench.Wrap(bench.KindInput, "load dataset "+path, ErrEmpty)
	}
	return data, nil
}
