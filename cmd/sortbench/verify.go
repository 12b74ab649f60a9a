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

package main

import (
	"errors"
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-sortbench/bench"
	"github.com/ajroetker/go-sortbench/bench/algo"
	"github.com/ajroetker/go-sortbench/bench/dataset"
	"github.com/ajroetker/go-sortbench/bench/workerpool"
)

var errVerifyFailed = errors.New("verification failed")

type verifyOutcome struct {
	sorted []int
	err    error
}

func newVerifyCmd() *cobra.Command {
	var (
		file        string
		algorithms  string
		printSorted bool
	)

	cmd := &cobra.Command{
		Use:   "verify --file <path> --algorithms <list>",
		Short: "Check algorithm output against a reference sort, without timing",
		Long: `Sort the dataset once with each algorithm, calling it directly rather than
through the timing harness, and compare the output with a reference sort.

Prints one PASS or FAIL line per algorithm, in the order requested, and
exits with status 1 if any algorithm fails or rejects the input.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ids, err := algo.ParseIDs(algorithms)
			if err != nil {
				return bench.Wrap(bench.KindInput, "algorithms", err)
			}
			data, err := dataset.Load(file)
			if err != nil {
				return err
			}

			outcomes := verify(data, ids)

			out := cmd.OutOrStdout()
			failed := 0
			for i, id := range ids {
				o := outcomes[i]
				switch {
				case o.err != nil:
					failed++
					fmt.Fprintf(out, "%s: FAIL (%v)\n", id, o.err)
				case printSorted:
					fmt.Fprintf(out, "%s: PASS %v\n", id, o.sorted)
				default:
					fmt.Fprintf(out, "%s: PASS\n", id)
				}
			}
			if failed > 0 {
				return bench.Errorf(bench.KindWorker, "verify", "%w: %d of %d algorithms", errVerifyFailed, failed, len(ids))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "input file of whitespace-separated integers (required)")
	cmd.Flags().StringVar(&algorithms, "algorithms", "", "comma-separated algorithms to check (required)")
	cmd.Flags().BoolVar(&printSorted, "print", false, "print each sorted output")
	_ = cmd.MarkFlagRequired("file")
	_ = cmd.MarkFlagRequired("algorithms")
	return cmd
}

// verify sorts a private copy of data with every algorithm in parallel.
// Outcomes are indexed like ids.
func verify(data []int, ids []algo.ID) []verifyOutcome {
	reference := slices.Sorted(slices.Values(data))
	outcomes := make([]verifyOutcome, len(ids))

	pool := workerpool.New(len(ids))
	defer pool.Close()

	pool.ParallelForAtomic(len(ids), func(i int) {
		out := slices.Clone(data)
		if err := algo.Sort(ids[i], out); err != nil {
			outcomes[i].err = err
			return
		}
		outcomes[i].sorted = out
		if !slices.Equal(out, reference) {
			outcomes[i].err = fmt.Errorf("output %v differs from reference", preview(out))
		}
	})
	return outcomes
}

// preview shortens long slices for error messages.
func preview(data []int) []int {
	const limit = 16
	if len(data) <= limit {
		return data
	}
	return data[:limit]
}
