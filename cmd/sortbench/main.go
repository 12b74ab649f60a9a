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

// Command sortbench times classical sorting algorithms on a dataset and
// writes a JSON comparison of the results.
//
// Usage:
//
//	sortbench --file data.txt --algorithms quick_sort,merge_sort
//	sortbench --file data.txt --algorithms bubble_sort --runs 15
//	sortbench verify --file data.txt --algorithms radix_sort --print
//	sortbench algorithms
//	sortbench host
//
// Every requested algorithm runs on its own worker. The results document is
// printed to stdout and saved as ../../resources/results/results_go.json,
// or as results_go.json in the working directory if that location cannot
// be written. Logs go to stderr.
//
// Exit status is 0 on success and 1 on any input, worker or I/O error.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
