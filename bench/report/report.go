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

// Package report turns a ResultSet into the results document and writes it.
//
// The document is a JSON array with one object per algorithm, ordered by
// algorithm name so that identical results always encode to identical
// bytes:
//
//	[
//	    {
//	        "algorithm": "bubble_sort",
//	        "runs": 2,
//	        "times": [
//	            0.0012,
//	            0.0014
//	        ],
//	        "average_time": 0.0013,
//	        "min_time": 0.0012,
//	        "max_time": 0.0014,
//	        "std_deviation": 0.00014142135623730948
//	    }
//	]
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ajroetker/go-sortbench/bench"
)

const (
	// DefaultDir is where results land relative to the working directory:
	// the shared results folder of the multi-language benchmark tree.
	DefaultDir = "../../resources/results"

	// DefaultLanguage tags the results file name.
	DefaultLanguage = "go"

	indent = "    "
)

// Encode returns the results document for rs.
func Encode(rs *bench.ResultSet) ([]byte, error) {
	results := rs.Sorted()
	if results == nil {
		results = []bench.RunResult{}
	}
	for _, r := range results {
		if err := r.Check(); err != nil {
			return nil, err
		}
	}
	return json.MarshalIndent(results, "", indent)
}

// Decode parses a results document. It is the inverse of Encode.
func Decode(r io.Reader) ([]bench.RunResult, error) {
	var results []bench.RunResult
	if err := json.NewDecoder(r).Decode(&results); err != nil {
		return nil, fmt.Errorf("decode results: %w", err)
	}
	return results, nil
}

// FileName returns the results file name for language, e.g. "results_go.json".
func FileName(language string) string {
	return "results_" + language + ".json"
}

// Options configures a Writer.
type Options struct {
	// Dir is the results directory, created if missing. Empty means DefaultDir.
	Dir string

	// FallbackDir receives the file when Dir cannot be written. Empty means
	// the working directory.
	FallbackDir string

	// Language tags the file name. Empty means DefaultLanguage.
	Language string

	// Echo receives a copy of the document. Nil means os.Stdout.
	Echo io.Writer

	// Logger reports the fallback. Nil means slog.Default().
	Logger *slog.Logger
}

// Writer writes results documents.
type Writer struct {
	opts Options
	log  *slog.Logger
}

// NewWriter returns a Writer for opts.
func NewWriter(opts Options) *Writer {
	if opts.Dir == "" {
		opts.Dir = DefaultDir
	}
	if opts.Language == "" {
		opts.Language = DefaultLanguage
	}
	if opts.Echo == nil {
		opts.Echo = os.Stdout
	}
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	return &Writer{opts: opts, log: log}
}

// Path returns the primary results file path.
func (w *Writer) Path() string {
	return filepath.Join(w.opts.Dir, FileName(w.opts.Language))
}

// Write encodes rs, echoes it, and stores it at Path. If that fails the
// document is written once more to the same file name in FallbackDir; a
// second failure is an IO error. Write returns the path actually written.
func (w *Writer) Write(rs *bench.ResultSet) (string, error) {
	doc, err := Encode(rs)
	if err != nil {
		return "", bench.Wrap(bench.KindIO, "encode results", err)
	}

	if _, err := fmt.Fprintf(w.opts.Echo, "%s\n", doc); err != nil {
		return "", bench.Wrap(bench.KindIO, "echo results", err)
	}

	primary := w.Path()
	err = writeFile(primary, doc)
	if err == nil {
		return primary, nil
	}

	fallback := filepath.Join(w.opts.FallbackDir, FileName(w.opts.Language))
	w.log.Warn("could not write results, using fallback",
		"path", primary, "fallback", fallback, "error", err)
	if ferr := os.WriteFile(fallback, doc, 0o644); ferr != nil {
		return "", bench.Wrap(bench.KindIO, "write results", errors.Join(err, ferr))
	}
	return fallback, nil
}

func writeFile(path string, doc []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, doc, 0o644)
}
