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
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/txtar"

	"github.com/ajroetker/go-sortbench/bench/algo"
	"github.com/ajroetker/go-sortbench/bench/dataset"
	"github.com/ajroetker/go-sortbench/bench/report"
)

// Each testdata/*.txtar archive is one command invocation:
//
//	args             arguments, one per line; $WORK is the scratch directory
//	want.error       substring of the expected error; no results may be written
//	want.stdout      lines that must appear in stdout
//	want.file        results path relative to $WORK (default results/results_go.json)
//	want.algorithms  expected algorithm order in the results document
//	want.runs        expected run count of every entry
//	want.metrics     lines that must appear in $WORK/sortbench.prom
//
// Every other file is written into $WORK before the command runs.
func TestScripts(t *testing.T) {
	archives, err := filepath.Glob(filepath.Join("testdata", "*.txtar"))
	require.NoError(t, err)
	require.NotEmpty(t, archives)

	for _, path := range archives {
		name := strings.TrimSuffix(filepath.Base(path), ".txtar")
		t.Run(name, func(t *testing.T) {
			ar, err := txtar.ParseFile(path)
			require.NoError(t, err)
			runScript(t, ar)
		})
	}
}

func runScript(t *testing.T, ar *txtar.Archive) {
	work := t.TempDir()
	expand := func(s string) string { return strings.ReplaceAll(s, "$WORK", work) }

	want := make(map[string]string)
	var args []string
	for _, f := range ar.Files {
		switch {
		case f.Name == "args":
			for _, line := range strings.Split(strings.TrimSpace(string(f.Data)), "\n") {
				args = append(args, expand(line))
			}
		case strings.HasPrefix(f.Name, "want."):
			want[strings.TrimPrefix(f.Name, "want.")] = strings.TrimSpace(string(f.Data))
		default:
			require.NoError(t, os.WriteFile(filepath.Join(work, f.Name), []byte(expand(string(f.Data))), 0o644))
		}
	}

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&stdout, &stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()

	for _, line := range lines(want["stdout"]) {
		assert.Contains(t, stdout.String(), line)
	}

	resultsPath := filepath.Join(work, "results", report.FileName(report.DefaultLanguage))
	if p, ok := want["file"]; ok {
		resultsPath = filepath.Join(work, p)
	}

	if wantErr, ok := want["error"]; ok {
		require.Error(t, err, "stdout:\n%s\nstderr:\n%s", &stdout, &stderr)
		assert.Contains(t, err.Error(), wantErr)
		assert.NoFileExists(t, resultsPath)
		return
	}
	require.NoError(t, err, "stderr:\n%s", &stderr)

	if order, ok := want["algorithms"]; ok {
		checkResults(t, resultsPath, lines(order), want["runs"], stdout.Bytes())
	}
	if metrics, ok := want["metrics"]; ok {
		body, err := os.ReadFile(filepath.Join(work, "sortbench.prom"))
		require.NoError(t, err)
		for _, line := range lines(metrics) {
			assert.Contains(t, string(body), line)
		}
	}
}

func checkResults(t *testing.T, path string, order []string, runs string, stdout []byte) {
	t.Helper()

	doc, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, string(doc)+"\n", string(stdout), "stdout must echo the results document")

	results, err := report.Decode(bytes.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, results, len(order))

	wantRuns, err := strconv.Atoi(runs)
	require.NoError(t, err)
	for i, r := range results {
		assert.Equal(t, order[i], r.Algorithm)
		assert.Equal(t, wantRuns, r.Runs)
		assert.Len(t, r.Times, wantRuns)
		assert.Greater(t, r.Average, 0.0, r.Algorithm)
		assert.LessOrEqual(t, r.Min, r.Max)
		assert.NoError(t, r.Check())
	}
}

func lines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

func TestRootRequiresFlags(t *testing.T) {
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&stdout, &stderr)
	cmd.SetArgs(nil)

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required flag")
}

func TestHostCommand(t *testing.T) {
	var stdout bytes.Buffer
	cmd := newRootCmd(&stdout, &bytes.Buffer{})
	cmd.SetArgs([]string{"host", "--json"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, stdout.String(), `"goarch"`)
	assert.Contains(t, stdout.String(), `"cpu_features"`)
}

func TestHelpListsAlgorithms(t *testing.T) {
	var stdout bytes.Buffer
	cmd := newRootCmd(&stdout, &bytes.Buffer{})
	cmd.SetArgs([]string{"--help"})

	require.NoError(t, cmd.Execute())
	for _, name := range []string{"bubble_sort", "quick_sort", "bucket_sort", "--runs"} {
		assert.Contains(t, stdout.String(), name)
	}
}

func TestVerifyLargeDataset(t *testing.T) {
	work := t.TempDir()
	var b strings.Builder
	for i := range 5000 {
		b.WriteString(strconv.Itoa((i * 7919) % 5003))
		b.WriteByte(' ')
	}
	path := filepath.Join(work, "data.txt")
	require.NoError(t, os.WriteFile(path, []byte(b.String()), 0o644))

	data, err := dataset.Load(path)
	require.NoError(t, err)

	ids := algo.IDs()
	outcomes := verify(data, ids)
	require.Len(t, outcomes, len(ids))
	for i, o := range outcomes {
		assert.NoError(t, o.err, ids[i].String())
		assert.True(t, algo.IsSorted(o.sorted), ids[i].String())
	}
}
