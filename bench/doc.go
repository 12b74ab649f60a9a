// Package bench holds the types shared by the sortbench packages: the
// per-algorithm RunResult, the ResultSet collected by the runner, and the
// error kinds reported to the command.
//
// The work itself lives in the sub-packages:
//   - algo: the nine in-place sorting routines and their registry
//   - harness: repeated timing of one algorithm plus summary statistics
//   - runner: one worker per requested algorithm, results collected over a channel
//   - report: deterministic JSON encoding and the results file writer
//   - dataset: parsing of whitespace-separated integer files
//
// # Example Usage
//
//	data, err := dataset.Load("data.txt")
//	ids, err := algo.ParseIDs("quick_sort,merge_sort")
//	rs, err := runner.New(runner.Options{Runs: 10}).Run(ctx, data, ids)
//	path, err := report.NewWriter(report.Options{}).Write(rs)
package bench
