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
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-sortbench/bench"
	"github.com/ajroetker/go-sortbench/bench/algo"
	"github.com/ajroetker/go-sortbench/bench/config"
	"github.com/ajroetker/go-sortbench/bench/dataset"
	"github.com/ajroetker/go-sortbench/bench/host"
	"github.com/ajroetker/go-sortbench/bench/report"
	"github.com/ajroetker/go-sortbench/bench/runner"
)

// rootFlags holds the flags of the benchmark command. Settings shared with
// the config file only override it when set on the command line.
type rootFlags struct {
	file       string
	algorithms string
	configPath string

	runs        int
	timeout     time.Duration
	verify      bool
	resultsDir  string
	language    string
	metricsFile string
	logLevel    string
	logFormat   string
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	f := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "sortbench --file <path> --algorithms <list> [--runs <n>]",
		Short: "Benchmark classical sorting algorithms",
		Long: `Time sorting algorithms over repeated runs on one dataset.

The dataset is a text file of integers separated by whitespace. Each
requested algorithm runs on its own worker and sorts a fresh copy of the
dataset on every run. The results document lists one entry per algorithm,
ordered by name, with every run time and their average, minimum, maximum
and sample standard deviation, all in seconds.

Available algorithms:
` + algorithmTable() + `
Settings are read from the defaults, then --config, then SORTBENCH_*
environment variables, then the flags below.`,
		Example: `  sortbench --file data.txt --algorithms quick_sort,merge_sort
  sortbench --file data.txt --algorithms bubble_sort --runs 15
  sortbench --file data.txt --algorithms quick_sort,merge_sort,heap_sort --runs 5`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBenchmark(cmd, f)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.Flags()
	flags.StringVar(&f.file, "file", "", "input file of whitespace-separated integers (required)")
	flags.StringVar(&f.algorithms, "algorithms", "", "comma-separated algorithms to run (required)")
	flags.IntVar(&f.runs, "runs", runner.DefaultRuns, "timed runs per algorithm")
	flags.StringVar(&f.configPath, "config", "", "YAML settings file")
	flags.DurationVar(&f.timeout, "timeout", 0, "per-algorithm time limit, checked between runs (0 disables)")
	flags.BoolVar(&f.verify, "verify", false, "check every algorithm's output against a reference sort")
	flags.StringVar(&f.resultsDir, "results-dir", report.DefaultDir, "directory for the results file")
	flags.StringVar(&f.language, "language", report.DefaultLanguage, "language tag in the results file name")
	flags.StringVar(&f.metricsFile, "metrics-file", "", "also write Prometheus text-format metrics to this file")
	flags.StringVar(&f.logLevel, "log-level", "info", "log level: debug, info, warn, error")
	flags.StringVar(&f.logFormat, "log-format", "text", "log format: text or json")
	_ = cmd.MarkFlagRequired("file")
	_ = cmd.MarkFlagRequired("algorithms")

	cmd.AddCommand(
		newVerifyCmd(),
		newAlgorithmsCmd(),
		newHostCmd(),
	)
	return cmd
}

// settings resolves the configuration for cmd: defaults, config file,
// environment, then explicitly set flags.
func (f *rootFlags) settings(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return cfg, bench.Wrap(bench.KindInput, "config", err)
	}

	changed := cmd.Flags().Changed
	if changed("runs") {
		cfg.Runs = f.runs
	}
	if changed("timeout") {
		cfg.Timeout = f.timeout
	}
	if changed("verify") {
		cfg.Verify = f.verify
	}
	if changed("results-dir") {
		cfg.ResultsDir = f.resultsDir
	}
	if changed("language") {
		cfg.Language = f.language
	}
	if changed("metrics-file") {
		cfg.MetricsFile = f.metricsFile
	}
	if changed("log-level") {
		cfg.LogLevel = f.logLevel
	}
	if changed("log-format") {
		cfg.LogFormat = f.logFormat
	}

	if err := cfg.Validate(); err != nil {
		return cfg, bench.Wrap(bench.KindInput, "settings", err)
	}
	return cfg, nil
}

func runBenchmark(cmd *cobra.Command, f *rootFlags) error {
	cfg, err := f.settings(cmd)
	if err != nil {
		return err
	}
	log := newLogger(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)

	// Input is validated in full before any worker starts.
	ids, err := algo.ParseIDs(f.algorithms)
	if err != nil {
		return bench.Wrap(bench.KindInput, "algorithms", err)
	}
	data, err := dataset.Load(f.file)
	if err != nil {
		return err
	}

	h := host.Detect()
	log.Info("host", "platform", h.GOOS+"/"+h.GOARCH, "go", h.GoVersion,
		"cpus", h.NumCPU, "features", strings.Join(h.Features, ","))

	rs, err := runner.New(runner.Options{
		Runs:    cfg.Runs,
		Timeout: cfg.Timeout,
		Verify:  cfg.Verify,
		Logger:  log,
	}).Run(cmd.Context(), data, ids)
	if err != nil {
		return err
	}

	path, err := report.NewWriter(report.Options{
		Dir:      cfg.ResultsDir,
		Language: cfg.Language,
		Echo:     cmd.OutOrStdout(),
		Logger:   log,
	}).Write(rs)
	if err != nil {
		return err
	}
	log.Info("sorting completed", "results", path)

	if cfg.MetricsFile != "" {
		if err := report.WriteMetrics(cfg.MetricsFile, rs, h); err != nil {
			return err
		}
		log.Info("metrics written", "path", cfg.MetricsFile)
	}
	return nil
}

// algorithmTable lists the registry for help output.
func algorithmTable() string {
	var b strings.Builder
	tw := tabwriter.NewWriter(&b, 0, 4, 2, ' ', 0)
	for _, id := range algo.IDs() {
		info := id.Info()
		fmt.Fprintf(tw, "  %s\t%s\t%s\n", info.Name, info.Complexity, info.Domain)
	}
	tw.Flush()
	return b.String()
}
