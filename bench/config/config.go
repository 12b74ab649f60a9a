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

// Package config loads sortbench settings.
//
// Settings are resolved in increasing precedence: built-in defaults, an
// optional YAML file, SORTBENCH_* environment variables, and finally the
// command-line flags the user set explicitly (applied by the command).
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ajroetker/go-sortbench/bench/report"
	"github.com/ajroetker/go-sortbench/bench/runner"
)

// EnvPrefix prefixes every environment variable read by FromEnv.
const EnvPrefix = "SORTBENCH_"

// Config holds the settings that are not part of a single invocation's
// input (the dataset and the algorithm list).
type Config struct {
	// Runs is the number of timed runs per algorithm.
	Runs int `yaml:"runs"`

	// ResultsDir receives results_<language>.json.
	ResultsDir string `yaml:"results_dir"`

	// Language tags the results file name.
	Language string `yaml:"language"`

	// Timeout bounds each worker; zero disables it.
	Timeout time.Duration `yaml:"timeout"`

	// Verify runs the untimed correctness check in every worker.
	Verify bool `yaml:"verify"`

	// MetricsFile, when set, receives Prometheus text-format metrics.
	MetricsFile string `yaml:"metrics_file"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// LogFormat is text or json.
	LogFormat string `yaml:"log_format"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Runs:       runner.DefaultRuns,
		ResultsDir: report.DefaultDir,
		Language:   report.DefaultLanguage,
		LogLevel:   "info",
		LogFormat:  "text",
	}
}

// Load returns Default overlaid with the YAML file at path and then with
// the environment. An empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("load config %s: %w", path, err)
		}
	}
	if err := FromEnv(&cfg, os.LookupEnv); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	// yaml.v3 decodes time.Duration fields from strings such as "30s".
	return yaml.Unmarshal(data, cfg)
}

// FromEnv overlays variables found through lookup (os.LookupEnv in
// production) onto cfg.
func FromEnv(cfg *Config, lookup func(string) (string, bool)) error {
	var errs []error
	if v, ok := lookup(EnvPrefix + "RUNS"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%sRUNS: %w", EnvPrefix, err))
		} else {
			cfg.Runs = n
		}
	}
	if v, ok := lookup(EnvPrefix + "TIMEOUT"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%sTIMEOUT: %w", EnvPrefix, err))
		} else {
			cfg.Timeout = d
		}
	}
	if v, ok := lookup(EnvPrefix + "VERIFY"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%sVERIFY: %w", EnvPrefix, err))
		} else {
			cfg.Verify = b
		}
	}
	if v, ok := lookup(EnvPrefix + "RESULTS_DIR"); ok {
		cfg.ResultsDir = v
	}
	if v, ok := lookup(EnvPrefix + "LANGUAGE"); ok {
		cfg.Language = v
	}
	if v, ok := lookup(EnvPrefix + "METRICS_FILE"); ok {
		cfg.MetricsFile = v
	}
	if v, ok := lookup(EnvPrefix + "LOG_LEVEL"); ok {
		cfg.LogLevel = v
	}
	if v, ok := lookup(EnvPrefix + "LOG_FORMAT"); ok {
		cfg.LogFormat = v
	}
	return errors.Join(errs...)
}

// Validate reports settings that cannot be used.
func (c Config) Validate() error {
	var errs []error
	if c.Runs < 1 {
		errs = append(errs, fmt.Errorf("runs must be at least 1, got %d", c.Runs))
	}
	if c.Timeout < 0 {
		errs = append(errs, fmt.Errorf("timeout must not be negative, got %s", c.Timeout))
	}
	if c.Language == "" {
		errs = append(errs, errors.New("language must not be empty"))
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("unknown log level %q", c.LogLevel))
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("unknown log format %q", c.LogFormat))
	}
	return errors.Join(errs...)
}
