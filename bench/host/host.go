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

// Package host describes the machine a benchmark ran on. Timings are only
// comparable between runs on the same host, so the command logs this
// alongside every benchmark and prints it on request.
package host

import (
	"fmt"
	"runtime"
	"strings"
)

// Info is a snapshot of the host and Go runtime.
type Info struct {
	GOOS       string   `json:"goos"`
	GOARCH     string   `json:"goarch"`
	GoVersion  string   `json:"go_version"`
	NumCPU     int      `json:"num_cpu"`
	GOMAXPROCS int      `json:"gomaxprocs"`
	Features   []string `json:"cpu_features"`
}

// Detect returns the current host information.
func Detect() Info {
	return Info{
		GOOS:       runtime.GOOS,
		GOARCH:     runtime.GOARCH,
		GoVersion:  runtime.Version(),
		NumCPU:     runtime.NumCPU(),
		GOMAXPROCS: runtime.GOMAXPROCS(0),
		Features:   cpuFeatures(),
	}
}

// String returns a one-line summary, e.g.
// "linux/amd64 go1.26.0 8 CPUs (GOMAXPROCS 8) [sse2 avx2 fma]".
func (i Info) String() string {
	return fmt.Sprintf("%s/%s %s %d CPUs (GOMAXPROCS %d) [%s]",
		i.GOOS, i.GOARCH, i.GoVersion, i.NumCPU, i.GOMAXPROCS, strings.Join(i.Features, " "))
}

// flag pairs a feature name with its detection result.
type flag struct {
	name string
	has  bool
}

func names(flags []flag) []string {
	out := make([]string, 0, len(flags))
	for _, f := range flags {
		if f.has {
			out = append(out, f.name)
		}
	}
	return out
}
