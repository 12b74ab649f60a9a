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

package report

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/ajroetker/go-sortbench/bench"
	"github.com/ajroetker/go-sortbench/bench/host"
)

// runDurationBuckets spans 1µs to ~16s in powers of four.
var runDurationBuckets = prometheus.ExponentialBuckets(1e-6, 4, 13)

// Gatherer registers the metrics of rs in a fresh registry. Each algorithm
// contributes its run count, summary gauges and a histogram of run times;
// the host is recorded as an info-style gauge.
func Gatherer(rs *bench.ResultSet, h host.Info) (*prometheus.Registry, error) {
	reg := prometheus.NewRegistry()

	runs := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "sortbench",
		Name:      "runs_total",
		Help:      "Timed runs per algorithm.",
	}, []string{"algorithm"})
	summary := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "sortbench",
		Name:      "run_seconds",
		Help:      "Run time statistics per algorithm.",
	}, []string{"algorithm", "stat"})
	durations := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "sortbench",
		Name:      "run_duration_seconds",
		Help:      "Distribution of individual run times.",
		Buckets:   runDurationBuckets,
	}, []string{"algorithm"})
	hostInfo := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "sortbench",
		Name:      "host_info",
		Help:      "Host the benchmark ran on.",
	}, []string{"goos", "goarch", "go_version", "num_cpu"})

	for _, c := range []prometheus.Collector{runs, summary, durations, hostInfo} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	for _, r := range rs.Sorted() {
		runs.WithLabelValues(r.Algorithm).Add(float64(r.Runs))
		summary.WithLabelValues(r.Algorithm, "average").Set(r.Average)
		summary.WithLabelValues(r.Algorithm, "min").Set(r.Min)
		summary.WithLabelValues(r.Algorithm, "max").Set(r.Max)
		summary.WithLabelValues(r.Algorithm, "std_deviation").Set(r.StdDeviation)
		for _, v := range r.Times {
			durations.WithLabelValues(r.Algorithm).Observe(v)
		}
	}
	hostInfo.WithLabelValues(h.GOOS, h.GOARCH, h.GoVersion, strconv.Itoa(h.NumCPU)).Set(1)

	return reg, nil
}

// WriteMetrics writes the metrics of rs to path in the Prometheus text
// exposition format, for pickup by a node_exporter textfile collector.
func WriteMetrics(path string, rs *bench.ResultSet, h host.Info) error {
	reg, err := Gatherer(rs, h)
	if err != nil {
		return bench.Wrap(bench.KindIO, "metrics", err)
	}
	if err := prometheus.WriteToTextfile(path, reg); err != nil {
		return bench.Wrap(bench.KindIO, "write metrics", err)
	}
	return nil
}
