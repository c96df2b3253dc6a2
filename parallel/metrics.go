// Copyright 2025 Ekjot Singh
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// See the License for the specific language governing permissions and
// limitations under the License.

package parallel

import "github.com/prometheus/client_golang/prometheus"

var (
	batchesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "belt_executor_batches_total",
		Help: "Batches completed by the parallel executor, by workload label.",
	}, []string{"workload"})

	activeWorkers = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "belt_executor_active_workers",
		Help: "Number of DoPart goroutines currently running.",
	})

	progressRatio = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "belt_executor_progress_ratio",
		Help: "Fraction of batches completed by the most recent Run call, in [0,1].",
	})
)

func init() {
	prometheus.MustRegister(batchesTotal, activeWorkers, progressRatio)
}
