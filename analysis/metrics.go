// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package analysis

import (
	"github.com/prometheus/client_golang/prometheus"
)

// StepCount counts analysis steps by result: "ok", "failed" or "config"
var StepCount = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "gosolu",
		Subsystem: "analysis",
		Name:      "steps_total",
		Help:      "Number of analysis steps by result.",
	},
	[]string{"result"},
)

// DomainChangeCount counts how many times DOF groups, numbering and storage were rebuilt
var DomainChangeCount = prometheus.NewCounter(
	prometheus.CounterOpts{
		Namespace: "gosolu",
		Subsystem: "analysis",
		Name:      "domain_changes_total",
		Help:      "Number of times the analysis model was rebuilt after domain changes.",
	},
)

func init() {
	prometheus.MustRegister(StepCount, DomainChangeCount)
}
