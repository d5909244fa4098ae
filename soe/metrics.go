// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package soe

import "github.com/prometheus/client_golang/prometheus"

// collectors
var (
	AssembleCount = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "gosolu",
		Subsystem: "soe",
		Name:      "assemble_total",
		Help:      "Number of AddA calls by system of equations and result.",
	}, []string{"soe", "result"})

	ReallocCount = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "gosolu",
		Subsystem: "soe",
		Name:      "realloc_total",
		Help:      "Number of coefficient storage (re)allocations by system of equations.",
	}, []string{"soe"})

	FactorCount = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "gosolu",
		Subsystem: "soe",
		Name:      "factor_total",
		Help:      "Number of factorizations by system of equations and result.",
	}, []string{"soe", "result"})
)

func init() {
	prometheus.MustRegister(AssembleCount, ReallocCount, FactorCount)
}

// result_label converts an error into a metrics label
func result_label(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
