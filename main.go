// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosolu/analysis"
	"github.com/cpmech/gosolu/inp"
	"github.com/cpmech/gosolu/out"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v", err)
			io.Pf("See location of error below:\n")
			chk.Verbose = true
			for i := 5; i > 3; i-- {
				chk.CallerInfo(i)
			}
		}
	}()

	// read input parameters
	fnamepath, _ := io.ArgToFilename(0, "", ".sim", true)
	verbose := io.ArgToBool(1, true)
	showMetrics := io.ArgToBool(2, false)

	// message
	if verbose {
		io.PfGreen("\nGosolu -- solution strategies and systems of equations\n")
		io.Pf("Use of this source code is governed by a BSD-style\n")
		io.Pf("license that can be found in the LICENSE file.\n")
		io.Pf("\n  filename path = %v\n  show messages = %v\n  show metrics  = %v\n\n", fnamepath, verbose, showMetrics)
	}

	// simulation data
	sim, err := inp.ReadSim(fnamepath)
	if err != nil {
		chk.Panic("%v", err)
	}
	sim.Data.ShowMsg = sim.Data.ShowMsg || verbose

	// run simulation
	drv, err := analysis.NewAnalysis(sim)
	if err != nil {
		chk.Panic("cannot set up analysis:\n%v", err)
	}
	rec := out.NewRecorder()
	drv.AddRecorder(rec)
	status := drv.Analyze(sim.Control.Nsteps, sim.Control.Dt)

	// save results of committed steps
	fnpath, err := rec.Save(sim.Data.DirOut, sim.Key)
	if err != nil {
		chk.Panic("%v", err)
	}
	if verbose {
		io.Pf("> results saved to %s\n", fnpath)
	}
	if status < 0 {
		chk.Panic("analysis failed with status %d", status)
	}

	// results
	if verbose {
		d := drv.Method().Domain
		io.Pf("\n> λ = %g\n", d.CommittedLambda())
		for _, id := range d.SortedNodeIds() {
			io.Pf("> node %4d : u = %v\n", id, d.Node(id).U)
		}
	}

	// metrics
	if showMetrics {
		mfs, err := prometheus.DefaultGatherer.Gather()
		if err != nil {
			chk.Panic("cannot gather metrics:\n%v", err)
		}
		for _, mf := range mfs {
			if !strings.HasPrefix(mf.GetName(), "gosolu_") {
				continue
			}
			for _, m := range mf.GetMetric() {
				var labels []string
				for _, l := range m.GetLabel() {
					labels = append(labels, l.GetName()+"="+l.GetValue())
				}
				io.Pforan("%s{%s} %g\n", mf.GetName(), strings.Join(labels, ","), m.GetCounter().GetValue())
			}
		}
	}
}
