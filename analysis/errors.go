// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package analysis implements the solution strategy: analysis model, constraint handlers,
// numberers, integrators, algorithms and the driver that advances the analysis
package analysis

import (
	"errors"
	"fmt"

	"github.com/cpmech/gosl/io"
)

// ErrConfiguration is returned when a strategy is incomplete or an identifier is unknown
var ErrConfiguration = errors.New("analysis: configuration error")

// config_error prints a diagnostic and returns an error of kind ErrConfiguration
func config_error(msg string, prm ...interface{}) error {
	txt := io.Sf(msg, prm...)
	io.Pfred("ERROR: %s\n", txt)
	return fmt.Errorf("%w: %s", ErrConfiguration, txt)
}

// Params holds named parameters of strategy collaborators; e.g. "alpha" for penalty handlers
type Params map[string]float64

// Get returns the value of parameter name or dflt if it is absent
func (o Params) Get(name string, dflt float64) float64 {
	if v, ok := o[name]; ok {
		return v
	}
	return dflt
}
