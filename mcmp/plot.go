// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mcmp

import (
	"math"

	"github.com/cpmech/gosl/plt"
)

// PlotConvergence renders the three residual series recorded in
// finder.History() against outer-iteration step count and saves it to
// dirout/fname, in the style of mdl/retention/plot.go: one plt.Plot call per
// series of log10 residuals on a linear axis, then a single plt.Save. This is an optional
// diagnostic aid (SPEC_FULL §6); it is never called from Run itself.
func PlotConvergence(history []Residuals, dirout, fname string) error {
	if len(history) == 0 {
		return nil
	}
	steps := make([]float64, len(history))
	incomp := make([]float64, len(history))
	omegaDiff := make([]float64, len(history))
	jsDiff := make([]float64, len(history))
	for i, r := range history {
		steps[i] = float64(r.Step)
		incomp[i] = log10Floor(r.MaxAbsIncomp)
		omegaDiff[i] = log10Floor(r.MaxAbsOmegaDiff)
		jsDiff[i] = log10Floor(r.MaxAbsJsDiff)
	}
	plt.Plot(steps, incomp, "'r-', label='incompressibility', clip_on=0")
	plt.Plot(steps, omegaDiff, "'b-', label='omega residual', clip_on=0")
	plt.Plot(steps, jsDiff, "'g-', label='Js residual', clip_on=0")
	plt.Gll("step", "log10(residual)", "")
	return plt.Save(dirout, fname)
}

func log10Floor(x float64) float64 {
	if x <= 0 {
		return -100
	}
	return math.Log10(x)
}
