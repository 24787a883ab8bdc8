// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mcmp

import "math"

// metaStepResult carries the residuals of the last inner step executed by
// runMetaStep, plus the total number of revives across the whole batch
// (spec.md §4.E).
type metaStepResult struct {
	MaxAbsIncomp    float64
	MaxAbsOmegaDiff float64
	MaxAbsJsDiff    float64
	ReviveCount     int
	Safe            bool
}

// runMetaStep runs stepsInner consecutive kernel steps, returning the
// residuals of the last one and the total revive count across the batch
// (spec.md §4.E, the driver invoked between convergence checks).
func runMetaStep(k *kernel, fields *Fields, hp *Hyperparams, budget *reviveBudget, src Source, stepsInner int) metaStepResult {
	var last StepResult
	totalRevives := 0
	for s := 0; s < stepsInner; s++ {
		last = k.Step(fields, hp, budget, src)
		totalRevives += last.ReviveCount
	}
	return metaStepResult{
		MaxAbsIncomp:    last.MaxAbsIncomp,
		MaxAbsOmegaDiff: last.MaxAbsOmegaDiff,
		MaxAbsJsDiff:    last.MaxAbsJsDiff,
		ReviveCount:     totalRevives,
		Safe:            last.Safe,
	}
}

// outerInnerSplit computes (steps_outer, steps_inner) from maxSteps and
// interval per spec.md §4.E:
//
//	steps_outer = ceil(max_steps / interval)
//	steps_inner = max(1, floor(max_steps / steps_outer))
func outerInnerSplit(maxSteps, interval int) (outer, inner int) {
	outer = int(math.Ceil(float64(maxSteps) / float64(interval)))
	if outer < 1 {
		outer = 1
	}
	inner = maxSteps / outer
	if inner < 1 {
		inner = 1
	}
	return outer, inner
}

// standardConverged implements the "standard" convergence_criterion
// (spec.md §4.E): the last step must have been safe, and all three
// residuals must be strictly below tolerance.
func standardConverged(r metaStepResult, tolerance float64) bool {
	return r.Safe && r.MaxAbsIncomp < tolerance && r.MaxAbsOmegaDiff < tolerance && r.MaxAbsJsDiff < tolerance
}
