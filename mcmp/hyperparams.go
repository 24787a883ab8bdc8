// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mcmp

// Hyperparams collects the tunable knobs of the self-consistent iterator
// (spec.md §6). Zero-value Hyperparams is invalid; use DefaultHyperparams.
type Hyperparams struct {
	MaxSteps                int     // upper bound on total inner iterations
	ConvergenceCriterion    string  // only "standard" is defined
	Tolerance               float64 // threshold for all three residuals
	Interval                int     // inner steps per outer convergence check
	Progress                bool    // purely cosmetic; gates progress reporting
	RandomStd               float64 // std-dev of omega re-seed normal draws
	AcceptanceJs            float64 // fraction of J target adopted per step
	AcceptanceOmega         float64 // fraction of omega target adopted per step
	JsStepUpperBound        float64 // cap on per-step |deltaJ|
	KillThreshold           float64 // compartments with J <= this are killed
	ReviveScaler            float64 // multiplier applied to RandomStd on revive
	MaxRevivePerCompartment int     // revive budget seed, multiplied by M
	AdditionalChisShift     float64 // constant added to chi after min-subtraction
}

// DefaultHyperparams returns the defaults from spec.md §6.
func DefaultHyperparams() Hyperparams {
	return Hyperparams{
		MaxSteps:                1_000_000,
		ConvergenceCriterion:    "standard",
		Tolerance:               1e-5,
		Interval:                10_000,
		Progress:                true,
		RandomStd:               5.0,
		AcceptanceJs:            2e-4,
		AcceptanceOmega:         2e-3,
		JsStepUpperBound:        1e-3,
		KillThreshold:           0.0,
		ReviveScaler:            1.0,
		MaxRevivePerCompartment: 16,
		AdditionalChisShift:     1.0,
	}
}
