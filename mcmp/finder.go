// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mcmp implements the self-consistent compartment iterator that
// finds coexisting phases of an incompressible multicomponent Flory-Huggins
// mixture: compartment state (B), the iteration kernel (C), the
// kill/revive lifecycle (D), the meta-step driver (E), the finder façade
// (F) and clustering (G) from spec.md §2.
package mcmp

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/google/uuid"

	"github.com/cpmech/florymcmp/freeenergy"
)

// Finder owns (chi, phiMeans, sizes, M, random source, hyperparameters) and
// the mutable field state across multiple Run calls (spec.md §3
// "Lifecycle", §4.F).
type Finder struct {
	nc, m int
	chi   [][]float64 // caller's symmetric interaction matrix, unshifted
	phi0  []float64   // phi-bar, target average composition
	sizes []float64   // nu, relative molecular sizes

	hp     Hyperparams
	src    Source
	budget *reviveBudget

	fields *Fields
	kern   *kernel

	clusterTolerance float64
	history          []Residuals
	lastDiagnostics  Diagnostics
}

// Residuals is one row of the convergence history (spec.md §4.E), recorded
// per outer iteration for diagnostics/plotting (SPEC_FULL §6).
type Residuals struct {
	Step            int
	MaxAbsIncomp    float64
	MaxAbsOmegaDiff float64
	MaxAbsJsDiff    float64
}

// Diagnostics mirrors spec.md §6's diagnostics mapping.
type Diagnostics struct {
	RunID            string
	Steps            int
	MaxAbsIncomp     float64
	MaxAbsOmegaDiff  float64
	MaxAbsJsDiff     float64
	ReviveCountLeft  int
	Phis             [][]float64 // final (Nc,M)
	Js               []float64   // final (M)
	Seed             int64
	ConvergenceFound bool
}

// New constructs a Finder for a system of nc components over m
// compartments. sizes may be nil, defaulting to all-ones (spec.md §6). seed
// == 0 seeds the random source from the wall clock.
func New(chi [][]float64, phiMeans, sizes []float64, m int, seed int64, hp Hyperparams) (*Finder, error) {
	nc := len(chi)
	if err := validateChi(chi); err != nil {
		return nil, err
	}
	if len(phiMeans) != nc {
		return nil, newShapeError("phiMeans has length %d, want %d", len(phiMeans), nc)
	}
	if err := validatePhiMeans(phiMeans); err != nil {
		return nil, err
	}
	if m < 1 {
		return nil, newShapeError("m must be >= 1, got %d", m)
	}
	if sizes == nil {
		sizes = make([]float64, nc)
		for i := range sizes {
			sizes[i] = 1
		}
	} else if len(sizes) != nc {
		return nil, newShapeError("sizes has length %d, want %d", len(sizes), nc)
	}

	warnInputs(phiMeans, sizes)

	f := &Finder{
		nc:               nc,
		chi:              copyMatrix(chi),
		phi0:             append([]float64(nil), phiMeans...),
		sizes:            append([]float64(nil), sizes...),
		hp:               hp,
		src:              NewSource(seed),
		m:                m,
		clusterTolerance: defaultClusterTolerance,
		fields:           NewFields(nc, m),
	}
	f.budget = newReviveBudget(hp.MaxRevivePerCompartment, m)
	f.ReinitRandom()
	return f, nil
}

func validateChi(chi [][]float64) error {
	nc := len(chi)
	if nc == 0 {
		return newShapeError("chi must not be empty")
	}
	for i, row := range chi {
		if len(row) != nc {
			return newShapeError("chi must be square: row %d has length %d, want %d", i, len(row), nc)
		}
	}
	return nil
}

// validatePhiMeans rejects a negative phi-bar entry as a fatal
// VolumeFractionError (spec.md §7); this is a hard error, unlike the
// sum-to-one and sizes checks in warnInputs, which are merely advisory.
func validatePhiMeans(phiMeans []float64) error {
	for i, v := range phiMeans {
		if v < 0 {
			return newVolumeFractionError("phiMeans[%d] = %v is negative", i, v)
		}
	}
	return nil
}

func warnInputs(phiMeans, sizes []float64) {
	sum := 0.0
	for _, v := range phiMeans {
		sum += v
	}
	if math.Abs(sum-1.0) > 1e-12 {
		io.Pfyel("warning: sum(phiMeans) = %v, expected 1.0; iteration may never converge\n", sum)
	}
	for i, s := range sizes {
		if s <= 0 {
			io.Pfyel("warning: sizes[%d] = %v is non-positive; iteration will probably fail\n", i, s)
		}
	}
}

func copyMatrix(a [][]float64) [][]float64 {
	out := make([][]float64, len(a))
	for i, row := range a {
		out[i] = append([]float64(nil), row...)
	}
	return out
}

// SetChi replaces the interaction matrix. Per spec.md §3/§9, this resets
// the revive budget but never touches omega/J/phi.
func (o *Finder) SetChi(chi [][]float64) error {
	if err := validateChi(chi); err != nil {
		return err
	}
	if len(chi) != o.nc {
		return newShapeError("chi has %d components, finder was built for %d", len(chi), o.nc)
	}
	o.chi = copyMatrix(chi)
	o.resetBudget()
	return nil
}

// SetPhiMeans replaces phi-bar. Resets the revive budget; leaves fields
// untouched (spec.md §3/§9).
func (o *Finder) SetPhiMeans(phiMeans []float64) error {
	if len(phiMeans) != o.nc {
		return newShapeError("phiMeans has length %d, want %d", len(phiMeans), o.nc)
	}
	if err := validatePhiMeans(phiMeans); err != nil {
		return err
	}
	o.phi0 = append([]float64(nil), phiMeans...)
	warnInputs(o.phi0, o.sizes)
	o.resetBudget()
	return nil
}

// SetSizes replaces nu. Resets the revive budget; leaves fields untouched
// (spec.md §3/§9).
func (o *Finder) SetSizes(sizes []float64) error {
	if len(sizes) != o.nc {
		return newShapeError("sizes has length %d, want %d", len(sizes), o.nc)
	}
	o.sizes = append([]float64(nil), sizes...)
	warnInputs(o.phi0, o.sizes)
	o.resetBudget()
	return nil
}

// SetClusterTolerance overrides the componentwise clustering tolerance
// (spec.md §9, default 1e-2).
func (o *Finder) SetClusterTolerance(tol float64) { o.clusterTolerance = tol }

func (o *Finder) resetBudget() {
	o.budget = newReviveBudget(o.hp.MaxRevivePerCompartment, o.m)
}

// ReinitRandom rewrites omega with independent Normal(0, RandomStd) draws,
// sets J to all ones, and resets the revive budget (reinitialize_random,
// spec.md §3 "Explicit re-seeding").
func (o *Finder) ReinitRandom() {
	o.fields.FillOmegaNormal(func() float64 { return o.src.Normal(0, o.hp.RandomStd) })
	o.resetBudget()
}

// ReinitFromOmegas assigns omega directly and resets J/budget
// (reinitialize_from_omegas; spec.md §9 notes the original source's
// conversion here was a bug and the correct semantics is "assign omega
// directly").
func (o *Finder) ReinitFromOmegas(omega [][]float64) error {
	if err := o.fields.SetOmega(omega); err != nil {
		return err
	}
	o.resetBudget()
	return nil
}

// ReinitFromPhis inverts a caller-supplied composition into omega and
// resets J/budget (reinitialize_from_phis, spec.md §8 property 8).
func (o *Finder) ReinitFromPhis(phi [][]float64) error {
	for i, row := range phi {
		for k, v := range row {
			if v <= 0 {
				return newVolumeFractionError("phi[%d][%d] = %v is non-positive; re-seed requires strictly positive composition", i, k, v)
			}
		}
	}
	entropy, err := freeenergy.NewIncompressibleEntropy(o.sizes, o.phi0)
	if err != nil {
		return err
	}
	if err := o.fields.SetPhi(phi, entropy.OmegaFromPhi); err != nil {
		return err
	}
	o.resetBudget()
	return nil
}

// ReviveBudgetLeft returns the number of revives still available.
func (o *Finder) ReviveBudgetLeft() int { return o.budget.left }

// RunOptions overrides per-call knobs of Run (spec.md §4.F "run(**overrides)").
type RunOptions struct {
	MaxSteps  *int
	Tolerance *float64
	Interval  *int
	Progress  *bool
}

// ProgressReporter receives residual updates once per outer iteration. A
// nil reporter is valid and means no progress calls are made, keeping
// reporting purely cosmetic (spec.md §9).
type ProgressReporter interface {
	Update(steps int, r Residuals)
	Close()
}

// Run executes the self-consistent iterator until convergence or max_steps
// is exhausted, then clusters the result (spec.md §4.F, §4.E, §4.G).
// reporter may be nil.
func (o *Finder) Run(opts RunOptions, reporter ProgressReporter) (phaseVolumes []float64, phaseCompositions [][]float64, err error) {
	maxSteps := o.hp.MaxSteps
	if opts.MaxSteps != nil {
		maxSteps = *opts.MaxSteps
	}
	tolerance := o.hp.Tolerance
	if opts.Tolerance != nil {
		tolerance = *opts.Tolerance
	}
	interval := o.hp.Interval
	if opts.Interval != nil {
		interval = *opts.Interval
	}
	showProgress := o.hp.Progress
	if opts.Progress != nil {
		showProgress = *opts.Progress
	}
	if !showProgress {
		reporter = nil
	}

	if o.hp.ConvergenceCriterion != "standard" {
		return nil, nil, newConfigError("unknown convergence_criterion %q", o.hp.ConvergenceCriterion)
	}

	chiShifted, err := freeenergy.NewChiInteraction(o.chi)
	if err != nil {
		return nil, nil, err
	}
	chiShifted = chiShifted.Shifted(o.hp.AdditionalChisShift)
	entropy, err := freeenergy.NewIncompressibleEntropy(o.sizes, o.phi0)
	if err != nil {
		return nil, nil, err
	}

	o.kern = newKernel(chiShifted, entropy, o.phi0, o.nc, o.m)

	stepsOuter, stepsInner := outerInnerSplit(maxSteps, interval)
	o.history = o.history[:0]

	steps := 0
	var last metaStepResult
	converged := false
	for outerIdx := 0; outerIdx < stepsOuter; outerIdx++ {
		last = runMetaStep(o.kern, o.fields, &o.hp, o.budget, o.src, stepsInner)
		steps += stepsInner

		res := Residuals{Step: steps, MaxAbsIncomp: last.MaxAbsIncomp, MaxAbsOmegaDiff: last.MaxAbsOmegaDiff, MaxAbsJsDiff: last.MaxAbsJsDiff}
		o.history = append(o.history, res)
		if reporter != nil {
			reporter.Update(steps, res)
		}

		if standardConverged(last, tolerance) {
			converged = true
			break
		}
	}
	if reporter != nil {
		reporter.Close()
	}

	finalJ := append([]float64(nil), o.fields.J...)
	finalPhi := copyMatrix(o.fields.Phi)
	finalCopyRevive(&Fields{nc: o.nc, m: o.m, J: finalJ, Phi: finalPhi}, o.hp.KillThreshold, o.src)

	o.lastDiagnostics = Diagnostics{
		RunID:            uuid.NewString(),
		Steps:            steps,
		MaxAbsIncomp:     last.MaxAbsIncomp,
		MaxAbsOmegaDiff:  last.MaxAbsOmegaDiff,
		MaxAbsJsDiff:     last.MaxAbsJsDiff,
		ReviveCountLeft:  o.budget.left,
		Phis:             finalPhi,
		Js:               finalJ,
		Seed:             o.src.Seed(),
		ConvergenceFound: converged,
	}

	volumes, compositions := Cluster(finalJ, finalPhi, o.clusterTolerance)
	normalize(volumes)

	if chk.Verbose {
		io.Pf("florymcmp: run %s finished after %d steps (converged=%v)\n", o.lastDiagnostics.RunID, steps, converged)
	}

	return volumes, compositions, nil
}

func normalize(volumes []float64) {
	sum := 0.0
	for _, v := range volumes {
		sum += v
	}
	if sum <= 0 {
		return
	}
	for i := range volumes {
		volumes[i] /= sum
	}
}

// LastDiagnostics returns the diagnostics populated by the most recent Run.
func (o *Finder) LastDiagnostics() Diagnostics { return o.lastDiagnostics }

// History returns the per-outer-iteration residual series of the most
// recent Run, for use by PlotConvergence (SPEC_FULL §6).
func (o *Finder) History() []Residuals { return o.history }

// NumComp returns Nc.
func (o *Finder) NumComp() int { return o.nc }

// NumCompartments returns M.
func (o *Finder) NumCompartments() int { return o.m }
