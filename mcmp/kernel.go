// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mcmp

import "github.com/cpmech/florymcmp/freeenergy"

// StepResult reports the residuals and revive activity produced by one call
// to Step (spec.md §4.C).
type StepResult struct {
	MaxAbsIncomp      float64 // max_m |sum_i phi[i,m] - 1|
	MaxAbsOmegaDiff   float64 // max |delta omega|, post rescale
	MaxAbsJsDiff      float64 // max |delta J|, post rescale
	ReviveCount       int     // compartments revived this step
	Safe              bool    // no revive and no rescale below unity
}

// kernel carries the scratch buffers and collaborators a single Step needs,
// so repeated calls allocate nothing (spec.md budget: the kernel is a
// deterministic sequence of dense-array operations, no suspension).
type kernel struct {
	interaction freeenergy.Interaction
	entropy     freeenergy.Entropy
	phiMeans    []float64

	phiRaw  [][]float64
	q       []float64
	psi     [][]float64
	jNew    []float64
	omegaT  [][]float64
	deltaW  [][]float64
	deltaJ  []float64
	incomp  []float64
}

func newKernel(interaction freeenergy.Interaction, entropy freeenergy.Entropy, phiMeans []float64, nc, m int) *kernel {
	return &kernel{
		interaction: interaction,
		entropy:     entropy,
		phiMeans:    phiMeans,
		phiRaw:      allocNcM(nc, m),
		q:           make([]float64, m),
		psi:         allocNcM(nc, m),
		jNew:        make([]float64, m),
		omegaT:      allocNcM(nc, m),
		deltaW:      allocNcM(nc, m),
		deltaJ:      make([]float64, m),
		incomp:      make([]float64, m),
	}
}

func allocNcM(nc, m int) [][]float64 {
	out := make([][]float64, nc)
	for i := range out {
		out[i] = make([]float64, m)
	}
	return out
}

// Step performs one self-consistent iteration as specified in spec.md
// §4.C, steps 1-9, mutating fields.Omega, fields.J and fields.Phi in place.
func (o *kernel) Step(fields *Fields, hp *Hyperparams, budget *reviveBudget, src Source) StepResult {
	nc, m := fields.NumComp(), fields.NumCompartments()

	// 1. compute phi from omega, and J_new = Q
	o.entropy.Invert(fields.Omega, o.phiRaw, o.q)
	for i := 0; i < nc; i++ {
		for k := 0; k < m; k++ {
			fields.Phi[i][k] = o.phiMeans[i] * o.phiRaw[i][k] / o.q[k]
		}
	}
	copy(o.jNew, o.q)

	// 2. incompressibility residual
	maxAbsIncomp := 0.0
	for k := 0; k < m; k++ {
		sum := 0.0
		for i := 0; i < nc; i++ {
			sum += fields.Phi[i][k]
		}
		o.incomp[k] = sum - 1
		if a := absVal(o.incomp[k]); a > maxAbsIncomp {
			maxAbsIncomp = a
		}
	}

	// 3. target omega: psi(phi) plus the Lagrange multiplier Lambda[m] that
	// zeroes the linearized incompressibility residual (spec.md §4.C step 3,
	// §9 open question: "choose Lambda so that the updated omega zeroes the
	// linearized residual"). To first order d(sum_i phi_i)/d(Lambda) =
	// -sum_i size[i]*phi_i, so:
	//   Lambda[m] = incomp[m] / sum_i(size[i]*phi[i,m])
	o.interaction.Potential(fields.Phi, o.psi)
	sizes := o.entropy.Sizes()
	for k := 0; k < m; k++ {
		denom := 0.0
		for i := 0; i < nc; i++ {
			denom += sizes[i] * fields.Phi[i][k]
		}
		lambda := 0.0
		if denom != 0 {
			lambda = o.incomp[k] / denom
		}
		for i := 0; i < nc; i++ {
			o.omegaT[i][k] = o.psi[i][k] + lambda
		}
	}

	// 4. propose field deltas; a compartment already dead from an earlier
	// Step stays frozen at omega/J=0 until revivePass explicitly reseeds it
	// (spec.md §4.D "stay dead"), rather than drifting toward J_new=Q>0.
	for i := 0; i < nc; i++ {
		for k := 0; k < m; k++ {
			if fields.Dead[k] {
				o.deltaW[i][k] = 0
				continue
			}
			o.deltaW[i][k] = hp.AcceptanceOmega * (o.omegaT[i][k] - fields.Omega[i][k])
		}
	}
	for k := 0; k < m; k++ {
		if fields.Dead[k] {
			o.deltaJ[k] = 0
			continue
		}
		o.deltaJ[k] = hp.AcceptanceJs * (o.jNew[k] - fields.J[k])
	}

	// 5. step-size safety
	maxAbsDeltaJ := 0.0
	for k := 0; k < m; k++ {
		if a := absVal(o.deltaJ[k]); a > maxAbsDeltaJ {
			maxAbsDeltaJ = a
		}
	}
	safe := true
	if maxAbsDeltaJ > hp.JsStepUpperBound {
		scale := hp.JsStepUpperBound / maxAbsDeltaJ
		for i := 0; i < nc; i++ {
			for k := 0; k < m; k++ {
				o.deltaW[i][k] *= scale
			}
		}
		for k := 0; k < m; k++ {
			o.deltaJ[k] *= scale
		}
		safe = false
	}

	// 6. apply updates
	for i := 0; i < nc; i++ {
		for k := 0; k < m; k++ {
			fields.Omega[i][k] += o.deltaW[i][k]
		}
	}
	for k := 0; k < m; k++ {
		fields.J[k] += o.deltaJ[k]
	}

	// 7. kill pass; fields.Dead persists across Step calls, so a compartment
	// killed here (or in an earlier Step) remains marked until revivePass
	// reseeds it.
	killPass(fields, hp.KillThreshold)

	// 8. revive pass
	reviveCount := revivePass(fields, budget, hp.ReviveScaler, hp.RandomStd, src)
	if reviveCount > 0 {
		safe = false
	}

	// 9. residual metrics
	maxAbsOmegaDiff := 0.0
	for i := 0; i < nc; i++ {
		for k := 0; k < m; k++ {
			if a := absVal(o.deltaW[i][k]); a > maxAbsOmegaDiff {
				maxAbsOmegaDiff = a
			}
		}
	}
	maxAbsJsDiff := 0.0
	for k := 0; k < m; k++ {
		if a := absVal(o.deltaJ[k]); a > maxAbsJsDiff {
			maxAbsJsDiff = a
		}
	}

	return StepResult{
		MaxAbsIncomp:    maxAbsIncomp,
		MaxAbsOmegaDiff: maxAbsOmegaDiff,
		MaxAbsJsDiff:    maxAbsJsDiff,
		ReviveCount:     reviveCount,
		Safe:            safe,
	}
}

func absVal(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
