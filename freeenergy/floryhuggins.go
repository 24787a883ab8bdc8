// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package freeenergy

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// ChiInteraction implements Interaction for the Flory-Huggins free energy:
//
//	psi[i,m] = sum_j chi[i,j] * phi[j,m]
//
// Chi is a copy of the matrix given to NewChiInteraction; callers that need the kernel's numerically
// shifted chi' (spec's "Shifted interaction") build a second ChiInteraction
// from the shifted matrix rather than mutating this one, keeping the
// caller-supplied chi immutable.
type ChiInteraction struct {
	nc  int
	Chi [][]float64 // [Nc][Nc] symmetric interaction matrix
}

// NewChiInteraction allocates an Interaction over a copy of chi.
func NewChiInteraction(chi [][]float64) (*ChiInteraction, error) {
	nc := len(chi)
	for i, row := range chi {
		if len(row) != nc {
			return nil, chk.Err("chi matrix must be square; got row %d with length %d, want %d", i, len(row), nc)
		}
	}
	cp := la.MatAlloc(nc, nc)
	for i := range chi {
		la.VecCopy(cp[i], 1, chi[i])
	}
	return &ChiInteraction{nc: nc, Chi: cp}, nil
}

// NumComp implements Interaction.
func (o *ChiInteraction) NumComp() int { return o.nc }

// Potential implements Interaction.
func (o *ChiInteraction) Potential(phi [][]float64, psi [][]float64) {
	m := 0
	if o.nc > 0 {
		m = len(phi[0])
	}
	for i := 0; i < o.nc; i++ {
		la.VecFill(psi[i], 0)
		for j := 0; j < o.nc; j++ {
			cij := o.Chi[i][j]
			if cij == 0 {
				continue
			}
			for k := 0; k < m; k++ {
				psi[i][k] += cij * phi[j][k]
			}
		}
	}
}

// Shifted returns a new ChiInteraction holding chi' = chi - min(chi) + shift,
// the stabilized working copy the kernel (spec.md §3, §4.C) uses so that
// potentials stay bounded away from pathological signs. The receiver is left
// untouched.
func (o *ChiInteraction) Shifted(shift float64) *ChiInteraction {
	min := o.Chi[0][0]
	for i := 0; i < o.nc; i++ {
		for j := 0; j < o.nc; j++ {
			if o.Chi[i][j] < min {
				min = o.Chi[i][j]
			}
		}
	}
	out := &ChiInteraction{nc: o.nc, Chi: la.MatAlloc(o.nc, o.nc)}
	offset := -min + shift
	for i := 0; i < o.nc; i++ {
		for j := 0; j < o.nc; j++ {
			out.Chi[i][j] = o.Chi[i][j] + offset
		}
	}
	return out
}

// IncompressibleEntropy implements Entropy for the incompressible
// Flory-Huggins mixing entropy:
//
//	phiRaw[i,m] = exp(-size[i]*omega[i,m])
//	q[m]        = sum_i phiMean[i]*phiRaw[i,m]
//
// phiRaw is evaluated directly from this formula. q is summed with every term
// scaled by exp(-shift), where shift is the per-compartment maximum of
// -size[i]*omega[i,m], and the sum is then multiplied by exp(shift). Both
// phiRaw and q are returned unshifted, so a large -size[i]*omega[i,m] still
// overflows them; the shift does not guard against overflow.
type IncompressibleEntropy struct {
	nc       int
	sizes    []float64 // [Nc] nu, relative molecular volumes
	phiMeans []float64 // [Nc] phi-bar, the target average composition
}

// NewIncompressibleEntropy validates and stores sizes/phiMeans.
func NewIncompressibleEntropy(sizes, phiMeans []float64) (*IncompressibleEntropy, error) {
	if len(sizes) != len(phiMeans) {
		return nil, chk.Err("sizes (len %d) and phiMeans (len %d) must have the same length", len(sizes), len(phiMeans))
	}
	nc := len(sizes)
	s := make([]float64, nc)
	p := make([]float64, nc)
	copy(s, sizes)
	copy(p, phiMeans)
	return &IncompressibleEntropy{nc: nc, sizes: s, phiMeans: p}, nil
}

// NumComp implements Entropy.
func (o *IncompressibleEntropy) NumComp() int { return o.nc }

// Sizes implements Entropy.
func (o *IncompressibleEntropy) Sizes() []float64 { return o.sizes }

// Invert implements Entropy. The per-compartment shift is used only inside
// the sum that produces q, and that sum is multiplied back by exp(shift);
// phiRaw is computed directly from its documented formula without any shift.
func (o *IncompressibleEntropy) Invert(omega [][]float64, phiRaw [][]float64, q []float64) {
	m := len(q)
	for k := 0; k < m; k++ {
		// per-compartment shift: max_i(-size[i]*omega[i,k])
		shift := math.Inf(-1)
		for i := 0; i < o.nc; i++ {
			v := -o.sizes[i] * omega[i][k]
			if v > shift {
				shift = v
			}
		}
		shiftedSum := 0.0
		for i := 0; i < o.nc; i++ {
			shiftedSum += o.phiMeans[i] * math.Exp(-o.sizes[i]*omega[i][k]-shift)
		}
		q[k] = shiftedSum * math.Exp(shift)
		for i := 0; i < o.nc; i++ {
			phiRaw[i][k] = math.Exp(-o.sizes[i] * omega[i][k])
		}
	}
}

// OmegaFromPhi implements Entropy.
func (o *IncompressibleEntropy) OmegaFromPhi(phi [][]float64, omega [][]float64) error {
	m := 0
	if len(phi) > 0 {
		m = len(phi[0])
	}
	for i := 0; i < o.nc; i++ {
		for k := 0; k < m; k++ {
			if phi[i][k] <= 0 {
				return chk.Err("phi[%d][%d] = %v is non-positive; its logarithm diverges", i, k, phi[i][k])
			}
			omega[i][k] = -math.Log(phi[i][k]) / o.sizes[i]
		}
	}
	return nil
}
