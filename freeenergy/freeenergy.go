// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package freeenergy implements the incompressible free-energy algebra used
// by the multicomponent compartment iterator: interaction potentials and
// entropy inversion. The iteration kernel (package mcmp) talks to these
// through the small capability interfaces below; it never knows which
// concrete free-energy model it is driving.
package freeenergy

// Interaction computes the per-component interaction potential ψ[i,m] given
// the composition φ[i,m] of every compartment. Shapes are (Nc,M) in, (Nc,M)
// out.
type Interaction interface {
	// Potential fills psi[i][m] = sum_j chi'[i][j]*phi[j][m] (or whatever the
	// concrete model's analogue is) for every compartment, live or dead.
	Potential(phi [][]float64, psi [][]float64)

	// NumComp returns Nc, the dimension the model was built for.
	NumComp() int
}

// Entropy computes the incompressible entropy contribution: inverting the
// conjugate field omega into a raw (unnormalized) composition and the
// per-compartment normalization Q, and its inverse direction (omega from
// phi), used by re-seeding.
type Entropy interface {
	// Invert computes phiRaw[i][m] = exp(-size[i]*omega[i][m]) and
	// q[m] = sum_i phiMean[i]*phiRaw[i][m].
	Invert(omega [][]float64, phiRaw [][]float64, q []float64)

	// OmegaFromPhi computes omega[i][m] = -log(phi[i][m]) / size[i], the
	// inverse of the entropic mapping used to reseed from a composition.
	OmegaFromPhi(phi [][]float64, omega [][]float64) error

	// Sizes returns the per-component relative molecular volumes nu.
	Sizes() []float64

	// NumComp returns Nc, the dimension the model was built for.
	NumComp() int
}
