// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package freeenergy

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_floryhuggins01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("floryhuggins01: ChiInteraction.Potential")

	chi := [][]float64{
		{0, 1, 2},
		{1, 0, 3},
		{2, 3, 0},
	}
	inter, err := NewChiInteraction(chi)
	if err != nil {
		tst.Fatalf("NewChiInteraction failed: %v", err)
	}

	phi := [][]float64{
		{0.2, 0.5},
		{0.3, 0.3},
		{0.5, 0.2},
	}
	psi := [][]float64{
		make([]float64, 2),
		make([]float64, 2),
		make([]float64, 2),
	}
	inter.Potential(phi, psi)
	io.Pforan("psi = %v\n", psi)

	// psi[0][0] = 1*0.3 + 2*0.5 = 1.3
	chk.Scalar(tst, "psi[0][0]", 1e-15, psi[0][0], 1.3)
	// psi[2][0] = 2*0.2 + 3*0.3 = 1.3
	chk.Scalar(tst, "psi[2][0]", 1e-15, psi[2][0], 1.3)
}

func Test_floryhuggins02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("floryhuggins02: ChiInteraction.Shifted leaves the receiver untouched")

	chi := [][]float64{
		{0, -2},
		{-2, 0},
	}
	inter, err := NewChiInteraction(chi)
	if err != nil {
		tst.Fatalf("NewChiInteraction failed: %v", err)
	}
	shifted := inter.Shifted(1.0)

	// min(chi) = -2, offset = 2 + 1 = 3
	chk.Scalar(tst, "shifted[0][1]", 1e-15, shifted.Chi[0][1], 1.0)
	chk.Scalar(tst, "shifted[0][0]", 1e-15, shifted.Chi[0][0], 3.0)
	// receiver untouched
	chk.Scalar(tst, "chi[0][1] (untouched)", 1e-15, inter.Chi[0][1], -2.0)
}

func Test_floryhuggins03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("floryhuggins03: IncompressibleEntropy Invert/OmegaFromPhi round trip")

	sizes := []float64{1.0, 2.0, 1.0}
	phiMeans := []float64{0.3, 0.3, 0.4}
	entropy, err := NewIncompressibleEntropy(sizes, phiMeans)
	if err != nil {
		tst.Fatalf("NewIncompressibleEntropy failed: %v", err)
	}

	phi := [][]float64{
		{0.2},
		{0.5},
		{0.3},
	}
	omega := [][]float64{
		make([]float64, 1),
		make([]float64, 1),
		make([]float64, 1),
	}
	err = entropy.OmegaFromPhi(phi, omega)
	if err != nil {
		tst.Fatalf("OmegaFromPhi failed: %v", err)
	}

	phiRaw := [][]float64{
		make([]float64, 1),
		make([]float64, 1),
		make([]float64, 1),
	}
	q := make([]float64, 1)
	entropy.Invert(omega, phiRaw, q)
	io.Pforan("phiRaw = %v, q = %v\n", phiRaw, q)

	// phiRaw[i] = exp(-size[i]*omega[i]) recovers phi[i], since OmegaFromPhi
	// inverts exactly; checked here as phiRaw[i]/phiRaw[0]*phi[0] == phi[i].
	for i := range sizes {
		ratio := phiRaw[i][0] / phiRaw[0][0]
		want := phi[i][0] / phi[0][0]
		if math.Abs(ratio-want) > 1e-10 {
			tst.Fatalf("round trip mismatch at %d: ratio=%v want=%v", i, ratio, want)
		}
	}
}

func Test_floryhuggins04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("floryhuggins04: OmegaFromPhi rejects non-positive phi")

	sizes := []float64{1.0}
	phiMeans := []float64{1.0}
	entropy, err := NewIncompressibleEntropy(sizes, phiMeans)
	if err != nil {
		tst.Fatalf("NewIncompressibleEntropy failed: %v", err)
	}
	phi := [][]float64{{0.0}}
	omega := [][]float64{{0.0}}
	err = entropy.OmegaFromPhi(phi, omega)
	if err == nil {
		tst.Fatalf("expected an error for non-positive phi, got nil")
	}
	io.Pforan("OK, got error: %v\n", err)
}
