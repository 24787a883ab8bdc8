// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mcmp

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_state01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("state01: NewFields shape and FillOmegaNormal resets J")

	f := NewFields(2, 3)
	if f.NumComp() != 2 || f.NumCompartments() != 3 {
		tst.Fatalf("wrong shape: nc=%d m=%d", f.NumComp(), f.NumCompartments())
	}
	chk.Vector(tst, "J initially zero", 1e-15, f.J, []float64{0, 0, 0})

	calls := 0
	f.FillOmegaNormal(func() float64 { calls++; return float64(calls) })
	io.Pforan("omega = %v\n", f.Omega)
	chk.Vector(tst, "J after fill", 1e-15, f.J, []float64{1, 1, 1})
	if calls != 6 {
		tst.Fatalf("expected 6 draws (nc*m), got %d", calls)
	}
}

func Test_state02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("state02: SetOmega rejects wrong shape, accepts right shape")

	f := NewFields(2, 2)
	err := f.SetOmega([][]float64{{1, 2}})
	if err == nil {
		tst.Fatalf("expected a shape error for too few rows")
	}
	io.Pforan("OK, got error: %v\n", err)

	err = f.SetOmega([][]float64{{1, 2}, {3, 4}})
	if err != nil {
		tst.Fatalf("SetOmega failed: %v", err)
	}
	chk.Matrix(tst, "omega", 1e-15, f.Omega, [][]float64{{1, 2}, {3, 4}})
	chk.Vector(tst, "J reset to 1", 1e-15, f.J, []float64{1, 1})
}

func Test_state03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("state03: CopyPhiInto copies composition and J")

	f := NewFields(2, 3)
	f.Phi[0][1] = 0.4
	f.Phi[1][1] = 0.6
	f.J[1] = 0.75
	f.CopyPhiInto(2, 1)
	chk.Scalar(tst, "phi[0][2]", 1e-15, f.Phi[0][2], 0.4)
	chk.Scalar(tst, "phi[1][2]", 1e-15, f.Phi[1][2], 0.6)
	chk.Scalar(tst, "J[2]", 1e-15, f.J[2], 0.75)
}
