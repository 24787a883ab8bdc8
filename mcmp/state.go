// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mcmp

import "github.com/cpmech/gosl/la"

// Fields holds the mutable (omega, J, phi) triple of a run: conjugate
// fields, relative compartment volumes and the derived compositions
// (spec.md §3 "Field state"). It enforces the (Nc,M)/(M) shape invariant
// and owns no numerics of its own (spec.md §4.B).
type Fields struct {
	nc, m int
	Omega [][]float64 // [Nc][M] conjugate fields
	J     []float64   // [M] compartment relative volumes
	Phi   [][]float64 // [Nc][M] derived compositions
	Dead  []bool      // [M] persists across Step calls; "stay dead" (spec.md §4.D)
}

// NewFields allocates a zeroed Fields of shape (nc, m).
func NewFields(nc, m int) *Fields {
	return &Fields{
		nc:    nc,
		m:     m,
		Omega: la.MatAlloc(nc, m),
		J:     make([]float64, m),
		Phi:   la.MatAlloc(nc, m),
		Dead:  make([]bool, m),
	}
}

// clearDead marks every compartment alive again, used whenever J is reset to
// all-ones by a re-seed (spec.md §3 "Explicit re-seeding").
func (o *Fields) clearDead() {
	for k := range o.Dead {
		o.Dead[k] = false
	}
}

// NumComp returns Nc.
func (o *Fields) NumComp() int { return o.nc }

// NumCompartments returns M.
func (o *Fields) NumCompartments() int { return o.m }

// FillOmegaNormal overwrites Omega with independent draws from the supplied
// generator and resets J to all ones, as done by reinit_random in the
// original source (spec.md §9).
func (o *Fields) FillOmegaNormal(draw func() float64) {
	for i := 0; i < o.nc; i++ {
		for k := 0; k < o.m; k++ {
			o.Omega[i][k] = draw()
		}
	}
	la.VecFill(o.J, 1)
	o.clearDead()
}

// SetOmega overwrites Omega directly and resets J to all ones. This is the
// corrected semantics for reinitialize_from_omegas noted in spec.md §9
// ("the source's reinitialize_from_omegas path contains an apparent
// conversion bug; the correct semantics is 'assign omega directly'").
func (o *Fields) SetOmega(omega [][]float64) error {
	if len(omega) != o.nc {
		return newShapeError("omega must have %d rows, got %d", o.nc, len(omega))
	}
	for i, row := range omega {
		if len(row) != o.m {
			return newShapeError("omega row %d must have %d entries, got %d", i, o.m, len(row))
		}
	}
	for i := range omega {
		la.VecCopy(o.Omega[i], 1, omega[i])
	}
	la.VecFill(o.J, 1)
	o.clearDead()
	return nil
}

// SetPhi recomputes Omega from a caller-supplied composition via
// entropy.OmegaFromPhi, and resets J to all ones (reinitialize_from_phis,
// spec.md §8 property 8 "round-trip re-seed").
func (o *Fields) SetPhi(phi [][]float64, omegaFromPhi func(phi, omega [][]float64) error) error {
	if len(phi) != o.nc {
		return newShapeError("phi must have %d rows, got %d", o.nc, len(phi))
	}
	for i, row := range phi {
		if len(row) != o.m {
			return newShapeError("phi row %d must have %d entries, got %d", i, o.m, len(row))
		}
	}
	if err := omegaFromPhi(phi, o.Omega); err != nil {
		return err
	}
	la.VecFill(o.J, 1)
	o.clearDead()
	return nil
}

// CopyPhiInto copies member src's composition and J into member dst.
func (o *Fields) CopyPhiInto(dst, src int) {
	for i := 0; i < o.nc; i++ {
		o.Phi[i][dst] = o.Phi[i][src]
	}
	o.J[dst] = o.J[src]
}
