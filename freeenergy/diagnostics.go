// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package freeenergy

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// ChemicalPotentials returns the exchange chemical potential of every
// component relative to the component at solventIndex, for each phase
// (row) in phis [Nphase][Nc]. This mirrors the original Python
// implementation's FreeEnergyBase.exchange_chemical_potentials, ported as a
// diagnostic convenience over a converged phase set rather than as part of
// the iteration itself (spec.md keeps the free-energy algebra limited to
// Potential/Invert for the core).
//
//	mu[i] = size[i]*chi_row(i)·phi - size[solventIndex]*chi_row(solventIndex)·phi
func ChemicalPotentials(phis [][]float64, chi [][]float64, sizes []float64, solventIndex int) ([][]float64, error) {
	if len(phis) == 0 {
		return nil, chk.Err("phis must have at least one phase")
	}
	nc := len(sizes)
	if solventIndex < 0 || solventIndex >= nc {
		return nil, chk.Err("solventIndex %d out of range [0,%d)", solventIndex, nc)
	}
	out := make([][]float64, len(phis))
	for p, phi := range phis {
		if len(phi) != nc {
			return nil, chk.Err("phase %d has %d components, want %d", p, len(phi), nc)
		}
		row := make([]float64, nc)
		psiSolvent := rowDot(chi[solventIndex], phi)
		for i := 0; i < nc; i++ {
			psiI := rowDot(chi[i], phi)
			row[i] = sizes[i]*psiI - sizes[solventIndex]*psiSolvent
		}
		out[p] = row
	}
	return out, nil
}

func rowDot(row, phi []float64) float64 {
	s := 0.0
	for j := range row {
		s += row[j] * phi[j]
	}
	return s
}

// Pressure returns the osmotic pressure of the solvent component for every
// phase, proportional to its exchange chemical potential (port of
// FreeEnergyBase.pressure in the original Python source).
func Pressure(phis [][]float64, chi [][]float64, sizes []float64, solventIndex int) ([]float64, error) {
	mus, err := ChemicalPotentials(phis, chi, sizes, solventIndex)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(mus))
	for p, mu := range mus {
		out[p] = -mu[solventIndex] / sizes[solventIndex]
	}
	return out, nil
}

// IsStable reports whether the Hessian of the Flory-Huggins free energy at
// composition phi (with component conservedIndex treated as dependent) has
// no negative eigenvalue. A small Jacobi eigenvalue routine is used in the
// teacher's hand-rolled-numerics style (gofem's mdl packages never reach for
// an external linear-algebra eigensolver for small dense problems).
func IsStable(phi []float64, chi [][]float64, conservedIndex int) bool {
	return NumUnstableModes(phi, chi, conservedIndex) == 0
}

// NumUnstableModes counts the negative eigenvalues of the reduced Hessian
// d^2 f / dphi^2 with component conservedIndex eliminated via the chain
// rule (port of FreeEnergyBase.num_unstable_modes / hessian).
func NumUnstableModes(phi []float64, chi [][]float64, conservedIndex int) int {
	nc := len(phi)
	// Hessian of the Flory-Huggins interaction+entropy energy:
	//   d^2f/dphi_i dphi_j = chi[i][j] + delta_ij / phi_i   (ideal-entropy term)
	h := make([][]float64, nc)
	for i := range h {
		h[i] = make([]float64, nc)
		copy(h[i], chi[i])
		h[i][i] += 1.0 / phi[i]
	}
	reduced := reduceHessian(h, conservedIndex)
	eig := jacobiEigenvalues(reduced)
	count := 0
	for _, v := range eig {
		if v < 0 {
			count++
		}
	}
	return count
}

// reduceHessian applies the conservation chain rule used by the original
// Python's hessian(index=...): eliminate row/col `index` after subtracting
// its cross terms, modeling phi[index] as dependent on the rest.
func reduceHessian(h [][]float64, index int) [][]float64 {
	n := len(h)
	full := make([][]float64, n)
	for i := range full {
		full[i] = make([]float64, n)
		for j := range full[i] {
			full[i][j] = h[i][j] - h[index][j] - h[i][index] + h[index][index]
		}
	}
	out := make([][]float64, 0, n-1)
	for i := 0; i < n; i++ {
		if i == index {
			continue
		}
		row := make([]float64, 0, n-1)
		for j := 0; j < n; j++ {
			if j == index {
				continue
			}
			row = append(row, full[i][j])
		}
		out = append(out, row)
	}
	return out
}

// jacobiEigenvalues computes the eigenvalues of a small symmetric matrix
// using the cyclic Jacobi rotation method.
func jacobiEigenvalues(a [][]float64) []float64 {
	n := len(a)
	if n == 0 {
		return nil
	}
	m := make([][]float64, n)
	for i := range a {
		m[i] = append([]float64(nil), a[i]...)
	}
	for sweep := 0; sweep < 100; sweep++ {
		off := 0.0
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				off += m[i][j] * m[i][j]
			}
		}
		if off < 1e-14 {
			break
		}
		for p := 0; p < n; p++ {
			for q := p + 1; q < n; q++ {
				if m[p][q] == 0 {
					continue
				}
				theta := (m[q][q] - m[p][p]) / (2 * m[p][q])
				t := sign(theta) / (absf(theta) + math.Sqrt(1+theta*theta))
				c := 1 / math.Sqrt(1+t*t)
				s := t * c
				app, aqq, apq := m[p][p], m[q][q], m[p][q]
				m[p][p] = c*c*app - 2*s*c*apq + s*s*aqq
				m[q][q] = s*s*app + 2*s*c*apq + c*c*aqq
				m[p][q] = 0
				m[q][p] = 0
				for i := 0; i < n; i++ {
					if i != p && i != q {
						aip, aiq := m[i][p], m[i][q]
						m[i][p] = c*aip - s*aiq
						m[p][i] = m[i][p]
						m[i][q] = s*aip + c*aiq
						m[q][i] = m[i][q]
					}
				}
			}
		}
	}
	eig := make([]float64, n)
	for i := range eig {
		eig[i] = m[i][i]
	}
	return eig
}

func sign(x float64) float64 {
	if x < 0 {
		return -1
	}
	return 1
}

func absf(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
