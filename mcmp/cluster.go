// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mcmp

import "sort"

// defaultClusterTolerance is the componentwise tolerance used to decide
// whether two compartments belong to the same phase, when the caller does
// not override it (spec.md §9 "Clustering tolerance. Not explicit in the
// source; choose a documented default... and expose as a hyperparameter").
const defaultClusterTolerance = 1e-2

// Cluster groups the compartments of (j, phi) whose compositions are within
// tol (componentwise) of each other into distinct phases (spec.md §4.G).
// The representative composition of a phase is the member with the largest
// J — chosen over a volume-weighted mean because it reproduces an actual
// converged compartment's composition exactly, which keeps clustered output
// consistent with the per-compartment incompressibility/mass-conservation
// invariants without re-averaging rounding. Phases are returned in
// descending order of volume, ties broken by lexicographic order of
// composition (spec.md §4.G).
func Cluster(j []float64, phi [][]float64, tol float64) (volumes []float64, compositions [][]float64) {
	m := len(j)
	nc := len(phi)
	assigned := make([]bool, m)
	var groupVolumes []float64
	var groupReps [][]float64
	var groupRepJ []float64

	for a := 0; a < m; a++ {
		if assigned[a] {
			continue
		}
		assigned[a] = true
		volume := j[a]
		repIdx := a
		repJ := j[a]
		for b := a + 1; b < m; b++ {
			if assigned[b] {
				continue
			}
			if sameComposition(phi, a, b, tol) {
				assigned[b] = true
				volume += j[b]
				if j[b] > repJ {
					repJ = j[b]
					repIdx = b
				}
			}
		}
		rep := make([]float64, nc)
		for i := 0; i < nc; i++ {
			rep[i] = phi[i][repIdx]
		}
		groupVolumes = append(groupVolumes, volume)
		groupReps = append(groupReps, rep)
		groupRepJ = append(groupRepJ, repJ)
	}

	order := make([]int, len(groupVolumes))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(x, y int) bool {
		ox, oy := order[x], order[y]
		if groupVolumes[ox] != groupVolumes[oy] {
			return groupVolumes[ox] > groupVolumes[oy]
		}
		return lexLess(groupReps[ox], groupReps[oy])
	})

	volumes = make([]float64, len(order))
	compositions = make([][]float64, len(order))
	for rank, idx := range order {
		volumes[rank] = groupVolumes[idx]
		compositions[rank] = groupReps[idx]
	}
	return volumes, compositions
}

func sameComposition(phi [][]float64, a, b int, tol float64) bool {
	for i := range phi {
		d := phi[i][a] - phi[i][b]
		if d < 0 {
			d = -d
		}
		if d > tol {
			return false
		}
	}
	return true
}

func lexLess(a, b []float64) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}
