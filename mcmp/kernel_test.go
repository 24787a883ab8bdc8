// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mcmp

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/florymcmp/freeenergy"
)

// fixedSource draws a constant normal value and always returns 0 from
// IntN; it exists only to make kernel_test's revive bookkeeping
// deterministic without pulling in gosl/rnd's process-global state.
type fixedSource struct{ normal float64 }

func (o fixedSource) Normal(mean, std float64) float64 { return mean + std*o.normal }
func (o fixedSource) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return 0
}
func (o fixedSource) Seed() int64 { return 0 }

func Test_kernel01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("kernel01: a dead compartment with zero revive budget stays dead")

	nc, m := 2, 2
	chi := [][]float64{{0, 4}, {4, 0}}
	phiMeans := []float64{0.5, 0.5}
	sizes := []float64{1, 1}

	interaction, err := freeenergy.NewChiInteraction(chi)
	if err != nil {
		tst.Fatalf("NewChiInteraction failed: %v", err)
	}
	entropy, err := freeenergy.NewIncompressibleEntropy(sizes, phiMeans)
	if err != nil {
		tst.Fatalf("NewIncompressibleEntropy failed: %v", err)
	}

	kern := newKernel(interaction, entropy, phiMeans, nc, m)
	hp := DefaultHyperparams()
	fields := NewFields(nc, m)
	fields.FillOmegaNormal(func() float64 { return 0 })

	budget := newReviveBudget(0, m) // S5: no revive budget at all
	src := fixedSource{normal: 0}

	// force compartment 0 dead directly, as a prior step's kill pass would.
	fields.J[0] = 0
	fields.Dead[0] = true

	for step := 0; step < 50; step++ {
		kern.Step(fields, &hp, budget, src)
		if fields.J[0] != 0 {
			tst.Fatalf("step %d: dead compartment 0 resurrected with no revive budget, J[0]=%v", step, fields.J[0])
		}
		if !fields.Dead[0] {
			tst.Fatalf("step %d: compartment 0 lost its dead mark with no revive budget", step)
		}
	}
}
