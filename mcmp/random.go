// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mcmp

import (
	"math"
	"time"

	"github.com/cpmech/gosl/rnd"
)

// Source is the pseudo-random generator the kernel borrows mutably during a
// run (spec.md §5 "Shared-resource policy"). Implementations must be safe to
// call repeatedly from a single goroutine; the iterator itself never calls
// Source concurrently.
type Source interface {
	// Normal returns one draw from Normal(mean, std).
	Normal(mean, std float64) float64
	// IntN returns a uniform integer in [0,n).
	IntN(n int) int
	// Seed returns the seed this source was constructed with, recorded in
	// diagnostics for reproducibility (spec.md §9).
	Seed() int64
}

// gosl/rnd-backed source. gosl/rnd exposes a package-level uniform generator
// (rnd.Init, rnd.Float64); the Normal draw needed for omega re-seeding is
// obtained from it via a Box-Muller transform, since rnd's higher-level
// Distribution wrappers (rnd.GetDistribution, rnd.VarData) target
// fun.Prm-declared adjustable parameters rather than bulk array reseeding.
type goslSource struct {
	seed  int64
	cache float64
	have  bool
}

// NewSource seeds gosl/rnd's process-global generator and returns a Source
// over it. Passing seed == 0 seeds from the wall clock and records the seed
// actually used, matching the original source's "seed from a wall-clock
// value ... record it in diagnostics" behavior (spec.md §9).
func NewSource(seed int64) Source {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rnd.Init(int(seed))
	return &goslSource{seed: seed}
}

func (o *goslSource) Seed() int64 { return o.seed }

func (o *goslSource) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return rnd.Int(0, n-1)
}

func (o *goslSource) Normal(mean, std float64) float64 {
	if o.have {
		o.have = false
		return mean + std*o.cache
	}
	var u1, u2 float64
	for u1 == 0 {
		u1 = rnd.Float64(0, 1)
	}
	u2 = rnd.Float64(0, 1)
	r := math.Sqrt(-2 * math.Log(u1))
	z0 := r * math.Cos(2*math.Pi*u2)
	z1 := r * math.Sin(2*math.Pi*u2)
	o.cache = z1
	o.have = true
	return mean + std*z0
}
