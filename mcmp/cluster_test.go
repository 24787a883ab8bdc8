// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mcmp

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_cluster01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("cluster01: merges near-identical compartments, sums J")

	j := []float64{0.3, 0.29, 0.41}
	phi := [][]float64{
		{0.9, 0.91, 0.1},
		{0.1, 0.09, 0.9},
	}
	volumes, compositions := Cluster(j, phi, 0.05)
	io.Pforan("volumes=%v compositions=%v\n", volumes, compositions)
	if len(volumes) != 2 {
		tst.Fatalf("expected 2 phases, got %d", len(volumes))
	}
	chk.Scalar(tst, "volume[0]", 1e-12, volumes[0], 0.59)
	chk.Scalar(tst, "volume[1]", 1e-12, volumes[1], 0.41)
}

func Test_cluster02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("cluster02: over-provisioned M collapses to true phase count (S6)")

	j := make([]float64, 64)
	phi := [][]float64{make([]float64, 64), make([]float64, 64)}
	for k := 0; k < 64; k++ {
		j[k] = 1.0 / 64.0
		if k%2 == 0 {
			phi[0][k], phi[1][k] = 0.9, 0.1
		} else {
			phi[0][k], phi[1][k] = 0.1, 0.9
		}
	}
	volumes, _ := Cluster(j, phi, defaultClusterTolerance)
	if len(volumes) > 2 {
		tst.Fatalf("expected P<=2 phases from an over-provisioned M=64 two-phase system, got %d", len(volumes))
	}
	io.Pforan("P=%d volumes=%v\n", len(volumes), volumes)
}

func Test_cluster03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("cluster03: results ordered by descending volume")

	j := []float64{0.1, 0.6, 0.3}
	phi := [][]float64{{0.2, 0.8, 0.5}}
	volumes, _ := Cluster(j, phi, 1e-6)
	for i := 1; i < len(volumes); i++ {
		if volumes[i] > volumes[i-1] {
			tst.Fatalf("volumes not descending: %v", volumes)
		}
	}
	chk.Scalar(tst, "volume[0] (largest)", 1e-15, volumes[0], 0.6)
}
