// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/mpi"
	"github.com/spf13/cobra"

	"github.com/cpmech/florymcmp/config"
	"github.com/cpmech/florymcmp/mcmp"
)

// newSweepCmd partitions a grid of phi-bar points across MPI ranks, the
// Go-native analogue of the original Python docstring's "generating a
// coexisting curve or sampling a phase diagram" use case for reusing one
// CoexistingPhasesFinder instance (SPEC_FULL §5). Each rank solves its
// assigned points with one Finder, reusing field state across points via
// SetPhiMeans (spec.md §3 "Lifecycle").
func newSweepCmd() *cobra.Command {
	var cfgPath, gridPath string
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Solve a grid of phi_means points, partitioned across MPI ranks",
		RunE: func(cmd *cobra.Command, args []string) error {
			return sweep(cfgPath, gridPath)
		},
	}
	cmd.Flags().StringVarP(&cfgPath, "config", "c", "sim.toml", "base system/hyperparameter file")
	cmd.Flags().StringVarP(&gridPath, "grid", "g", "grid.toml", "TOML file with a phi_means_grid array of arrays")
	return cmd
}

func sweep(cfgPath, gridPath string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if mpi.Rank() == 0 {
				chk.Verbose = true
				io.PfRed("ERROR: %v\n", r)
			}
		}
		mpi.Stop(false)
	}()
	mpi.Start(false)

	sys, hp, ferr := config.FromTOML(cfgPath)
	if ferr != nil {
		return ferr
	}
	grid, gerr := config.LoadPhiGrid(gridPath)
	if gerr != nil {
		return gerr
	}

	finder, nerr := mcmp.New(sys.Chi, sys.PhiMeans, sys.Sizes, sys.NumCompartments, sys.Seed, hp)
	if nerr != nil {
		return nerr
	}

	rank, size := mpi.Rank(), mpi.Size()
	for idx, phiMeans := range grid {
		if idx%size != rank {
			continue
		}
		if serr := finder.SetPhiMeans(phiMeans); serr != nil {
			io.Pfred("rank %d point %d: %v\n", rank, idx, serr)
			continue
		}
		volumes, compositions, rerr := finder.Run(mcmp.RunOptions{}, nil)
		if rerr != nil {
			io.Pfred("rank %d point %d: %v\n", rank, idx, rerr)
			continue
		}
		io.Pf("rank %d point %d phi_means=%v -> %d phases\n", rank, idx, phiMeans, len(volumes))
		for p := range volumes {
			io.Pf("  phase %2d  J=%8.5f  phi=%v\n", p, volumes[p], compositions[p])
		}
	}
	return nil
}
