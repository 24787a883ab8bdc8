// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"time"

	"github.com/cpmech/gosl/io"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/cpmech/florymcmp/config"
	"github.com/cpmech/florymcmp/mcmp"
	"github.com/cpmech/florymcmp/progress"
)

func newRunCmd() *cobra.Command {
	var cfgPath string
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the self-consistent iterator once and print the coexisting phases",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOnce(cfgPath)
		},
	}
	cmd.Flags().StringVarP(&cfgPath, "config", "c", "sim.toml", "path to a TOML system/hyperparameter file")
	return cmd
}

func runOnce(cfgPath string) error {
	sys, hp, err := config.FromTOML(cfgPath)
	if err != nil {
		return err
	}
	finder, err := mcmp.New(sys.Chi, sys.PhiMeans, sys.Sizes, sys.NumCompartments, sys.Seed, hp)
	if err != nil {
		return err
	}

	reporter := progress.New(hp.Progress, hp.Tolerance)
	started := time.Now()
	volumes, compositions, err := finder.Run(mcmp.RunOptions{}, reporter)
	if err != nil {
		return err
	}
	elapsed := time.Since(started)

	diag := finder.LastDiagnostics()
	io.PfWhite("\nflorymcmp run %s\n", diag.RunID)
	io.Pf("seed=%d steps=%s elapsed=%s converged=%v\n", diag.Seed, humanize.Comma(int64(diag.Steps)), elapsed.Round(time.Millisecond), diag.ConvergenceFound)
	for p := range volumes {
		io.Pf("phase %2d  J=%8.5f  phi=%v\n", p, volumes[p], compositions[p])
	}
	if !diag.ConvergenceFound {
		io.Pfyel("warning: residual tolerance not reached within max_steps\n")
	}
	return nil
}
