// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command florymcmp is the thin convenience façade around package mcmp:
// a Flory-Huggins coexisting-phases finder driven from a TOML config file.
package main

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/spf13/cobra"
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			chk.Verbose = true
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	root := &cobra.Command{
		Use:   "florymcmp",
		Short: "Find coexisting phases of a Flory-Huggins mixture",
	}
	root.AddCommand(newRunCmd())
	root.AddCommand(newSweepCmd())
	root.AddCommand(newConfigCmd())

	if err := root.Execute(); err != nil {
		chk.Panic("%v", err)
	}
}
