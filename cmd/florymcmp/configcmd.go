// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/cpmech/gosl/io"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/cpmech/florymcmp/config"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage florymcmp TOML configs",
	}
	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigWatchCmd())
	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a starter TOML config (spec.md scenario S2)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.WriteDefault(out); err != nil {
				return err
			}
			io.Pf("wrote %s\n", out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "sim.toml", "output path")
	return cmd
}

func newConfigWatchCmd() *cobra.Command {
	var cfgPath string
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Rerun `run` every time the config file changes, for interactive parameter exploration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return watchAndRun(cfgPath)
		},
	}
	cmd.Flags().StringVarP(&cfgPath, "config", "c", "sim.toml", "path to a TOML system/hyperparameter file")
	return cmd
}

func watchAndRun(cfgPath string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(cfgPath); err != nil {
		return err
	}

	io.Pf("watching %s; edit it to trigger a rerun (ctrl-c to stop)\n", cfgPath)
	if err := runOnce(cfgPath); err != nil {
		io.Pfred("%v\n", err)
	}

	for {
		select {
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			io.Pf("\n%s changed, rerunning\n", cfgPath)
			if err := runOnce(cfgPath); err != nil {
				io.Pfred("%v\n", err)
			}
		case werr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			io.Pfred("watch error: %v\n", werr)
		}
	}
}
