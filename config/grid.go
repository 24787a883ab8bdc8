// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"github.com/cpmech/gosl/chk"
	"github.com/spf13/viper"
)

// LoadPhiGrid reads a phi_means_grid array of arrays from path, one row per
// sweep point, used by the `florymcmp sweep` command (SPEC_FULL §5).
func LoadPhiGrid(path string) ([][]float64, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, chk.Err("cannot read grid %q: %v", path, err)
	}
	var grid [][]float64
	if err := v.UnmarshalKey("phi_means_grid", &grid); err != nil {
		return nil, chk.Err("cannot parse phi_means_grid from %q: %v", path, err)
	}
	if len(grid) == 0 {
		return nil, chk.Err("grid %q has no phi_means_grid entries", path)
	}
	return grid, nil
}
