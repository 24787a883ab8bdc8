// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads the inputs of a florymcmp run (chi, phi-bar, sizes,
// compartment count, hyperparameters) from a TOML file via spf13/viper, the
// Go-native analogue of the teacher's JSON .sim files (inp/sim.go), grounded
// on papapumpkin-quasar's CLI/config stack (SPEC_FULL §1.3, §2).
package config

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/spf13/viper"

	"github.com/cpmech/florymcmp/mcmp"
)

// System holds the non-hyperparameter inputs to mcmp.New.
type System struct {
	Chi             [][]float64
	PhiMeans        []float64
	Sizes           []float64
	NumCompartments int
	Seed            int64
}

// FromTOML reads path with viper and returns the decoded system and
// hyperparameter table, applying DefaultHyperparams for any field the file
// omits.
func FromTOML(path string) (*System, mcmp.Hyperparams, error) {
	hp := mcmp.DefaultHyperparams()

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, hp, chk.Err("cannot read config %q: %v", path, err)
	}

	sys := &System{
		NumCompartments: v.GetInt("num_compartments"),
		Seed:            v.GetInt64("seed"),
	}
	if sys.NumCompartments == 0 {
		return nil, hp, chk.Err("config %q must set num_compartments", path)
	}

	sys.PhiMeans = v.GetFloat64Slice("phi_means")
	sys.Sizes = v.GetFloat64Slice("sizes")

	var rows [][]float64
	if err := v.UnmarshalKey("chis", &rows); err != nil {
		return nil, hp, chk.Err("cannot parse chis matrix from %q: %v", path, err)
	}
	sys.Chi = rows

	setIfPresent(v, "max_steps", func(x int) { hp.MaxSteps = x })
	setIfPresentStr(v, "convergence_criterion", func(x string) { hp.ConvergenceCriterion = x })
	setIfPresentF(v, "tolerance", func(x float64) { hp.Tolerance = x })
	setIfPresent(v, "interval", func(x int) { hp.Interval = x })
	if v.IsSet("progress") {
		hp.Progress = v.GetBool("progress")
	}
	setIfPresentF(v, "random_std", func(x float64) { hp.RandomStd = x })
	setIfPresentF(v, "acceptance_js", func(x float64) { hp.AcceptanceJs = x })
	setIfPresentF(v, "acceptance_omega", func(x float64) { hp.AcceptanceOmega = x })
	setIfPresentF(v, "js_step_upper_bound", func(x float64) { hp.JsStepUpperBound = x })
	setIfPresentF(v, "kill_threshold", func(x float64) { hp.KillThreshold = x })
	setIfPresentF(v, "revive_scaler", func(x float64) { hp.ReviveScaler = x })
	setIfPresent(v, "max_revive_per_compartment", func(x int) { hp.MaxRevivePerCompartment = x })
	setIfPresentF(v, "additional_chis_shift", func(x float64) { hp.AdditionalChisShift = x })

	return sys, hp, nil
}

func setIfPresent(v *viper.Viper, key string, set func(int)) {
	if v.IsSet(key) {
		set(v.GetInt(key))
	}
}

func setIfPresentF(v *viper.Viper, key string, set func(float64)) {
	if v.IsSet(key) {
		set(v.GetFloat64(key))
	}
}

func setIfPresentStr(v *viper.Viper, key string, set func(string)) {
	if v.IsSet(key) {
		set(v.GetString(key))
	}
}

// FromPrms builds a Hyperparams table from a gosl/fun.Prms list, mirroring
// the teacher's Model.Init(prms fun.Prms) convention (e.g.
// mdl/fluid.Model.Init) for callers that already speak that idiom instead
// of TOML.
func FromPrms(prms fun.Prms) mcmp.Hyperparams {
	hp := mcmp.DefaultHyperparams()
	for _, p := range prms {
		switch p.N {
		case "max_steps":
			hp.MaxSteps = int(p.V)
		case "tolerance":
			hp.Tolerance = p.V
		case "interval":
			hp.Interval = int(p.V)
		case "progress":
			hp.Progress = p.V > 0
		case "random_std":
			hp.RandomStd = p.V
		case "acceptance_js":
			hp.AcceptanceJs = p.V
		case "acceptance_omega":
			hp.AcceptanceOmega = p.V
		case "js_step_upper_bound":
			hp.JsStepUpperBound = p.V
		case "kill_threshold":
			hp.KillThreshold = p.V
		case "revive_scaler":
			hp.ReviveScaler = p.V
		case "max_revive_per_compartment":
			hp.MaxRevivePerCompartment = int(p.V)
		case "additional_chis_shift":
			hp.AdditionalChisShift = p.V
		}
	}
	return hp
}
