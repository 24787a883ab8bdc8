// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/cpmech/florymcmp/mcmp"
)

// tomlDoc is the on-disk shape written by WriteDefault and read back by
// FromTOML's UnmarshalKey/GetFloat64Slice calls.
type tomlDoc struct {
	NumCompartments int         `toml:"num_compartments"`
	Seed            int64       `toml:"seed"`
	PhiMeans        []float64   `toml:"phi_means"`
	Sizes           []float64   `toml:"sizes"`
	Chis            [][]float64 `toml:"chis"`

	MaxSteps                int     `toml:"max_steps"`
	ConvergenceCriterion    string  `toml:"convergence_criterion"`
	Tolerance               float64 `toml:"tolerance"`
	Interval                int     `toml:"interval"`
	Progress                bool    `toml:"progress"`
	RandomStd               float64 `toml:"random_std"`
	AcceptanceJs            float64 `toml:"acceptance_js"`
	AcceptanceOmega         float64 `toml:"acceptance_omega"`
	JsStepUpperBound        float64 `toml:"js_step_upper_bound"`
	KillThreshold           float64 `toml:"kill_threshold"`
	ReviveScaler            float64 `toml:"revive_scaler"`
	MaxRevivePerCompartment int     `toml:"max_revive_per_compartment"`
	AdditionalChisShift     float64 `toml:"additional_chis_shift"`
}

// WriteDefault writes a starter config for a binary symmetric mixture
// (spec.md scenario S2) to path, marshaled directly with go-toml/v2 rather
// than routed through viper, since viper in this repo is read-oriented
// (SPEC_FULL §1.3).
func WriteDefault(path string) error {
	hp := mcmp.DefaultHyperparams()
	doc := tomlDoc{
		NumCompartments:         8,
		Seed:                    0,
		PhiMeans:                []float64{0.5, 0.5},
		Sizes:                   []float64{1, 1},
		Chis:                    [][]float64{{0, 3}, {3, 0}},
		MaxSteps:                hp.MaxSteps,
		ConvergenceCriterion:    hp.ConvergenceCriterion,
		Tolerance:               hp.Tolerance,
		Interval:                hp.Interval,
		Progress:                hp.Progress,
		RandomStd:               hp.RandomStd,
		AcceptanceJs:            hp.AcceptanceJs,
		AcceptanceOmega:         hp.AcceptanceOmega,
		JsStepUpperBound:        hp.JsStepUpperBound,
		KillThreshold:           hp.KillThreshold,
		ReviveScaler:            hp.ReviveScaler,
		MaxRevivePerCompartment: hp.MaxRevivePerCompartment,
		AdditionalChisShift:     hp.AdditionalChisShift,
	}
	out, err := toml.Marshal(doc)
	if err != nil {
		return err
	}
	return os.WriteFile(path, out, 0644)
}
