// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package progress implements the purely cosmetic status reporting gated by
// the "progress" hyperparameter (spec.md §6, §9 "Keep purely cosmetic; gate
// behind a boolean so it contributes zero work when disabled"). It mirrors
// the original Python implementation's three tqdm bars (Incompressibility,
// Field Error, Volume Error) with a bubbletea/bubbles/lipgloss TUI when
// stdout is a terminal, falling back to plain gosl/io lines otherwise.
package progress

import (
	"fmt"
	"math"
	"os"

	"github.com/cpmech/gosl/io"
	"github.com/mattn/go-isatty"

	"github.com/cpmech/florymcmp/mcmp"
)

// Reporter receives one Update per outer iteration and a Close when the run
// ends. It satisfies mcmp.ProgressReporter.
type Reporter interface {
	mcmp.ProgressReporter
}

// New returns a TUI reporter when stdout is a terminal and enabled is true,
// a line-printing fallback when enabled is true but stdout is not a
// terminal, or a NoOp reporter when enabled is false.
func New(enabled bool, tolerance float64) Reporter {
	if !enabled {
		return NoOp{}
	}
	if isatty.IsTerminal(os.Stdout.Fd()) {
		return newTUI(tolerance)
	}
	return &lineReporter{tolerance: tolerance}
}

// NoOp is a Reporter that does nothing, used when progress is disabled.
type NoOp struct{}

func (NoOp) Update(int, mcmp.Residuals) {}
func (NoOp) Close()                     {}

// lineReporter is the non-terminal fallback, printing one io.Pf line per
// update instead of rendering a TUI.
type lineReporter struct{ tolerance float64 }

func (l *lineReporter) Update(steps int, r mcmp.Residuals) {
	io.Pf("step %8d  incomp=%10.3e  omega=%10.3e  Js=%10.3e\n", steps, r.MaxAbsIncomp, r.MaxAbsOmegaDiff, r.MaxAbsJsDiff)
}

func (l *lineReporter) Close() {}

// barValue maps a residual to a [0,1] fraction of progress toward
// tolerance, the same log-scaled mapping the original Python used for its
// tqdm bars (bar_val_func in flory/mcmp.py).
func barValue(residual, tolerance float64) float64 {
	barMax := -math.Log10(tolerance)
	if barMax <= 0 {
		return 1
	}
	v := residual
	if v < 1e-100 {
		v = 1e-100
	}
	val := -math.Log10(v)
	if val < 0 {
		val = 0
	}
	if val > barMax {
		val = barMax
	}
	return val / barMax
}

func fmtPercent(frac float64) string {
	return fmt.Sprintf("%3.0f%%", frac*100)
}
