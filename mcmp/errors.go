// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mcmp

import "github.com/cpmech/gosl/chk"

// ShapeError indicates a matrix/vector argument does not match the
// component or compartment count implied by earlier construction
// (spec.md §7). It always wraps chk.Err so messages match the teacher's
// formatted-error convention.
type ShapeError struct{ err error }

func (e *ShapeError) Error() string { return e.err.Error() }

func newShapeError(format string, args ...interface{}) error {
	return &ShapeError{err: chk.Err(format, args...)}
}

// VolumeFractionError indicates phiMeans contains a negative entry, or a
// re-seed composition contains a non-positive entry whose logarithm would
// diverge (spec.md §7).
type VolumeFractionError struct{ err error }

func (e *VolumeFractionError) Error() string { return e.err.Error() }

func newVolumeFractionError(format string, args ...interface{}) error {
	return &VolumeFractionError{err: chk.Err(format, args...)}
}

// ConfigError indicates an unknown convergence_criterion at run time
// (spec.md §7).
type ConfigError struct{ err error }

func (e *ConfigError) Error() string { return e.err.Error() }

func newConfigError(format string, args ...interface{}) error {
	return &ConfigError{err: chk.Err(format, args...)}
}
