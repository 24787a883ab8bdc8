// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mcmp

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_plot01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("plot01: log10Floor floors non-positive residuals instead of diverging")

	chk.Scalar(tst, "log10Floor(1e-8)", 1e-12, log10Floor(1e-8), -8)
	chk.Scalar(tst, "log10Floor(0)", 1e-12, log10Floor(0), -100)
	chk.Scalar(tst, "log10Floor(-1)", 1e-12, log10Floor(-1), -100)
}
