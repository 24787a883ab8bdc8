// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package progress

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/florymcmp/mcmp"
)

func Test_progress01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("progress01: NoOp does nothing and never panics")

	var r Reporter = NoOp{}
	r.Update(10, mcmp.Residuals{MaxAbsIncomp: 1})
	r.Close()
}

func Test_progress02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("progress02: barValue saturates at 0 and 1")

	chk.Scalar(tst, "barValue(tolerance, tolerance)", 1e-12, barValue(1e-5, 1e-5), 1.0)
	chk.Scalar(tst, "barValue(1.0, 1e-5)", 1e-12, barValue(1.0, 1e-5), 0.0)

	mid := barValue(1e-3, 1e-6)
	if mid <= 0 || mid >= 1 {
		tst.Fatalf("expected barValue strictly between 0 and 1 for a mid-range residual, got %v", mid)
	}
}

func Test_progress03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("progress03: fmtPercent formats a rounded percentage")

	if got := fmtPercent(0.5); got != " 50%" {
		tst.Fatalf("fmtPercent(0.5) = %q, want %q", got, " 50%")
	}
	if got := fmtPercent(1.0); got != "100%" {
		tst.Fatalf("fmtPercent(1.0) = %q, want %q", got, "100%")
	}
}
