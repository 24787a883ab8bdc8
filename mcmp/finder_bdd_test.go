// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mcmp_test

import (
	"testing"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/cpmech/florymcmp/mcmp"
)

func TestMcmp(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "mcmp facade suite")
}

var _ = Describe("Finder.Run", func() {

	fastHyperparams := func() mcmp.Hyperparams {
		hp := mcmp.DefaultHyperparams()
		hp.Progress = false
		hp.MaxSteps = 20_000
		hp.Interval = 1_000
		hp.Tolerance = 1e-5
		return hp
	}

	Context("S2 — symmetric binary demixing", func() {
		It("splits into two phases of roughly equal volume, mirrored around 0.5", func() {
			chi := [][]float64{{0, 3}, {3, 0}}
			f, err := mcmp.New(chi, []float64{0.5, 0.5}, []float64{1, 1}, 8, 0, fastHyperparams())
			Expect(err).NotTo(HaveOccurred())

			volumes, compositions, err := f.Run(mcmp.RunOptions{}, nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(volumes).To(HaveLen(2))

			sum := volumes[0] + volumes[1]
			Expect(sum).To(BeNumerically("~", 1.0, 1e-8))
			Expect(volumes[0]).To(BeNumerically("~", 0.5, 0.1))

			// the two phases should be roughly mirror images around 0.5.
			Expect(compositions[0][0] + compositions[1][0]).To(BeNumerically("~", 1.0, 0.05))
			for p := range compositions {
				rowSum := compositions[p][0] + compositions[p][1]
				Expect(rowSum).To(BeNumerically("~", 1.0, 1e-3))
			}
		})
	})

	Context("S3 — asymmetric binary, off-center mean", func() {
		It("recovers the target phi-bar as the volume-weighted average composition", func() {
			chi := [][]float64{{0, 3}, {3, 0}}
			phiMeans := []float64{0.3, 0.7}
			f, err := mcmp.New(chi, phiMeans, []float64{1, 1}, 8, 1, fastHyperparams())
			Expect(err).NotTo(HaveOccurred())

			volumes, compositions, err := f.Run(mcmp.RunOptions{}, nil)
			Expect(err).NotTo(HaveOccurred())

			weighted := make([]float64, 2)
			for p := range volumes {
				for i := 0; i < 2; i++ {
					weighted[i] += volumes[p] * compositions[p][i]
				}
			}
			Expect(weighted[0]).To(BeNumerically("~", phiMeans[0], 1e-3))
			Expect(weighted[1]).To(BeNumerically("~", phiMeans[1], 1e-3))
		})
	})

	Context("S6 — over-provisioned M", func() {
		It("collapses to at most 2 phases for a 2-phase system given M=64", func() {
			chi := [][]float64{{0, 3}, {3, 0}}
			hp := fastHyperparams()
			f, err := mcmp.New(chi, []float64{0.5, 0.5}, []float64{1, 1}, 64, 5, hp)
			Expect(err).NotTo(HaveOccurred())

			volumes, _, err := f.Run(mcmp.RunOptions{}, nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(len(volumes)).To(BeNumerically("<=", 2))
		})
	})

	Context("non-negativity (universal property 4)", func() {
		It("never returns a negative J or phi", func() {
			chi := [][]float64{{0, 2.5, 0}, {2.5, 0, 0}, {0, 0, 0}}
			f, err := mcmp.New(chi, []float64{0.3, 0.3, 0.4}, []float64{1, 1, 1}, 12, 9, fastHyperparams())
			Expect(err).NotTo(HaveOccurred())

			volumes, compositions, err := f.Run(mcmp.RunOptions{}, nil)
			Expect(err).NotTo(HaveOccurred())
			for _, v := range volumes {
				Expect(v).To(BeNumerically(">=", 0))
			}
			for _, row := range compositions {
				for _, phi := range row {
					Expect(phi).To(BeNumerically(">=", 0))
				}
			}
		})
	})
})
