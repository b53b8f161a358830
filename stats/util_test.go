// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"sort"
	"testing"
)

func aeq(expect, got float64) bool {
	return math.Abs(expect-got) < 0.00001
}

// testFunc checks f against each x → f(x) pair in vals.
func testFunc(t *testing.T, name string, f func(float64) float64, vals map[float64]float64) {
	t.Helper()
	xs := make([]float64, 0, len(vals))
	for x := range vals {
		xs = append(xs, x)
	}
	sort.Float64s(xs)
	for _, x := range xs {
		want := vals[x]
		if got := f(x); !aeq(want, got) {
			t.Errorf("%s(%v) = %v, want %v", name, x, got, want)
		}
	}
}

// testDiscreteCDF checks that dist's CDF is the running sum of its
// PMF, including between steps and outside its bounds.
func testDiscreteCDF(t *testing.T, name string, dist DiscreteDist) {
	t.Helper()
	lo, hi := dist.Bounds()
	step := dist.Step()
	want := map[float64]float64{
		lo - 1000*step: 0,
		lo - step:      0,
		lo - step/2:    0,
		hi + step:      1,
		hi + 1000*step: 1,
	}
	sum := 0.0
	for x := lo; x <= hi; x += step {
		sum += dist.PMF(x)
		want[x] = sum
		want[x+step/2] = sum
	}
	testFunc(t, name, dist.CDF, want)
}
