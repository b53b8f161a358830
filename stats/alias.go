// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"math/rand/v2"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/floats"
)

// An AliasTable draws from a finite discrete distribution over the
// labels 1, 2, ..., n in O(1) time per draw using Walker's alias
// method.
//
// The table has n columns of equal width. Column i holds label i+1
// with probability prob[i] and label alias[i]+1 otherwise. A draw
// picks a column uniformly and then flips a biased coin.
//
// The table construction follows Vose, Michael D. (1991). "A Linear
// Algorithm For Generating Random Numbers With a Given Distribution".
// IEEE Transactions on Software Engineering 17 (9): 972-975.
type AliasTable struct {
	prob  []float64
	alias []int
}

// NewAliasTable returns an alias table that draws label i+1 with
// probability proportional to weights[i]. weights need not be
// normalized, but must be non-empty, finite and nonnegative, with a
// positive total. Otherwise, NewAliasTable returns an error matching
// ErrInvalidParameter.
func NewAliasTable(weights []float64) (*AliasTable, error) {
	n := len(weights)
	if n == 0 {
		return nil, errors.Wrap(ErrInvalidParameter, "empty alias table weights")
	}
	for i, w := range weights {
		if !(w >= 0) || math.IsInf(w, 1) {
			return nil, errors.Wrapf(ErrInvalidParameter, "weight %v of label %d", w, i+1)
		}
	}
	sum := floats.Sum(weights)
	if !(sum > 0) || math.IsInf(sum, 1) {
		return nil, errors.Wrapf(ErrInvalidParameter, "alias table weights sum to %v", sum)
	}

	// Scale so the average column holds exactly 1.
	scaled := floats.ScaleTo(make([]float64, n), float64(n)/sum, weights)

	prob := make([]float64, n)
	alias := make([]int, n)
	small := make([]int, 0, n)
	large := make([]int, 0, n)
	for i, s := range scaled {
		if s < 1 {
			small = append(small, i)
		} else {
			large = append(large, i)
		}
	}

	// Fill each underfull column from an overfull one. The
	// donor's remaining mass decides which list it goes back to.
	for len(small) > 0 && len(large) > 0 {
		s := small[len(small)-1]
		small = small[:len(small)-1]
		l := large[len(large)-1]
		large = large[:len(large)-1]

		prob[s] = scaled[s]
		alias[s] = l

		scaled[l] -= 1 - scaled[s]
		if scaled[l] < 1 {
			small = append(small, l)
		} else {
			large = append(large, l)
		}
	}

	// Whatever is left is full up to round-off.
	for _, i := range large {
		prob[i], alias[i] = 1, i
	}
	for _, i := range small {
		prob[i], alias[i] = 1, i
	}

	return &AliasTable{prob, alias}, nil
}

// Len returns the number of labels t draws from.
func (t *AliasTable) Len() int {
	return len(t.prob)
}

// Rand returns a label in [1, t.Len()] drawn using r. If r is nil, it
// uses the global source of math/rand/v2.
func (t *AliasTable) Rand(r *rand.Rand) int {
	var i int
	var u float64
	if r == nil {
		i, u = rand.IntN(len(t.prob)), rand.Float64()
	} else {
		i, u = r.IntN(len(t.prob)), r.Float64()
	}
	if u < t.prob[i] {
		return i + 1
	}
	return t.alias[i] + 1
}

// Prob returns the probability that t draws label. This is computed
// from the table itself, so it reflects any round-off introduced
// while building it.
func (t *AliasTable) Prob(label int) float64 {
	n := len(t.prob)
	if label < 1 || label > n {
		return 0
	}
	j := label - 1
	mass := 0.0
	for i, p := range t.prob {
		if i == j {
			mass += p
		}
		if t.alias[i] == j {
			mass += 1 - p
		}
	}
	return mass / float64(n)
}
