// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

// A DiscreteDist is a discrete statistical distribution.
//
// The random variable is passed as a float64 so that integer-valued
// distributions and other step sizes share one interface. float64
// exactly represents every integer in ±2**53.
type DiscreteDist interface {
	// PMF returns the value of the probability mass function
	// Pr[X = x]. It is 0 for any x outside the support,
	// including non-integral x.
	PMF(x float64) float64

	// CDF returns the cumulative probability Pr[X <= x].
	//
	// Note for implementers: for integer-valued distributions,
	// round x using int(math.Floor(x)). Do not use int(x), since
	// that truncates toward zero.
	CDF(x float64) float64

	// Step returns s, where the distribution is defined for sℕ.
	Step() float64

	// Bounds returns reasonable bounds for this distribution's
	// PMF and CDF. Both bounds must be integer multiples of
	// Step().
	//
	// If this distribution has finite support, this must return
	// exact bounds l, h such that PMF(l')=0 for all l' < l and
	// PMF(h')=0 for all h' >= h+Step().
	Bounds() (float64, float64)
}

// A FiniteDist is an integer-valued discrete distribution with
// finite support.
type FiniteDist interface {
	DiscreteDist

	// Support returns the smallest and largest values of the
	// random variable with nonzero-eligible probability.
	Support() (lo, hi int)

	// Quantile returns the smallest x in the support such that
	// CDF(x) >= p. It fails with ErrDomain unless 0 <= p <= 1.
	Quantile(p float64) (int, error)

	Mean() float64
	Variance() float64

	// Sampler returns an alias table for drawing from this
	// distribution.
	Sampler() *AliasTable
}

var _ FiniteDist = (*Categorical)(nil)
