// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"math"
	"math/cmplx"
	"math/rand/v2"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/stat"
)

// probTolerance is the relative and absolute tolerance on the sum of
// a probability vector. It is the square root of machine epsilon.
const probTolerance = 1.4901161193847656e-08

// Categorical is a categorical distribution over the K outcomes
// 1, 2, ..., K, where outcome i has probability p[i-1].
//
// A Categorical is immutable once constructed and safe for concurrent
// use, provided the caller honors the ownership rules of the
// constructor it used.
type Categorical struct {
	p []float64
}

// NewCategorical returns the categorical distribution with
// probabilities p. p must be non-empty, every entry must be
// nonnegative, and the entries must sum to 1. Otherwise, NewCategorical
// returns an error matching ErrInvalidParameter.
//
// The returned distribution retains p rather than copying it. The
// caller must not modify p afterward.
func NewCategorical(p []float64) (*Categorical, error) {
	if err := checkProbs(p); err != nil {
		return nil, err
	}
	return &Categorical{p}, nil
}

// NewCategoricalTrusted is like NewCategorical, but performs no
// validation. It is meant for callers that construct p in a way that
// already guarantees it is a probability vector. Like NewCategorical,
// it takes ownership of p.
func NewCategoricalTrusted(p []float64) *Categorical {
	return &Categorical{p}
}

// NewUniformCategorical returns the categorical distribution that
// assigns probability 1/k to each of k outcomes. It fails with
// ErrInvalidParameter if k < 1.
func NewUniformCategorical(k int) (*Categorical, error) {
	if k < 1 {
		return nil, errors.Wrapf(ErrInvalidParameter, "category count %d < 1", k)
	}
	p := make([]float64, k)
	for i := range p {
		p[i] = 1 / float64(k)
	}
	return &Categorical{p}, nil
}

// checkProbs returns an error if p is not a probability vector.
func checkProbs(p []float64) error {
	if len(p) == 0 {
		return errors.Wrap(ErrInvalidParameter, "empty probability vector")
	}
	for i, x := range p {
		// This also rejects NaN.
		if !(x >= 0) || math.IsInf(x, 1) {
			return errors.Wrapf(ErrInvalidParameter, "probability %v of category %d", x, i+1)
		}
	}
	if sum := floats.Sum(p); !scalar.EqualWithinAbsOrRel(sum, 1, probTolerance, probTolerance) {
		return errors.Wrapf(ErrInvalidParameter, "probabilities sum to %v", sum)
	}
	return nil
}

// K returns the number of categories of d.
func (d *Categorical) K() int {
	return len(d.p)
}

// Probs returns a copy of the probability vector of d.
func (d *Categorical) Probs() []float64 {
	return append([]float64(nil), d.p...)
}

func (d *Categorical) String() string {
	return fmt.Sprintf("Categorical(K=%d, p=%v)", len(d.p), d.p)
}

// Mean returns the expected outcome of d.
func (d *Categorical) Mean() float64 {
	m := 0.0
	for i, p := range d.p {
		m += float64(i+1) * p
	}
	return m
}

// Median returns the smallest outcome i such that CDF(i) >= 0.5.
//
// If rounding keeps the cumulative mass below 0.5 all the way through
// the support, Median returns K.
func (d *Categorical) Median() int {
	return d.firstReaching(0.5)
}

// cumulative returns p[0] + ... + p[n-1], summed left to right.
// firstReaching accumulates in the same order, so
// firstReaching(cumulative(n)) <= n for every n.
func (d *Categorical) cumulative(n int) float64 {
	cp := 0.0
	for _, p := range d.p[:n] {
		cp += p
	}
	return cp
}

// firstReaching returns the smallest outcome i such that the
// cumulative probability through i is at least target, or K if there
// is none.
func (d *Categorical) firstReaching(target float64) int {
	cp := 0.0
	for i, p := range d.p {
		cp += p
		if cp >= target {
			return i + 1
		}
	}
	return len(d.p)
}

// centralMoment returns E[(X - mean)^n].
func (d *Categorical) centralMoment(n float64) float64 {
	mean := d.Mean()
	m := 0.0
	for i, p := range d.p {
		m += math.Pow(float64(i+1)-mean, n) * p
	}
	return m
}

func (d *Categorical) Variance() float64 {
	return d.centralMoment(2)
}

func (d *Categorical) StdDev() float64 {
	return math.Sqrt(d.Variance())
}

// Skewness returns the skewness of d. This is NaN if d has a single
// outcome with nonzero probability.
func (d *Categorical) Skewness() float64 {
	v := d.Variance()
	if v == 0 {
		return nan
	}
	return d.centralMoment(3) / math.Pow(v, 1.5)
}

// ExcessKurtosis returns the kurtosis of d minus 3. This is NaN if d
// has a single outcome with nonzero probability.
func (d *Categorical) ExcessKurtosis() float64 {
	v := d.Variance()
	if v == 0 {
		return nan
	}
	return d.centralMoment(4)/(v*v) - 3
}

// Entropy returns the Shannon entropy of d in nats.
func (d *Categorical) Entropy() float64 {
	return stat.Entropy(d.p)
}

// MGF returns the moment generating function of d at t,
// E[e^(tX)] = Σ p_i e^(t i).
func (d *Categorical) MGF(t float64) float64 {
	m := 0.0
	for i, p := range d.p {
		m += p * math.Exp(t*float64(i+1))
	}
	return m
}

// CF returns the characteristic function of d at t,
// E[e^(itX)] = Σ p_i e^(i t k).
func (d *Categorical) CF(t float64) complex128 {
	var c complex128
	for i, p := range d.p {
		c += complex(p, 0) * cmplx.Exp(complex(0, t*float64(i+1)))
	}
	return c
}

// FlatMGF returns Σ p_i e^t, which omits the outcome from the
// exponent. For a valid distribution this is e^t times the total
// mass. It exists for compatibility with libraries that compute the
// categorical MGF this way; most callers want MGF.
func (d *Categorical) FlatMGF(t float64) float64 {
	m := 0.0
	for _, p := range d.p {
		m += p * math.Exp(t)
	}
	return m
}

// FlatCF is the characteristic-function counterpart of FlatMGF,
// Σ p_i e^(it).
func (d *Categorical) FlatCF(t float64) complex128 {
	var c complex128
	for _, p := range d.p {
		c += complex(p, 0) * cmplx.Exp(complex(0, t))
	}
	return c
}

// Mode returns the most probable outcome of d. If several outcomes
// are equally probable, it returns the smallest.
func (d *Categorical) Mode() int {
	return floats.MaxIdx(d.p) + 1
}

// Modes returns all outcomes of d that attain the maximum
// probability, in increasing order.
func (d *Categorical) Modes() []int {
	maxp := floats.Max(d.p)
	var modes []int
	for i, p := range d.p {
		if p == maxp {
			modes = append(modes, i+1)
		}
	}
	return modes
}

// PMF returns Pr[X = x]. This is 0 unless x is an integer in [1, K].
func (d *Categorical) PMF(x float64) float64 {
	if x != math.Floor(x) || x < 1 || x > float64(len(d.p)) {
		return 0
	}
	return d.p[int(x)-1]
}

// PMFEach returns PMF(xs[i]) for each i.
func (d *Categorical) PMFEach(xs []float64) []float64 {
	return atEach(d.PMF, xs)
}

// LogPMF returns log(PMF(x)), which is -Inf outside the support.
func (d *Categorical) LogPMF(x float64) float64 {
	return math.Log(d.PMF(x))
}

// PMFRange sets out[i] to PMF(lo+i) for each i. The window
// [lo, lo+len(out)) may extend past either end of the support.
func (d *Categorical) PMFRange(out []float64, lo int) {
	for i := range out {
		x := lo + i
		if x < 1 || x > len(d.p) {
			out[i] = 0
		} else {
			out[i] = d.p[x-1]
		}
	}
}

// CDF returns Pr[X <= x].
func (d *Categorical) CDF(x float64) float64 {
	if math.IsNaN(x) {
		return nan
	}
	x = math.Floor(x)
	if x < 1 {
		return 0
	} else if x >= float64(len(d.p)) {
		return 1
	}
	return d.cumulative(int(x))
}

// CDFEach returns CDF(xs[i]) for each i.
func (d *Categorical) CDFEach(xs []float64) []float64 {
	return atEach(d.CDF, xs)
}

// Quantile returns the smallest outcome i such that the cumulative
// probability through i is at least p. The result never exceeds K,
// even if rounding keeps the cumulative mass below p. Quantile fails
// with ErrDomain unless 0 <= p <= 1.
func (d *Categorical) Quantile(p float64) (int, error) {
	if !(p >= 0 && p <= 1) {
		return 0, errors.Wrapf(ErrDomain, "quantile probability %v not in [0, 1]", p)
	}
	return d.firstReaching(p), nil
}

func (d *Categorical) Step() float64 {
	return 1
}

func (d *Categorical) Bounds() (float64, float64) {
	return 1, float64(len(d.p))
}

// Support returns 1 and K, the smallest and largest outcomes of d.
func (d *Categorical) Support() (lo, hi int) {
	return 1, len(d.p)
}

// Sampler returns an alias table for drawing outcomes of d. Building
// the table costs O(K); each draw from it costs O(1).
//
// Sampler panics if d was built by NewCategoricalTrusted from a
// vector with no positive mass.
func (d *Categorical) Sampler() *AliasTable {
	t, err := NewAliasTable(d.p)
	if err != nil {
		panic(errors.NewAssertionErrorWithWrappedErrf(err, "sampler for %v", d))
	}
	return t
}

// Rand draws one outcome of d using r, or the global source if r is
// nil. It builds a new alias table on every call; use Sampler for
// repeated draws.
func (d *Categorical) Rand(r *rand.Rand) int {
	return d.Sampler().Rand(r)
}
