// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/floats"
)

// CategoricalStats are the sufficient statistics for fitting a
// categorical distribution: the (possibly weighted) number of
// observations of each category.
//
// CategoricalStats are consumed by Fit, which hands Counts over to the
// fitted distribution. The zero value is already consumed.
type CategoricalStats struct {
	// Counts[i] is the total weight of observations of category
	// i+1.
	Counts []float64
}

// checkLabels returns an error if any label is outside [1, k].
func checkLabels(k int, labels []int) error {
	for i, l := range labels {
		if l < 1 || l > k {
			return errors.Wrapf(ErrOutOfBounds, "label %d at index %d not in [1, %d]", l, i, k)
		}
	}
	return nil
}

// AccumulateCounts adds 1 to counts[l-1] for each label l in labels.
//
// It fails with ErrOutOfBounds if a label is outside [1, len(counts)].
// In that case counts is left unmodified.
func AccumulateCounts(counts []float64, labels []int) error {
	if err := checkLabels(len(counts), labels); err != nil {
		return err
	}
	for _, l := range labels {
		counts[l-1]++
	}
	return nil
}

// AccumulateWeightedCounts adds weights[i] to counts[labels[i]-1] for
// each i.
//
// It fails with ErrInconsistentLength if labels and weights differ in
// length, ErrInvalidParameter if a weight is negative or not finite,
// and ErrOutOfBounds if a label is outside [1, len(counts)]. On
// failure counts is left unmodified.
func AccumulateWeightedCounts(counts []float64, labels []int, weights []float64) error {
	if len(labels) != len(weights) {
		return errors.Wrapf(ErrInconsistentLength, "%d labels, %d weights", len(labels), len(weights))
	}
	for i, w := range weights {
		if !(w >= 0) || math.IsInf(w, 1) {
			return errors.Wrapf(ErrInvalidParameter, "weight %v at index %d", w, i)
		}
	}
	if err := checkLabels(len(counts), labels); err != nil {
		return err
	}
	for i, l := range labels {
		counts[l-1] += weights[i]
	}
	return nil
}

// accumulate is AccumulateCounts if weights is nil and
// AccumulateWeightedCounts otherwise.
func accumulate(counts []float64, labels []int, weights []float64) error {
	if weights == nil {
		return AccumulateCounts(counts, labels)
	}
	return AccumulateWeightedCounts(counts, labels, weights)
}

// CategoricalSuffStats returns the sufficient statistics of labels
// for a categorical distribution over k categories. If weights is
// nil, every label has weight 1.
func CategoricalSuffStats(k int, labels []int, weights []float64) (*CategoricalStats, error) {
	if k < 1 {
		return nil, errors.Wrapf(ErrInvalidParameter, "category count %d < 1", k)
	}
	counts := make([]float64, k)
	if err := accumulate(counts, labels, weights); err != nil {
		return nil, err
	}
	return &CategoricalStats{counts}, nil
}

// Fit returns the maximum-likelihood categorical distribution for s.
//
// Fit normalizes s.Counts in place and the result takes ownership of
// it, so s is consumed: Fit clears s.Counts and any later call fails
// with ErrConsumed. If a count is negative or NaN, Fit fails with
// ErrInvalidParameter, and if the counts have no positive total, it
// fails with ErrSampleSize. In both cases s is left intact.
func (s *CategoricalStats) Fit() (*Categorical, error) {
	if s.Counts == nil {
		return nil, ErrConsumed
	}
	d, err := fitCounts(s.Counts)
	if err != nil {
		return nil, err
	}
	s.Counts = nil
	return d, nil
}

// fitCounts normalizes counts in place and wraps it in a Categorical.
// It fails with ErrInvalidParameter if any count is negative or NaN.
func fitCounts(counts []float64) (*Categorical, error) {
	for i, c := range counts {
		if !(c >= 0) {
			return nil, errors.Wrapf(ErrInvalidParameter, "count %v of category %d", c, i+1)
		}
	}
	total := floats.Sum(counts)
	if !(total > 0) || math.IsInf(total, 1) {
		return nil, errors.Wrapf(ErrSampleSize, "total weight %v", total)
	}
	floats.Scale(1/total, counts)
	return NewCategoricalTrusted(counts), nil
}

// FitCategorical returns the maximum-likelihood categorical
// distribution over k categories for labels. If weights is nil, every
// label has weight 1.
//
// This is equivalent to CategoricalSuffStats followed by Fit.
func FitCategorical(k int, labels []int, weights []float64) (*Categorical, error) {
	if k < 1 {
		return nil, errors.Wrapf(ErrInvalidParameter, "category count %d < 1", k)
	}
	counts := make([]float64, k)
	if err := accumulate(counts, labels, weights); err != nil {
		return nil, err
	}
	return fitCounts(counts)
}

// FitCategoricalLabels is like FitCategorical, but takes the number of
// categories to be the largest label. It fails with ErrSampleSize if
// labels is empty and ErrOutOfBounds if any label is less than 1.
func FitCategoricalLabels(labels []int, weights []float64) (*Categorical, error) {
	if len(labels) == 0 {
		return nil, ErrSampleSize
	}
	lo, hi := labelRange(labels)
	if lo < 1 {
		return nil, errors.Wrapf(ErrOutOfBounds, "label %d < 1", lo)
	}
	return FitCategorical(hi, labels, weights)
}
