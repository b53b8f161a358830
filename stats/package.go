// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// stats implements the categorical distribution: validation, moments,
// evaluation, alias-table sampling and maximum-likelihood fitting.
package stats // import "github.com/aclements/go-catstats/stats"

import (
	"math"

	"github.com/cockroachdb/errors"
)

var inf = math.Inf(1)
var nan = math.NaN()

var (
	// ErrInvalidParameter indicates a distribution parameter that
	// does not describe a valid distribution, such as a
	// probability vector with a negative entry or a category
	// count less than 1.
	ErrInvalidParameter = errors.New("invalid distribution parameter")

	// ErrDomain indicates an argument outside the domain of a
	// function, such as a quantile probability outside [0, 1].
	ErrDomain = errors.New("argument outside function domain")

	// ErrInconsistentLength indicates that parallel slices, such
	// as sample labels and their weights, differ in length.
	ErrInconsistentLength = errors.New("inconsistent lengths")

	// ErrOutOfBounds indicates a sample label outside the
	// categories of a counts vector.
	ErrOutOfBounds = errors.New("sample label out of bounds")

	// ErrSampleSize indicates a sample that is empty or has no
	// total weight.
	ErrSampleSize = errors.New("sample is empty")

	// ErrConsumed indicates reuse of sufficient statistics that
	// have already been turned into a distribution.
	ErrConsumed = errors.New("sufficient statistics already consumed")
)
