// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aclements/go-catstats/stats"
)

func TestReadInput(t *testing.T) {
	labels, weights, err := readInput(strings.NewReader("1\n2\n\n2\n3\n"), false)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 2, 3}, labels)
	assert.Nil(t, weights)

	labels, weights, err = readInput(strings.NewReader("1 0.5\n2 1.5\n"), true)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, labels)
	assert.Equal(t, []float64{0.5, 1.5}, weights)

	for _, in := range []string{"x\n", "1 2\n"} {
		_, _, err = readInput(strings.NewReader(in), false)
		assert.Error(t, err, "%q", in)
	}
	_, _, err = readInput(strings.NewReader("1\n"), true)
	assert.Error(t, err)
	_, _, err = readInput(strings.NewReader("1 w\n"), true)
	assert.Error(t, err)
}

func TestDescribe(t *testing.T) {
	d, err := stats.NewCategorical([]float64{0.2, 0.5, 0.3})
	require.NoError(t, err)

	var buf strings.Builder
	describe(&buf, d)
	out := buf.String()
	assert.Contains(t, out, "K 3  mean 2.1  median 2  mode 2\n")
	assert.Contains(t, out, "  50%ile 2\n")
	assert.Contains(t, out, "       1 0.2        0.2\n")
	assert.Contains(t, out, "       3 0.3        1\n")
}

func TestPrintDraws(t *testing.T) {
	d, err := stats.NewCategorical([]float64{0, 1})
	require.NoError(t, err)

	var buf strings.Builder
	printDraws(&buf, d, 10, rand.New(rand.NewPCG(1, 0)))
	out := buf.String()
	assert.Contains(t, out, "10 draws\n")
	assert.Contains(t, out, "       1 0          0\n")
	assert.Contains(t, out, "       2 1          1\n")
}
