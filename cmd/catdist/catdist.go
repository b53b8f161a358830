// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// catdist reads newline-separated category labels from stdin, fits a
// categorical distribution to them and describes it.
//
// Labels are integers starting at 1. With --weighted, each line is a
// label followed by a nonnegative weight.
package main

import (
	"bufio"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"strconv"
	"strings"

	"github.com/akamensky/argparse"
	"github.com/cockroachdb/errors"
	"github.com/cyclopcam/logs"

	"github.com/aclements/go-catstats/stats"
)

func main() {
	parser := argparse.NewParser("catdist", "Fit and describe a categorical distribution")
	k := parser.Int("k", "categories", &argparse.Options{Help: "Number of categories (0 to use the largest label)", Default: 0})
	weighted := parser.Flag("w", "weighted", &argparse.Options{Help: "Each line is 'label weight'", Default: false})
	draws := parser.Int("n", "draws", &argparse.Options{Help: "Number of draws to sample from the fitted distribution", Default: 0})
	seed := parser.Int("s", "seed", &argparse.Options{Help: "Seed for sampling", Default: 1})
	err := parser.Parse(os.Args)
	if err != nil {
		fmt.Print(parser.Usage(err))
		os.Exit(1)
	}

	logger, err := logs.NewLog()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	labels, weights, err := readInput(os.Stdin, *weighted)
	if err != nil {
		logger.Errorf("Reading input: %v", err)
		os.Exit(1)
	}
	logger.Infof("Read %d observations", len(labels))

	var d *stats.Categorical
	if *k > 0 {
		d, err = stats.FitCategorical(*k, labels, weights)
	} else {
		d, err = stats.FitCategoricalLabels(labels, weights)
	}
	if err != nil {
		logger.Errorf("Fitting: %v", err)
		os.Exit(1)
	}

	describe(os.Stdout, d)

	if *draws > 0 {
		r := rand.New(rand.NewPCG(uint64(*seed), 0))
		fmt.Println()
		printDraws(os.Stdout, d, *draws, r)
	}
}

// readInput parses one observation per line. Blank lines are skipped.
// If weighted is false, weights is nil.
func readInput(r io.Reader, weighted bool) (labels []int, weights []float64, err error) {
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		want := 1
		if weighted {
			want = 2
		}
		if len(fields) != want {
			return nil, nil, errors.Newf("line %d: want %d fields, got %d", line, want, len(fields))
		}

		label, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, nil, errors.Wrapf(err, "line %d", line)
		}
		labels = append(labels, label)

		if weighted {
			w, err := strconv.ParseFloat(fields[1], 64)
			if err != nil {
				return nil, nil, errors.Wrapf(err, "line %d", line)
			}
			weights = append(weights, w)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, err
	}
	if weighted && weights == nil {
		weights = []float64{}
	}
	return labels, weights, nil
}

func describe(w io.Writer, d *stats.Categorical) {
	fmt.Fprintf(w, "K %d  mean %.6g  median %d  mode %d", d.K(), d.Mean(), d.Median(), d.Mode())
	if modes := d.Modes(); len(modes) > 1 {
		fmt.Fprintf(w, "  modes %v", modes)
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "std dev %.6g  variance %.6g  skewness %.6g  ex. kurtosis %.6g  entropy %.6g\n",
		d.StdDev(), d.Variance(), d.Skewness(), d.ExcessKurtosis(), d.Entropy())
	fmt.Fprintln(w)

	// Quantiles and tails.
	for _, p := range []int{1, 5, 25, 50, 75, 95, 99} {
		q, err := d.Quantile(float64(p) / 100)
		if err != nil {
			// p is always in [0, 1].
			panic(err)
		}
		fmt.Fprintf(w, "%8s %d\n", fmt.Sprintf("%d%%ile", p), q)
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "%8s %-10s %s\n", "label", "pmf", "cdf")
	pmf := make([]float64, d.K())
	d.PMFRange(pmf, 1)
	for i, p := range pmf {
		fmt.Fprintf(w, "%8d %-10.6g %.6g\n", i+1, p, d.CDF(float64(i+1)))
	}
}

func printDraws(w io.Writer, d *stats.Categorical, n int, r *rand.Rand) {
	tab := d.Sampler()
	counts := make([]float64, tab.Len())
	labels := make([]int, n)
	for i := range labels {
		labels[i] = tab.Rand(r)
	}
	// Labels come from the table, so they are always in range.
	if err := stats.AccumulateCounts(counts, labels); err != nil {
		panic(err)
	}
	fmt.Fprintf(w, "%d draws\n", n)
	fmt.Fprintf(w, "%8s %-10s %s\n", "label", "freq", "pmf")
	for i, c := range counts {
		fmt.Fprintf(w, "%8d %-10.6g %.6g\n", i+1, c/float64(n), d.PMF(float64(i+1)))
	}
}
