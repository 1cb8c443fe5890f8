// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchagg

import (
	"math"
	"sort"

	"benchplot/benchdir"
)

// A Group is a set of input sizes whose pooled median runtimes share
// one decimal order of magnitude.
type Group struct {
	// Magnitude is floor(log10(median)) of the pooled runtimes,
	// where the median is floored to 1 ns first so that zero and
	// sub-nanosecond medians land in magnitude 0.
	Magnitude int

	// InputSizes lists the group's input sizes in the discovery
	// order of the task tree.
	InputSizes []string
}

// MagnitudeGroups partitions the input sizes of t by the order of
// magnitude of their median runtime, pooling the measurements of all
// run types per input size. Groups are ordered by ascending
// magnitude. Input sizes with no measurements at all appear in no
// group.
//
// Plotting each group separately keeps a single figure from needing a
// runtime axis that spans several orders of magnitude.
func MagnitudeGroups(t *benchdir.TaskTree) []Group {
	byMag := make(map[int][]string)
	for _, size := range t.InputSizes {
		var pooled []float64
		for _, rt := range t.RunTypes {
			pooled = append(pooled, t.Samples[benchdir.TaskKey{InputSize: size, RunType: rt}]...)
		}
		if len(pooled) == 0 {
			continue
		}
		med := math.Max(1, Median(pooled))
		mag := int(math.Floor(math.Log10(med)))
		byMag[mag] = append(byMag[mag], size)
	}

	mags := make([]int, 0, len(byMag))
	for mag := range byMag {
		mags = append(mags, mag)
	}
	sort.Ints(mags)

	groups := make([]Group, len(mags))
	for i, mag := range mags {
		groups[i] = Group{Magnitude: mag, InputSizes: byMag[mag]}
	}
	return groups
}
