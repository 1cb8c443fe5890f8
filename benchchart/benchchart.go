// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchchart renders grouped boxplots of benchmark runtimes
// and speedups as PDF figures.
//
// A figure is a sequence of groups on the X axis (input sizes), each
// holding one box per category (run type or competitor) that has data.
// Boxes are colored by category, consistently across the figure, with
// a legend mapping colors to category names.
package benchchart

import "github.com/aclements/go-moremath/stats"

// timeUnits is the display unit table for runtimes measured in
// nanoseconds, largest scale first.
var timeUnits = []struct {
	scale float64
	unit  string
}{
	{1e9, "s"},
	{1e6, "ms"},
	{1e3, "us"},
	{1, "ns"},
}

// TimeUnit selects the display unit for a figure whose median runtime
// is medianNS nanoseconds: the first unit of the table whose scale the
// median meets or exceeds, falling back to nanoseconds. Dividing
// values by the returned scale keeps typical axis labels in the
// 1 to 1000 range.
func TimeUnit(medianNS float64) (scale float64, unit string) {
	for _, u := range timeUnits {
		if medianNS >= u.scale {
			return u.scale, u.unit
		}
	}
	return 1, "ns"
}

func median(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	return stats.Sample{Xs: xs}.Quantile(0.5)
}
