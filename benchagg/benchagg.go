// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchagg derives comparative views from discovered runtime
// samples: magnitude groups of input sizes for splitting plots by
// scale, and per-sample speedup ratios against a baseline competitor.
package benchagg

import "github.com/aclements/go-moremath/stats"

// Median returns the median of xs, or 0 if xs is empty. The order of
// xs does not matter and xs is not modified.
func Median(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	return stats.Sample{Xs: xs}.Quantile(0.5)
}
