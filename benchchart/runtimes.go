// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchchart

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
)

// A RuntimesConfig describes one absolute-runtime figure.
type RuntimesConfig struct {
	Title string

	// InputSizes are the X-axis groups, in display order.
	InputSizes []string

	// RunTypes are the box categories, in display order.
	RunTypes []string

	// Samples holds runtimes in nanoseconds per (input size, run
	// type). Combinations without samples get no box.
	Samples map[Key][]float64
}

// Runtimes renders cfg as a grouped boxplot and writes it as a PDF
// page to path. The display unit is chosen from the median of all
// plotted runtimes and values are rescaled to it.
func Runtimes(cfg RuntimesConfig, path string) error {
	boxes, ticks := layout(cfg.InputSizes, cfg.RunTypes, cfg.Samples)
	if len(boxes) == 0 {
		return fmt.Errorf("no runtime data to plot")
	}

	var all []float64
	for _, b := range boxes {
		all = append(all, b.values...)
	}
	scale, unit := TimeUnit(median(all))
	for bi, b := range boxes {
		scaled := make([]float64, len(b.values))
		for i, v := range b.values {
			scaled[i] = v / scale
		}
		boxes[bi].values = scaled
	}

	colors, err := categoryColors(cfg.RunTypes)
	if err != nil {
		return err
	}

	p := plot.New()
	p.Title.Text = cfg.Title
	p.X.Label.Text = "Input size"
	p.Y.Label.Text = fmt.Sprintf("Runtime (%s)", unit)
	if err := addBoxes(p, boxes, ticks, cfg.RunTypes, colors); err != nil {
		return err
	}

	return p.Save(8*vg.Inch, 5*vg.Inch, path)
}
