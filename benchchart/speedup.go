// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchchart

import (
	"fmt"
	"image/color"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgpdf"
)

// A SpeedupPanel describes one panel of a speedup figure, covering a
// single device and routine combination.
type SpeedupPanel struct {
	Title string

	// InputSizes are the X-axis groups, in display order.
	InputSizes []string

	// Competitors are the box categories, in display order. The
	// baseline is not a category; it is the divisor of every ratio.
	Competitors []string

	// Samples holds speedup ratios per (input size, competitor).
	Samples map[Key][]float64
}

// speedupCols caps the panel grid width.
const speedupCols = 3

const (
	panelWidth  = 4 * vg.Inch
	panelHeight = 3.2 * vg.Inch
)

// Speedups renders the panels as grouped boxplots of speedup ratios,
// arranged in up to three columns on a single PDF page written to
// path. Competitor colors are shared across panels so the legends
// agree. Each panel carries a reference line at 1.0, the speedup of
// the baseline against itself.
func Speedups(panels []SpeedupPanel, competitors []string, path string) error {
	if len(panels) == 0 {
		return fmt.Errorf("no speedup data to plot")
	}

	colors, err := categoryColors(competitors)
	if err != nil {
		return err
	}

	cols := len(panels)
	if cols > speedupCols {
		cols = speedupCols
	}
	rows := (len(panels) + cols - 1) / cols

	plots := make([][]*plot.Plot, rows)
	for r := range plots {
		plots[r] = make([]*plot.Plot, cols)
	}
	for i, panel := range panels {
		p, err := speedupPlot(panel, colors)
		if err != nil {
			return err
		}
		plots[i/cols][i%cols] = p
	}

	canvas := vgpdf.New(vg.Length(cols)*panelWidth, vg.Length(rows)*panelHeight)
	tiles := draw.Tiles{
		Rows: rows,
		Cols: cols,
		PadX: vg.Millimeter * 2,
		PadY: vg.Millimeter * 2,
	}
	canvases := plot.Align(plots, tiles, draw.New(canvas))
	for r := range plots {
		for c := range plots[r] {
			if plots[r][c] != nil {
				plots[r][c].Draw(canvases[r][c])
			}
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %v", path, err)
	}
	if _, err := canvas.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %v", path, err)
	}
	return f.Close()
}

func speedupPlot(panel SpeedupPanel, colors map[string]color.Color) (*plot.Plot, error) {
	boxes, ticks := layout(panel.InputSizes, panel.Competitors, panel.Samples)
	if len(boxes) == 0 {
		return nil, fmt.Errorf("panel %q has no speedup data", panel.Title)
	}

	p := plot.New()
	p.Title.Text = panel.Title
	p.X.Label.Text = "Input size"
	p.Y.Label.Text = "Speedup vs baseline"
	if err := addBoxes(p, boxes, ticks, panel.Competitors, colors); err != nil {
		return nil, err
	}

	// Break-even line: below it a competitor is slower than the
	// baseline, above it faster.
	ref, err := plotter.NewLine(plotter.XYs{{X: p.X.Min, Y: 1}, {X: p.X.Max, Y: 1}})
	if err != nil {
		return nil, err
	}
	ref.LineStyle.Color = color.Gray{0x80}
	ref.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
	p.Add(ref)

	return p, nil
}
