// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchchart

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/brewer"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// A Key addresses the sample list of one box: its group on the X axis
// and the category that determines its color.
type Key struct {
	Group    string
	Category string
}

// groupGap is the horizontal gap between groups, in box slots.
const groupGap = 0.5

var boxWidth = vg.Points(20)

// A box is one box of a grouped boxplot, placed at an abstract X
// position: boxes within a group occupy consecutive integer slots and
// groups are separated by groupGap.
type box struct {
	group    string
	category string
	pos      float64
	values   []float64
}

// layout places one box per (group, category) combination that has
// samples and computes one X tick per non-empty group, centered under
// the group's boxes. Group and category order is preserved.
func layout(groups, categories []string, samples map[Key][]float64) (boxes []box, ticks []plot.Tick) {
	pos := 0.0
	for _, g := range groups {
		n := 0
		for _, c := range categories {
			vals := samples[Key{g, c}]
			if len(vals) == 0 {
				continue
			}
			boxes = append(boxes, box{g, c, pos, vals})
			pos++
			n++
		}
		if n > 0 {
			ticks = append(ticks, plot.Tick{Value: pos - 1 - float64(n-1)/2, Label: g})
		}
		pos += groupGap
	}
	return boxes, ticks
}

// categoryColors assigns each category a color from the Set2
// qualitative palette. Brewer palettes have 3 to 8 colors; fewer
// categories use a 3-color palette and more than 8 cycle.
func categoryColors(categories []string) (map[string]color.Color, error) {
	n := len(categories)
	if n < 3 {
		n = 3
	} else if n > 8 {
		n = 8
	}
	pal, err := brewer.GetPalette(brewer.TypeQualitative, "Set2", n)
	if err != nil {
		return nil, fmt.Errorf("building category palette: %v", err)
	}
	cols := pal.Colors()
	byCat := make(map[string]color.Color, len(categories))
	for i, c := range categories {
		byCat[c] = cols[i%len(cols)]
	}
	return byCat, nil
}

// addBoxes draws boxes and ticks onto p and attaches a legend for the
// categories present. The caller owns titles and axis labels.
func addBoxes(p *plot.Plot, boxes []box, ticks []plot.Tick, categories []string, colors map[string]color.Color) error {
	present := make(map[string]bool)
	for _, b := range boxes {
		bp, err := plotter.NewBoxPlot(boxWidth, b.pos, plotter.Values(b.values))
		if err != nil {
			return fmt.Errorf("box for %s/%s: %v", b.group, b.category, err)
		}
		bp.FillColor = colors[b.category]
		p.Add(bp)
		present[b.category] = true
	}

	p.X.Tick.Marker = plot.ConstantTicks(ticks)
	p.X.Tick.Length = 0
	// A BoxPlot's X data range is just its location, so pad the
	// axis or the outermost boxes are clipped in half.
	p.X.Min = -1
	p.X.Max = boxes[len(boxes)-1].pos + 1

	for _, c := range categories {
		if present[c] {
			p.Legend.Add(c, swatch{colors[c]})
		}
	}
	p.Legend.Top = true
	return nil
}

// A swatch is a legend thumbnail drawn as a filled color rectangle.
type swatch struct {
	clr color.Color
}

func (s swatch) Thumbnail(c *draw.Canvas) {
	pts := []vg.Point{
		{X: c.Min.X, Y: c.Min.Y},
		{X: c.Min.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Min.Y},
	}
	c.FillPolygon(s.clr, pts)
}
