// Copyright (c) 2025, The psynlig authors.
// Distributed under the MIT License. See LICENSE for more info.

package heatmap

import (
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// bubbles renders a matrix as one circle per cell on alternating
// light-gray backing rows; circle area tracks the magnitude of the
// value and circle color its position in the color range.
type bubbles struct {
	m  Matrix
	cm palette.ColorMap
}

var rowShades = [2]color.Gray{{Y: 204}, {Y: 230}}

func (b *bubbles) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	cols, rows := b.m.Dims()

	// The largest magnitude on either end of the color range fills
	// 90% of a half cell.
	span := math.Max(math.Abs(b.cm.Min()), math.Abs(b.cm.Max()))
	if span == 0 {
		span = 1
	}

	for r := 0; r < rows; r++ {
		y0, y1 := trY(float64(r)-0.5), trY(float64(r)+0.5)
		shade := rowShades[(rows-1-r)%2]
		for cc := 0; cc < cols; cc++ {
			x0, x1 := trX(float64(cc)-0.5), trX(float64(cc)+0.5)

			var cell vg.Path
			cell.Move(vg.Point{X: x0, Y: y0})
			cell.Line(vg.Point{X: x1, Y: y0})
			cell.Line(vg.Point{X: x1, Y: y1})
			cell.Line(vg.Point{X: x0, Y: y1})
			cell.Close()
			c.SetColor(shade)
			c.Fill(cell)

			v := b.m.Z(cc, r)
			col, err := b.cm.At(clamp(v, b.cm.Min(), b.cm.Max()))
			if err != nil {
				continue
			}
			rad := (x1 - x0) / 2 * vg.Length(math.Abs(v)/span) * 0.9
			if rad <= 0 {
				continue
			}
			cx, cy := (x0+x1)/2, (y0+y1)/2
			var circ vg.Path
			circ.Move(vg.Point{X: cx + rad, Y: cy})
			circ.Arc(vg.Point{X: cx, Y: cy}, rad, 0, 2*math.Pi)
			circ.Close()
			c.SetColor(col)
			c.Fill(circ)
		}
	}
}

// DataRange implements plot.DataRanger so the axes cover the cells.
func (b *bubbles) DataRange() (xmin, xmax, ymin, ymax float64) {
	cols, rows := b.m.Dims()
	return -0.5, float64(cols) - 0.5, -0.5, float64(rows) - 0.5
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
