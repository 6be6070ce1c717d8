// Copyright (c) 2025, The psynlig authors.
// Distributed under the MIT License. See LICENSE for more info.

package pca

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/andersle/psynlig/geom"
)

var (
	loadingSolid = draw.LineStyle{
		Color: color.NRGBA{A: 0xcc},
		Width: vg.Points(1),
	}
	loadingDotted = draw.LineStyle{
		Color:  color.NRGBA{A: 0xcc},
		Width:  vg.Points(1),
		Dashes: []vg.Length{vg.Points(2), vg.Points(2)},
	}
)

// loadingLine draws one loading vector on a scores plot: a solid
// segment from the origin to the coefficient point and a dotted
// extension on to the edge of the viewport.
type loadingLine struct {
	x, y float64
}

func (l loadingLine) Plot(c draw.Canvas, plt *plot.Plot) {
	view := geom.Rect{
		XMin: plt.X.Min, XMax: plt.X.Max,
		YMin: plt.Y.Min, YMax: plt.Y.Max,
	}
	end := lineEnd(view, l.x, l.y)
	trX, trY := plt.Transforms(&c)
	c.StrokeLine2(loadingDotted, trX(0), trY(0), trX(end.X), trY(end.Y))
	c.StrokeLine2(loadingSolid, trX(0), trY(0), trX(l.x), trY(l.y))
}

// lineEnd extends the loading direction to the viewport boundary,
// falling back to the coefficient point itself for a zero direction.
func lineEnd(view geom.Rect, x, y float64) geom.Point {
	if p, ok := geom.ExitPoint(view, geom.Vec{X: x, Y: y}); ok {
		return p
	}
	return geom.Point{X: x, Y: y}
}
