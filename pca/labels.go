// Copyright (c) 2025, The psynlig authors.
// Distributed under the MIT License. See LICENSE for more info.

package pca

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/andersle/psynlig/declutter"
	"github.com/andersle/psynlig/geom"
)

// labelLayer draws text labels with optional solid backgrounds and
// optional overlap relaxation. The relaxation happens at draw time,
// in canvas coordinates, because that is when the rendered text
// extents are known.
type labelLayer struct {
	*plotter.Labels

	// background, when non-nil, is painted behind every label.
	background color.Color

	// jiggle relaxes overlapping labels before drawing; maxiter
	// bounds the relaxation (non-positive means the declutter
	// default).
	jiggle  bool
	maxiter int
}

func newLabelLayer(xys plotter.XYs, names []string) (*labelLayer, error) {
	l, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: names})
	if err != nil {
		return nil, err
	}
	return &labelLayer{Labels: l}, nil
}

func (l *labelLayer) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	boxes := make([]*canvasLabel, len(l.Labels.Labels))
	labs := make([]declutter.Label, len(boxes))
	for i := range boxes {
		boxes[i] = &canvasLabel{
			style:      &l.Labels.TextStyle[i],
			text:       l.Labels.Labels[i],
			x:          float64(trX(l.Labels.XYs[i].X)),
			y:          float64(trY(l.Labels.XYs[i].Y)),
			background: l.background,
		}
		labs[i] = boxes[i]
	}
	if l.jiggle {
		view := geom.Rect{
			XMin: float64(c.Min.X), XMax: float64(c.Max.X),
			YMin: float64(c.Min.Y), YMax: float64(c.Max.Y),
		}
		declutter.Relax(view, labs, l.maxiter)
		// The relaxed anchors live in canvas coordinates; map them
		// back so the embedded Labels plotter draws them there.
		for i, b := range boxes {
			l.Labels.XYs[i].X = invert(plt.X.Min, plt.X.Max, trX, b.x)
			l.Labels.XYs[i].Y = invert(plt.Y.Min, plt.Y.Max, trY, b.y)
		}
	}
	for _, b := range boxes {
		if b.background == nil {
			continue
		}
		r := b.Box()
		var path vg.Path
		path.Move(vg.Point{X: vg.Length(r.XMin), Y: vg.Length(r.YMin)})
		path.Line(vg.Point{X: vg.Length(r.XMax), Y: vg.Length(r.YMin)})
		path.Line(vg.Point{X: vg.Length(r.XMax), Y: vg.Length(r.YMax)})
		path.Line(vg.Point{X: vg.Length(r.XMin), Y: vg.Length(r.YMax)})
		path.Close()
		c.SetColor(b.background)
		c.Fill(path)
	}
	l.Labels.Plot(c, plt)
}

// invert maps a canvas coordinate back to the data coordinate on a
// linear axis with range [lo, hi].
func invert(lo, hi float64, tr func(float64) vg.Length, cx float64) float64 {
	clo, chi := float64(tr(lo)), float64(tr(hi))
	if chi == clo {
		return lo
	}
	return lo + (cx-clo)*(hi-lo)/(chi-clo)
}

// canvasLabel adapts one rendered text label to declutter.Label,
// working in canvas coordinates.
type canvasLabel struct {
	style      *text.Style
	text       string
	x, y       float64
	background color.Color
}

func (l *canvasLabel) Box() geom.Rect {
	w := float64(l.style.Width(l.text))
	h := float64(l.style.Height(l.text))
	x0 := l.x + float64(l.style.XAlign)*w
	y0 := l.y + float64(l.style.YAlign)*h
	return geom.Rect{XMin: x0, XMax: x0 + w, YMin: y0, YMax: y0 + h}
}

func (l *canvasLabel) MoveCenter(p geom.Point) {
	l.style.XAlign = text.XCenter
	l.style.YAlign = text.YCenter
	l.x, l.y = p.X, p.Y
}

func (l *canvasLabel) SetBackground(c color.Color) { l.background = c }
