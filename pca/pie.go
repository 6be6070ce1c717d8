// Copyright (c) 2025, The psynlig authors.
// Distributed under the MIT License. See LICENSE for more info.

package pca

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/andersle/psynlig/colors"
)

// DefaultPieTolerance is the smallest unexplained variance fraction
// that still gets its own "Not explained" slice.
const DefaultPieTolerance = 1e-3

// ExplainedVariancePie draws the explained variance of each component
// as a donut chart. Unexplained variance larger than tol (or
// DefaultPieTolerance when tol <= 0) becomes a "Not explained" slice.
func ExplainedVariancePie(r *Result, tol float64) (*plot.Plot, error) {
	if err := r.Check(); err != nil {
		return nil, err
	}
	if r.VarianceRatio == nil {
		return nil, fmt.Errorf("pca: no variance ratios")
	}
	if tol <= 0 {
		tol = DefaultPieTolerance
	}

	fracs := append([]float64(nil), r.VarianceRatio...)
	names := componentNames(len(fracs))
	var sum float64
	for _, v := range fracs {
		sum += v
	}
	if missing := 1 - sum; missing > tol {
		fracs = append(fracs, missing)
		names = append(names, "Not explained")
		sum += missing
	}
	cs, err := colors.Qualitative(len(fracs))
	if err != nil {
		return nil, err
	}

	ws := make([]wedge, len(fracs))
	angle := 0.0
	for i, v := range fracs {
		sweep := v / sum * 2 * math.Pi
		ws[i] = wedge{start: angle, sweep: sweep, color: cs[i]}
		angle += sweep
	}

	p := plot.New()
	p.Add(&donut{wedges: ws, hole: 0.5})

	// Slice names just outside the ring.
	xys := make(plotter.XYs, len(ws))
	for i, w := range ws {
		mid := w.start + w.sweep/2
		xys[i] = plotter.XY{X: 1.1 * math.Cos(mid), Y: 1.1 * math.Sin(mid)}
	}
	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: names})
	if err != nil {
		return nil, err
	}
	for i := range labels.TextStyle {
		labels.TextStyle[i].XAlign = text.XCenter
		labels.TextStyle[i].YAlign = text.YCenter
	}
	p.Add(labels)
	p.HideAxes()
	return p, nil
}

type wedge struct {
	start, sweep float64
	color        color.Color
}

// donut renders wedges as an annular pie with white slice edges. The
// unit circle in data coordinates is the outer rim; hole is the
// fraction of the radius left open in the middle.
type donut struct {
	wedges []wedge
	hole   float64
}

func (d *donut) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	center := vg.Point{X: trX(0), Y: trY(0)}
	rx := trX(1) - trX(0)
	ry := trY(1) - trY(0)
	outer := rx
	if ry < outer {
		outer = ry
	}
	inner := outer * vg.Length(1-d.hole)

	at := func(r vg.Length, a float64) vg.Point {
		return vg.Point{
			X: center.X + r*vg.Length(math.Cos(a)),
			Y: center.Y + r*vg.Length(math.Sin(a)),
		}
	}
	for _, w := range d.wedges {
		var path vg.Path
		path.Move(at(outer, w.start))
		path.Arc(center, outer, w.start, w.sweep)
		path.Line(at(inner, w.start+w.sweep))
		path.Arc(center, inner, w.start+w.sweep, -w.sweep)
		path.Close()
		c.SetColor(w.color)
		c.Fill(path)
		c.SetColor(color.White)
		c.SetLineWidth(vg.Points(1))
		c.Stroke(path)
	}
}

// DataRange implements plot.DataRanger, leaving room for the labels
// around the ring.
func (d *donut) DataRange() (xmin, xmax, ymin, ymax float64) {
	return -1.5, 1.5, -1.5, 1.5
}
