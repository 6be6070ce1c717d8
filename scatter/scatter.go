// Copyright (c) 2025, The psynlig authors.
// Distributed under the MIT License. See LICENSE for more info.

// Package scatter draws scatter plots of table columns, singly or for
// all pairs of a variable set, with optional class coloring, trend
// lines and outlier flagging.
package scatter

import (
	"fmt"
	"image/color"
	"math"
	"sort"

	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-moremath/fit"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/andersle/psynlig/colors"
	"github.com/andersle/psynlig/components"
	"github.com/andersle/psynlig/dataset"
	"github.com/andersle/psynlig/plotgrid"
)

// Options configures scatter plots. The zero value draws a plain
// single-series scatter.
type Options struct {
	// Classes assigns a class id to each row; points are colored and
	// shaped per class with a legend entry each.
	Classes []int

	// ClassNames maps class ids to legend names. Missing ids fall
	// back to "class <id>".
	ClassNames map[int]string

	// MaxPlots and Cols paginate generated plot sets; non-positive
	// values use the plotgrid defaults.
	MaxPlots int
	Cols     int

	// XYLine draws a dashed y = x reference line.
	XYLine bool

	// Trendline fits a least-squares line and reports R² and the
	// Pearson correlation in the plot title.
	Trendline bool

	// Outliers flags interquartile-range outliers in generated
	// one-variable plots.
	Outliers bool

	// Highlight marks the given rows with an extra ring glyph.
	Highlight []int
}

var (
	highlightColor = color.NRGBA{R: 0xd6, G: 0x27, B: 0x28, A: 0xff}

	refLineStyle = draw.LineStyle{
		Color:  color.Gray{Y: 0x80},
		Width:  vg.Points(1),
		Dashes: []vg.Length{vg.Points(4), vg.Points(2)},
	}
)

// Plot draws yvar against xvar. An empty xvar plots yvar against the
// row index instead.
func Plot(t *table.Table, xvar, yvar string, o Options) (*plot.Plot, error) {
	ys, err := dataset.Floats(t, yvar)
	if err != nil {
		return nil, err
	}
	var xs []float64
	if xvar == "" {
		xs = make([]float64, len(ys))
		for i := range xs {
			xs[i] = float64(i)
		}
	} else {
		if xs, err = dataset.Floats(t, xvar); err != nil {
			return nil, err
		}
		if len(xs) != len(ys) {
			return nil, fmt.Errorf("scatter: %s has %d rows, %s has %d", xvar, len(xs), yvar, len(ys))
		}
	}

	p := plot.New()
	if xvar == "" {
		p.X.Label.Text = "Data point no."
	} else {
		p.X.Label.Text = xvar
	}
	p.Y.Label.Text = yvar

	if err := addPoints(p, xs, ys, o); err != nil {
		return nil, err
	}
	if o.XYLine {
		addXYLine(p, xs, ys)
	}
	if o.Trendline {
		if err := addTrendline(p, xs, ys); err != nil {
			return nil, err
		}
	}
	if len(o.Highlight) > 0 {
		if err := addHighlight(p, xs, ys, o.Highlight); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// Generate1D draws one plot per variable against the row index and
// paginates them into figures. With Outliers set, rows outside the
// interquartile fences are highlighted and the fences drawn as dashed
// lines.
func Generate1D(t *table.Table, vars []string, o Options) ([]*plotgrid.Figure, error) {
	var (
		out    map[string][]int
		fences map[string]dataset.Fences
		err    error
	)
	if o.Outliers {
		if out, fences, err = dataset.IQROutliers(t, vars); err != nil {
			return nil, err
		}
	}
	plots := make([]*plot.Plot, 0, len(vars))
	for _, v := range vars {
		po := o
		if o.Outliers {
			po.Highlight = out[v]
		}
		p, err := Plot(t, "", v, po)
		if err != nil {
			return nil, err
		}
		if o.Outliers {
			n := t.Len()
			f := fences[v]
			addHLine(p, f.Lower, n)
			addHLine(p, f.Upper, n)
		}
		plots = append(plots, p)
	}
	return plotgrid.Carve(plots, o.MaxPlots, o.Cols), nil
}

// Generate2D draws one plot per pair of variables, in lexicographic
// pair order, and paginates them into figures.
func Generate2D(t *table.Table, vars []string, o Options) ([]*plotgrid.Figure, error) {
	pairs, err := components.Select(len(vars), 2, nil)
	if err != nil {
		return nil, err
	}
	plots := make([]*plot.Plot, 0, len(pairs))
	for _, pair := range pairs {
		p, err := Plot(t, vars[pair[0]], vars[pair[1]], o)
		if err != nil {
			return nil, err
		}
		plots = append(plots, p)
	}
	return plotgrid.Carve(plots, o.MaxPlots, o.Cols), nil
}

// addPoints adds the data, split and colored by class when classes
// are given.
func addPoints(p *plot.Plot, xs, ys []float64, o Options) error {
	if o.Classes == nil {
		s, err := newScatter(xs, ys, nil, 0)
		if err != nil {
			return err
		}
		p.Add(s)
		return nil
	}
	if len(o.Classes) != len(ys) {
		return fmt.Errorf("scatter: %d class ids for %d rows", len(o.Classes), len(ys))
	}
	colorOf, rowsOf, err := colors.Classes(o.Classes)
	if err != nil {
		return err
	}
	ids := make([]int, 0, len(rowsOf))
	for id := range rowsOf {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for k, id := range ids {
		rows := rowsOf[id]
		sx := make([]float64, len(rows))
		sy := make([]float64, len(rows))
		for i, r := range rows {
			sx[i], sy[i] = xs[r], ys[r]
		}
		s, err := newScatter(sx, sy, colorOf[id], k)
		if err != nil {
			return err
		}
		p.Add(s)
		name := o.ClassNames[id]
		if name == "" {
			name = fmt.Sprintf("class %d", id)
		}
		p.Legend.Add(name, s)
	}
	p.Legend.Top = true
	return nil
}

func newScatter(xs, ys []float64, c color.Color, shape int) (*plotter.Scatter, error) {
	xys := make(plotter.XYs, len(xs))
	for i := range xs {
		xys[i] = plotter.XY{X: xs[i], Y: ys[i]}
	}
	s, err := plotter.NewScatter(xys)
	if err != nil {
		return nil, err
	}
	if c == nil {
		cs, err := colors.Qualitative(1)
		if err != nil {
			return nil, err
		}
		c = cs[0]
	}
	s.GlyphStyle = draw.GlyphStyle{
		Color:  c,
		Radius: vg.Points(3),
		Shape:  plotutil.Shape(shape),
	}
	return s, nil
}

func addXYLine(p *plot.Plot, xs, ys []float64) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range append(append([]float64{}, xs...), ys...) {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	l, err := plotter.NewLine(plotter.XYs{{X: lo, Y: lo}, {X: hi, Y: hi}})
	if err != nil {
		return
	}
	l.LineStyle = refLineStyle
	p.Add(l)
	p.Legend.Add("y = x", l)
}

// addTrendline fits a first-degree polynomial and titles the plot
// with the fit quality.
func addTrendline(p *plot.Plot, xs, ys []float64) error {
	if len(xs) < 2 {
		return fmt.Errorf("scatter: need at least two points for a trend line")
	}
	res := fit.PolynomialRegression(xs, ys, nil, 1)
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, x := range xs {
		lo = math.Min(lo, x)
		hi = math.Max(hi, x)
	}
	l, err := plotter.NewLine(plotter.XYs{
		{X: lo, Y: res.F(lo)},
		{X: hi, Y: res.F(hi)},
	})
	if err != nil {
		return err
	}
	l.LineStyle = draw.LineStyle{Color: color.Gray{Y: 0x40}, Width: vg.Points(1.5)}
	p.Add(l)

	pred := make([]float64, len(xs))
	for i, x := range xs {
		pred[i] = res.F(x)
	}
	p.Title.Text = fmt.Sprintf("R² = %.2f, ρ = %.2f",
		dataset.RSquared(ys, pred), dataset.Pearson(xs, ys))
	return nil
}

func addHighlight(p *plot.Plot, xs, ys []float64, rows []int) error {
	xys := make(plotter.XYs, 0, len(rows))
	for _, r := range rows {
		if r < 0 || r >= len(xs) {
			return fmt.Errorf("scatter: highlight row %d out of range [0, %d)", r, len(xs))
		}
		xys = append(xys, plotter.XY{X: xs[r], Y: ys[r]})
	}
	s, err := plotter.NewScatter(xys)
	if err != nil {
		return err
	}
	s.GlyphStyle = draw.GlyphStyle{
		Color:  highlightColor,
		Radius: vg.Points(6),
		Shape:  draw.RingGlyph{},
	}
	p.Add(s)
	return nil
}

func addHLine(p *plot.Plot, y float64, n int) {
	l, err := plotter.NewLine(plotter.XYs{
		{X: -0.5, Y: y},
		{X: float64(n) - 0.5, Y: y},
	})
	if err != nil {
		return
	}
	l.LineStyle = refLineStyle
	p.Add(l)
}
