// Copyright (c) 2025, The psynlig authors.
// Distributed under the MIT License. See LICENSE for more info.

package pca

import (
	"fmt"
	"image/color"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/andersle/psynlig/colors"
	"github.com/andersle/psynlig/components"
	"github.com/andersle/psynlig/geom"
)

// LoadingLineOptions configures the loading-vector overlay on a 2D
// scores plot.
type LoadingLineOptions struct {
	// Text labels each loading line with its variable name at the
	// viewport edge.
	Text bool

	// Legend marks each line end with a cross glyph and adds a
	// legend entry per variable.
	Legend bool

	// Jiggle relaxes overlapping variable labels; MaxIter bounds the
	// relaxation.
	Jiggle  bool
	MaxIter int
}

// ScoresOptions configures the scores plots.
type ScoresOptions struct {
	// Classes assigns a class id to each observation; points are
	// colored per class with a legend entry each.
	Classes []int

	// ClassNames maps class ids to legend names.
	ClassNames map[int]string

	// Select picks the 1-based components (or pairs) to plot; nil
	// means all combinations.
	Select [][]int

	// Loadings, when non-nil, overlays the loading vectors on 2D
	// plots.
	Loadings *LoadingLineOptions
}

// Scores2D plots the scores of each selected pair of components
// against each other, one plot per pair.
func Scores2D(r *Result, scores [][]float64, xvars []string, o ScoresOptions) ([]*plot.Plot, error) {
	if err := r.Check(); err != nil {
		return nil, err
	}
	if r.NComponents() < 2 {
		return nil, fmt.Errorf("pca: too few (< 2) principal components for a 2D plot")
	}
	if o.Loadings != nil && len(xvars) != r.NVariables() {
		return nil, fmt.Errorf("pca: %d variable names for %d variables", len(xvars), r.NVariables())
	}
	sel, err := components.Select(r.NComponents(), 2, o.Select)
	if err != nil {
		return nil, err
	}
	plots := make([]*plot.Plot, 0, len(sel))
	for _, pair := range sel {
		i, j := pair[0], pair[1]
		xs, err := column(scores, i)
		if err != nil {
			return nil, err
		}
		ys, err := column(scores, j)
		if err != nil {
			return nil, err
		}
		p := plot.New()
		if err := addClassScatters(p, xs, ys, o); err != nil {
			return nil, err
		}
		p.X.Label.Text = fmt.Sprintf("Principal component %d", i+1)
		p.Y.Label.Text = fmt.Sprintf("Principal component %d", j+1)
		if o.Loadings != nil {
			if err := addLoadingLines(p, r, i, j, xvars, o.Loadings); err != nil {
				return nil, err
			}
		}
		plots = append(plots, p)
	}
	return plots, nil
}

// Scores1D plots the scores of each selected component on a single
// axis, one plot per component.
func Scores1D(r *Result, scores [][]float64, o ScoresOptions) ([]*plot.Plot, error) {
	if err := r.Check(); err != nil {
		return nil, err
	}
	sel, err := components.Select(r.NComponents(), 1, o.Select)
	if err != nil {
		return nil, err
	}
	plots := make([]*plot.Plot, 0, len(sel))
	for _, s := range sel {
		xs, err := column(scores, s[0])
		if err != nil {
			return nil, err
		}
		p := plot.New()
		if err := addClassScatters(p, xs, make([]float64, len(xs)), o); err != nil {
			return nil, err
		}
		p.X.Label.Text = fmt.Sprintf("Principal component %d", s[0]+1)
		p.HideY()
		plots = append(plots, p)
	}
	return plots, nil
}

// addLoadingLines overlays one loading vector per variable, extended
// to the viewport edge, with optional end labels and legend marks.
// The score ranges are padded first so the line ends stay clear of
// the data.
func addLoadingLines(p *plot.Plot, r *Result, i, j int, xvars []string, o *LoadingLineOptions) error {
	padAxis(&p.X)
	padAxis(&p.Y)
	view := geom.Rect{
		XMin: p.X.Min, XMax: p.X.Max,
		YMin: p.Y.Min, YMax: p.Y.Max,
	}
	cs, err := colors.Qualitative(len(xvars))
	if err != nil {
		return err
	}
	c1, c2 := r.Coefficients(i), r.Coefficients(j)
	ends := make(plotter.XYs, len(xvars))
	for v := range xvars {
		p.Add(loadingLine{x: c1[v], y: c2[v]})
		end := lineEnd(view, c1[v], c2[v])
		ends[v] = plotter.XY{X: end.X, Y: end.Y}
	}
	if o.Legend {
		for v := range xvars {
			mark, err := plotter.NewScatter(plotter.XYs{
				{X: 0.99 * ends[v].X, Y: 0.99 * ends[v].Y},
			})
			if err != nil {
				return err
			}
			mark.GlyphStyle = draw.GlyphStyle{
				Color:  cs[v],
				Radius: vg.Points(5),
				Shape:  draw.CrossGlyph{},
			}
			p.Add(mark)
			p.Legend.Add(xvars[v], mark)
		}
		p.Legend.Top = true
	}
	if o.Text {
		layer, err := newLabelLayer(ends, xvars)
		if err != nil {
			return err
		}
		layer.jiggle = o.Jiggle
		layer.maxiter = o.MaxIter
		for v := range layer.TextStyle {
			layer.TextStyle[v].Color = cs[v]
		}
		p.Add(layer)
	}
	// Adding the overlay must not move the viewport the line ends
	// were computed against.
	p.X.Min, p.X.Max = view.XMin, view.XMax
	p.Y.Min, p.Y.Max = view.YMin, view.YMax
	return nil
}

func padAxis(a *plot.Axis) {
	pad := (a.Max - a.Min) * 0.05
	a.Min -= pad
	a.Max += pad
}

// addClassScatters adds the points, split and colored by class when
// classes are given.
func addClassScatters(p *plot.Plot, xs, ys []float64, o ScoresOptions) error {
	if o.Classes == nil {
		s, err := scoreScatter(xs, ys, nil, 0)
		if err != nil {
			return err
		}
		p.Add(s)
		return nil
	}
	if len(o.Classes) != len(xs) {
		return fmt.Errorf("pca: %d class ids for %d observations", len(o.Classes), len(xs))
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
		for n, row := range rows {
			sx[n], sy[n] = xs[row], ys[row]
		}
		s, err := scoreScatter(sx, sy, colorOf[id], k)
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

func scoreScatter(xs, ys []float64, c color.Color, shape int) (*plotter.Scatter, error) {
	xys := make(plotter.XYs, len(xs))
	for n := range xs {
		xys[n] = plotter.XY{X: xs[n], Y: ys[n]}
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

// column extracts zero-based column c from a row-major scores matrix.
func column(scores [][]float64, c int) ([]float64, error) {
	out := make([]float64, len(scores))
	for n, row := range scores {
		if c >= len(row) {
			return nil, fmt.Errorf("pca: observation %d has %d scores, need component %d", n, len(row), c+1)
		}
		out[n] = row[c]
	}
	return out, nil
}
