// Copyright (c) 2025, The psynlig authors.
// Distributed under the MIT License. See LICENSE for more info.

package pca

import (
	"fmt"
	"image/color"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/andersle/psynlig/colors"
	"github.com/andersle/psynlig/components"
	"github.com/andersle/psynlig/heatmap"
)

// LoadingsOptions configures the loading plots.
type LoadingsOptions struct {
	// Select picks the 1-based components (or component pairs) to
	// plot; nil means all combinations.
	Select [][]int

	// Mode selects the 1D plot kind: "line" (default), "bar",
	// "bar-square" or "bar-absolute".
	Mode string

	// Style selects the 2D frame: "box" (default) draws dotted lines
	// at x = 0 and y = 0 in a normal frame, "center" hides the frame
	// and puts the axes through the origin.
	Style string

	// AdjustLabels relaxes overlapping variable labels in 2D plots;
	// MaxIter bounds the relaxation.
	AdjustLabels bool
	MaxIter      int
}

// Loadings1D plots the loading coefficients of each selected
// component on a single axis, one plot per component.
func Loadings1D(r *Result, xvars []string, o LoadingsOptions) ([]*plot.Plot, error) {
	if err := checkVars(r, xvars); err != nil {
		return nil, err
	}
	sel, err := components.Select(r.NComponents(), 1, o.Select)
	if err != nil {
		return nil, err
	}
	cs, err := colors.Qualitative(len(xvars))
	if err != nil {
		return nil, err
	}
	plots := make([]*plot.Plot, 0, len(sel))
	for _, s := range sel {
		i := s[0]
		var p *plot.Plot
		if strings.HasPrefix(strings.ToLower(o.Mode), "bar") {
			p, err = loadingsBar(r.Coefficients(i), xvars, strings.ToLower(o.Mode))
		} else {
			p, err = loadingsLine(r.Coefficients(i), xvars, cs)
		}
		if err != nil {
			return nil, err
		}
		p.Title.Text = fmt.Sprintf("Principal component %d", i+1)
		plots = append(plots, p)
	}
	return plots, nil
}

// loadingsLine draws each coefficient as a marker on the y = 0 axis
// with a labeled stem, alternating the stems below and above the axis
// to keep the labels apart.
func loadingsLine(coeffs []float64, xvars []string, cs []color.Color) (*plot.Plot, error) {
	p := plot.New()
	xys := make(plotter.XYs, len(coeffs))
	aligns := make([]text.YAlignment, len(coeffs))
	posB, posT := 0, 0
	for j, coeff := range coeffs {
		mark, err := plotter.NewScatter(plotter.XYs{{X: coeff, Y: 0}})
		if err != nil {
			return nil, err
		}
		mark.GlyphStyle = draw.GlyphStyle{
			Color:  cs[j],
			Radius: vg.Points(5),
			Shape:  plotutil.Shape(j),
		}
		p.Add(mark)

		var ypos float64
		if j%2 == 0 {
			posB++
			ypos = float64(-2 - posB)
			aligns[j] = text.YTop
		} else {
			posT++
			ypos = float64(2 + posT)
			aligns[j] = text.YBottom
		}
		stem, err := plotter.NewLine(plotter.XYs{{X: coeff, Y: 0}, {X: coeff, Y: ypos}})
		if err != nil {
			return nil, err
		}
		stem.LineStyle = draw.LineStyle{Color: cs[j], Width: vg.Points(2)}
		p.Add(stem)
		xys[j] = plotter.XY{X: coeff, Y: ypos}
	}

	layer, err := newLabelLayer(xys, xvars)
	if err != nil {
		return nil, err
	}
	layer.background = color.White
	for j := range layer.TextStyle {
		layer.TextStyle[j].Color = cs[j]
		layer.TextStyle[j].XAlign = text.XCenter
		layer.TextStyle[j].YAlign = aligns[j]
	}
	p.Add(layer)

	p.X.Min, p.X.Max = -1, 1
	p.Y.Min--
	p.Y.Max++
	p.HideY()
	p.X.Tick.Marker = plot.ConstantTicks([]plot.Tick{
		{Value: -1, Label: "-1"}, {Value: -0.5, Label: "-0.5"},
		{Value: 0, Label: "0"},
		{Value: 0.5, Label: "0.5"}, {Value: 1, Label: "1"},
	})
	return p, nil
}

// loadingsBar draws the coefficients of one component as bars,
// optionally squared or absolute.
func loadingsBar(coeffs []float64, xvars []string, mode string) (*plot.Plot, error) {
	vals := make(plotter.Values, len(coeffs))
	ylabel := "Coefficient"
	for j, c := range coeffs {
		switch mode {
		case "bar-square":
			vals[j] = c * c
			ylabel = "Squared coefficients"
		case "bar-absolute":
			if c < 0 {
				c = -c
			}
			vals[j] = c
			ylabel = "Absolute value of coefficients"
		default:
			vals[j] = c
		}
	}
	b, err := plotter.NewBarChart(vals, vg.Points(20))
	if err != nil {
		return nil, err
	}
	cs, err := colors.Qualitative(1)
	if err != nil {
		return nil, err
	}
	b.Color = cs[0]
	p := plot.New()
	p.Add(b)
	zero, err := plotter.NewLine(plotter.XYs{
		{X: -0.5, Y: 0},
		{X: float64(len(coeffs)) - 0.5, Y: 0},
	})
	if err != nil {
		return nil, err
	}
	zero.LineStyle = dottedLine
	p.Add(zero)
	p.Y.Label.Text = ylabel
	p.NominalX(xvars...)
	return p, nil
}

// LoadingsMap plots the full loadings matrix as a heat map with the
// variables as rows and the components as columns. The style
// "absolute" or "squared" transforms the coefficients first.
func LoadingsMap(r *Result, xvars []string, style string, o heatmap.Options) (*plot.Plot, error) {
	if err := checkVars(r, xvars); err != nil {
		return nil, err
	}
	title := "Coefficients"
	transform := func(v float64) float64 { return v }
	switch strings.ToLower(style) {
	case "absolute":
		title = "Absolute coefficients"
		transform = func(v float64) float64 {
			if v < 0 {
				return -v
			}
			return v
		}
	case "squared":
		title = "Squared coefficients"
		transform = func(v float64) float64 { return v * v }
	}
	m := make([][]float64, r.NVariables())
	for v := range m {
		m[v] = make([]float64, r.NComponents())
		for c := 0; c < r.NComponents(); c++ {
			m[v][c] = transform(r.Loadings[c][v])
		}
	}
	p, err := heatmap.New(m, xvars, componentNames(r.NComponents()), o)
	if err != nil {
		return nil, err
	}
	p.Title.Text = title
	return p, nil
}

// Loadings2D plots the loadings of each selected pair of components
// against each other, one plot per pair, with one labeled marker per
// variable.
func Loadings2D(r *Result, xvars []string, o LoadingsOptions) ([]*plot.Plot, error) {
	if err := checkVars(r, xvars); err != nil {
		return nil, err
	}
	if r.NComponents() < 2 {
		return nil, fmt.Errorf("pca: too few (< 2) principal components for a 2D plot")
	}
	sel, err := components.Select(r.NComponents(), 2, o.Select)
	if err != nil {
		return nil, err
	}
	cs, err := colors.Qualitative(len(xvars))
	if err != nil {
		return nil, err
	}
	plots := make([]*plot.Plot, 0, len(sel))
	for _, pair := range sel {
		p, err := loadings2DPair(r, pair[0], pair[1], xvars, cs, o)
		if err != nil {
			return nil, err
		}
		plots = append(plots, p)
	}
	return plots, nil
}

func loadings2DPair(r *Result, i, j int, xvars []string, cs []color.Color, o LoadingsOptions) (*plot.Plot, error) {
	c1, c2 := r.Coefficients(i), r.Coefficients(j)
	p := plot.New()
	xys := make(plotter.XYs, len(xvars))
	for v := range xvars {
		mark, err := plotter.NewScatter(plotter.XYs{{X: c1[v], Y: c2[v]}})
		if err != nil {
			return nil, err
		}
		mark.GlyphStyle = draw.GlyphStyle{
			Color:  cs[v],
			Radius: vg.Points(5),
			Shape:  plotutil.Shape(v),
		}
		p.Add(mark)
		xys[v] = plotter.XY{X: c1[v], Y: c2[v]}
	}
	layer, err := newLabelLayer(xys, xvars)
	if err != nil {
		return nil, err
	}
	layer.jiggle = o.AdjustLabels
	layer.maxiter = o.MaxIter
	for v := range layer.TextStyle {
		layer.TextStyle[v].Color = cs[v]
	}
	p.Add(layer)

	p.X.Min, p.X.Max = -1, 1
	p.Y.Min, p.Y.Max = -1, 1
	if err := frame2D(p, i, j, o.Style); err != nil {
		return nil, err
	}
	return p, nil
}

// frame2D applies the requested axis styling to a 2D loadings plot.
func frame2D(p *plot.Plot, i, j int, style string) error {
	hline, err := plotter.NewLine(plotter.XYs{{X: -1, Y: 0}, {X: 1, Y: 0}})
	if err != nil {
		return err
	}
	vline, err := plotter.NewLine(plotter.XYs{{X: 0, Y: -1}, {X: 0, Y: 1}})
	if err != nil {
		return err
	}
	hline.LineStyle = dottedLine
	vline.LineStyle = dottedLine
	p.Add(hline, vline)
	switch style {
	case "center":
		p.HideAxes()
		names, err := newLabelLayer(
			plotter.XYs{{X: 1.05, Y: 0}, {X: 0, Y: 1.05}},
			[]string{fmt.Sprintf("PC%d", i+1), fmt.Sprintf("PC%d", j+1)},
		)
		if err != nil {
			return err
		}
		for k := range names.TextStyle {
			names.TextStyle[k].XAlign = text.XCenter
			names.TextStyle[k].YAlign = text.YCenter
		}
		p.Add(names)
		p.X.Min, p.X.Max = -1.15, 1.15
		p.Y.Min, p.Y.Max = -1.15, 1.15
	default:
		p.X.Label.Text = fmt.Sprintf("Principal component %d", i+1)
		p.Y.Label.Text = fmt.Sprintf("Principal component %d", j+1)
	}
	return nil
}

func checkVars(r *Result, xvars []string) error {
	if err := r.Check(); err != nil {
		return err
	}
	if len(xvars) != r.NVariables() {
		return fmt.Errorf("pca: %d variable names for %d variables", len(xvars), r.NVariables())
	}
	return nil
}
