// Copyright (c) 2025, The psynlig authors.
// Distributed under the MIT License. See LICENSE for more info.

package pca

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/andersle/psynlig/colors"
)

var dottedLine = draw.LineStyle{
	Color:  color.Gray{Y: 0x26},
	Width:  vg.Points(1),
	Dashes: []vg.Length{vg.Points(1), vg.Points(3)},
}

// ExplainedVariance plots the cumulative explained variance against
// the number of components, starting from zero components, with a
// dotted guide line at a fraction of one.
func ExplainedVariance(r *Result) (*plot.Plot, error) {
	if err := r.Check(); err != nil {
		return nil, err
	}
	cum := cumulative(r.VarianceRatio)
	p, err := varianceCurve(cum, "Explained variance (fraction)")
	if err != nil {
		return nil, err
	}
	addGuide(p, 1, len(cum))
	return p, nil
}

// ResidualVariance plots one minus the cumulative explained variance
// against the number of components, with a dotted guide line at zero.
func ResidualVariance(r *Result) (*plot.Plot, error) {
	if err := r.Check(); err != nil {
		return nil, err
	}
	cum := cumulative(r.VarianceRatio)
	for i, v := range cum {
		cum[i] = 1 - v
	}
	p, err := varianceCurve(cum, "Residual variance (fraction)")
	if err != nil {
		return nil, err
	}
	addGuide(p, 0, len(cum))
	return p, nil
}

// Scree plots the eigenvalue of each component.
func Scree(r *Result) (*plot.Plot, error) {
	if err := r.Check(); err != nil {
		return nil, err
	}
	if r.Variance == nil {
		return nil, fmt.Errorf("pca: scree plot needs eigenvalues")
	}
	xys := make(plotter.XYs, len(r.Variance))
	for i, v := range r.Variance {
		xys[i] = plotter.XY{X: float64(i + 1), Y: v}
	}
	l, s, err := plotter.NewLinePoints(xys)
	if err != nil {
		return nil, err
	}
	p := plot.New()
	p.Add(l, s)
	p.X.Label.Text = "Principal component"
	p.Y.Label.Text = "Eigenvalue"
	p.X.Min, p.X.Max = 0.75, float64(len(r.Variance))+0.25
	p.X.Tick.Marker = integerTicks{}
	return p, nil
}

// ExplainedVarianceBar plots the explained variance fraction of each
// component as a bar chart.
func ExplainedVarianceBar(r *Result) (*plot.Plot, error) {
	if err := r.Check(); err != nil {
		return nil, err
	}
	if r.VarianceRatio == nil {
		return nil, fmt.Errorf("pca: no variance ratios")
	}
	b, err := plotter.NewBarChart(plotter.Values(r.VarianceRatio), vg.Points(20))
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
	p.X.Label.Text = "Principal component"
	p.Y.Label.Text = "Explained variance (fraction) per component"
	p.NominalX(componentNames(len(r.VarianceRatio))...)
	return p, nil
}

// varianceCurve draws values against 0..n-1 components.
func varianceCurve(vals []float64, ylabel string) (*plot.Plot, error) {
	xys := make(plotter.XYs, len(vals))
	for i, v := range vals {
		xys[i] = plotter.XY{X: float64(i), Y: v}
	}
	l, s, err := plotter.NewLinePoints(xys)
	if err != nil {
		return nil, err
	}
	p := plot.New()
	p.Add(l, s)
	p.X.Label.Text = "Number of components"
	p.Y.Label.Text = ylabel
	p.X.Tick.Marker = integerTicks{}
	return p, nil
}

func addGuide(p *plot.Plot, y float64, n int) {
	l, err := plotter.NewLine(plotter.XYs{
		{X: 0, Y: y},
		{X: float64(n - 1), Y: y},
	})
	if err != nil {
		return
	}
	l.LineStyle = dottedLine
	p.Add(l)
}

// cumulative returns the running sum of vals with a leading zero, so
// the curve starts at "zero components explain nothing".
func cumulative(vals []float64) []float64 {
	out := make([]float64, len(vals)+1)
	for i, v := range vals {
		out[i+1] = out[i] + v
	}
	return out
}

// integerTicks marks only whole numbers on an axis.
type integerTicks struct{}

func (integerTicks) Ticks(min, max float64) []plot.Tick {
	var ticks []plot.Tick
	for i := int(min); float64(i) <= max; i++ {
		if float64(i) < min {
			continue
		}
		ticks = append(ticks, plot.Tick{Value: float64(i), Label: fmt.Sprint(i)})
	}
	return ticks
}
