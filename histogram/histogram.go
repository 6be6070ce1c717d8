// Copyright (c) 2025, The psynlig authors.
// Distributed under the MIT License. See LICENSE for more info.

// Package histogram draws histograms of table columns, optionally
// overlaying the per-class distributions.
package histogram

import (
	"fmt"
	"image/color"
	"sort"

	"github.com/aclements/go-gg/table"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/andersle/psynlig/colors"
	"github.com/andersle/psynlig/dataset"
	"github.com/andersle/psynlig/plotgrid"
)

// DefaultBins is the bin count used when Options.Bins is not set.
const DefaultBins = 10

// Options configures generated histograms.
type Options struct {
	// Classes assigns a class id to each row. Each class gets its own
	// semi-transparent overlay per variable.
	Classes []int

	// ClassNames maps class ids to legend names. Missing ids fall
	// back to "class <id>".
	ClassNames map[int]string

	// Bins is the number of bins; non-positive means DefaultBins.
	Bins int

	// MaxPlots and Cols paginate the figures; non-positive values use
	// the plotgrid defaults.
	MaxPlots int
	Cols     int
}

// Generate draws one histogram per variable and paginates them into
// figures. With classes, each figure carries the class legend on its
// first subplot.
func Generate(t *table.Table, vars []string, o Options) ([]*plotgrid.Figure, error) {
	bins := o.Bins
	if bins <= 0 {
		bins = DefaultBins
	}
	plots := make([]*plot.Plot, 0, len(vars))
	for _, v := range vars {
		p, err := histPlot(t, v, bins, o)
		if err != nil {
			return nil, err
		}
		plots = append(plots, p)
	}
	figs := plotgrid.Carve(plots, o.MaxPlots, o.Cols)
	if o.Classes != nil {
		for _, fig := range figs {
			if err := addLegend(fig.Plots[0], o); err != nil {
				return nil, err
			}
		}
	}
	return figs, nil
}

func histPlot(t *table.Table, v string, bins int, o Options) (*plot.Plot, error) {
	vals, err := dataset.Floats(t, v)
	if err != nil {
		return nil, err
	}
	p := plot.New()
	p.X.Label.Text = v
	p.Y.Label.Text = "Frequency"

	if o.Classes == nil {
		h, err := plotter.NewHist(plotter.Values(vals), bins)
		if err != nil {
			return nil, err
		}
		cs, err := colors.Qualitative(1)
		if err != nil {
			return nil, err
		}
		h.FillColor = withAlpha(cs[0], 0xb3)
		p.Add(h)
		return p, nil
	}

	if len(o.Classes) != len(vals) {
		return nil, fmt.Errorf("histogram: %d class ids for %d rows", len(o.Classes), len(vals))
	}
	colorOf, rowsOf, err := colors.Classes(o.Classes)
	if err != nil {
		return nil, err
	}
	for _, id := range sortedIDs(rowsOf) {
		rows := rowsOf[id]
		sub := make(plotter.Values, len(rows))
		for i, r := range rows {
			sub[i] = vals[r]
		}
		h, err := plotter.NewHist(sub, bins)
		if err != nil {
			return nil, err
		}
		h.FillColor = withAlpha(colorOf[id], 0x80)
		h.LineStyle.Color = colorOf[id]
		p.Add(h)
	}
	return p, nil
}

// addLegend attaches class swatches to p. The thumbnail plotters are
// never added to the plot itself.
func addLegend(p *plot.Plot, o Options) error {
	colorOf, rowsOf, err := colors.Classes(o.Classes)
	if err != nil {
		return err
	}
	for _, id := range sortedIDs(rowsOf) {
		name := o.ClassNames[id]
		if name == "" {
			name = fmt.Sprintf("class %d", id)
		}
		sw, err := plotter.NewScatter(plotter.XYs{{X: 0, Y: 0}})
		if err != nil {
			return err
		}
		sw.GlyphStyle = draw.GlyphStyle{
			Color:  colorOf[id],
			Radius: vg.Points(4),
			Shape:  draw.BoxGlyph{},
		}
		p.Legend.Add(name, sw)
	}
	p.Legend.Top = true
	return nil
}

func sortedIDs(rowsOf map[int][]int) []int {
	ids := make([]int, 0, len(rowsOf))
	for id := range rowsOf {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

func withAlpha(c color.Color, a uint8) color.Color {
	r, g, b, _ := c.RGBA()
	return color.NRGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: a}
}
