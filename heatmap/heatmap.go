// Copyright (c) 2025, The psynlig authors.
// Distributed under the MIT License. See LICENSE for more info.

// Package heatmap draws annotated heat maps of matrices and of
// correlations between table columns.
package heatmap

import (
	"fmt"
	"image/color"
	"math"

	"github.com/aclements/go-gg/table"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"

	"github.com/andersle/psynlig/dataset"
)

// A Matrix adapts a row-major [][]float64 to plotter.GridXYZ with
// unit cell spacing. Row 0 is drawn at the top of the plot, the way
// matrices are usually read.
type Matrix struct {
	Data [][]float64
}

// Dims implements plotter.GridXYZ.
func (m Matrix) Dims() (c, r int) {
	if len(m.Data) == 0 {
		return 0, 0
	}
	return len(m.Data[0]), len(m.Data)
}

// Z implements plotter.GridXYZ. Grid row 0 is the bottom of the
// plot, so it maps to the last data row.
func (m Matrix) Z(c, r int) float64 {
	return m.Data[len(m.Data)-1-r][c]
}

// X implements plotter.GridXYZ.
func (m Matrix) X(c int) float64 { return float64(c) }

// Y implements plotter.GridXYZ.
func (m Matrix) Y(r int) float64 { return float64(r) }

// Options configures a heat map. The zero value annotates every cell
// with its value in black using the "%.2f" format on a smooth
// blue-red diverging colormap scaled to the data range.
type Options struct {
	// Format is the fmt verb for cell annotations.
	Format string

	// NoAnnotations turns the per-cell value annotations off.
	NoAnnotations bool

	// TextColors bins the normalized cell value over the color range
	// and annotates with the corresponding color, so text stays
	// readable on dark cells. Empty means black.
	TextColors []color.Color

	// Bubble draws a circle per cell, with the area following the
	// magnitude of the value, on a checkered background instead of
	// filled cells.
	Bubble bool

	// ColorMap maps values to cell colors.
	ColorMap palette.ColorMap

	// Min and Max fix the color range. They are used when Min < Max;
	// otherwise the range of the data is used.
	Min, Max float64
}

// New builds an annotated heat map of data, which must be
// rectangular with one label per row and column.
func New(data [][]float64, rowLabels, colLabels []string, o Options) (*plot.Plot, error) {
	rows := len(data)
	if rows == 0 {
		return nil, fmt.Errorf("heatmap: empty data")
	}
	cols := len(data[0])
	for i, row := range data {
		if len(row) != cols {
			return nil, fmt.Errorf("heatmap: row %d has %d values, want %d", i, len(row), cols)
		}
	}
	if len(rowLabels) != rows {
		return nil, fmt.Errorf("heatmap: %d row labels for %d rows", len(rowLabels), rows)
	}
	if len(colLabels) != cols {
		return nil, fmt.Errorf("heatmap: %d column labels for %d columns", len(colLabels), cols)
	}

	min, max := o.Min, o.Max
	if !(min < max) {
		min, max = valueRange(data)
		if min == max {
			// A flat matrix still needs a non-empty color range.
			max = min + 1
		}
	}
	cm := o.ColorMap
	if cm == nil {
		cm = moreland.SmoothBlueRed()
	}
	cm.SetMin(min)
	cm.SetMax(max)

	p := plot.New()
	m := Matrix{Data: data}
	if o.Bubble {
		p.Add(&bubbles{m: m, cm: cm})
	} else {
		h := plotter.NewHeatMap(m, cm.Palette(255))
		h.Min, h.Max = min, max
		p.Add(h)
	}

	if !o.NoAnnotations {
		ann, err := annotations(m, o.Format, o.TextColors, min, max)
		if err != nil {
			return nil, err
		}
		p.Add(ann)
	}

	p.NominalX(colLabels...)
	p.NominalY(reversed(rowLabels)...)
	return p, nil
}

// Correlation builds a heat map of the Pearson correlations between
// the named columns of t. The color range defaults to [-1, 1].
func Correlation(t *table.Table, cols []string, o Options) (*plot.Plot, error) {
	corr, err := dataset.Correlation(t, cols)
	if err != nil {
		return nil, err
	}
	if !(o.Min < o.Max) {
		o.Min, o.Max = -1, 1
	}
	p, err := New(corr, cols, cols, o)
	if err != nil {
		return nil, err
	}
	p.Title.Text = "Pearson correlation coefficient"
	return p, nil
}

// annotations builds the text layer with one formatted value per
// cell, colored by binning the normalized value over textColors.
func annotations(m Matrix, format string, textColors []color.Color, min, max float64) (*plotter.Labels, error) {
	if format == "" {
		format = "%.2f"
	}
	if len(textColors) == 0 {
		textColors = []color.Color{color.Black}
	}
	cols, rows := m.Dims()
	xys := make(plotter.XYs, 0, cols*rows)
	labs := make([]string, 0, cols*rows)
	var cs []color.Color
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			v := m.Z(c, r)
			xys = append(xys, plotter.XY{X: float64(c), Y: float64(r)})
			labs = append(labs, fmt.Sprintf(format, v))
			cs = append(cs, binColor((v-min)/(max-min), textColors))
		}
	}
	l, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: labs})
	if err != nil {
		return nil, err
	}
	for i := range l.TextStyle {
		l.TextStyle[i].Color = cs[i]
		l.TextStyle[i].XAlign = text.XCenter
		l.TextStyle[i].YAlign = text.YCenter
	}
	return l, nil
}

// binColor picks the color whose bin contains the normalized value.
// Values outside [0, 1] clamp to the first or last bin.
func binColor(norm float64, cs []color.Color) color.Color {
	idx := int(norm * float64(len(cs)))
	if idx < 0 {
		idx = 0
	}
	if idx >= len(cs) {
		idx = len(cs) - 1
	}
	return cs[idx]
}

func valueRange(data [][]float64) (min, max float64) {
	min, max = math.Inf(1), math.Inf(-1)
	for _, row := range data {
		for _, v := range row {
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
		}
	}
	return min, max
}

func reversed(ss []string) []string {
	out := make([]string, len(ss))
	for i, s := range ss {
		out[len(ss)-1-i] = s
	}
	return out
}
