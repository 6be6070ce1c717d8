// Copyright (c) 2025, The psynlig authors.
// Distributed under the MIT License. See LICENSE for more info.

// Package plotgrid arranges many related plots into figures.
//
// Chart generators that produce one plot per variable (or per
// variable pair) quickly exceed what fits on one canvas, so the
// plots are paginated into figures holding at most a maximum number
// of subplots each, laid out in a fixed number of columns.
package plotgrid

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Defaults for Carve when the caller passes non-positive limits.
const (
	DefaultMaxPlots = 6
	DefaultCols     = 3
)

// A Figure is one page of subplots in row-major order. Plots may be
// nil in trailing cells of the last row.
type Figure struct {
	Plots []*plot.Plot
	Cols  int
}

// Carve splits plots into figures of at most maxPlots subplots each,
// arranged in ncol columns. Non-positive limits use the package
// defaults.
func Carve(plots []*plot.Plot, maxPlots, ncol int) []*Figure {
	if maxPlots <= 0 {
		maxPlots = DefaultMaxPlots
	}
	if ncol <= 0 {
		ncol = DefaultCols
	}
	var figs []*Figure
	for len(plots) > 0 {
		n := len(plots)
		if n > maxPlots {
			n = maxPlots
		}
		cols := ncol
		if n < cols {
			cols = n
		}
		figs = append(figs, &Figure{Plots: plots[:n], Cols: cols})
		plots = plots[n:]
	}
	return figs
}

// Rows returns the number of subplot rows in f.
func (f *Figure) Rows() int {
	if f.Cols <= 0 || len(f.Plots) == 0 {
		return 0
	}
	return (len(f.Plots) + f.Cols - 1) / f.Cols
}

// grid returns the plots as the row-major matrix plot.Align expects.
func (f *Figure) grid() [][]*plot.Plot {
	rows := f.Rows()
	g := make([][]*plot.Plot, rows)
	for r := 0; r < rows; r++ {
		g[r] = make([]*plot.Plot, f.Cols)
		for c := 0; c < f.Cols; c++ {
			if i := r*f.Cols + c; i < len(f.Plots) {
				g[r][c] = f.Plots[i]
			}
		}
	}
	return g
}

// Save renders the figure to a file of the given size. The image
// format follows the file extension (png, svg, pdf, ...).
func (f *Figure) Save(w, h vg.Length, file string) error {
	if len(f.Plots) == 0 {
		return fmt.Errorf("plotgrid: empty figure")
	}
	format := strings.TrimPrefix(filepath.Ext(file), ".")
	if format == "" {
		format = "png"
	}
	canvas, err := draw.NewFormattedCanvas(w, h, format)
	if err != nil {
		return err
	}
	dc := draw.New(canvas)
	grid := f.grid()
	tiles := draw.Tiles{
		Rows: f.Rows(), Cols: f.Cols,
		PadX: vg.Millimeter, PadY: vg.Millimeter,
	}
	canvases := plot.Align(grid, tiles, dc)
	for r, row := range grid {
		for c, p := range row {
			if p != nil {
				p.Draw(canvases[r][c])
			}
		}
	}

	out, err := os.Create(file)
	if err != nil {
		return err
	}
	if _, err := canvas.WriteTo(out); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
