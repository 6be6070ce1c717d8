// Copyright (c) 2025, The psynlig authors.
// Distributed under the MIT License. See LICENSE for more info.

package scatter

import (
	"strings"
	"testing"

	"github.com/aclements/go-gg/table"
)

func testTable() *table.Table {
	return new(table.Builder).
		Add("x", []float64{1, 2, 3, 4, 5, 6}).
		Add("y", []float64{2, 4, 6, 8, 10, 12}).
		Add("z", []float64{1, 1, 2, 2, 10, 1}).
		Done()
}

func TestPlot(t *testing.T) {
	p, err := Plot(testTable(), "x", "y", Options{})
	if err != nil {
		t.Fatal(err)
	}
	if p.X.Label.Text != "x" || p.Y.Label.Text != "y" {
		t.Errorf("labels = %q, %q", p.X.Label.Text, p.Y.Label.Text)
	}
}

func TestPlotIndex(t *testing.T) {
	p, err := Plot(testTable(), "", "y", Options{})
	if err != nil {
		t.Fatal(err)
	}
	if p.X.Label.Text != "Data point no." {
		t.Errorf("x label = %q", p.X.Label.Text)
	}
}

func TestPlotMissingColumn(t *testing.T) {
	if _, err := Plot(testTable(), "x", "missing", Options{}); err == nil {
		t.Error("unknown column should fail")
	}
}

func TestPlotClasses(t *testing.T) {
	o := Options{
		Classes:    []int{0, 0, 1, 1, 2, 2},
		ClassNames: map[int]string{0: "setosa", 1: "versicolor"},
	}
	p, err := Plot(testTable(), "x", "y", o)
	if err != nil {
		t.Fatal(err)
	}
	if p == nil {
		t.Fatal("nil plot")
	}
	o.Classes = []int{0, 1}
	if _, err := Plot(testTable(), "x", "y", o); err == nil {
		t.Error("class/row length mismatch should fail")
	}
}

func TestPlotTrendline(t *testing.T) {
	p, err := Plot(testTable(), "x", "y", Options{Trendline: true})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(p.Title.Text, "R² = 1.00") {
		t.Errorf("title = %q, want perfect fit", p.Title.Text)
	}
	if !strings.Contains(p.Title.Text, "ρ = 1.00") {
		t.Errorf("title = %q, want perfect correlation", p.Title.Text)
	}
}

func TestPlotHighlightRange(t *testing.T) {
	if _, err := Plot(testTable(), "x", "y", Options{Highlight: []int{99}}); err == nil {
		t.Error("out-of-range highlight should fail")
	}
	if _, err := Plot(testTable(), "x", "y", Options{Highlight: []int{0, 5}}); err != nil {
		t.Errorf("valid highlight failed: %v", err)
	}
}

func TestGenerate1D(t *testing.T) {
	figs, err := Generate1D(testTable(), []string{"x", "y", "z"}, Options{MaxPlots: 2, Cols: 2})
	if err != nil {
		t.Fatal(err)
	}
	if len(figs) != 2 {
		t.Fatalf("got %d figures, want 2", len(figs))
	}
	if len(figs[0].Plots) != 2 || len(figs[1].Plots) != 1 {
		t.Errorf("figure sizes = %d, %d", len(figs[0].Plots), len(figs[1].Plots))
	}
}

func TestGenerate1DOutliers(t *testing.T) {
	figs, err := Generate1D(testTable(), []string{"z"}, Options{Outliers: true})
	if err != nil {
		t.Fatal(err)
	}
	if len(figs) != 1 || len(figs[0].Plots) != 1 {
		t.Fatal("expected a single figure with one plot")
	}
}

func TestGenerate2D(t *testing.T) {
	figs, err := Generate2D(testTable(), []string{"x", "y", "z"}, Options{})
	if err != nil {
		t.Fatal(err)
	}
	total := 0
	for _, f := range figs {
		total += len(f.Plots)
	}
	if total != 3 { // (x,y), (x,z), (y,z)
		t.Errorf("got %d pair plots, want 3", total)
	}
}
