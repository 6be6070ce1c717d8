// Copyright (c) 2025, The psynlig authors.
// Distributed under the MIT License. See LICENSE for more info.

package histogram

import (
	"testing"

	"github.com/aclements/go-gg/table"
)

func testTable() *table.Table {
	return new(table.Builder).
		Add("a", []float64{1, 2, 2, 3, 3, 3, 4, 4, 5, 6}).
		Add("b", []float64{0, 1, 0, 1, 0, 1, 0, 1, 0, 1}).
		Done()
}

func TestGenerate(t *testing.T) {
	figs, err := Generate(testTable(), []string{"a", "b"}, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if len(figs) != 1 {
		t.Fatalf("got %d figures, want 1", len(figs))
	}
	if len(figs[0].Plots) != 2 {
		t.Errorf("got %d plots, want 2", len(figs[0].Plots))
	}
	if figs[0].Plots[0].X.Label.Text != "a" {
		t.Errorf("x label = %q", figs[0].Plots[0].X.Label.Text)
	}
}

func TestGenerateClasses(t *testing.T) {
	o := Options{
		Classes:    []int{0, 0, 0, 0, 0, 1, 1, 1, 1, 1},
		ClassNames: map[int]string{0: "lo", 1: "hi"},
	}
	figs, err := Generate(testTable(), []string{"a"}, o)
	if err != nil {
		t.Fatal(err)
	}
	if len(figs) != 1 {
		t.Fatalf("got %d figures, want 1", len(figs))
	}
	o.Classes = []int{0, 1}
	if _, err := Generate(testTable(), []string{"a"}, o); err == nil {
		t.Error("class/row length mismatch should fail")
	}
}

func TestGenerateMissingColumn(t *testing.T) {
	if _, err := Generate(testTable(), []string{"nope"}, Options{}); err == nil {
		t.Error("unknown column should fail")
	}
}

func TestGeneratePagination(t *testing.T) {
	figs, err := Generate(testTable(), []string{"a", "b", "a", "b", "a"}, Options{MaxPlots: 2, Cols: 2})
	if err != nil {
		t.Fatal(err)
	}
	if len(figs) != 3 {
		t.Fatalf("got %d figures, want 3", len(figs))
	}
}
