// Copyright (c) 2025, The psynlig authors.
// Distributed under the MIT License. See LICENSE for more info.

package declutter

import (
	"math"
	"testing"

	"github.com/andersle/psynlig/geom"
)

var unitView = geom.Rect{XMin: -1, XMax: 1, YMin: -1, YMax: 1}

func fixedMeasure(w, h float64) func(string) (float64, float64) {
	return func(string) (float64, float64) { return w, h }
}

func box(x, y, w, h float64) *TextBox {
	return &TextBox{
		Text:    "label",
		Center:  geom.Point{X: x, Y: y},
		Measure: fixedMeasure(w, h),
	}
}

func asLabels(boxes ...*TextBox) []Label {
	ls := make([]Label, len(boxes))
	for i, b := range boxes {
		ls[i] = b
	}
	return ls
}

func dist(a, b geom.Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

func TestRelaxNoLabels(t *testing.T) {
	if !Relax(unitView, nil, 0) {
		t.Error("empty label set should converge")
	}
	if !Relax(unitView, asLabels(box(0, 0, 0.2, 0.1)), 0) {
		t.Error("single label should converge")
	}
}

func TestRelaxDisjointUnchanged(t *testing.T) {
	a := box(-0.5, -0.5, 0.2, 0.1)
	b := box(0.5, 0.5, 0.2, 0.1)
	if !Relax(unitView, asLabels(a, b), 0) {
		t.Fatal("disjoint labels should converge")
	}
	if a.Center != (geom.Point{X: -0.5, Y: -0.5}) || b.Center != (geom.Point{X: 0.5, Y: 0.5}) {
		t.Errorf("disjoint labels moved: %v, %v", a.Center, b.Center)
	}
	if a.Background != nil || b.Background != nil {
		t.Error("converged labels should not get a backdrop")
	}
	if a.Centered || b.Centered {
		t.Error("unmoved labels should keep their alignment")
	}
}

func TestRelaxSeparatesStackedPair(t *testing.T) {
	// Identical boxes with centroids offset by (0.001, 0).
	a := box(0, 0, 0.4, 0.2)
	b := box(0.001, 0, 0.4, 0.2)
	before := dist(a.Center, b.Center)

	if !Relax(unitView, asLabels(a, b), 0) {
		t.Fatal("two stacked labels should settle within the budget")
	}
	if got := dist(a.Center, b.Center); got <= before {
		t.Errorf("centroid distance %v did not grow from %v", got, before)
	}
	if a.Center == (geom.Point{}) || b.Center == (geom.Point{X: 0.001}) {
		t.Error("labels left at their original positions")
	}
	if !a.Centered || !b.Centered {
		t.Error("moved labels must be recentered")
	}
	if a.Background == nil || b.Background == nil {
		t.Error("labels moved in a non-converged iteration should get a backdrop")
	}
	if a.Box().Overlaps(b.Box()) {
		t.Error("labels still overlap after convergence")
	}
}

func TestRelaxCoincidentCentroids(t *testing.T) {
	// Exactly coincident centroids have no separation direction; the
	// fallback must still move the pair apart without NaNs.
	a := box(0.25, 0.25, 0.3, 0.1)
	b := box(0.25, 0.25, 0.3, 0.1)
	Relax(unitView, asLabels(a, b), 10)
	if math.IsNaN(a.Center.X) || math.IsNaN(a.Center.Y) {
		t.Fatal("relaxation produced NaN positions")
	}
	if dist(a.Center, b.Center) == 0 {
		t.Error("coincident labels did not separate")
	}
}

func TestRelaxBudgetExhausted(t *testing.T) {
	// Boxes as wide as the viewport cannot be separated by vertical
	// nudges alone before a tiny budget runs out.
	a := box(0, 0, 2, 2)
	b := box(0.5, 0, 2, 2)
	if Relax(unitView, asLabels(a, b), 3) {
		t.Error("expected non-convergence with a 3-iteration budget")
	}
}

func TestRelaxFirstPairOnly(t *testing.T) {
	// Three mutually overlapping labels: only the first pair in scan
	// order moves in the first iteration.
	a := box(0, 0, 0.5, 0.5)
	b := box(0.01, 0, 0.5, 0.5)
	c := box(0.02, 0, 0.5, 0.5)
	Relax(unitView, asLabels(a, b, c), 1)
	if c.Centered {
		t.Error("third label moved during the first iteration")
	}
	if !a.Centered || !b.Centered {
		t.Error("first overlapping pair did not move")
	}
}

func TestRelaxStepSize(t *testing.T) {
	// The nudge is 1% of each viewport span, applied along the
	// perpendicular of the (here horizontal) separation, so the pair
	// moves vertically by one y-step each.
	view := geom.Rect{XMin: 0, XMax: 10, YMin: 0, YMax: 4}
	a := box(5, 2, 1, 1)
	b := box(5.1, 2, 1, 1)
	Relax(view, asLabels(a, b), 1)
	if got := math.Abs(a.Center.Y - 2); math.Abs(got-0.04) > 1e-12 {
		t.Errorf("vertical nudge = %v, want 0.04", got)
	}
	if math.Abs(a.Center.X-5) > 1e-12 {
		t.Errorf("horizontal drift = %v, want none", a.Center.X-5)
	}
	if math.Abs((a.Center.Y-2)+(b.Center.Y-2)) > 1e-12 {
		t.Error("nudges are not equal and opposite")
	}
}

func TestTextBoxBox(t *testing.T) {
	b := &TextBox{
		Text:   "wide",
		Center: geom.Point{X: 1, Y: 2},
		Measure: func(s string) (float64, float64) {
			return float64(len(s)), 1
		},
	}
	got := b.Box()
	want := geom.Rect{XMin: -1, XMax: 3, YMin: 1.5, YMax: 2.5}
	if got != want {
		t.Errorf("Box = %v, want %v", got, want)
	}
	b.Text = "x"
	if got := b.Box(); got.Dx() != 1 {
		t.Errorf("Box not recomputed after text change: %v", got)
	}
}
