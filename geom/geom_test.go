// Copyright (c) 2025, The psynlig authors.
// Distributed under the MIT License. See LICENSE for more info.

package geom

import (
	"math"
	"testing"
)

func TestRect(t *testing.T) {
	r := Rect{XMin: -1, XMax: 3, YMin: 0, YMax: 2}
	if v := r.Dx(); v != 4 {
		t.Errorf("Dx = %v, want 4", v)
	}
	if v := r.Dy(); v != 2 {
		t.Errorf("Dy = %v, want 2", v)
	}
	if c := r.Center(); c != (Point{X: 1, Y: 1}) {
		t.Errorf("Center = %v, want (1,1)", c)
	}
	if !r.Contains(Point{X: -1, Y: 2}) {
		t.Error("Contains should include the boundary")
	}
	if r.Contains(Point{X: 3.01, Y: 1}) {
		t.Error("Contains accepted a point outside")
	}
	if got := r.Translate(1, -1); got != (Rect{XMin: 0, XMax: 4, YMin: -1, YMax: 1}) {
		t.Errorf("Translate = %v", got)
	}
	if got := r.CenterAt(Point{}); got != (Rect{XMin: -2, XMax: 2, YMin: -1, YMax: 1}) {
		t.Errorf("CenterAt = %v", got)
	}
}

func TestRectOverlaps(t *testing.T) {
	base := Rect{XMin: 0, XMax: 2, YMin: 0, YMax: 2}
	tests := []struct {
		name string
		s    Rect
		want bool
	}{
		{"identical", base, true},
		{"contained", Rect{XMin: 0.5, XMax: 1.5, YMin: 0.5, YMax: 1.5}, true},
		{"partial", Rect{XMin: 1, XMax: 3, YMin: 1, YMax: 3}, true},
		{"shared edge", Rect{XMin: 2, XMax: 4, YMin: 0, YMax: 2}, true},
		{"disjoint x", Rect{XMin: 2.1, XMax: 4, YMin: 0, YMax: 2}, false},
		{"disjoint y", Rect{XMin: 0, XMax: 2, YMin: -3, YMax: -0.1}, false},
	}
	for _, test := range tests {
		if got := base.Overlaps(test.s); got != test.want {
			t.Errorf("%s: Overlaps = %v, want %v", test.name, got, test.want)
		}
		if got := test.s.Overlaps(base); got != test.want {
			t.Errorf("%s (flipped): Overlaps = %v, want %v", test.name, got, test.want)
		}
	}
}

func TestVec(t *testing.T) {
	v := Vec{X: 3, Y: 4}
	if n := v.Norm(); n != 5 {
		t.Errorf("Norm = %v, want 5", n)
	}
	u, ok := v.Unit()
	if !ok || math.Abs(u.X-0.6) > 1e-15 || math.Abs(u.Y-0.8) > 1e-15 {
		t.Errorf("Unit = %v, %v", u, ok)
	}
	if _, ok := (Vec{}).Unit(); ok {
		t.Error("Unit of the zero vector should report no direction")
	}
	if p := (Vec{X: 1, Y: 2}).Perp(); p != (Vec{X: 2, Y: -1}) {
		t.Errorf("Perp = %v, want (2,-1)", p)
	}
	if d := v.Dot(Vec{X: -1, Y: 2}); d != 5 {
		t.Errorf("Dot = %v, want 5", d)
	}
}

func TestExitPoint(t *testing.T) {
	square := Rect{XMin: -1, XMax: 1, YMin: -1, YMax: 1}
	wide := Rect{XMin: -4, XMax: 2, YMin: -1, YMax: 3}
	tests := []struct {
		name string
		view Rect
		dir  Vec
		want Point
	}{
		{"up", square, Vec{X: 0, Y: 0.3}, Point{X: 0, Y: 1}},
		{"down", square, Vec{X: 0, Y: -2}, Point{X: 0, Y: -1}},
		{"right", square, Vec{X: 2, Y: 0}, Point{X: 1, Y: 0}},
		{"left", square, Vec{X: -0.1, Y: 0}, Point{X: -1, Y: 0}},
		{"corner", square, Vec{X: 1, Y: 1}, Point{X: 1, Y: 1}},
		{"diagonal", square, Vec{X: 2, Y: 1}, Point{X: 1, Y: 0.5}},
		{"negative diagonal", square, Vec{X: -1, Y: -2}, Point{X: -0.5, Y: -1}},
		{"asymmetric view", wide, Vec{X: -2, Y: 1}, Point{X: -4, Y: 2}},
		{"asymmetric top", wide, Vec{X: 1, Y: 3}, Point{X: 1, Y: 3}},
	}
	for _, test := range tests {
		got, ok := ExitPoint(test.view, test.dir)
		if !ok {
			t.Errorf("%s: no exit point", test.name)
			continue
		}
		if math.Abs(got.X-test.want.X) > 1e-12 || math.Abs(got.Y-test.want.Y) > 1e-12 {
			t.Errorf("%s: ExitPoint = %v, want %v", test.name, got, test.want)
		}
		if !test.view.Contains(got) {
			t.Errorf("%s: exit point %v outside the viewport", test.name, got)
		}
	}
}

func TestExitPointZeroDirection(t *testing.T) {
	_, ok := ExitPoint(Rect{XMin: -1, XMax: 1, YMin: -1, YMax: 1}, Vec{})
	if ok {
		t.Error("zero direction should report no exit point")
	}
}

func TestExitPointAhead(t *testing.T) {
	// The exit point must be on the side the direction points toward,
	// never the opposite boundary.
	view := Rect{XMin: -1, XMax: 1, YMin: -1, YMax: 1}
	for _, dir := range []Vec{
		{X: 1, Y: 0.5}, {X: -1, Y: 0.5}, {X: 0.5, Y: -1}, {X: -0.25, Y: -1},
	} {
		got, ok := ExitPoint(view, dir)
		if !ok {
			t.Fatalf("dir %v: no exit point", dir)
		}
		if dir.Dot(Vec{X: got.X, Y: got.Y}) <= 0 {
			t.Errorf("dir %v: exit point %v is behind the origin", dir, got)
		}
	}
}
