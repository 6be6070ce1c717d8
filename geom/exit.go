// Copyright (c) 2025, The psynlig authors.
// Distributed under the MIT License. See LICENSE for more info.

package geom

// ExitPoint returns the point where a ray leaving the origin along
// dir crosses the boundary of view, on the side the direction points
// toward. It is used to stretch PCA loading vectors to the edge of
// the plot. The second return value is false when dir is the zero
// vector, which has no direction to extend along.
//
// The origin is assumed to lie inside (or on the boundary of) view;
// this is not validated, and a viewport that does not contain the
// origin gives undefined but non-panicking results.
//
// When the ray exits exactly at a corner more than one boundary line
// matches. The candidates are checked in a fixed order (left, bottom,
// right, top) and the last match wins; callers must not rely on a
// stronger tie-break than that.
func ExitPoint(view Rect, dir Vec) (Point, bool) {
	if dir.X == 0 && dir.Y == 0 {
		return Point{}, false
	}

	// Axis-aligned rays hit a known side directly.
	if dir.X == 0 {
		if dir.Y > 0 {
			return Point{X: 0, Y: view.YMax}, true
		}
		return Point{X: 0, Y: view.YMin}, true
	}
	if dir.Y == 0 {
		if dir.X > 0 {
			return Point{X: view.XMax, Y: 0}, true
		}
		return Point{X: view.XMin, Y: 0}, true
	}

	var (
		end Point
		ok  bool
	)
	// A candidate is kept when it falls within the perpendicular
	// axis's bounds and lies ahead of the origin along dir (positive
	// dot product), not behind it.
	accept := func(p Point) {
		if dir.Dot(Vec{X: p.X, Y: p.Y}) > 0 {
			end, ok = p, true
		}
	}

	slope := dir.Y / dir.X
	inv := dir.X / dir.Y

	if y := view.XMin * slope; view.YMin <= y && y <= view.YMax {
		accept(Point{X: view.XMin, Y: y})
	}
	if x := view.YMin * inv; view.XMin <= x && x <= view.XMax {
		accept(Point{X: x, Y: view.YMin})
	}
	if y := view.XMax * slope; view.YMin <= y && y <= view.YMax {
		accept(Point{X: view.XMax, Y: y})
	}
	if x := view.YMax * inv; view.XMin <= x && x <= view.XMax {
		accept(Point{X: x, Y: view.YMax})
	}
	return end, ok
}
