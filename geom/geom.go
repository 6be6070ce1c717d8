// Copyright (c) 2025, The psynlig authors.
// Distributed under the MIT License. See LICENSE for more info.

// Package geom provides the geometric primitives shared by the
// plotting helpers: points and vectors, axis-aligned rectangles used
// as viewports and label bounding boxes, and the solver that extends
// a ray from the origin to the edge of a viewport.
//
// All coordinates are plot-data coordinates unless a caller says
// otherwise; the declutter package, for instance, runs the same types
// in canvas coordinates.
package geom

import "math"

// A Point is a location in 2D space.
type Point struct {
	X, Y float64
}

// A Vec is a direction in 2D space. Vectors are not normalized unless
// stated; the zero vector is a legitimate "no direction" value.
type Vec struct {
	X, Y float64
}

// Dot returns the dot product of v and w.
func (v Vec) Dot(w Vec) float64 {
	return v.X*w.X + v.Y*w.Y
}

// Norm returns the Euclidean length of v.
func (v Vec) Norm() float64 {
	return math.Hypot(v.X, v.Y)
}

// Unit returns v scaled to length 1. The second return value is false
// if v is the zero vector, which has no direction.
func (v Vec) Unit() (Vec, bool) {
	n := v.Norm()
	if n == 0 {
		return Vec{}, false
	}
	return Vec{X: v.X / n, Y: v.Y / n}, true
}

// Perp returns v rotated 90 degrees (components swapped, sign
// flipped).
func (v Vec) Perp() Vec {
	return Vec{X: v.Y, Y: -v.X}
}

// A Rect is an axis-aligned rectangle. It serves both as a plotting
// viewport (x/y limits) and as a label bounding box. A well-formed
// Rect has XMin <= XMax and YMin <= YMax; operations on malformed
// rectangles give undefined but non-panicking results.
type Rect struct {
	XMin, XMax float64
	YMin, YMax float64
}

// Dx returns the width of r.
func (r Rect) Dx() float64 { return r.XMax - r.XMin }

// Dy returns the height of r.
func (r Rect) Dy() float64 { return r.YMax - r.YMin }

// Center returns the centroid of r.
func (r Rect) Center() Point {
	return Point{X: (r.XMin + r.XMax) / 2, Y: (r.YMin + r.YMax) / 2}
}

// Contains reports whether p lies within r, boundary included.
func (r Rect) Contains(p Point) bool {
	return r.XMin <= p.X && p.X <= r.XMax && r.YMin <= p.Y && p.Y <= r.YMax
}

// Overlaps reports whether r and s intersect. Rectangles that merely
// share an edge or a corner count as overlapping; for label boxes
// that is the conservative choice.
func (r Rect) Overlaps(s Rect) bool {
	return r.XMin <= s.XMax && s.XMin <= r.XMax &&
		r.YMin <= s.YMax && s.YMin <= r.YMax
}

// Translate returns r moved by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{
		XMin: r.XMin + dx, XMax: r.XMax + dx,
		YMin: r.YMin + dy, YMax: r.YMax + dy,
	}
}

// CenterAt returns a rectangle with the size of r centered on p.
func (r Rect) CenterAt(p Point) Rect {
	return Rect{
		XMin: p.X - r.Dx()/2, XMax: p.X + r.Dx()/2,
		YMin: p.Y - r.Dy()/2, YMax: p.Y + r.Dy()/2,
	}
}
