// Copyright (c) 2025, The psynlig authors.
// Distributed under the MIT License. See LICENSE for more info.

// Package declutter separates overlapping text labels by repeatedly
// nudging ("jiggling") them apart.
//
// The relaxation is a best-effort heuristic: it resolves one
// overlapping pair per iteration and stops either when no two label
// boxes intersect or when the iteration budget runs out. Labels that
// are still being moved get a semi-transparent white backdrop so that
// any remaining overlap stays readable.
package declutter

import (
	"image/color"

	"github.com/andersle/psynlig/geom"
)

// DefaultMaxIter is the iteration budget used when Relax is called
// with a non-positive budget. One iteration resolves at most one
// overlapping pair, so crowded scenes need many iterations.
const DefaultMaxIter = 1000

// Backdrop is the background applied to labels between relaxation
// iterations: white at 70% opacity.
var Backdrop = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xb3}

// A Label is a positioned text box owned by the caller. Box is
// recomputed on every call because label geometry changes as the
// label moves or is restyled; implementations must not cache it
// across moves.
type Label interface {
	// Box returns the label's current bounding box.
	Box() geom.Rect
	// MoveCenter places the center of the label's box at p.
	// Implementations switch the label to centered horizontal and
	// vertical alignment, since the position now refers to the
	// centroid.
	MoveCenter(p geom.Point)
	// SetBackground gives the label a background fill.
	SetBackground(c color.Color)
}

// Relax nudges the labels apart until no two bounding boxes overlap
// or maxiter iterations have run, whichever comes first. A
// non-positive maxiter means DefaultMaxIter. Labels are repositioned
// in place. The viewport fixes the nudge step: 1% of its x-span and
// 1% of its y-span per move.
//
// The pairwise scan follows the order of the labels slice, and only
// the first overlapping pair found is moved in each iteration.
//
// Relax reports whether the labels converged; exhausting the budget
// with overlaps remaining is not an error.
func Relax(view geom.Rect, labels []Label, maxiter int) bool {
	if maxiter <= 0 {
		maxiter = DefaultMaxIter
	}
	jx := 0.01 * view.Dx()
	jy := 0.01 * view.Dy()

	boxes := make([]geom.Rect, len(labels))
	for iter := 0; iter < maxiter; iter++ {
		// Positions changed last iteration, so every box must be
		// recomputed before the scan.
		for i, l := range labels {
			boxes[i] = l.Box()
		}

		moved := false
	scan:
		for i := 0; i < len(labels); i++ {
			for j := i + 1; j < len(labels); j++ {
				if !boxes[i].Overlaps(boxes[j]) {
					continue
				}
				ci, cj := boxes[i].Center(), boxes[j].Center()
				dir, ok := (geom.Vec{X: cj.X - ci.X, Y: cj.Y - ci.Y}).Unit()
				if !ok {
					// Coincident centroids give no separation
					// direction; fall back to +x so the pair still
					// moves instead of producing NaNs.
					dir = geom.Vec{X: 1}
				}
				// Push the pair apart along the perpendicular of
				// their separation. This tends to slide stacked
				// labels sideways rather than radially.
				n := dir.Perp()
				dx, dy := n.X*jx, n.Y*jy
				labels[i].MoveCenter(geom.Point{X: ci.X + dx, Y: ci.Y + dy})
				labels[j].MoveCenter(geom.Point{X: cj.X - dx, Y: cj.Y - dy})
				moved = true
				break scan
			}
		}
		if !moved {
			return true
		}
		for _, l := range labels {
			l.SetBackground(Backdrop)
		}
	}
	return false
}
