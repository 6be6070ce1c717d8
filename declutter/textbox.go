// Copyright (c) 2025, The psynlig authors.
// Distributed under the MIT License. See LICENSE for more info.

package declutter

import (
	"image/color"

	"github.com/andersle/psynlig/geom"
)

// A TextBox is a Label whose bounding box derives from a stored
// center point and a measure function reporting the rendered extent
// of its text. It is the bridge between the relaxation and whatever
// renderer owns the text.
type TextBox struct {
	// Text is the label text, measured on every Box call.
	Text string

	// Center is the current center of the box.
	Center geom.Point

	// Measure reports the rendered width and height of a string. It
	// must not be nil.
	Measure func(text string) (w, h float64)

	// Background is the backdrop applied by the relaxation, nil until
	// the label has been part of a non-converged iteration.
	Background color.Color

	// Centered records that MoveCenter switched the label to centered
	// alignment.
	Centered bool
}

// Box returns the bounding box around the current center. It is
// recomputed on every call; the extent may change when the text is
// restyled.
func (t *TextBox) Box() geom.Rect {
	w, h := t.Measure(t.Text)
	return geom.Rect{
		XMin: t.Center.X - w/2, XMax: t.Center.X + w/2,
		YMin: t.Center.Y - h/2, YMax: t.Center.Y + h/2,
	}
}

// MoveCenter implements Label.
func (t *TextBox) MoveCenter(p geom.Point) {
	t.Center = p
	t.Centered = true
}

// SetBackground implements Label.
func (t *TextBox) SetBackground(c color.Color) {
	t.Background = c
}
