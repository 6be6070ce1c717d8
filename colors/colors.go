// Copyright (c) 2025, The psynlig authors.
// Distributed under the MIT License. See LICENSE for more info.

// Package colors generates the colors used to tell variables and
// classes apart in plots.
//
// Small sets get a qualitative brewer palette; large sets fall back
// to sampling a perceptually ordered continuous map, since no
// qualitative palette stays distinguishable past a dozen entries.
package colors

import (
	"fmt"
	"image/color"
	"sort"

	"gonum.org/v1/plot/palette/brewer"
	"gonum.org/v1/plot/palette/moreland"
)

// Qualitative returns n distinct colors. Up to 9 colors come from the
// brewer Set1 palette and up to 12 from Paired; beyond that the
// Kindlmann continuous map is sampled evenly.
func Qualitative(n int) ([]color.Color, error) {
	switch {
	case n <= 0:
		return nil, fmt.Errorf("colors: need a positive color count, got %d", n)
	case n <= 9:
		// Brewer palettes start at 3 levels.
		req := n
		if req < 3 {
			req = 3
		}
		p, err := brewer.GetPalette(brewer.TypeQualitative, "Set1", req)
		if err != nil {
			return nil, err
		}
		return p.Colors()[:n], nil
	case n <= 12:
		p, err := brewer.GetPalette(brewer.TypeQualitative, "Paired", n)
		if err != nil {
			return nil, err
		}
		return p.Colors()[:n], nil
	default:
		cm := moreland.Kindlmann()
		cm.SetMin(0)
		cm.SetMax(1)
		return cm.Palette(n).Colors(), nil
	}
}

// Classes assigns a color to every distinct class label. It returns
// the color per class and the row indices belonging to each class,
// so callers can draw one styled point set per class. Classes are
// colored in ascending label order to keep the assignment stable
// across plots of the same data. A nil class slice returns nil maps
// and no error.
func Classes(class []int) (map[int]color.Color, map[int][]int, error) {
	if class == nil {
		return nil, nil, nil
	}
	byClass := make(map[int][]int)
	var order []int
	for i, c := range class {
		if _, seen := byClass[c]; !seen {
			order = append(order, c)
		}
		byClass[c] = append(byClass[c], i)
	}
	sort.Ints(order)
	cs, err := Qualitative(len(order))
	if err != nil {
		return nil, nil, err
	}
	colorOf := make(map[int]color.Color, len(order))
	for k, c := range order {
		colorOf[c] = cs[k]
	}
	return colorOf, byClass, nil
}
