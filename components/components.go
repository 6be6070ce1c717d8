// Copyright (c) 2025, The psynlig authors.
// Distributed under the MIT License. See LICENSE for more info.

// Package components selects which principal-component axes to plot.
//
// A plot request is either "all combinations" of the available
// components at a given arity (one plot per single component, pair,
// or triple), or an explicit list of 1-based selections. Selections
// are validated eagerly so that a bad index fails here, with a clear
// error, rather than as an index panic in the plotting code.
package components

import "fmt"

// Select returns the zero-based component index tuples to generate
// one plot each for. components is the number of available
// components and arity is the tuple size: 1, 2 or 3 for 1D, 2D and
// 3D plots.
//
// With a nil explicit selection, all combinations of the requested
// arity over 0..components-1 are returned in lexicographic order.
// Otherwise each explicit tuple is converted from the caller-facing
// 1-based numbering to zero-based indices, preserving order.
func Select(components, arity int, explicit [][]int) ([][]int, error) {
	if arity < 1 || arity > 3 {
		return nil, fmt.Errorf("components: unsupported combination size %d", arity)
	}
	if components < 0 {
		return nil, fmt.Errorf("components: negative component count %d", components)
	}
	if explicit == nil {
		return combinations(components, arity), nil
	}
	out := make([][]int, 0, len(explicit))
	for _, sel := range explicit {
		if len(sel) != arity {
			return nil, fmt.Errorf("components: selection %v has %d indices, want %d", sel, len(sel), arity)
		}
		conv := make([]int, arity)
		for k, idx := range sel {
			if idx < 1 || idx > components {
				return nil, fmt.Errorf("components: selection index %d out of range [1, %d]", idx, components)
			}
			conv[k] = idx - 1
		}
		out = append(out, conv)
	}
	return out, nil
}

// combinations returns all k-element subsets of 0..n-1 in
// lexicographic order.
func combinations(n, k int) [][]int {
	out := [][]int{}
	if k > n {
		return out
	}
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	for {
		out = append(out, append([]int(nil), idx...))
		// Advance the rightmost index that has room, then reset
		// everything after it.
		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			return out
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}
