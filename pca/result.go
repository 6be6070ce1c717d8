// Copyright (c) 2025, The psynlig authors.
// Distributed under the MIT License. See LICENSE for more info.

// Package pca plots the output of a principal-component analysis:
// explained-variance curves, loadings and scores. The analysis itself
// is done elsewhere; this package only consumes its numbers.
package pca

import "fmt"

// A Result holds the output of a fitted principal-component model.
type Result struct {
	// Loadings[i] holds the coefficients of principal component i+1,
	// one per original variable.
	Loadings [][]float64

	// VarianceRatio is the fraction of the total variance explained
	// by each component.
	VarianceRatio []float64

	// Variance is the eigenvalue of each component. Optional; only
	// the scree plot uses it.
	Variance []float64
}

// Check reports whether r is well formed: a non-empty rectangular
// loadings matrix with matching variance slices where present.
func (r *Result) Check() error {
	if len(r.Loadings) == 0 {
		return fmt.Errorf("pca: no components")
	}
	nvar := len(r.Loadings[0])
	if nvar == 0 {
		return fmt.Errorf("pca: no variables")
	}
	for i, row := range r.Loadings {
		if len(row) != nvar {
			return fmt.Errorf("pca: component %d has %d coefficients, want %d", i+1, len(row), nvar)
		}
	}
	if r.VarianceRatio != nil && len(r.VarianceRatio) != len(r.Loadings) {
		return fmt.Errorf("pca: %d variance ratios for %d components", len(r.VarianceRatio), len(r.Loadings))
	}
	if r.Variance != nil && len(r.Variance) != len(r.Loadings) {
		return fmt.Errorf("pca: %d eigenvalues for %d components", len(r.Variance), len(r.Loadings))
	}
	return nil
}

// NComponents returns the number of principal components.
func (r *Result) NComponents() int { return len(r.Loadings) }

// NVariables returns the number of original variables.
func (r *Result) NVariables() int {
	if len(r.Loadings) == 0 {
		return 0
	}
	return len(r.Loadings[0])
}

// Coefficients returns the loading coefficients of zero-based
// component i.
func (r *Result) Coefficients(i int) []float64 { return r.Loadings[i] }

// componentNames returns "PC1", "PC2", ... for n components.
func componentNames(n int) []string {
	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf("PC%d", i+1)
	}
	return names
}
