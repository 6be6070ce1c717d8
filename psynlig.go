// Copyright (c) 2025, The psynlig authors.
// Distributed under the MIT License. See LICENSE for more info.

// Package psynlig creates plots of tabular numeric data and principal
// component analysis results on top of gonum.org/v1/plot.
//
// Data is handed to the chart builders as go-gg tables
// (github.com/aclements/go-gg/table) with named numeric columns. The
// builders return ordinary *plot.Plot values, or paginated figures
// (see the plotgrid package) when one call produces several plots.
//
// The subpackages are:
//
//   - geom: points, viewport rectangles and the solver that extends a
//     ray from the origin to the edge of a viewport
//   - declutter: the label "jiggle" relaxation used to separate
//     overlapping text labels
//   - components: selection of principal-component index combinations
//   - colors: qualitative color generation and per-class coloring
//   - dataset: column extraction, correlation and outlier detection
//   - heatmap, scatter, histogram: chart builders for raw variables
//   - pca: variance, loadings and scores plots for PCA results
//   - plotgrid: pagination of many plots into aligned figures
package psynlig

// Version is the library version.
const Version = "0.1.0"
